package services

import (
	"net/url"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
)

// DocumentManager tracks the documents the editor host has open.
type DocumentManager struct {
	mu   sync.RWMutex
	docs map[string]entities.TextDocument
}

// NewDocumentManager creates an empty DocumentManager.
func NewDocumentManager() *DocumentManager {
	return &DocumentManager{docs: make(map[string]entities.TextDocument)}
}

// Open records a newly opened document, replacing any previous copy.
func (it *DocumentManager) Open(doc entities.TextDocument) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.docs[doc.URI] = doc
}

// Change replaces the text of an open document. Out of order versions are
// dropped and false is returned.
func (it *DocumentManager) Change(uri string, version int, text string) bool {
	it.mu.Lock()
	defer it.mu.Unlock()

	current, ok := it.docs[uri]
	if !ok || version < current.Version {
		return false
	}
	it.docs[uri] = entities.TextDocument{URI: uri, Version: version, Text: text}
	return true
}

// Close forgets a document.
func (it *DocumentManager) Close(uri string) {
	it.mu.Lock()
	defer it.mu.Unlock()
	delete(it.docs, uri)
}

// Get returns the open document with the given URI.
func (it *DocumentManager) Get(uri string) (entities.TextDocument, bool) {
	it.mu.RLock()
	defer it.mu.RUnlock()
	doc, ok := it.docs[uri]
	return doc, ok
}

// GetByPath returns the open document backed by a local file path.
func (it *DocumentManager) GetByPath(path string) (entities.TextDocument, bool) {
	return it.Get(PathToURI(path))
}

// URIs returns the sorted URIs of all open documents.
func (it *DocumentManager) URIs() []string {
	it.mu.RLock()
	defer it.mu.RUnlock()

	uris := make([]string, 0, len(it.docs))
	for uri := range it.docs {
		uris = append(uris, uri)
	}
	sort.Strings(uris)
	return uris
}

// PathToURI converts an absolute file path to a file:// URI.
func PathToURI(path string) string {
	slashed := filepath.ToSlash(filepath.Clean(path))
	if !strings.HasPrefix(slashed, "/") {
		slashed = "/" + slashed // windows drive letters
	}
	//nolint:exhaustruct // only scheme and path are meaningful
	return (&url.URL{Scheme: "file", Path: slashed}).String()
}

// URIToPath converts a file:// URI back to a local path. Other schemes are
// rejected.
func URIToPath(uri string) (string, bool) {
	parsed, err := url.Parse(uri)
	if err != nil || parsed.Scheme != "file" {
		return "", false
	}
	path := parsed.Path
	if len(path) > 2 && path[0] == '/' && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path), true
}

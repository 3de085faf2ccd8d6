package services

import (
	"fmt"
	"os"
	"sync"
	"time"
)

type cachedText struct {
	modTime time.Time
	size    int64
	text    string
}

// TextFiles reads file contents, preferring the editor's unsaved copy of open
// documents over the disk.
type TextFiles struct {
	documents *DocumentManager
	mu        sync.Mutex
	cache     map[string]cachedText
}

// NewTextFiles creates a TextFiles reader.
func NewTextFiles(documents *DocumentManager) *TextFiles {
	return &TextFiles{documents: documents, cache: make(map[string]cachedText)}
}

// Read returns the current text of path.
func (it *TextFiles) Read(path string) (string, error) {
	if doc, ok := it.documents.GetByPath(path); ok {
		return doc.Text, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	it.mu.Lock()
	cached, ok := it.cache[path]
	it.mu.Unlock()
	if ok && cached.modTime.Equal(info.ModTime()) && cached.size == info.Size() {
		return cached.text, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	text := string(data)

	it.mu.Lock()
	it.cache[path] = cachedText{modTime: info.ModTime(), size: info.Size(), text: text}
	it.mu.Unlock()
	return text, nil
}

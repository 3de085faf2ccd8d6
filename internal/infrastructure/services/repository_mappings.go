package services

import (
	"strings"
	"sync"

	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
)

// RepositoryMappings remembers where the clone of a remote lives locally.
// Keys are normalized "domain/path" strings so that ssh and https forms of
// the same remote share one entry.
type RepositoryMappings struct {
	mu    sync.RWMutex
	paths map[string]string
}

// NewRepositoryMappings creates an empty RepositoryMappings.
func NewRepositoryMappings() *RepositoryMappings {
	return &RepositoryMappings{paths: make(map[string]string)}
}

// Add maps every remote to its RepoPath. Remotes with no domain are skipped.
func (it *RepositoryMappings) Add(remotes ...entities.GitRemote) {
	it.mu.Lock()
	defer it.mu.Unlock()
	for _, remote := range remotes {
		if remote.Domain == "" || remote.RepoPath == "" {
			continue
		}
		it.paths[remote.NormalizedURL()] = remote.RepoPath
	}
}

// Lookup returns the local clone of a remote URL.
func (it *RepositoryMappings) Lookup(remoteURL string) (string, bool) {
	parsed, ok := entities.ParseGitURL(remoteURL)
	if !ok {
		return "", false
	}
	key := strings.ToLower(parsed.Domain + "/" + parsed.Path)

	it.mu.RLock()
	defer it.mu.RUnlock()
	path, found := it.paths[key]
	return path, found
}

// Len returns the number of mapped remotes.
func (it *RepositoryMappings) Len() int {
	it.mu.RLock()
	defer it.mu.RUnlock()
	return len(it.paths)
}

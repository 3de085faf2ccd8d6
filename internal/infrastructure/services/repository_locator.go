package services

import (
	"fmt"
	"sync"
)

// RepositoryLocator maps file paths to their repository roots, caching the
// answer per directory.
type RepositoryLocator struct {
	lite  *GitServiceLite
	mu    sync.Mutex
	roots map[string]string
}

// NewRepositoryLocator creates a RepositoryLocator.
func NewRepositoryLocator(lite *GitServiceLite) *RepositoryLocator {
	return &RepositoryLocator{lite: lite, roots: make(map[string]string)}
}

// Locate returns the repository root containing filePath.
func (it *RepositoryLocator) Locate(filePath string) (string, error) {
	dir := directoryOf(filePath)

	it.mu.Lock()
	root, ok := it.roots[dir]
	it.mu.Unlock()
	if ok {
		return root, nil
	}

	root, err := it.lite.RepoRoot(dir)
	if err != nil {
		return "", fmt.Errorf("%s is not inside a repository: %w", filePath, err)
	}

	it.mu.Lock()
	it.roots[dir] = root
	it.mu.Unlock()
	return root, nil
}

// Forget drops every cached answer.
func (it *RepositoryLocator) Forget() {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.roots = make(map[string]string)
}

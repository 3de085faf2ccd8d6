package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// IgnoreFiles answers whether files are excluded by the .gitignore files of
// their repository. Matchers are built once per repository root.
type IgnoreFiles struct {
	mu       sync.Mutex
	matchers map[string]gitignore.Matcher
}

// NewIgnoreFiles creates an IgnoreFiles cache.
func NewIgnoreFiles() *IgnoreFiles {
	return &IgnoreFiles{matchers: make(map[string]gitignore.Matcher)}
}

// IsIgnored reports whether filePath, inside repoRoot, is ignored.
func (it *IgnoreFiles) IsIgnored(repoRoot, filePath string) (bool, error) {
	rel, err := filepath.Rel(repoRoot, filePath)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false, fmt.Errorf("%s is outside %s", filePath, repoRoot)
	}

	matcher, err := it.matcher(repoRoot)
	if err != nil {
		return false, err
	}

	info, statErr := os.Stat(filePath)
	isDir := statErr == nil && info.IsDir()
	return matcher.Match(strings.Split(filepath.ToSlash(rel), "/"), isDir), nil
}

// Invalidate drops the matcher of repoRoot so the next lookup rereads it.
func (it *IgnoreFiles) Invalidate(repoRoot string) {
	it.mu.Lock()
	defer it.mu.Unlock()
	delete(it.matchers, repoRoot)
}

func (it *IgnoreFiles) matcher(repoRoot string) (gitignore.Matcher, error) {
	it.mu.Lock()
	defer it.mu.Unlock()

	if matcher, ok := it.matchers[repoRoot]; ok {
		return matcher, nil
	}
	patterns, err := gitignore.ReadPatterns(osfs.New(repoRoot), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read ignore files of %s: %w", repoRoot, err)
	}
	matcher := gitignore.NewMatcher(patterns)
	it.matchers[repoRoot] = matcher
	return matcher, nil
}

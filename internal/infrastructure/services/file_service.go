package services

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileService converts between absolute paths and repository relative ones.
// Relative paths always use forward slashes.
type FileService struct {
	locator *RepositoryLocator
}

// NewFileService creates a FileService.
func NewFileService(locator *RepositoryLocator) *FileService {
	return &FileService{locator: locator}
}

// RelativePath returns the repository root of filePath and the path inside it.
func (it *FileService) RelativePath(filePath string) (string, string, error) {
	root, err := it.locator.Locate(filePath)
	if err != nil {
		return "", "", err
	}
	rel, err := filepath.Rel(root, filePath)
	if err != nil {
		return "", "", fmt.Errorf("failed to relativize %s: %w", filePath, err)
	}
	return root, filepath.ToSlash(rel), nil
}

// AbsolutePath joins a repository relative path onto its root. Paths that
// escape the root are rejected.
func (it *FileService) AbsolutePath(repoRoot, relPath string) (string, error) {
	joined := filepath.Join(repoRoot, filepath.FromSlash(relPath))
	rel, err := filepath.Rel(repoRoot, joined)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s escapes repository %s", relPath, repoRoot)
	}
	return joined, nil
}

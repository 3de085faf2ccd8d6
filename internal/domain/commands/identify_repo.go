package commands

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
)

const (
	javaMaxDepth = 2
	unboundDepth = -1
)

var (
	targetFrameworkPattern        = regexp.MustCompile(`<TargetFramework>\s*(net[^<]*?)\s*</TargetFramework>`)
	targetFrameworkVersionPattern = regexp.MustCompile(`<TargetFrameworkVersion>\s*(v[^<]*?)\s*</TargetFrameworkVersion>`)
)

// IdentifyRepo is the interface for the repository classification command.
type IdentifyRepo interface {
	Execute(ctx context.Context, repo entities.ReposScm) (entities.IdentifyRepoResult, error)
}

// FileSystemFactory opens the directory tree of a repository.
type FileSystemFactory func(root string) fs.FS

// IdentifyRepoCommand guesses the primary ecosystem of a repository.
// Checks run in a fixed priority order and the first match wins.
type IdentifyRepoCommand struct {
	openFS FileSystemFactory
}

// NewIdentifyRepoCommand creates an IdentifyRepoCommand over the OS filesystem.
func NewIdentifyRepoCommand() *IdentifyRepoCommand {
	return &IdentifyRepoCommand{openFS: os.DirFS}
}

// Execute classifies the repository. Nothing is cached between calls.
func (it *IdentifyRepoCommand) Execute(
	ctx context.Context,
	repo entities.ReposScm,
) (entities.IdentifyRepoResult, error) {
	fsys := it.openFS(repo.Path)

	isNode, err := repoIsNodeJS(fsys)
	if err != nil {
		return entities.IdentifyRepoResult{}, fmt.Errorf("failed to inspect %s: %w", repo.Path, err)
	}
	if isNode {
		return entities.IdentifyRepoResult{ProjectType: entities.ProjectTypeNodeJS}, nil
	}

	isJava, err := repoIsJava(ctx, fsys)
	if err != nil {
		return entities.IdentifyRepoResult{}, fmt.Errorf("failed to scan %s for java sources: %w", repo.Path, err)
	}
	if isJava {
		return entities.IdentifyRepoResult{ProjectType: entities.ProjectTypeJava}, nil
	}

	projects, err := dotNetCoreProjects(ctx, fsys, repo.Path)
	if err != nil {
		return entities.IdentifyRepoResult{}, fmt.Errorf("failed to scan %s for .NET projects: %w", repo.Path, err)
	}
	if len(projects) > 0 {
		return entities.IdentifyRepoResult{
			ProjectType: entities.ProjectTypeDotNetCore,
			Projects:    projects,
		}, nil
	}

	isFramework, err := repoIsDotNetFramework(fsys)
	if err != nil {
		return entities.IdentifyRepoResult{}, fmt.Errorf("failed to inspect %s: %w", repo.Path, err)
	}
	if isFramework {
		return entities.IdentifyRepoResult{ProjectType: entities.ProjectTypeDotNetFramework}, nil
	}

	logger.Debugf("No known project markers in %s", repo.Path)
	return entities.IdentifyRepoResult{ProjectType: entities.ProjectTypeUnknown}, nil
}

// repoIsNodeJS looks for node_modules/ or package.json at the top level.
func repoIsNodeJS(fsys fs.FS) (bool, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return false, err
	}
	for _, entry := range entries {
		isDir := entryIsDir(fsys, entry.Name(), entry)
		if (isDir && entry.Name() == "node_modules") || (!isDir && entry.Name() == "package.json") {
			return true, nil
		}
	}
	return false, nil
}

func repoIsJava(ctx context.Context, fsys fs.FS) (bool, error) {
	files, err := findFiles(ctx, fsys, javaMaxDepth, func(name string) bool {
		return strings.HasSuffix(name, ".java")
	})
	if err != nil {
		return false, err
	}
	return len(files) > 0, nil
}

// dotNetCoreProjects returns every .csproj/.vbproj in the tree that targets .NET (Core/5+).
func dotNetCoreProjects(ctx context.Context, fsys fs.FS, root string) ([]entities.Project, error) {
	files, err := findFiles(ctx, fsys, unboundDepth, func(name string) bool {
		return strings.HasSuffix(name, ".csproj") || strings.HasSuffix(name, ".vbproj")
	})
	if err != nil {
		return nil, err
	}

	var projects []entities.Project
	for _, file := range files {
		content, readErr := fs.ReadFile(fsys, file)
		if readErr != nil {
			return nil, readErr
		}
		match := targetFrameworkPattern.FindSubmatch(content)
		if match == nil {
			continue
		}
		base := path.Base(file)
		projects = append(projects, entities.Project{
			Path:    filepath.Join(root, filepath.FromSlash(path.Dir(file))),
			Name:    strings.TrimSuffix(base, path.Ext(base)),
			Version: string(match[1]),
		})
	}
	return projects, nil
}

// repoIsDotNetFramework only inspects top-level files. Only ".csproj" names are
// considered: this is what the historical predicate actually matched.
func repoIsDotNetFramework(fsys fs.FS) (bool, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return false, err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csproj") {
			continue
		}
		content, readErr := fs.ReadFile(fsys, entry.Name())
		if readErr != nil {
			return false, readErr
		}
		if targetFrameworkVersionPattern.Match(content) {
			return true, nil
		}
	}
	return false, nil
}

// findFiles walks fsys breadth-first with an explicit queue. Files directly in
// the root are at depth 0; maxDepth < 0 means unbounded. Paths are slash
// separated and relative to the root.
func findFiles(ctx context.Context, fsys fs.FS, maxDepth int, match func(name string) bool) ([]string, error) {
	type pending struct {
		dir   string
		depth int
	}

	var found []string
	var linkedDirs []fs.FileInfo
	queue := []pending{{dir: ".", depth: 0}}
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		current := queue[0]
		queue = queue[1:]

		entries, err := fs.ReadDir(fsys, current.dir)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			entryPath := path.Join(current.dir, entry.Name())
			if entryIsDir(fsys, entryPath, entry) {
				if entry.Type()&fs.ModeSymlink != 0 {
					info, statErr := fs.Stat(fsys, entryPath)
					if statErr != nil || seenBefore(linkedDirs, info) {
						continue
					}
					linkedDirs = append(linkedDirs, info)
				}
				if maxDepth < 0 || current.depth < maxDepth {
					queue = append(queue, pending{dir: entryPath, depth: current.depth + 1})
				}
				continue
			}
			if match(entry.Name()) {
				found = append(found, entryPath)
			}
		}
	}
	return found, nil
}

// entryIsDir follows symbolic links, so a linked directory counts as one.
func entryIsDir(fsys fs.FS, name string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := fs.Stat(fsys, name)
	return err == nil && info.IsDir()
}

// seenBefore reports whether a linked directory was already queued, which
// stops link cycles from being walked forever.
func seenBefore(visited []fs.FileInfo, info fs.FileInfo) bool {
	for _, seen := range visited {
		if os.SameFile(seen, info) {
			return true
		}
	}
	return false
}

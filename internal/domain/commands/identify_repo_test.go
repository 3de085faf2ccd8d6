//go:build unit

package commands_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/codestream-agent/internal/domain/commands"
	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
)

const repoRoot = "/repos/sample"

func identify(t *testing.T, fsys fstest.MapFS) entities.IdentifyRepoResult {
	t.Helper()
	command := commands.NewIdentifyRepoCommandWithFS(fsys)
	result, err := command.Execute(context.Background(), entities.ReposScm{Path: repoRoot})
	require.NoError(t, err)
	return result
}

func file(content string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(content)}
}

func TestIdentifyRepoCommandNodeJS(t *testing.T) {
	t.Parallel()

	t.Run("should detect package.json", func(t *testing.T) {
		t.Parallel()

		// given
		fsys := fstest.MapFS{"package.json": file("{}")}

		// when
		result := identify(t, fsys)

		// then
		assert.Equal(t, entities.IdentifyRepoResult{ProjectType: entities.ProjectTypeNodeJS}, result)
	})

	t.Run("should detect a node_modules directory", func(t *testing.T) {
		t.Parallel()

		// given
		fsys := fstest.MapFS{"node_modules/left-pad/index.js": file("")}

		// when
		result := identify(t, fsys)

		// then
		assert.Equal(t, entities.ProjectTypeNodeJS, result.ProjectType)
	})

	t.Run("should win over every other marker", func(t *testing.T) {
		t.Parallel()

		// given
		fsys := fstest.MapFS{
			"package.json":     file("{}"),
			"src/Main.java":    file("class Main {}"),
			"App/App.csproj":   file("<TargetFramework>net6.0</TargetFramework>"),
			"Legacy.csproj":    file("<TargetFrameworkVersion>v4.8</TargetFrameworkVersion>"),
			"docs/readme.md":   file(""),
			"node_modules.txt": file(""),
		}

		// when
		result := identify(t, fsys)

		// then
		assert.Equal(t, entities.ProjectTypeNodeJS, result.ProjectType)
		assert.Empty(t, result.Projects)
	})

	t.Run("should ignore a package.json directory and node_modules file", func(t *testing.T) {
		t.Parallel()

		// given
		fsys := fstest.MapFS{
			"package.json/inner": file(""),
			"node_modules":       file(""),
		}

		// when
		result := identify(t, fsys)

		// then
		assert.Equal(t, entities.ProjectTypeUnknown, result.ProjectType)
	})
}

func TestIdentifyRepoCommandJava(t *testing.T) {
	t.Parallel()

	t.Run("should detect a java file one level down", func(t *testing.T) {
		t.Parallel()

		// given
		fsys := fstest.MapFS{"src/Foo.java": file("")}

		// when
		result := identify(t, fsys)

		// then
		assert.Equal(t, entities.IdentifyRepoResult{ProjectType: entities.ProjectTypeJava}, result)
	})

	t.Run("should detect a java file two levels down", func(t *testing.T) {
		t.Parallel()

		// given
		fsys := fstest.MapFS{"module/src/Foo.java": file("")}

		// when
		result := identify(t, fsys)

		// then
		assert.Equal(t, entities.ProjectTypeJava, result.ProjectType)
	})

	t.Run("should not look deeper than two levels", func(t *testing.T) {
		t.Parallel()

		// given
		fsys := fstest.MapFS{"src/main/java/Foo.java": file("")}

		// when
		result := identify(t, fsys)

		// then
		assert.Equal(t, entities.ProjectTypeUnknown, result.ProjectType)
	})
}

func TestIdentifyRepoCommandDotNetCore(t *testing.T) {
	t.Parallel()

	t.Run("should list every project targeting .NET", func(t *testing.T) {
		t.Parallel()

		// given
		fsys := fstest.MapFS{
			"src/Api/Api.csproj": file(`<Project Sdk="Microsoft.NET.Sdk.Web">
  <PropertyGroup>
    <TargetFramework>net6.0</TargetFramework>
  </PropertyGroup>
</Project>`),
			"deep/a/b/c/d/Tools.vbproj": file("<TargetFramework>netcoreapp3.1</TargetFramework>"),
			"src/Old/Old.csproj":        file("<TargetFrameworks>net6.0;net7.0</TargetFrameworks>"),
		}

		// when
		result := identify(t, fsys)

		// then
		assert.Equal(t, entities.ProjectTypeDotNetCore, result.ProjectType)
		assert.ElementsMatch(t, []entities.Project{
			{Path: filepath.Join(repoRoot, "src", "Api"), Name: "Api", Version: "net6.0"},
			{Path: filepath.Join(repoRoot, "deep", "a", "b", "c", "d"), Name: "Tools", Version: "netcoreapp3.1"},
		}, result.Projects)
	})

	t.Run("should fall through when no project matches", func(t *testing.T) {
		t.Parallel()

		// given
		fsys := fstest.MapFS{"src/Lib/Lib.csproj": file("<Project />")}

		// when
		result := identify(t, fsys)

		// then
		assert.Equal(t, entities.ProjectTypeUnknown, result.ProjectType)
		assert.Nil(t, result.Projects)
	})
}

func TestIdentifyRepoCommandDotNetFramework(t *testing.T) {
	t.Parallel()

	t.Run("should detect a top-level csproj with a framework version", func(t *testing.T) {
		t.Parallel()

		// given
		fsys := fstest.MapFS{
			"Legacy.csproj": file("<TargetFrameworkVersion>v4.7.2</TargetFrameworkVersion>"),
		}

		// when
		result := identify(t, fsys)

		// then
		assert.Equal(t, entities.IdentifyRepoResult{ProjectType: entities.ProjectTypeDotNetFramework}, result)
	})

	t.Run("should not consider top-level vbproj files", func(t *testing.T) {
		t.Parallel()

		// given
		fsys := fstest.MapFS{
			"Legacy.vbproj": file("<TargetFrameworkVersion>v4.7.2</TargetFrameworkVersion>"),
		}

		// when
		result := identify(t, fsys)

		// then
		assert.Equal(t, entities.ProjectTypeUnknown, result.ProjectType)
	})

	t.Run("should not consider nested csproj files", func(t *testing.T) {
		t.Parallel()

		// given
		fsys := fstest.MapFS{
			"src/Legacy.csproj": file("<TargetFrameworkVersion>v4.7.2</TargetFrameworkVersion>"),
		}

		// when
		result := identify(t, fsys)

		// then
		assert.Equal(t, entities.ProjectTypeUnknown, result.ProjectType)
	})
}

func TestIdentifyRepoCommandUnknown(t *testing.T) {
	t.Parallel()

	// given
	fsys := fstest.MapFS{"readme.md": file("")}

	// when
	result := identify(t, fsys)

	// then
	assert.Equal(t, entities.IdentifyRepoResult{ProjectType: entities.ProjectTypeUnknown}, result)
}

func TestIdentifyRepoCommandOnDisk(t *testing.T) {
	t.Parallel()

	t.Run("should read the repository from disk", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte("{}"), 0o600))
		command := commands.NewIdentifyRepoCommand()

		// when
		result, err := command.Execute(context.Background(), entities.ReposScm{Path: dir})

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.ProjectTypeNodeJS, result.ProjectType)
	})

	t.Run("should propagate filesystem errors", func(t *testing.T) {
		t.Parallel()

		// given
		missing := filepath.Join(t.TempDir(), "missing")
		command := commands.NewIdentifyRepoCommand()

		// when
		_, err := command.Execute(context.Background(), entities.ReposScm{Path: missing})

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestIdentifyRepoCommandSymlinks(t *testing.T) {
	t.Parallel()

	t.Run("should follow a linked node_modules directory", func(t *testing.T) {
		t.Parallel()

		// given
		repo := t.TempDir()
		modules := t.TempDir()
		require.NoError(t, os.Symlink(modules, filepath.Join(repo, "node_modules")))
		command := commands.NewIdentifyRepoCommand()

		// when
		result, err := command.Execute(context.Background(), entities.ReposScm{Path: repo})

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.ProjectTypeNodeJS, result.ProjectType)
	})

	t.Run("should find java sources inside a linked directory", func(t *testing.T) {
		t.Parallel()

		// given
		repo := t.TempDir()
		sources := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(sources, "Foo.java"), []byte("class Foo {}"), 0o600))
		require.NoError(t, os.Symlink(sources, filepath.Join(repo, "src")))
		command := commands.NewIdentifyRepoCommand()

		// when
		result, err := command.Execute(context.Background(), entities.ReposScm{Path: repo})

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.ProjectTypeJava, result.ProjectType)
	})

	t.Run("should stop at link cycles during the unbounded walk", func(t *testing.T) {
		t.Parallel()

		// given
		repo := t.TempDir()
		require.NoError(t, os.Symlink(repo, filepath.Join(repo, "loop")))
		require.NoError(t, os.WriteFile(filepath.Join(repo, "readme.md"), []byte(""), 0o600))
		command := commands.NewIdentifyRepoCommand()

		// when
		result, err := command.Execute(context.Background(), entities.ReposScm{Path: repo})

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.ProjectTypeUnknown, result.ProjectType)
	})

	t.Run("should ignore dangling links", func(t *testing.T) {
		t.Parallel()

		// given
		repo := t.TempDir()
		require.NoError(t, os.Symlink(filepath.Join(repo, "missing"), filepath.Join(repo, "node_modules")))
		command := commands.NewIdentifyRepoCommand()

		// when
		result, err := command.Execute(context.Background(), entities.ReposScm{Path: repo})

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.ProjectTypeUnknown, result.ProjectType)
	})
}

func TestIdentifyRepoCommandCancellation(t *testing.T) {
	t.Parallel()

	// given
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	command := commands.NewIdentifyRepoCommandWithFS(fstest.MapFS{"readme.md": file("")})

	// when
	_, err := command.Execute(ctx, entities.ReposScm{Path: repoRoot})

	// then
	require.ErrorIs(t, err, context.Canceled)
}

func TestFindFiles(t *testing.T) {
	t.Parallel()

	// given
	fsys := fstest.MapFS{
		"a.txt":       file(""),
		"x/b.txt":     file(""),
		"x/y/c.txt":   file(""),
		"x/y/z/d.txt": file(""),
		"x/skip.md":   file(""),
	}
	isText := func(name string) bool { return filepath.Ext(name) == ".txt" }

	// when
	bounded, boundedErr := commands.FindFiles(context.Background(), fsys, 1, isText)
	unbounded, unboundedErr := commands.FindFiles(context.Background(), fsys, -1, isText)

	// then
	require.NoError(t, boundedErr)
	require.NoError(t, unboundedErr)
	assert.Equal(t, []string{"a.txt", "x/b.txt"}, bounded)
	assert.Equal(t, []string{"a.txt", "x/b.txt", "x/y/c.txt", "x/y/z/d.txt"}, unbounded)
}

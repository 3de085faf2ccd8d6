//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/codestream-agent/internal/domain/commands"
	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
	doubles "github.com/rios0rios0/codestream-agent/test/infrastructure/repositorydoubles"
)

func TestRemoteParserParseGitURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		url    string
		scheme string
		domain string
		path   string
	}{
		{
			name:   "https with .git suffix",
			url:    "https://github.com/TeamCodeStream/codestream.git",
			scheme: "https://",
			domain: "github.com",
			path:   "TeamCodeStream/codestream",
		},
		{
			name:   "https with credentials",
			url:    "https://user@dev.azure.com/org/project/_git/repo",
			scheme: "https://",
			domain: "dev.azure.com",
			path:   "org/project/_git/repo",
		},
		{
			name:   "scp style",
			url:    "git@gitlab.com:group/sub/repo.git",
			domain: "gitlab.com",
			path:   "group/sub/repo",
		},
		{
			name:   "ssh scheme with port",
			url:    "ssh://git@bitbucket.org:7999/team/repo.git",
			scheme: "ssh://",
			domain: "bitbucket.org",
			path:   "team/repo",
		},
		{
			name:   "git protocol",
			url:    "git://example.com/org/repo.git",
			scheme: "git://",
			domain: "example.com",
			path:   "org/repo",
		},
		{
			name:   "fully aliased remote",
			url:    "work:TeamCodeStream/codestream.git",
			domain: "work",
			path:   "TeamCodeStream/codestream",
		},
		{
			name:   "leading slashes in path",
			url:    "git@example.com://org/repo.git",
			domain: "example.com",
			path:   "org/repo",
		},
		{
			name: "unparseable",
			url:  "not a remote",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			parser := commands.NewRemoteParser(nil)

			// when
			scheme, domain, path := parser.ParseGitURL(context.Background(), tt.url)

			// then
			assert.Equal(t, tt.scheme, scheme)
			assert.Equal(t, tt.domain, domain)
			assert.Equal(t, tt.path, path)
		})
	}
}

func TestRemoteParserSSHAliases(t *testing.T) {
	t.Parallel()

	t.Run("should resolve an ssh config alias to its hostname", func(t *testing.T) {
		t.Parallel()

		// given
		shell := doubles.NewStubShellRepository().
			WithOutput("ssh -T -G work", "user git\nhostname github.com\nport 22\n")
		parser := commands.NewRemoteParser(shell)

		// when
		_, domain, path := parser.ParseGitURL(context.Background(), "git@work:org/repo.git")

		// then
		assert.Equal(t, "github.com", domain)
		assert.Equal(t, "org/repo", path)
		assert.Equal(t, []string{"ssh -T -G work"}, shell.CommandLines())
	})

	t.Run("should keep the literal host when ssh fails", func(t *testing.T) {
		t.Parallel()

		// given
		shell := doubles.NewStubShellRepository()
		parser := commands.NewRemoteParser(shell)

		// when
		_, domain, _ := parser.ParseGitURL(context.Background(), "git@work:org/repo.git")

		// then
		assert.Equal(t, "work", domain)
	})

	t.Run("should not consult ssh for https remotes", func(t *testing.T) {
		t.Parallel()

		// given
		shell := doubles.NewStubShellRepository()
		parser := commands.NewRemoteParser(shell)

		// when
		_, domain, _ := parser.ParseGitURL(context.Background(), "https://github.com/org/repo.git")

		// then
		assert.Equal(t, "github.com", domain)
		assert.Empty(t, shell.Calls)
	})
}

func TestRemoteParserParse(t *testing.T) {
	t.Parallel()

	t.Run("should merge fetch and push urls of the same repository", func(t *testing.T) {
		t.Parallel()

		// given
		output := "origin\thttps://github.com/org/repo.git (fetch)\n" +
			"origin\tgit@github.com:org/repo.git (push)\n" +
			"upstream\thttps://gitlab.com/team/repo.git (fetch)\n" +
			"upstream\thttps://gitlab.com/team/repo.git (push)\n"
		parser := commands.NewRemoteParser(nil)

		// when
		remotes := parser.Parse(context.Background(), output, "/work/repo")

		// then
		require.Len(t, remotes, 2)
		assert.Equal(t, entities.GitRemote{
			RepoPath: "/work/repo",
			Name:     "origin",
			URL:      "https://github.com/org/repo.git",
			Scheme:   "https://",
			Domain:   "github.com",
			Path:     "org/repo",
			Types: []entities.RemoteURL{
				{URL: "https://github.com/org/repo.git", Type: entities.RemoteTypeFetch},
				{URL: "git@github.com:org/repo.git", Type: entities.RemoteTypePush},
			},
		}, remotes[0])
		assert.Equal(t, "upstream", remotes[1].Name)
		assert.Equal(t, "gitlab.com", remotes[1].Domain)
		assert.Len(t, remotes[1].Types, 2)
	})

	t.Run("should return nothing for empty output", func(t *testing.T) {
		t.Parallel()

		// given
		parser := commands.NewRemoteParser(nil)

		// when
		remotes := parser.Parse(context.Background(), "", "/work/repo")

		// then
		assert.Empty(t, remotes)
	})
}

func TestRemoteParserVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint string
		expected []commands.RemoteVariant
	}{
		{
			name:     "ssh endpoint",
			endpoint: "git@github.com:org/repo.git",
			expected: []commands.RemoteVariant{
				{Type: "ssh", Value: "git@github.com:org/repo.git"},
				{Type: "https", Value: "https://github.com/org/repo.git"},
				{Type: "https", Value: "https://github.com/org/repo"},
			},
		},
		{
			name:     "https endpoint",
			endpoint: "https://github.com/org/repo.git",
			expected: []commands.RemoteVariant{
				{Type: "https", Value: "https://github.com/org/repo.git"},
				{Type: "ssh", Value: "git@github.com:org/repo.git"},
			},
		},
		{
			name:     "unparseable endpoint",
			endpoint: "nonsense",
			expected: []commands.RemoteVariant{{Type: "ssh", Value: "nonsense"}},
		},
		{
			name:     "empty endpoint",
			endpoint: "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			parser := commands.NewRemoteParser(nil)

			// when
			variants := parser.Variants(context.Background(), tt.endpoint)

			// then
			assert.Equal(t, tt.expected, variants)
		})
	}
}

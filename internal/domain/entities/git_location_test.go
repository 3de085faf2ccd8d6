//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
)

func TestParseGitVersion(t *testing.T) {
	t.Parallel()

	t.Run("should strip the git version prefix", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "git version 2.39.0"

		// when
		result := entities.ParseGitVersion(raw)

		// then
		assert.Equal(t, "2.39.0", result)
	})

	t.Run("should keep vendor suffixes", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "git version 2.39.0.windows.1"

		// when
		result := entities.ParseGitVersion(raw)

		// then
		assert.Equal(t, "2.39.0.windows.1", result)
	})

	t.Run("should return input unchanged when prefix is missing", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "2.39.0"

		// when
		result := entities.ParseGitVersion(raw)

		// then
		assert.Equal(t, "2.39.0", result)
	})
}

func TestGitLocationAtLeast(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		version string
		minimum string
		want    bool
	}{
		{name: "equal versions", version: "2.10.0", minimum: "2.10.0", want: true},
		{name: "newer version", version: "2.39.0", minimum: "2.10.0", want: true},
		{name: "older version", version: "1.9.5", minimum: "2.10.0", want: false},
		{name: "windows suffix", version: "2.39.0.windows.1", minimum: "2.39.0", want: true},
		{name: "apple suffix", version: "2.37.1 (Apple Git-137.1)", minimum: "2.38.0", want: false},
		{name: "two component minimum", version: "2.10.1", minimum: "2.10", want: true},
		{name: "unparseable version", version: "unknown", minimum: "2.10.0", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			location := entities.GitLocation{Path: "/usr/bin/git", Version: tt.version}

			// when
			result := location.AtLeast(tt.minimum)

			// then
			assert.Equal(t, tt.want, result)
		})
	}
}

func TestCanonicalVersion(t *testing.T) {
	t.Parallel()

	t.Run("should drop components past patch", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "2.39.0.windows.1"

		// when
		result := entities.CanonicalVersion(raw)

		// then
		assert.Equal(t, "v2.39.0", result)
	})

	t.Run("should return empty for garbage", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "not-a-version"

		// when
		result := entities.CanonicalVersion(raw)

		// then
		assert.Empty(t, result)
	})
}

func TestGitLocationCommand(t *testing.T) {
	t.Parallel()

	t.Run("should run git directly", func(t *testing.T) {
		t.Parallel()

		// given
		location := entities.GitLocation{Path: "/usr/bin/git", Version: "2.39.0"}

		// when
		name, args := location.Command("remote", "-v")

		// then
		assert.Equal(t, "/usr/bin/git", name)
		assert.Equal(t, []string{"remote", "-v"}, args)
	})

	t.Run("should route through the wsl launcher", func(t *testing.T) {
		t.Parallel()

		// given
		location := entities.GitLocation{Path: "wsl.exe", IsWsl: true, WslDistro: "Ubuntu"}

		// when
		name, args := location.Command("remote", "-v")

		// then
		assert.Equal(t, "wsl.exe", name)
		assert.Equal(t, []string{"-d", "Ubuntu", "git", "remote", "-v"}, args)
	})
}

//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	token            string
	teamID           string
	gitPath          string
	minimumVersion   string
	telemetryEnabled bool
}

// NewSettingsBuilder creates a new settings builder with sensible defaults.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder:      testkit.NewBaseBuilder(),
		token:            "test-token",
		teamID:           "team-1",
		minimumVersion:   entities.DefaultMinimumVersion,
		telemetryEnabled: true,
	}
}

// WithToken sets the access token.
func (b *SettingsBuilder) WithToken(token string) *SettingsBuilder {
	b.token = token
	return b
}

// WithTeamID sets the team identifier.
func (b *SettingsBuilder) WithTeamID(teamID string) *SettingsBuilder {
	b.teamID = teamID
	return b
}

// WithGitPath sets the git location hint.
func (b *SettingsBuilder) WithGitPath(path string) *SettingsBuilder {
	b.gitPath = path
	return b
}

// WithMinimumVersion sets the minimum supported git version.
func (b *SettingsBuilder) WithMinimumVersion(version string) *SettingsBuilder {
	b.minimumVersion = version
	return b
}

// WithTelemetry enables or disables telemetry.
func (b *SettingsBuilder) WithTelemetry(enabled bool) *SettingsBuilder {
	b.telemetryEnabled = enabled
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	return &entities.Settings{
		ServerURL: entities.DefaultServerURL,
		WebURL:    entities.DefaultWebURL,
		Token:     b.token,
		TeamID:    b.teamID,
		Git: entities.GitSettings{
			Path:           b.gitPath,
			MinimumVersion: b.minimumVersion,
		},
		Telemetry: entities.TelemetrySettings{Enabled: b.telemetryEnabled},
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.token = "test-token"
	b.teamID = "team-1"
	b.gitPath = ""
	b.minimumVersion = entities.DefaultMinimumVersion
	b.telemetryEnabled = true
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder:      b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		token:            b.token,
		teamID:           b.teamID,
		gitPath:          b.gitPath,
		minimumVersion:   b.minimumVersion,
		telemetryEnabled: b.telemetryEnabled,
	}
}

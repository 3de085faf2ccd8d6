package entities

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultServerURL      = "https://api.codestream.com"
	DefaultWebURL         = "https://app.codestream.com"
	DefaultMinimumVersion = "2.10.0"
)

// Settings is the top-level configuration for the agent.
type Settings struct {
	ServerURL string            `yaml:"server_url"`
	WebURL    string            `yaml:"web_url"`
	Token     string            `yaml:"token"` // Inline, ${ENV_VAR}, or file path
	TeamID    string            `yaml:"team_id"`
	Git       GitSettings       `yaml:"git"`
	Telemetry TelemetrySettings `yaml:"telemetry"`
}

// GitSettings holds git discovery settings.
type GitSettings struct {
	Path           string `yaml:"path"` // Hint passed to the locator
	MinimumVersion string `yaml:"minimum_version"`
}

// TelemetrySettings toggles telemetry events.
type TelemetrySettings struct {
	Enabled bool `yaml:"enabled"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns the settings used when no config file exists.
func NewDefaultSettings() *Settings {
	return &Settings{
		ServerURL: DefaultServerURL,
		WebURL:    DefaultWebURL,
		Token:     resolveToken("${CODESTREAM_TOKEN}"),
		Git:       GitSettings{MinimumVersion: DefaultMinimumVersion},
		Telemetry: TelemetrySettings{Enabled: true},
	}
}

// NewSettings reads and parses a configuration file, expanding environment
// variables and resolving token file paths.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := NewDefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Token = resolveToken(settings.Token)
	settings.Git.Path = os.ExpandEnv(settings.Git.Path)

	if validateErr := validateSettings(settings); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// SettingsLoader loads settings from a config file path; "" auto-detects.
type SettingsLoader func(path string) (*Settings, error)

// LoadSettings loads the given file, the auto-detected one, or the defaults.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		found, err := FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			return NewDefaultSettings(), nil
		}
		path = found
	}
	logger.Debugf("Using config file: %s", path)
	return NewSettings(path)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".codestream.yaml",
		".codestream.yml",
		"codestream.yaml",
		"codestream.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// resolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func resolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Debugf("Environment variable %q is not set", varName)
		return ""
	})

	if resolved == "" {
		return resolved
	}

	if info, statErr := os.Stat(resolved); statErr == nil && !info.IsDir() {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

// validateSettings checks the URLs are absolute.
func validateSettings(settings *Settings) error {
	for key, raw := range map[string]string{
		"server_url": settings.ServerURL,
		"web_url":    settings.WebURL,
	} {
		parsed, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("%s is invalid: %w", key, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", key, raw)
		}
	}
	return nil
}

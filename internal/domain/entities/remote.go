package entities

import (
	"fmt"
	"regexp"
	"strings"
)

// RemoteType distinguishes fetch and push URLs of a remote.
type RemoteType string

const (
	RemoteTypeFetch RemoteType = "fetch"
	RemoteTypePush  RemoteType = "push"
)

// RemoteWeightStrategy selects which well-known remote name sorts first.
type RemoteWeightStrategy string

const (
	PrioritizeOrigin   RemoteWeightStrategy = "prioritizeOrigin"
	PrioritizeUpstream RemoteWeightStrategy = "prioritizeUpstream"
)

// ParseRemoteWeightStrategy validates a strategy name. The empty string
// selects the default weights.
func ParseRemoteWeightStrategy(raw string) (RemoteWeightStrategy, error) {
	switch strategy := RemoteWeightStrategy(raw); strategy {
	case "", PrioritizeOrigin, PrioritizeUpstream:
		return strategy, nil
	default:
		return "", fmt.Errorf("unknown remote strategy %q: use %s or %s", raw, PrioritizeOrigin, PrioritizeUpstream)
	}
}

// RemoteURL is one URL of a remote together with its direction.
type RemoteURL struct {
	URL  string     `json:"url"`
	Type RemoteType `json:"type"`
}

// GitRemote is a remote of a local repository, grouped by domain and path.
type GitRemote struct {
	RepoPath string      `json:"repoPath"`
	Name     string      `json:"name"`
	URL      string      `json:"url"`
	Scheme   string      `json:"scheme"`
	Domain   string      `json:"domain"`
	Path     string      `json:"path"`
	Types    []RemoteURL `json:"types"`
	Provider string      `json:"provider,omitempty"`
}

// Weight orders remotes: lower sorts first. "upstream" beats "origin" beats the rest.
func (r GitRemote) Weight() int {
	switch strings.ToLower(r.Name) {
	case "upstream":
		return -100 //nolint:mnd // sort weight
	case "origin":
		return 0
	default:
		return 100 //nolint:mnd // sort weight
	}
}

// WeightByStrategy is like Weight but lets the caller pick the preferred remote.
func (r GitRemote) WeightByStrategy(strategy RemoteWeightStrategy) int {
	switch strings.ToLower(r.Name) {
	case "upstream":
		if strategy == PrioritizeUpstream {
			return -100 //nolint:mnd // sort weight
		}
		return 0
	case "origin":
		if strategy == PrioritizeOrigin {
			return -100 //nolint:mnd // sort weight
		}
		return 0
	default:
		return 100 //nolint:mnd // sort weight
	}
}

// NormalizedURL is the lower-cased "domain/path" form used as a mapping key.
func (r GitRemote) NormalizedURL() string {
	return strings.ToLower(r.Domain + "/" + r.Path)
}

// WebURL returns a protocol relative URL for browser use.
func (r GitRemote) WebURL() string {
	return "//" + r.Domain + "/" + r.Path
}

var (
	gitURLPattern = regexp.MustCompile(
		`^(?:(git://)(.*?)(?::.*?)?/|(https?://)(?:.*?@)?(.*?)(?::.*?)?/|git@(.*):|(ssh://)(?:.*@)?(.*?)(?::.*?)?(?:/|~)|(?:.*?@)(.*?):)(.*)$`,
	)
	leadingSlashes = regexp.MustCompile(`^/+`)
	trailingDotGit = regexp.MustCompile(`\.git/?$`)
)

// GitURL is a remote URL split into its parts.
type GitURL struct {
	Scheme string
	Domain string
	Path   string
	SSH    bool // written as git@host:..., so the host may be an ssh config alias
}

// ParseGitURL splits a remote URL. Completely aliased remotes such as
// `foo:TeamCodeStream/codestream.git` are read as `git@foo:...`.
func ParseGitURL(url string) (GitURL, bool) {
	match := gitURLPattern.FindStringSubmatch(url)
	if match == nil && strings.Contains(url, ":") && !strings.Contains(url, "@") {
		url = "git@" + url
		match = gitURLPattern.FindStringSubmatch(url)
	}
	if match == nil {
		return GitURL{}, false
	}

	path := leadingSlashes.ReplaceAllString(match[9], "")
	path = trailingDotGit.ReplaceAllString(path, "")
	return GitURL{
		Scheme: firstNonEmpty(match[1], match[3], match[6]),
		Domain: firstNonEmpty(match[2], match[4], match[5], match[7], match[8]),
		Path:   path,
		SSH:    strings.Contains(url, "git@"),
	}, true
}

// NewGitRemote builds a remote from a name and URL. An unparseable URL leaves
// Scheme, Domain and Path empty.
func NewGitRemote(repoPath, name, url string, types ...RemoteType) GitRemote {
	parsed, _ := ParseGitURL(url)
	remote := GitRemote{
		RepoPath: repoPath,
		Name:     name,
		URL:      url,
		Scheme:   parsed.Scheme,
		Domain:   parsed.Domain,
		Path:     parsed.Path,
	}
	for _, kind := range types {
		remote.Types = append(remote.Types, RemoteURL{URL: url, Type: kind})
	}
	return remote
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

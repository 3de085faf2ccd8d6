package commands

import (
	"context"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
	"github.com/rios0rios0/codestream-agent/internal/domain/repositories"
)

var (
	remoteLinePattern  = regexp.MustCompile(`(?m)^(.*)\t(.*)\s\((.*)\)$`)
	sshHostnamePattern = regexp.MustCompile(`(?m)^hostname (.*)$`)
)

// RemoteVariant is an equivalent form of a remote endpoint.
type RemoteVariant struct {
	Type  string `json:"type"` // "ssh" or "https"
	Value string `json:"value"`
}

// RemoteParser turns `git remote -v` output and remote URLs into GitRemotes.
// When a shell is available, SSH host aliases are resolved through `ssh -G`.
type RemoteParser struct {
	shell repositories.ShellRepository
}

// NewRemoteParser creates a RemoteParser. A nil shell disables alias resolution.
func NewRemoteParser(shell repositories.ShellRepository) *RemoteParser {
	return &RemoteParser{shell: shell}
}

// Parse reads `git remote -v` output. Remotes sharing domain and path are
// merged, collecting their fetch/push URLs.
func (it *RemoteParser) Parse(ctx context.Context, data, repoPath string) []entities.GitRemote {
	if data == "" {
		return nil
	}

	var remotes []entities.GitRemote
	groups := make(map[string]int)
	for _, match := range remoteLinePattern.FindAllStringSubmatch(data, -1) {
		name, url, kind := match[1], match[2], entities.RemoteType(match[3])
		scheme, domain, path := it.ParseGitURL(ctx, url)

		key := domain + "/" + path
		if idx, ok := groups[key]; ok {
			remotes[idx].Types = append(remotes[idx].Types, entities.RemoteURL{URL: url, Type: kind})
			continue
		}
		groups[key] = len(remotes)
		remotes = append(remotes, entities.GitRemote{
			RepoPath: repoPath,
			Name:     name,
			URL:      url,
			Scheme:   scheme,
			Domain:   domain,
			Path:     path,
			Types:    []entities.RemoteURL{{URL: url, Type: kind}},
		})
	}
	return remotes
}

// ParseGitURL splits a remote URL into scheme, domain and repository path,
// resolving SSH host aliases. Unparseable input yields three empty strings.
func (it *RemoteParser) ParseGitURL(ctx context.Context, url string) (string, string, string) {
	parsed, ok := entities.ParseGitURL(url)
	if !ok {
		return "", "", ""
	}
	if parsed.SSH {
		if host := it.resolveSSHHost(ctx, parsed.Domain); host != "" {
			parsed.Domain = host
		}
	}
	return parsed.Scheme, parsed.Domain, parsed.Path
}

// resolveSSHHost maps an ssh config alias to its real hostname. Any failure
// returns "" so the caller keeps the literal host.
func (it *RemoteParser) resolveSSHHost(ctx context.Context, host string) string {
	if it.shell == nil || host == "" {
		return ""
	}
	output, err := it.shell.RunCommand(ctx, "ssh", "-T", "-G", host)
	if err != nil || output == "" {
		logger.Debugf("ssh -G %s failed, keeping alias: %v", host, err)
		return ""
	}
	match := sshHostnamePattern.FindStringSubmatch(output)
	if match == nil || match[1] == "" || match[1] == "undefined" {
		return ""
	}
	return strings.TrimSpace(match[1])
}

// Variants returns the https and ssh forms of an endpoint.
func (it *RemoteParser) Variants(ctx context.Context, endpoint string) []RemoteVariant {
	if endpoint == "" {
		return nil
	}
	endpoint = strings.Replace(endpoint, "ssh://", "", 1)

	_, domain, path := it.ParseGitURL(ctx, endpoint)
	if domain == "" {
		kind := "ssh"
		if strings.HasPrefix(endpoint, "http") {
			kind = "https"
		}
		return []RemoteVariant{{Type: kind, Value: endpoint}}
	}

	switch {
	case strings.HasPrefix(endpoint, "git"):
		return []RemoteVariant{
			{Type: "ssh", Value: endpoint},
			{Type: "https", Value: "https://" + domain + "/" + path + ".git"},
			{Type: "https", Value: "https://" + domain + "/" + path},
		}
	case strings.HasPrefix(endpoint, "http"):
		return []RemoteVariant{
			{Type: "https", Value: endpoint},
			{Type: "ssh", Value: "git@" + domain + ":" + path + ".git"},
		}
	default:
		return nil
	}
}

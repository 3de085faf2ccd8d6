package providers

import (
	"strings"

	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
	"github.com/rios0rios0/codestream-agent/internal/domain/repositories"
)

// hostedProvider is a git hosting service recognised by its domains.
type hostedProvider struct {
	name        string
	domains     []string
	branchRoute string // path segment between repository and branch name
}

var _ repositories.ProviderRepository = (*hostedProvider)(nil)

// NewGitHubProvider creates the github.com provider. Extra domains cover GitHub Enterprise hosts.
func NewGitHubProvider(extraDomains ...string) repositories.ProviderRepository {
	return &hostedProvider{
		name:        "github",
		domains:     append([]string{"github.com"}, extraDomains...),
		branchRoute: "tree",
	}
}

// NewGitLabProvider creates the gitlab.com provider. Extra domains cover self-managed hosts.
func NewGitLabProvider(extraDomains ...string) repositories.ProviderRepository {
	return &hostedProvider{
		name:        "gitlab",
		domains:     append([]string{"gitlab.com"}, extraDomains...),
		branchRoute: "-/tree",
	}
}

// NewBitbucketProvider creates the bitbucket.org provider.
func NewBitbucketProvider(extraDomains ...string) repositories.ProviderRepository {
	return &hostedProvider{
		name:        "bitbucket",
		domains:     append([]string{"bitbucket.org"}, extraDomains...),
		branchRoute: "branch",
	}
}

// NewAzureDevOpsProvider creates the Azure DevOps provider, including legacy visualstudio.com hosts.
func NewAzureDevOpsProvider(extraDomains ...string) repositories.ProviderRepository {
	return &hostedProvider{
		name:        "azuredevops",
		domains:     append([]string{"dev.azure.com", "ssh.dev.azure.com", "visualstudio.com"}, extraDomains...),
		branchRoute: "?version=GB",
	}
}

func (it *hostedProvider) Name() string {
	return it.name
}

// Matches accepts the domain itself and any of its subdomains.
func (it *hostedProvider) Matches(domain string) bool {
	domain = strings.ToLower(domain)
	for _, known := range it.domains {
		if domain == known || strings.HasSuffix(domain, "."+known) {
			return true
		}
	}
	return false
}

func (it *hostedProvider) RepoWebURL(remote entities.GitRemote) string {
	return "https:" + remote.WebURL()
}

func (it *hostedProvider) BranchWebURL(remote entities.GitRemote, branch string) string {
	if strings.HasPrefix(it.branchRoute, "?") {
		return it.RepoWebURL(remote) + it.branchRoute + branch
	}
	return it.RepoWebURL(remote) + "/" + it.branchRoute + "/" + branch
}

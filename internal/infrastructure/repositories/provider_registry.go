package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
	domainRepos "github.com/rios0rios0/codestream-agent/internal/domain/repositories"
)

// ProviderRegistry manages all registered hosting provider implementations.
type ProviderRegistry struct {
	providers map[string]domainRepos.ProviderRepository
	order     []string
}

// NewProviderRegistry creates an empty provider registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		providers: make(map[string]domainRepos.ProviderRepository),
	}
}

// Register adds a provider under its name. Registering a name twice replaces
// the provider but keeps its original lookup position.
func (r *ProviderRegistry) Register(provider domainRepos.ProviderRepository) {
	if _, exists := r.providers[provider.Name()]; !exists {
		r.order = append(r.order, provider.Name())
	}
	r.providers[provider.Name()] = provider
}

// Get returns the provider registered under name.
func (r *ProviderRegistry) Get(name string) (domainRepos.ProviderRepository, error) {
	provider, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider type: %q", name)
	}
	return provider, nil
}

// ForRemote returns the first registered provider serving the remote's domain.
func (r *ProviderRegistry) ForRemote(remote entities.GitRemote) (domainRepos.ProviderRepository, bool) {
	for _, name := range r.order {
		if provider := r.providers[name]; provider.Matches(remote.Domain) {
			return provider, true
		}
	}
	return nil, false
}

// Identify returns the name of the provider serving domain.
func (r *ProviderRegistry) Identify(domain string) (string, bool) {
	provider, ok := r.ForRemote(entities.GitRemote{Domain: domain})
	if !ok {
		return "", false
	}
	return provider.Name(), true
}

// Names returns the sorted list of registered provider names.
func (r *ProviderRegistry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package providers

import (
	"context"
	"fmt"

	"github.com/yairfalse/azcensus/types"
)

// InventoryProvider is the narrow collaborator interface over a cloud
// inventory API. The census core consumes it read-only; all four
// operations block until the underlying call returns or the context
// expires.
type InventoryProvider interface {
	// ListSubscriptions returns every visible subscription with its state.
	ListSubscriptions(ctx context.Context) ([]types.Subscription, error)

	// ListVirtualMachines returns VM descriptors; only the count is used.
	ListVirtualMachines(ctx context.Context, subscriptionID string) ([]types.ResourceDescriptor, error)

	// ListResources returns generic resource descriptors (type, kind).
	ListResources(ctx context.Context, subscriptionID string) ([]types.ResourceDescriptor, error)

	// ListClusters returns managed clusters with their agent pool profiles.
	ListClusters(ctx context.Context, subscriptionID string) ([]types.Cluster, error)

	// Provider info
	Name() string
}

// ProviderConfig holds provider configuration.
type ProviderConfig struct {
	// Profile names a CLI profile to authenticate with; empty uses the
	// default credential chain.
	Profile string
}

// ProviderFactory creates a provider instance
type ProviderFactory func(ctx context.Context, config ProviderConfig) (InventoryProvider, error)

// Registry of available providers
var providers = make(map[string]ProviderFactory)

// RegisterProvider registers a new provider factory
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// GetProvider creates a provider instance by name
func GetProvider(ctx context.Context, name string, config ProviderConfig) (InventoryProvider, error) {
	factory, exists := providers[name]
	if !exists {
		return nil, fmt.Errorf("provider %s not found", name)
	}
	return factory(ctx, config)
}

// ListProviders returns available provider names
func ListProviders() []string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	return names
}

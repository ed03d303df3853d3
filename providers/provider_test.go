package providers

import (
	"context"
	"testing"

	"github.com/yairfalse/azcensus/types"
)

// MockProvider for testing
type MockProvider struct {
	name string
	subs []types.Subscription
}

func (m *MockProvider) Name() string {
	return m.name
}

func (m *MockProvider) ListSubscriptions(ctx context.Context) ([]types.Subscription, error) {
	return m.subs, nil
}

func (m *MockProvider) ListVirtualMachines(ctx context.Context, subscriptionID string) ([]types.ResourceDescriptor, error) {
	return nil, nil
}

func (m *MockProvider) ListResources(ctx context.Context, subscriptionID string) ([]types.ResourceDescriptor, error) {
	return nil, nil
}

func (m *MockProvider) ListClusters(ctx context.Context, subscriptionID string) ([]types.Cluster, error) {
	return nil, nil
}

func TestProviderInterface(t *testing.T) {
	// Ensure MockProvider implements InventoryProvider
	var _ InventoryProvider = (*MockProvider)(nil)

	provider := &MockProvider{
		name: "mock",
		subs: []types.Subscription{
			{ID: "sub-1", Name: "test", State: "Enabled"},
		},
	}

	subs, err := provider.ListSubscriptions(context.Background())
	if err != nil {
		t.Fatalf("ListSubscriptions() error = %v", err)
	}
	if len(subs) != 1 {
		t.Errorf("ListSubscriptions() returned %d subscriptions, want 1", len(subs))
	}
}

func TestProviderRegistry(t *testing.T) {
	RegisterProvider("mock", func(ctx context.Context, config ProviderConfig) (InventoryProvider, error) {
		return &MockProvider{name: "mock"}, nil
	})

	provider, err := GetProvider(context.Background(), "mock", ProviderConfig{})
	if err != nil {
		t.Fatalf("GetProvider() error = %v", err)
	}
	if provider.Name() != "mock" {
		t.Errorf("Name() = %v, want mock", provider.Name())
	}

	if _, err := GetProvider(context.Background(), "missing", ProviderConfig{}); err == nil {
		t.Error("GetProvider() with unknown name should fail")
	}

	names := ListProviders()
	found := false
	for _, name := range names {
		if name == "mock" {
			found = true
		}
	}
	if !found {
		t.Errorf("ListProviders() = %v, missing mock", names)
	}
}

// Package azure implements the inventory provider over the Azure
// Resource Manager SDK.
package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice/v4"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/subscription/armsubscription"

	"github.com/yairfalse/azcensus/providers"
)

// Factory function for creating Azure providers
func NewAzureProviderFactory(ctx context.Context, config providers.ProviderConfig) (providers.InventoryProvider, error) {
	return NewProvider(ctx, config.Profile)
}

func init() {
	// Register the Azure provider factory
	providers.RegisterProvider("azure", NewAzureProviderFactory)
}

// Provider implements InventoryProvider using the ARM SDK. The
// subscriptions client is shared; per-subscription clients are built on
// demand because the SDK scopes them to one subscription each.
type Provider struct {
	cred       azcore.TokenCredential
	subsClient *armsubscription.SubscriptionsClient
}

// NewProvider creates an Azure provider. A non-empty profile selects a
// named section of the Azure CLI config; otherwise the default
// credential chain applies.
func NewProvider(ctx context.Context, profile string) (*Provider, error) {
	cred, err := newCredential(profile)
	if err != nil {
		return nil, fmt.Errorf("create azure credential: %w", err)
	}

	subsClient, err := armsubscription.NewSubscriptionsClient(cred, nil)
	if err != nil {
		return nil, fmt.Errorf("create subscriptions client: %w", err)
	}

	return &Provider{
		cred:       cred,
		subsClient: subsClient,
	}, nil
}

// Name returns the provider name
func (p *Provider) Name() string {
	return "azure"
}

// newCredential builds the token credential for the run.
func newCredential(profile string) (azcore.TokenCredential, error) {
	if profile == "" {
		return azidentity.NewDefaultAzureCredential(nil)
	}

	cliProfile, err := loadCLIProfile(profile)
	if err != nil {
		return nil, err
	}

	return azidentity.NewAzureCLICredential(&azidentity.AzureCLICredentialOptions{
		TenantID: cliProfile.TenantID,
	})
}

func (p *Provider) vmClient(subscriptionID string) (*armcompute.VirtualMachinesClient, error) {
	return armcompute.NewVirtualMachinesClient(subscriptionID, p.cred, nil)
}

func (p *Provider) resourcesClient(subscriptionID string) (*armresources.Client, error) {
	return armresources.NewClient(subscriptionID, p.cred, nil)
}

func (p *Provider) clustersClient(subscriptionID string) (*armcontainerservice.ManagedClustersClient, error) {
	return armcontainerservice.NewManagedClustersClient(subscriptionID, p.cred, nil)
}

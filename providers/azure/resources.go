package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"

	"github.com/yairfalse/azcensus/types"
)

// ListResources returns every generic resource descriptor in the
// subscription with its type and optional kind.
func (p *Provider) ListResources(ctx context.Context, subscriptionID string) ([]types.ResourceDescriptor, error) {
	client, err := p.resourcesClient(subscriptionID)
	if err != nil {
		return nil, fmt.Errorf("create resources client: %w", err)
	}

	var resources []types.ResourceDescriptor

	pager := client.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list resources: %w", err)
		}
		for _, res := range page.Value {
			resources = append(resources, convertGenericResource(res))
		}
	}

	return resources, nil
}

func convertGenericResource(res *armresources.GenericResourceExpanded) types.ResourceDescriptor {
	d := types.ResourceDescriptor{}
	if res == nil {
		return d
	}
	if res.ID != nil {
		d.ID = *res.ID
	}
	if res.Type != nil {
		d.Type = *res.Type
	}
	if res.Kind != nil {
		d.Kind = *res.Kind
	}
	return d
}

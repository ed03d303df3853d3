package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice/v4"

	"github.com/yairfalse/azcensus/types"
)

// ListClusters returns every managed cluster in the subscription with
// its agent pool profiles.
func (p *Provider) ListClusters(ctx context.Context, subscriptionID string) ([]types.Cluster, error) {
	client, err := p.clustersClient(subscriptionID)
	if err != nil {
		return nil, fmt.Errorf("create managed clusters client: %w", err)
	}

	var clusters []types.Cluster

	pager := client.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list AKS clusters: %w", err)
		}
		for _, cluster := range page.Value {
			clusters = append(clusters, convertManagedCluster(cluster))
		}
	}

	return clusters, nil
}

// convertManagedCluster maps an ARM managed cluster to the census
// record, keeping only the agent pool counts the capacity resolver reads.
func convertManagedCluster(cluster *armcontainerservice.ManagedCluster) types.Cluster {
	converted := types.Cluster{}
	if cluster == nil {
		return converted
	}
	if cluster.Name != nil {
		converted.Name = *cluster.Name
	}
	if cluster.Properties == nil {
		return converted
	}
	for _, pool := range cluster.Properties.AgentPoolProfiles {
		if pool == nil {
			continue
		}
		converted.AgentPoolProfiles = append(converted.AgentPoolProfiles, types.AgentPoolProfile{
			MaxCount: pool.MaxCount,
			Count:    pool.Count,
		})
	}
	return converted
}

package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/subscription/armsubscription"

	"github.com/yairfalse/azcensus/types"
)

// ListSubscriptions returns every subscription visible to the
// credential, with its state. Filtering on state is the caller's job.
func (p *Provider) ListSubscriptions(ctx context.Context) ([]types.Subscription, error) {
	var subs []types.Subscription

	pager := p.subsClient.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list subscriptions: %w", err)
		}
		for _, sub := range page.Value {
			subs = append(subs, convertSubscription(sub))
		}
	}

	return subs, nil
}

// convertSubscription maps an ARM subscription to the census record.
func convertSubscription(sub *armsubscription.Subscription) types.Subscription {
	converted := types.Subscription{}
	if sub == nil {
		return converted
	}
	if sub.SubscriptionID != nil {
		converted.ID = *sub.SubscriptionID
	}
	if sub.DisplayName != nil {
		converted.Name = *sub.DisplayName
	}
	if sub.State != nil {
		converted.State = string(*sub.State)
	}
	return converted
}

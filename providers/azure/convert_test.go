package azure

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice/v4"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/subscription/armsubscription"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertSubscription(t *testing.T) {
	t.Run("enabled subscription", func(t *testing.T) {
		state := armsubscription.SubscriptionStateEnabled
		sub := &armsubscription.Subscription{
			SubscriptionID: to.Ptr("00000000-0000-0000-0000-000000000001"),
			DisplayName:    to.Ptr("prod"),
			State:          &state,
		}

		converted := convertSubscription(sub)

		assert.Equal(t, "00000000-0000-0000-0000-000000000001", converted.ID)
		assert.Equal(t, "prod", converted.Name)
		assert.Equal(t, "Enabled", converted.State)
		assert.True(t, converted.Enabled())
	})

	t.Run("disabled subscription", func(t *testing.T) {
		state := armsubscription.SubscriptionStateDisabled
		sub := &armsubscription.Subscription{
			SubscriptionID: to.Ptr("00000000-0000-0000-0000-000000000002"),
			DisplayName:    to.Ptr("old"),
			State:          &state,
		}

		converted := convertSubscription(sub)

		assert.False(t, converted.Enabled())
	})

	t.Run("nil fields", func(t *testing.T) {
		converted := convertSubscription(&armsubscription.Subscription{})
		assert.Empty(t, converted.ID)
		assert.False(t, converted.Enabled())
	})
}

func TestConvertVirtualMachine(t *testing.T) {
	vm := &armcompute.VirtualMachine{
		ID:   to.Ptr("/subscriptions/s/resourceGroups/rg/providers/Microsoft.Compute/virtualMachines/vm-1"),
		Type: to.Ptr("Microsoft.Compute/virtualMachines"),
	}

	converted := convertVirtualMachine(vm)

	assert.Equal(t, "Microsoft.Compute/virtualMachines", converted.Type)
	assert.Contains(t, converted.ID, "vm-1")
}

func TestConvertGenericResource(t *testing.T) {
	t.Run("function app carries its kind", func(t *testing.T) {
		res := &armresources.GenericResourceExpanded{
			ID:   to.Ptr("/subscriptions/s/resourceGroups/rg/providers/Microsoft.Web/sites/fn-1"),
			Type: to.Ptr("Microsoft.Web/sites"),
			Kind: to.Ptr("functionapp,linux"),
		}

		converted := convertGenericResource(res)

		assert.Equal(t, "Microsoft.Web/sites", converted.Type)
		assert.Equal(t, "functionapp,linux", converted.Kind)
	})

	t.Run("kind is optional", func(t *testing.T) {
		res := &armresources.GenericResourceExpanded{
			ID:   to.Ptr("/subscriptions/s/.../storage-1"),
			Type: to.Ptr("Microsoft.Storage/storageAccounts"),
		}

		converted := convertGenericResource(res)

		assert.Equal(t, "Microsoft.Storage/storageAccounts", converted.Type)
		assert.Empty(t, converted.Kind)
	})
}

func TestConvertManagedCluster(t *testing.T) {
	t.Run("autoscaling and manual pools", func(t *testing.T) {
		cluster := &armcontainerservice.ManagedCluster{
			Name: to.Ptr("prod-aks"),
			Properties: &armcontainerservice.ManagedClusterProperties{
				AgentPoolProfiles: []*armcontainerservice.ManagedClusterAgentPoolProfile{
					{MaxCount: to.Ptr(int32(5)), Count: to.Ptr(int32(3))},
					{Count: to.Ptr(int32(2))},
					nil,
				},
			},
		}

		converted := convertManagedCluster(cluster)

		assert.Equal(t, "prod-aks", converted.Name)
		require.Len(t, converted.AgentPoolProfiles, 2)
		require.NotNil(t, converted.AgentPoolProfiles[0].MaxCount)
		assert.Equal(t, int32(5), *converted.AgentPoolProfiles[0].MaxCount)
		assert.Nil(t, converted.AgentPoolProfiles[1].MaxCount)
		require.NotNil(t, converted.AgentPoolProfiles[1].Count)
		assert.Equal(t, int32(2), *converted.AgentPoolProfiles[1].Count)
	})

	t.Run("no properties", func(t *testing.T) {
		converted := convertManagedCluster(&armcontainerservice.ManagedCluster{
			Name: to.Ptr("bare"),
		})

		assert.Equal(t, "bare", converted.Name)
		assert.Empty(t, converted.AgentPoolProfiles)
	})
}

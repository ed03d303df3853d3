package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"

	"github.com/yairfalse/azcensus/types"
)

// ListVirtualMachines returns every VM in the subscription regardless of
// power state.
func (p *Provider) ListVirtualMachines(ctx context.Context, subscriptionID string) ([]types.ResourceDescriptor, error) {
	client, err := p.vmClient(subscriptionID)
	if err != nil {
		return nil, fmt.Errorf("create virtual machines client: %w", err)
	}

	var vms []types.ResourceDescriptor

	pager := client.NewListAllPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list virtual machines: %w", err)
		}
		for _, vm := range page.Value {
			vms = append(vms, convertVirtualMachine(vm))
		}
	}

	return vms, nil
}

func convertVirtualMachine(vm *armcompute.VirtualMachine) types.ResourceDescriptor {
	d := types.ResourceDescriptor{}
	if vm == nil {
		return d
	}
	if vm.ID != nil {
		d.ID = *vm.ID
	}
	if vm.Type != nil {
		d.Type = *vm.Type
	}
	return d
}

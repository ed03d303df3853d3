// Package census categorizes Azure resource descriptors into a fixed
// taxonomy and accumulates per-subscription and run-level counts.
package census

import (
	"strings"

	"github.com/yairfalse/azcensus/types"
)

// Resource types with special handling in the scan loop.
const (
	// Counted via the VM list, never via the generic resource scan.
	typeVirtualMachine = "microsoft.compute/virtualmachines"

	// Counted as total node capacity by the cluster capacity resolver.
	typeManagedCluster = "microsoft.containerservice/managedclusters"

	// Only function-app kinds count; other site kinds are out of scope.
	typeSites = "microsoft.web/sites"

	// Intentionally never counted.
	typeSynapseWorkspace = "microsoft.synapse/workspaces"
)

// functionAppMarker identifies function apps within the sites kind string.
const functionAppMarker = "functionapp"

// categoryByType maps lower-cased resource types to census categories.
// Types absent from this table are silently ignored.
var categoryByType = map[string]types.Category{
	"microsoft.containerinstance/containergroups": types.CategoryCaaS,
	"microsoft.app/containerapps":                 types.CategoryCaaS,

	"microsoft.storage/storageaccounts": types.CategoryCloudBuckets,

	"microsoft.sql/servers":                     types.CategoryManagedDatabase,
	"microsoft.sql/managedinstances":            types.CategoryManagedDatabase,
	"microsoft.documentdb/databaseaccounts":     types.CategoryManagedDatabase,
	"microsoft.cache/redis":                     types.CategoryManagedDatabase,
	"microsoft.dbformysql/servers":              types.CategoryManagedDatabase,
	"microsoft.dbformysql/flexibleservers":      types.CategoryManagedDatabase,
	"microsoft.dbforpostgresql/servergroupsv2":  types.CategoryManagedDatabase,
	"microsoft.dbforpostgresql/flexibleservers": types.CategoryManagedDatabase,
	"microsoft.dbforpostgresql/servers":         types.CategoryManagedDatabase,

	"microsoft.containerregistry/registries": types.CategoryContainerRegistries,
}

// Categorize resolves a resource type to its census category.
// Comparison is case-insensitive. The VM, cluster, sites, and Synapse
// workspace types never resolve here; they are handled by the scan loop.
func Categorize(resourceType string) (types.Category, bool) {
	cat, ok := categoryByType[normalizeType(resourceType)]
	return cat, ok
}

func normalizeType(resourceType string) string {
	return strings.ToLower(resourceType)
}

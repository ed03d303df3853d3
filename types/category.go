package types

// Category is one of the fixed census buckets.
type Category string

const (
	CategoryVirtualMachines     Category = "Virtual Machines (VMs)"
	CategoryContainerHosts      Category = "Container Hosts (AKS Clusters)"
	CategoryCaaS                Category = "Container as a Service (CaaS)"
	CategoryServerlessFunctions Category = "Serverless Functions"
	CategoryCloudBuckets        Category = "Cloud Buckets (Storage Accounts)"
	CategoryManagedDatabase     Category = "Managed Cloud Database (PaaS)"
	CategoryContainerRegistries Category = "Container Registries (ACR)"
)

// CategoryOrder is the canonical display sequence. Per-subscription
// output, grand totals, and aggregation all iterate in this order.
var CategoryOrder = []Category{
	CategoryVirtualMachines,
	CategoryContainerHosts,
	CategoryCaaS,
	CategoryServerlessFunctions,
	CategoryCloudBuckets,
	CategoryManagedDatabase,
	CategoryContainerRegistries,
}

// Counts maps every category to a non-negative count. Always fully
// populated: construct with NewCounts, never with a bare literal.
type Counts map[Category]int

// NewCounts returns a Counts with every category present at zero.
func NewCounts() Counts {
	c := make(Counts, len(CategoryOrder))
	for _, cat := range CategoryOrder {
		c[cat] = 0
	}
	return c
}

// Add folds other into c, category by category, in canonical order.
func (c Counts) Add(other Counts) {
	for _, cat := range CategoryOrder {
		c[cat] += other[cat]
	}
}

// Total returns the sum across all categories.
func (c Counts) Total() int {
	total := 0
	for _, cat := range CategoryOrder {
		total += c[cat]
	}
	return total
}

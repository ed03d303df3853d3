package census

import (
	"strings"

	"github.com/yairfalse/azcensus/types"
)

// IsFunctionApp reports whether a sites-type descriptor is a function
// app. Sites without a kind, or with a non-function kind, are out of
// scope and dropped.
func IsFunctionApp(d types.ResourceDescriptor) bool {
	if d.Kind == "" {
		return false
	}
	return strings.Contains(strings.ToLower(d.Kind), functionAppMarker)
}

// NodeCapacity sums the potential node count across every agent pool of
// every cluster: maxCount for autoscaling pools, count as the fallback
// for manually sized ones, nothing when neither is set.
func NodeCapacity(clusters []types.Cluster) int {
	total := 0
	for _, cluster := range clusters {
		for _, pool := range cluster.AgentPoolProfiles {
			switch {
			case pool.MaxCount != nil:
				total += int(*pool.MaxCount)
			case pool.Count != nil:
				total += int(*pool.Count)
			}
		}
	}
	return total
}

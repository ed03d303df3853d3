package types

import "time"

// Subscription is an Azure billing/isolation boundary; the unit of
// iteration for a census run.
type Subscription struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

// Enabled reports whether the subscription should be scanned.
// Anything else (Disabled, Warned, PastDue, Deleted) is skipped entirely.
func (s Subscription) Enabled() bool {
	return s.State == "Enabled"
}

// ResourceDescriptor describes one provisioned Azure resource.
// Type comparison is case-insensitive; Kind is optional and only
// meaningful for a few resource types (e.g. web sites).
type ResourceDescriptor struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Kind string `json:"kind,omitempty"`
}

// AgentPoolProfile is one scaling group of a managed cluster.
// MaxCount is set for autoscaling pools, Count for manually sized ones.
type AgentPoolProfile struct {
	MaxCount *int32 `json:"maxCount,omitempty"`
	Count    *int32 `json:"count,omitempty"`
}

// Cluster is a managed Kubernetes cluster with its node pools.
type Cluster struct {
	Name              string             `json:"name"`
	AgentPoolProfiles []AgentPoolProfile `json:"agentPoolProfiles"`
}

// ScanError records a non-fatal failure scoped to one subscription.
// Errors are collected for the whole run and printed once at the end.
type ScanError struct {
	SubscriptionName string `json:"subscription_name"`
	SubscriptionID   string `json:"subscription_id"`
	Message          string `json:"message"`
}

// SubscriptionCensus pairs a subscription with its category counts.
type SubscriptionCensus struct {
	Subscription Subscription `json:"subscription"`
	Counts       Counts       `json:"counts"`
}

// Run is one complete census: every enabled subscription's counts,
// the folded totals, and every error encountered along the way.
type Run struct {
	Timestamp     time.Time            `json:"timestamp"`
	Subscriptions []SubscriptionCensus `json:"subscriptions"`
	Totals        Counts               `json:"totals"`
	Errors        []ScanError          `json:"errors,omitempty"`
}

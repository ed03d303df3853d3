package census

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/yairfalse/azcensus/providers"
	"github.com/yairfalse/azcensus/types"
)

// DefaultCallTimeout bounds each inventory call so one hung ARM request
// cannot hang the whole run.
const DefaultCallTimeout = 2 * time.Minute

// Options configures a Scanner.
type Options struct {
	// CallTimeout applies per inventory call. Zero means DefaultCallTimeout.
	CallTimeout time.Duration

	// Ignore lists subscription IDs or names to skip even when enabled.
	Ignore []string
}

// Scanner walks every enabled subscription and produces a census Run.
type Scanner struct {
	provider providers.InventoryProvider
	logger   zerolog.Logger
	timeout  time.Duration
	ignore   map[string]struct{}
}

// NewScanner creates a scanner over the given inventory provider.
func NewScanner(provider providers.InventoryProvider, logger zerolog.Logger, opts Options) *Scanner {
	timeout := opts.CallTimeout
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}

	ignore := make(map[string]struct{}, len(opts.Ignore))
	for _, name := range opts.Ignore {
		ignore[name] = struct{}{}
	}

	return &Scanner{
		provider: provider,
		logger:   logger,
		timeout:  timeout,
		ignore:   ignore,
	}
}

// Run enumerates enabled subscriptions, scans each, and folds the
// per-subscription counts into run totals in canonical category order.
// Failing to list subscriptions is the only fatal error; everything
// downstream degrades to zero counts plus a recorded ScanError.
func (s *Scanner) Run(ctx context.Context) (*types.Run, error) {
	listCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	subs, err := s.provider.ListSubscriptions(listCtx)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}

	run := &types.Run{
		Timestamp: time.Now().UTC(),
		Totals:    types.NewCounts(),
	}

	for _, sub := range subs {
		if !sub.Enabled() {
			s.logger.Debug().
				Str("subscription", sub.Name).
				Str("state", sub.State).
				Msg("skipping subscription")
			continue
		}
		if s.skipped(sub) {
			s.logger.Info().
				Str("subscription", sub.Name).
				Msg("subscription ignored by config")
			continue
		}

		counts, errs := s.ScanSubscription(ctx, sub)
		run.Subscriptions = append(run.Subscriptions, types.SubscriptionCensus{
			Subscription: sub,
			Counts:       counts,
		})
		run.Totals.Add(counts)
		run.Errors = append(run.Errors, errs...)
	}

	return run, nil
}

// ScanSubscription produces the category counts for one subscription.
// Every returned Counts has all categories present; failures along the
// way leave the affected counts at zero and come back as ScanErrors.
func (s *Scanner) ScanSubscription(ctx context.Context, sub types.Subscription) (types.Counts, []types.ScanError) {
	counts := types.NewCounts()
	var errs []types.ScanError

	s.logger.Info().
		Str("subscription", sub.Name).
		Str("subscription_id", sub.ID).
		Msg("scanning subscription")

	// VMs are counted from their own list; the generic scan skips them.
	vms, err := s.listVMs(ctx, sub.ID)
	if err != nil {
		errs = append(errs, scanError(sub, fmt.Sprintf("failed to list virtual machines: %v", err)))
	} else {
		counts[types.CategoryVirtualMachines] = len(vms)
	}

	resources, err := s.listResources(ctx, sub.ID)
	if err != nil {
		errs = append(errs, scanError(sub, fmt.Sprintf("failed to list resources: %v", err)))
		return counts, errs
	}

	hasClusters := false
	for _, res := range resources {
		if category, ok := s.categorize(res, &hasClusters); ok {
			counts[category]++
		}
	}

	// Cluster capacity resolves in one dedicated pass, regardless of how
	// many cluster descriptors the generic scan saw.
	if hasClusters {
		capacity, capErrs := s.clusterCapacity(ctx, sub)
		counts[types.CategoryContainerHosts] = capacity
		errs = append(errs, capErrs...)
	}

	return counts, errs
}

// categorize resolves one descriptor, flagging cluster sightings for the
// dedicated capacity pass instead of counting them inline.
func (s *Scanner) categorize(res types.ResourceDescriptor, hasClusters *bool) (types.Category, bool) {
	switch normalizeType(res.Type) {
	case typeManagedCluster:
		*hasClusters = true
		return "", false
	case typeSites:
		if IsFunctionApp(res) {
			return types.CategoryServerlessFunctions, true
		}
		return "", false
	case typeVirtualMachine, typeSynapseWorkspace:
		// Already counted, or deliberately excluded.
		return "", false
	default:
		cat, ok := Categorize(res.Type)
		return cat, ok
	}
}

// clusterCapacity computes the subscription's potential node count.
// Fetch failures and nonsensical sums degrade to zero with one ScanError.
func (s *Scanner) clusterCapacity(ctx context.Context, sub types.Subscription) (int, []types.ScanError) {
	s.logger.Info().
		Str("subscription", sub.Name).
		Msg("counting potential AKS node capacity")

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	clusters, err := s.provider.ListClusters(callCtx, sub.ID)
	if err != nil {
		return 0, []types.ScanError{
			scanError(sub, fmt.Sprintf("failed to list AKS clusters: %v", err)),
		}
	}

	capacity := NodeCapacity(clusters)
	if capacity < 0 {
		return 0, []types.ScanError{
			scanError(sub, fmt.Sprintf("unexpected AKS node capacity %d", capacity)),
		}
	}

	return capacity, nil
}

func (s *Scanner) listVMs(ctx context.Context, subID string) ([]types.ResourceDescriptor, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.provider.ListVirtualMachines(callCtx, subID)
}

func (s *Scanner) listResources(ctx context.Context, subID string) ([]types.ResourceDescriptor, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.provider.ListResources(callCtx, subID)
}

func (s *Scanner) skipped(sub types.Subscription) bool {
	if _, ok := s.ignore[sub.ID]; ok {
		return true
	}
	_, ok := s.ignore[sub.Name]
	return ok
}

func scanError(sub types.Subscription, msg string) types.ScanError {
	return types.ScanError{
		SubscriptionName: sub.Name,
		SubscriptionID:   sub.ID,
		Message:          msg,
	}
}

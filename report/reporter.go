// Package report renders census runs as text or JSON. No business
// logic lives here; everything is a pure function of the run.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/yairfalse/azcensus/types"
)

const rule = "###################################################################################"

var notes = []string{
	"Note: The 'Virtual Machines' total includes all states (Running, Stopped, Deallocated, etc.).",
	"Note: 'Container Hosts (AKS Clusters)' reports the total potential node count (maxCount for autoscale or count for manual).",
	"Note: 'Cloud Buckets' counts Storage Accounts (excluding Classic/ADLS Gen1).",
	"Note: 'Container Registries (ACR)' counts the total ACR found, not total container image due to Azure API limitation.",
}

// Reporter writes formatted census output.
type Reporter struct {
	w io.Writer
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// WriteRun renders the whole run: one block per subscription, the grand
// totals, the fixed notes, and the error block when errors occurred.
func (r *Reporter) WriteRun(run *types.Run) {
	for _, sc := range run.Subscriptions {
		r.WriteSubscription(sc)
	}
	r.WriteTotals(run.Totals)
	r.WriteNotes()
	r.WriteErrors(run.Errors)
}

// WriteSubscription renders one subscription's census block in
// canonical category order.
func (r *Reporter) WriteSubscription(sc types.SubscriptionCensus) {
	fmt.Fprintln(r.w, rule)
	fmt.Fprintf(r.w, "Processing Account: %s (%s)\n", sc.Subscription.Name, sc.Subscription.ID)
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, "--- Subscription Resource Census ---")
	for _, cat := range types.CategoryOrder {
		fmt.Fprintf(r.w, "  %s: %d\n", cat, sc.Counts[cat])
	}
	fmt.Fprintln(r.w, rule)
}

// WriteTotals renders the grand-total block in the same category order
// the per-subscription blocks use.
func (r *Reporter) WriteTotals(totals types.Counts) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, rule)
	fmt.Fprintln(r.w, "--- GRAND TOTALS ACROSS ALL ENABLED SUBSCRIPTIONS ---")
	for _, cat := range types.CategoryOrder {
		fmt.Fprintf(r.w, "Grand Total %s: %d\n", cat, totals[cat])
	}
	fmt.Fprintln(r.w, rule)
}

// WriteNotes renders the fixed trailing notes.
func (r *Reporter) WriteNotes() {
	for _, note := range notes {
		fmt.Fprintln(r.w, note)
	}
	fmt.Fprintln(r.w)
}

// WriteErrors renders the error block; nothing is emitted when the run
// had no errors.
func (r *Reporter) WriteErrors(errs []types.ScanError) {
	if len(errs) == 0 {
		return
	}
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, rule)
	fmt.Fprintln(r.w, "Errors Encountered:")
	for _, e := range errs {
		fmt.Fprintf(r.w, "%s (%s) - %s\n", e.SubscriptionName, e.SubscriptionID, e.Message)
	}
	fmt.Fprintln(r.w, rule)
}

// WriteDelta renders per-category changes against a previous run's
// totals, skipping categories that did not move.
func (r *Reporter) WriteDelta(current, previous types.Counts) {
	changed := false
	for _, cat := range types.CategoryOrder {
		if current[cat] != previous[cat] {
			changed = true
			break
		}
	}
	if !changed {
		return
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, "Changes since previous run:")
	for _, cat := range types.CategoryOrder {
		delta := current[cat] - previous[cat]
		if delta == 0 {
			continue
		}
		fmt.Fprintf(r.w, "  %s: %+d\n", cat, delta)
	}
}

// WriteJSON marshals the run for machine consumers.
func (r *Reporter) WriteJSON(run *types.Run) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(run)
}

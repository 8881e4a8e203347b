package reconcile

import (
	"context"
	"fmt"
)

// ApplyPlan writes the plan's catalog through sink.
// Requires opts.Confirmed=true and opts.DryRun=false to actually execute.
// It reports whether the catalog was written.
func ApplyPlan[T any](ctx context.Context, sink Sink[T], plan *Plan[T], opts ApplyOptions) (bool, error) {
	// Safety check: do not execute if not confirmed or dry-run
	if !opts.Confirmed || opts.DryRun {
		return false, nil
	}
	if plan == nil {
		return false, fmt.Errorf("nil plan")
	}

	if err := sink.Replace(ctx, plan.Catalog); err != nil {
		return false, fmt.Errorf("failed to store %s catalog: %w", plan.Mode, err)
	}
	return true, nil
}

// ReconcileAndApply is a convenience wrapper that plans and optionally applies.
func ReconcileAndApply[T any](
	ctx context.Context,
	adapter Adapter[T],
	sink Sink[T],
	existing, incoming []T,
	opts Options,
	apply ApplyOptions,
) (*Plan[T], bool, error) {
	plan, err := Reconcile(ctx, adapter, existing, incoming, opts)
	if err != nil {
		return nil, false, err
	}

	applied, err := ApplyPlan(ctx, sink, plan, apply)
	return plan, applied, err
}

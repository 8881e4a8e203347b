// Package reconcile provides a generic engine for integrating a batch of incoming
// records into an existing catalog.
//
// # Architecture
//
// The package consists of three parts:
//
//  1. Engine: Reconcile matches every incoming record against the catalog-so-far
//     using the adapter's keys, and produces a Plan holding the new catalog value,
//     one Action per incoming record and a summary.
//
//  2. Adapter: record-specific logic (key extraction, id handling, field merge).
//     Adapters are pure functions over values; see feature/inventory/reconcile.
//
//  3. Apply: ApplyPlan writes a plan through a Sink, but only when the caller
//     confirmed it and did not ask for a dry run.
//
// # Matching
//
// In merge mode a candidate matches the first catalog record (lowest position)
// sharing any non-empty key value; keys are tested in precedence order for each
// record. The matched record is overwritten by the candidate and keeps its id.
// Unmatched candidates are appended with ids taken from a running counter that
// starts at the largest existing id. Records updated earlier in the same batch are
// re-indexed, so later candidates see their new key values.
//
// In replace mode the existing catalog is ignored and every candidate is added
// with ids 1..n.
//
// Inputs are never mutated, so a failed write leaves the caller free to retry.
//
// # Usage Example
//
//	plan, err := reconcile.Reconcile(ctx, adapter, existing, incoming, reconcile.Options{Mode: reconcile.ModeMerge})
//	if err != nil {
//	    return err
//	}
//	applied, err := reconcile.ApplyPlan(ctx, store, plan, reconcile.ApplyOptions{Confirmed: true})
package reconcile

package reconcile

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects how incoming records are integrated into the catalog.
type Mode string

const (
	// ModeMerge updates matching records and appends the rest.
	ModeMerge Mode = "merge"
	// ModeReplace discards the existing catalog and renumbers every incoming record.
	ModeReplace Mode = "replace"
)

// ErrInvalidMode is returned for an unknown reconcile mode.
var ErrInvalidMode = errors.New("invalid reconcile mode")

// ParseMode parses a user supplied mode. An empty string means merge.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeMerge:
		return ModeMerge, nil
	case ModeReplace:
		return ModeReplace, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// ActionType represents the type of planned catalog mutation.
type ActionType string

const (
	// ActionUpdate overwrites an existing record, keeping its id.
	ActionUpdate ActionType = "update"
	// ActionAdd appends a new record with a fresh id.
	ActionAdd ActionType = "add"
)

// Action represents a planned mutation for one incoming record.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the matching key value (or the first non-empty key for adds).
	Key string `json:"key"`

	// ID is the id the record ends up with.
	ID int `json:"id"`

	// Reason explains why this action was chosen, e.g. "barcode match".
	Reason string `json:"reason"`
}

// DuplicateKey reports a key value shared by several existing records.
// Matching always resolves to the first of them in catalog order.
type DuplicateKey struct {
	Field string `json:"field"`
	Value string `json:"value"`
	IDs   []int  `json:"ids"`
}

// Plan contains the reconciled catalog and the actions that produced it.
type Plan[T any] struct {
	// Mode is the mode the plan was computed with.
	Mode Mode `json:"mode"`

	// Catalog is the full replacement value for the stored catalog.
	Catalog []T `json:"-"`

	// Actions has one entry per incoming record, in input order.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`

	// DuplicateKeys lists ambiguous keys found in the existing catalog.
	DuplicateKeys []DuplicateKey `json:"duplicate_keys,omitempty"`
}

// PlanSummary provides aggregate statistics for a reconcile plan.
type PlanSummary struct {
	// Incoming is the number of candidate records.
	Incoming int `json:"incoming"`

	// Existing is the size of the catalog before reconciliation.
	Existing int `json:"existing"`

	// Updated counts candidates that matched an existing record.
	Updated int `json:"updated"`

	// Added counts candidates appended with a new id.
	Added int `json:"added"`

	// Total is the size of the resulting catalog.
	Total int `json:"total"`
}

// Options controls reconcile behavior.
type Options struct {
	// Mode defaults to ModeMerge.
	Mode Mode

	// CheckEvery is how many records are processed between cancellation checks.
	// Zero means 1000.
	CheckEvery int
}

// ApplyOptions controls whether a plan is written.
type ApplyOptions struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// Confirmed indicates the caller accepted the plan.
	// If false, nothing is written regardless of DryRun.
	Confirmed bool
}

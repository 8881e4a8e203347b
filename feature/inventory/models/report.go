package models

import (
	"time"

	"inventory-manager/core/reconcile"

	"github.com/shopspring/decimal"
)

// ImportReport describes the outcome of one import run.
type ImportReport struct {
	Source        string                   `json:"source"`
	Mode          reconcile.Mode           `json:"mode"`
	DryRun        bool                     `json:"dry_run"`
	Applied       bool                     `json:"applied"`
	Rows          int                      `json:"rows"`
	Candidates    int                      `json:"candidates"`
	Summary       reconcile.PlanSummary    `json:"summary"`
	Actions       []reconcile.Action       `json:"actions,omitempty"`
	DuplicateKeys []reconcile.DuplicateKey `json:"duplicate_keys,omitempty"`
	StartedAt     time.Time                `json:"started_at"`
	Duration      string                   `json:"duration"`
}

// CategoryStats aggregates one category.
type CategoryStats struct {
	Category   string          `json:"category"`
	Products   int             `json:"products"`
	Stock      int             `json:"stock"`
	LowStock   int             `json:"low_stock"`
	OutOfStock int             `json:"out_of_stock"`
	Value      decimal.Decimal `json:"value"`
}

// InventoryReport is the dashboard summary of the catalog.
type InventoryReport struct {
	TotalProducts int             `json:"total_products"`
	TotalStock    int             `json:"total_stock"`
	LowStock      int             `json:"low_stock"`
	OutOfStock    int             `json:"out_of_stock"`
	TotalValue    decimal.Decimal `json:"total_value"`
	Categories    []CategoryStats `json:"categories"`
	GeneratedAt   time.Time       `json:"generated_at"`
}

// IntegrityIssue is a single problem found in the catalog.
type IntegrityIssue struct {
	Kind    string `json:"kind"`
	Field   string `json:"field,omitempty"`
	Value   string `json:"value,omitempty"`
	IDs     []int  `json:"ids,omitempty"`
	Message string `json:"message"`
}

// IntegrityReport lists catalog problems.
type IntegrityReport struct {
	Products       int              `json:"products"`
	Issues         []IntegrityIssue `json:"issues"`
	MissingColumns []string         `json:"missing_columns,omitempty"`
}

// Healthy reports whether no issue was found.
func (r IntegrityReport) Healthy() bool {
	return len(r.Issues) == 0 && len(r.MissingColumns) == 0
}

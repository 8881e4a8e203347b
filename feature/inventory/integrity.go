package inventory

import (
	"context"
	"fmt"
	"strings"

	"inventory-manager/core/reconcile"
	"inventory-manager/feature/inventory/models"
	"inventory-manager/feature/inventory/store"
)

// Integrity issue kinds.
const (
	IssueDuplicateKey = "duplicate_key"
	IssueDuplicateID  = "duplicate_id"
	IssueInvalid      = "invalid"
)

// CheckIntegrity reports ambiguous keys, repeated ids, invalid records and,
// for table backends, missing columns.
func (s *Service) CheckIntegrity(ctx context.Context) (*models.IntegrityReport, error) {
	report := &models.IntegrityReport{Issues: []models.IntegrityIssue{}}

	if checker, ok := s.store.(store.SchemaChecker); ok {
		missing, err := checker.MissingColumns(ctx)
		if err != nil {
			return nil, fmt.Errorf("schema check failed: %w", err)
		}
		report.MissingColumns = missing
		if len(missing) > 0 {
			// Loading would fail on a broken table.
			return report, nil
		}
	}

	products, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	report.Products = len(products)

	// An empty batch leaves the catalog as is and still reports its duplicate keys.
	plan, err := reconcile.Reconcile[models.Product](ctx, s.adapter, products, nil, reconcile.Options{})
	if err != nil {
		return nil, err
	}
	for _, dup := range plan.DuplicateKeys {
		report.Issues = append(report.Issues, models.IntegrityIssue{
			Kind:    IssueDuplicateKey,
			Field:   dup.Field,
			Value:   dup.Value,
			IDs:     dup.IDs,
			Message: fmt.Sprintf("%d products share %s %q; imports update id %d", len(dup.IDs), dup.Field, dup.Value, dup.IDs[0]),
		})
	}

	seen := make(map[int]int, len(products))
	for _, p := range products {
		seen[p.ID]++
		if seen[p.ID] == 2 {
			report.Issues = append(report.Issues, models.IntegrityIssue{
				Kind:    IssueDuplicateID,
				Field:   "id",
				Value:   fmt.Sprint(p.ID),
				IDs:     []int{p.ID},
				Message: fmt.Sprintf("id %d is used more than once", p.ID),
			})
		}
		if problems := validate(p); len(problems) > 0 {
			report.Issues = append(report.Issues, models.IntegrityIssue{
				Kind:    IssueInvalid,
				IDs:     []int{p.ID},
				Message: strings.Join(problems, ", "),
			})
		}
	}
	return report, nil
}

func validate(p models.Product) []string {
	var problems []string
	if p.ID <= 0 {
		problems = append(problems, "id must be positive")
	}
	if strings.TrimSpace(p.Name) == "" {
		problems = append(problems, "name is empty")
	}
	if p.Price.IsNegative() {
		problems = append(problems, "price is negative")
	}
	if p.Stock < 0 {
		problems = append(problems, "stock is negative")
	}
	if p.MinStock < 0 {
		problems = append(problems, "min stock is negative")
	}
	return problems
}

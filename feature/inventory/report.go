package inventory

import (
	"context"
	"sort"
	"strings"

	"inventory-manager/feature/inventory/models"

	"github.com/shopspring/decimal"
)

// InventoryReport summarizes stock levels and value, overall and per category.
func (s *Service) InventoryReport(ctx context.Context) (*models.InventoryReport, error) {
	products, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	report := &models.InventoryReport{
		TotalProducts: len(products),
		TotalValue:    decimal.Zero,
		Categories:    []models.CategoryStats{},
		GeneratedAt:   s.now(),
	}

	byCategory := make(map[string]*models.CategoryStats)
	for _, p := range products {
		name := p.Category
		if strings.TrimSpace(name) == "" {
			name = s.cfg.DefaultCategory
		}
		cat, ok := byCategory[name]
		if !ok {
			cat = &models.CategoryStats{Category: name, Value: decimal.Zero}
			byCategory[name] = cat
		}

		value := p.Value()
		report.TotalStock += p.Stock
		report.TotalValue = report.TotalValue.Add(value)
		cat.Products++
		cat.Stock += p.Stock
		cat.Value = cat.Value.Add(value)
		if p.IsLowStock() {
			report.LowStock++
			cat.LowStock++
		}
		if p.IsOutOfStock() {
			report.OutOfStock++
			cat.OutOfStock++
		}
	}

	for _, cat := range byCategory {
		report.Categories = append(report.Categories, *cat)
	}
	sort.Slice(report.Categories, func(i, j int) bool {
		return report.Categories[i].Category < report.Categories[j].Category
	})
	return report, nil
}

// LowStock lists products at or below their threshold, emptiest first.
func (s *Service) LowStock(ctx context.Context) ([]models.Product, error) {
	products, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	low := []models.Product{}
	for _, p := range products {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}
	sort.SliceStable(low, func(i, j int) bool {
		if low[i].Stock != low[j].Stock {
			return low[i].Stock < low[j].Stock
		}
		return low[i].Name < low[j].Name
	})
	return low, nil
}

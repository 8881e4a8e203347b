package inventory

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"inventory-manager/feature/inventory/importer"
	"inventory-manager/feature/inventory/models"
)

// ExportHeader is the column layout of exported files. It is recognized by the importer.
var ExportHeader = []string{"Name", "Barcode", "SKU", "Price", "Stock", "MinStock", "Category", "Supplier"}

// ExportCSV writes the catalog as comma separated text.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) (int, error) {
	rows, err := s.exportRows(ctx)
	if err != nil {
		return 0, err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return 0, fmt.Errorf("failed to write rows: %w", err)
	}
	return len(rows), nil
}

// ExportSheet writes the catalog as an xlsx workbook.
func (s *Service) ExportSheet(ctx context.Context, w io.Writer) (int, error) {
	rows, err := s.exportRows(ctx)
	if err != nil {
		return 0, err
	}
	if err := importer.WriteSpreadsheet(w, "Inventory", ExportHeader, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *Service) exportRows(ctx context.Context) ([][]string, error) {
	products, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, len(products))
	for i, p := range products {
		rows[i] = exportRow(p)
	}
	return rows, nil
}

func exportRow(p models.Product) []string {
	return []string{
		p.Name,
		p.Barcode,
		p.SKU,
		p.Price.String(),
		strconv.Itoa(p.Stock),
		strconv.Itoa(p.MinStock),
		p.Category,
		p.Supplier,
	}
}

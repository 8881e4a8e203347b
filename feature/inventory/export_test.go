package inventory

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"inventory-manager/feature/inventory/importer"
	"inventory-manager/feature/inventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportCatalog() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Milk, whole", Barcode: "111", SKU: "M1", Category: "Dairy", Supplier: "Acme", Price: price("2.5"), Stock: 4, MinStock: 3},
		{ID: 2, Name: "Bread", Barcode: "222", SKU: "B1", Category: "Bakery", Supplier: "Oven Co", Price: price("1.2"), Stock: 0, MinStock: 5},
	}
}

func TestExportCSV(t *testing.T) {
	svc, _ := newTestService(t, exportCatalog()...)

	var buf bytes.Buffer
	n, err := svc.ExportCSV(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name,Barcode,SKU,Price,Stock,MinStock,Category,Supplier", lines[0])
	assert.Equal(t, `"Milk, whole",111,M1,2.5,4,3,Dairy,Acme`, lines[1])
}

func TestExportCSV_ReimportsUnchanged(t *testing.T) {
	src, _ := newTestService(t, exportCatalog()...)
	var buf bytes.Buffer
	_, err := src.ExportCSV(context.Background(), &buf)
	require.NoError(t, err)

	dst, st := newTestService(t)
	_, err = dst.ImportFile(context.Background(), "export.csv", &buf, ImportOptions{})
	require.NoError(t, err)

	got := load(t, st)
	want := exportCatalog()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Name, got[i].Name)
		assert.Equal(t, want[i].Barcode, got[i].Barcode)
		assert.Equal(t, want[i].SKU, got[i].SKU)
		assert.Equal(t, want[i].Category, got[i].Category)
		assert.Equal(t, want[i].Supplier, got[i].Supplier)
		assert.Equal(t, want[i].Stock, got[i].Stock)
		assert.Equal(t, want[i].MinStock, got[i].MinStock)
		assert.True(t, want[i].Price.Equal(got[i].Price))
	}
}

func TestExportSheet(t *testing.T) {
	svc, _ := newTestService(t, exportCatalog()...)

	var buf bytes.Buffer
	n, err := svc.ExportSheet(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	rows, err := importer.ReadSpreadsheet(&buf)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, ExportHeader, rows[0])
	assert.Equal(t, "Bread", rows[2][0])
}

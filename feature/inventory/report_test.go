package inventory

import (
	"context"
	"testing"

	"inventory-manager/feature/inventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryReport(t *testing.T) {
	svc, _ := newTestService(t,
		models.Product{ID: 1, Name: "Cola", Category: "Drinks", Price: price("1.50"), Stock: 10, MinStock: 5},
		models.Product{ID: 2, Name: "Bread", Category: "Bakery", Price: price("2"), Stock: 0, MinStock: 5},
		models.Product{ID: 3, Name: "Tea", Category: "Drinks", Price: price("3"), Stock: 2, MinStock: 5},
		models.Product{ID: 4, Name: "Loose", Price: price("1"), Stock: 1, MinStock: 0},
	)

	report, err := svc.InventoryReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, report.TotalProducts)
	assert.Equal(t, 13, report.TotalStock)
	assert.Equal(t, 2, report.LowStock)
	assert.Equal(t, 1, report.OutOfStock)
	assert.True(t, price("22").Equal(report.TotalValue), report.TotalValue.String())
	assert.Equal(t, fixedNow, report.GeneratedAt)

	require.Len(t, report.Categories, 3)
	assert.Equal(t, "Bakery", report.Categories[0].Category)
	assert.Equal(t, "Drinks", report.Categories[1].Category)
	assert.Equal(t, svc.cfg.DefaultCategory, report.Categories[2].Category)
	assert.Equal(t, 2, report.Categories[1].Products)
	assert.True(t, price("21").Equal(report.Categories[1].Value))
}

func TestLowStock(t *testing.T) {
	svc, _ := newTestService(t,
		models.Product{ID: 1, Name: "Cola", Stock: 10, MinStock: 5},
		models.Product{ID: 2, Name: "Tea", Stock: 2, MinStock: 5},
		models.Product{ID: 3, Name: "Bread", Stock: 0, MinStock: 5},
		models.Product{ID: 4, Name: "Coffee", Stock: 2, MinStock: 5},
	)

	low, err := svc.LowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, low, 3)
	assert.Equal(t, "Bread", low[0].Name)
	assert.Equal(t, "Coffee", low[1].Name)
	assert.Equal(t, "Tea", low[2].Name)
}

package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_items (id INTEGER PRIMARY KEY, name TEXT, barcode TEXT)").Error
	require.NoError(t, err)

	ctx := context.Background()
	columns, err := GetTableColumns(ctx, db, "test_items")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]ColumnInfo)
	for _, col := range columns {
		colMap[col.Field] = col
	}

	assert.Equal(t, "integer", colMap["id"].Type)
	assert.Equal(t, "PRI", colMap["id"].Key)
	assert.Equal(t, "text", colMap["name"].Type)
	assert.Equal(t, "text", colMap["barcode"].Type)

	// PRAGMA table_info returns an empty result for a non-existent table
	cols, err := GetTableColumns(ctx, db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE products (id INTEGER PRIMARY KEY, name TEXT)").Error)

	ctx := context.Background()
	missing, err := MissingColumns(ctx, db, "products", []string{"id", "name", "sku"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"sku"}, missing)

	missing, err = MissingColumns(ctx, db, "absent", []string{"id"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"id"}, missing)
}

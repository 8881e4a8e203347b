package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnknownCell is the placeholder some POS exports write into empty cells.
const UnknownCell = "UNKNOWN"

// Product is one catalog record.
type Product struct {
	ID            int             `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name          string          `gorm:"column:name;size:255;not null" json:"name"`
	Barcode       string          `gorm:"column:barcode;size:128;index" json:"barcode"`
	SKU           string          `gorm:"column:sku;size:128;index" json:"sku"`
	Category      string          `gorm:"column:category;size:128" json:"category"`
	Supplier      string          `gorm:"column:supplier;size:128" json:"supplier"`
	Price         decimal.Decimal `gorm:"column:price;type:decimal(12,2)" json:"price"`
	Stock         int             `gorm:"column:stock" json:"stock"`
	MinStock      int             `gorm:"column:min_stock" json:"minStock"`
	Icon          string          `gorm:"column:icon;size:32" json:"icon"`
	LastRestocked time.Time       `gorm:"column:last_restocked" json:"lastRestocked"`
}

// TableName overrides the table name.
func (Product) TableName() string {
	return "products"
}

// Columns lists the SQL columns the products table must have.
func (Product) Columns() []string {
	return []string{"id", "name", "barcode", "sku", "category", "supplier", "price", "stock", "min_stock", "icon", "last_restocked"}
}

// IsLowStock reports whether stock is at or below the reorder threshold.
func (p Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// IsOutOfStock reports whether nothing is left.
func (p Product) IsOutOfStock() bool {
	return p.Stock == 0
}

// Value is price times stock.
func (p Product) Value() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}

// ProductInput is the manual entry form.
type ProductInput struct {
	Name     string  `json:"name" validate:"required,min=1,max=255"`
	Barcode  string  `json:"barcode" validate:"max=128"`
	SKU      string  `json:"sku" validate:"max=128"`
	Category string  `json:"category" validate:"max=128"`
	Supplier string  `json:"supplier" validate:"max=128"`
	Price    float64 `json:"price" validate:"gte=0,lte=9999999999.99"`
	Stock    int     `json:"stock" validate:"gte=0,lte=2147483647"`
	MinStock *int    `json:"minStock" validate:"omitempty,gte=0,lte=2147483647"`
	Icon     string  `json:"icon" validate:"max=32"`
}

// QuickAddInput is the name + price shortcut.
type QuickAddInput struct {
	Name  string  `json:"name" validate:"required,min=1,max=255"`
	Price float64 `json:"price" validate:"gte=0,lte=9999999999.99"`
	Stock int     `json:"stock" validate:"gte=0,lte=2147483647"`
}

// StockAdjustment changes stock by Delta.
type StockAdjustment struct {
	Delta int `json:"delta" validate:"required"`
}

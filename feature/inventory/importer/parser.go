package importer

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"inventory-manager/feature/inventory/models"
)

const (
	// nameMinLen is the shortest cell accepted as a product name.
	nameMinLen = 2
	// maxNameParts caps how many cells are combined into a synthesized name.
	maxNameParts = 3
	// categoryMaxLen is the longest leading part still treated as a category.
	categoryMaxLen = 15
	// nameScanColumns bounds the last-resort name scan.
	nameScanColumns = 10
)

// Options parameterizes one Parse call.
type Options struct {
	// ExistingMaxID is the largest id in the current catalog; provisional ids start after it.
	ExistingMaxID int
	// ImportTime is shared by the whole batch for synthesized keys and lastRestocked.
	// Zero means time.Now().
	ImportTime time.Time
	// Config carries the field defaults.
	Config Config
	// Observer receives progress messages. May be nil.
	Observer Observer
}

// Layout describes how a row set was interpreted.
type Layout struct {
	// HasHeader is true when the first non-empty row was recognized as a header.
	HasHeader bool
	// Columns maps each field to its source column.
	Columns Columns
	// Rows holds the non-empty rows, header included.
	Rows [][]string
	// Data holds the rows that become products.
	Data [][]string
}

// DetectLayout drops blank rows and decides whether the first remaining row is a header.
func DetectLayout(rows [][]string) Layout {
	nonEmpty := make([][]string, 0, len(rows))
	for _, r := range rows {
		if !isBlank(r) {
			nonEmpty = append(nonEmpty, r)
		}
	}

	l := Layout{Rows: nonEmpty, Columns: Fallbacks(), Data: nonEmpty}
	if len(nonEmpty) == 0 {
		return l
	}

	tokens := NormalizeHeaders(nonEmpty[0])
	if HasHeader(tokens) {
		l.HasHeader = true
		l.Columns = Resolve(tokens)
		l.Data = nonEmpty[1:]
	}
	return l
}

// Parse converts raw rows into candidate products, one per non-empty data row,
// in input order. Malformed cells never fail; only cancellation does.
func Parse(ctx context.Context, rows [][]string, opts Options) ([]models.Product, error) {
	layout := DetectLayout(rows)
	return ParseLayout(ctx, layout, opts)
}

// ParseLayout is Parse over an already detected layout.
func ParseLayout(ctx context.Context, layout Layout, opts Options) ([]models.Product, error) {
	cfg := opts.Config.withDefaults()
	importTime := opts.ImportTime
	if importTime.IsZero() {
		importTime = time.Now()
	}
	baseID := opts.ExistingMaxID
	if baseID < 0 {
		baseID = 0
	}

	n := len(layout.Data)
	products := make([]models.Product, 0, n)
	interval := progressInterval(n, cfg.ProgressMaxInterval)

	p := rowParser{cols: layout.Columns, cfg: cfg, importTime: importTime, stamp: strconv.FormatInt(importTime.UnixMilli(), 10)}
	for i, row := range layout.Data {
		if i%interval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if i > 0 {
				notify(opts.Observer, fmt.Sprintf("Processing row %d of %d", i, n))
			}
		}

		product := p.parse(row, i)
		product.ID = baseID + 1 + i
		products = append(products, product)
	}

	notify(opts.Observer, fmt.Sprintf("Parsed %d products", len(products)))
	return products, nil
}

// progressInterval is roughly 1% of the rows, at least 1 and at most max.
func progressInterval(n, max int) int {
	interval := n / 100
	if interval > max {
		interval = max
	}
	if interval < 1 {
		interval = 1
	}
	return interval
}

type rowParser struct {
	cols       Columns
	cfg        Config
	importTime time.Time
	stamp      string
}

func (p rowParser) parse(row []string, rowIndex int) models.Product {
	name, categoryOverride := p.name(row, rowIndex)

	category := p.text(row, FieldCategory, p.cfg.DefaultCategory)
	if categoryOverride != "" {
		category = categoryOverride
	}

	return models.Product{
		Name:          name,
		Barcode:       p.key(row, FieldBarcode, "BAR", rowIndex),
		SKU:           p.key(row, FieldSKU, "SKU", rowIndex),
		Category:      category,
		Supplier:      p.text(row, FieldSupplier, p.cfg.DefaultSupplier),
		Price:         toPrice(p.cell(row, FieldPrice)),
		Stock:         toCount(p.cell(row, FieldStock)),
		MinStock:      p.minStock(row),
		Icon:          p.text(row, FieldIcon, p.cfg.DefaultIcon),
		LastRestocked: p.importTime,
	}
}

// cell returns the trimmed value of the field's column, or "" when absent.
func (p rowParser) cell(row []string, f Field) string {
	return cellAt(row, p.cols[f])
}

// text returns the field value, or def when it is blank or UNKNOWN.
func (p rowParser) text(row []string, f Field, def string) string {
	v := p.cell(row, f)
	if v == "" || v == models.UnknownCell {
		return def
	}
	return v
}

// key returns the matching key value, synthesizing a batch-scoped one when missing.
func (p rowParser) key(row []string, f Field, prefix string, rowIndex int) string {
	v := p.cell(row, f)
	if v == "" || v == models.UnknownCell {
		return prefix + "-" + p.stamp + "-" + strconv.Itoa(rowIndex)
	}
	return v
}

func (p rowParser) minStock(row []string) int {
	v := p.cell(row, FieldMinStock)
	if v == "" || v == models.UnknownCell {
		return p.cfg.DefaultMinStock
	}
	return toCount(v)
}

// name derives the product name. The second return value, when set, replaces the category.
func (p rowParser) name(row []string, rowIndex int) (string, string) {
	if v := p.cell(row, FieldName); isNameLike(v) {
		return v, ""
	}

	var parts []string
	for _, c := range row {
		v := strings.TrimSpace(c)
		if !isNameLike(v) {
			continue
		}
		parts = append(parts, v)
		if len(parts) == maxNameParts {
			break
		}
	}
	if len(parts) >= 2 && utf8.RuneCountInString(parts[0]) <= categoryMaxLen {
		return strings.Join(parts[1:], " "), parts[0]
	}
	if len(parts) > 0 {
		return strings.Join(parts, " "), ""
	}

	for i := 0; i < nameScanColumns && i < len(row); i++ {
		v := strings.TrimSpace(row[i])
		if v != "" && v != models.UnknownCell {
			return v, ""
		}
	}

	return "Product-" + strconv.Itoa(rowIndex+1), ""
}

func isNameLike(v string) bool {
	return v != "" && v != models.UnknownCell && utf8.RuneCountInString(v) >= nameMinLen
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

package importer

import (
	"strings"
	"unicode"
)

// Field is a logical product column.
type Field string

const (
	FieldName          Field = "name"
	FieldBarcode       Field = "barcode"
	FieldSKU           Field = "sku"
	FieldPrice         Field = "price"
	FieldStock         Field = "stock"
	FieldMinStock      Field = "minStock"
	FieldCategory      Field = "category"
	FieldSupplier      Field = "supplier"
	FieldIcon          Field = "icon"
	FieldLastRestocked Field = "lastRestocked"
)

// NoColumn marks a field without a source column.
const NoColumn = -1

// Alias maps a field to its accepted header tokens, in priority order,
// and the column used when no header token matches.
type Alias struct {
	Field    Field
	Tokens   []string
	Fallback int
}

// Aliases is the header vocabulary. Tokens are normalized (see NormalizeHeader).
var Aliases = []Alias{
	{FieldName, []string{"name", "productname", "itemname", "product", "item", "title", "description", "assettag", "model"}, 0},
	{FieldBarcode, []string{"barcode", "code", "barcodedata", "upc", "ean", "serialnumber", "serial"}, 3},
	{FieldSKU, []string{"sku", "skucode", "itemcode", "productcode", "model", "assettag"}, 2},
	{FieldPrice, []string{"price", "unitprice", "saleprice", "cost", "rate", "amount"}, 4},
	{FieldStock, []string{"stock", "qty", "quantity", "onhand", "available", "inventory", "status"}, 5},
	{FieldMinStock, []string{"minstock", "min", "minqty", "reorderlevel", "minimum"}, NoColumn},
	{FieldCategory, []string{"category", "cat", "department", "type", "class", "manufacturer"}, 7},
	{FieldSupplier, []string{"supplier", "vendor", "brand", "manufacturer"}, NoColumn},
	{FieldIcon, []string{"icon", "emoji"}, NoColumn},
	{FieldLastRestocked, []string{"lastrestocked", "restocked", "restockdate"}, NoColumn},
}

// extraVocabulary holds header words that mark a header row without mapping to a field.
var extraVocabulary = []string{"lcd", "battery", "status"}

var vocabulary = buildVocabulary()

func buildVocabulary() map[string]struct{} {
	v := make(map[string]struct{})
	for _, a := range Aliases {
		for _, t := range a.Tokens {
			v[t] = struct{}{}
		}
	}
	for _, t := range extraVocabulary {
		v[t] = struct{}{}
	}
	return v
}

// NormalizeHeader lower-cases a header cell and strips everything but letters and digits.
func NormalizeHeader(cell string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(cell) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeHeaders normalizes a whole row.
func NormalizeHeaders(row []string) []string {
	tokens := make([]string, len(row))
	for i, cell := range row {
		tokens[i] = NormalizeHeader(cell)
	}
	return tokens
}

// HasHeader reports whether any normalized token belongs to the header vocabulary.
func HasHeader(tokens []string) bool {
	for _, t := range tokens {
		if _, ok := vocabulary[t]; ok {
			return true
		}
	}
	return false
}

// Columns maps each field to its source column, or NoColumn.
type Columns map[Field]int

// Resolve picks a column per field from normalized header tokens.
// Aliases are tried in priority order; the first header position holding the alias wins.
func Resolve(tokens []string) Columns {
	cols := make(Columns, len(Aliases))
	for _, a := range Aliases {
		cols[a.Field] = resolveOne(a, tokens)
	}
	return cols
}

// Fallbacks returns the positional layout used for files without a header row.
func Fallbacks() Columns {
	cols := make(Columns, len(Aliases))
	for _, a := range Aliases {
		cols[a.Field] = a.Fallback
	}
	return cols
}

func resolveOne(a Alias, tokens []string) int {
	for _, alias := range a.Tokens {
		for i, t := range tokens {
			if t == alias {
				return i
			}
		}
	}
	return a.Fallback
}

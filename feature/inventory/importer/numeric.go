package importer

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"inventory-manager/feature/inventory/models"

	"github.com/shopspring/decimal"
)

const (
	// MaxCount is the largest stock or reorder threshold accepted from a cell.
	MaxCount = math.MaxInt32
	// MaxPrice is the largest price that fits the decimal(12,2) price column.
	MaxPrice = 9999999999.99
)

// leadingNumber matches the numeric prefix a lenient float parser accepts, e.g. "12.5kg" -> "12.5".
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ToNumber coerces a cell to a number. Blank, UNKNOWN and non-numeric cells yield 0.
// With round set the result is rounded half away from zero.
func ToNumber(value string, round bool) float64 {
	s := strings.TrimSpace(value)
	if s == "" || s == models.UnknownCell {
		return 0
	}

	m := leadingNumber.FindString(s)
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if round {
		f = math.Round(f)
	}
	return f
}

// toCount coerces a cell to a stock count. Negative and out-of-range values yield 0.
func toCount(value string) int {
	f := ToNumber(value, true)
	if f < 0 || f > MaxCount {
		return 0
	}
	return int(f)
}

// toPrice coerces a cell to a price. Negative and out-of-range values yield 0.
func toPrice(value string) decimal.Decimal {
	f := ToNumber(value, false)
	if f < 0 || f > MaxPrice {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

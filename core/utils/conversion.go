package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts various types to bool.
// It handles bool, numeric types (1=true), and strings ("1", "true", "yes").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int:
		return v == 1
	case int64:
		return v == 1
	case float64:
		return v == 1
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		return s == "1" || s == "true" || s == "yes"
	case []byte:
		return ToBool(string(v))
	default:
		return false
	}
}

// ToRows converts decoded JSON rows (arrays of mixed scalars) into string rows.
// Non-array entries become empty rows.
func ToRows(raw []any) [][]string {
	rows := make([][]string, 0, len(raw))
	for _, r := range raw {
		cells, ok := r.([]any)
		if !ok {
			rows = append(rows, nil)
			continue
		}
		row := make([]string, len(cells))
		for i, c := range cells {
			row[i] = ToString(c)
		}
		rows = append(rows, row)
	}
	return rows
}

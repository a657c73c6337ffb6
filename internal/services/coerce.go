package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// isBlank reports whether a decoded JSON value counts as missing:
// null, false, zero, the empty string and empty arrays or objects
func isBlank(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case float64:
		return v == 0
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}

// coerceInt converts a decoded JSON value to an int.
// Numbers are truncated toward zero, strings must hold a base 10 integer
// and true counts as 1.
func coerceInt(value any) (int, error) {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v > math.MaxInt32 || v < math.MinInt32 {
			return 0, fmt.Errorf("number %v out of range", v)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("invalid integer %q", v)
		}
		return n, nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("unsupported type %T", value)
	}
}

// coerceID converts a reference field to a row id.
// Ids must be whole positive numbers; a fractional number is not an id.
func coerceID(value any) (int, bool) {
	switch v := value.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
	case bool:
		return 0, false
	}
	id, err := coerceInt(value)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

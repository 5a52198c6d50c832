package models

import (
	"fmt"
	"strconv"
	"strings"
)

// IsComplete reports whether every field named in required is present in
// fields and non-empty after coercing its value to text and trimming.
//
// Presence is a text-form check: numeric zero renders as "0" and boolean
// false as "false", so both count as present. Only a missing field, a nil
// value, or a value whose trimmed text form is empty fails. Fields outside
// the required list never influence the result, and the check is recomputed
// wholesale on every profile save rather than incrementally.
func IsComplete(fields map[string]interface{}, required []string) bool {
	for _, name := range required {
		value, ok := fields[name]
		if !ok {
			return false
		}
		if strings.TrimSpace(coerceText(value)) == "" {
			return false
		}
	}
	return true
}

func coerceText(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}

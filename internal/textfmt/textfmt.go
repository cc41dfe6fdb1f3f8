package textfmt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Ellipsis marks truncated text. A single rune so truncation never grows a
// string past its budget.
const Ellipsis = "…"

var whitespaceRun = regexp.MustCompile(`[\s\p{Zs}]+`)

// Normalize collapses every run of whitespace (including newlines and
// full-width spaces) to a single ASCII space and trims both ends.
func Normalize(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// Truncate normalizes s and shortens it to at most maxChars runes. Truncated
// strings end with the ellipsis rune.
func Truncate(s string, maxChars int) string {
	s = Normalize(s)
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars-1]) + Ellipsis
}

// FormatViews renders a view count with thousands separators and the 回
// counter suffix. Values that cannot be coerced to an integer (non-numeric
// strings, arbitrary JSON values) are returned as their plain string form,
// never an error.
func FormatViews(v interface{}) string {
	switch n := v.(type) {
	case int:
		return groupDigits(int64(n)) + "回"
	case int64:
		return groupDigits(n) + "回"
	case float64:
		return groupDigits(int64(n)) + "回"
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
			return groupDigits(i) + "回"
		}
		return n
	default:
		return fmt.Sprint(v)
	}
}

func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}

package quote

import (
	"strconv"
	"strings"
)

// ParseAmount converts a vi-VN formatted money string ("30.000.000",
// "1,500,000", "125000000 đ") into integer VND. Grouping separators and
// spaces are stripped, then the leading signed digit run is parsed, matching
// how the browser editor reads contenteditable price cells. Anything that
// yields no digits parses as zero; a bad price entry must never reject the
// edit.
func ParseAmount(raw string) int64 {
	cleaned := strings.NewReplacer(".", "", ",", "", " ", "", " ", "").Replace(strings.TrimSpace(raw))
	if cleaned == "" {
		return 0
	}

	end := 0
	if cleaned[0] == '-' || cleaned[0] == '+' {
		end = 1
	}
	for end < len(cleaned) && cleaned[end] >= '0' && cleaned[end] <= '9' {
		end++
	}

	value, err := strconv.ParseInt(cleaned[:end], 10, 64)
	if err != nil {
		return 0
	}
	return value
}

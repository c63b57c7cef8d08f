package history

import (
	"fmt"
	"strings"
)

// SharedMarker separates a quote number from the share token appended to a
// public snapshot's number.
const SharedMarker = "_SHARED_"

// NextNumber increments the trailing digit run of a quote number, preserving
// the prefix and the zero padding width ("QT-2026-007" -> "QT-2026-008",
// "INV-99" -> "INV-100"). A number with no trailing digits is returned
// unchanged; there is nothing to count up.
func NextNumber(current string) string {
	base := BaseQuoteNo(current)

	end := len(base)
	start := end
	for start > 0 && base[start-1] >= '0' && base[start-1] <= '9' {
		start--
	}
	if start == end {
		return base
	}

	digits := base[start:end]
	var value uint64
	for i := 0; i < len(digits); i++ {
		value = value*10 + uint64(digits[i]-'0')
	}
	value++

	return base[:start] + fmt.Sprintf("%0*d", len(digits), value)
}

// BaseQuoteNo strips any shared-snapshot marker so repeated sharing and
// incrementing never stack suffixes.
func BaseQuoteNo(quoteNo string) string {
	if idx := strings.Index(quoteNo, SharedMarker); idx >= 0 {
		return quoteNo[:idx]
	}
	return quoteNo
}

// SharedQuoteNo builds the display number stamped on a public snapshot.
func SharedQuoteNo(quoteNo, token string) string {
	return BaseQuoteNo(quoteNo) + SharedMarker + token
}

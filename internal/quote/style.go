package quote

// Brand constants. The primary and secondary colors identify the company on
// every outgoing document and are not negotiable by untrusted inputs.
const (
	BrandPrimaryColor   = "#FF4D00"
	BrandSecondaryColor = "#1A1A1A"

	MinBodyFontSize    = 8
	MaxBodyFontSize    = 16
	MinHeadingFontSize = 16
	MaxHeadingFontSize = 40
)

// ClampStyle enforces the brand-safety policy on a style coming from an
// untrusted source: brand colors are forced back to the fixed constants and
// font sizes are clamped so the fixed-page layout cannot overflow. Direct
// user edits bypass this; only assistant merges run through it.
func ClampStyle(s *Style) {
	if s == nil {
		return
	}
	s.PrimaryColor = BrandPrimaryColor
	s.SecondaryColor = BrandSecondaryColor
	if s.BodyFontSize != 0 {
		s.BodyFontSize = clampInt(s.BodyFontSize, MinBodyFontSize, MaxBodyFontSize)
	}
	if s.HeadingFontSize != 0 {
		s.HeadingFontSize = clampInt(s.HeadingFontSize, MinHeadingFontSize, MaxHeadingFontSize)
	}
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

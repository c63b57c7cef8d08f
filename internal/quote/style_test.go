package quote

import "testing"

func TestClampStyleForcesBrandColors(t *testing.T) {
	s := Style{PrimaryColor: "#00FF00", SecondaryColor: "hotpink"}
	ClampStyle(&s)
	if s.PrimaryColor != BrandPrimaryColor {
		t.Fatalf("primaryColor %q, want %q", s.PrimaryColor, BrandPrimaryColor)
	}
	if s.SecondaryColor != BrandSecondaryColor {
		t.Fatalf("secondaryColor %q, want %q", s.SecondaryColor, BrandSecondaryColor)
	}
}

func TestClampStyleFontBounds(t *testing.T) {
	cases := []struct {
		body, heading         int
		wantBody, wantHeading int
	}{
		{4, 100, 8, 40},
		{20, 10, 16, 16},
		{12, 24, 12, 24},
		{0, 0, 0, 0}, // zero means unset, left alone
	}
	for _, tc := range cases {
		s := Style{BodyFontSize: tc.body, HeadingFontSize: tc.heading}
		ClampStyle(&s)
		if s.BodyFontSize != tc.wantBody {
			t.Fatalf("body %d clamped to %d, want %d", tc.body, s.BodyFontSize, tc.wantBody)
		}
		if s.HeadingFontSize != tc.wantHeading {
			t.Fatalf("heading %d clamped to %d, want %d", tc.heading, s.HeadingFontSize, tc.wantHeading)
		}
	}
}

func TestClampStyleNil(t *testing.T) {
	ClampStyle(nil) // must not panic
}

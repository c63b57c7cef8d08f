package quote

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"30.000.000", 30000000},
		{"1,500,000", 1500000},
		{"125000000", 125000000},
		{" 2.500.000 ", 2500000},
		{"3 000 000", 3000000},
		{"12.500.000 đ", 12500000},
		{"-500", -500},
		{"+500", 500},
		{"abc", 0},
		{"", 0},
		{"đồng", 0},
		{"0", 0},
	}
	for _, tc := range cases {
		if got := ParseAmount(tc.in); got != tc.want {
			t.Fatalf("ParseAmount(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

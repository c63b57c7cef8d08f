package history

import "testing"

func TestNextNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"QT-2026-007", "QT-2026-008"},
		{"QT-2026-009", "QT-2026-010"},
		{"QT-2026-099", "QT-2026-100"},
		{"INV-99", "INV-100"},
		{"QT-001", "QT-002"},
		{"7", "8"},
		{"DRAFT", "DRAFT"},
		{"", ""},
		{"QT-2026-007_SHARED_abc123", "QT-2026-008"},
	}
	for _, tc := range cases {
		if got := NextNumber(tc.in); got != tc.want {
			t.Fatalf("NextNumber(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSharedQuoteNo(t *testing.T) {
	if got := SharedQuoteNo("QT-2026-007", "tok"); got != "QT-2026-007_SHARED_tok" {
		t.Fatalf("unexpected shared number %q", got)
	}
	// Re-sharing an already shared number must not stack markers.
	if got := SharedQuoteNo("QT-2026-007_SHARED_old", "new"); got != "QT-2026-007_SHARED_new" {
		t.Fatalf("unexpected re-shared number %q", got)
	}
	if got := BaseQuoteNo("QT-2026-007_SHARED_tok"); got != "QT-2026-007" {
		t.Fatalf("unexpected base %q", got)
	}
}

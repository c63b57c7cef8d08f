package assistant

import "testing"

func TestResolveModel(t *testing.T) {
	cases := []struct {
		choice    string
		wantModel string
		wantTemp  float64
	}{
		{ModelFlash, geminiFlashModel, flashTemperature},
		{ModelPro, geminiProModel, proTemperature},
		{"", geminiFlashModel, flashTemperature},
		{"gpt-4", geminiFlashModel, flashTemperature},
	}
	for _, tc := range cases {
		model, temp := resolveModel(tc.choice)
		if model != tc.wantModel || temp != tc.wantTemp {
			t.Fatalf("resolveModel(%q) = %q, %v", tc.choice, model, temp)
		}
	}
}

func TestResolveThinkingLevel(t *testing.T) {
	cases := []struct {
		model string
		level string
		want  string
	}{
		{ModelFlash, ThinkingMinimal, ThinkingMinimal},
		{ModelFlash, ThinkingMedium, ThinkingMedium},
		{ModelFlash, "", ThinkingHigh},
		{ModelPro, ThinkingLow, ThinkingLow},
		{ModelPro, ThinkingHigh, ThinkingHigh},
		{ModelPro, ThinkingMedium, ThinkingHigh},
		{ModelPro, ThinkingMinimal, ThinkingLow},
		{ModelPro, "extreme", ThinkingHigh},
	}
	for _, tc := range cases {
		if got := resolveThinkingLevel(tc.model, tc.level); got != tc.want {
			t.Fatalf("resolveThinkingLevel(%q, %q) = %q, want %q", tc.model, tc.level, got, tc.want)
		}
	}
}

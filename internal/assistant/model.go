package assistant

// Model choices exposed to clients. flash is the fast default, pro trades
// latency for instruction-following fidelity.
const (
	ModelFlash = "flash"
	ModelPro   = "pro"
)

// Thinking levels accepted from clients, lowest to highest deliberation.
const (
	ThinkingMinimal = "minimal"
	ThinkingLow     = "low"
	ThinkingMedium  = "medium"
	ThinkingHigh    = "high"
)

const (
	geminiFlashModel = "gemini-3-flash-preview"
	geminiProModel   = "gemini-3-pro-preview"

	flashTemperature = 0.7
	proTemperature   = 0.3
)

// resolveModel maps a client model choice to the backing Gemini model and
// its sampling temperature. Unknown choices fall back to flash.
func resolveModel(model string) (string, float64) {
	if model == ModelPro {
		return geminiProModel, proTemperature
	}
	return geminiFlashModel, flashTemperature
}

// resolveThinkingLevel validates the requested level and applies the pro
// restriction: the pro model only accepts low and high, so medium is bumped
// up and minimal is bumped down to the nearest supported level. Unknown
// levels default to high.
func resolveThinkingLevel(model, level string) string {
	switch level {
	case ThinkingMinimal, ThinkingLow, ThinkingMedium, ThinkingHigh:
	default:
		level = ThinkingHigh
	}
	if model == ModelPro {
		switch level {
		case ThinkingMedium:
			level = ThinkingHigh
		case ThinkingMinimal:
			level = ThinkingLow
		}
	}
	return level
}

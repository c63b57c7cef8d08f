package assistant

import (
	"encoding/json"
	"strings"
)

// modelReply is the contract the model is asked to honor. UpdatedQuote is
// kept raw so the merge step can decode it leniently.
type modelReply struct {
	Message      string          `json:"message"`
	UpdatedQuote json.RawMessage `json:"updatedQuote"`
}

// parseReply turns raw model output into a reply. It tries a direct JSON
// parse first, then a fenced-block extraction, and finally degrades to
// treating the whole text as a plain message. The bool reports whether a
// structured reply was recovered.
func parseReply(raw string) (modelReply, bool) {
	trimmed := strings.TrimSpace(raw)

	if reply, ok := decodeReply(trimmed); ok {
		return reply, true
	}

	if fenced, ok := extractFencedJSON(trimmed); ok {
		if reply, ok := decodeReply(fenced); ok {
			return reply, true
		}
	}

	return modelReply{Message: trimmed}, false
}

// decodeReply accepts a reply carrying a message, a document update, or
// both. A literal null updatedQuote counts as absent.
func decodeReply(text string) (modelReply, bool) {
	var reply modelReply
	if err := json.Unmarshal([]byte(text), &reply); err != nil {
		return modelReply{}, false
	}
	if update := strings.TrimSpace(string(reply.UpdatedQuote)); update == "" || update == "null" {
		reply.UpdatedQuote = nil
	}
	if reply.Message == "" && len(reply.UpdatedQuote) == 0 {
		return modelReply{}, false
	}
	return reply, true
}

// extractFencedJSON pulls the body out of the first ```json fenced block.
func extractFencedJSON(text string) (string, bool) {
	start := strings.Index(text, "```")
	if start < 0 {
		return "", false
	}
	rest := text[start+3:]
	if after, ok := strings.CutPrefix(rest, "json"); ok {
		rest = after
	}
	end := strings.Index(rest, "```")
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}

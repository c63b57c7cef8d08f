package assistant

import "testing"

func TestParseReplyDirectJSON(t *testing.T) {
	reply, ok := parseReply(`{"message": "done"}`)
	if !ok {
		t.Fatalf("expected structured reply")
	}
	if reply.Message != "done" {
		t.Fatalf("message = %q", reply.Message)
	}
	if len(reply.UpdatedQuote) != 0 {
		t.Fatalf("expected no document payload")
	}
}

func TestParseReplyFencedJSON(t *testing.T) {
	raw := "Here is the result:\n```json\n{\"message\": \"fenced\", \"updatedQuote\": {\"quoteNo\": \"QT-1\"}}\n```\nanything after"
	reply, ok := parseReply(raw)
	if !ok {
		t.Fatalf("expected fenced extraction to succeed")
	}
	if reply.Message != "fenced" {
		t.Fatalf("message = %q", reply.Message)
	}
	if len(reply.UpdatedQuote) == 0 {
		t.Fatalf("expected document payload")
	}
}

func TestParseReplyFenceWithoutLanguageTag(t *testing.T) {
	raw := "```\n{\"message\": \"plain fence\"}\n```"
	reply, ok := parseReply(raw)
	if !ok || reply.Message != "plain fence" {
		t.Fatalf("got ok=%v message=%q", ok, reply.Message)
	}
}

func TestParseReplyDegradesToRawText(t *testing.T) {
	raw := "Xin lỗi, tôi không hiểu yêu cầu này."
	reply, ok := parseReply(raw)
	if ok {
		t.Fatalf("expected unstructured fallback")
	}
	if reply.Message != raw {
		t.Fatalf("message = %q", reply.Message)
	}
}

func TestParseReplyBrokenFenceFallsThrough(t *testing.T) {
	raw := "```json\n{not json at all"
	reply, ok := parseReply(raw)
	if ok {
		t.Fatalf("expected fallback for broken fence")
	}
	if reply.Message != raw {
		t.Fatalf("message = %q", reply.Message)
	}
}

func TestParseReplyDocumentWithoutMessage(t *testing.T) {
	reply, ok := parseReply(`{"updatedQuote": {"quoteNo": "QT-2026-011"}}`)
	if !ok {
		t.Fatalf("expected structured reply")
	}
	if reply.Message != "" {
		t.Fatalf("message = %q", reply.Message)
	}
	if len(reply.UpdatedQuote) == 0 {
		t.Fatalf("expected document payload")
	}
}

func TestParseReplyNullDocumentDegrades(t *testing.T) {
	raw := `{"message": "", "updatedQuote": null}`
	reply, ok := parseReply(raw)
	if ok {
		t.Fatalf("expected unstructured fallback for empty reply")
	}
	if reply.Message != raw {
		t.Fatalf("message = %q", reply.Message)
	}
	if len(reply.UpdatedQuote) != 0 {
		t.Fatalf("null payload should be dropped")
	}
}

func TestParseReplyNullDocumentKeepsMessage(t *testing.T) {
	reply, ok := parseReply(`{"message": "đã hiểu", "updatedQuote": null}`)
	if !ok {
		t.Fatalf("expected structured reply")
	}
	if reply.Message != "đã hiểu" {
		t.Fatalf("message = %q", reply.Message)
	}
	if len(reply.UpdatedQuote) != 0 {
		t.Fatalf("null payload should be dropped")
	}
}

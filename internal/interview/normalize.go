package interview

import (
	"bytes"
	"encoding/json"
	"regexp"
)

// jsonObjectPattern matches from the first '{' to the last '}' in the text.
// This is a best-effort recovery for "prose + one JSON object" replies: text
// with several brace regions, or unbalanced braces inside strings, extracts
// the wrong span and falls through to Unparsed.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// Normalize parses raw model text. It tries the whole text as JSON first, then
// the first brace-delimited span, and otherwise returns Unparsed. It never fails.
func Normalize(raw string) Outcome {
	if res, ok := parseResult([]byte(raw)); ok {
		return Structured{Result: res}
	}
	if m := jsonObjectPattern.FindString(raw); m != "" {
		if res, ok := parseResult([]byte(m)); ok {
			return Structured{Result: res}
		}
	}
	return Unparsed{Raw: raw}
}

// parseResult accepts any non-empty JSON object. Fields are read leniently: a
// value of an unexpected type is converted or dropped on its own and never
// rejects the object. Unknown keys are ignored.
func parseResult(b []byte) (EvaluationResult, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil || len(fields) == 0 {
		return EvaluationResult{}, false
	}
	return EvaluationResult{
		Analysis:    parseAnalysis(fields["analysis"]),
		Feedback:    textField(fields["feedback"]),
		Followup:    textField(fields["followup"]),
		ServerReply: textField(fields["serverReply"]),
	}, true
}

// parseAnalysis keeps each metric that reads as a number. It returns nil when
// analysis is missing, not an object, or has no usable metric.
func parseAnalysis(raw json.RawMessage) *Analysis {
	var metrics map[string]json.RawMessage
	if err := json.Unmarshal(raw, &metrics); err != nil || len(metrics) == 0 {
		return nil
	}
	var a Analysis
	found := false
	for _, f := range []struct {
		key string
		dst **Metric
	}{
		{"score", &a.Score},
		{"clarity", &a.Clarity},
		{"conciseness", &a.Conciseness},
		{"structure", &a.Structure},
		{"fillers", &a.Fillers},
		{"words", &a.Words},
	} {
		v, ok := metrics[f.key]
		if !ok || isNull(v) {
			continue
		}
		var m Metric
		if err := json.Unmarshal(v, &m); err != nil {
			continue
		}
		*f.dst = &m
		found = true
	}
	if !found {
		return nil
	}
	return &a
}

// textField returns a string value as is and any other non-null value as its
// compact JSON text.
func textField(raw json.RawMessage) *string {
	if len(raw) == 0 || isNull(raw) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil
	}
	t := buf.String()
	return &t
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

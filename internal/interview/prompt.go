package interview

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"interviewcoach/internal/completion"
)

// PromptVersion identifies the instruction text below. Bump it whenever the
// wording changes.
const PromptVersion = "interview-eval-v1"

func buildSystemPrompt() string {
	return strings.Join([]string{
		"You are an expert technical interviewer and coach. Given a user's answer to an interview question,",
		"provide a clear evaluation and a numeric score (0-100) for overall quality and for sub-criteria",
		"clarity, conciseness, and structure. Also detect filler words and count them, and provide either a",
		"short written feedback paragraph, and a single follow-up question the interviewer could ask.",
		"Respond ONLY in JSON with keys: analysis, feedback, followup, and serverReply (serverReply may be a short paraphrase).",
		"The analysis should be an object with keys: score (int 0-100), clarity (0-100), conciseness (0-100), structure (0-100), fillers (int), words (int).",
	}, " ")
}

func buildUserPrompt(req Request) string {
	return fmt.Sprintf(
		"Question: %s\n\nCandidate answer: %s\n\nTime taken (s): %s\n\nReturn the JSON as instructed.",
		req.Question, req.Answer, formatTimeTaken(req.TimeTaken),
	)
}

// formatTimeTaken renders numbers as sent, strings without quotes, and an
// absent value as null.
func formatTimeTaken(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "null"
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

// SecondsTaken encodes a duration in seconds for Request.TimeTaken.
func SecondsTaken(seconds float64) json.RawMessage {
	return json.RawMessage(strconv.FormatFloat(seconds, 'f', -1, 64))
}

// BuildPrompt turns a validated request into the messages sent to the model.
// It is deterministic: the same request always yields the same prompt.
func BuildPrompt(req Request) completion.Request {
	return completion.Request{
		System:         buildSystemPrompt(),
		User:           buildUserPrompt(req),
		ResponseSchema: AnalysisSchema(),
	}
}

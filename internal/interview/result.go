package interview

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Metric is an integer score or count. Models do not always keep to integers,
// so floats are rounded and numeric strings such as "80" are accepted.
type Metric int

// UnmarshalJSON accepts a JSON number or a string holding one. Null leaves m unchanged.
func (m *Metric) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		var s string
		if json.Unmarshal(b, &s) != nil {
			return err
		}
		f, err = strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("metric %q is not a number", s)
		}
	}
	f = math.Round(f)
	if math.IsNaN(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return fmt.Errorf("metric %s out of range", string(b))
	}
	*m = Metric(f)
	return nil
}

// Analysis holds the model's sub-scores and counts. Metrics the model left out
// stay nil and are omitted. The 0-100 range asked for in the prompt is not enforced.
type Analysis struct {
	Score       *Metric `json:"score,omitempty"`
	Clarity     *Metric `json:"clarity,omitempty"`
	Conciseness *Metric `json:"conciseness,omitempty"`
	Structure   *Metric `json:"structure,omitempty"`
	Fillers     *Metric `json:"fillers,omitempty"`
	Words       *Metric `json:"words,omitempty"`
}

// EvaluationResult is the body returned on success. A nil Analysis renders as
// an empty object; nil strings render as null.
type EvaluationResult struct {
	Analysis    *Analysis
	Feedback    *string
	Followup    *string
	ServerReply *string
}

type evaluationWire struct {
	Analysis    json.RawMessage `json:"analysis"`
	Feedback    *string         `json:"feedback"`
	Followup    *string         `json:"followup"`
	ServerReply *string         `json:"serverReply"`
}

func (r EvaluationResult) MarshalJSON() ([]byte, error) {
	analysis := json.RawMessage(`{}`)
	if r.Analysis != nil {
		b, err := json.Marshal(r.Analysis)
		if err != nil {
			return nil, err
		}
		analysis = b
	}
	return json.Marshal(evaluationWire{
		Analysis:    analysis,
		Feedback:    r.Feedback,
		Followup:    r.Followup,
		ServerReply: r.ServerReply,
	})
}

// Outcome is the normalized model output: either Structured or Unparsed.
type Outcome interface {
	// Body is the response body for the outcome.
	Body() EvaluationResult
	isOutcome()
}

// Structured is model output that parsed into an EvaluationResult.
type Structured struct {
	Result EvaluationResult
}

func (s Structured) Body() EvaluationResult { return s.Result }
func (Structured) isOutcome()               {}

// Unparsed is model output that could not be parsed. Its body is the sentinel
// result carrying the raw text in serverReply.
type Unparsed struct {
	Raw string
}

func (u Unparsed) Body() EvaluationResult {
	raw := u.Raw
	return EvaluationResult{ServerReply: &raw}
}
func (Unparsed) isOutcome() {}

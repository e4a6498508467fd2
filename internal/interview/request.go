package interview

import (
	"encoding/json"
	"errors"
)

// ErrValidation is returned when question or answer is missing or empty.
var ErrValidation = errors.New("question and answer required")

// Request is the JSON body for POST /api/interview. TimeTaken is kept as the
// raw JSON token so any value the caller sends is passed through to the prompt.
type Request struct {
	Question  string          `json:"question"`
	Answer    string          `json:"answer"`
	TimeTaken json.RawMessage `json:"timeTaken"`
}

// Validate checks that the required fields are present. Values are passed
// through as given; whitespace is not trimmed.
func (r Request) Validate() error {
	if r.Question == "" || r.Answer == "" {
		return ErrValidation
	}
	return nil
}

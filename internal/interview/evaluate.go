package interview

import (
	"context"

	"interviewcoach/internal/completion"
)

// Evaluate validates req, asks the model to judge the answer, and normalizes
// its reply. Errors are either ErrValidation or the client's error.
func Evaluate(ctx context.Context, client completion.Client, req Request) (Outcome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	text, err := client.Complete(ctx, BuildPrompt(req))
	if err != nil {
		return nil, err
	}
	return Normalize(text), nil
}

// Package completion sends an evaluation prompt to a remote chat-completion
// API and returns the text of the first choice.
package completion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"interviewcoach/internal/config"
)

// Request is a single system/user exchange sent to the model.
type Request struct {
	System string
	User   string
	// ResponseSchema is a JSON schema for providers that support constrained
	// output. Providers without such support ignore it.
	ResponseSchema any
}

// Client returns the trimmed text of the first completion choice.
// All failures are reported as *BackendError.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// ClientFunc adapts a function to Client.
type ClientFunc func(ctx context.Context, req Request) (string, error)

func (f ClientFunc) Complete(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// BackendError reports that the remote completion service failed or could not
// be reached. Error returns the underlying description unchanged.
type BackendError struct {
	Provider string
	Err      error
}

func (e *BackendError) Error() string {
	if e.Err == nil {
		return e.Provider + ": unknown error"
	}
	return e.Err.Error()
}

func (e *BackendError) Unwrap() error { return e.Err }

func backendError(provider string, err error) error {
	var be *BackendError
	if errors.As(err, &be) {
		return err
	}
	return &BackendError{Provider: provider, Err: err}
}

// New builds the client for cfg.Provider.
func New(cfg config.Completion) (Client, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI, "":
		return newOpenAI(cfg), nil
	case config.ProviderGemini:
		return newGemini(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported completion provider: %q", cfg.Provider)
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

package llmclient

import (
	"context"
	"errors"
)

// ErrEmptyCompletion is returned when the service answers with no usable text.
var ErrEmptyCompletion = errors.New("empty completion from LLM")

// LLMClient produces a plain-text completion for a system/user message pair.
type LLMClient interface {
	Name() string
	Complete(ctx context.Context, system, user string) (string, error)
	Close() error
}

// PermanentError indicates an error that will not resolve with retries.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

func NewPermanentError(err error) error {
	return &PermanentError{Err: err}
}

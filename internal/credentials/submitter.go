package credentials

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Submitter receives credentials and settles once.
type Submitter interface {
	Submit(ctx context.Context, email, password string) error
}

// SubmitterFunc adapts a function to the Submitter interface.
type SubmitterFunc func(ctx context.Context, email, password string) error

// Submit calls f.
func (f SubmitterFunc) Submit(ctx context.Context, email, password string) error {
	return f(ctx, email, password)
}

// Request is the payload handed to an authentication backend.
type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

var validate = validator.New()

// NewRequest builds and validates a request.
func NewRequest(email, password string) (Request, error) {
	req := Request{Email: email, Password: password}
	if err := validate.Struct(req); err != nil {
		return Request{}, &Error{Type: ErrTypeValidation, Message: "invalid sign-in request", Err: err}
	}
	return req, nil
}

type timeoutSubmitter struct {
	next    Submitter
	timeout time.Duration
}

// WithTimeout bounds every call to next. When next does not return within d
// the call settles with ErrTimeout; next keeps its cancelled context and its
// eventual result is discarded.
func WithTimeout(next Submitter, d time.Duration) Submitter {
	return &timeoutSubmitter{next: next, timeout: d}
}

func (t *timeoutSubmitter) Submit(ctx context.Context, email, password string) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- t.next.Submit(ctx, email, password)
	}()

	select {
	case err := <-done:
		if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, ErrTimeout) {
			return fmt.Errorf("%w after %s: %w", ErrTimeout, t.timeout, err)
		}
		return err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w after %s", ErrTimeout, t.timeout)
		}
		return ctx.Err()
	}
}

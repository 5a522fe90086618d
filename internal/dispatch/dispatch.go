// Package dispatch routes request values to the single handler registered
// for their kind.
//
// The routing table is built once, during composition, by a Builder and is
// never mutated afterwards; a Dispatcher can therefore be shared by every
// goroutine without locking. Building fails when two handlers claim the
// same kind or when a required kind has no handler, so a misconfigured
// table is caught at startup instead of on the first request.
package dispatch

import (
	"context"
	"errors"
	"fmt"
)

// Kind is the discriminator distinguishing one request shape from another,
// e.g. "student.create" or "team.list".
type Kind string

// Request is implemented by every request variant. Variants are value
// types: Bind calls Kind on the zero value to learn the routing key.
type Request interface {
	Kind() Kind
}

// Handler performs one operation for one request kind.
type Handler interface {
	Handle(ctx context.Context, req Request) (any, error)
}

// HandlerFunc adapts an ordinary function to Handler.
type HandlerFunc func(ctx context.Context, req Request) (any, error)

func (f HandlerFunc) Handle(ctx context.Context, req Request) (any, error) {
	return f(ctx, req)
}

// None is the result of operations that only signal success.
type None struct{}

var (
	// ErrDuplicateHandler: a second handler was registered for a kind.
	ErrDuplicateHandler = errors.New("duplicate handler")

	// ErrMissingHandler: no handler is registered for a kind.
	ErrMissingHandler = errors.New("missing handler")

	// ErrRequestType: a handler received a request of the wrong Go type.
	ErrRequestType = errors.New("unexpected request type")

	// ErrResultType: a handler result did not have the type the caller asked for.
	ErrResultType = errors.New("unexpected result type")
)

// ConfigError describes a routing table that cannot be used. It wraps
// ErrDuplicateHandler or ErrMissingHandler.
type ConfigError struct {
	Kind Kind
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("dispatch: %s: %v", e.Kind, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Route binds a handler to the kind it serves.
type Route struct {
	Kind    Kind
	Handler Handler
}

// Bind builds a Route from a typed handler function. The kind comes from
// the zero value of R, so the function signature is the only place the
// request type is named.
func Bind[R Request, O any](fn func(ctx context.Context, req R) (O, error)) Route {
	var zero R
	return Route{
		Kind: zero.Kind(),
		Handler: HandlerFunc(func(ctx context.Context, req Request) (any, error) {
			typed, ok := req.(R)
			if !ok {
				return nil, fmt.Errorf("%w: %s handler got %T", ErrRequestType, zero.Kind(), req)
			}
			return fn(ctx, typed)
		}),
	}
}

// BindCommand is Bind for operations without a result.
func BindCommand[R Request](fn func(ctx context.Context, req R) error) Route {
	return Bind(func(ctx context.Context, req R) (None, error) {
		return None{}, fn(ctx, req)
	})
}

// Sender is what callers of the dispatcher depend on.
type Sender interface {
	Dispatch(ctx context.Context, req Request) (any, error)
}

// Send dispatches req and asserts the result to O.
func Send[O any](ctx context.Context, s Sender, req Request) (O, error) {
	var zero O

	out, err := s.Dispatch(ctx, req)
	if err != nil {
		return zero, err
	}

	typed, ok := out.(O)
	if !ok {
		return zero, fmt.Errorf("%w: %s returned %T, want %T", ErrResultType, req.Kind(), out, zero)
	}
	return typed, nil
}

// Exec dispatches a request whose result is None.
func Exec(ctx context.Context, s Sender, req Request) error {
	_, err := Send[None](ctx, s, req)
	return err
}

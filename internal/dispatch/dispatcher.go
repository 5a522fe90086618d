package dispatch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Builder collects routes and produces an immutable Dispatcher.
// A Builder is not safe for concurrent use; it lives only during startup.
type Builder struct {
	routes map[Kind]Handler
	errs   []error

	log        *slog.Logger
	errorLevel func(error) slog.Level
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used for per-dispatch records.
func WithLogger(log *slog.Logger) Option {
	return func(b *Builder) { b.log = log }
}

// WithErrorLevel chooses the log level of a failed dispatch. The default
// logs every failure at ERROR.
func WithErrorLevel(fn func(error) slog.Level) Option {
	return func(b *Builder) { b.errorLevel = fn }
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		routes:     make(map[Kind]Handler),
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		errorLevel: func(error) slog.Level { return slog.LevelError },
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Register adds routes. A kind registered twice is recorded and reported
// by Build; the first registration stays in place.
func (b *Builder) Register(routes ...Route) *Builder {
	for _, r := range routes {
		if _, exists := b.routes[r.Kind]; exists {
			b.errs = append(b.errs, &ConfigError{Kind: r.Kind, Err: ErrDuplicateHandler})
			continue
		}
		b.routes[r.Kind] = r.Handler
	}
	return b
}

// Build returns the Dispatcher, or every ConfigError found: duplicate
// registrations and required kinds without a handler.
func (b *Builder) Build(required ...Kind) (*Dispatcher, error) {
	errs := append([]error(nil), b.errs...)
	for _, k := range required {
		if _, ok := b.routes[k]; !ok {
			errs = append(errs, &ConfigError{Kind: k, Err: ErrMissingHandler})
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	// Copy so later Register calls on the builder cannot reach the table.
	handlers := make(map[Kind]Handler, len(b.routes))
	for k, h := range b.routes {
		handlers[k] = h
	}

	return &Dispatcher{
		handlers:   handlers,
		log:        b.log,
		errorLevel: b.errorLevel,
	}, nil
}

// Dispatcher is a read-only routing table. It does not retry, cache or
// reorder; it only finds the handler and calls it.
type Dispatcher struct {
	handlers   map[Kind]Handler
	log        *slog.Logger
	errorLevel func(error) slog.Level
}

var _ Sender = (*Dispatcher)(nil)

// Dispatch runs the handler for req.Kind() on the caller's goroutine.
// A context that is already done is reported without calling the handler.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (any, error) {
	kind := req.Kind()

	h, ok := d.handlers[kind]
	if !ok {
		return nil, &ConfigError{Kind: kind, Err: ErrMissingHandler}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := d.log.With(
		slog.String("kind", string(kind)),
		slog.String("dispatch_id", uuid.NewString()),
	)
	start := time.Now()

	out, err := h.Handle(ctx, req)
	elapsed := time.Since(start)

	if err != nil {
		log.Log(ctx, d.errorLevel(err), "request failed",
			slog.Duration("elapsed", elapsed),
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("request handled", slog.Duration("elapsed", elapsed))
	return out, nil
}

// Kinds lists the registered kinds in sorted order.
func (d *Dispatcher) Kinds() []Kind {
	kinds := make([]Kind, 0, len(d.handlers))
	for k := range d.handlers {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Package dispatch routes named operations to the catalog services and
// normalizes every outcome into an Envelope.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"backoffice/internal/errors"
)

// Operation runs one channel with its raw JSON params.
type Operation func(ctx context.Context, params json.RawMessage) (any, error)

type route struct {
	op      Operation
	created bool
}

// Dispatcher is the registry of channels exposed to the UI bridge.
type Dispatcher struct {
	routes   map[string]route
	validate *validator.Validate
	log      *zap.Logger
}

// New creates an empty dispatcher.
func New(validate *validator.Validate, log *zap.Logger) *Dispatcher {
	if validate == nil {
		validate = validator.New()
	}
	return &Dispatcher{
		routes:   make(map[string]route),
		validate: validate,
		log:      log.Named("dispatch"),
	}
}

// Register binds op to channel. Registering a channel twice panics.
func (d *Dispatcher) Register(channel string, op Operation) {
	d.register(channel, route{op: op})
}

// RegisterCreate binds op to channel and reports success as 201.
func (d *Dispatcher) RegisterCreate(channel string, op Operation) {
	d.register(channel, route{op: op, created: true})
}

func (d *Dispatcher) register(channel string, r route) {
	if _, dup := d.routes[channel]; dup {
		panic(fmt.Sprintf("dispatch: channel %q registered twice", channel))
	}
	d.routes[channel] = r
}

// Channels lists the registered channels, sorted.
func (d *Dispatcher) Channels() []string {
	out := make([]string, 0, len(d.routes))
	for ch := range d.routes {
		out = append(out, ch)
	}
	slices.Sort(out)
	return out
}

type requestIDKey struct{}

// WithRequestID attaches a caller-provided request id to ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

// Invoke runs channel with params and wraps the outcome. It never returns an
// error; failures are carried by the envelope.
func (d *Dispatcher) Invoke(ctx context.Context, channel string, params json.RawMessage) (env Envelope) {
	start := time.Now()
	reqID := requestID(ctx)

	defer func() {
		if rec := recover(); rec != nil {
			env = Failure(fmt.Errorf("%s: panic: %v", channel, rec))
		}
		fields := []zap.Field{
			zap.String("request_id", reqID),
			zap.String("channel", channel),
			zap.Int("code", env.Code),
			zap.Duration("duration", time.Since(start)),
		}
		if env.Success {
			d.log.Debug("operation completed", fields...)
		} else {
			d.log.Warn("operation failed", append(fields, zap.String("error", env.Error))...)
		}
	}()

	r, ok := d.routes[channel]
	if !ok {
		return Failure(fmt.Errorf("%w: %s", errors.ErrUnknownChannel, channel))
	}
	data, err := r.op(ctx, params)
	if r.created {
		return WrapCreated(data, err)
	}
	return Wrap(data, err)
}

// Handle registers a channel whose params decode into P. Empty params decode to
// the zero P. Decoding and struct validation failures are 400s.
func Handle[P any](d *Dispatcher, channel string, fn func(ctx context.Context, p P) (any, error)) {
	d.Register(channel, typed(d, fn))
}

// HandleCreate is Handle for channels that create a record.
func HandleCreate[P any](d *Dispatcher, channel string, fn func(ctx context.Context, p P) (any, error)) {
	d.RegisterCreate(channel, typed(d, fn))
}

func typed[P any](d *Dispatcher, fn func(ctx context.Context, p P) (any, error)) Operation {
	return func(ctx context.Context, params json.RawMessage) (any, error) {
		var p P
		if trimmed := bytes.TrimSpace(params); len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
			if err := json.Unmarshal(trimmed, &p); err != nil {
				return nil, errors.Validation(fmt.Sprintf("invalid params: %v", err))
			}
		}
		if err := d.validateParams(p); err != nil {
			return nil, err
		}
		return fn(ctx, p)
	}
}

func (d *Dispatcher) validateParams(p any) error {
	err := d.validate.Struct(p)
	if err == nil {
		return nil
	}
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		// p is not a struct; nothing to validate.
		return nil
	}
	return errors.Validation(err.Error())
}

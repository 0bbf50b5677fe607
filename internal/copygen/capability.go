package copygen

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"addesigner/internal/domain"
	"addesigner/internal/infra"
)

// Model is an initialized text generator.
type Model interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

// Loader initializes a Model. Loading may be slow (model download, warm-up).
type Loader interface {
	Name() string
	Load(ctx context.Context) (Model, error)
}

// State reports where the capability is in its lifecycle.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// Status is a snapshot of the capability for callers that show progress.
type Status struct {
	Provider string    `json:"provider"`
	State    State     `json:"state"`
	Error    string    `json:"error,omitempty"`
	ReadyAt  time.Time `json:"ready_at,omitzero"`
}

// Capability owns the process-wide generator handle. The first caller loads
// it and concurrent first callers wait on that same load. A failed load is
// kept as StateFailed until a later call tries again.
type Capability struct {
	loader Loader
	logger *infra.Logger
	group  singleflight.Group

	mu      sync.RWMutex
	model   Model
	state   State
	lastErr error
	readyAt time.Time
}

func NewCapability(loader Loader, logger *infra.Logger) *Capability {
	return &Capability{loader: loader, logger: logger, state: StateIdle}
}

func (c *Capability) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	st := Status{Provider: c.loader.Name(), State: c.state, ReadyAt: c.readyAt}
	if c.lastErr != nil {
		st.Error = c.lastErr.Error()
	}
	return st
}

// Acquire returns the loaded model, loading it on first use. The load is
// detached from ctx cancellation since every waiting caller shares it.
func (c *Capability) Acquire(ctx context.Context) (Model, error) {
	c.mu.RLock()
	m := c.model
	c.mu.RUnlock()
	if m != nil {
		return m, nil
	}
	v, err, _ := c.group.Do("load", func() (any, error) {
		c.mu.Lock()
		if c.model != nil {
			m := c.model
			c.mu.Unlock()
			return m, nil
		}
		c.state = StateLoading
		c.mu.Unlock()

		start := time.Now()
		c.log().Info().Str("provider", c.loader.Name()).Msg("loading text generator")
		m, err := c.loader.Load(context.WithoutCancel(ctx))

		c.mu.Lock()
		defer c.mu.Unlock()
		if err != nil {
			c.state = StateFailed
			c.lastErr = err
			c.log().Error().Err(err).Str("provider", c.loader.Name()).Dur("took", time.Since(start)).Msg("text generator load failed")
			return nil, fmt.Errorf("%w: %w", domain.ErrGeneratorUnavailable, err)
		}
		c.model = m
		c.state = StateReady
		c.lastErr = nil
		c.readyAt = time.Now()
		c.log().Info().Str("provider", c.loader.Name()).Dur("took", time.Since(start)).Msg("text generator ready")
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Model), nil
}

// Generate runs one request, loading the model first if needed.
func (c *Capability) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	m, err := c.Acquire(ctx)
	if err != nil {
		return "", err
	}
	return m.Generate(ctx, prompt, opts)
}

func (c *Capability) log() *infra.Logger {
	if c.logger == nil {
		nop := infra.NopLogger()
		return &nop
	}
	return c.logger
}

// NewLoader returns the loader for a provider name: "static" or "openai".
func NewLoader(provider string, opts OpenAIOptions) (Loader, error) {
	switch provider {
	case staticProviderName:
		return NewStaticLoader(), nil
	case openAIProviderName:
		l, err := NewOpenAILoader(opts)
		if err != nil {
			return nil, err
		}
		return l, nil
	}
	return nil, fmt.Errorf("unknown text generator provider %q", provider)
}

// SPDX-License-Identifier: MIT

package community

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// Defaults shared by every clustering routine.
const (
	DefaultResolution     = 1.0
	DefaultMaxIterations  = 100
	DefaultMinImprovement = 1e-6
	DefaultSeed           = 42
	DefaultTeleportation  = 0.15
)

// gainEpsilon is the smallest objective change treated as an improvement.
const gainEpsilon = 1e-12

// validate is the shared validator instance.
var validate = validator.New()

// Options configures the clustering routines. Fields a routine does not use
// are ignored by it.
type Options struct {
	// Ctx is checked between outer iterations.
	Ctx context.Context `validate:"-"`

	// Resolution scales the null-model penalty; higher values favour
	// smaller communities.
	Resolution float64 `validate:"gt=0"`

	// MaxIterations caps passes per level (or label sweeps, or k-means rounds).
	MaxIterations int `validate:"gte=1"`

	// MinImprovement is the objective gain below which a pass or level
	// counts as converged.
	MinImprovement float64 `validate:"gte=0"`

	// MaxLevels caps aggregation levels for Louvain, Leiden and Infomap.
	// 0 means no cap.
	MaxLevels int `validate:"gte=0"`

	// Seed drives every random choice (Leiden refinement order, k-means++).
	Seed int64

	// Teleportation is the random-jump probability of the Infomap flow
	// model on directed graphs.
	Teleportation float64 `validate:"gte=0,lt=1"`
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Resolution:     DefaultResolution,
		MaxIterations:  DefaultMaxIterations,
		MinImprovement: DefaultMinImprovement,
		Seed:           DefaultSeed,
		Teleportation:  DefaultTeleportation,
	}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithResolution sets the modularity resolution γ.
func WithResolution(gamma float64) Option {
	return func(o *Options) { o.Resolution = gamma }
}

// WithMaxIterations sets the pass cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithMinImprovement sets the convergence threshold.
func WithMinImprovement(eps float64) Option {
	return func(o *Options) { o.MinImprovement = eps }
}

// WithMaxLevels caps aggregation levels (0 = unlimited).
func WithMaxLevels(n int) Option {
	return func(o *Options) { o.MaxLevels = n }
}

// WithSeed sets the random seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithTeleportation sets the Infomap teleportation probability.
func WithTeleportation(alpha float64) Option {
	return func(o *Options) { o.Teleportation = alpha }
}

// resolveOptions applies opts over the defaults and validates the result.
func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate.Struct(o); err != nil {
		return o, formatValidationError(err)
	}
	return o, nil
}

// formatValidationError reports the first failing field as ErrInvalidInput.
func formatValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return fmt.Errorf("community: invalid options: %v: %w", err, core.ErrInvalidInput)
	}
	e := errs[0]
	if e.Param() != "" {
		return fmt.Errorf("community: %s must satisfy %s=%s, got %v: %w",
			e.Field(), e.Tag(), e.Param(), e.Value(), core.ErrInvalidInput)
	}
	return fmt.Errorf("community: %s failed %s: %w", e.Field(), e.Tag(), core.ErrInvalidInput)
}

// cancelled returns ctx.Err() once the context is done.
func (o Options) cancelled() error {
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
		return nil
	}
}

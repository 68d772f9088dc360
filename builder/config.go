// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// Deterministic defaults.
const (
	defaultLeftPrefix  = "A" // authors
	defaultRightPrefix = "W" // works
	defaultNodeType    = "work"
	defaultRelation    = core.RelationCites
)

// builderConfig aggregates every knob a constructor reads. It is passed by
// value.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand // nil means no randomness
	weightFn WeightFn   // nil leaves Edge.Weight unset

	// Authorship side prefixes.
	leftPrefix  string
	rightPrefix string

	nodeType string
	relation string
}

// newBuilderConfig applies opts over the defaults, last option wins. Empty
// string fields fall back to their defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
		nodeType:    defaultNodeType,
		relation:    defaultRelation,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}
	if cfg.nodeType == "" {
		cfg.nodeType = defaultNodeType
	}
	if cfg.relation == "" {
		cfg.relation = defaultRelation
	}
	return cfg
}

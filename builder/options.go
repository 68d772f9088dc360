// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// BuilderOption customises a builderConfig before construction starts.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex id generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides the RNG for stochastic constructors. Panics on nil;
// prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a fresh RNG from seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithPartitionPrefix sets the author and work id prefixes used by
// Authorship. Empty values keep the defaults "A" and "W".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) { c.leftPrefix, c.rightPrefix = left, right }
}

// WithNodeType sets Vertex.Type for topology constructors ("work" by default).
func WithNodeType(t string) BuilderOption {
	return func(c *builderConfig) { c.nodeType = t }
}

// WithRelation sets Edge.Relation for topology constructors
// (core.RelationCites by default).
func WithRelation(rel string) BuilderOption {
	return func(c *builderConfig) { c.relation = rel }
}

// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Generic Graph container, payload constraints, the concrete citation
//       Vertex/Edge payloads, and construction options.
// Determinism:
//   - Nodes and edges remember insertion order; every listing follows it.
//   - Directedness is fixed at construction and never mutated.

package core

import (
	"math"
	"slices"

	"github.com/charmbracelet/log"
)

// VertexData is the minimal capability a node payload must provide: a stable id.
type VertexData interface {
	VertexID() string
}

// EdgeData is the minimal capability an edge payload must provide:
// its own id plus the ids of both endpoints.
type EdgeData interface {
	EdgeID() string
	SourceID() string
	TargetID() string
}

// Typed is implemented by node payloads carrying a type tag (work, author, ...).
// Pathfinding node-type filters rely on it.
type Typed interface {
	VertexType() string
}

// Weighted is implemented by edge payloads carrying a numeric weight.
// Payloads without it weigh DefaultWeight.
type Weighted interface {
	EdgeWeight() float64
}

// PropertyReader exposes named numeric or boolean edge fields used by
// weight extraction and filter predicates.
type PropertyReader interface {
	Property(key string) (any, bool)
}

// PropertyLister is implemented by edge payloads that can enumerate the keys
// their PropertyReader answers. Fingerprint hashes every listed property.
type PropertyLister interface {
	PropertyKeys() []string
}

// DefaultWeight is the weight of an edge that does not report one.
const DefaultWeight = 1.0

// Direction selects which incident edges a neighbourhood query follows.
type Direction int

const (
	// Out follows edges leaving the node.
	Out Direction = iota
	// In follows edges entering the node.
	In
	// Both follows every incident edge.
	Both
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Out:
		return "out"
	case In:
		return "in"
	case Both:
		return "both"
	default:
		return "unknown"
	}
}

// Relation types carried by citation-graph edges.
const (
	RelationCites       = "cites"
	RelationAuthored    = "authored"
	RelationPublishedIn = "published_in"
	RelationAffiliated  = "affiliated"
	RelationRelatedTo   = "related_to"
)

// Edge property keys understood by Edge.Property.
const (
	PropWeight                = "weight"
	PropScore                 = "score"
	PropAuthorPosition        = "authorPosition"
	PropIsCorrespondingAuthor = "isCorrespondingAuthor"
	PropIsOpenAccess          = "isOpenAccess"
)

// Vertex is the node payload produced by the data layer for a bibliographic
// entity (work, author, source, institution, ...).
type Vertex struct {
	// ID is the stable identifier (e.g. an OpenAlex id).
	ID string `json:"id" yaml:"id"`

	// Type is the entity type tag.
	Type string `json:"type" yaml:"type"`

	// Label is the human-readable display name.
	Label string `json:"label" yaml:"label"`

	// Metadata holds arbitrary extra fields. It is shared, not copied, by extraction.
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// VertexID implements VertexData.
func (v Vertex) VertexID() string { return v.ID }

// VertexType implements Typed.
func (v Vertex) VertexType() string { return v.Type }

// Edge is the edge payload for a relation between two bibliographic entities.
// Optional fields are nil when the data layer did not provide them.
type Edge struct {
	ID       string `json:"id" yaml:"id"`
	Source   string `json:"source" yaml:"source"`
	Target   string `json:"target" yaml:"target"`
	Relation string `json:"relation" yaml:"relation"`

	Weight                *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
	Score                 *float64 `json:"score,omitempty" yaml:"score,omitempty"`
	AuthorPosition        *int     `json:"authorPosition,omitempty" yaml:"authorPosition,omitempty"`
	IsCorrespondingAuthor *bool    `json:"isCorrespondingAuthor,omitempty" yaml:"isCorrespondingAuthor,omitempty"`
	IsOpenAccess          *bool    `json:"isOpenAccess,omitempty" yaml:"isOpenAccess,omitempty"`

	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// EdgeID implements EdgeData.
func (e Edge) EdgeID() string { return e.ID }

// SourceID implements EdgeData.
func (e Edge) SourceID() string { return e.Source }

// TargetID implements EdgeData.
func (e Edge) TargetID() string { return e.Target }

// EdgeWeight implements Weighted. A nil Weight reads as DefaultWeight.
func (e Edge) EdgeWeight() float64 {
	if e.Weight == nil {
		return DefaultWeight
	}
	return *e.Weight
}

// Property implements PropertyReader. Typed fields win over Metadata entries
// of the same name; the relation type is available under "relation".
func (e Edge) Property(key string) (any, bool) {
	if v, ok := e.typedProperty(key); ok {
		return v, true
	}
	if key == "relation" {
		return e.Relation, true
	}
	v, ok := e.Metadata[key]
	return v, ok
}

// PropertyKeys implements PropertyLister: "relation", the set typed fields,
// then the Metadata keys not shadowed by a typed field, sorted.
func (e Edge) PropertyKeys() []string {
	keys := []string{"relation"}
	typed := []struct {
		key string
		set bool
	}{
		{PropAuthorPosition, e.AuthorPosition != nil},
		{PropIsCorrespondingAuthor, e.IsCorrespondingAuthor != nil},
		{PropIsOpenAccess, e.IsOpenAccess != nil},
		{PropScore, e.Score != nil},
		{PropWeight, e.Weight != nil},
	}
	for _, t := range typed {
		if t.set {
			keys = append(keys, t.key)
		}
	}
	meta := make([]string, 0, len(e.Metadata))
	for k := range e.Metadata {
		if _, shadowed := e.typedProperty(k); shadowed || k == "relation" {
			continue
		}
		meta = append(meta, k)
	}
	slices.Sort(meta)
	return append(keys, meta...)
}

// typedProperty reports the typed field named key, if it is set.
func (e Edge) typedProperty(key string) (any, bool) {
	switch key {
	case PropWeight:
		if e.Weight != nil {
			return *e.Weight, true
		}
	case PropScore:
		if e.Score != nil {
			return *e.Score, true
		}
	case PropAuthorPosition:
		if e.AuthorPosition != nil {
			return *e.AuthorPosition, true
		}
	case PropIsCorrespondingAuthor:
		if e.IsCorrespondingAuthor != nil {
			return *e.IsCorrespondingAuthor, true
		}
	case PropIsOpenAccess:
		if e.IsOpenAccess != nil {
			return *e.IsOpenAccess, true
		}
	}
	return nil, false
}

// GraphOption configures a Graph before creation.
type GraphOption func(*graphConfig)

type graphConfig struct {
	directed bool
	logger   *log.Logger
}

// WithDirected fixes the graph's directedness (default: undirected).
func WithDirected(directed bool) GraphOption {
	return func(c *graphConfig) { c.directed = directed }
}

// WithLogger routes construction diagnostics (skipped edges) to l.
// A nil logger keeps the default.
func WithLogger(l *log.Logger) GraphOption {
	return func(c *graphConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Graph is an adjacency-indexed container of node payloads N and edge payloads E.
//
// Every edge is stored once. out[v] lists the ids of edges whose source is v and
// in[v] the ids of edges whose target is v; undirected queries read both lists,
// so an undirected edge is traversable both ways without a mirror copy.
//
// A Graph is not safe for concurrent mutation. Once built it is treated as an
// immutable snapshot: algorithms only read it and extraction returns new graphs.
type Graph[N VertexData, E EdgeData] struct {
	directed bool
	logger   *log.Logger

	nodes     map[string]N
	nodeOrder []string       // insertion order
	nodeRank  map[string]int // id -> position in nodeOrder

	edges     map[string]E
	edgeOrder []string

	out map[string][]string // node id -> ids of edges leaving it
	in  map[string][]string // node id -> ids of edges entering it
}

// NewGraph creates an empty Graph. By default it is undirected and logs
// through log.Default().
//
// Complexity: O(1)
func NewGraph[N VertexData, E EdgeData](opts ...GraphOption) *Graph[N, E] {
	cfg := graphConfig{logger: log.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return newGraph[N, E](cfg)
}

func newGraph[N VertexData, E EdgeData](cfg graphConfig) *Graph[N, E] {
	return &Graph[N, E]{
		directed: cfg.directed,
		logger:   cfg.logger,
		nodes:    make(map[string]N),
		nodeRank: make(map[string]int),
		edges:    make(map[string]E),
		out:      make(map[string][]string),
		in:       make(map[string][]string),
	}
}

// config returns the options needed to create a graph shaped like g.
func (g *Graph[N, E]) config() graphConfig {
	return graphConfig{directed: g.directed, logger: g.logger}
}

// WeightOf returns the weight reported by e, or DefaultWeight when e does not
// implement Weighted. NaN weights read as DefaultWeight.
func WeightOf[E EdgeData](e E) float64 {
	w, ok := any(e).(Weighted)
	if !ok {
		return DefaultWeight
	}
	v := w.EdgeWeight()
	if math.IsNaN(v) {
		return DefaultWeight
	}
	return v
}

// TypeOf returns the type tag of n, or "" when n does not implement Typed.
func TypeOf[N VertexData](n N) string {
	if t, ok := any(n).(Typed); ok {
		return t.VertexType()
	}
	return ""
}

// PropertyOf reads a named property from e when it implements PropertyReader.
func PropertyOf[E EdgeData](e E, key string) (any, bool) {
	if r, ok := any(e).(PropertyReader); ok {
		return r.Property(key)
	}
	return nil, false
}

// NumericProperty reads a named property as float64. Integers convert and
// booleans read as 1 or 0; anything else reports false.
func NumericProperty[E EdgeData](e E, key string) (float64, bool) {
	v, ok := PropertyOf(e, key)
	if !ok {
		return 0, false
	}
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case int32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// OtherEnd returns the endpoint of e opposite to id. For a self-loop it returns id.
func OtherEnd[E EdgeData](e E, id string) string {
	if e.SourceID() == id {
		return e.TargetID()
	}
	return e.SourceID()
}

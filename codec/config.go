// SPDX-License-Identifier: MIT

package codec

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Mearman/Academic-Explorer-sub005/community"
	"github.com/Mearman/Academic-Explorer-sub005/core"
	"github.com/Mearman/Academic-Explorer-sub005/dijkstra"
)

var validate = validator.New()

// AnalysisConfig is the file form of the analysis knobs.
type AnalysisConfig struct {
	Community CommunityConfig `toml:"community" yaml:"community"`
	Path      PathConfig      `toml:"path" yaml:"path"`
}

// CommunityConfig mirrors community.Options. Zero values keep the defaults.
type CommunityConfig struct {
	Algorithm      string  `toml:"algorithm" yaml:"algorithm" validate:"omitempty,oneof=louvain leiden label-propagation infomap spectral hierarchical"`
	Resolution     float64 `toml:"resolution" yaml:"resolution" validate:"gte=0"`
	MaxIterations  int     `toml:"max_iterations" yaml:"max_iterations" validate:"gte=0"`
	MinImprovement float64 `toml:"min_improvement" yaml:"min_improvement" validate:"gte=0"`
	MaxLevels      int     `toml:"max_levels" yaml:"max_levels" validate:"gte=0"`
	Seed           *int64  `toml:"seed" yaml:"seed"`
	Teleportation  float64 `toml:"teleportation" yaml:"teleportation" validate:"gte=0,lt=1"`

	// K is the spectral block count or the dendrogram cut.
	K       int    `toml:"k" yaml:"k" validate:"gte=0"`
	Linkage string `toml:"linkage" yaml:"linkage" validate:"omitempty,oneof=single complete average"`
}

// PathConfig mirrors the dijkstra options that make sense in a file.
type PathConfig struct {
	WeightProperty string   `toml:"weight_property" yaml:"weight_property"`
	InvertWeight   bool     `toml:"invert_weight" yaml:"invert_weight"`
	MaxDistance    float64  `toml:"max_distance" yaml:"max_distance" validate:"gte=0"`
	NodeTypes      []string `toml:"node_types" yaml:"node_types"`
	Relations      []string `toml:"relations" yaml:"relations"`
	Direction      string   `toml:"direction" yaml:"direction" validate:"omitempty,oneof=out in both"`
}

// LoadConfig reads a TOML or YAML config, picking the format from the
// extension.
func LoadConfig(path string) (*AnalysisConfig, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data, f)
}

// ParseConfig decodes and validates a config.
func ParseConfig(data []byte, f Format) (*AnalysisConfig, error) {
	var cfg AnalysisConfig
	switch f {
	case TOML:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown key %q", ErrMalformed, undecoded[0].String())
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && len(bytes.TrimSpace(data)) > 0 {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q configs", ErrUnknownFormat, f)
	}
	if err := validate.Struct(cfg); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			return nil, fmt.Errorf("%w: %s failed %s=%s", ErrMalformed, errs[0].Namespace(), errs[0].Tag(), errs[0].Param())
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &cfg, nil
}

// Options converts the non-zero fields into community options.
func (c CommunityConfig) Options() []community.Option {
	var opts []community.Option
	if c.Resolution > 0 {
		opts = append(opts, community.WithResolution(c.Resolution))
	}
	if c.MaxIterations > 0 {
		opts = append(opts, community.WithMaxIterations(c.MaxIterations))
	}
	if c.MinImprovement > 0 {
		opts = append(opts, community.WithMinImprovement(c.MinImprovement))
	}
	if c.MaxLevels > 0 {
		opts = append(opts, community.WithMaxLevels(c.MaxLevels))
	}
	if c.Seed != nil {
		opts = append(opts, community.WithSeed(*c.Seed))
	}
	if c.Teleportation > 0 {
		opts = append(opts, community.WithTeleportation(c.Teleportation))
	}
	return opts
}

// Options converts the non-zero fields into dijkstra options.
func (p PathConfig) Options() []dijkstra.Option {
	var opts []dijkstra.Option
	if p.WeightProperty != "" {
		opts = append(opts, dijkstra.WithWeightProperty(p.WeightProperty, p.InvertWeight))
	}
	if p.MaxDistance > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(p.MaxDistance))
	}
	if len(p.NodeTypes) > 0 {
		opts = append(opts, dijkstra.WithNodeTypes(p.NodeTypes...))
	}
	if len(p.Relations) > 0 {
		opts = append(opts, dijkstra.WithEdgeFilter(dijkstra.RelationIs(p.Relations...)))
	}
	switch p.Direction {
	case "in":
		opts = append(opts, dijkstra.WithDirection(core.In))
	case "both":
		opts = append(opts, dijkstra.WithDirection(core.Both))
	case "out":
		opts = append(opts, dijkstra.WithDirection(core.Out))
	}
	return opts
}

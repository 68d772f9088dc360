// SPDX-License-Identifier: MIT
// Package codec reads and writes graph documents and analysis configs.
//
// A Document is the wire form of a core.Graph[core.Vertex, core.Edge]: a
// directedness flag plus node and edge lists. It round-trips through YAML
// (gopkg.in/yaml.v3) and JSON. ToGraph hands the lists to core.Build, so
// edges with a missing endpoint are skipped and reported the same way the
// data layer sees them.
//
// AnalysisConfig maps a TOML (BurntSushi/toml) or YAML file onto community
// and dijkstra options. Values are checked with go-playground/validator;
// zero values keep each package's defaults.
//
// Formats are picked from the file extension: .yaml/.yml, .json, .toml.
package codec

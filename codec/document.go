// SPDX-License-Identifier: MIT

package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Mearman/Academic-Explorer-sub005/core"
)

// Format names a serialisation.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
	TOML Format = "toml"
)

// Graph is the graph type documents describe.
type Graph = core.Graph[core.Vertex, core.Edge]

// Document is the serialised form of a graph.
type Document struct {
	Directed bool          `json:"directed" yaml:"directed"`
	Nodes    []core.Vertex `json:"nodes" yaml:"nodes"`
	Edges    []core.Edge   `json:"edges" yaml:"edges"`
}

// FormatOf derives the format from a path extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	case ".toml":
		return TOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Decode reads a document in format f. TOML is not a document format.
func Decode(r io.Reader, f Format) (*Document, error) {
	var doc Document
	var err error
	switch f {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&doc)
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	default:
		return nil, fmt.Errorf("%w: %q documents", ErrUnknownFormat, f)
	}
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &doc, nil
}

// Encode writes doc in format f.
func Encode(w io.Writer, doc *Document, f Format) error {
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}
	return fmt.Errorf("%w: %q documents", ErrUnknownFormat, f)
}

// ReadFile decodes the document at path, picking the format from its
// extension.
func ReadFile(path string) (*Document, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Decode(file, f)
}

// WriteFile encodes doc to path, picking the format from its extension.
func WriteFile(path string, doc *Document) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(file, doc, f); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// ToGraph builds a graph from doc. opts are applied after the document's
// directedness, so a logger can be injected.
func ToGraph(doc *Document, opts ...core.GraphOption) (*Graph, core.BuildReport, error) {
	if doc == nil {
		return nil, core.BuildReport{}, fmt.Errorf("%w: nil document", ErrMalformed)
	}
	all := append([]core.GraphOption{core.WithDirected(doc.Directed)}, opts...)
	return core.Build(doc.Nodes, doc.Edges, all...)
}

// FromGraph captures g in insertion order.
func FromGraph(g *Graph) *Document {
	doc := &Document{Directed: g.Directed()}
	for _, id := range g.NodeIDs() {
		v, _ := g.Node(id)
		doc.Nodes = append(doc.Nodes, v)
	}
	doc.Edges = g.Edges()
	return doc
}

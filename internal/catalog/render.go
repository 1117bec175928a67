package catalog

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/unidict-shared/pkg/types"
)

// Output formats understood by Render.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Info is the header of a rendered catalog.
type Info struct {
	Title  string           `json:"title"`
	System types.SystemInfo `json:"system"`
}

// Document is the rendered form of a Registry.
type Document struct {
	Info      Info                `json:"info"`
	Endpoints []types.APIEndpoint `json:"endpoints"`
}

// NewDocument snapshots r under the given title and build info.
func NewDocument(title string, system types.SystemInfo, r *Registry) Document {
	if system.Features == nil {
		system.Features = []string{}
	}
	return Document{
		Info:      Info{Title: title, System: system},
		Endpoints: r.Endpoints(),
	}
}

// RenderOptions selects the output format. Compact JSON has no indentation;
// compact YAML keeps flow style.
type RenderOptions struct {
	Format  string
	Compact bool
}

// Render writes doc to w.
func Render(w io.Writer, doc Document, opts RenderOptions) error {
	switch opts.Format {
	case FormatJSON, "":
		return renderJSON(w, doc, opts.Compact)
	case FormatYAML:
		return renderYAML(w, doc, opts.Compact)
	}
	return fmt.Errorf("catalog: unsupported format %q", opts.Format)
}

func renderJSON(w io.Writer, doc Document, compact bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if !compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("catalog: encode json: %w", err)
	}
	return nil
}

// renderYAML goes through JSON so that field names, omitempty and custom
// marshalers match the wire format exactly. Decoding the JSON into a
// yaml.Node keeps the key order.
func renderYAML(w io.Writer, doc Document, compact bool) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("catalog: encode json: %w", err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return fmt.Errorf("catalog: convert to yaml: %w", err)
	}
	if !compact {
		blockStyle(&node)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return fmt.Errorf("catalog: encode yaml: %w", err)
	}
	return enc.Close()
}

// blockStyle clears the flow and quoting styles inherited from JSON. The
// encoder re-quotes scalars that would otherwise change type.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

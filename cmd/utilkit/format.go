package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/utilkit/pkg/tree"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func validateFormat(f string) error {
	switch f {
	case formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("invalid --format %q: must be %q or %q", f, formatJSON, formatYAML)
	}
}

// readNodes decodes an array of records from path, or from stdin when path is
// empty or "-". YAML is a superset of JSON so one decoder serves both.
func readNodes(path string, stdin io.Reader) ([]tree.Node, error) {
	r := stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var nodes []tree.Node
	if err := yaml.NewDecoder(r).Decode(&nodes); err != nil {
		if err == io.EOF {
			return []tree.Node{}, nil
		}
		return nil, fmt.Errorf("decoding input: %w", err)
	}
	if nodes == nil {
		nodes = []tree.Node{}
	}
	return nodes, nil
}

// writeOutput encodes v to w in the selected format.
func writeOutput(w io.Writer, format string, v any) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

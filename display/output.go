// Package display renders command results as JSON, YAML or TOML.
package display

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/teranos/fragfmt/errors"
	"gopkg.in/yaml.v3"
)

// Supported output formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// MarshalJSON marshals JSON with pretty formatting
func MarshalJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// Marshal encodes v in the named format
func Marshal(v any, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return MarshalJSON(v)
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatTOML:
		return toml.Marshal(v)
	default:
		return nil, errors.WithHintf(errors.Newf("unknown output format %q", format),
			"use %s, %s or %s", FormatJSON, FormatYAML, FormatTOML)
	}
}

// Output marshals v and writes it to w followed by a newline when the
// encoding lacks one.
func Output(w io.Writer, v any, format string) error {
	data, err := Marshal(v, format)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s", format)
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	_, err = w.Write(data)
	return err
}

// ResolveFormat picks the output format for cmd: an explicit --format flag
// wins, then the global --json flag, then fallback.
func ResolveFormat(cmd *cobra.Command, fallback string) string {
	if cmd == nil {
		return fallback
	}

	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		return f.Value.String()
	}

	if jsonFlag, err := cmd.Root().PersistentFlags().GetBool("json"); err == nil && jsonFlag {
		return FormatJSON
	}

	return fallback
}

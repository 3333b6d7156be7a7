package catalog

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/teranos/fragfmt"
	"github.com/teranos/fragfmt/errors"
	"gopkg.in/yaml.v3"
)

// file is the on-disk catalog layout
type file struct {
	Requires string             `toml:"requires" yaml:"requires"`
	Messages map[string]message `toml:"messages" yaml:"messages"`
}

type message struct {
	Description string `toml:"description" yaml:"description"`
	Tokens      []any  `toml:"tokens" yaml:"tokens"`
}

// readFile decodes a catalog file, choosing the decoder by extension
func readFile(path string) (*file, error) {
	var f file

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &f); err != nil {
			return nil, errors.Wrapf(err, "failed to decode %s", path)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", path)
		}
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, errors.Wrapf(err, "failed to decode %s", path)
		}
	default:
		return nil, errors.WithHint(
			errors.Newf("unsupported catalog file %s", path),
			"use a .toml, .yaml or .yml file")
	}

	return &f, nil
}

// decodeTokens converts decoded tokens into compiler input. A table with a
// single "arg" key marks its value as a value even when it is a string.
func decodeTokens(raw []any) []any {
	tokens := make([]any, len(raw))
	for i, tok := range raw {
		if m, ok := tok.(map[string]any); ok && len(m) == 1 {
			if v, ok := m["arg"]; ok {
				tokens[i] = fragfmt.Arg(v)
				continue
			}
		}
		tokens[i] = tok
	}
	return tokens
}

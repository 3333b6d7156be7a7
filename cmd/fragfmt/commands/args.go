package commands

import (
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/teranos/fragfmt/logger"
	"gopkg.in/yaml.v3"
)

// decodeTokens turns command arguments into compiler tokens. The first
// argument is always the literal starter.
func decodeTokens(args []string, typed bool) []any {
	tokens := make([]any, len(args))
	for i, arg := range args {
		if i == 0 || !typed {
			tokens[i] = arg
			continue
		}
		tokens[i] = decodeScalar(arg)
	}
	return tokens
}

// decodeValues decodes arguments that are never starters
func decodeValues(args []string, typed bool) []any {
	values := make([]any, len(args))
	for i, arg := range args {
		if typed {
			values[i] = decodeScalar(arg)
		} else {
			values[i] = arg
		}
	}
	return values
}

// decodeScalar reads s as a YAML scalar. Numbers and booleans become values;
// quoted text is unquoted; anything else is kept byte for byte. Padded
// arguments are literal text, so their whitespace survives.
func decodeScalar(s string) any {
	if strings.TrimSpace(s) != s {
		return s
	}

	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return s
	}

	switch x := v.(type) {
	case int, int64, uint64, float64, bool:
		return x
	case string:
		if isQuoted(s) {
			return x
		}
	}
	return s
}

func isQuoted(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return false
	}
	return (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'')
}

// splitLine splits a line into arguments respecting shell quoting
func splitLine(line string) []string {
	args, err := shellquote.Split(line)
	if err != nil {
		// If quote parsing fails, fall back to simple split
		logger.Debugw("Quote parsing failed, using simple split", "line", line, logger.FieldError, err)
		args = strings.Fields(line)
	}
	return args
}

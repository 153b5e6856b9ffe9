// Package config handles YAML config file loading for rangemap commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// ErrEnvRequired is returned when a ${VAR:?message} reference is unset or empty.
var ErrEnvRequired = errors.New("required environment variable not set")

// envRef matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
// Group 1 is the name, group 2 the operator and group 3 its argument.
var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::([-?])([^}]*))?\}`)

// ExpandEnv replaces environment references in input with values from the
// process environment.
//
//   - ${VAR} expands to the value, or empty when unset
//   - ${VAR:-default} expands to the value, or default when unset or empty
//   - ${VAR:?message} expands to the value, or fails with ErrEnvRequired
func ExpandEnv(input string) (string, error) {
	return expandWith(input, os.LookupEnv)
}

// expandWith is ExpandEnv over an arbitrary lookup. Every missing required
// variable is reported, not only the first.
func expandWith(input string, lookup func(string) (string, bool)) (string, error) {
	var missing []string

	out := envRef.ReplaceAllStringFunc(input, func(ref string) string {
		m := envRef.FindStringSubmatch(ref)
		name, op, arg := m[1], m[2], m[3]

		if v, ok := lookup(name); ok && v != "" {
			return v
		}
		switch op {
		case "-":
			return arg
		case "?":
			if arg != "" {
				name += " (" + arg + ")"
			}
			missing = append(missing, name)
		}
		return ""
	})

	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", ErrEnvRequired, strings.Join(missing, ", "))
	}
	return out, nil
}

package devcheck

import (
	"os"
	"strings"

	"github.com/tidwall/match"
)

// A Condition decides, at call time, whether validation runs.
type Condition func() bool

// Enabled returns a condition fixed to the given boolean.
func Enabled(on bool) Condition {
	return func() bool {
		return on
	}
}

// MatchEnvironment returns a condition that holds when every expected
// variable matches its pattern in vars. Patterns are literals or wildcard
// expressions ('*', '?'), so {"ENVIRONMENT": "dev*"} covers "dev" and
// "development". The variables are taken from the vars argument, never from
// the process environment, so conditions stay testable; pass Environ() to
// match against the real environment.
func MatchEnvironment(expected map[string]string, vars map[string]string) Condition {
	return func() bool {
		for name, pattern := range expected {
			if !match.Match(vars[name], pattern) {
				return false
			}
		}
		return true
	}
}

// Environ returns the process environment as a map.
func Environ() map[string]string {
	vars := map[string]string{}
	for _, entry := range os.Environ() {
		k, v, _ := strings.Cut(entry, "=")
		vars[k] = v
	}
	return vars
}

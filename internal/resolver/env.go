package resolver

import "strings"

// DefaultPrefix is how GitHub Actions passes workflow inputs to composite
// actions and reusable workflows: one INPUT_<NAME> variable per input.
const DefaultPrefix = "INPUT_"

// EnvSource reads inputs from prefixed environment variables. The prefix is
// stripped and the remainder lowercased to form the input name.
type EnvSource struct {
	Prefix  string   // variable prefix, DefaultPrefix if empty
	Environ []string // entries in "KEY=VALUE" form, as returned by os.Environ
}

func (s EnvSource) Name() string { return "environment variables" }

func (s EnvSource) Resolve() Inputs {
	prefix := s.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	raw := make(map[string]string)
	for _, entry := range s.Environ {
		// Split on the first "=" only; values can contain "=".
		idx := strings.Index(entry, "=")
		if idx == -1 {
			continue
		}
		key := entry[:idx]
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		raw[key[len(prefix):]] = entry[idx+1:]
	}
	return FromMap(raw)
}

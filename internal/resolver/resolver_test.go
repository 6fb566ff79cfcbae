package resolver

import (
	"strings"
	"testing"
	"unicode"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

// stubSource is a Source returning a fixed result, for chain tests.
type stubSource struct {
	name   string
	result Inputs
}

func (s stubSource) Name() string    { return s.name }
func (s stubSource) Resolve() Inputs { return s.result }

func TestResolve_PriorityChain(t *testing.T) {
	envInputs := Inputs{"environment": "prod"}
	eventInputs := Inputs{"environment": "staging"}

	t.Run("first non-empty source wins", func(t *testing.T) {
		got := Resolve(nil,
			stubSource{name: "env", result: envInputs},
			stubSource{name: "event", result: eventInputs},
		)
		assert.Equal(t, envInputs, got)
	})

	t.Run("empty sources are skipped", func(t *testing.T) {
		got := Resolve(nil,
			stubSource{name: "env"},
			stubSource{name: "event", result: eventInputs},
		)
		assert.Equal(t, eventInputs, got)
	})

	t.Run("all sources empty yields empty inputs", func(t *testing.T) {
		got := Resolve(nil, stubSource{name: "env"}, stubSource{name: "event"})
		assert.Empty(t, got)
	})

	t.Run("trace names each exhausted source", func(t *testing.T) {
		var lines []string
		trace := func(format string, args ...any) {
			lines = append(lines, format)
		}
		Resolve(trace, stubSource{name: "env"}, stubSource{name: "event"})
		assert.Len(t, lines, 3) // two misses plus the final summary
	})
}

func TestResolve_LaterSourcesNotConsulted(t *testing.T) {
	called := false
	probe := probeSource{called: &called}

	got := Resolve(nil, stubSource{name: "env", result: Inputs{"environment": "prod"}}, probe)

	assert.Equal(t, Inputs{"environment": "prod"}, got)
	assert.False(t, called, "second source must not run once the first yields values")
}

type probeSource struct {
	called *bool
}

func (s probeSource) Name() string { return "probe" }
func (s probeSource) Resolve() Inputs {
	*s.called = true
	return nil
}

func TestFromMap_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	// Property: all keys come out lowercased
	properties.Property("keys are lowercased", prop.ForAll(
		func(key, value string) bool {
			if value == "" {
				value = "x"
			}
			inputs := FromMap(map[string]string{key: value})
			for k := range inputs {
				for _, r := range k {
					if unicode.IsLetter(r) && unicode.IsUpper(r) {
						return false
					}
				}
			}
			return true
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	// Property: empty values never survive ingestion
	properties.Property("empty values are dropped", prop.ForAll(
		func(key string) bool {
			inputs := FromMap(map[string]string{key: ""})
			return len(inputs) == 0
		},
		gen.AlphaString(),
	))

	// Property: values are preserved verbatim
	properties.Property("values pass through unchanged", prop.ForAll(
		func(key, value string) bool {
			if value == "" {
				return true
			}
			inputs := FromMap(map[string]string{key: value})
			return inputs[strings.ToLower(key)] == value
		},
		gen.AlphaString(),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

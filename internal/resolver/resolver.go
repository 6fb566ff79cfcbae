package resolver

import "strings"

// Inputs maps a lowercased input name to its provided value. A key present
// in the map always carries a non-empty value: empty values are dropped on
// ingestion, so "provided but empty" collapses into "not provided", distinct
// from any real value.
type Inputs map[string]string

// Source produces inputs from one location (environment variables, the event
// context, a workflow file). Sources never fail: anything that prevents a
// source from producing values is reported as zero keys so that resolution
// can escalate to the next source.
type Source interface {
	// Name identifies the source in diagnostic output.
	Name() string
	Resolve() Inputs
}

// Trace receives one diagnostic line per resolution step. It is not part of
// the functional contract; callers that don't care pass nil.
type Trace func(format string, args ...any)

// Resolve tries each source in priority order and returns the result of the
// first one that yields at least one key. Later sources are never consulted
// once a source has produced values. An empty result (no source had anything
// to offer) is a valid outcome, not an error: with no inputs there is
// nothing to validate.
func Resolve(trace Trace, sources ...Source) Inputs {
	if trace == nil {
		trace = func(string, ...any) {}
	}

	for _, src := range sources {
		inputs := src.Resolve()
		if len(inputs) == 0 {
			trace("no inputs found from %s", src.Name())
			continue
		}
		trace("found %d input(s) from %s", len(inputs), src.Name())
		return inputs
	}

	trace("no inputs found from any source")
	return Inputs{}
}

// FromMap builds Inputs from a raw key/value map, lowercasing keys and
// dropping entries with empty values.
func FromMap(m map[string]string) Inputs {
	inputs := make(Inputs, len(m))
	for key, value := range m {
		if value == "" {
			continue
		}
		inputs[strings.ToLower(key)] = value
	}
	return inputs
}

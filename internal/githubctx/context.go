// Package githubctx reads the GITHUB_CONTEXT blob that workflows expose by
// serializing the github expression context to JSON. Only the small subset
// the checker needs is extracted; the blob is queried in place rather than
// decoded into a full structure.
package githubctx

import "github.com/tidwall/gjson"

// EventWorkflowDispatch is the event name of a manually triggered run, the
// only trigger type that carries caller-provided inputs on the event payload.
const EventWorkflowDispatch = "workflow_dispatch"

// Context is the subset of the event context relevant to input resolution.
type Context struct {
	EventName string
	Inputs    map[string]string
}

// Parse extracts the event name and the nested event.inputs object from a
// raw GITHUB_CONTEXT JSON document. Malformed or partial documents yield a
// Context holding whatever could be read; Parse never fails.
func Parse(raw string) Context {
	var c Context
	if !gjson.Valid(raw) {
		return c
	}

	c.EventName = gjson.Get(raw, "event_name").String()

	inputs := gjson.Get(raw, "event.inputs")
	if !inputs.IsObject() {
		return c
	}
	c.Inputs = make(map[string]string)
	inputs.ForEach(func(key, value gjson.Result) bool {
		c.Inputs[key.String()] = value.String()
		return true
	})
	return c
}

// ManualDispatch reports whether the run was triggered manually.
func (c Context) ManualDispatch() bool {
	return c.EventName == EventWorkflowDispatch
}

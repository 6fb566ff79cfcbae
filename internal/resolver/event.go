package resolver

import "wfguard/internal/githubctx"

// EventSource reads inputs from the serialized event context. Inputs only
// appear on the event payload for manual workflow_dispatch runs; any other
// event type, and any unparseable context, yields nothing.
type EventSource struct {
	RawContext string // the GITHUB_CONTEXT JSON document
}

func (s EventSource) Name() string { return "event context" }

func (s EventSource) Resolve() Inputs {
	ctx := githubctx.Parse(s.RawContext)
	if !ctx.ManualDispatch() {
		return nil
	}
	return FromMap(ctx.Inputs)
}

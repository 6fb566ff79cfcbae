package validator

import (
	"wfguard/internal/resolver"
	"wfguard/internal/workflow"
)

// ValidateRequired reports declared workflow_call inputs that are marked
// required, carry no default, and were not provided. Inputs never hold empty
// values, so an empty-but-provided input counts as missing too.
func ValidateRequired(declared []workflow.DeclaredInput, inputs resolver.Inputs) []Violation {
	var violations []Violation
	for _, decl := range declared {
		if !decl.Required || decl.HasDefault {
			continue
		}
		if _, ok := inputs[decl.Name]; ok {
			continue
		}
		violations = append(violations, Violation{
			Field:  decl.Name,
			Detail: "required by the workflow definition but not provided.",
		})
	}
	return violations
}

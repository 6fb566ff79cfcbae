// Package validator checks resolved workflow inputs for environment-name
// consistency: resource names derived from a deployment must not reference a
// different environment than the one declared.
package validator

import (
	"fmt"
	"sort"
	"strings"

	"wfguard/internal/resolver"
)

// Input field names the validator understands.
const (
	FieldEnvironment = "environment"
	FieldMonitorName = "monitor_name"
	FieldAppURL      = "app_url"
	FieldIngressURL  = "k8_ingress_url"
)

// canonicalEnvironments is the fixed set of recognized deployment
// environment spellings, short and long forms.
var canonicalEnvironments = []string{
	"prod", "production",
	"staging", "stage",
	"dev", "development",
}

// checkedFields are validated against the declared environment, in this
// order.
var checkedFields = []string{FieldMonitorName, FieldAppURL, FieldIngressURL}

// Violation records one consistency failure for a single input field.
type Violation struct {
	Field  string `json:"field"`
	Detail string `json:"detail"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Detail)
}

// Forbidden returns the canonical environment names inconsistent with env:
// every name that does not have the lowercased env as a prefix. "prod"
// therefore permits "production" but forbids the staging and dev spellings.
func Forbidden(env string) []string {
	forbidden, _ := partition(env)
	return forbidden
}

// partition splits the canonical set into names inconsistent with env and
// names consistent with it. Consistent names come back longest first so that
// masking removes "production" before "prod".
func partition(env string) (forbidden, allowed []string) {
	env = strings.ToLower(env)
	for _, name := range canonicalEnvironments {
		if strings.HasPrefix(name, env) {
			allowed = append(allowed, name)
		} else {
			forbidden = append(forbidden, name)
		}
	}
	sort.Slice(allowed, func(i, j int) bool { return len(allowed[i]) > len(allowed[j]) })
	return forbidden, allowed
}

// maskAllowed blanks out occurrences of consistent names so that a forbidden
// short form is not matched inside a longer consistent spelling ("prod"
// inside "production", "dev" inside "development").
func maskAllowed(value string, allowed []string) string {
	for _, name := range allowed {
		value = strings.ReplaceAll(value, name, " ")
	}
	return value
}

// Validate checks the derived resource fields against the declared
// environment and returns every violation found, in field-check order. It
// never fails; with no environment input there is nothing to check and the
// result is empty.
//
// An empty environment value would make every canonical name share its
// prefix and so forbid nothing; it is treated the same as an absent one
// instead of silently passing everything through the substring checks.
func Validate(inputs resolver.Inputs) []Violation {
	env := strings.ToLower(inputs[FieldEnvironment])
	if env == "" {
		return nil
	}

	forbidden, allowed := partition(env)

	var violations []Violation
	for _, field := range checkedFields {
		value, ok := inputs[field]
		if !ok {
			continue
		}
		value = strings.ToLower(value)

		// At most one cross-environment violation per field.
		masked := maskAllowed(value, allowed)
		for _, name := range forbidden {
			if strings.Contains(masked, name) {
				violations = append(violations, Violation{
					Field: field,
					Detail: fmt.Sprintf(
						"contains '%s' but environment is set to '%s'. When environment is '%s', values should not contain other environment names like %s.",
						name, env, env, strings.Join(forbidden, ", ")),
				})
				break
			}
		}

		if field == FieldMonitorName && strings.ContainsAny(value, "-_") {
			violations = append(violations, Violation{
				Field:  field,
				Detail: "contains dashes (-) or underscores (_), which are not allowed. Use spaces instead, like 'staging monitor report'.",
			})
		}
	}
	return violations
}

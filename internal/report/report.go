// Package report renders resolved inputs and violations. Formatting is
// presentation only; exit-code decisions stay with the caller.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"wfguard/internal/resolver"
	"wfguard/internal/validator"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	fieldColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
)

// Echo writes every resolved input before validation runs, so a failing run
// still shows exactly what the checker saw. The environment input leads;
// the rest follow alphabetically.
func Echo(w io.Writer, inputs resolver.Inputs) {
	if len(inputs) == 0 {
		return
	}

	keys := make([]string, 0, len(inputs))
	for key := range inputs {
		if key != validator.FieldEnvironment {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	if _, ok := inputs[validator.FieldEnvironment]; ok {
		keys = append([]string{validator.FieldEnvironment}, keys...)
	}

	fmt.Fprintf(w, "Found %d input(s):\n", len(inputs))
	for _, key := range keys {
		fmt.Fprintf(w, "  %s = %s\n", key, inputs[key])
	}
}

// FormatCLI renders violations for a terminal.
func FormatCLI(violations []validator.Violation) string {
	if len(violations) == 0 {
		return successColor.Sprint("All workflow inputs are valid!") + "\n"
	}

	var sb strings.Builder
	sb.WriteString(errorColor.Sprint("Workflow input validation failed:"))
	sb.WriteString("\n\n")
	for _, v := range violations {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", fieldColor.Sprint(v.Field), v.Detail))
	}
	sb.WriteString(fmt.Sprintf("\n%d violation(s). Consistent environment naming prevents accidental deployments to the wrong environment.\n", len(violations)))
	return sb.String()
}

// FormatCI renders violations as CI error annotations, one per violation,
// so each shows up individually on the run summary.
func FormatCI(violations []validator.Violation) string {
	if len(violations) == 0 {
		return "All workflow inputs are valid!\n"
	}

	var sb strings.Builder
	sb.WriteString("::error::Workflow input validation failed:\n")
	for _, v := range violations {
		sb.WriteString(fmt.Sprintf("::error::  - %s: %s\n", v.Field, v.Detail))
	}
	sb.WriteString(fmt.Sprintf("::error::%d violation(s) found. Fix these to ensure consistent environment naming across resources.\n", len(violations)))
	return sb.String()
}

// FormatJSON renders violations as a JSON array for tooling.
func FormatJSON(violations []validator.Violation) (string, error) {
	if violations == nil {
		violations = []validator.Violation{}
	}
	data, err := json.MarshalIndent(violations, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

package workflow

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// DeclaredInput is one input declaration from a workflow definition's
// on.workflow_call.inputs block.
type DeclaredInput struct {
	Name       string
	Required   bool
	HasDefault bool
}

// definitionDoc mirrors the declaration slice of a reusable workflow file.
type definitionDoc struct {
	On struct {
		WorkflowCall struct {
			Inputs map[string]struct {
				Required bool `yaml:"required"`
				// A value Node records presence for any default, scalar or
				// structured; a pointer would reject scalars outright.
				Default yaml.Node `yaml:"default"`
			} `yaml:"inputs"`
		} `yaml:"workflow_call"`
	} `yaml:"on"`
}

// LoadDeclaredInputs reads the workflow definition at path and returns the
// inputs it declares for workflow_call, sorted by name. A missing file or an
// unparseable document yields nil: required-input checking is skipped when
// the definition cannot be read, never failed.
func LoadDeclaredInputs(path string) []DeclaredInput {
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return ParseDeclaredInputs(doc)
}

// ParseDeclaredInputs extracts workflow_call input declarations from a
// workflow document.
func ParseDeclaredInputs(doc []byte) []DeclaredInput {
	var d definitionDoc
	if err := yaml.Unmarshal(doc, &d); err != nil {
		return nil
	}

	decls := make([]DeclaredInput, 0, len(d.On.WorkflowCall.Inputs))
	for name, entry := range d.On.WorkflowCall.Inputs {
		decls = append(decls, DeclaredInput{
			Name:       name,
			Required:   entry.Required,
			HasDefault: !entry.Default.IsZero(),
		})
	}
	sort.Slice(decls, func(i, j int) bool { return decls[i].Name < decls[j].Name })
	return decls
}

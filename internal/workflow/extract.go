package workflow

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Extractor pulls job input assignments out of a workflow document. The
// structured backend understands YAML; the line backend is a permissive
// text heuristic for documents the structured backend cannot handle.
type Extractor interface {
	// Name identifies the backend in diagnostic output.
	Name() string
	Extract(doc []byte) (map[string]string, error)
}

// reservedKeys are block markers, not inputs; the line heuristic skips them.
var reservedKeys = map[string]bool{
	"with":    true,
	"secrets": true,
}

// YAMLExtractor is the structured backend. It parses the document and
// collects the input assignments under jobs.<id>.with.
type YAMLExtractor struct{}

func (YAMLExtractor) Name() string { return "structured query" }

// jobsDoc mirrors only the slice of a workflow file this backend reads.
type jobsDoc struct {
	Jobs map[string]struct {
		With map[string]any `yaml:"with"`
	} `yaml:"jobs"`
}

func (YAMLExtractor) Extract(doc []byte) (map[string]string, error) {
	var d jobsDoc
	if err := yaml.Unmarshal(doc, &d); err != nil {
		return nil, fmt.Errorf("parse workflow document: %w", err)
	}

	// Jobs are walked in sorted order so repeated keys resolve the same way
	// on every run.
	ids := make([]string, 0, len(d.Jobs))
	for id := range d.Jobs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make(map[string]string)
	for _, id := range ids {
		for key, value := range d.Jobs[id].With {
			switch v := value.(type) {
			case string:
				out[key] = v
			case bool, int, int64, uint64, float64:
				out[key] = fmt.Sprint(v)
			}
		}
	}
	return out, nil
}

// LineExtractor is the heuristic backend: it scans for a "with:" marker line
// and collects the indented "key: value" lines that follow, skipping
// reserved keys. It tolerates documents that are not valid YAML.
type LineExtractor struct{}

func (LineExtractor) Name() string { return "line scan" }

func (LineExtractor) Extract(doc []byte) (map[string]string, error) {
	out := make(map[string]string)

	inBlock := false
	blockIndent := 0
	for _, line := range strings.Split(string(doc), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))

		if trimmed == "with:" {
			inBlock = true
			blockIndent = indent
			continue
		}
		if !inBlock {
			continue
		}
		if indent <= blockIndent {
			// Dedent ends the block; a later "with:" may open another.
			inBlock = false
			continue
		}

		key, value, ok := strings.Cut(trimmed, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if key == "" || value == "" || reservedKeys[key] {
			continue
		}
		out[key] = value
	}
	return out, nil
}

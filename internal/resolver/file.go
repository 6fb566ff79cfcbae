package resolver

import (
	"os"

	"wfguard/internal/workflow"
)

// FileSource scans an ordered list of candidate workflow files for the input
// assignments a job passes to a reusable workflow. For each file that exists
// its extractors are tried in order; the first file yielding at least one
// key wins and no further candidates are consulted.
type FileSource struct {
	Candidates []string
	Extractors []workflow.Extractor // tried in order per file; defaults to structured then line scan
	Trace      Trace
}

func (s FileSource) Name() string { return "workflow files" }

func (s FileSource) Resolve() Inputs {
	trace := s.Trace
	if trace == nil {
		trace = func(string, ...any) {}
	}
	extractors := s.Extractors
	if len(extractors) == 0 {
		extractors = []workflow.Extractor{workflow.YAMLExtractor{}, workflow.LineExtractor{}}
	}

	for _, path := range s.Candidates {
		doc, err := os.ReadFile(path)
		if err != nil {
			trace("skipping %s: %v", path, err)
			continue
		}

		for _, ex := range extractors {
			values, err := ex.Extract(doc)
			if err != nil {
				trace("%s extraction failed for %s: %v", ex.Name(), path, err)
				continue
			}
			if len(values) == 0 {
				continue
			}
			trace("extracted %d input(s) from %s via %s", len(values), path, ex.Name())
			return FromMap(values)
		}
	}
	return nil
}

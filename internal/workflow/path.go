// Package workflow handles workflow definition files: locating them,
// extracting the input assignments a job passes to a reusable workflow, and
// reading the inputs the workflow itself declares.
package workflow

import "strings"

// DefaultCandidates is the ordered list of paths tried when no workflow file
// is configured explicitly. The first file that yields inputs wins.
func DefaultCandidates() []string {
	return []string{
		".github/workflows/current.yml",
		".github/workflows/actions.yml",
		".github/workflows/validator.yml",
		".github/workflows/reusable.yml",
	}
}

// NormalizePath converts a reusable-workflow reference of the form
// "owner/repo/.github/workflows/ci.yml@refs/heads/main" (how GitHub reports
// the workflow path to a called workflow) into a repo-local path. Paths
// without a ref suffix are returned unchanged.
func NormalizePath(path string) string {
	idx := strings.Index(path, "@refs/")
	if idx == -1 {
		return path
	}
	path = path[:idx]

	// Drop the leading owner/repo segments.
	parts := strings.Split(path, "/")
	if len(parts) > 2 {
		return "./" + strings.Join(parts[2:], "/")
	}
	return path
}

package workflow

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "reusable workflow reference",
			in:   "acme/platform/.github/workflows/deploy.yml@refs/heads/main",
			want: "./.github/workflows/deploy.yml",
		},
		{
			name: "tag reference",
			in:   "acme/platform/.github/workflows/ci.yml@refs/tags/v1.2.0",
			want: "./.github/workflows/ci.yml",
		},
		{
			name: "local path unchanged",
			in:   ".github/workflows/current.yml",
			want: ".github/workflows/current.yml",
		},
		{
			name: "empty path unchanged",
			in:   "",
			want: "",
		},
		{
			name: "ref suffix without repo segments",
			in:   "deploy.yml@refs/heads/main",
			want: "deploy.yml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePath(tt.in))
		})
	}
}

func TestNormalizePath_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	genSegment := gen.RegexMatch(`[a-z][a-z0-9-]{0,8}`)

	// Property: the result never carries a ref suffix
	properties.Property("ref suffix is always stripped", prop.ForAll(
		func(owner, repo, file, ref string) bool {
			in := owner + "/" + repo + "/.github/workflows/" + file + ".yml@refs/heads/" + ref
			return !strings.Contains(NormalizePath(in), "@refs/")
		},
		genSegment, genSegment, genSegment, genSegment,
	))

	// Property: normalization is idempotent
	properties.Property("normalization is idempotent", prop.ForAll(
		func(owner, repo, file string) bool {
			in := owner + "/" + repo + "/.github/workflows/" + file + ".yml@refs/heads/main"
			once := NormalizePath(in)
			return NormalizePath(once) == once
		},
		genSegment, genSegment, genSegment,
	))

	properties.TestingRun(t)
}

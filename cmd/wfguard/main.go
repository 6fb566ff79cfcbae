package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wfguard/internal/report"
	"wfguard/internal/resolver"
	"wfguard/internal/validator"
	"wfguard/internal/workflow"
)

const defaultWorkflowFile = ".github/workflows/current.yml"

// config carries everything run needs, fully resolved from flags and
// environment so that run itself stays deterministic and testable.
type config struct {
	WorkflowFile string
	InputPrefix  string
	Format       string // text or json
	CIMode       bool
	Quiet        bool
	SkipRequired bool
	Candidates   []string // overrides the workflow-file + default candidate list when set
}

func main() {
	os.Exit(execute(os.Args[1:]))
}

// execute builds and runs the root command, translating the outcome into a
// process exit code. Flag and config errors exit 2; validation failures
// exit 1.
func execute(args []string) int {
	exitCode := 0

	cmd := newRootCmd(&exitCode)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 2
	}
	return exitCode
}

func newRootCmd(exitCode *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wfguard",
		Short: "Validate CI workflow inputs for environment consistency",
		Long: `wfguard resolves the inputs provided to the current workflow run and
checks that resource names and URLs do not reference a different
environment than the one declared.

Inputs are resolved from the first available of three sources: INPUT_*
environment variables, the serialized event context of a manual run, or
the input assignments found in the workflow files themselves. A run with
no resolvable inputs succeeds; there is nothing to check.

Examples:
  # Validate inputs of the current run
  wfguard

  # Validate against an explicit workflow definition
  wfguard --workflow-file .github/workflows/deploy.yml

  # Emit CI error annotations regardless of environment detection
  wfguard --ci

  # Machine-readable output
  wfguard --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			*exitCode = run(cfg, os.Environ(), os.Stdout, os.Stderr)
			return nil
		},
	}

	cmd.Flags().String("workflow-file", "", "workflow definition to load (default from GITHUB_WORKFLOW_PATH)")
	cmd.Flags().String("prefix", resolver.DefaultPrefix, "environment variable prefix for inputs")
	cmd.Flags().String("format", "text", "output format: text or json")
	cmd.Flags().Bool("ci", false, "emit CI error annotations (auto-detected on CI runners)")
	cmd.Flags().BoolP("quiet", "q", false, "suppress diagnostic output, print violations only")
	cmd.Flags().Bool("skip-required", false, "skip required-input validation against the workflow definition")

	return cmd
}

// loadConfig layers defaults, WFGUARD_* environment variables, and flags,
// highest last.
func loadConfig(cmd *cobra.Command) (config, error) {
	v := viper.New()

	v.SetDefault("workflow_file", defaultWorkflowFile)
	v.SetDefault("prefix", resolver.DefaultPrefix)
	v.SetDefault("format", "text")

	v.SetEnvPrefix("WFGUARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// GITHUB_WORKFLOW_PATH is how the runner reports which workflow is
	// executing; an explicit WFGUARD_WORKFLOW_FILE still wins.
	_ = v.BindEnv("workflow_file", "WFGUARD_WORKFLOW_FILE", "GITHUB_WORKFLOW_PATH")

	for flag, key := range map[string]string{
		"workflow-file": "workflow_file",
		"prefix":        "prefix",
		"format":        "format",
		"ci":            "ci",
		"quiet":         "quiet",
		"skip-required": "skip_required",
	} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return config{}, err
		}
	}

	cfg := config{
		WorkflowFile: v.GetString("workflow_file"),
		InputPrefix:  v.GetString("prefix"),
		Format:       v.GetString("format"),
		CIMode:       v.GetBool("ci"),
		Quiet:        v.GetBool("quiet"),
		SkipRequired: v.GetBool("skip_required"),
	}
	if cfg.Format != "text" && cfg.Format != "json" {
		return config{}, fmt.Errorf("unknown output format %q, must be text or json", cfg.Format)
	}
	return cfg, nil
}

// run resolves inputs, validates them, and reports. It returns the exit
// code: 0 when no inputs were found or all checks passed, 1 when any
// violation was found.
func run(cfg config, environ []string, stdout, stderr io.Writer) int {
	trace := resolver.Trace(func(format string, args ...any) {
		fmt.Fprintf(stderr, format+"\n", args...)
	})
	if cfg.Quiet {
		trace = func(string, ...any) {}
	}

	workflowFile := workflow.NormalizePath(cfg.WorkflowFile)
	trace("using workflow file path: %s", workflowFile)

	candidates := cfg.Candidates
	if len(candidates) == 0 {
		candidates = append([]string{workflowFile}, workflow.DefaultCandidates()...)
	}

	inputs := resolver.Resolve(trace,
		resolver.EnvSource{Prefix: cfg.InputPrefix, Environ: environ},
		resolver.EventSource{RawContext: envValue(environ, "GITHUB_CONTEXT")},
		resolver.FileSource{Candidates: candidates, Trace: trace},
	)

	// Nothing resolved means nothing to validate; push events and bare
	// invocations succeed by design.
	if len(inputs) == 0 {
		trace("no inputs to validate")
		return 0
	}

	if !cfg.Quiet {
		report.Echo(stderr, inputs)
	}

	var violations []validator.Violation
	if !cfg.SkipRequired {
		declared := workflow.LoadDeclaredInputs(workflowFile)
		violations = append(violations, validator.ValidateRequired(declared, inputs)...)
	}
	violations = append(violations, validator.Validate(inputs)...)

	ciMode := cfg.CIMode || envBool(environ, "GITHUB_ACTIONS") || envBool(environ, "CI")

	switch cfg.Format {
	case "json":
		out, err := report.FormatJSON(violations)
		if err != nil {
			fmt.Fprintln(stderr, "Error:", err)
			return 2
		}
		fmt.Fprintln(stdout, out)
	default:
		if ciMode {
			fmt.Fprint(stdout, report.FormatCI(violations))
		} else {
			fmt.Fprint(stdout, report.FormatCLI(violations))
		}
	}

	if len(violations) > 0 {
		return 1
	}
	return 0
}

// envValue returns the value of name from an environ slice, or "".
func envValue(environ []string, name string) string {
	prefix := name + "="
	for _, entry := range environ {
		if strings.HasPrefix(entry, prefix) {
			return entry[len(prefix):]
		}
	}
	return ""
}

// envBool reports whether name is set to a truthy value.
func envBool(environ []string, name string) bool {
	switch strings.ToLower(envValue(environ, name)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for masklint.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"masklint-cli/internal/config"
	"masklint-cli/internal/issue"
	"masklint-cli/internal/lint"
	"masklint-cli/internal/outdir"
	"masklint-cli/pkg/maskfile"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// maskfilePath is the command specification file to process.
	maskfilePath string
	// verbose enables debug logging and rendered issue guidance
	verbose bool
	// colorMode controls report header emphasis (auto, always, never)
	colorMode string

	// logger writes progress to stderr, debug level when --verbose.
	logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "masklint",
		Short: "Lint the scripts embedded in your maskfile",
		Long: TitleStyle.Render("masklint") + SubtitleStyle.Render(" - lint the scripts embedded in your maskfile") + `

masklint extracts every script defined in a maskfile's command tree and
runs the linter matching its language: shellcheck for shell scripts, ruff
for Python and rubocop for Ruby. Findings are reported per command under
the command's qualified name.

` + SubtitleStyle.Render("Examples:") + `
  masklint run                      Lint every script in ./maskfile.md
  masklint --maskfile ci.md run     Lint a different maskfile
  masklint dump --output scripts/   Extract the scripts without linting`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.ColorMode(colorMode).Validate()
		},
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&maskfilePath, "maskfile", config.DefaultMaskfile, "path to the maskfile to use")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", string(config.ColorAuto), "emphasize report headers: auto, always or never")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// initRootConfig reads the config file and env variables. Flags that were
// set explicitly win over config values.
func initRootConfig() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), WarningStyle.Render("Warning: ")+err.Error())
		if verbose {
			renderGuidance(issue.ConfigLoadFailedId)
		}
	}

	if cfg != nil {
		flags := rootCmd.PersistentFlags()
		if !flags.Changed("maskfile") && cfg.Maskfile != "" {
			maskfilePath = cfg.Maskfile
		}
		if !flags.Changed("verbose") {
			verbose = cfg.UI.Verbose
		}
		if !flags.Changed("color") {
			colorMode = string(cfg.UI.Color)
		}
	}

	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// emphasize reports whether report headers should be styled.
func emphasize() bool {
	switch config.ColorMode(colorMode) {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}

// loadMaskfile parses the configured maskfile.
func loadMaskfile() (*maskfile.Maskfile, error) {
	logger.Debug("loading maskfile", "path", maskfilePath)
	return maskfile.Load(maskfilePath)
}

// explain prints rendered guidance for known failure modes to stderr. Only
// in verbose mode: the error line itself is printed by the CLI runner.
func explain(err error) {
	if err == nil || !verbose {
		return
	}
	if id, ok := issueFor(err); ok {
		renderGuidance(id)
	}
}

// renderGuidance prints an issue's rendered markdown guidance to stderr.
func renderGuidance(id issue.Id) {
	style := "notty"
	if emphasize() {
		style = "dark"
	}
	rendered, err := issue.Get(id).Render(style)
	if err != nil {
		return
	}
	fmt.Fprint(rootCmd.ErrOrStderr(), rendered)
}

// issueFor maps an error to the issue describing it.
func issueFor(err error) (issue.Id, bool) {
	var linterErr *lint.LinterNotFoundError
	var parseErr *maskfile.ParseError
	var createErr *outdir.CreateError
	switch {
	case errors.As(err, &linterErr):
		return issue.LinterNotFoundId, true
	case errors.As(err, &parseErr):
		return issue.MaskfileParseErrorId, true
	case errors.As(err, &createErr):
		return issue.OutputDirCreateFailedId, true
	case errors.Is(err, fs.ErrExist):
		return issue.OutputCollisionId, true
	case errors.Is(err, fs.ErrNotExist):
		return issue.MaskfileNotFoundId, true
	}
	return 0, false
}

// Command treesite builds static sites from Markdown content and serves
// them with live reload.
package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vango-dev/treesite/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Error output formats selected with --error-format.
const (
	errorFormatText    = "text"
	errorFormatCompact = "compact"
	errorFormatJSON    = "json"
)

func main() {
	rootCmd := newRootCmd(os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		format, _ := rootCmd.PersistentFlags().GetString("error-format")
		reportError(os.Stderr, classify(err), format)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var envFile, errorFormat string

	rootCmd := &cobra.Command{
		Use:   "treesite",
		Short: "Build static sites from node trees",
		Long: `treesite renders trees of HTML nodes into static sites.

Markdown pages under the content directory are converted, wrapped
in an HTML5 layout and exported with the files of the static
directory. Features include:

  • YAML front matter with drafts and custom paths
  • Sequential or parallel page group builds
  • Export to a directory or an S3 bucket
  • Preview server with live reload
  • Prometheus build metrics`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch errorFormat {
			case errorFormatText, errorFormatCompact, errorFormatJSON:
			default:
				return usageError{fmt.Errorf("invalid --error-format %q: want text, compact or json", errorFormat)}
			}
			return loadEnv(envFile)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file loaded before running")
	rootCmd.PersistentFlags().StringVar(&errorFormat, "error-format", errorFormatText, "Error output format (text, compact, json)")

	rootCmd.AddCommand(
		initCmd(),
		buildCmd(),
		serveCmd(),
		examplesCmd(),
		versionCmd(),
	)
	return rootCmd
}

// loadEnv loads the environment file when it exists. Variables already
// set take precedence.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return errors.New("E102").WithDetail("cannot read " + path).Wrap(err)
	}
	return nil
}

// classify maps command failures to coded errors.
func classify(err error) *errors.Error {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return e
	}
	if isUsageError(err) {
		return errors.New("E501").Wrap(err)
	}
	return errors.Classify(err, "E201")
}

// reportError writes err to w in the given format. Unknown formats print
// the full text form.
func reportError(w io.Writer, err *errors.Error, format string) {
	switch format {
	case errorFormatJSON:
		fmt.Fprintln(w, err.FormatJSON())
	case errorFormatCompact:
		fmt.Fprintln(w, err.FormatCompact())
	default:
		errors.PrintError(w, err)
	}
}

// usageError marks a malformed command line.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func isUsageError(err error) bool {
	var u usageError
	return stderrors.As(err, &u) || strings.HasPrefix(err.Error(), "unknown command")
}

// usageArgs reports argument validation failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// newLogger returns a text logger on stderr, at debug level when verbose.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}

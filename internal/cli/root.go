package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"paritygen/internal/log"

	"github.com/spf13/cobra"
)

// Version is set by main.go
var Version = "dev"

// rootCmd is the base command when called without subcommands
var rootCmd = &cobra.Command{
	Use:   "paritygen",
	Short: "Add or remove per-byte parity in a packed bit stream",
	Long: `paritygen packs every 8 raw bytes into 9 encoded bytes by placing a
parity bit after each raw byte, and strips those bits again on the way back.

Bytes are given as hex tokens (XX XX XX ...), read from stdin when no tokens
are given and stdin is not a terminal, or streamed from a file with -i.

  paritygen odd    XX XX XX XX ...   (adds odd parity)
  paritygen even   XX XX XX XX ...   (adds even parity)
  paritygen remove XX XX XX XX ...   (removes parity)`,
	Version:           Version,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: preRun,
}

// Global flags shared by every subcommand
var (
	flagInput     string
	flagOutput    string
	flagWorkers   int
	flagDigest    bool
	flagPlain     bool
	flagQuiet     bool
	flagYes       bool
	flagVerbose   bool
	flagLogFile   string
	flagLogLevel  string
	flagLogFormat string
	flagConfig    string
)

// closeLog releases the log file opened by setupLogging.
var closeLog = func() error { return nil }

func init() {
	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	pf := rootCmd.PersistentFlags()

	// Input/Output
	pf.StringVarP(&flagInput, "input", "i", "", "Binary input file (streams instead of hex tokens)")
	pf.StringVarP(&flagOutput, "output", "o", "", "Binary output file (default derived from --input)")

	// Processing
	pf.IntVarP(&flagWorkers, "workers", "w", 1, "Goroutines used per buffer (0 = all CPUs)")
	pf.BoolVar(&flagDigest, "digest", false, "Print the BLAKE2b-256 digest of the result")

	// Output style
	pf.BoolVar(&flagPlain, "plain", false, "Print only the result bytes")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	pf.BoolVarP(&flagYes, "yes", "y", false, "Overwrite output file without prompting")

	// Logging
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug details to stderr")
	pf.StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFormat, "log-format", "", "Log format: text, json, console")

	// Defaults
	pf.StringVar(&flagConfig, "config", "", "TOML file with default flag values")
}

func preRun(cmd *cobra.Command, args []string) error {
	if flagConfig != "" {
		if err := loadConfig(cmd, flagConfig); err != nil {
			return err
		}
	}
	return setupLogging(cmd, args)
}

// setupLogging installs a logger when any logging flag is present; otherwise
// the package default (discard) stays in place.
func setupLogging(cmd *cobra.Command, args []string) error {
	if !flagVerbose && flagLogFile == "" && flagLogLevel == "" && flagLogFormat == "" {
		return nil
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	format, err := log.ParseFormat(flagLogFormat)
	if err != nil {
		return err
	}
	if flagVerbose {
		level = log.LevelDebug
	}

	closeFn, err := log.Configure(level, format, flagLogFile)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	closeLog = closeFn
	log.Debug("logging configured",
		log.String("level", level.String()),
		log.String("format", format.String()),
		log.String("file", flagLogFile))
	return nil
}

// Execute runs the CLI and returns the process exit code.
// SIGINT/SIGTERM cancel a running file conversion.
func Execute(version string) int {
	Version = version
	rootCmd.Version = version

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if cerr := closeLog(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n\n", err)
		return 1
	}
	return 0
}

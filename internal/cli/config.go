package cli

import (
	"fmt"
	"strings"

	"paritygen/internal/errors"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// fileConfig holds the defaults a --config file may set. Flags given on the
// command line always win over the file.
type fileConfig struct {
	Workers   int    `toml:"workers"`
	Digest    bool   `toml:"digest"`
	Plain     bool   `toml:"plain"`
	Quiet     bool   `toml:"quiet"`
	Yes       bool   `toml:"yes"`
	LogLevel  string `toml:"log_level"`
	LogFile   string `toml:"log_file"`
	LogFormat string `toml:"log_format"`
}

func loadConfig(cmd *cobra.Command, path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return errors.NewValidationError(undecoded[0].String(), "unknown key in "+path)
	}

	flags := cmd.Flags()
	apply := func(key, flag string, set func()) {
		if meta.IsDefined(key) && !flags.Changed(flag) {
			set()
		}
	}

	if meta.IsDefined("workers") && raw.Workers < 0 {
		return errors.NewValidationError("workers", "must be 0 (all CPUs) or positive")
	}
	apply("workers", "workers", func() { flagWorkers = raw.Workers })
	apply("digest", "digest", func() { flagDigest = raw.Digest })
	apply("plain", "plain", func() { flagPlain = raw.Plain })
	apply("quiet", "quiet", func() { flagQuiet = raw.Quiet })
	apply("yes", "yes", func() { flagYes = raw.Yes })
	apply("log_level", "log-level", func() { flagLogLevel = strings.TrimSpace(raw.LogLevel) })
	apply("log_file", "log-file", func() { flagLogFile = strings.TrimSpace(raw.LogFile) })
	apply("log_format", "log-format", func() { flagLogFormat = strings.TrimSpace(raw.LogFormat) })
	return nil
}

package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/sdejongh/dirdiff/internal/platform"
	"github.com/sdejongh/dirdiff/pkg/config"
	"github.com/sdejongh/dirdiff/pkg/models"
)

// validateRoots checks that both roots exist and are directories
func validateRoots(left, right string) error {
	for _, root := range []struct{ side, path string }{{"left", left}, {"right", right}} {
		if err := platform.ValidatePath(root.path); err != nil {
			return fmt.Errorf("%s path: %w", root.side, err)
		}

		isDir, err := platform.IsDir(root.path)
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s path does not exist: %s", root.side, root.path)
		}
		if err != nil {
			return fmt.Errorf("failed to access %s path: %w", root.side, err)
		}
		if !isDir {
			return fmt.Errorf("%s path is not a directory: %s", root.side, root.path)
		}
	}
	return nil
}

// validateSelectors rejects unknown mode and format names
func validateSelectors(flags *CompareFlags) error {
	if _, err := models.ParseStates(flags.Mode); err != nil {
		return err
	}
	if _, err := models.ParseFormat(flags.Format); err != nil {
		return err
	}
	return nil
}

// loadConfig loads configuration from file or returns default
func loadConfig(globals *GlobalFlags) (*config.Config, error) {
	return config.Load(globals.ConfigFile)
}

// applyFlagsToConfig overrides config values with explicitly set flags
func applyFlagsToConfig(cmd *cobra.Command, flags *CompareFlags, cfg *config.Config) {
	changed := cmd.Flags().Changed

	if changed("mode") {
		cfg.Compare.Mode = flags.Mode
	}
	if changed("format") {
		cfg.Compare.Format = flags.Format
	}
	if changed("algorithm") {
		cfg.Compare.Algorithm = flags.Algorithm
	}
	if changed("exclude") {
		cfg.Exclude = flags.Exclude
	}
	if changed("bandwidth") {
		cfg.Performance.BandwidthLimit = flags.Bandwidth
	}
	if changed("buffer-size") {
		cfg.Performance.BufferSize = flags.BufferSize
	}
	if changed("output") {
		cfg.Output.File = flags.Output
	}
	if changed("progress") {
		cfg.Output.Progress = flags.Progress
	}
	if changed("log-file") {
		cfg.Logging.File = flags.LogFile
	}
	if changed("log-format") {
		cfg.Logging.Format = flags.LogFormat
	}
	if changed("log-level") {
		cfg.Logging.Level = flags.LogLevel
	}
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/sdejongh/dirdiff/pkg/hasher"
)

// GlobalFlags holds global flag values
type GlobalFlags struct {
	ConfigFile string
}

// CompareFlags holds the flags of the root comparison command
type CompareFlags struct {
	Left       string
	Right      string
	Mode       []string
	Format     string
	Algorithm  string
	Exclude    []string
	Bandwidth  string
	BufferSize int
	Output     string
	Progress   bool
	// Logging flags
	LogFile   string
	LogFormat string
	LogLevel  string
}

// AddGlobalFlags adds global flags to the root command
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	cmd.PersistentFlags().StringVar(
		&flags.ConfigFile,
		"config",
		"",
		"config file (default is $HOME/.config/dirdiff/config.yaml)",
	)
}

// addCompareFlags registers the comparison flags. Values only override the
// configuration file when set explicitly.
func addCompareFlags(cmd *cobra.Command, flags *CompareFlags) {
	// Required flags
	cmd.Flags().StringVarP(&flags.Left, "left", "l", "", "the left directory to compare (required)")
	cmd.Flags().StringVarP(&flags.Right, "right", "r", "", "the right directory to compare (required)")
	cmd.MarkFlagRequired("left")
	cmd.MarkFlagRequired("right")

	// Optional flags
	cmd.Flags().StringSliceVarP(&flags.Mode, "mode", "m", []string{"Different"},
		"print only the selected results: Equal, HashMismatch, LeftMissing, RightMissing, Missing, Different, All, None (repeatable)")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", "Text", "output format: Text, Csv, Json")
	cmd.Flags().StringVar(&flags.Algorithm, "algorithm", hasher.DefaultAlgorithm, "hash algorithm: sha256, blake3")
	cmd.Flags().StringSliceVar(&flags.Exclude, "exclude", []string{}, "glob patterns to exclude")
	cmd.Flags().StringVarP(&flags.Bandwidth, "bandwidth", "b", "", "limit combined read rate (e.g., \"10M\", \"1G\")")
	cmd.Flags().IntVar(&flags.BufferSize, "buffer-size", hasher.DefaultBufferSize, "read buffer size in bytes")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().BoolVar(&flags.Progress, "progress", false, "show a scan counter on stderr")

	// Logging flags
	cmd.Flags().StringVar(&flags.LogFile, "log-file", "", "write logs to file (enables logging)")
	cmd.Flags().StringVar(&flags.LogFormat, "log-format", "text", "log format: text, json")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
}

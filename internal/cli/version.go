package cli

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sdejongh/dirdiff/pkg/hasher"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func versionString() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// NewVersionCommand reports build details and the digest algorithms
// this binary can compare with
func NewVersionCommand() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if short {
				_, err := fmt.Fprintln(out, Version)
				return err
			}

			lines := []string{
				"dirdiff " + Version,
				"  Commit:     " + Commit,
				"  Built:      " + BuildDate,
				"  Algorithms: " + strings.Join(hasher.Names(), ", ") + " (default " + hasher.DefaultAlgorithm + ")",
				"  Go version: " + runtime.Version(),
				"  Platform:   " + runtime.GOOS + "/" + runtime.GOARCH,
			}
			_, err := fmt.Fprintln(out, strings.Join(lines, "\n"))
			return err
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "print only the version number")

	return cmd
}

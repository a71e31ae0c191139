package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdejongh/dirdiff/internal/platform"
	"github.com/sdejongh/dirdiff/pkg/engine"
	"github.com/sdejongh/dirdiff/pkg/logging"
	"github.com/sdejongh/dirdiff/pkg/output"
)

// NewRootCommand creates the dirdiff command tree. The root command itself
// runs a comparison.
func NewRootCommand() *cobra.Command {
	globals := &GlobalFlags{}
	flags := &CompareFlags{}

	cmd := &cobra.Command{
		Use:   "dirdiff",
		Short: "Finds discrepancies in file trees by comparing content hashes",
		Long: `dirdiff scans two directory trees, hashes every regular file and reports,
per relative path, whether both sides are equal, differ in content, or one
side lacks the file.`,
		Example: `  dirdiff -l ./backup -r /mnt/archive
  dirdiff -l a -r b -m Equal -m LeftMissing -f Csv
  dirdiff -l a -r b -m All -f Json -o report.json`,
		Version:       versionString(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, globals, flags)
		},
	}

	AddGlobalFlags(cmd, globals)
	addCompareFlags(cmd, flags)

	cmd.AddCommand(NewConfigCommand(globals))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

func runCompare(cmd *cobra.Command, globals *GlobalFlags, flags *CompareFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Reject bad selectors and roots before any scan starts
	if err := validateSelectors(flags); err != nil {
		return err
	}
	if err := validateRoots(flags.Left, flags.Right); err != nil {
		return err
	}

	cfg, err := loadConfig(globals)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagsToConfig(cmd, flags, cfg)

	opts, err := cfg.Options(flags.Left, flags.Right)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LoggerConfig())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	if platform.SamePath(opts.LeftPath, opts.RightPath) {
		logger.Warn(ctx, "Left and right are the same directory", logging.Fields{"path": opts.LeftPath})
	}

	renderer, err := output.NewRenderer(opts.Format)
	if err != nil {
		return err
	}

	progress := output.NewProgress(cmd.ErrOrStderr(), cfg.Output.Progress)
	var onFile engine.ProgressFunc
	if progress != nil {
		onFile = func(side engine.Side, _ string) {
			progress.FileHashed(string(side))
		}
	}

	eng, err := engine.NewFromOptions(opts, logger, onFile)
	if err != nil {
		return err
	}
	defer eng.Close()

	progress.Start()
	report, err := eng.Run(ctx)
	progress.Finish()
	if err != nil {
		if engine.IsCancelled(err) {
			return fmt.Errorf("comparison cancelled: %w", err)
		}
		return fmt.Errorf("comparison failed: %w", err)
	}

	if cfg.Output.File != "" {
		if err := output.WriteReport(cfg.Output.File, opts.Format, opts.Filter, report); err != nil {
			return err
		}
		logger.Info(ctx, "Report written", logging.Fields{"file": cfg.Output.File, "format": renderer.Name()})
		return nil
	}

	return renderer.Render(cmd.OutOrStdout(), opts.Filter, report)
}

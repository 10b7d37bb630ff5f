package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/herbdata/herbario/internal/iofs"
	"github.com/herbdata/herbario/internal/iologger"
	"github.com/herbdata/herbario/internal/iopipeline"
	"github.com/herbdata/herbario/internal/iosources"
	"github.com/herbdata/herbario/pkg/config"
	"github.com/spf13/cobra"
)

func getRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Runs the pipeline, resuming from the latest checkpoint",
		Long: `Runs the species pipeline: collect the paginated species list, filter
it against the accepted-names checklist, download the detail documents and
write the simplified table to data/herbario_species.csv.

The run resumes from the most advanced artifact left by a previous run:
the final table, then the accepted details, the filtered list, and the
collected list, in that order. With none present the full sequence runs
and every stage is checkpointed under data/temp/.

Examples:
  herbario run
  herbario run --start-page 40
  herbario run --clean-temp --keep-logs`,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyRunFlags(cmd)

			if err := iofs.EnsureWorkDirs(cfg.WorkDir); err != nil {
				gn.PrintErrorMessage(err)
				return err
			}

			src, err := iosources.New(homeDir).Load()
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}

			log, closeLog, err := iologger.New(
				config.ErrorsDir(cfg.WorkDir), cfg.Log,
			)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			defer closeLog()

			pipe, err := iopipeline.New(cfg, src, log)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}

			if _, err = pipe.Run(context.Background()); err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			return nil
		},
	}

	runCmd.Flags().Int("start-page", 0,
		"first page requested from the species list endpoint")
	runCmd.Flags().String("lang", "",
		"language of the detail documents")
	runCmd.Flags().Bool("clean-temp", false,
		"remove stage checkpoints after the run")
	runCmd.Flags().Bool("keep-logs", false,
		"keep empty error logs after the run")

	return runCmd
}

// applyRunFlags folds the run flags into the config, overriding env vars
// and config.yaml values.
func applyRunFlags(cmd *cobra.Command) {
	var opts []config.Option

	if i, _ := cmd.Flags().GetInt("start-page"); i > 0 {
		opts = append(opts, config.OptStartPage(i))
	}
	if s, _ := cmd.Flags().GetString("lang"); s != "" {
		opts = append(opts, config.OptLanguage(s))
	}
	if b, _ := cmd.Flags().GetBool("clean-temp"); b {
		opts = append(opts, config.OptCleanTemp(true))
	}
	if b, _ := cmd.Flags().GetBool("keep-logs"); b {
		opts = append(opts, config.OptCleanLogs(false))
	}

	cfg.Update(opts)
}

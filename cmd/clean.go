package cmd

import (
	"github.com/gnames/gn"
	"github.com/herbdata/herbario/internal/iofs"
	"github.com/herbdata/herbario/pkg/config"
	"github.com/spf13/cobra"
)

func getCleanCmd() *cobra.Command {
	cleanCmd := &cobra.Command{
		Use:   "clean",
		Short: "Removes stage checkpoints and error logs",
		Long: `Removes every stage checkpoint from data/temp/ and every error log
from errors/. The cached checklist and the final table are kept; the next
run resumes from the final table if it exists, or starts from scratch.

Examples:
  herbario clean
  herbario clean --workdir /srv/herbario`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := iofs.CleanTemp(config.TempDir(cfg.WorkDir)); err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			if err := iofs.PurgeLogs(config.ErrorsDir(cfg.WorkDir)); err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			gn.Info("Removed checkpoints and error logs")
			return nil
		},
	}
	return cleanCmd
}

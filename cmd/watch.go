package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/papapumpkin/sourcecheck/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-print the report whenever files under the project change",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, m, err := loadManifest()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if _, err := writeReport(out, m); err != nil {
			return err
		}

		root := filepath.Join(m.BaseDir, m.Project)
		w, err := watch.NewWatcher(root)
		if err != nil {
			return fmt.Errorf("creating watcher: %w", err)
		}
		if err := w.Start(); err != nil {
			return fmt.Errorf("watching %s: %w", w.Root, err)
		}
		defer w.Stop()
		logger.Info("watching for changes", zap.String("root", w.Root))

		ctx := cmd.Context()
		for {
			select {
			case <-ctx.Done():
				return nil
			case change, ok := <-w.Changes:
				if !ok {
					return nil
				}
				logger.Debug("change detected", zap.Strings("files", change.Files))
				fmt.Fprintln(out)
				if _, err := writeReport(out, m); err != nil {
					return err
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/papapumpkin/sourcecheck/internal/manifest"
	"github.com/papapumpkin/sourcecheck/internal/report"
)

// ErrMissingFiles is returned in strict mode when any entry was not found.
var ErrMissingFiles = errors.New("missing files")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report which expected source files exist",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, m, err := loadManifest()
	if err != nil {
		return err
	}

	s, err := writeReport(cmd.OutOrStdout(), m)
	if err != nil {
		return err
	}

	// Missing files are informational unless strict mode asks otherwise.
	if cfg.Strict && s.Missing > 0 {
		return fmt.Errorf("%w: %d of %d not found", ErrMissingFiles, s.Missing, s.Total())
	}
	return nil
}

// writeReport probes m and renders the report to w.
func writeReport(w io.Writer, m *manifest.Manifest) (report.Summary, error) {
	results := report.NewChecker(appFs).Check(m)
	for _, r := range results {
		logger.Debug("probed", zap.String("path", r.FullPath), zap.Bool("found", r.Found))
	}

	if err := report.Render(w, results, m.Project); err != nil {
		return report.Summary{}, err
	}

	s := report.Summarize(results)
	logger.Debug("check complete", zap.Int("found", s.Found), zap.Int("missing", s.Missing))
	return s, nil
}

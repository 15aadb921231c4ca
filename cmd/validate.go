package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/sourcecheck/internal/ansi"
	"github.com/papapumpkin/sourcecheck/internal/manifest"
)

// ErrInvalidManifest is returned when the manifest breaks one of its invariants.
var ErrInvalidManifest = errors.New("manifest has errors")

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the manifest for duplicate or malformed entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, m, err := loadManifest()
		if err != nil {
			return err
		}

		errOut := cmd.ErrOrStderr()
		p := ansi.Painter{}
		if f, ok := errOut.(*os.File); ok {
			p = ansi.For(f)
		}

		errs := manifest.Validate(m)
		if len(errs) == 0 {
			fmt.Fprintf(errOut, "%s %d entries, no errors\n", p.Paint("✓ manifest", ansi.Green, ansi.Bold), len(m.Entries))
			return nil
		}

		for _, e := range errs {
			fmt.Fprintf(errOut, "%s %v\n", p.Paint("✗", ansi.Red, ansi.Bold), &e)
		}
		return fmt.Errorf("%w: %d problem(s)", ErrInvalidManifest, len(errs))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

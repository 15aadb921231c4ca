package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/sourcecheck/internal/config"
	"github.com/papapumpkin/sourcecheck/internal/manifest"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in file list to a manifest for editing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		force, _ := cmd.Flags().GetBool("force")

		exists, err := afero.Exists(appFs, cfg.Manifest)
		if err != nil {
			return fmt.Errorf("checking %s: %w", cfg.Manifest, err)
		}
		if exists && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfg.Manifest)
		}

		m := manifest.Default()
		cfg.Apply(m)
		if err := manifest.Save(appFs, cfg.Manifest, m); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d entries)\n", cfg.Manifest, len(m.Entries))
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing manifest")
	rootCmd.AddCommand(initCmd)
}

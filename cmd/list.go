package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/sourcecheck/internal/ansi"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the expected files grouped by category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, m, err := loadManifest()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		p := ansi.Painter{}
		if f, ok := out.(*os.File); ok {
			p = ansi.For(f)
		}

		order, groups := m.ByCategory()
		for i, c := range order {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, p.Paint(c.Label(), ansi.Bold, ansi.Cyan))
			for _, e := range groups[c] {
				fmt.Fprintf(out, "  %s %s\n", e.Path, p.Paint("("+e.Name+")", ansi.Dim))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

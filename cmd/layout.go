package cmd

import (
	"github.com/spf13/cobra"
)

// layoutCmd represents the layout command.
var layoutCmd = newLayoutCmd()

func newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout FROM TO",
		Short: "Rename a layout and its references",
		Long: `Rename every layout file whose base name matches FROM, keeping the
extension chain intact, then rewrite the base name across the project.
Layout names are matched case-sensitively.

  railmv layout users clients`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kit, err := buildToolkit(cmd)
			if err != nil {
				return err
			}

			res, err := kit.engine.RenameLayout(args[0], args[1])
			reportResult(kit.ui, res)

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}

package cmd

import (
	"github.com/spf13/cobra"
)

// controllerCmd represents the controller command.
var controllerCmd = newControllerCmd()

func newControllerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "controller FROM TO",
		Short: "Rename a controller and its companions",
		Long: `Rename a controller together with its functional test, spec, helper,
helper test, views directory and default layout, then rewrite references
in the controller-related directories and the routes file.

Names may be given camelized or decamelized:

  railmv controller Users Clients
  railmv controller users clients`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kit, err := buildToolkit(cmd)
			if err != nil {
				return err
			}

			res, err := kit.engine.RenameController(args[0], args[1])
			reportResult(kit.ui, res)

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(controllerCmd)
}

package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/spacebat/railmv/internal/model"
)

// classCmd represents the class command.
var classCmd = newClassCmd()

func newClassCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "class FROM_FILE TO_FILE",
		Short: "Rename a class file and its declaration",
		Long: `Move a class file to a new convention-conforming path, rewrite the
class/module declaration inside it, and (interactively) offer to rewrite
references to the old symbol across the project.

Both paths must lie under a known artifact location, e.g.:

  railmv class app/models/person.rb app/models/client.rb`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kit, err := buildToolkit(cmd)
			if err != nil {
				return err
			}

			res, err := kit.engine.RenameClass(m.Path(args[0]), m.Path(args[1]))
			reportResult(kit.ui, res)

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(classCmd)
}

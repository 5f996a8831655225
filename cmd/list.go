package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List class files and the symbols they define",
		Long:  "List every class-defining file under the source roots with its artifact kind and symbol.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			kit, err := buildToolkit(cmd)
			if err != nil {
				return err
			}

			kit.ui.DisplayClassFiles(kit.classifier.ListClassFiles())

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}

package cmd

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	m "github.com/spacebat/railmv/internal/model"
)

// replaceCmd represents the replace command.
var replaceCmd = newReplaceCmd()

func newReplaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replace PATTERN REPLACEMENT [SCOPE...]",
		Short: "Query-replace a pattern across project files",
		Long: `Search-and-replace a regular expression across the project's source
files, asking per occurrence when run interactively. Optional SCOPE
directories restrict the candidate set (default: all source roots).

The pass stops at the first declined replacement; files rewritten before
that point stay rewritten.

  railmv replace '\bPerson\b' Client app/models test/unit`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, err := regexp.Compile(args[0])
			if err != nil {
				return fmt.Errorf("invalid pattern: %w", err)
			}

			kit, err := buildToolkit(cmd)
			if err != nil {
				return err
			}

			var candidates []m.Path
			if len(args) > 2 {
				candidates = kit.scanner.FilterSource(kit.scanner.ListFiles(toModelPaths(args[2:])))
			} else {
				candidates = kit.scanner.ListSourceFiles()
			}

			outcome, err := kit.rewriter.ReplaceAcrossFiles(pattern, args[1], candidates, kit.interactive)
			if err != nil {
				return err
			}

			kit.ui.Infof("rewrote %d occurrence(s) in %d of %d file(s)",
				outcome.Replacements, len(outcome.Changed), outcome.Scanned)

			if outcome.Aborted {
				kit.ui.Infof("stopped at %s; completed replacements remain applied", outcome.AbortedAt)
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(replaceCmd)
}

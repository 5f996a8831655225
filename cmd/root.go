// Package cmd provides the root command and CLI setup for railmv.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/spacebat/railmv/internal/adapter"
	"github.com/spacebat/railmv/internal/controller"
	"github.com/spacebat/railmv/internal/domain"
	m "github.com/spacebat/railmv/internal/model"
)

// assumeYesFlag skips every confirmation and runs batch replace-alls.
var assumeYesFlag bool

// chdirFlag moves the process into the project root before running.
var chdirFlag string

// extraExtensions adds entries to the source extension allow-list.
var extraExtensions []string

var verboseFlag bool
var logFileFlag string

const rootLongDescription = `railmv renames classes, controllers and layouts in projects that follow
the Rails file-per-class directory convention. Renaming an entity moves
its files, rewrites the class/module declaration inside them, and
rewrites textual references across the project.

There is no undo: moves and rewrites already applied when an operation
stops (error or declined prompt) stay applied. Re-run to completion or
reconcile by hand.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "railmv",
		Short: "Convention-aware renaming for Rails-style projects",
		Long:  rootLongDescription,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if chdirFlag != "" {
				if err := os.Chdir(chdirFlag); err != nil {
					return fmt.Errorf("change to project root: %w", err)
				}
			}

			loadConfigFile()
			configureLogger(logFileFlag, verboseFlag || viper.GetBool(logVerboseKey))

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&assumeYesFlag, yesFlagName, "y", viper.GetBool(yesFlagName), "answer yes to all prompts (non-interactive batch mode)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(yesFlagName), yesFlagName)

	cmd.PersistentFlags().StringVarP(&chdirFlag, chdirFlagName, "C", "", "run as if started in this directory (the project root)")

	cmd.PersistentFlags().StringArrayVarP(&extraExtensions, extFlagName, "e", nil, "additional source file extension to scan (can be repeated)")

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file path")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// toolkit bundles the wired collaborators of one CLI invocation.
type toolkit struct {
	ui          controller.UI
	scanner     *domain.ProjectScanner
	classifier  *domain.ArtifactClassifier
	rewriter    *domain.ReferenceRewriter
	engine      *domain.RenameEngine
	interactive bool
}

// buildToolkit wires adapters, conventions and the rename engine for one
// command run. Conventions come from the embedded defaults, optionally
// overridden by a conventions file and the paths.* config keys.
func buildToolkit(cmd *cobra.Command) (*toolkit, error) {
	conv, err := m.LoadConventions(viper.GetString(conventionsFileKey))
	if err != nil {
		return nil, err
	}

	if exts := viper.GetStringSlice(extensionsConfigKey); len(exts) > 0 {
		conv.Extensions = exts
	}

	conv.Extensions = append(conv.Extensions, extraExtensions...)

	if roots := viper.GetStringSlice(rootsConfigKey); len(roots) > 0 {
		conv.SourceRoots = toModelPaths(roots)
	}

	if suffixes := viper.GetStringSlice(generatedConfigKey); len(suffixes) > 0 {
		conv.GeneratedSuffixes = suffixes
	}

	fsAdapter := adapter.NewLocalProjectFSAdapter()
	docs := adapter.NewDocumentStore(fsAdapter)

	var editor adapter.Editor = adapter.NoopEditor{}

	nv, err := adapter.DialNvim()
	switch {
	case err != nil:
		slog.Warn("editor advertised but unreachable", "error", err)
	case nv != nil:
		editor = nv
	}

	assumeYes := viper.GetBool(yesFlagName)
	tty := controller.IsTTY(os.Stdout) && controller.IsTTY(os.Stdin)
	interactive := tty && !assumeYes

	ui := controller.NewUI(cmd, tty, assumeYes)
	scanner := domain.NewProjectScanner(fsAdapter, conv)
	classifier := domain.NewArtifactClassifier(scanner, conv)
	rewriter := domain.NewReferenceRewriter(docs, ui)
	engine := domain.NewRenameEngine(fsAdapter, docs, ui, editor, scanner, classifier, rewriter, conv, interactive)

	return &toolkit{
		ui:          ui,
		scanner:     scanner,
		classifier:  classifier,
		rewriter:    rewriter,
		engine:      engine,
		interactive: interactive,
	}, nil
}

// reportResult renders a rename outcome: the executed steps, any
// warnings, and a summary of the rewrite passes.
func reportResult(ui controller.UI, res m.RenameResult) {
	ui.DisplayTrace(res.Trace)

	for _, warning := range res.Warnings {
		ui.Infof("warning: %s", warning)
	}

	if res.Rewrites.Scanned > 0 {
		ui.Infof("rewrote %d reference(s) in %d file(s)", res.Rewrites.Replacements, len(res.Rewrites.Changed))
	}

	if res.Phase == m.PhaseAborted {
		ui.Infof("stopped at %s; completed steps remain applied", res.Rewrites.AbortedAt)
	}
}

func toModelPaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

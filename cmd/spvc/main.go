// Command spvc builds the bundled shader programs to SPIR-V and inspects
// the results.
//
// Usage:
//
//	spvc build [program...]        # build programs into out_dir
//	spvc dis <file.spv|program>    # disassemble a module
//	spvc layout <defs.toml|yaml>   # print struct offsets
//	spvc version
//
// Defaults come from spvc.toml in the working directory, if present.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const spvcVersion = "0.1.0-dev"

type globalFlags struct {
	config  string
	verbose bool
	noColor bool
}

// app carries state shared by subcommands.
type app struct {
	flags  globalFlags
	cfg    Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "spvc",
		Short:         "Build and inspect SPIR-V shader modules",
		Version:       spvcVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr(), cmd.Flags().Changed("config"))
		},
	}

	root.PersistentFlags().StringVar(&a.flags.config, "config", "spvc.toml", "configuration file")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "log debug records")
	root.PersistentFlags().BoolVar(&a.flags.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newBuildCmd(a),
		newDisCmd(a),
		newLayoutCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(stderr io.Writer, explicitConfig bool) error {
	if a.flags.noColor {
		color.NoColor = true
	}

	level := slog.LevelInfo
	if a.flags.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := loadConfig(a.flags.config, explicitConfig)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger.Debug("configuration loaded", "path", a.flags.config, "out_dir", cfg.OutDir, "layout", cfg.Layout)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorColor.Sprint("error: ")+err.Error())
		os.Exit(1)
	}
}

package main

import (
	"io"

	"github.com/nulzo/aimind/internal/app"
	"github.com/nulzo/aimind/internal/cli"
	"github.com/nulzo/aimind/internal/config"
	"github.com/nulzo/aimind/internal/platform/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cliApp holds state shared by every subcommand.
type cliApp struct {
	out     io.Writer
	dataDir string
	verbose bool
	noColor bool

	cfg *config.Config
	log *zap.Logger
}

func newRootCommand(out io.Writer) *cobra.Command {
	a := &cliApp{out: out, log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "aimind",
		Short:         "Manage AI providers and mind maps from the terminal",
		Long:          `aimind talks to the same provider registry and mind-map files as the desktop app.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "Data directory (default ~/.aimind)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log to stderr at debug level")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		a.providersCommand(),
		a.chatCommand(),
		a.expandCommand(),
		a.analyzeCommand(),
		a.openCommand(),
		a.recentCommand(),
		a.versionCommand(),
	)

	return root
}

func (a *cliApp) setup() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if a.dataDir != "" {
		cfg.Data.Dir = a.dataDir
	}
	a.cfg = cfg

	if a.noColor {
		cli.SetEnabled(false)
	}

	if a.verbose {
		l, _, err := logger.New(logger.Config{
			Level:       "debug",
			Format:      "console",
			EnableColor: cli.Enabled(),
			OutputPaths: []string{"stderr"},
		})
		if err != nil {
			return err
		}
		a.log = l
	}
	return nil
}

// open bootstraps the stores for one command run.
func (a *cliApp) open() (*app.App, error) {
	return app.Bootstrap(a.cfg, a.log)
}

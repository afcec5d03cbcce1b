package main

import (
	"fmt"

	"github.com/nulzo/aimind/internal/cli"
	"github.com/nulzo/aimind/internal/version"
	"github.com/spf13/cobra"
)

func (a *cliApp) openCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "open <file>",
		Short: "Print a saved mind map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := a.open()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			doc, err := app.Service.LoadMindmap(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			cli.PrettyPrint(a.out, doc)
			return nil
		},
	}
}

func (a *cliApp) recentCommand() *cobra.Command {
	var (
		forget   string
		clearAll bool
	)

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently opened mind maps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := a.open()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			switch {
			case clearAll:
				if err := app.Service.ClearRecentFiles(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "%s Cleared recent files\n", cli.CheckMark())
				return nil
			case forget != "":
				if err := app.Service.RemoveRecentFile(cmd.Context(), forget); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "%s Forgot %s\n", cli.CheckMark(), forget)
				return nil
			}

			files, err := app.Service.RecentFiles(cmd.Context())
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintln(a.out, "No recent files")
				return nil
			}
			for _, f := range files {
				fmt.Fprintf(a.out, "%s  %-24s %s\n",
					cli.Style(f.OpenedAt.Local().Format("2006-01-02 15:04"), cli.Dim), f.Title, f.Path)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&forget, "forget", "", "Remove a path from the list")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "Remove every path from the list")
	cmd.MarkFlagsMutuallyExclusive("forget", "clear")
	return cmd
}

func (a *cliApp) versionCommand() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(a.out, version.Version)
			if !check {
				return nil
			}

			res, err := version.NewChecker(a.cfg.Updates.URL).Check(cmd.Context(), version.Version)
			if err != nil {
				return fmt.Errorf("update check failed: %w", err)
			}
			if res.Outdated {
				fmt.Fprintf(a.out, "%s %s is available\n", cli.Style("!", cli.Yellow), res.Latest)
			} else {
				fmt.Fprintf(a.out, "%s up to date\n", cli.CheckMark())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "Compare against the latest release")
	return cmd
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/nulzo/aimind/internal/cli"
	"github.com/spf13/cobra"
)

func (a *cliApp) chatCommand() *cobra.Command {
	var providerID string

	cmd := &cobra.Command{
		Use:   "chat <prompt...>",
		Short: "Send one prompt and print the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := a.open()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			reply, err := app.Service.Chat(cmd.Context(), strings.Join(args, " "), providerID)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, reply)
			return nil
		},
	}
	cmd.Flags().StringVarP(&providerID, "provider", "p", "", "Provider id (current provider when empty)")
	return cmd
}

func (a *cliApp) expandCommand() *cobra.Command {
	var providerID string

	cmd := &cobra.Command{
		Use:   "expand <node...>",
		Short: "Suggest child topics for a node",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := a.open()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			nodes, err := app.Service.ExpandNode(cmd.Context(), strings.Join(args, " "), providerID)
			if err != nil {
				return err
			}
			for _, n := range nodes {
				fmt.Fprintf(a.out, "%s %s\n", cli.Style("-", cli.Cyan), n)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&providerID, "provider", "p", "", "Provider id (current provider when empty)")
	return cmd
}

func (a *cliApp) analyzeCommand() *cobra.Command {
	var providerID string

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze a mind-map document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if !json.Valid(data) {
				return fmt.Errorf("%s is not valid JSON", args[0])
			}

			app, err := a.open()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			result, err := app.Service.AnalyzeMindmap(cmd.Context(), data, providerID)
			if err != nil {
				return err
			}
			cli.PrettyPrint(a.out, result)
			return nil
		},
	}
	cmd.Flags().StringVarP(&providerID, "provider", "p", "", "Provider id (current provider when empty)")
	return cmd
}

package main

import (
	"fmt"
	"strings"

	"github.com/nulzo/aimind/internal/cli"
	"github.com/nulzo/aimind/internal/core/domain"
	"github.com/nulzo/aimind/internal/llm"
	"github.com/spf13/cobra"
)

func (a *cliApp) providersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "providers",
		Aliases: []string{"p"},
		Short:   "Inspect and edit the provider registry",
	}
	cmd.AddCommand(
		a.providersListCommand(),
		a.providersAddCommand(),
		a.providersRemoveCommand(),
		a.providersUseCommand(),
	)
	return cmd
}

func (a *cliApp) providersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured providers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := a.open()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			cfg, err := app.Service.GetConfigs(cmd.Context())
			if err != nil {
				return err
			}

			for _, p := range cfg.Providers {
				marker := " "
				if p.ID == cfg.CurrentProvider {
					marker = cli.Current()
				}
				key := "no key"
				if p.APIKey != "" {
					key = "key set"
				}
				fmt.Fprintf(a.out, "%s %-20s %-10s %-28s %s\n", marker, p.ID, p.Kind, p.Model, cli.Style(key, cli.Dim))
			}
			return nil
		},
	}
}

func (a *cliApp) providersAddCommand() *cobra.Command {
	var (
		p           domain.ProviderConfig
		temperature float64
		maxTokens   int
		disabled    bool
	)

	cmd := &cobra.Command{
		Use:   "add <id>",
		Short: "Add or replace a provider",
		Long:  fmt.Sprintf("Add or replace a provider. Supported types: %s.", strings.Join(llm.Kinds(), ", ")),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p.ID = args[0]
			if p.Name == "" {
				p.Name = p.ID
			}
			p.Enabled = !disabled
			if cmd.Flags().Changed("temperature") {
				p.Temperature = &temperature
			}
			if cmd.Flags().Changed("max-tokens") {
				p.MaxTokens = &maxTokens
			}

			app, err := a.open()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.Service.SaveProviderConfig(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s saved provider %s\n", cli.CheckMark(), p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&p.Kind, "type", "openai", "Provider type")
	cmd.Flags().StringVar(&p.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&p.APIKey, "api-key", "", "API key")
	cmd.Flags().StringVar(&p.BaseURL, "base-url", "", "API base URL (type default when empty)")
	cmd.Flags().StringVar(&p.Model, "model", "", "Model name (type default when empty)")
	cmd.Flags().Float64Var(&temperature, "temperature", domain.DefaultTemperature, "Sampling temperature")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", domain.DefaultMaxTokens, "Reply token limit")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "Store the provider as disabled")

	return cmd
}

func (a *cliApp) providersRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a provider",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := a.open()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.Service.DeleteProviderConfig(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s removed provider %s\n", cli.CheckMark(), args[0])
			return nil
		},
	}
}

func (a *cliApp) providersUseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "use <id>",
		Short: "Set the current provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := a.open()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.Service.SetCurrentProvider(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s current provider is %s\n", cli.CheckMark(), args[0])
			return nil
		},
	}
}

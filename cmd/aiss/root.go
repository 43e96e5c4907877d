package main

import (
	"context"

	"github.com/spf13/cobra"
)

// app pairs the command tree with the state its commands share so resources
// are released even when a command fails.
type app struct {
	root  *cobra.Command
	state *commandContext
}

func newApp() *app {
	flags := &globalFlags{}
	state := newCommandContext(flags)
	return &app{root: newRootCommand(state), state: state}
}

func (a *app) execute(ctx context.Context) error {
	err := a.root.ExecuteContext(ctx)
	if closeErr := a.state.close(); err == nil {
		err = closeErr
	}
	return err
}

func newRootCommand(ctx *commandContext) *cobra.Command {
	flags := ctx.flags

	query := queryOptions{}
	rootCmd := &cobra.Command{
		Use:   "aiss [description]",
		Short: "Describe a show, movie or game and get a structured briefing",
		Long: "aiss classifies a free-text description into one of its content formats, " +
			"asks the configured LLM for a structured record of that format and renders it as panels and tables.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig(cmd)
			return err
		},
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !stdinIsTerminal(cmd) && !stdinHasData(cmd) {
				return cmd.Help()
			}
			return runQuery(cmd, ctx, args, query)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override logging.level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "", "Override display.color (auto, always, never)")
	query.bind(rootCmd)

	rootCmd.AddCommand(newQueryCommand(ctx))
	rootCmd.AddCommand(newBatchCommand(ctx))
	rootCmd.AddCommand(newFormatsCommand(ctx))
	rootCmd.AddCommand(newRenderCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

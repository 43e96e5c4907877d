package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"aiss/internal/dispatch"
	"aiss/internal/format"
	"aiss/internal/history"
	"aiss/internal/registry"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect previously rendered records",
	}
	cmd.AddCommand(newHistoryListCommand(ctx))
	cmd.AddCommand(newHistoryShowCommand(ctx))
	cmd.AddCommand(newHistoryDeleteCommand(ctx))
	cmd.AddCommand(newHistoryClearCommand(ctx))
	return cmd
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var (
		limit    int
		formatID string
		output   structuredOutput
	)
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved records, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.requireHistory()
			if err != nil {
				return err
			}
			opts := history.ListOptions{Limit: limit}
			if strings.TrimSpace(formatID) != "" {
				id, err := format.Parse(formatID)
				if err != nil {
					return err
				}
				opts.FormatID = id
			}
			summaries, err := store.List(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if output.enabled() {
				docs := make([]historySummaryDoc, 0, len(summaries))
				for _, s := range summaries {
					docs = append(docs, historySummaryDoc{
						ID:            s.ID,
						CreatedAt:     s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
						Query:         s.Query,
						FormatID:      s.FormatID,
						FormattedName: s.FormattedName,
					})
				}
				return output.write(cmd, docs)
			}
			if len(summaries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "History is empty")
				return nil
			}
			rows := make([][]string, 0, len(summaries))
			for _, s := range summaries {
				rows = append(rows, []string{
					s.ShortID(),
					s.CreatedAt.Local().Format("2006-01-02 15:04"),
					string(s.FormatID),
					s.FormattedName,
					truncateQuery(s.Query, 48),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Saved", "Format", "Title", "Query"}, rows, nil))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum entries to list (0 lists all)")
	cmd.Flags().StringVar(&formatID, "format", "", "Only list entries of one format id")
	output.bind(cmd)
	return cmd
}

type historySummaryDoc struct {
	ID            string    `json:"id" yaml:"id"`
	CreatedAt     string    `json:"created_at" yaml:"created_at"`
	Query         string    `json:"query" yaml:"query"`
	FormatID      format.ID `json:"format_id" yaml:"format_id"`
	FormattedName string    `json:"formatted_name" yaml:"formatted_name"`
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	var output structuredOutput
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Render a saved record (the latest when no id is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.requireHistory()
			if err != nil {
				return err
			}
			var entry *history.Entry
			if len(args) == 1 {
				entry, err = store.Get(cmd.Context(), args[0])
			} else {
				entry, err = store.Latest(cmd.Context())
			}
			if err != nil {
				return err
			}
			if output.enabled() {
				created := entry.CreatedAt
				return output.write(cmd, queryDocument{
					ID:             entry.ID,
					Query:          entry.Query,
					Classification: entry.Classification,
					ContextHint:    entry.ContextHint,
					Record:         entry.Payload,
					CreatedAt:      &created,
				})
			}
			sink := ctx.sink(cmd)
			if err := dispatch.RenderResult(sink, registry.Default(), entry.Classification, entry.ContextHint, entry.Payload); err != nil {
				return err
			}
			return sink.Err()
		},
	}
	output.bind(cmd)
	return cmd
}

func newHistoryDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a saved record",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.requireHistory()
			if err != nil {
				return err
			}
			entry, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := store.Delete(cmd.Context(), entry.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s (%s)\n", entry.ID, entry.Classification)
			return nil
		},
	}
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every saved record",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.requireHistory()
			if err != nil {
				return err
			}
			if !yes {
				if !stdinIsTerminal(cmd) {
					return fmt.Errorf("refusing to clear history without --yes")
				}
				count, err := store.Count(cmd.Context())
				if err != nil {
					return err
				}
				confirmed := false
				prompt := &survey.Confirm{
					Message: "Delete all " + strconv.Itoa(count) + " saved records?",
				}
				if err := survey.AskOne(prompt, &confirmed); err != nil {
					return fmt.Errorf("prompt: %w", err)
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "History left untouched")
					return nil
				}
			}
			removed, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d records\n", removed)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func truncateQuery(query string, limit int) string {
	runes := []rune(strings.Join(strings.Fields(query), " "))
	if len(runes) <= limit {
		return string(runes)
	}
	return string(runes[:limit-1]) + "…"
}

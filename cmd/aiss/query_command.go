package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"aiss/internal/dispatch"
	"aiss/internal/format"
)

type queryOptions struct {
	output    structuredOutput
	noHistory bool
}

func (o *queryOptions) bind(cmd *cobra.Command) {
	o.output.bind(cmd)
	cmd.Flags().BoolVar(&o.noHistory, "no-history", false, "Do not save the result to history")
}

// queryDocument is the structured form of one processed query.
type queryDocument struct {
	ID             string                      `json:"id,omitempty" yaml:"id,omitempty"`
	Query          string                      `json:"query" yaml:"query"`
	Classification format.ClassificationResult `json:"classification" yaml:"classification"`
	ContextHint    string                      `json:"context_hint,omitempty" yaml:"context_hint,omitempty"`
	Record         map[string]any              `json:"record" yaml:"record"`
	CreatedAt      *time.Time                  `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

func documentFromOutcome(outcome *dispatch.Outcome) queryDocument {
	doc := queryDocument{
		Query:          outcome.Query,
		Classification: outcome.Classification,
		ContextHint:    outcome.Instance.ContextHint(),
		Record:         outcome.Payload,
	}
	if outcome.Entry != nil {
		doc.ID = outcome.Entry.ID
		created := outcome.Entry.CreatedAt
		doc.CreatedAt = &created
	}
	return doc
}

func newQueryCommand(ctx *commandContext) *cobra.Command {
	opts := queryOptions{}
	cmd := &cobra.Command{
		Use:     "query [description]",
		Aliases: []string{"ask"},
		Short:   "Classify a description and render its record",
		Long: "Classify a free-text description, fetch a structured record for the matching format and render it.\n" +
			"Without arguments the description is read from stdin, or prompted for on a terminal.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, ctx, args, opts)
		},
	}
	opts.bind(cmd)
	return cmd
}

func runQuery(cmd *cobra.Command, ctx *commandContext, args []string, opts queryOptions) error {
	text, err := queryText(cmd, args)
	if err != nil {
		return err
	}
	d, err := ctx.dispatcher(cmd, !opts.noHistory)
	if err != nil {
		return err
	}

	if opts.output.enabled() {
		outcome, err := d.Process(cmd.Context(), text)
		if err != nil {
			return err
		}
		return opts.output.write(cmd, documentFromOutcome(outcome))
	}

	sink := ctx.sink(cmd)
	if _, err := d.Run(cmd.Context(), sink, text); err != nil {
		return err
	}
	return sink.Err()
}

// queryText joins args, or falls back to a prompt on a terminal and to
// stdin otherwise.
func queryText(cmd *cobra.Command, args []string) (string, error) {
	if text := strings.TrimSpace(strings.Join(args, " ")); text != "" {
		return text, nil
	}
	if stdinIsTerminal(cmd) {
		var answer string
		prompt := &survey.Input{
			Message: "Describe a show, movie or game:",
		}
		if err := survey.AskOne(prompt, &answer, survey.WithValidator(survey.Required)); err != nil {
			return "", fmt.Errorf("prompt: %w", err)
		}
		return strings.TrimSpace(answer), nil
	}
	data, err := io.ReadAll(bufio.NewReader(cmd.InOrStdin()))
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", errors.New("no description given; pass it as arguments or on stdin")
	}
	return text, nil
}

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"aiss/internal/dispatch"
	"aiss/internal/logging"
)

type batchResult struct {
	output  bytes.Buffer
	outcome *dispatch.Outcome
	err     error
}

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var (
		concurrency int
		failFast    bool
		noHistory   bool
		output      structuredOutput
	)
	cmd := &cobra.Command{
		Use:   "batch [file|-]",
		Short: "Process one description per line",
		Long: "Process a file of descriptions, one per line. Blank lines and lines starting with # are skipped.\n" +
			"Queries run concurrently; results are printed in input order.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := "-"
			if len(args) == 1 {
				source = args[0]
			}
			queries, err := readQueries(cmd, source)
			if err != nil {
				return err
			}
			if len(queries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No queries to process")
				return nil
			}

			cfg := ctx.config
			limit := cfg.Batch.Concurrency
			if cmd.Flags().Changed("concurrency") {
				if concurrency < 1 || concurrency > 32 {
					return fmt.Errorf("--concurrency must be between 1 and 32")
				}
				limit = concurrency
			}

			d, err := ctx.dispatcher(cmd, !noHistory)
			if err != nil {
				return err
			}
			logger := ctx.loggerFor("batch")
			results := make([]batchResult, len(queries))

			group, groupCtx := errgroup.WithContext(cmd.Context())
			group.SetLimit(limit)
			for i, query := range queries {
				group.Go(func() error {
					res := &results[i]
					outcome, err := d.Process(groupCtx, query)
					if err != nil {
						res.err = err
						logging.WarnWithContext(logger, "batch query failed", "batch_query_failed",
							logging.String("query", query),
							logging.Error(err),
							logging.String(logging.FieldImpact, "query skipped"),
						)
						if failFast {
							return err
						}
						return nil
					}
					res.outcome = outcome
					if !output.enabled() {
						sink := ctx.sinkFor(cmd, &res.output)
						res.err = dispatch.Present(sink, outcome.Classification, outcome.Instance)
						if res.err == nil {
							res.err = sink.Err()
						}
					}
					return nil
				})
			}
			groupErr := group.Wait()

			return reportBatch(cmd, queries, results, output, groupErr)
		},
	}
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Concurrent queries (overrides batch.concurrency)")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop at the first failed query")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not save results to history")
	output.bind(cmd)
	return cmd
}

func reportBatch(cmd *cobra.Command, queries []string, results []batchResult, output structuredOutput, groupErr error) error {
	out := cmd.OutOrStdout()
	failed := 0
	docs := make([]queryDocument, 0, len(results))
	for i := range results {
		res := &results[i]
		if res.err != nil || res.outcome == nil {
			failed++
			if !output.enabled() {
				reason := "cancelled"
				if res.err != nil {
					reason = res.err.Error()
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Query %d failed (%s): %s\n", i+1, queries[i], reason)
			}
			continue
		}
		if output.enabled() {
			docs = append(docs, documentFromOutcome(res.outcome))
			continue
		}
		if _, err := out.Write(res.output.Bytes()); err != nil {
			return err
		}
	}
	if output.enabled() {
		if err := output.write(cmd, docs); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(out, "Processed %d of %d queries\n", len(results)-failed, len(results))
	}
	if groupErr != nil {
		return groupErr
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d queries failed", failed, len(results))
	}
	return nil
}

// readQueries loads non-blank, non-comment lines from path or stdin ("-").
func readQueries(cmd *cobra.Command, path string) ([]string, error) {
	var reader io.Reader
	if path == "-" {
		reader = cmd.InOrStdin()
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open batch file: %w", err)
		}
		defer file.Close()
		reader = file
	}

	var queries []string
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		queries = append(queries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read batch input: %w", err)
	}
	return queries, nil
}

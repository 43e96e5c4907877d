package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"aiss/internal/dispatch"
	"aiss/internal/format"
	"aiss/internal/registry"
	"aiss/internal/services"
)

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var (
		formatID string
		name     string
		hint     string
	)
	cmd := &cobra.Command{
		Use:   "render <file|->",
		Short: "Render a saved record without contacting any service",
		Long: "Render a JSON or YAML document produced by `aiss query --json` or `aiss history show --json`.\n" +
			"A bare record is accepted when --format names its format.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			doc, err := parseRenderDocument(data, formatID, name)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("hint") {
				doc.ContextHint = hint
			}
			sink := ctx.sink(cmd)
			if err := dispatch.RenderResult(sink, registry.Default(), doc.Classification, doc.ContextHint, doc.Record); err != nil {
				return err
			}
			return sink.Err()
		},
	}
	cmd.Flags().StringVar(&formatID, "format", "", "Format id of the record (overrides the document)")
	cmd.Flags().StringVar(&name, "name", "", "Title shown above the record")
	cmd.Flags().StringVar(&hint, "hint", "", "Context hint shown with the record")
	return cmd
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// parseRenderDocument accepts a query document or a bare record. YAML is
// decoded first since it also covers JSON input.
func parseRenderDocument(data []byte, formatID, name string) (queryDocument, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return queryDocument{}, services.Wrap(services.ErrValidation, "cli", "render", "parse input", err)
	}
	if len(raw) == 0 {
		return queryDocument{}, services.Wrap(services.ErrValidation, "cli", "render", "input is empty", nil)
	}

	var doc queryDocument
	if _, ok := raw["record"]; ok {
		encoded, err := json.Marshal(raw)
		if err != nil {
			return queryDocument{}, services.Wrap(services.ErrValidation, "cli", "render", "encode document", err)
		}
		if err := json.Unmarshal(encoded, &doc); err != nil {
			return queryDocument{}, services.Wrap(services.ErrValidation, "cli", "render", "decode document", err)
		}
	} else {
		doc.Record = raw
	}

	if strings.TrimSpace(formatID) != "" {
		id, err := format.Parse(formatID)
		if err != nil {
			return queryDocument{}, err
		}
		doc.Classification.ID = id
	}
	if doc.Classification.ID == "" {
		return queryDocument{}, errors.New("the document does not name its format; pass --format")
	}
	id, err := format.Parse(string(doc.Classification.ID))
	if err != nil {
		return queryDocument{}, err
	}
	doc.Classification.ID = id
	if strings.TrimSpace(name) != "" {
		doc.Classification.FormattedName = strings.TrimSpace(name)
	}
	return doc, nil
}

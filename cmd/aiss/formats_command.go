package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"aiss/internal/format"
	"aiss/internal/registry"
)

func newFormatsCommand(ctx *commandContext) *cobra.Command {
	var (
		family string
		output structuredOutput
	)
	cmd := &cobra.Command{
		Use:     "formats [id]",
		Aliases: []string{"models"},
		Short:   "List the content formats or describe one",
		Args:    cobra.MaximumNArgs(1),
		Annotations: map[string]string{
			"skipConfigLoad": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.Default()
			if len(args) == 1 {
				return describeFormat(cmd, reg, args[0], output)
			}
			return listFormats(cmd, reg, family, output)
		},
	}
	cmd.Flags().StringVar(&family, "family", "", "Only list one family (shows, movies, games)")
	output.bind(cmd)
	return cmd
}

type formatSummary struct {
	ID       format.ID     `json:"id" yaml:"id"`
	Label    string        `json:"label" yaml:"label"`
	Family   format.Family `json:"family" yaml:"family"`
	KeyTrait string        `json:"key_trait" yaml:"key_trait"`
}

type formatDetail struct {
	formatSummary `yaml:",inline"`
	Description   string `json:"description" yaml:"description"`
	Prompt        string `json:"prompt" yaml:"prompt"`
	Skeleton      any    `json:"skeleton" yaml:"skeleton"`
}

func summarize(d format.Descriptor) formatSummary {
	return formatSummary{
		ID:       d.ID,
		Label:    d.ID.DisplayLabel(),
		Family:   d.Family(),
		KeyTrait: strings.TrimSpace(d.KeyTrait),
	}
}

func listFormats(cmd *cobra.Command, reg *registry.Registry, family string, output structuredOutput) error {
	family = strings.ToLower(strings.TrimSpace(family))
	switch format.Family(family) {
	case "", format.FamilyShows, format.FamilyMovies, format.FamilyGames:
	default:
		return fmt.Errorf("unknown family %q (use shows, movies or games)", family)
	}

	summaries := make([]formatSummary, 0, reg.Len())
	for _, d := range reg.Descriptors() {
		if family != "" && string(d.Family()) != family {
			continue
		}
		summaries = append(summaries, summarize(d))
	}
	if output.enabled() {
		return output.write(cmd, summaries)
	}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{string(s.Family), string(s.ID), s.Label, s.KeyTrait})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Family", "ID", "Label", "Key Trait"}, rows, nil))
	return nil
}

func describeFormat(cmd *cobra.Command, reg *registry.Registry, raw string, output structuredOutput) error {
	id, err := format.Parse(raw)
	if err != nil {
		return err
	}
	d, err := reg.Resolve(id)
	if err != nil {
		return err
	}
	detail := formatDetail{
		formatSummary: summarize(d),
		Description:   strings.TrimSpace(d.Description),
		Prompt:        d.PromptTemplate,
		Skeleton:      format.Skeleton(d.New()),
	}
	if output.enabled() {
		return output.write(cmd, detail)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", detail.Label, detail.ID)
	fmt.Fprintf(out, "Family: %s\n", detail.Family)
	fmt.Fprintf(out, "Description: %s\n", detail.Description)
	fmt.Fprintf(out, "Key Trait: %s\n", detail.KeyTrait)
	fmt.Fprintf(out, "Prompt: %s\n", detail.Prompt)
	skeleton, err := json.MarshalIndent(detail.Skeleton, "", "  ")
	if err != nil {
		return fmt.Errorf("encode skeleton: %w", err)
	}
	fmt.Fprintf(out, "Record shape:\n%s\n", skeleton)
	return nil
}

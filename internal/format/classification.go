package format

import (
	"fmt"
	"strings"
)

// ClassificationResult is the outcome of classifying one query.
type ClassificationResult struct {
	ID             ID       `json:"find_model"`
	FormattedName  string   `json:"formatted_name"`
	Description    string   `json:"description"`
	AdditionalInfo []string `json:"additional_info"`
}

// NewClassificationResult validates id and trims the text fields.
func NewClassificationResult(id, formattedName, description string, additional []string) (ClassificationResult, error) {
	parsed, err := Parse(id)
	if err != nil {
		return ClassificationResult{}, err
	}
	notes := make([]string, 0, len(additional))
	for _, note := range additional {
		if note = strings.TrimSpace(note); note != "" {
			notes = append(notes, note)
		}
	}
	return ClassificationResult{
		ID:             parsed,
		FormattedName:  strings.TrimSpace(formattedName),
		Description:    strings.TrimSpace(description),
		AdditionalInfo: notes,
	}, nil
}

func (r ClassificationResult) String() string {
	name := r.FormattedName
	if name == "" {
		name = "(unnamed)"
	}
	return fmt.Sprintf("%s [%s]", name, r.ID)
}

// Topic is the lookup string used for context hints.
func (r ClassificationResult) Topic() string {
	if r.Description == "" {
		return r.FormattedName
	}
	return r.FormattedName + ": " + r.Description
}

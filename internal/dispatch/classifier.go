package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"aiss/internal/format"
	"aiss/internal/llm"
	"aiss/internal/logging"
	"aiss/internal/registry"
	"aiss/internal/services"
)

// Classifier asks the completion service which format a query describes.
type Classifier struct {
	completer llm.Completer
	registry  *registry.Registry
	logger    *slog.Logger
}

// NewClassifier wires a classifier. A nil registry uses registry.Default.
func NewClassifier(completer llm.Completer, reg *registry.Registry, logger *slog.Logger) *Classifier {
	if reg == nil {
		reg = registry.Default()
	}
	return &Classifier{
		completer: completer,
		registry:  reg,
		logger:    logging.NewComponentLogger(logger, "classifier"),
	}
}

type classificationPayload struct {
	FindModel      string   `json:"find_model"`
	FormattedName  string   `json:"formatted_name"`
	Description    string   `json:"description"`
	AdditionalInfo []string `json:"additional_info"`
}

// SystemPrompt is the classification brief listing every registered format.
func (c *Classifier) SystemPrompt() string {
	options := c.registry.FormattedOptions()
	var b strings.Builder
	b.WriteString("You are an expert at classifying entertainment descriptions.\n")
	fmt.Fprintf(&b, "Select the most appropriate format from %s and respond with a single JSON object with these keys:\n", options)
	b.WriteString(`- "find_model": the chosen format id, exactly as listed.` + "\n")
	b.WriteString(`- "formatted_name": the name of the show, movie or game formatted the way the studio branded it.` + "\n")
	b.WriteString(`- "description": a brief reason for the choice (less than 30 characters).` + "\n")
	b.WriteString(`- "additional_info": a list of facts that help identify the work.` + "\n")
	b.WriteString("\n")
	b.WriteString(c.registry.InstructionListing())
	return b.String()
}

// UserPrompt wraps the query text.
func (c *Classifier) UserPrompt(text string) string {
	return fmt.Sprintf("Find whether the following text is about a %s:\n\n`%s`", c.registry.FormattedOptions(), text)
}

// Classify returns the format and identifying details for text. An id the
// registry does not know fails with format.ErrUnknownFormat.
func (c *Classifier) Classify(ctx context.Context, text string) (format.ClassificationResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return format.ClassificationResult{}, services.Wrap(services.ErrValidation, "classifier", "classify", "query text is empty", nil)
	}
	ctx = services.WithStep(ctx, "classify")
	logger := logging.WithContext(ctx, c.logger)

	content, err := c.completer.CompleteJSON(ctx, c.SystemPrompt(), c.UserPrompt(text))
	if err != nil {
		return format.ClassificationResult{}, err
	}
	var payload classificationPayload
	if err := llm.DecodeJSON(content, &payload); err != nil {
		return format.ClassificationResult{}, services.Wrap(services.ErrValidation, "classifier", "decode", "classification payload", err)
	}

	id := strings.TrimSpace(payload.FindModel)
	if id == "" {
		logging.WarnWithContext(logger, "classification returned no format id", "classification_defaulted",
			logging.String("query", text),
			logging.String(logging.FieldImpact, "record uses the generic show format"),
			logging.String(logging.FieldErrorHint, "rephrase the query with more detail"),
		)
		id = string(format.DefaultID)
	}
	name := payload.FormattedName
	if strings.TrimSpace(name) == "" {
		name = text
	}
	result, err := format.NewClassificationResult(id, name, payload.Description, payload.AdditionalInfo)
	if err != nil {
		return format.ClassificationResult{}, err
	}
	if _, err := c.registry.Resolve(result.ID); err != nil {
		return format.ClassificationResult{}, err
	}
	logger.Info("query classified",
		logging.String(logging.FieldFormatID, string(result.ID)),
		logging.String("formatted_name", result.FormattedName),
	)
	return result, nil
}

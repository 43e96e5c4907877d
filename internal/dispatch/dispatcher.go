package dispatch

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"aiss/internal/format"
	"aiss/internal/history"
	"aiss/internal/llm"
	"aiss/internal/logging"
	"aiss/internal/registry"
	"aiss/internal/render"
	"aiss/internal/services"
)

// ContextProvider supplies display-only background text for a classified work.
type ContextProvider interface {
	ContextHint(ctx context.Context, result format.ClassificationResult) (string, error)
}

// Recorder persists finished queries.
type Recorder interface {
	Save(ctx context.Context, query string, result format.ClassificationResult, hint string, payload map[string]any) (*history.Entry, error)
}

// Outcome is everything one query produced.
type Outcome struct {
	Query          string
	Classification format.ClassificationResult
	Instance       format.Instance
	Payload        map[string]any
	// Entry is nil when no recorder is configured or saving failed.
	Entry *history.Entry
}

// Dispatcher runs queries through classification, fetch and render.
type Dispatcher struct {
	classifier *Classifier
	completer  llm.Completer
	registry   *registry.Registry
	context    ContextProvider
	recorder   Recorder
	logger     *slog.Logger
}

// Option customizes a Dispatcher.
type Option func(*Dispatcher)

// WithClassifier overrides the classifier, e.g. one backed by a cheaper model.
func WithClassifier(c *Classifier) Option {
	return func(d *Dispatcher) {
		if c != nil {
			d.classifier = c
		}
	}
}

// WithContextProvider attaches context hints to fetched records.
func WithContextProvider(p ContextProvider) Option {
	return func(d *Dispatcher) { d.context = p }
}

// WithRecorder stores every successful query.
func WithRecorder(r Recorder) Option {
	return func(d *Dispatcher) { d.recorder = r }
}

// WithRegistry replaces registry.Default.
func WithRegistry(r *registry.Registry) Option {
	return func(d *Dispatcher) {
		if r != nil {
			d.registry = r
		}
	}
}

// New builds a dispatcher that uses completer for both classification and
// record generation unless WithClassifier says otherwise.
func New(completer llm.Completer, logger *slog.Logger, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		completer: completer,
		registry:  registry.Default(),
		logger:    logging.NewComponentLogger(logger, "dispatch"),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.classifier == nil {
		d.classifier = NewClassifier(completer, d.registry, logger)
	}
	return d
}

// Registry exposes the format registry in use.
func (d *Dispatcher) Registry() *registry.Registry { return d.registry }

// Classify delegates to the configured classifier.
func (d *Dispatcher) Classify(ctx context.Context, text string) (format.ClassificationResult, error) {
	return d.classifier.Classify(ctx, text)
}

// Fetch asks the completion service for a record of result's format.
func (d *Dispatcher) Fetch(ctx context.Context, result format.ClassificationResult) (format.Instance, error) {
	desc, err := d.registry.Resolve(result.ID)
	if err != nil {
		return nil, err
	}
	ctx = services.WithStep(ctx, "fetch")
	logger := logging.WithContext(ctx, d.logger)

	hint := d.contextHint(ctx, logger, result)
	system := SystemPrompt(desc, result, hint)
	user := desc.UserPrompt(result.FormattedName)

	started := time.Now()
	content, err := d.completer.CompleteJSON(ctx, system, user)
	if err != nil {
		return nil, err
	}
	inst, err := format.FromJSON(desc, []byte(llm.Sanitize(content)))
	if err != nil {
		return nil, err
	}
	inst.SetContextHint(hint)
	logger.Info("record fetched",
		logging.String(logging.FieldFormatID, string(desc.ID)),
		logging.Duration("duration", time.Since(started).Round(time.Millisecond)),
		logging.Int("payload_chars", len(content)),
	)
	return inst, nil
}

// SystemPrompt builds the fetch brief: the format instructions with any
// additional notes, the context hint when there is one, and the JSON shape.
func SystemPrompt(desc format.Descriptor, result format.ClassificationResult, hint string) string {
	var b strings.Builder
	b.WriteString(desc.ComposeInstructions(result.AdditionalInfo))
	if hint = strings.TrimSpace(hint); hint != "" {
		b.WriteString("\n\nPrefer the following context: ")
		b.WriteString(result.Topic())
		b.WriteString(".\n\nWikipedia Summary: ")
		b.WriteString(hint)
	}
	if out := format.OutputInstructions(desc); out != "" {
		b.WriteString("\n\n")
		b.WriteString(out)
	}
	return b.String()
}

func (d *Dispatcher) contextHint(ctx context.Context, logger *slog.Logger, result format.ClassificationResult) string {
	if d.context == nil {
		return ""
	}
	hint, err := d.context.ContextHint(ctx, result)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return ""
		}
		logging.WarnWithContext(logger, "context hint unavailable", "context_hint_failed",
			logging.Error(err),
			logging.String("topic", result.Topic()),
			logging.String(logging.FieldImpact, "record rendered without a context panel"),
			logging.String(logging.FieldErrorHint, "disable [wikipedia] or check network access"),
		)
		return ""
	}
	return strings.TrimSpace(hint)
}

// Process classifies and fetches text and records the outcome. It does not
// render, so callers can present results in their own order.
func (d *Dispatcher) Process(ctx context.Context, text string) (*Outcome, error) {
	ctx = services.WithRequestID(ctx, uuid.NewString())
	result, err := d.Classify(ctx, text)
	if err != nil {
		return nil, err
	}
	inst, err := d.Fetch(ctx, result)
	if err != nil {
		return nil, err
	}
	payload, err := format.ToMap(inst)
	if err != nil {
		return nil, err
	}
	outcome := &Outcome{
		Query:          strings.TrimSpace(text),
		Classification: result,
		Instance:       inst,
		Payload:        payload,
	}
	if d.recorder != nil {
		entry, err := d.recorder.Save(ctx, outcome.Query, result, inst.ContextHint(), payload)
		if err != nil {
			logging.WarnWithContext(logging.WithContext(ctx, d.logger), "history not saved", "history_save_failed",
				logging.Error(err),
				logging.String(logging.FieldImpact, "the record will not appear in `aiss history`"),
				logging.String(logging.FieldErrorHint, services.Hint(err)),
			)
		} else {
			outcome.Entry = entry
		}
	}
	return outcome, nil
}

// Run processes text and renders the outcome to sink.
func (d *Dispatcher) Run(ctx context.Context, sink *render.Sink, text string) (*Outcome, error) {
	outcome, err := d.Process(ctx, text)
	if err != nil {
		return nil, err
	}
	if err := Present(sink, outcome.Classification, outcome.Instance); err != nil {
		return outcome, err
	}
	return outcome, nil
}

// Present writes the classification rules followed by the rendered record.
func Present(sink *render.Sink, result format.ClassificationResult, inst format.Instance) error {
	sink.Rule("Model Type: " + string(result.ID))
	if name := strings.TrimSpace(result.FormattedName); name != "" {
		sink.Rule(name)
	}
	if err := render.Render(sink, inst); err != nil {
		return services.Wrap(services.ErrExternalService, "dispatch", "render", "write output", err)
	}
	return nil
}

// RenderResult renders a stored payload without contacting any service.
func RenderResult(sink *render.Sink, reg *registry.Registry, result format.ClassificationResult, hint string, payload map[string]any) error {
	if reg == nil {
		reg = registry.Default()
	}
	desc, err := reg.Resolve(result.ID)
	if err != nil {
		return err
	}
	inst, err := format.FromMap(desc, payload)
	if err != nil {
		return err
	}
	inst.SetContextHint(hint)
	return Present(sink, result, inst)
}

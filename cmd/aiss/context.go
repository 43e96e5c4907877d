package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"aiss/internal/config"
	"aiss/internal/dispatch"
	"aiss/internal/history"
	"aiss/internal/llm"
	"aiss/internal/logging"
	"aiss/internal/render"
	"aiss/internal/services"
	"aiss/internal/wikipedia"
)

type globalFlags struct {
	configPath string
	logLevel   string
	color      string
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error
	// configPath is the resolved file; configExists is false when defaults
	// were used.
	configPath   string
	configExists bool
	logger       *slog.Logger
	closers      []func() error

	historyOnce  sync.Once
	historyStore *history.Store
	historyErr   error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig loads configuration once per process, applies flag overrides
// and installs the logger.
func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(strings.TrimSpace(c.flags.configPath))
		if err != nil {
			c.configErr = services.Wrap(services.ErrConfiguration, "cli", "load config", "", err)
			return
		}
		if level := strings.TrimSpace(c.flags.logLevel); level != "" {
			if _, err := logging.ParseLevel(level); err != nil {
				c.configErr = services.Wrap(services.ErrConfiguration, "cli", "log level", "", err)
				return
			}
			cfg.Logging.Level = level
		}
		if color := strings.ToLower(strings.TrimSpace(c.flags.color)); color != "" {
			switch color {
			case config.ColorAuto, config.ColorAlways, config.ColorNever:
				cfg.Display.Color = color
			default:
				c.configErr = services.Wrap(services.ErrConfiguration, "cli", "color",
					fmt.Sprintf("unsupported value %q (use auto, always or never)", color), nil)
				return
			}
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		logger, closeFn, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
		if err != nil {
			c.configErr = services.Wrap(services.ErrConfiguration, "cli", "logging", "", err)
			return
		}
		slog.SetDefault(logger)
		c.logger = logger
		c.closers = append(c.closers, closeFn)
		c.config = cfg
		c.configPath = path
		c.configExists = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) loggerFor(component string) *slog.Logger {
	if c.logger == nil {
		return logging.NewNop()
	}
	return logging.NewComponentLogger(c.logger, component)
}

// sink builds a renderer for cmd's stdout honouring [display].
func (c *commandContext) sink(cmd *cobra.Command) *render.Sink {
	return c.sinkFor(cmd, cmd.OutOrStdout())
}

func (c *commandContext) sinkFor(cmd *cobra.Command, w io.Writer) *render.Sink {
	opts := []render.SinkOption{}
	if cfg := c.config; cfg != nil {
		switch cfg.Display.Color {
		case config.ColorAlways:
			opts = append(opts, render.WithColor(true))
		case config.ColorNever:
			opts = append(opts, render.WithColor(false))
		default:
			opts = append(opts, render.WithColor(render.ShouldColorize(cmd.OutOrStdout())))
		}
		if cfg.Display.Width > 0 {
			opts = append(opts, render.WithWidth(cfg.Display.Width))
		}
	}
	return render.NewSink(w, opts...)
}

// history opens the history store once. A nil store with a nil error means
// history is disabled.
func (c *commandContext) history() (*history.Store, error) {
	c.historyOnce.Do(func() {
		cfg := c.config
		if cfg == nil || !cfg.History.Enabled {
			return
		}
		store, err := history.Open(cfg)
		if err != nil {
			c.historyErr = err
			return
		}
		c.historyStore = store
		c.closers = append(c.closers, store.Close)
	})
	return c.historyStore, c.historyErr
}

func (c *commandContext) requireHistory() (*history.Store, error) {
	store, err := c.history()
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, services.Wrap(services.ErrConfiguration, "history", "open",
			"history is disabled; set history.enabled = true", nil)
	}
	return store, nil
}

// dispatcher wires the completion clients, the Wikipedia lookup and the
// history recorder from configuration.
func (c *commandContext) dispatcher(cmd *cobra.Command, record bool) (*dispatch.Dispatcher, error) {
	cfg := c.config
	if cfg == nil {
		return nil, errors.New("configuration not loaded")
	}
	if err := cfg.ValidateLLM(); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "llm", "validate", "", err)
	}

	ctx := cmd.Context()
	completer, err := llm.New(ctx, cfg.GetLLM())
	if err != nil {
		return nil, err
	}

	logger := c.loggerFor("dispatch")
	opts := []dispatch.Option{}
	if classifierCfg := cfg.ClassifierLLM(); classifierCfg.Model != cfg.GetLLM().Model {
		classifierCompleter, err := llm.New(ctx, classifierCfg)
		if err != nil {
			return nil, err
		}
		opts = append(opts, dispatch.WithClassifier(
			dispatch.NewClassifier(classifierCompleter, nil, c.loggerFor("classifier"))))
	}
	if cfg.Wikipedia.Enabled {
		opts = append(opts, dispatch.WithContextProvider(wikipedia.New(cfg.Wikipedia, nil)))
	}
	if record {
		store, err := c.history()
		if err != nil {
			logging.WarnWithContext(logger, "history unavailable", "history_open_failed",
				logging.Error(err),
				logging.String(logging.FieldImpact, "records from this run will not be saved"),
				logging.String(logging.FieldErrorHint, "check history.path and file permissions"),
			)
		} else if store != nil {
			opts = append(opts, dispatch.WithRecorder(store))
		}
	}
	return dispatch.New(completer, logger, opts...), nil
}

func (c *commandContext) close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func stdinIsTerminal(cmd *cobra.Command) bool {
	file, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// stdinHasData reports whether stdin is a pipe, a file or an in-memory reader.
func stdinHasData(cmd *cobra.Command) bool {
	in := cmd.InOrStdin()
	file, ok := in.(*os.File)
	if !ok {
		return in != nil
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"aiss/internal/config"
	"aiss/internal/llm"
	"aiss/internal/services"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand(ctx))
	configCmd.AddCommand(newConfigShowCommand(ctx))
	configCmd.AddCommand(newConfigValidateCommand(ctx))

	return configCmd
}

func newConfigInitCommand(ctx *commandContext) *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				target = strings.TrimSpace(ctx.flags.configPath)
			}
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			if err := config.CreateSample(target, overwrite); err != nil {
				if !overwrite {
					return fmt.Errorf("%w (use --overwrite to replace it)", err)
				}
				return fmt.Errorf("create sample config: %w", err)
			}

			defaults := config.Default()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintf(out, "Edit the file to set llm.api_key (or export %s) before running aiss.\n", defaults.APIKeyEnv())
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	var output structuredOutput
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *ctx.config
			cfg.LLM.APIKey = maskSecret(cfg.LLM.APIKey)
			if output.enabled() {
				return output.write(cmd, cfg)
			}
			data, err := toml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", ctx.configPath)
			_, err = out.Write(data)
			return err
		},
	}
	output.bind(cmd)
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	var ping bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.config
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", ctx.configPath)
			if !ctx.configExists {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}
			if err := cfg.ValidateLLM(); err != nil {
				fmt.Fprintf(out, "Warning: %v\n", err)
			} else if ping {
				if err := pingLLM(cmd.Context(), cfg.GetLLM()); err != nil {
					return err
				}
				fmt.Fprintf(out, "LLM reachable (%s, %s)\n", cfg.LLM.Provider, cfg.GetLLM().Model)
				if classifier := cfg.ClassifierLLM(); classifier.Model != cfg.GetLLM().Model {
					if err := pingLLM(cmd.Context(), classifier); err != nil {
						return err
					}
					fmt.Fprintf(out, "Classifier model reachable (%s)\n", classifier.Model)
				}
			}
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
	cmd.Flags().BoolVar(&ping, "ping", false, "Also send a test completion to the configured service")
	return cmd
}

type healthChecker interface {
	HealthCheck(ctx context.Context) error
}

func pingLLM(ctx context.Context, cfg config.LLMConfig) error {
	completer, err := llm.New(ctx, cfg)
	if err != nil {
		return err
	}
	checker, ok := completer.(healthChecker)
	if !ok {
		return services.Wrap(services.ErrConfiguration, "llm", "ping", "provider does not support health checks", nil)
	}
	return checker.HealthCheck(ctx)
}

func maskSecret(value string) string {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		return ""
	case len(value) <= 8:
		return "********"
	default:
		return value[:4] + "…" + value[len(value)-2:]
	}
}

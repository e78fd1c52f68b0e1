package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dvcrn/clientes-client/internal/config"
	"github.com/dvcrn/clientes-client/internal/logger"
	"github.com/dvcrn/clientes-client/pkg/api"
	"github.com/dvcrn/clientes-client/pkg/clientes"
)

var exampleUsage = strings.TrimSpace(`
  clientes --base-url http://localhost:3000 list
  clientes get 42
  clientes create '{"nome":"Ana"}'
  clientes update 42 '{"nome":"Ana Maria"}'
  clientes delete 42
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

type rootOptions struct {
	configPath string
	baseURL    string
	logLevel   string

	service *clientes.Service[clientes.Record]
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "clientes",
		Short:         "Manage customers through the clientes REST API",
		Example:       exampleUsage,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath(), "path to a TOML config file")
	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "API base URL (overrides "+config.BaseURLEnv+")")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")

	root.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List every customer",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				out, err := opts.service.List(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out)
			},
		},
		&cobra.Command{
			Use:   "get ID",
			Short: "Show one customer",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				out, err := opts.service.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printRecord(cmd.OutOrStdout(), out)
			},
		},
		&cobra.Command{
			Use:   "create JSON",
			Short: "Create a customer from a JSON object",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := parseRecord(args[0])
				if err != nil {
					return err
				}
				out, err := opts.service.Create(cmd.Context(), data)
				if err != nil {
					return err
				}
				return printRecord(cmd.OutOrStdout(), out)
			},
		},
		&cobra.Command{
			Use:   "update ID JSON",
			Short: "Replace a customer with a JSON object",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := parseRecord(args[1])
				if err != nil {
					return err
				}
				out, err := opts.service.Update(cmd.Context(), args[0], data)
				if err != nil {
					return err
				}
				return printRecord(cmd.OutOrStdout(), out)
			},
		},
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete a customer",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				out, err := opts.service.Delete(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printRecord(cmd.OutOrStdout(), out)
			},
		},
	)

	return root
}

// setup resolves configuration once: file, then environment, then flags.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	log := logger.Get()

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("base-url") {
		cfg.BaseURL = config.NormalizeBaseURL(o.baseURL)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if cfg.LogLevel != "" {
		if err := logger.SetLevel(cfg.LogLevel); err != nil {
			return err
		}
	}

	log.Debug().Str("base_url", cfg.BaseURL).Msg("configuration")

	if cmd.Context() == nil {
		cmd.SetContext(context.Background())
	}
	o.service = clientes.New(api.NewClient(cfg.BaseURL, api.WithLogger(log)))
	return nil
}

func parseRecord(raw string) (clientes.Record, error) {
	var rec clientes.Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("parse customer JSON: %w", err)
	}
	return rec, nil
}

// printRecord prints nothing when the server sent no value.
func printRecord(w io.Writer, rec *clientes.Record) error {
	if rec == nil {
		return nil
	}
	return printJSON(w, *rec)
}

func printJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

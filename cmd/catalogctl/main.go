package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"backoffice/internal/app"
	"backoffice/internal/config"
	"backoffice/internal/dispatch"
	"backoffice/internal/logger"
)

var (
	// Global flags
	dbPath  string
	verbose bool

	cfg *config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "Run catalog operations against the local database",
	Long: `catalogctl opens the catalog database in-process and runs the same
channels the HTTP bridge exposes, printing the result envelope as JSON.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if dbPath != "" {
			cfg.Database.Path = dbPath
		}

		level := "warn"
		if verbose {
			level = "debug"
		}
		log, err = logger.New(level, cfg.Log.Development)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "List the registered channels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCatalog(cmd.Context(), func(ctx context.Context, c *app.Catalog) error {
			for _, ch := range c.Dispatcher.Channels() {
				fmt.Fprintln(cmd.OutOrStdout(), ch)
			}
			return nil
		})
	},
}

var invokeCmd = &cobra.Command{
	Use:   "invoke <channel> [params-json|-]",
	Short: "Invoke one channel and print its envelope",
	Example: `  catalogctl invoke products:get-all
  catalogctl invoke products:toggle-top '{"id": 3}'
  echo '{"name":"SLA"}' | catalogctl invoke tags:create -`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := readParams(cmd.InOrStdin(), args[1:])
		if err != nil {
			return err
		}
		return withCatalog(cmd.Context(), func(ctx context.Context, c *app.Catalog) error {
			env := c.Dispatcher.Invoke(ctx, args[0], params)
			if err := printEnvelope(cmd.OutOrStdout(), env); err != nil {
				return err
			}
			if !env.Success {
				return fmt.Errorf("%s failed with code %d", args[0], env.Code)
			}
			return nil
		})
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCatalog(cmd.Context(), func(ctx context.Context, c *app.Catalog) error {
			fmt.Fprintf(cmd.OutOrStdout(), "schema up to date: %s\n", cfg.Database.Path)
			return nil
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the starter catalog where rows are missing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCatalog(cmd.Context(), func(ctx context.Context, c *app.Catalog) error {
			report, err := c.Seed(ctx)
			if err != nil {
				return err
			}
			return printEnvelope(cmd.OutOrStdout(), dispatch.Wrap(report, nil))
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file (overrides database.path)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(channelsCmd, invokeCmd, migrateCmd, seedCmd)
}

// withCatalog opens the catalog (migrating it) for the duration of fn.
func withCatalog(ctx context.Context, fn func(context.Context, *app.Catalog) error) error {
	c, err := app.Open(cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()
	return fn(ctx, c)
}

// readParams takes params from the argument, or from r when the argument is "-".
func readParams(r io.Reader, args []string) (json.RawMessage, error) {
	if len(args) == 0 {
		return nil, nil
	}
	raw := args[0]
	if raw == "-" {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read params: %w", err)
		}
		raw = string(data)
	}
	raw = strings.TrimSpace(raw)
	if raw != "" && !json.Valid([]byte(raw)) {
		return nil, fmt.Errorf("params are not valid JSON")
	}
	return json.RawMessage(raw), nil
}

func printEnvelope(w io.Writer, env dispatch.Envelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

func main() {
	// Envelopes print prices as JSON numbers, matching the HTTP API.
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Package cmd defines and implements the CLI commands for the econodeal executable.
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Olivier-cousineau/econo-econo/internal/api"
	"github.com/Olivier-cousineau/econo-econo/internal/clock/system"
	"github.com/Olivier-cousineau/econo-econo/internal/collector"
	"github.com/Olivier-cousineau/econo-econo/internal/id/uuid"
	"github.com/Olivier-cousineau/econo-econo/internal/logging"
	"github.com/Olivier-cousineau/econo-econo/internal/metrics"
)

// newCollectCmd creates and configures the 'collect' subcommand, which runs
// the whole pipeline: fetch, normalize, deduplicate, and write the snapshot.
func newCollectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Collects liquidation deals and writes the JSON snapshot",
		Long: `Queries the provider's search API page by page for each selected
store, normalizes and deduplicates the results, and atomically writes
one JSON snapshot. With --demo the network is skipped entirely and the
fixed demonstration payload is written instead.`,
		RunE: runCollectCommand,
	}

	flags := cmd.Flags()
	flags.String("output", "data/liquidations.json", "path of the JSON snapshot to produce")
	flags.String("query", "clearance", "search term sent to the provider")
	flags.Int("max-pages", 2, "maximum number of pages per store")
	flags.Duration("delay", 1500*time.Millisecond, "pause between successive pages of one store")
	flags.StringSlice("stores", nil, "store slugs to target (default: all)")
	flags.Bool("demo", false, "write the demonstration payload without any network access")
	flags.String("metrics-addr", "", "serve /healthz and /metrics on this address while running (empty: disabled)")

	_ = viper.BindPFlag("output.path", flags.Lookup("output"))
	_ = viper.BindPFlag("collector.query", flags.Lookup("query"))
	_ = viper.BindPFlag("collector.max_pages", flags.Lookup("max-pages"))
	_ = viper.BindPFlag("collector.delay", flags.Lookup("delay"))
	_ = viper.BindPFlag("collector.stores", flags.Lookup("stores"))
	_ = viper.BindPFlag("metrics.addr", flags.Lookup("metrics-addr"))

	return cmd
}

func runCollectCommand(cmd *cobra.Command, _ []string) error {
	v := viper.GetViper()

	logger, err := logging.New(v.GetBool("logging.development"), v.GetString("logging.level"))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck // best-effort flush

	cfg, err := collector.LoadConfig(v)
	if err != nil {
		return fmt.Errorf("load collector config: %w", err)
	}

	if runID, idErr := uuid.NewUUIDGenerator().NewID(); idErr == nil {
		logger = logger.With(zap.String("run_id", runID))
	}

	metrics.Init()
	if addr := v.GetString("metrics.addr"); addr != "" {
		ops := api.NewServer(addr, logger)
		ops.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if sErr := ops.Shutdown(shutdownCtx); sErr != nil {
				logger.Warn("ops server shutdown failed", zap.Error(sErr))
			}
		}()
	}

	clk := system.New()
	demo, _ := cmd.Flags().GetBool("demo")

	var payload collector.Payload
	if demo {
		logger.Info("demo mode: skipping network collection")
		payload = collector.DemoPayload(clk)
	} else {
		fetcher, fErr := collector.NewCollyFetcher(cfg, logger)
		if fErr != nil {
			// Fatal configuration error: nothing has been written yet.
			return fmt.Errorf("init fetcher: %w", fErr)
		}
		engine := collector.NewEngine(cfg, fetcher, clk, logger)
		payload, err = engine.Run(cmd.Context())
		if err != nil {
			return fmt.Errorf("run collector: %w", err)
		}
	}

	sink := collector.NewFileSystemSink(logger)
	if err := sink.WritePayload(payload, cfg.OutputPath); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}

	if len(payload.Items) == 0 {
		logger.Warn("no items collected; check the query or try again later")
		return collector.ErrNoItems
	}
	logger.Info("items recorded", zap.Int("count", len(payload.Items)))
	return nil
}

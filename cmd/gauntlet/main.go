package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/calebmor/gauntlet/internal/api"
	"github.com/calebmor/gauntlet/internal/config"
	"github.com/calebmor/gauntlet/internal/orchestrator"
	"github.com/calebmor/gauntlet/internal/report"
	"github.com/calebmor/gauntlet/internal/sysinfo"
	"github.com/calebmor/gauntlet/internal/workload"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gauntlet:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath     string
		duration    int
		concurrency int
		dbPath      string
		reportDir   string
		metricsAddr string
		logLevel    string
	)

	cmd := &cobra.Command{
		Use:   "gauntlet",
		Short: "Synthetic load generator for host application stress testing",
		Long: `gauntlet runs concurrent stress workloads (database, memory, UI loop,
simulated communication) against the host for a configured duration and
reports throughput, latency, error rate and resource usage.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			// Flags win over the file.
			if cmd.Flags().Changed("duration") {
				cfg.DurationSeconds = duration
			}
			if cmd.Flags().Changed("concurrency") {
				cfg.ConcurrentOperations = concurrency
			}
			if cmd.Flags().Changed("db") {
				cfg.DBPath = dbPath
			}
			if cmd.Flags().Changed("report-dir") {
				cfg.ReportDir = reportDir
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := config.NewLogger(os.Stderr, config.ParseLogLevel(logLevel))

			sampler, err := sysinfo.NewHostSampler()
			if err != nil {
				return fmt.Errorf("init resource sampler: %w", err)
			}

			workloads := workload.Defaults(
				cfg.DBPath,
				sampler,
				time.Duration(cfg.MonitorIntervalSeconds)*time.Second,
			)
			orch := orchestrator.New(cfg, workloads, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if metricsAddr != "" {
				srv := api.NewServer(metricsAddr, orch, logger)
				go func() {
					if err := srv.Serve(ctx); err != nil {
						logger.Error("diagnostics server stopped", "error", err)
					}
				}()
			}

			rep, err := orch.Run(ctx)
			if err != nil {
				return fmt.Errorf("stress run: %w", err)
			}

			report.Render(os.Stdout, rep)

			if !rep.NoOp {
				path, err := report.WriteJSON(cfg.ReportDir, cfg, rep)
				if err != nil {
					logger.Error("persist detailed report", "error", err)
				} else {
					fmt.Fprintf(os.Stdout, "Detailed report saved to: %s\n", path)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to the JSON configuration file")
	cmd.Flags().IntVar(&duration, "duration", 0, "test duration in seconds (overrides config)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "concurrent operations (overrides config)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite file for the database workload (overrides config)")
	cmd.Flags().StringVar(&reportDir, "report-dir", "", "directory for the detailed JSON report (overrides config)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "listen address for /metrics and /healthz (disabled when empty)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	return cmd
}

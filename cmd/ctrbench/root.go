package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"ctrbench/internal/benchmark"
	"ctrbench/internal/config"
	"ctrbench/internal/metrics"
	"ctrbench/internal/telemetry"
	"ctrbench/internal/workload"
)

var exit = os.Exit

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ctrbench",
		Short: "Measure the cost of contended counter increments",
		Long: `ctrbench times fourteen counter workloads (plain and atomic, thread-private
and shared, each atomic family under all six memory orderings) at 1 to 10
threads and prints one line per trial. It takes no arguments.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSweep,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	telemetry.InitLogger(cfg.Verbose, cmd.ErrOrStderr())
	if workload.RaceEnabled {
		slog.Debug("race detector enabled, Non-atomic Benchmark will be reported as a race")
	}

	var opts []benchmark.Option
	if cfg.StartBarrier {
		opts = append(opts, benchmark.WithStartBarrier())
	}
	if cfg.PinThreads {
		opts = append(opts, benchmark.WithCPUPinning())
	}

	reg := prometheus.NewRegistry()
	report := benchmark.NewTextReport(cmd.OutOrStdout())
	sink := benchmark.MultiSink(report, metrics.NewMetrics(reg))
	workloads := workload.Standard(cfg.Iterations)

	slog.Debug("sweep started",
		"workloads", len(workloads),
		"max_threads", cfg.MaxThreads,
		"iterations", cfg.Iterations,
		"start_barrier", cfg.StartBarrier,
	)
	benchmark.NewDriver(benchmark.NewRunner(sink, opts...), workloads, cfg.MaxThreads).Run()

	if err := report.Err(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	logSummary(reg, workloads)
	slog.Debug("sweep finished")
	return nil
}

// logSummary emits one debug record per workload, in report order, from what
// the metrics sink recorded during the sweep.
func logSummary(g prometheus.Gatherer, workloads []workload.Workload) {
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	summaries, err := metrics.Summarize(g)
	if err != nil {
		slog.Warn("failed to summarize trials", "error", err)
		return
	}
	for _, w := range workloads {
		s, ok := summaries[w.Name()]
		if !ok {
			continue
		}
		slog.Debug("trial summary",
			"workload", s.Workload,
			"trials", s.Trials,
			"increments_total", s.Increments,
			"ns_per_increment", s.NsPerIncrement,
		)
	}
}

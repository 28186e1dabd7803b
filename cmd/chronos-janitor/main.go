package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clusterkit/chronos-janitor/internal/chronos"
	"github.com/clusterkit/chronos-janitor/internal/cleanup"
	"github.com/clusterkit/chronos-janitor/internal/config"
	"github.com/clusterkit/chronos-janitor/internal/logging"
	"github.com/clusterkit/chronos-janitor/internal/soaconfig"
	"github.com/clusterkit/chronos-janitor/internal/version"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "", "Path to config file (default: ./config.yaml or /etc/chronos-janitor/config.yaml)")
	soaDir := flag.String("soa-dir", "", "Service configuration directory (overrides config)")
	cluster := flag.String("cluster", "", "Cluster name (overrides config)")
	dryRun := flag.Bool("dry-run", false, "Log what would be removed without deleting anything")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		info := version.Get()
		fmt.Printf("chronos-janitor %s\n", info.Version)
		fmt.Printf("  Commit:     %s\n", info.Commit)
		fmt.Printf("  Built:      %s\n", info.BuildDate)
		fmt.Printf("  Go version: %s\n", info.GoVersion)
		fmt.Printf("  OS/Arch:    %s\n", info.Platform)
		os.Exit(0)
	}

	// Load config, with flags taking precedence over file and env
	cfg, err := config.Load(*configPath, config.Overrides{
		SoaDir:  *soaDir,
		Cluster: *cluster,
		DryRun:  *dryRun,
	})
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup logging - env vars override config
	logLevel := cfg.General.LogLevel
	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}
	logFormat := "json"
	if envFormat := os.Getenv("LOG_FORMAT"); envFormat != "" {
		logFormat = envFormat
	}
	logger := logging.Setup(logLevel, logFormat)
	info := version.Get()
	logger.Info("starting chronos-janitor",
		"version", info.Version,
		"commit", info.Commit,
		"built", info.BuildDate,
		"cluster", cfg.Cluster,
		"soa_dir", cfg.SoaDir,
		"dry_run", cfg.General.DryRun,
	)

	client := chronos.NewClient(chronos.ClientConfig{
		BaseURL:  cfg.Chronos.URL,
		User:     cfg.Chronos.User,
		Password: cfg.Chronos.Password,
		Timeout:  cfg.General.RequestTimeout,
		SkipTLS:  !cfg.Chronos.SSLVerification,
		Logger:   logger,
	})
	defer client.Close()

	ctx := context.Background()

	// One-shot is the default; the exit code is the monitoring signal.
	if cfg.General.Interval == 0 {
		report, err := runOnce(ctx, cfg, client, logger)
		if err != nil {
			logger.Error("run aborted", "error", err)
			os.Exit(1)
		}
		os.Exit(report.ExitCode())
	}

	// Interval mode for daemon deployments
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.General.Interval)
	defer ticker.Stop()

	// Run immediately on startup
	runCycle(ctx, cfg, client, logger)

	for {
		select {
		case <-ticker.C:
			runCycle(ctx, cfg, client, logger)
		case <-sigChan:
			logger.Info("shutdown signal received")
			cancel()
			return
		case <-ctx.Done():
			return
		}
	}
}

// runCycle wraps runOnce for interval mode: errors are logged, never fatal
func runCycle(ctx context.Context, cfg *config.Config, client *chronos.Client, logger *slog.Logger) {
	report, err := runOnce(ctx, cfg, client, logger)
	if err != nil {
		logger.Error("cycle aborted", "error", err)
		return
	}
	if report.Failed() {
		logger.Warn("cycle had failures",
			"task_failures", len(report.TaskFailures),
			"job_failures", len(report.JobFailures),
		)
	}
}

// runOnce performs a single reconciliation: discover both job sets, delete
// the orphans, print the report. Discovery errors are fatal for the run;
// nothing has been mutated yet at that point.
func runOnce(ctx context.Context, cfg *config.Config, client *chronos.Client, logger *slog.Logger) (cleanup.Report, error) {
	start := time.Now()

	pairs, err := soaconfig.ExpectedJobs(cfg.SoaDir, cfg.Cluster)
	if err != nil {
		return cleanup.Report{}, fmt.Errorf("discover expected jobs: %w", err)
	}
	expected := make([]cleanup.JobID, 0, len(pairs))
	for _, pair := range pairs {
		expected = append(expected, cleanup.JobID(pair.Job))
	}

	jobs, err := client.ListJobs(ctx)
	if err != nil {
		return cleanup.Report{}, fmt.Errorf("list running jobs: %w", err)
	}
	actual := make([]cleanup.JobID, 0, len(jobs))
	for _, job := range jobs {
		actual = append(actual, cleanup.JobID(job.Name))
	}

	orphans := cleanup.Orphans(expected, actual)
	logger.Info("computed orphan set",
		"expected", len(expected),
		"actual", len(actual),
		"orphans", len(orphans),
	)

	executor := cleanup.NewExecutor(cleanup.ExecutorConfig{
		Client:  client,
		Logger:  logger,
		Workers: cfg.General.Workers,
		DryRun:  cfg.General.DryRun,
	})
	outcomes := executor.Run(ctx, orphans)
	report := cleanup.BuildReport(outcomes)
	report.DryRun = cfg.General.DryRun

	fmt.Println(report.Render())

	logger.Info("cycle complete",
		slog.Group("cycle",
			slog.Duration("duration", time.Since(start).Round(time.Millisecond)),
			slog.Int("orphans", report.OrphanCount),
		),
		slog.Group("tasks",
			slog.Int("removed", len(report.TaskSuccesses)),
			slog.Int("failed", len(report.TaskFailures)),
		),
		slog.Group("jobs",
			slog.Int("removed", len(report.JobSuccesses)),
			slog.Int("failed", len(report.JobFailures)),
		),
	)

	return report, nil
}

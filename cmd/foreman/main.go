// Foreman orchestrator server — provides the HTTP control API, runs the
// assignment queue, and coordinates agent task execution.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/frugalops/foreman/pkg/agentruntime"
	"github.com/frugalops/foreman/pkg/api"
	"github.com/frugalops/foreman/pkg/assess"
	"github.com/frugalops/foreman/pkg/cleanup"
	"github.com/frugalops/foreman/pkg/config"
	"github.com/frugalops/foreman/pkg/cost"
	"github.com/frugalops/foreman/pkg/database"
	"github.com/frugalops/foreman/pkg/events"
	"github.com/frugalops/foreman/pkg/llm"
	"github.com/frugalops/foreman/pkg/masking"
	"github.com/frugalops/foreman/pkg/queue"
	"github.com/frugalops/foreman/pkg/resources"
	"github.com/frugalops/foreman/pkg/review"
	"github.com/frugalops/foreman/pkg/router"
	"github.com/frugalops/foreman/pkg/services"
	"github.com/frugalops/foreman/pkg/slack"
	"github.com/frugalops/foreman/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// maskingConfig converts the YAML masking section into the masking
// service's own config type.
func maskingConfig(cfg *config.Config) masking.Config {
	custom := make([]masking.CustomPattern, 0, len(cfg.Masking.CustomPatterns))
	for _, p := range cfg.Masking.CustomPatterns {
		custom = append(custom, masking.CustomPattern{
			Pattern:     p.Pattern,
			Replacement: p.Replacement,
			Description: p.Description,
		})
	}
	return masking.Config{
		Enabled:        cfg.Masking.Enabled,
		PatternGroup:   cfg.Masking.PatternGroup,
		CustomPatterns: custom,
	}
}

// resolvePodID determines the instance identifier for multi-replica
// coordination. Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configPath := flag.String("config",
		getEnv("FOREMAN_CONFIG", "./foreman.yaml"),
		"Path to the configuration file")
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}

	podID := resolvePodID()
	slog.Info("Starting foreman",
		"version", version.Full(),
		"pod_id", podID,
		"config", *configPath)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(*configPath)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (runs migrations)
	dbClient, err := database.NewClient(ctx, database.DefaultConfig(cfg.Database.URL))
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 4. Event bus and budget guard
	bus := events.NewBus()
	defer bus.Close()
	eventService := services.NewEventService(dbClient.Client, bus)

	guard := cost.NewGuard(cost.GuardConfig{
		DailyLimitCents:  cfg.Budget.DailyBudgetCents,
		WarningThreshold: cfg.Budget.WarningThreshold,
		Enabled:          cfg.Budget.Enabled,
	}, bus)

	// 5. LLM sidecar client (lazy dial; connects on first RPC)
	llmClient, err := llm.NewGRPCClient(cfg.LLM.GRPCAddr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", cfg.LLM.GRPCAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()

	// 6. Complexity assessment
	var judge *assess.Judge
	if cfg.Assessor.EnableJudge {
		judge = assess.NewJudge(llmClient, cfg.Assessor.JudgeModel, guard, 0)
		slog.Info("Judge assessor enabled", "model", cfg.Assessor.JudgeModel)
	}
	assessor := assess.NewAssessor(judge)

	// 7. Domain services
	taskService := services.NewTaskService(dbClient.Client, assessor, eventService, cfg.Queue.DefaultMaxIterations)
	agentService := services.NewAgentService(dbClient.Client, eventService)
	logService := services.NewLogService(dbClient.Client)
	reviewService := services.NewReviewService(dbClient.Client, eventService)

	if err := agentService.EnsureDefaults(ctx); err != nil {
		slog.Error("Failed to seed default agents", "error", err)
		os.Exit(1)
	}
	slog.Info("Services initialized")

	// 8. Queue machinery
	pool := resources.NewPool(cfg.Pool.LocalSlots, cfg.Pool.PremiumSlots)
	taskRouter := router.New(agentService, guard)
	runtimeClient := agentruntime.NewClient(cfg.Runtime.BaseURL, cfg.Runtime.Timeout())
	sink := queue.NewToolEventSink(taskService, logService, eventService, guard)
	sink.SetMasker(masking.NewService(maskingConfig(cfg)))
	trigger := review.NewTrigger(taskService, reviewService, cfg.Review.Enabled, cfg.Review.MinComplexity)

	executor := queue.NewExecutor(taskService, agentService, eventService,
		runtimeClient, pool, guard, sink, trigger, cfg.Queue.TaskTimeout())
	executor.SetReviewRunner(review.NewReviewer(taskService, logService, reviewService,
		llmClient, guard, cfg.Review.Model))

	assigner := queue.NewAssigner(podID, dbClient.Client, taskService, agentService,
		eventService, taskRouter, pool, executor, cfg.Queue.PollInterval())
	assigner.Start(ctx)

	sweeper := queue.NewSweeper(dbClient.Client, taskService, agentService,
		eventService, pool, assigner, cfg.Queue.TaskTimeout(), cfg.Queue.SweeperInterval())
	sweeper.Start(ctx)

	// 9. Retention and operator notifications
	var retention *cleanup.Service
	if cfg.Retention.Enabled {
		retention = cleanup.NewService(&cfg.Retention, taskService, eventService)
		retention.Start(ctx)
	}

	notifier := slack.NewNotifier(slack.NotifierConfig{
		Token:        cfg.Slack.Token,
		Channel:      cfg.Slack.Channel,
		DashboardURL: cfg.Slack.DashboardURL,
	})
	if notifier == nil {
		slog.Info("Slack notifications disabled")
	}
	notifier.Start(ctx, bus)

	// 10. HTTP server
	httpServer := api.NewServer(cfg, dbClient, taskService, agentService,
		logService, reviewService, eventService, guard, pool, assigner, sweeper, sink)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.Server.ListenAddr)
		if err := httpServer.Start(cfg.Server.ListenAddr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Foreman started successfully", "pod_id", podID)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: sweeper first so it cannot abort draining runs,
	// then the assigner (waits for active executors), then HTTP.
	sweeper.Stop()
	if retention != nil {
		retention.Stop()
	}
	notifier.Stop()

	done := make(chan struct{})
	go func() {
		assigner.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Queue stopped gracefully")
	case <-time.After(30 * time.Second):
		slog.Warn("Queue shutdown timeout exceeded — incomplete runs will be orphan-recovered")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// Package api provides the HTTP control surface of the orchestrator: task
// and agent management, queue introspection, the budget snapshot, and the
// WebSocket event stream.
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/frugalops/foreman/pkg/config"
	"github.com/frugalops/foreman/pkg/cost"
	"github.com/frugalops/foreman/pkg/database"
	"github.com/frugalops/foreman/pkg/queue"
	"github.com/frugalops/foreman/pkg/resources"
	"github.com/frugalops/foreman/pkg/services"
)

// strictRatePerMinute caps task creation and manual assignment per IP.
const strictRatePerMinute = 20

// Server is the HTTP API server.
type Server struct {
	cfg *config.Config
	db  *database.Client

	tasks   *services.TaskService
	agents  *services.AgentService
	logs    *services.LogService
	reviews *services.ReviewService
	events  *services.EventService

	budget   *cost.Guard
	pool     *resources.Pool
	assigner *queue.Assigner
	sweeper  *queue.Sweeper
	sink     *queue.ToolEventSink

	echo *echo.Echo
	http *http.Server
}

// NewServer wires handlers, middleware, and routes.
func NewServer(cfg *config.Config, db *database.Client,
	tasks *services.TaskService, agents *services.AgentService,
	logs *services.LogService, reviews *services.ReviewService,
	events *services.EventService, budget *cost.Guard, pool *resources.Pool,
	assigner *queue.Assigner, sweeper *queue.Sweeper, sink *queue.ToolEventSink) *Server {

	s := &Server{
		cfg:      cfg,
		db:       db,
		tasks:    tasks,
		agents:   agents,
		logs:     logs,
		reviews:  reviews,
		events:   events,
		budget:   budget,
		pool:     pool,
		assigner: assigner,
		sweeper:  sweeper,
		sink:     sink,
	}
	s.echo = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *echo.Echo {
	e := echo.New()

	e.Use(securityHeaders())
	e.Use(corsMiddleware(s.cfg.Server.CORSOrigins))

	standard := newRateLimiter(s.cfg.Server.RateLimitMax, s.cfg.Server.RateLimitWindow())
	strict := newRateLimiter(strictRatePerMinute, time.Minute)
	e.Use(rateLimitMiddleware(standard))
	e.Use(apiKeyAuth(s.cfg.Server.APIKey))

	e.GET("/health", s.healthHandler)

	e.POST("/tasks", s.createTaskHandler, rateLimitMiddleware(strict))
	e.GET("/tasks", s.listTasksHandler)
	e.GET("/tasks/:id", s.getTaskHandler)
	e.PATCH("/tasks/:id", s.updateTaskHandler)
	e.POST("/tasks/:id/complete", s.completeTaskHandler)
	e.DELETE("/tasks/:id", s.deleteTaskHandler)

	e.GET("/agents", s.listAgentsHandler)
	e.GET("/agents/:id", s.getAgentHandler)
	e.PATCH("/agents/:id", s.updateAgentHandler)
	e.POST("/agents/reset-all", s.resetAgentsHandler)

	e.POST("/queue/assign", s.assignHandler, rateLimitMiddleware(strict))
	e.GET("/queue/resources", s.resourcesHandler)
	e.GET("/queue/health", s.queueHealthHandler)

	e.GET("/execution-logs/task/:id", s.taskLogsHandler)
	e.GET("/execution-logs/export", s.exportLogsHandler)
	e.GET("/code-reviews/task/:id", s.taskReviewHandler)
	e.GET("/budget", s.budgetHandler)

	// Runtime-facing ingest; same API key, not rate limited per tool call.
	e.POST("/internal/tool-events/:id", s.toolEventHandler)

	e.GET("/ws", s.wsHandler)

	return e
}

// Start serves until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown stops the server, letting in-flight requests finish within ctx.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

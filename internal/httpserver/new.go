package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"daily-priority-agent/internal/middleware"
	taskHTTP "daily-priority-agent/internal/task/delivery/http"
	tgDelivery "daily-priority-agent/internal/task/delivery/telegram"
	"daily-priority-agent/pkg/log"
	"daily-priority-agent/pkg/response"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Cross-cutting
	mw             middleware.Middleware
	allowedOrigins []string
	components     map[string]bool

	// Task domain
	taskHandler     taskHTTP.Handler
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	AllowedOrigins  []string
	RateLimitPerMin int

	// Components lists optional collaborators for GET /ready, e.g. {"llm": true}
	Components map[string]bool

	// Task domain
	TaskHandler     taskHTTP.Handler
	TelegramHandler tgDelivery.Handler // optional
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		response.UseJSONFieldNames(v)
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              middleware.New(logger, middleware.Config{RateLimitPerMin: cfg.RateLimitPerMin}),
		allowedOrigins:  cfg.AllowedOrigins,
		components:      cfg.Components,
		taskHandler:     cfg.TaskHandler,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	return nil
}

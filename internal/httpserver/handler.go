package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"daily-priority-agent/internal/middleware"
	taskHTTP "daily-priority-agent/internal/task/delivery/http"
)

// RootMessage is returned by GET /.
const RootMessage = ServiceName + " is running"

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(srv.mw.Recovery())
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.AccessLog())

	srv.l.Infof(context.Background(), "CORS mode: %s, origins=%v", srv.environment, srv.allowedOrigins)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.root)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() {
	api := srv.gin.Group("/api")
	taskHTTP.RegisterRoutes(api, srv.taskHandler, srv.mw)
	ctx := context.Background()
	srv.l.Infof(ctx, "Task routes registered at POST /api/prioritize and POST /api/v1/plans")

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", srv.mw.RateLimit(), srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}
}

// root answers GET / with the service banner.
func (srv HTTPServer) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": RootMessage})
}

// Handler returns the engine wrapped in the CORS handler.
func (srv HTTPServer) Handler() http.Handler {
	return middleware.CORS(srv.gin, srv.allowedOrigins)
}

package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mdourado/box-geotag-service/internal/adapter/handler"
	"github.com/mdourado/box-geotag-service/internal/infrastructure/middleware"
)

type Router struct {
	engine         *gin.Engine
	fileHandler    *handler.FileHandler
	oauthHandler   *handler.OAuthHandler
	webhookHandler *handler.WebhookHandler
	logger         *zap.Logger
}

type RouterConfig struct {
	FileHandler    *handler.FileHandler
	OAuthHandler   *handler.OAuthHandler
	WebhookHandler *handler.WebhookHandler
	Logger         *zap.Logger
	Environment    string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:         engine,
		fileHandler:    cfg.FileHandler,
		oauthHandler:   cfg.OAuthHandler,
		webhookHandler: cfg.WebhookHandler,
		logger:         cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS())
}

func (r *Router) setupRoutes() {
	r.engine.GET("/", r.oauthHandler.Health)
	r.engine.GET("/callback", r.oauthHandler.Callback)

	r.engine.POST("/upload-file/", r.fileHandler.Upload)
	r.engine.DELETE("/delete-file/:id", r.fileHandler.Delete)
	r.engine.POST("/restore-file/:id", r.fileHandler.Restore)

	r.engine.POST("/webhook/box", r.webhookHandler.Handle)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

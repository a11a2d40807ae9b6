// Package api exposes the task service over HTTP and serves the built
// frontend.
package api

import (
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/gauravchand/vibe-task-board/docs"
	"github.com/gauravchand/vibe-task-board/internal/task"
)

type Options struct {
	Service *task.Service
	Logger  *zap.Logger

	// CORSOrigins lists allowed origins; "*" allows any.
	CORSOrigins []string
	// FrontendDist is the built frontend directory. Static routes are only
	// registered when it exists.
	FrontendDist string
	Docs         bool
}

// NewRouter wires every route onto a fresh gin engine.
func NewRouter(opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(requestLogger(log), gin.Recovery())
	r.Use(cors.New(corsConfig(opts.CORSOrigins)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h := &taskHandler{svc: opts.Service}
	tasks := r.Group("/api/tasks")
	tasks.GET("", h.list)
	tasks.POST("", h.create)
	tasks.PUT("/:id/complete", h.toggleComplete)
	tasks.DELETE("/:id", h.delete)

	if opts.Docs {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, errorResponse{Detail: "Method Not Allowed"})
	})
	r.NoRoute(notFound)
	mountFrontend(r, opts.FrontendDist, log)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions,
		},
		AllowHeaders: []string{"*"},
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, errorResponse{Detail: "Not Found"})
}

package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// mountFrontend serves dist/assets and falls back to dist/index.html for any
// other path outside the API, so client-side routes resolve. Nothing is
// registered when dist is missing.
func mountFrontend(r *gin.Engine, dist string, log *zap.Logger) {
	if dist == "" {
		return
	}
	if info, err := os.Stat(dist); err != nil || !info.IsDir() {
		log.Info("frontend bundle not found, static routes disabled", zap.String("dist", dist))
		return
	}

	r.Static("/assets", filepath.Join(dist, "assets"))

	index := filepath.Join(dist, "index.html")
	r.NoRoute(func(c *gin.Context) {
		path := strings.TrimPrefix(c.Request.URL.Path, "/")
		// gin hands missing static files to NoRoute as well
		if strings.HasPrefix(path, "api") || strings.HasPrefix(path, "assets/") {
			notFound(c)
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusMethodNotAllowed, errorResponse{Detail: "Method Not Allowed"})
			return
		}
		c.File(index)
	})
}

package httpserver

import (
	"context"
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"

	"schedcal/internal/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()

	if err := srv.loadTemplates(); err != nil {
		return err
	}

	srv.registerSystemRoutes()

	return srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.requestLogger())
}

// requestLogger logs every request through the structured logger instead
// of gin's default writer.
func (srv *HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		srv.l.Debugf(c.Request.Context(), "%s %s -> %d",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status())
	}
}

func (srv *HTTPServer) loadTemplates() error {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return err
	}
	srv.gin.SetHTMLTemplate(tmpl)
	return nil
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.rateLimitPerMin)
	api := srv.gin.Group("/api/v1")

	if err := srv.setupScheduleDomain(ctx, api, mw); err != nil {
		return err
	}

	return nil
}

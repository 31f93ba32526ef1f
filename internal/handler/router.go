package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/polidog/web/internal/auth"
	"github.com/polidog/web/internal/cache"
	"github.com/polidog/web/internal/middleware"
	"github.com/polidog/web/internal/render"
)

// RouterDeps are the pieces NewRouter wires together.
type RouterDeps struct {
	Gateway *auth.Gateway
	Public  *PublicHandler
	Admin   *AdminHandler
	Users   *UserAPIHandler
	Health  *HealthHandler
	// Posts backs the short-URL redirect of the edge middleware.
	Posts middleware.PostFinder
	// PageCache is nil when page caching is disabled.
	PageCache *cache.PageCache
	Links     render.Links
	// AccessLog enables gin's request log.
	AccessLog bool
}

// NewRouter builds the gin engine with every route of the site.
func NewRouter(d RouterDeps) (*gin.Engine, error) {
	tmpl, err := render.Templates(d.Links.FuncMap())
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	if d.AccessLog {
		router.Use(gin.Logger())
	}
	router.Use(middleware.Edge(d.Posts, d.Gateway, d.Links.Location))

	// Health, metrics and assets
	d.Health.RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.StaticFS("/static", render.Static())

	// API routes
	d.Gateway.RegisterRoutes(router)
	d.Users.RegisterRoutes(router)

	// Public pages
	pages := router.Group("")
	if d.PageCache != nil {
		pages.Use(cache.Middleware(d.PageCache, auth.SessionCookieName))
	}
	pages.Use(d.Gateway.LoadSession())
	d.Public.RegisterRoutes(pages)
	router.GET("/login", d.Gateway.LoadSession(), d.Public.Login)

	// Admin pages
	admin := router.Group("/admin", d.Gateway.RequireAuth())
	d.Admin.RegisterRoutes(admin)

	router.NoRoute(d.Public.NotFound)
	return router, nil
}

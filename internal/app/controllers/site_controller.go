package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rojgarhub/backend/internal/middleware"
	"github.com/rojgarhub/backend/internal/pkg/sitemap"
)

// SiteServicer is the service surface the site controller depends on.
type SiteServicer interface {
	BuildSiteData(ctx context.Context, isAdmin bool) (map[string]interface{}, error)
	BuildSitemap(ctx context.Context, baseURL string) ([]sitemap.Page, error)
}

// SiteController handles the aggregation, health and crawler endpoints
type SiteController struct {
	siteService SiteServicer
	baseURL     string
}

// NewSiteController creates a new SiteController. baseURL, when non-empty,
// overrides the request-derived base URL used in robots and sitemap output.
func NewSiteController(siteService SiteServicer, baseURL string) *SiteController {
	return &SiteController{
		siteService: siteService,
		baseURL:     baseURL,
	}
}

// Data handles GET /data, the full site aggregation payload
func (c *SiteController) Data(ctx *gin.Context) {
	data, err := c.siteService.BuildSiteData(ctx, middleware.IsAdminRequest(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, data)
}

// Health handles GET /health
func (c *SiteController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Robots handles GET /robots, serving crawler directives as plain text
func (c *SiteController) Robots(ctx *gin.Context) {
	baseURL := c.resolveBaseURL(ctx)
	body := fmt.Sprintf(`User-agent: *
Allow: /
Sitemap: %s/sitemap.xml

Disallow: /admin
Disallow: /api`, baseURL)

	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}

// Sitemap handles GET /sitemap, serving the XML sitemap
func (c *SiteController) Sitemap(ctx *gin.Context) {
	pages, err := c.siteService.BuildSitemap(ctx, c.resolveBaseURL(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	body, err := sitemap.Render(pages)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "text/xml; charset=utf-8", body)
}

// resolveBaseURL prefers the configured base URL, then falls back to the
// request's forwarded protocol and host.
func (c *SiteController) resolveBaseURL(ctx *gin.Context) string {
	if c.baseURL != "" {
		return c.baseURL
	}

	proto := ctx.GetHeader("X-Forwarded-Proto")
	if proto == "" {
		if ctx.Request.TLS != nil {
			proto = "https"
		} else {
			proto = "http"
		}
	}
	return fmt.Sprintf("%s://%s", proto, ctx.Request.Host)
}

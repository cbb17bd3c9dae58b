package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tvgt-news/cmd/api/services"
	"tvgt-news/internal/logger"
)

// RSSHandler godoc
// @Summary      RSS feed
// @Produce      xml
// @Success      200  {string}  string
// @Failure      500  {object}  object{error=string}
// @Router       /rss.xml [get]
func RSSHandler(svc *services.FeedService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.RSS(c.Request.Context())
		if err != nil {
			logger.Log.Errorf("rss feed failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo generar el feed"})
			return
		}
		c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", out)
	}
}

// SitemapHandler godoc
// @Summary      Sitemap
// @Produce      xml
// @Success      200  {string}  string
// @Router       /sitemap.xml [get]
func SitemapHandler(svc *services.FeedService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Sitemap(c.Request.Context())
		if err != nil {
			logger.Log.Errorf("sitemap failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo generar el sitemap"})
			return
		}
		c.Data(http.StatusOK, "application/xml; charset=utf-8", out)
	}
}

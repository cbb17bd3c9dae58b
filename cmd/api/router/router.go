package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tvgt-news/cmd/api/handlers"
	"tvgt-news/cmd/api/middleware"
	"tvgt-news/cmd/api/services"
	_ "tvgt-news/docs"
)

func New(postSvc *services.PostService, feedSvc *services.FeedService, hookSvc *services.WebhookService, webhookToken string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Feeds
	r.GET("/rss.xml", handlers.RSSHandler(feedSvc))
	r.GET("/sitemap.xml", handlers.SitemapHandler(feedSvc))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/posts", handlers.ListPostsHandler(postSvc))
		api.GET("/posts/featured", handlers.FeaturedPostsHandler(postSvc))
		api.GET("/posts/slugs", handlers.ListSlugsHandler(postSvc))
		api.GET("/noticias/:slug", handlers.GetPostHandler(postSvc))
		api.GET("/category", handlers.GetCategoryHandler(postSvc))
	}

	// Inbound publish trigger from the CMS
	hook := r.Group("/api/webhook")
	hook.Use(middleware.WebhookAuth(webhookToken))
	{
		hook.POST("/new-post", handlers.NewPostWebhookHandler(hookSvc))
		hook.GET("/new-post", handlers.TestWebhookHandler(hookSvc))
	}

	return r
}

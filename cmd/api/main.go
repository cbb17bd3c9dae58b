package main

import (
	"net/http"
	"os"

	"github.com/rs/cors"

	"tvgt-news/cmd/api/router"
	"tvgt-news/cmd/api/services"
	"tvgt-news/config"
	"tvgt-news/feeds"
	"tvgt-news/internal/httpclient"
	"tvgt-news/internal/logger"
	"tvgt-news/notifier"
	"tvgt-news/wordpress"
)

// @title           TVGT USA News API
// @version         1.0
// @description     Content and notification backend for the TVGT USA news site
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)
	env := config.GetEnv()

	httpClient := httpclient.NewDefault()
	wp := wordpress.NewClient(env.GraphQLURL, env.CategorySlug, httpClient)
	dispatcher := notifier.New(notifier.Config{
		WebhookURL:  env.WebhookURL,
		Development: env.Development,
		EnableInDev: env.EnableWebhooksInDev,
	}, httpClient)

	postSvc := services.NewPostService(wp)
	feedSvc := services.NewFeedService(wp, feeds.Site{
		BaseURL:     env.SiteURL,
		Name:        cfg.Site.Name,
		Description: cfg.Site.Description,
		Language:    cfg.Site.Language,
		TTLMinutes:  cfg.Feed.TTLMinutes,
	}, cfg.Feed.Items)
	hookSvc := services.NewWebhookService(dispatcher, env.SiteURL, env.CategorySlug)

	r := router.New(postSvc, feedSvc, hookSvc, env.WebhookToken)
	handler := cors.Default().Handler(r)

	logger.Log.Infof("listening on :%s", env.Port)
	if err := http.ListenAndServe(":"+env.Port, handler); err != nil && err != http.ErrServerClosed {
		logger.Log.Errorf("server stopped: %v", err)
		os.Exit(1)
	}
}

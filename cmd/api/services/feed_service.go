package services

import (
	"context"
	"time"

	"tvgt-news/feeds"
	"tvgt-news/wordpress"
)

// FeedService builds the RSS feed and the sitemap from live content.
type FeedService struct {
	client *wordpress.Client
	site   feeds.Site
	items  int
}

func NewFeedService(client *wordpress.Client, site feeds.Site, items int) *FeedService {
	if items <= 0 {
		items = 20
	}
	return &FeedService{client: client, site: site, items: items}
}

// RSS renders the feed from the latest posts. The listing fetch fails
// hard, matching the listing-page policy: a feed with no items is a
// broken feed.
func (s *FeedService) RSS(ctx context.Context) ([]byte, error) {
	page, err := s.client.ListPosts(ctx, s.items, "")
	if err != nil {
		return nil, err
	}
	return feeds.BuildRSS(page.Nodes, s.site, time.Now())
}

// Sitemap renders the sitemap. Slug enumeration fails soft, so the
// result always contains at least the static pages.
func (s *FeedService) Sitemap(ctx context.Context) ([]byte, error) {
	slugs := s.client.ListAllSlugs(ctx)
	return feeds.BuildSitemap(slugs, s.site.BaseURL, time.Now())
}

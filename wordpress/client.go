package wordpress

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/machinebox/graphql"

	"tvgt-news/internal/httpclient"
	"tvgt-news/internal/logger"
)

// Client is a thin read-only client for the WordPress GraphQL endpoint.
// Every query is scoped to a single category; the client never writes.
//
// Failure policy is deliberately asymmetric: ListPosts feeds whole
// listing pages and fails hard, while ListAllSlugs, FeaturedPosts and
// GetCategory back optional page sections and degrade to empty results.
type Client struct {
	gql          *graphql.Client
	categorySlug string
}

// ErrNotFound is returned by GetPostBySlug when no post matches the
// slug. It is distinct from transport errors: a stale link is a normal
// outcome, not an outage.
var ErrNotFound = errors.New("wordpress: post not found")

// NewClient builds a client for the given endpoint and category scope.
// A nil httpClient falls back to the shared default (10s timeout,
// logging round-tripper).
func NewClient(endpoint, categorySlug string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = httpclient.NewDefault()
	}
	gql := graphql.NewClient(endpoint, graphql.WithHTTPClient(httpClient))
	gql.Log = func(s string) { logger.Log.Debug(s) }

	return &Client{
		gql:          gql,
		categorySlug: categorySlug,
	}
}

// ListPosts fetches one page of posts. after is the endCursor of a
// previous page, or empty for the first page. Errors propagate: a
// listing page with no data is a broken page.
func (c *Client) ListPosts(ctx context.Context, first int, after string) (PostsPage, error) {
	if first <= 0 {
		return PostsPage{}, fmt.Errorf("wordpress: first must be positive, got %d", first)
	}

	req := graphql.NewRequest(getPostsQuery)
	req.Var("first", first)
	if after != "" {
		req.Var("after", after)
	}
	req.Var("categoryName", c.categorySlug)

	var resp struct {
		Posts PostsPage `json:"posts"`
	}
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		return PostsPage{}, fmt.Errorf("wordpress: list posts: %w", err)
	}
	return resp.Posts, nil
}

// GetPostBySlug fetches a single post. Returns ErrNotFound when the
// endpoint answers normally but no post matches.
func (c *Client) GetPostBySlug(ctx context.Context, slug string) (*Post, error) {
	req := graphql.NewRequest(getPostBySlugQuery)
	req.Var("slug", slug)

	var resp struct {
		Post *Post `json:"post"`
	}
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("wordpress: get post %q: %w", slug, err)
	}
	if resp.Post == nil {
		return nil, ErrNotFound
	}
	return resp.Post, nil
}

// ListAllSlugs enumerates every post slug in the category, for route
// and sitemap generation. Returns an empty list on any error: route
// generation degrades to no precomputed routes.
func (c *Client) ListAllSlugs(ctx context.Context) []string {
	req := graphql.NewRequest(getAllSlugsQuery)
	req.Var("categoryName", c.categorySlug)

	var resp struct {
		Posts struct {
			Nodes []struct {
				Slug string `json:"slug"`
			} `json:"nodes"`
		} `json:"posts"`
	}
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		logger.Log.Warnf("wordpress: list slugs failed: %v", err)
		return nil
	}

	slugs := make([]string, 0, len(resp.Posts.Nodes))
	for _, n := range resp.Posts.Nodes {
		slugs = append(slugs, n.Slug)
	}
	return slugs
}

// FeaturedPosts fetches the latest posts for the homepage strip.
// Returns an empty list on any error; the section is optional.
func (c *Client) FeaturedPosts(ctx context.Context, limit int) []Post {
	if limit <= 0 {
		limit = 3
	}

	req := graphql.NewRequest(getFeaturedPostsQuery)
	req.Var("first", limit)
	req.Var("categoryName", c.categorySlug)

	var resp struct {
		Posts struct {
			Nodes []Post `json:"nodes"`
		} `json:"posts"`
	}
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		logger.Log.Warnf("wordpress: featured posts failed: %v", err)
		return nil
	}
	return resp.Posts.Nodes
}

// GetCategory fetches the configured category itself. Returns nil on
// any error; the description block is optional.
func (c *Client) GetCategory(ctx context.Context) *Category {
	req := graphql.NewRequest(getCategoryQuery)
	req.Var("slug", c.categorySlug)

	var resp struct {
		Category *Category `json:"category"`
	}
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		logger.Log.Warnf("wordpress: get category failed: %v", err)
		return nil
	}
	return resp.Category
}

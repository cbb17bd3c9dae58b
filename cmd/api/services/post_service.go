package services

import (
	"context"

	"tvgt-news/cmd/api/dto"
	"tvgt-news/wordpress"
)

// listExcerptLimit caps excerpts in listing responses.
const listExcerptLimit = 150

// PostService encapsulates post fetching and DTO mapping on top of
// the WordPress content client.
type PostService struct {
	client *wordpress.Client
}

func NewPostService(client *wordpress.Client) *PostService {
	return &PostService{client: client}
}

// List returns one listing page. Errors propagate so the handler can
// answer with a failure status: a listing with no data is broken.
func (s *PostService) List(ctx context.Context, first int, after string) (dto.PostListDTO, error) {
	page, err := s.client.ListPosts(ctx, first, after)
	if err != nil {
		return dto.PostListDTO{}, err
	}

	posts := make([]dto.PostDTO, 0, len(page.Nodes))
	for _, p := range page.Nodes {
		posts = append(posts, mapPost(p, false))
	}
	return dto.PostListDTO{
		Posts: posts,
		PageInfo: dto.PageInfoDTO{
			HasNextPage:     page.PageInfo.HasNextPage,
			HasPreviousPage: page.PageInfo.HasPreviousPage,
			StartCursor:     page.PageInfo.StartCursor,
			EndCursor:       page.PageInfo.EndCursor,
		},
	}, nil
}

// GetBySlug loads a single post with its full body. Passes through
// wordpress.ErrNotFound so handlers can answer 404.
func (s *PostService) GetBySlug(ctx context.Context, slug string) (*dto.PostDTO, error) {
	p, err := s.client.GetPostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	d := mapPost(*p, true)
	return &d, nil
}

// Featured returns the homepage strip. May be empty; never fails.
func (s *PostService) Featured(ctx context.Context, limit int) []dto.PostDTO {
	posts := s.client.FeaturedPosts(ctx, limit)
	out := make([]dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, mapPost(p, false))
	}
	return out
}

// Slugs enumerates every addressable article. May be empty; never
// fails.
func (s *PostService) Slugs(ctx context.Context) []string {
	return s.client.ListAllSlugs(ctx)
}

// Category returns the configured category, or nil when unavailable.
func (s *PostService) Category(ctx context.Context) *dto.CategoryDTO {
	c := s.client.GetCategory(ctx)
	if c == nil {
		return nil
	}
	return &dto.CategoryDTO{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Count:       c.Count,
	}
}

// mapPost converts a WordPress post into the public DTO. The image
// falls back to the first inline image of the body when the post has
// no featured image.
func mapPost(p wordpress.Post, includeContent bool) dto.PostDTO {
	d := dto.PostDTO{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Date:        p.Date,
		DisplayDate: wordpress.FormatDate(p.Date),
		Excerpt:     wordpress.CleanExcerpt(p.Excerpt, listExcerptLimit),
		Author:      p.Author.Node.Name,
	}
	if includeContent {
		d.Content = p.Content
	}

	if p.FeaturedImage != nil {
		d.ImageURL = p.FeaturedImage.Node.SourceURL
		d.ImageAlt = p.FeaturedImage.Node.AltText
	} else if src := wordpress.FirstImageURL(p.Content); src != "" {
		d.ImageURL = src
	}

	for _, c := range p.Categories.Nodes {
		d.Categories = append(d.Categories, c.Name)
	}
	if p.Tags != nil {
		for _, t := range p.Tags.Nodes {
			d.Tags = append(d.Tags, t.Name)
		}
	}
	return d
}

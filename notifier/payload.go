package notifier

import (
	"tvgt-news/wordpress"
)

// SiteName identifies the site in every outbound notification.
const SiteName = "TVGT USA"

// defaultCategory labels posts that carry no category of their own.
const defaultCategory = "Noticias"

// excerptLimit bounds the excerpt sent to the webhook.
const excerptLimit = 200

// Payload is the JSON body delivered to the automation webhook. It is
// a write-only projection of a post, built fresh per dispatch and
// never persisted.
type Payload struct {
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	URL      string `json:"url"`
	ImageURL string `json:"imageUrl"`
	Category string `json:"category"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	SiteName string `json:"siteName"`
}

// BuildPayload projects a post into the webhook payload. Pure: the
// excerpt is stripped of markup and capped, the URL is derived from
// the base URL and slug, and the category falls back to "Noticias".
func BuildPayload(post wordpress.Post, baseURL string) Payload {
	imageURL := ""
	if post.FeaturedImage != nil {
		imageURL = post.FeaturedImage.Node.SourceURL
	}

	return Payload{
		Title:    post.Title,
		Excerpt:  wordpress.CleanExcerpt(post.Excerpt, excerptLimit),
		URL:      baseURL + "/noticias/" + post.Slug,
		ImageURL: imageURL,
		Category: post.PrimaryCategory(defaultCategory),
		Author:   post.Author.Node.Name,
		Date:     post.Date,
		SiteName: SiteName,
	}
}

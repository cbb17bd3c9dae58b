package feeds_test

import (
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tvgt-news/feeds"
	"tvgt-news/wordpress"
)

func testSite() feeds.Site {
	return feeds.Site{
		BaseURL:     "https://tvgtusa.com",
		Name:        "TVGT USA",
		Description: "Noticias para la comunidad hispana.",
		Language:    "es-US",
		TTLMinutes:  60,
	}
}

func testPosts() []wordpress.Post {
	return []wordpress.Post{
		{
			Slug:    "primera-noticia",
			Title:   "Primera Noticia",
			Date:    "2024-01-02T10:00:00",
			Excerpt: "<p>Resumen de la <strong>primera</strong> noticia.</p>",
			FeaturedImage: &wordpress.FeaturedImage{
				Node: wordpress.ImageNode{SourceURL: "https://cdn.example.com/a.jpg"},
			},
			Author: wordpress.AuthorNode{Node: wordpress.Author{Name: "Ana"}},
			Categories: wordpress.CategoryList{Nodes: []wordpress.Category{
				{Name: "Locales", Slug: "locales"},
			}},
		},
		{
			Slug:    "segunda-noticia",
			Title:   "Segunda Noticia",
			Date:    "2024-01-01T08:00:00",
			Excerpt: "<p>Resumen de la segunda.</p>",
			Author:  wordpress.AuthorNode{Node: wordpress.Author{Name: "Luis"}},
		},
	}
}

func TestBuildRSSIsValidFeed(t *testing.T) {
	out, err := feeds.BuildRSS(testPosts(), testSite(), time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	feed, err := gofeed.NewParser().ParseString(string(out))
	require.NoError(t, err)

	assert.Equal(t, "TVGT USA - Noticias para la Comunidad Hispana", feed.Title)
	require.Len(t, feed.Items, 2)

	first := feed.Items[0]
	assert.Equal(t, "Primera Noticia", first.Title)
	assert.Equal(t, "https://tvgtusa.com/noticias/primera-noticia", first.Link)
	assert.Equal(t, "Resumen de la primera noticia.", first.Description)
	assert.Equal(t, []string{"Locales"}, first.Categories)
	require.Len(t, first.Enclosures, 1)
	assert.Equal(t, "https://cdn.example.com/a.jpg", first.Enclosures[0].URL)

	// no featured image, no enclosure
	assert.Empty(t, feed.Items[1].Enclosures)
}

func TestBuildRSSEmptyListing(t *testing.T) {
	out, err := feeds.BuildRSS(nil, testSite(), time.Now())
	require.NoError(t, err)

	feed, err := gofeed.NewParser().ParseString(string(out))
	require.NoError(t, err)
	assert.Empty(t, feed.Items)
}

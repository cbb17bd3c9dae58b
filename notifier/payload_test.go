package notifier_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"tvgt-news/notifier"
	"tvgt-news/wordpress"
)

func TestBuildPayload(t *testing.T) {
	post := wordpress.Post{
		Title:   "X",
		Excerpt: "<p>Hola</p>",
		Slug:    "x",
		Date:    "2024-01-01",
		Author:  wordpress.AuthorNode{Node: wordpress.Author{Name: "A"}},
	}

	payload := notifier.BuildPayload(post, "https://example.com")

	assert.Equal(t, notifier.Payload{
		Title:    "X",
		Excerpt:  "Hola",
		URL:      "https://example.com/noticias/x",
		Category: "Noticias",
		Author:   "A",
		Date:     "2024-01-01",
		SiteName: "TVGT USA",
	}, payload)
}

func TestBuildPayloadUsesFeaturedImageAndPrimaryCategory(t *testing.T) {
	post := wordpress.Post{
		Title:   "Con Imagen",
		Excerpt: "<p>Resumen</p>",
		Slug:    "con-imagen",
		Date:    "2024-03-10T09:00:00",
		FeaturedImage: &wordpress.FeaturedImage{
			Node: wordpress.ImageNode{SourceURL: "https://cdn.example.com/img.jpg"},
		},
		Author: wordpress.AuthorNode{Node: wordpress.Author{Name: "Ana"}},
		Categories: wordpress.CategoryList{Nodes: []wordpress.Category{
			{Name: "Deportes", Slug: "deportes"},
			{Name: "Locales", Slug: "locales"},
		}},
	}

	payload := notifier.BuildPayload(post, "https://example.com")

	assert.Equal(t, "https://cdn.example.com/img.jpg", payload.ImageURL)
	assert.Equal(t, "Deportes", payload.Category)
}

func TestBuildPayloadCapsExcerpt(t *testing.T) {
	post := wordpress.Post{
		Title:   "Larga",
		Excerpt: "<p>" + strings.Repeat("texto ", 100) + "</p>",
		Slug:    "larga",
		Date:    "2024-01-01",
		Author:  wordpress.AuthorNode{Node: wordpress.Author{Name: "A"}},
	}

	payload := notifier.BuildPayload(post, "https://example.com")

	assert.LessOrEqual(t, len([]rune(payload.Excerpt)), 203)
	assert.True(t, strings.HasSuffix(payload.Excerpt, "..."))
}

func TestFormatSocialCaptions(t *testing.T) {
	payload := notifier.Payload{
		Title:    "Título de la Noticia",
		Excerpt:  "Un resumen breve.",
		URL:      "https://example.com/noticias/titulo",
		Category: "Noticias",
		Author:   "Ana",
		Date:     "2024-01-02T10:00:00",
		SiteName: "TVGT USA",
	}

	captions := notifier.FormatSocialCaptions(payload)

	assert.Contains(t, captions.Twitter, payload.Title)
	assert.Contains(t, captions.Twitter, payload.URL)
	assert.Contains(t, captions.Facebook, "Lee la noticia completa")
	assert.Contains(t, captions.Facebook, "#TVGTUSA")
	assert.Contains(t, captions.Instagram, "Link en bio")
	assert.Contains(t, captions.Instagram, "2 de enero de 2024")
}

func TestFormatSocialCaptionsTwitterCap(t *testing.T) {
	payload := notifier.Payload{
		Title:   strings.Repeat("Título ", 20),
		Excerpt: strings.Repeat("resumen ", 80),
		URL:     "https://example.com/noticias/larga",
	}

	captions := notifier.FormatSocialCaptions(payload)

	assert.LessOrEqual(t, len([]rune(captions.Twitter)), 280)
}

func TestFormatSocialCaptionsDeterministic(t *testing.T) {
	payload := notifier.Payload{
		Title:   "Igual",
		Excerpt: "Mismo resumen",
		URL:     "https://example.com/noticias/igual",
		Date:    "2024-01-01",
	}

	assert.Equal(t, notifier.FormatSocialCaptions(payload), notifier.FormatSocialCaptions(payload))
}

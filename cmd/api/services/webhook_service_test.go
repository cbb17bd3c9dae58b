package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"tvgt-news/cmd/api/services"
	"tvgt-news/notifier"
	"tvgt-news/wordpress"
)

// fakeDeliverer records dispatches instead of performing them.
type fakeDeliverer struct {
	result   bool
	calls    int
	lastSent notifier.Payload
}

func (f *fakeDeliverer) Dispatch(ctx context.Context, p notifier.Payload) bool {
	f.calls++
	f.lastSent = p
	return f.result
}

func publishedEvent() services.NewPostEvent {
	return services.NewPostEvent{
		Post: wordpress.Post{
			ID:      "42",
			Slug:    "nueva-noticia",
			Title:   "Nueva Noticia",
			Date:    "2024-01-02T10:00:00",
			Excerpt: "<p>Resumen</p>",
			Author:  wordpress.AuthorNode{Node: wordpress.Author{Name: "Ana"}},
			Categories: wordpress.CategoryList{Nodes: []wordpress.Category{
				{Name: "TVGT USA", Slug: "tvgtusa"},
			}},
		},
		Status: "publish",
	}
}

func TestHandleNewPostDelivers(t *testing.T) {
	fake := &fakeDeliverer{result: true}
	svc := services.NewWebhookService(fake, "https://tvgtusa.com", "tvgtusa")

	outcome := svc.HandleNewPost(context.Background(), publishedEvent())

	assert.False(t, outcome.Skipped)
	assert.True(t, outcome.Delivered)
	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, "https://tvgtusa.com/noticias/nueva-noticia", fake.lastSent.URL)
	assert.Equal(t, "TVGT USA", fake.lastSent.Category)
}

func TestHandleNewPostSkipsWrongCategory(t *testing.T) {
	fake := &fakeDeliverer{result: true}
	svc := services.NewWebhookService(fake, "https://tvgtusa.com", "tvgtusa")

	event := publishedEvent()
	event.Categories = wordpress.CategoryList{Nodes: []wordpress.Category{
		{Name: "Otra", Slug: "otra"},
	}}

	outcome := svc.HandleNewPost(context.Background(), event)

	assert.True(t, outcome.Skipped)
	assert.Zero(t, fake.calls)
}

func TestHandleNewPostSkipsUnpublished(t *testing.T) {
	fake := &fakeDeliverer{result: true}
	svc := services.NewWebhookService(fake, "https://tvgtusa.com", "tvgtusa")

	event := publishedEvent()
	event.Status = "draft"

	outcome := svc.HandleNewPost(context.Background(), event)

	assert.True(t, outcome.Skipped)
	assert.Zero(t, fake.calls)
}

func TestHandleNewPostSkipsMissingFields(t *testing.T) {
	fake := &fakeDeliverer{result: true}
	svc := services.NewWebhookService(fake, "https://tvgtusa.com", "tvgtusa")

	event := publishedEvent()
	event.Slug = ""

	outcome := svc.HandleNewPost(context.Background(), event)

	assert.True(t, outcome.Skipped)
	assert.Zero(t, fake.calls)
}

func TestHandleNewPostReportsDeliveryFailure(t *testing.T) {
	fake := &fakeDeliverer{result: false}
	svc := services.NewWebhookService(fake, "https://tvgtusa.com", "tvgtusa")

	outcome := svc.HandleNewPost(context.Background(), publishedEvent())

	assert.False(t, outcome.Skipped)
	assert.False(t, outcome.Delivered)
	assert.Equal(t, 1, fake.calls)
}

func TestTestDispatch(t *testing.T) {
	fake := &fakeDeliverer{result: true}
	svc := services.NewWebhookService(fake, "https://tvgtusa.com", "tvgtusa")

	payload, delivered := svc.TestDispatch(context.Background())

	assert.True(t, delivered)
	assert.Equal(t, "https://tvgtusa.com/noticias/noticia-de-prueba", payload.URL)
	assert.Equal(t, "TVGT USA", payload.SiteName)
}

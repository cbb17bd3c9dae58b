package services

import (
	"context"

	"tvgt-news/internal/logger"
	"tvgt-news/notifier"
	"tvgt-news/wordpress"
)

// Deliverer performs one best-effort webhook delivery.
type Deliverer interface {
	Dispatch(ctx context.Context, p notifier.Payload) bool
}

// NewPostEvent is the inbound publish-trigger body. The CMS webhook
// has no enforced schema, so the event is coerced into the post shape
// here at the boundary and validated before anything happens.
type NewPostEvent struct {
	wordpress.Post
	Status string `json:"status"`
}

// WebhookOutcome tells the handler what happened with one inbound
// event. Skipped and Delivered are mutually exclusive: a skipped event
// never reached the dispatcher.
type WebhookOutcome struct {
	Skipped   bool
	Reason    string
	Delivered bool
	Payload   notifier.Payload
}

// WebhookService gates inbound publish events and hands eligible ones
// to the dispatcher. Only published posts whose category set includes
// the target slug produce a delivery.
type WebhookService struct {
	deliverer    Deliverer
	baseURL      string
	categorySlug string
}

func NewWebhookService(deliverer Deliverer, baseURL, categorySlug string) *WebhookService {
	return &WebhookService{
		deliverer:    deliverer,
		baseURL:      baseURL,
		categorySlug: categorySlug,
	}
}

// HandleNewPost validates and gates one inbound event, then builds
// and dispatches the notification payload.
func (s *WebhookService) HandleNewPost(ctx context.Context, event NewPostEvent) WebhookOutcome {
	if event.Slug == "" || event.Title == "" || event.Date == "" {
		logger.Log.Warnf("webhook: event rejected, missing required fields (slug=%q)", event.Slug)
		return WebhookOutcome{Skipped: true, Reason: "el evento no tiene los campos requeridos"}
	}

	if !s.inTargetCategory(event) {
		return WebhookOutcome{Skipped: true, Reason: "el post no pertenece a la categoría objetivo"}
	}

	if event.Status != "publish" {
		return WebhookOutcome{Skipped: true, Reason: "el post no está publicado"}
	}

	payload := notifier.BuildPayload(event.Post, s.baseURL)
	delivered := s.deliverer.Dispatch(ctx, payload)
	return WebhookOutcome{Delivered: delivered, Payload: payload}
}

// TestDispatch fires a canned payload so the delivery path can be
// checked end to end without publishing a post.
func (s *WebhookService) TestDispatch(ctx context.Context) (notifier.Payload, bool) {
	payload := notifier.Payload{
		Title:    "Noticia de Prueba - TVGT USA",
		Excerpt:  "Esta es una noticia de prueba para verificar que el webhook funciona correctamente.",
		URL:      s.baseURL + "/noticias/noticia-de-prueba",
		ImageURL: s.baseURL + "/images/test-image.jpg",
		Category: "Noticias",
		Author:   "Equipo TVGT USA",
		Date:     "2024-01-01T00:00:00",
		SiteName: notifier.SiteName,
	}
	return payload, s.deliverer.Dispatch(ctx, payload)
}

func (s *WebhookService) inTargetCategory(event NewPostEvent) bool {
	for _, c := range event.Categories.Nodes {
		if c.Slug == s.categorySlug {
			return true
		}
	}
	return false
}

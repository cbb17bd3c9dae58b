package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tvgt-news/cmd/api/services"
	"tvgt-news/internal/logger"
)

// NewPostWebhookHandler godoc
// @Summary      Publish trigger
// @Description  Receives the CMS publish event and forwards eligible posts to the automation webhook
// @Tags         webhook
// @Accept       json
// @Produce      json
// @Success      200  {object}  object{message=string}
// @Failure      400  {object}  object{error=string}
// @Failure      401  {object}  object{error=string}
// @Failure      500  {object}  object{error=string}
// @Router       /webhook/new-post [post]
func NewPostWebhookHandler(svc *services.WebhookService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var event services.NewPostEvent
		if err := c.ShouldBindJSON(&event); err != nil {
			logger.Log.Warnf("webhook: malformed body: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "cuerpo inválido"})
			return
		}

		outcome := svc.HandleNewPost(c.Request.Context(), event)
		if outcome.Skipped {
			c.JSON(http.StatusOK, gin.H{
				"message": outcome.Reason,
				"skipped": true,
			})
			return
		}

		if !outcome.Delivered {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":  "error enviando webhook",
				"postId": event.ID,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "webhook enviado exitosamente",
			"postId":  event.ID,
			"title":   event.Title,
			"url":     outcome.Payload.URL,
		})
	}
}

// TestWebhookHandler godoc
// @Summary      Test the webhook delivery path
// @Description  Sends a canned payload to the configured webhook
// @Tags         webhook
// @Produce      json
// @Success      200  {object}  object{message=string,success=bool}
// @Router       /webhook/new-post [get]
func TestWebhookHandler(svc *services.WebhookService) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, delivered := svc.TestDispatch(c.Request.Context())

		message := "webhook de prueba enviado exitosamente"
		if !delivered {
			message = "error enviando webhook de prueba"
		}
		c.JSON(http.StatusOK, gin.H{
			"message":  message,
			"testData": payload,
			"success":  delivered,
		})
	}
}

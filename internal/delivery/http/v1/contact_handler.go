package v1

import (
	"context"
	"errors"
	"net/http"

	"portfolio-site/internal/delivery/http/response"
	"portfolio-site/internal/domain"
	"portfolio-site/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const (
	msgSent           = "Message sent successfully"
	msgFailedToSend   = "Failed to send message"
	msgInvalidRequest = "Invalid request body"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(api *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	api.POST("/sendtodiscord", handler.SendToDiscord)
}

// SendToDiscord godoc
// @Summary      Submit Contact Form
// @Description  Forwards a contact form submission to the configured Discord webhook.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        submission  body      domain.Submission  true  "Contact Form Data"
// @Success      200         {object}  response.MessageResponse
// @Failure      400         {object}  response.ErrorResponse
// @Failure      500         {object}  response.ErrorResponse
// @Router       /sendtodiscord [post]
func (h *ContactHandler) SendToDiscord(c *gin.Context) {
	var req domain.Submission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(msgInvalidRequest))
		return
	}

	// A submission cannot be aborted once accepted, so the outbound call
	// is not tied to the lifetime of the inbound connection.
	ctx := context.WithoutCancel(c.Request.Context())

	if err := h.contactUC.SendContactMessage(ctx, &req); err != nil {
		if errors.Is(err, domain.ErrWebhookNotConfigured) {
			c.Error(apperror.Internal(err))
			return
		}
		c.Error(apperror.New(http.StatusInternalServerError, msgFailedToSend, err))
		return
	}

	response.Message(c, http.StatusOK, msgSent)
}

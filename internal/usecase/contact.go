package usecase

import (
	"context"
	"errors"
	"fmt"

	"portfolio-site/internal/domain"
	"portfolio-site/pkg/discord"
	"portfolio-site/pkg/logger"
	"portfolio-site/pkg/metrics"
)

// WebhookSender delivers a payload to a webhook URL.
type WebhookSender interface {
	Send(ctx context.Context, webhookURL string, payload discord.Payload) error
}

type contactUsecase struct {
	sender     WebhookSender
	webhookURL string
}

// NewContactUsecase creates a new contact usecase.
// An empty webhookURL is accepted; every submission then fails with
// domain.ErrWebhookNotConfigured.
func NewContactUsecase(sender WebhookSender, webhookURL string) domain.ContactUsecase {
	return &contactUsecase{
		sender:     sender,
		webhookURL: webhookURL,
	}
}

// SendContactMessage forwards the submission to the webhook in a single attempt
func (uc *contactUsecase) SendContactMessage(ctx context.Context, sub *domain.Submission) error {
	log := logger.Log.With("request_id", ctx.Value(domain.KeyRequestID))

	if uc.webhookURL == "" {
		log.Error("Discord webhook URL is not set in environment variables")
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeNotConfigured).Inc()
		return domain.ErrWebhookNotConfigured
	}

	payload := discord.NewContactPayload(*sub)
	if err := uc.sender.Send(ctx, uc.webhookURL, payload); err != nil {
		log.Error("Error sending message to Discord", "error", err)
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeFailed).Inc()
		if !errors.Is(err, domain.ErrDeliveryFailed) {
			err = fmt.Errorf("%w: %w", domain.ErrDeliveryFailed, err)
		}
		return err
	}

	log.Info("Contact message delivered to Discord")
	metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeDelivered).Inc()
	return nil
}

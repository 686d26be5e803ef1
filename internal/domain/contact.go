package domain

import (
	"context"
	"errors"
)

var (
	// ErrWebhookNotConfigured is returned when no destination webhook URL is set.
	ErrWebhookNotConfigured = errors.New("discord webhook url is not configured")
	// ErrDeliveryFailed wraps every failure of the outbound webhook call.
	ErrDeliveryFailed = errors.New("failed to deliver message to discord")
)

// Submission represents a contact form submission.
// It only lives for the duration of one request and is never stored.
type Submission struct {
	Name    string `json:"name" example:"Steve"`
	Email   string `json:"email" example:"steve@example.com"`
	Message string `json:"message" example:"I need a custom plugin for my server."`
}

// FormState is the client-side state of the contact form.
type FormState struct {
	Name         string
	Email        string
	Message      string
	IsSubmitting bool
}

// Submission returns the fields of the form as a Submission.
func (s FormState) Submission() Submission {
	return Submission{Name: s.Name, Email: s.Email, Message: s.Message}
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage forwards a submission to the configured webhook
	SendContactMessage(ctx context.Context, sub *Submission) error
}

// Package contactform drives the contact form from the visitor's side:
// it owns the field values, submits them to the site and reports the
// outcome through notifications.
package contactform

import (
	"context"
	"fmt"
	"sync"

	"portfolio-site/internal/domain"
	"portfolio-site/pkg/logger"
)

// StatusError is returned by Submit when the site answers with a non-2xx status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to send message: status %d", e.StatusCode)
}

// Controller owns the form state. It is safe for concurrent use, but it
// does not reject a Submit while another one is in flight: IsSubmitting
// only reports that a request is pending.
type Controller struct {
	mu       sync.Mutex
	state    domain.FormState
	poster   Poster
	notifier Notifier
}

func NewController(poster Poster, notifier Notifier) *Controller {
	return &Controller{
		poster:   poster,
		notifier: notifier,
	}
}

func (c *Controller) SetName(v string) {
	c.mu.Lock()
	c.state.Name = v
	c.mu.Unlock()
}

func (c *Controller) SetEmail(v string) {
	c.mu.Lock()
	c.state.Email = v
	c.mu.Unlock()
}

func (c *Controller) SetMessage(v string) {
	c.mu.Lock()
	c.state.Message = v
	c.mu.Unlock()
}

// State returns a snapshot of the form.
func (c *Controller) State() domain.FormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit sends the current fields. On success a success notification is
// shown and the fields are cleared; on any failure a failure notification
// is shown and the fields are kept. IsSubmitting is reset on every path.
func (c *Controller) Submit(ctx context.Context) error {
	sub := c.begin()
	defer c.finish()

	status, err := c.poster.Post(ctx, sub)
	if err == nil && (status < 200 || status > 299) {
		err = &StatusError{StatusCode: status}
	}
	if err != nil {
		logger.Log.Error("Error sending message", "error", err)
		c.notifier.Notify(newNotification(KindError, failureText))
		return err
	}

	c.notifier.Notify(newNotification(KindSuccess, successText))
	c.clear()
	return nil
}

func (c *Controller) begin() domain.Submission {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.IsSubmitting = true
	return c.state.Submission()
}

func (c *Controller) finish() {
	c.mu.Lock()
	c.state.IsSubmitting = false
	c.mu.Unlock()
}

func (c *Controller) clear() {
	c.mu.Lock()
	c.state.Name, c.state.Email, c.state.Message = "", "", ""
	c.mu.Unlock()
}

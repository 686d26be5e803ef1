package contactform

import "time"

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

const (
	successText = "Message sent successfully!"
	failureText = "Failed to send message. Please try again."
)

// Notification is a transient, dismissible toast.
type Notification struct {
	Kind            Kind
	Text            string
	Position        string
	AutoClose       time.Duration
	HideProgressBar bool
	CloseOnClick    bool
	PauseOnHover    bool
	Draggable       bool
}

func newNotification(kind Kind, text string) Notification {
	return Notification{
		Kind:         kind,
		Text:         text,
		Position:     "top-right",
		AutoClose:    3 * time.Second,
		CloseOnClick: true,
		PauseOnHover: true,
		Draggable:    true,
	}
}

// Notifier displays notifications to the visitor.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

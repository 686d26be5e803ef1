package contactform_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-site/internal/contactform"
	"portfolio-site/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePoster records what was sent and how the form looked while in flight.
type fakePoster struct {
	form     *contactform.Controller
	status   int
	err      error
	panicked bool
	sent     []domain.Submission
	inFlight []bool
}

func (p *fakePoster) Post(ctx context.Context, sub domain.Submission) (int, error) {
	p.sent = append(p.sent, sub)
	p.inFlight = append(p.inFlight, p.form.State().IsSubmitting)
	if p.panicked {
		panic("boom")
	}
	return p.status, p.err
}

type recorder struct {
	got []contactform.Notification
}

func (r *recorder) Notify(n contactform.Notification) { r.got = append(r.got, n) }

func newForm(poster *fakePoster) (*contactform.Controller, *recorder) {
	rec := &recorder{}
	form := contactform.NewController(poster, rec)
	poster.form = form
	form.SetName("Steve")
	form.SetEmail("steve@example.com")
	form.SetMessage("I need a plugin")
	return form, rec
}

func TestSubmit(t *testing.T) {
	t.Run("Should clear fields and notify success once", func(t *testing.T) {
		poster := &fakePoster{status: http.StatusOK}
		form, rec := newForm(poster)

		err := form.Submit(context.Background())
		require.NoError(t, err)

		assert.Equal(t, []domain.Submission{{Name: "Steve", Email: "steve@example.com", Message: "I need a plugin"}}, poster.sent)
		assert.Equal(t, domain.FormState{}, form.State())
		require.Len(t, rec.got, 1)
		assert.Equal(t, contactform.KindSuccess, rec.got[0].Kind)
		assert.Equal(t, "Message sent successfully!", rec.got[0].Text)
		assert.Equal(t, 3*time.Second, rec.got[0].AutoClose)
		assert.True(t, rec.got[0].CloseOnClick)
	})

	t.Run("Should keep fields and notify failure on error status", func(t *testing.T) {
		poster := &fakePoster{status: http.StatusInternalServerError}
		form, rec := newForm(poster)

		err := form.Submit(context.Background())

		var statusErr *contactform.StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
		assert.Equal(t, domain.FormState{Name: "Steve", Email: "steve@example.com", Message: "I need a plugin"}, form.State())
		require.Len(t, rec.got, 1)
		assert.Equal(t, contactform.KindError, rec.got[0].Kind)
		assert.Equal(t, "Failed to send message. Please try again.", rec.got[0].Text)
	})

	t.Run("Should keep fields and notify failure on network error", func(t *testing.T) {
		poster := &fakePoster{err: errors.New("connection refused")}
		form, rec := newForm(poster)

		err := form.Submit(context.Background())

		assert.Error(t, err)
		assert.False(t, form.State().IsSubmitting)
		assert.Equal(t, "Steve", form.State().Name)
		require.Len(t, rec.got, 1)
		assert.Equal(t, contactform.KindError, rec.got[0].Kind)
	})

	t.Run("Should flag submission only while the request is in flight", func(t *testing.T) {
		for _, poster := range []*fakePoster{{status: http.StatusOK}, {status: http.StatusBadGateway}, {err: errors.New("dns")}} {
			form, _ := newForm(poster)
			assert.False(t, form.State().IsSubmitting)

			_ = form.Submit(context.Background())

			assert.Equal(t, []bool{true}, poster.inFlight)
			assert.False(t, form.State().IsSubmitting)
		}
	})

	t.Run("Should reset the flag even when posting panics", func(t *testing.T) {
		poster := &fakePoster{panicked: true}
		form, _ := newForm(poster)

		assert.Panics(t, func() { _ = form.Submit(context.Background()) })
		assert.False(t, form.State().IsSubmitting)
	})
}

func TestHTTPPoster(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, contactform.SubmitPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var sub domain.Submission
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sub))
		assert.Equal(t, "Steve", sub.Name)

		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	status, err := contactform.NewHTTPPoster(srv.URL+"/", nil).Post(context.Background(), domain.Submission{Name: "Steve"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, status)
}

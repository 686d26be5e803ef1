package discord_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"portfolio-site/internal/domain"
	"portfolio-site/pkg/discord"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sub = domain.Submission{Name: "Steve", Email: "steve@example.com", Message: "Hello"}

func TestNewContactPayload(t *testing.T) {
	p := discord.NewContactPayload(sub)

	require.Len(t, p.Embeds, 1)
	embed := p.Embeds[0]
	assert.Equal(t, "New Contact Form Submission", embed.Title)
	assert.Equal(t, 0x00ff00, embed.Color)
	assert.Equal(t, []discord.Field{
		{Name: "Name", Value: "Steve"},
		{Name: "Email", Value: "steve@example.com"},
		{Name: "Message", Value: "Hello"},
	}, embed.Fields)
}

func TestClientSend(t *testing.T) {
	t.Run("Should post JSON payload once and succeed on 2xx", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string][]map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Len(t, body["embeds"], 1)
			assert.Equal(t, "New Contact Form Submission", body["embeds"][0]["title"])
			assert.EqualValues(t, 65280, body["embeds"][0]["color"])

			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		c := discord.NewClient(time.Second)
		err := c.Send(context.Background(), srv.URL, discord.NewContactPayload(sub))
		assert.NoError(t, err)
		assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
	})

	t.Run("Should return StatusError on non-2xx without retrying", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		err := discord.NewClient(time.Second).Send(context.Background(), srv.URL, discord.NewContactPayload(sub))

		var statusErr *discord.StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
		assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
		assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
	})

	t.Run("Should wrap transport errors as delivery failures", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		err := discord.NewClient(time.Second).Send(context.Background(), url, discord.NewContactPayload(sub))
		assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
	})

	t.Run("Should give up after the timeout", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer srv.Close()
		defer close(release)

		err := discord.NewClient(50*time.Millisecond).Send(context.Background(), srv.URL, discord.NewContactPayload(sub))
		assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
	})
}

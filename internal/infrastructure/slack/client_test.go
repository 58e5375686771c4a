package slack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "art/internal/shared/config"
	"art/internal/shared/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(sharedConfig.SlackConfig{
		BaseURL:        srv.URL,
		BotToken:       "xoxb-test",
		TimeoutSeconds: 2,
	}, logger.NewDiscardLogger())
}

func TestClient_PostMessage(t *testing.T) {
	var got postMessageRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat.postMessage", r.URL.Path)
		assert.Equal(t, "Bearer xoxb-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	require.NoError(t, client.PostMessage(context.Background(), "#it-assets", "low stock"))
	assert.Equal(t, "#it-assets", got.Channel)
	assert.Equal(t, "low stock", got.Text)
}

func TestClient_PostMessageAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":false,"error":"channel_not_found"}`))
	})

	err := client.PostMessage(context.Background(), "#missing", "hi")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "channel_not_found", apiErr.Code)
}

func TestClient_DirectMessage(t *testing.T) {
	var channel string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users.lookupByEmail":
			assert.Equal(t, "jane@example.com", r.URL.Query().Get("email"))
			_, _ = w.Write([]byte(`{"ok":true,"user":{"id":"U123"}}`))
		case "/chat.postMessage":
			var body postMessageRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			channel = body.Channel
			_, _ = w.Write([]byte(`{"ok":true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	require.NoError(t, client.DirectMessage(context.Background(), "jane@example.com", "IC001 allocated"))
	assert.Equal(t, "U123", channel)
}

func TestClient_DirectMessageUnknownUser(t *testing.T) {
	posted := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/chat.postMessage" {
			posted = true
		}
		_, _ = w.Write([]byte(`{"ok":false,"error":"users_not_found"}`))
	})

	err := client.DirectMessage(context.Background(), "ghost@example.com", "hi")
	require.Error(t, err)
	assert.False(t, posted)
}

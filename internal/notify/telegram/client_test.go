package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/appointment-relay/internal/notify"
)

const testToken = "123456:SECRET-token"

func TestClientSend_OK(t *testing.T) {
	var got sendMessageRequest
	var path string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":7}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second)
	err := c.Send(context.Background(), notify.Message{
		ChatID:   "-1001",
		BotToken: testToken,
		Text:     "hello",
	})

	require.NoError(t, err)
	assert.Equal(t, "/bot"+testToken+"/sendMessage", path)
	assert.Equal(t, "-1001", got.ChatID)
	assert.Equal(t, "hello", got.Text)
	assert.Equal(t, "Markdown", got.ParseMode)
}

func TestClientSend_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"api rejects", http.StatusBadRequest, `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`},
		{"ok false with 200", http.StatusOK, `{"ok":false,"description":"weird"}`},
		{"malformed body", http.StatusOK, `<html>gateway</html>`},
		{"server error", http.StatusInternalServerError, `{"ok":false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := NewClient(srv.URL, time.Second).Send(context.Background(), notify.Message{
				ChatID: "1", BotToken: testToken, Text: "x",
			})
			require.Error(t, err)
			assert.NotContains(t, err.Error(), testToken)
		})
	}
}

func TestClientSend_NetworkErrorHidesToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	err := NewClient(base, time.Second).Send(context.Background(), notify.Message{
		ChatID: "1", BotToken: testToken, Text: "x",
	})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), testToken)
}

func TestClientSend_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	err := NewClient(srv.URL, 50*time.Millisecond).Send(context.Background(), notify.Message{
		ChatID: "1", BotToken: testToken, Text: "x",
	})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), testToken)
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	assert.Equal(t, DefaultBaseURL, NewClient("  ", time.Second).baseURL)
}

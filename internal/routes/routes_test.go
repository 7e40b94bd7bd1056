package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/appointment-relay/internal/config"
	"github.com/BruksfildServices01/appointment-relay/internal/httpresp"
	"github.com/BruksfildServices01/appointment-relay/internal/locale"
	"github.com/BruksfildServices01/appointment-relay/internal/notify"
	"github.com/BruksfildServices01/appointment-relay/internal/notify/telegram"
)

type recordingSink struct {
	mu    sync.Mutex
	texts []string
	err   error
}

func (s *recordingSink) Send(ctx context.Context, msg notify.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts = append(s.texts, msg.Text)
	return s.err
}

func (s *recordingSink) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.texts)
}

var configured = config.StaticTelegramSource{BotToken: "123:abc", ChatID: "-100"}

func newRouter(t *testing.T, sink notify.Sink, tg config.TelegramSource, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if cfg == nil {
		cfg = &config.Config{}
	}
	r := gin.New()
	RegisterRoutes(r, Deps{
		Config:   cfg,
		Sink:     sink,
		Telegram: tg,
		Registry: prometheus.NewRegistry(),
	})
	return r
}

func postBook(t *testing.T, r http.Handler, body any) (int, httpresp.Result) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/book", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var res httpresp.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	return w.Code, res
}

func aliHassan() map[string]string {
	return map[string]string{
		"fullName": "Ali Hassan",
		"phone":    "0555123456",
		"date":     "2025-06-01",
		"time":     "10:00",
		"service":  "haircut",
		"notes":    "",
	}
}

func TestBook_Delivered(t *testing.T) {
	sink := &recordingSink{}
	r := newRouter(t, sink, configured, nil)

	code, res := postBook(t, r, aliHassan())

	assert.Equal(t, http.StatusOK, code)
	assert.True(t, res.Success)
	assert.Equal(t, locale.BookingConfirmed, res.Message)

	require.Equal(t, 1, sink.calls())
	text := sink.texts[0]
	for _, want := range []string{"Ali Hassan", "0555123456", "2025-06-01", "10:00", "haircut"} {
		assert.Contains(t, text, want)
	}
	assert.NotContains(t, text, locale.LabelNotes)
}

func TestBook_MissingPhone(t *testing.T) {
	sink := &recordingSink{}
	r := newRouter(t, sink, configured, nil)

	body := aliHassan()
	delete(body, "phone")
	code, res := postBook(t, r, body)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, res.Success)
	assert.Equal(t, locale.PhoneRequired, res.Message)
	assert.Equal(t, 0, sink.calls())
}

func TestBook_SinkNetworkError(t *testing.T) {
	sink := &recordingSink{err: errors.New("dial tcp: i/o timeout")}
	r := newRouter(t, sink, configured, nil)

	code, res := postBook(t, r, aliHassan())

	assert.Equal(t, http.StatusBadGateway, code)
	assert.False(t, res.Success)
	assert.Equal(t, locale.BookingFailed, res.Message)
	assert.Equal(t, 1, sink.calls())
}

func TestBook_ConfigurationMissing(t *testing.T) {
	sink := &recordingSink{}
	r := newRouter(t, sink, config.StaticTelegramSource{BotToken: "123:abc"}, nil)

	code, res := postBook(t, r, aliHassan())

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.False(t, res.Success)
	assert.Equal(t, locale.ServerMisconfigured, res.Message)
	assert.Equal(t, 0, sink.calls())
}

func TestBook_ValidationBeforeConfiguration(t *testing.T) {
	r := newRouter(t, &recordingSink{}, config.StaticTelegramSource{}, nil)

	body := aliHassan()
	body["service"] = "  "
	code, res := postBook(t, r, body)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, locale.ServiceRequired, res.Message)
}

func TestBook_MalformedBody(t *testing.T) {
	sink := &recordingSink{}
	r := newRouter(t, sink, configured, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/book", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var res httpresp.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, locale.InvalidRequest, res.Message)
	assert.Equal(t, 0, sink.calls())
}

func TestBook_PanicInSinkIsContained(t *testing.T) {
	r := newRouter(t, notify.SinkFunc(func(ctx context.Context, msg notify.Message) error {
		panic("sink exploded")
	}), configured, nil)

	code, res := postBook(t, r, aliHassan())

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.False(t, res.Success)
	assert.Equal(t, locale.BookingFailed, res.Message)
}

func TestBook_ThroughTelegramClient(t *testing.T) {
	var gotText string
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var payload struct {
			ChatID string `json:"chat_id"`
			Text   string `json:"text"`
		}
		_ = json.NewDecoder(req.Body).Decode(&payload)
		gotText = payload.Text
		assert.Equal(t, "-100", payload.ChatID)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer api.Close()

	body := aliHassan()
	body["notes"] = "first visit"
	r := newRouter(t, telegram.NewClient(api.URL, time.Second), configured, nil)
	code, res := postBook(t, r, body)

	assert.Equal(t, http.StatusOK, code)
	assert.True(t, res.Success)
	assert.Contains(t, gotText, locale.LabelNotes+" first visit")
}

func TestHealth(t *testing.T) {
	r := newRouter(t, &recordingSink{}, config.StaticTelegramSource{}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"OK","message":"`+locale.HealthOK+`"}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	r := newRouter(t, &recordingSink{}, configured, nil)
	postBook(t, r, aliHassan())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `booking_relay_submissions_total{result="delivered"} 1`)
}

func TestStaticForm(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<form id=appointmentForm>"), 0o600))

	r := newRouter(t, &recordingSink{}, configured, &config.Config{StaticDir: dir})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "appointmentForm")
}

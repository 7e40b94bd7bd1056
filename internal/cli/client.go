package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/appointment-relay/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-relay/internal/httpresp"
)

// BookingClient submits bookings to a running relay server.
type BookingClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewBookingClient(baseURL string, timeout time.Duration) *BookingClient {
	return &BookingClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Book posts s to /api/book and decodes the server's envelope, whatever the
// HTTP status.
func (c *BookingClient) Book(ctx context.Context, s domain.Submission) (httpresp.Result, error) {
	body, err := json.Marshal(s)
	if err != nil {
		return httpresp.Result{}, fmt.Errorf("encoding booking: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/book", bytes.NewReader(body))
	if err != nil {
		return httpresp.Result{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return httpresp.Result{}, fmt.Errorf("calling booking server: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return httpresp.Result{}, fmt.Errorf("reading response: %w", err)
	}

	var res httpresp.Result
	if err := json.Unmarshal(raw, &res); err != nil {
		return httpresp.Result{}, fmt.Errorf("parsing response (status=%d): %w", resp.StatusCode, err)
	}
	return res, nil
}

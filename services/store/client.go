// File: services/store/client.go
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"labreserve/models"

	"go.uber.org/zap"
)

// ErrUnexpectedStatus is returned for any reply other than 200.
var ErrUnexpectedStatus = errors.New("store: unexpected status")

// Client talks to the remote reservation endpoint. The endpoint lists on GET and
// appends on POST, both at the base URL. Failures are returned to the caller and only
// traced at debug level here.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	// Timeout bounds each call on top of the caller's context; zero disables it.
	Timeout time.Duration
	Logger  *zap.Logger
}

// NewClient returns a client for baseURL.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		BaseURL: baseURL,
		HTTP:    http.DefaultClient,
		Timeout: timeout,
		Logger:  logger,
	}
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.Timeout)
}

// List fetches every stored reservation.
func (c *Client) List(ctx context.Context) ([]models.Reservation, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build list request: %w", err)
	}

	var list []models.Reservation
	if err := c.do(req, &list); err != nil {
		c.Logger.Debug("Store list call failed", zap.String("url", c.BaseURL), zap.Error(err))
		return nil, err
	}
	return list, nil
}

// Append stores r and returns the record as the endpoint saved it.
func (c *Client) Append(ctx context.Context, r models.Reservation) (models.Reservation, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	body, err := json.Marshal(r)
	if err != nil {
		return models.Reservation{}, fmt.Errorf("encode reservation: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(body))
	if err != nil {
		return models.Reservation{}, fmt.Errorf("build append request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var saved models.Reservation
	if err := c.do(req, &saved); err != nil {
		c.Logger.Debug("Store append call failed",
			zap.String("url", c.BaseURL),
			zap.String("date", r.Date),
			zap.String("equipment", r.Equipment),
			zap.Error(err),
		)
		return models.Reservation{}, err
	}
	return saved, nil
}

// do sends req and decodes a 200 reply into out.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: %s %s returned %d", ErrUnexpectedStatus, req.Method, req.URL, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", req.Method, req.URL, err)
	}
	return nil
}

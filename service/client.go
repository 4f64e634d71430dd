package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"theater-tickets-cli/model"
)

const (
	defaultBaseURL = "http://localhost:8080"
	defaultTimeout = 12 * time.Second
)

// Client wraps HTTP access to the theater ticketing API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// APIError is returned when the API responds with a non-2xx status. Message
// holds the server's own error text when the payload carried one.
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
	Message    string
}

func (e *APIError) Error() string {
	if e == nil {
		return "theater api error"
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("theater api error: %s", e.Status)
}

// IsNotFound reports whether the error represents a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// ServerMessage extracts the server-provided error text, if any. Booking
// rejections surface this text verbatim to the user.
func ServerMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}

// NewClient creates a new API client. If httpClient is nil, a default client
// is used; if baseURL is empty, the local development server is assumed.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// GetPlays fetches the full repertoire with embedded performances.
func (c *Client) GetPlays(ctx context.Context) ([]model.Play, error) {
	endpoint := fmt.Sprintf("%s/api/plays", c.baseURL)

	var plays []model.Play
	if err := c.getJSON(ctx, endpoint, &plays); err != nil {
		return nil, err
	}
	return plays, nil
}

// GetPlay fetches one play by id, with its performance schedule.
func (c *Client) GetPlay(ctx context.Context, id uuid.UUID) (model.Play, error) {
	endpoint := fmt.Sprintf("%s/api/plays/%s", c.baseURL, id)

	var play model.Play
	if err := c.getJSON(ctx, endpoint, &play); err != nil {
		return model.Play{}, err
	}
	return play, nil
}

// GetPerformance fetches one performance, with its play embedded.
func (c *Client) GetPerformance(ctx context.Context, id uuid.UUID) (model.Performance, error) {
	endpoint := fmt.Sprintf("%s/api/performances/%s", c.baseURL, id)

	var performance model.Performance
	if err := c.getJSON(ctx, endpoint, &performance); err != nil {
		return model.Performance{}, err
	}
	return performance, nil
}

// GetPerformanceSeats fetches the seat availability list for a performance.
// Statuses are a snapshot; they may be stale by the time a booking is
// submitted.
func (c *Client) GetPerformanceSeats(ctx context.Context, id uuid.UUID) ([]model.PerformanceSeat, error) {
	endpoint := fmt.Sprintf("%s/api/performances/%s/seats", c.baseURL, id)

	var seats []model.PerformanceSeat
	if err := c.getJSON(ctx, endpoint, &seats); err != nil {
		return nil, err
	}
	return seats, nil
}

// GetBookings fetches the bookings registered for a phone number.
func (c *Client) GetBookings(ctx context.Context, phone string) ([]model.Booking, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, errors.New("phone is required")
	}
	query := url.Values{"phone": {phone}}
	endpoint := fmt.Sprintf("%s/api/bookings?%s", c.baseURL, query.Encode())

	var bookings []model.Booking
	if err := c.getJSON(ctx, endpoint, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

type createBookingRequest struct {
	Phone         string      `json:"phone"`
	Name          string      `json:"name"`
	PerformanceId uuid.UUID   `json:"performance_id"`
	SeatIds       []uuid.UUID `json:"seat_ids"`
}

// CreateBooking submits a booking for the staged seats. The caller validates
// its inputs interactively; the checks here are the last line before the
// wire.
func (c *Client) CreateBooking(ctx context.Context, phone, name string, performanceId uuid.UUID, seatIds []uuid.UUID) (model.Booking, error) {
	phone = strings.TrimSpace(phone)
	name = strings.TrimSpace(name)
	if phone == "" || name == "" {
		return model.Booking{}, errors.New("phone and name are required")
	}
	if len(seatIds) == 0 {
		return model.Booking{}, errors.New("at least one seat must be selected")
	}
	endpoint := fmt.Sprintf("%s/api/bookings", c.baseURL)

	var booking model.Booking
	req := createBookingRequest{
		Phone:         phone,
		Name:          name,
		PerformanceId: performanceId,
		SeatIds:       seatIds,
	}
	if err := c.doJSON(ctx, http.MethodPost, endpoint, req, &booking); err != nil {
		return model.Booking{}, err
	}
	return booking, nil
}

// CancelBooking cancels a pending booking and returns its updated snapshot.
func (c *Client) CancelBooking(ctx context.Context, id uuid.UUID) (model.Booking, error) {
	endpoint := fmt.Sprintf("%s/api/bookings/%s/cancel", c.baseURL, id)

	var booking model.Booking
	if err := c.doJSON(ctx, http.MethodPatch, endpoint, nil, &booking); err != nil {
		return model.Booking{}, err
	}
	return booking, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	return c.doJSON(ctx, http.MethodGet, endpoint, nil, out)
}

// doJSON issues a single request. Failures are not retried: a rejected
// booking means seat state moved underneath us, and the user decides what
// happens next.
func (c *Client) doJSON(ctx context.Context, method, endpoint string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 8<<10))
		return &APIError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Endpoint:   endpoint,
			Message:    serverErrorText(snippet),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode response from %s: %w", endpoint, err)
	}
	return nil
}

// serverErrorText pulls the message out of an {"error": "..."} payload,
// falling back to the raw snippet.
func serverErrorText(snippet []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(snippet, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(snippet))
}

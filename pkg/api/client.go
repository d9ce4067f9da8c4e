package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/Jayesh-JainX/Meeting-Dashboard/pkg/models"
	"github.com/google/uuid"
)

// csrfCookieName is the anti-forgery cookie the server sets; its value is
// echoed back as the csrfHeaderName header on every mutating request.
const (
	csrfCookieName = "csrftoken"
	csrfHeaderName = "X-CSRFToken"
)

// Client talks to the REST persistence and authentication service. Session
// credentials ride on a cookie jar, so one Client represents one logical
// session.
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

// NewClient creates a client for the service at baseURL
func NewClient(baseURL string) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", baseURL, err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		baseURL: u,
		http:    &http.Client{Jar: jar},
	}, nil
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
	UserID   int    `json:"user_id"`
}

// Login exchanges credentials with the authentication endpoint. The session
// cookie is captured by the jar on success. A 400-class rejection maps to
// ErrInvalidCredentials; anything else is a transport failure.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var out loginResponse
	err := c.do(ctx, http.MethodPost, "/api/login/", credentials{username, password}, &out)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.StatusCode >= 400 && se.StatusCode < 500 {
			return ErrInvalidCredentials
		}
		var ve *ValidationError
		if errors.As(err, &ve) {
			return ErrInvalidCredentials
		}
		return err
	}
	if out.Message != "Login successful" {
		return ErrInvalidCredentials
	}
	return nil
}

// Logout asks the server to terminate the session
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/logout/", nil, nil)
}

// Register creates a new user account. Field-keyed rejections surface as a
// *ValidationError.
func (c *Client) Register(ctx context.Context, username, password string) error {
	return c.do(ctx, http.MethodPost, "/api/register/", credentials{username, password}, nil)
}

// meetingPayload is the create/update body: the full record minus the
// server-assigned id
type meetingPayload struct {
	Agenda        string        `json:"agenda"`
	Status        models.Status `json:"status"`
	DateOfMeeting string        `json:"date_of_meeting"`
	StartTime     string        `json:"start_time"`
	MeetingURL    string        `json:"meeting_url"`
}

func payloadFromDraft(draft models.MeetingDraft) meetingPayload {
	record := draft.Record()
	return meetingPayload{
		Agenda:        record.Agenda,
		Status:        record.Status,
		DateOfMeeting: record.DateOfMeeting,
		StartTime:     record.StartTime,
		MeetingURL:    record.MeetingURL,
	}
}

// ListMeetings fetches the full meeting collection in server order
func (c *Client) ListMeetings(ctx context.Context) ([]models.Meeting, error) {
	var meetings []models.Meeting
	if err := c.do(ctx, http.MethodGet, "/api/meetings/", nil, &meetings); err != nil {
		return nil, err
	}
	return meetings, nil
}

// GetMeeting fetches one record by id. A missing id yields ErrNotFound.
func (c *Client) GetMeeting(ctx context.Context, id int) (models.Meeting, error) {
	var meeting models.Meeting
	path := fmt.Sprintf("/api/meetings/%d/", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &meeting); err != nil {
		return models.Meeting{}, err
	}
	return meeting, nil
}

// CreateMeeting sends a new record; the server assigns the id
func (c *Client) CreateMeeting(ctx context.Context, draft models.MeetingDraft) (models.Meeting, error) {
	var meeting models.Meeting
	if err := c.do(ctx, http.MethodPost, "/api/meetings/", payloadFromDraft(draft), &meeting); err != nil {
		return models.Meeting{}, err
	}
	return meeting, nil
}

// UpdateMeeting sends the full record, not a partial patch
func (c *Client) UpdateMeeting(ctx context.Context, id int, draft models.MeetingDraft) (models.Meeting, error) {
	var meeting models.Meeting
	path := fmt.Sprintf("/api/meetings/%d/", id)
	if err := c.do(ctx, http.MethodPut, path, payloadFromDraft(draft), &meeting); err != nil {
		return models.Meeting{}, err
	}
	return meeting, nil
}

// DeleteMeeting destroys one record by id
func (c *Client) DeleteMeeting(ctx context.Context, id int) error {
	path := fmt.Sprintf("/api/meetings/%d/", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// csrfToken reads the anti-forgery token the server set on our jar
func (c *Client) csrfToken() string {
	for _, cookie := range c.http.Jar.Cookies(c.baseURL) {
		if cookie.Name == csrfCookieName {
			return cookie.Value
		}
	}
	return ""
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if isMutating(method) {
		if token := c.csrfToken(); token != "" {
			req.Header.Set(csrfHeaderName, token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 400:
		return decodeError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// decodeError turns an error body into the richest error it supports:
// {"error": "..."} becomes a StatusError, a field-keyed object becomes a
// ValidationError, anything else keeps just the status code.
func decodeError(statusCode int, data []byte) error {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(data, &payload); err != nil || len(payload) == 0 {
		return &StatusError{StatusCode: statusCode}
	}

	if raw, ok := payload["error"]; ok {
		var message string
		if json.Unmarshal(raw, &message) == nil {
			return &StatusError{StatusCode: statusCode, Message: message}
		}
	}

	fields := make(map[string][]string, len(payload))
	for field, raw := range payload {
		var messages []string
		if json.Unmarshal(raw, &messages) == nil {
			fields[field] = messages
			continue
		}
		var message string
		if json.Unmarshal(raw, &message) == nil {
			fields[field] = []string{message}
			continue
		}
		fields[field] = []string{string(raw)}
	}
	return &ValidationError{Fields: fields}
}

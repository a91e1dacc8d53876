// Package api is the HTTP client for the CampusNav server, used by the CLI.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/campusnav/campusnav/internal/app/models"
	"github.com/campusnav/campusnav/internal/app/models/dto"
)

const defaultTimeout = 10 * time.Second

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	StatusCode int
	Code       dto.ErrorCode
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// Client talks to the CampusNav API. No retries; a failed call is reported
// to the user and local state is left alone.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given server base URL, e.g.
// "http://localhost:3001".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// Register creates an account and returns the issued session.
func (c *Client) Register(ctx context.Context, email, password, confirmPassword string) (*dto.AuthResponse, error) {
	req := dto.RegisterRequest{
		Email:           email,
		Password:        password,
		ConfirmPassword: confirmPassword,
	}
	var resp dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/register", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login authenticates and returns the issued session.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	req := dto.LoginRequest{
		Email:    email,
		Password: password,
	}
	var resp dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/login", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Buildings fetches the campus building catalog. Public, no token needed.
func (c *Client) Buildings(ctx context.Context) ([]models.Building, error) {
	var resp dto.BuildingsResponse
	if err := c.do(ctx, http.MethodGet, "/api/buildings", "", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Buildings, nil
}

// FetchSchedule returns the caller's stored schedule.
func (c *Client) FetchSchedule(ctx context.Context, token string) ([]models.Course, error) {
	var resp dto.ScheduleResponse
	if err := c.do(ctx, http.MethodGet, "/api/schedule", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Courses, nil
}

// ReplaceSchedule replaces the caller's stored schedule with the given draft.
func (c *Client) ReplaceSchedule(ctx context.Context, token string, req *dto.ReplaceScheduleRequest) error {
	var resp dto.SuccessResponse
	return c.do(ctx, http.MethodPost, "/api/schedule", token, req, &resp)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func decodeAPIError(status int, data []byte) error {
	var envelope dto.ErrorResponse
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Error != nil {
		return &APIError{
			StatusCode: status,
			Code:       envelope.Error.Code,
			Message:    envelope.Error.Message,
		}
	}
	return &APIError{StatusCode: status}
}

// Package api is the HTTP client for the bus booking backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"bustrip/internal/domain"
)

// cityCacheSize bounds how many distinct queries are kept
const cityCacheSize = 256

// Client talks to the booking API
type Client struct {
	baseURL string
	http    *http.Client
	token   func() string
	cities  *expirable.LRU[string, []domain.City]

	codeLength int
}

// Option configures a Client
type Option func(*Client)

// WithTokenSource adds a bearer token to every request when source
// returns a non-empty string
func WithTokenSource(source func() string) Option {
	return func(c *Client) { c.token = source }
}

// WithCityCache caches city lookups for ttl
func WithCityCache(ttl time.Duration) Option {
	return func(c *Client) {
		if ttl > 0 {
			c.cities = expirable.NewLRU[string, []domain.City](cityCacheSize, nil, ttl)
		}
	}
}

// WithCodeLength sets how many digits a verification code must have
func WithCodeLength(n int) Option {
	return func(c *Client) { c.codeLength = n }
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a client for baseURL, e.g. http://localhost:3000/api/v1
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},

		codeLength: 6,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// SearchCities looks up cities matching query
func (c *Client) SearchCities(ctx context.Context, query string) ([]domain.City, error) {
	key := strings.ToLower(strings.TrimSpace(query))
	if c.cities != nil {
		if cached, ok := c.cities.Get(key); ok {
			return cached, nil
		}
	}

	var resp envelope[[]domain.City]
	if err := c.do(ctx, http.MethodGet, "/city/search", url.Values{"query": {query}}, nil, &resp); err != nil {
		return nil, err
	}
	cities := resp.Data
	if cities == nil {
		cities = []domain.City{}
	}

	if c.cities != nil {
		c.cities.Add(key, cities)
	}
	return cities, nil
}

// SearchBuses finds buses for a route and date
func (c *Client) SearchBuses(ctx context.Context, req domain.BusSearchRequest) ([]domain.Bus, error) {
	var resp envelope[[]domain.Bus]
	q := url.Values{"from": {req.From}, "to": {req.To}, "date": {req.Date}}
	if err := c.do(ctx, http.MethodGet, "/bus/search", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Countries lists onboarding countries. The server answers with either an
// array or a single object.
func (c *Client) Countries(ctx context.Context) ([]domain.Country, error) {
	var resp envelope[json.RawMessage]
	if err := c.do(ctx, http.MethodGet, "/countries", nil, nil, &resp); err != nil {
		return nil, err
	}

	raw := bytes.TrimSpace(resp.Data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	if raw[0] == '[' {
		var list []domain.Country
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("failed to decode countries: %w", err)
		}
		return list, nil
	}
	var one domain.Country
	if err := json.Unmarshal(raw, &one); err != nil {
		return nil, fmt.Errorf("failed to decode country: %w", err)
	}
	return []domain.Country{one}, nil
}

// RegisterRequest creates an account
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6,max=16"`
}

// LoginRequest signs in with email and password
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=16"`
}

// VerifyOTPRequest confirms the emailed code
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,numeric"`
}

// ResendOTPRequest asks for a new code
type ResendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// StatusResponse is the generic {success, message} answer
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LoginResponse carries the token and account on success
type LoginResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    domain.User `json:"user"`
	Message string      `json:"message"`
}

// ResendOTPResponse says when another code may be requested
type ResendOTPResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	NextResendTime string `json:"nextResendTime,omitempty"`
	RemainingTime  int    `json:"remainingTime,omitempty"` // seconds
}

// Register creates an account; the server then emails a code
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*StatusResponse, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	var resp StatusResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &Error{StatusCode: http.StatusOK, Message: resp.Message, Path: "/auth/register"}
	}
	return &resp, nil
}

// Login signs in
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &Error{StatusCode: http.StatusOK, Message: resp.Message, Path: "/auth/login"}
	}
	return &resp, nil
}

// VerifyOTP checks the code sent to email
func (c *Client) VerifyOTP(ctx context.Context, email, code string) (*StatusResponse, error) {
	req := VerifyOTPRequest{Email: email, OTP: code}
	if err := ValidateVerify(req, c.codeLength); err != nil {
		return nil, err
	}
	var resp StatusResponse
	if err := c.do(ctx, http.MethodPost, "/auth/verify-otp", nil, req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &Error{StatusCode: http.StatusOK, Message: resp.Message, Path: "/auth/verify-otp"}
	}
	return &resp, nil
}

// ResendOTP asks the server to email a fresh code
func (c *Client) ResendOTP(ctx context.Context, email string) (*ResendOTPResponse, error) {
	req := ResendOTPRequest{Email: email}
	if err := Validate(req); err != nil {
		return nil, err
	}
	var resp ResendOTPResponse
	if err := c.do(ctx, http.MethodPost, "/auth/resend-otp", nil, req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &Error{StatusCode: http.StatusOK, Message: resp.Message, Path: "/auth/resend-otp"}
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	log.Printf("[API Request] %s %s", method, path)
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[API Error] %v %s", err, path)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{StatusCode: resp.StatusCode, Path: path}
		var status StatusResponse
		if json.Unmarshal(data, &status) == nil {
			apiErr.Message = status.Message
		}
		log.Printf("[API Error] %d %s %s", resp.StatusCode, apiErr.Message, path)
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// Package client is a typed HTTP client for the challenges API.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"

	"github.com/limbo/challenger/internal/api"
	errorvalues "github.com/limbo/challenger/internal/error_values"
	"github.com/limbo/challenger/internal/service"
	"github.com/limbo/challenger/pkg/entity"
	"github.com/limbo/challenger/pkg/httputil"
)

const defaultTimeout = 15 * time.Second

// APIError is a non-2xx response. It unwraps to the error category of its status,
// so callers can match it with errors.Is(err, errorvalues.ErrConflict) and friends.
type APIError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("api error %d: %s: %s", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return errorvalues.ErrValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		return errorvalues.ErrUnauthorized
	case http.StatusNotFound:
		return errorvalues.ErrNotFound
	case http.StatusConflict:
		return errorvalues.ErrConflict
	default:
		return errorvalues.ErrInfrastructure
	}
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

type Option func(*Client)

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func New(baseURL string, opts ...Option) *Client {
	hc := cleanhttp.DefaultPooledClient()
	hc.Timeout = defaultTimeout
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) GetTopChallenges(ctx context.Context) ([]entity.Challenge, error) {
	var res api.ChallengesResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/challenges/top", nil, &res); err != nil {
		return nil, err
	}
	return res.Challenges, nil
}

func (c *Client) GetOngoingChallenges(ctx context.Context) ([]entity.Challenge, error) {
	var res api.ChallengesResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/challenges/ongoing", nil, &res); err != nil {
		return nil, err
	}
	return res.Challenges, nil
}

func (c *Client) CreateChallenge(ctx context.Context, req *service.CreateChallengeRequest) (*entity.Challenge, error) {
	var res api.CreateChallengeResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/challenges", req, &res); err != nil {
		return nil, err
	}
	return res.Challenge, nil
}

func (c *Client) CheckChallengeStatus(ctx context.Context, challengeID uuid.UUID) (*entity.ExpiryResult, error) {
	res := new(entity.ExpiryResult)
	if err := c.do(ctx, http.MethodPost, "/api/v1/challenges/"+challengeID.String()+"/status-check", nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) CompleteTask(ctx context.Context, taskID uuid.UUID) (*entity.CompletionResult, error) {
	res := new(entity.CompletionResult)
	if err := c.do(ctx, http.MethodPost, "/api/v1/tasks/"+taskID.String()+"/complete", nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) GetCreatorDetails(ctx context.Context, creatorID uuid.UUID) (*entity.CreatorDetails, error) {
	res := new(entity.CreatorDetails)
	if err := c.do(ctx, http.MethodGet, "/api/v1/creators/"+creatorID.String(), nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

// TrackVisit reports whether the server counted the visit.
func (c *Client) TrackVisit(ctx context.Context, creatorID uuid.UUID) (bool, error) {
	var res api.TrackVisitResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/creators/"+creatorID.String()+"/visits", nil, &res); err != nil {
		return false, err
	}
	return res.Success, nil
}

func (c *Client) UpsertUser(ctx context.Context, req *service.UpsertUserRequest) (*entity.User, error) {
	var res api.UpsertUserResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/upsert-user", req, &res); err != nil {
		return nil, err
	}
	return res.User, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := sonic.ConfigDefault.Marshal(body)
		if err != nil {
			return errors.New("encoding request error: " + err.Error())
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.New("building request error: " + err.Error())
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return errorvalues.Infrastructure(method+" "+path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var errResp httputil.ErrorResponse
		if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Message != "" {
			apiErr.Message = errResp.Message
			apiErr.Details = errResp.Details
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(out); err != nil {
		return errorvalues.Infrastructure("decoding response", err)
	}
	return nil
}

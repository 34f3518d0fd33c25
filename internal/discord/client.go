package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/osse101/ShopBot_Go/internal/domain"
	"github.com/osse101/ShopBot_Go/internal/handler"
)

// APIError is a non-2xx answer from the ShopBot API. Message is the body's
// error text, which the API keeps readable for players.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %s", e.Message)
}

// IsStatus reports whether err is an APIError with the given status code
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// APIClient handles communication with the ShopBot API
type APIClient struct {
	BaseURL    string
	Client     *http.Client
	APIKey     string
	MaxRetries int
	RetryDelay time.Duration

	players *PlayerCache
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string, players *PlayerCache) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: apiTimeout,
		},
		APIKey:     apiKey,
		MaxRetries: apiMaxRetries,
		RetryDelay: apiRetryDelay,
		players:    players,
	}
}

// retryable reports whether a request may be sent again after a failure.
// POSTs change state and are sent once.
func retryable(method string) bool {
	return method == http.MethodGet || method == http.MethodPut
}

// do sends the request, retrying idempotent calls on transport failures and
// 5xx answers, and decodes a 2xx body into out when out is non-nil.
func (c *APIClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf(ErrMsgMarshalRequest, err)
		}
	}

	target := c.BaseURL + apiBasePath + path
	attempts := 1
	if retryable(method) {
		attempts += c.MaxRetries
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			delay := c.RetryDelay*time.Duration(1<<uint(attempt-1)) + time.Duration(rand.Int64N(100))*time.Millisecond
			slog.Info(LogMsgRetrying, "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(reqBody))
		if err != nil {
			return fmt.Errorf(ErrMsgCreateRequest, err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn(LogMsgRequestFailed, "error", err, "attempt", attempt, "path", path)
			continue
		}

		if resp.StatusCode >= http.StatusInternalServerError && attempt < attempts-1 {
			resp.Body.Close()
			lastErr = fmt.Errorf(ErrMsgServerStatus, resp.StatusCode)
			slog.Warn(LogMsgServerError, "status", resp.StatusCode, "attempt", attempt, "path", path)
			continue
		}

		return decodeResponse(resp, out)
	}

	return fmt.Errorf(ErrMsgMaxRetries, lastErr)
}

func decodeResponse(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp handler.ErrorResponse
		data, _ := io.ReadAll(io.LimitReader(resp.Body, apiErrorBodyLimit))
		if err := json.Unmarshal(data, &errResp); err != nil || errResp.Error == "" {
			errResp.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: errResp.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf(ErrMsgDecodeResponse, err)
	}
	return nil
}

// Register creates a player for the external identity
func (c *APIClient) Register(ctx context.Context, identity, name string) (*domain.Entity, error) {
	var entity domain.Entity
	req := handler.RegisterRequest{ExternalIdentity: identity, DisplayName: name}
	if err := c.do(ctx, http.MethodPost, "/entities/register", req, &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

// Resolve looks up the player behind an external identity
func (c *APIClient) Resolve(ctx context.Context, identity string) (*domain.Entity, error) {
	var entity domain.Entity
	path := "/entities/resolve?external_identity=" + url.QueryEscape(identity)
	if err := c.do(ctx, http.MethodGet, path, nil, &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

// Rename sets an entity's display name
func (c *APIClient) Rename(ctx context.Context, entityID int64, name string) error {
	return c.do(ctx, http.MethodPut, entityPath(entityID, "name"), handler.RenameRequest{Name: name}, nil)
}

// Status returns the entity's status view
func (c *APIClient) Status(ctx context.Context, entityID int64) (*domain.EntityStatus, error) {
	var status domain.EntityStatus
	if err := c.do(ctx, http.MethodGet, entityPath(entityID, "status"), nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Move relocates the entity and returns its new status
func (c *APIClient) Move(ctx context.Context, entityID, locationID int64) (*domain.EntityStatus, error) {
	var status domain.EntityStatus
	req := handler.MoveRequest{DestinationLocationID: locationID}
	if err := c.do(ctx, http.MethodPost, entityPath(entityID, "move"), req, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Purchase buys quantity units from an inventory record
func (c *APIClient) Purchase(ctx context.Context, entityID, recordID int64, quantity int) (*domain.PurchaseResult, error) {
	var result domain.PurchaseResult
	req := handler.PurchaseRequest{InventoryRecordID: recordID, Quantity: &quantity}
	if err := c.do(ctx, http.MethodPost, entityPath(entityID, "purchase"), req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Say broadcasts text to the players sharing the speaker's location
func (c *APIClient) Say(ctx context.Context, entityID int64, text string) (*domain.ChatResult, error) {
	var result domain.ChatResult
	if err := c.do(ctx, http.MethodPost, entityPath(entityID, "say"), handler.SayRequest{Text: text}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListLocations returns every location in the world
func (c *APIClient) ListLocations(ctx context.Context) ([]domain.Location, error) {
	var locations []domain.Location
	if err := c.do(ctx, http.MethodGet, "/locations", nil, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// DescribeLocation returns what is for sale at a location
func (c *APIClient) DescribeLocation(ctx context.Context, locationID int64) (*domain.LocationDescription, error) {
	var desc domain.LocationDescription
	path := "/locations/" + strconv.FormatInt(locationID, 10) + "/"
	if err := c.do(ctx, http.MethodGet, path, nil, &desc); err != nil {
		return nil, err
	}
	return &desc, nil
}

// Healthy reports whether the API answers its liveness probe
func (c *APIClient) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/healthz", nil)
	if err != nil {
		return false
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func entityPath(entityID int64, action string) string {
	return "/entities/" + strconv.FormatInt(entityID, 10) + "/" + action
}

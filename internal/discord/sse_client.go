package discord

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/osse101/ShopBot_Go/internal/sse"
)

// SSEEvent represents a parsed SSE event
type SSEEvent struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Timestamp int64           `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// SSEEventHandler handles a specific event type
type SSEEventHandler func(ctx context.Context, event SSEEvent) error

// errStreamClosed is returned when the server ends the stream
var errStreamClosed = errors.New("stream closed unexpectedly")

// SSEClient manages the connection to the API's event stream
type SSEClient struct {
	baseURL    string
	apiKey     string
	eventTypes []string
	audience   string
	handlers   map[string][]SSEEventHandler
	httpClient *http.Client
	mu         sync.RWMutex
	shutdown   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	connected  bool
}

// NewSSEClient creates a new SSE client
func NewSSEClient(baseURL, apiKey string, eventTypes []string) *SSEClient {
	return &SSEClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		eventTypes: eventTypes,
		handlers:   make(map[string][]SSEEventHandler),
		httpClient: &http.Client{
			Timeout: 0, // streams stay open
		},
		shutdown: make(chan struct{}),
	}
}

// SetAudience limits addressed events to identities with the given prefix.
// Call before Start.
func (c *SSEClient) SetAudience(prefix string) {
	c.audience = prefix
}

// OnEvent registers a handler for a specific event type
func (c *SSEClient) OnEvent(eventType string, handler SSEEventHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[eventType] = append(c.handlers[eventType], handler)
}

// Start begins the SSE connection with auto-reconnect
func (c *SSEClient) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	c.wg.Add(2)
	go func() {
		defer c.wg.Done()
		select {
		case <-c.shutdown:
			cancel()
		case <-ctx.Done():
		}
	}()
	go c.connectLoop(ctx)
}

// Stop shuts down the client and waits for the stream to close
func (c *SSEClient) Stop() {
	c.stopOnce.Do(func() { close(c.shutdown) })
	c.wg.Wait()
}

// IsConnected returns true if the client is connected
func (c *SSEClient) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

func (c *SSEClient) setConnected(v bool) {
	c.mu.Lock()
	c.connected = v
	c.mu.Unlock()
}

func (c *SSEClient) connectLoop(ctx context.Context) {
	defer c.wg.Done()

	backoff := sseInitialBackoff
	consecutiveFailures := 0

	for {
		if ctx.Err() != nil {
			slog.Info(sseLogMsgClientStopped)
			return
		}

		err := c.connect(ctx)
		c.setConnected(false)
		if ctx.Err() != nil {
			slog.Info(sseLogMsgClientStopped)
			return
		}

		if errors.Is(err, errStreamClosed) {
			backoff = sseInitialBackoff
			consecutiveFailures = 0
		} else {
			consecutiveFailures++
		}

		slog.Warn(sseLogMsgConnectionFailed,
			"error", err,
			"backoff", backoff,
			"consecutive_failures", consecutiveFailures)

		select {
		case <-time.After(backoff):
			backoff = time.Duration(float64(backoff) * sseBackoffMultiplier)
			if backoff > sseMaxBackoff {
				backoff = sseMaxBackoff
			}
		case <-ctx.Done():
			slog.Info(sseLogMsgClientStopped)
			return
		}
	}
}

func (c *SSEClient) connect(ctx context.Context) error {
	q := url.Values{}
	if len(c.eventTypes) > 0 {
		q.Set(sse.QueryTypes, strings.Join(c.eventTypes, ","))
	}
	if c.audience != "" {
		q.Set(sse.QueryAudience, c.audience)
	}
	streamURL := c.baseURL + apiBasePath + "/events"
	if len(q) > 0 {
		streamURL += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, streamURL, nil)
	if err != nil {
		return fmt.Errorf(ErrMsgCreateRequest, err)
	}

	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	c.setConnected(true)
	slog.Info(sseLogMsgClientConnected, "url", streamURL)

	return c.readEvents(ctx, resp.Body)
}

func (c *SSEClient) readEvents(ctx context.Context, body io.Reader) error {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, sseBufferSize), sseBufferSize)

	var eventID, eventType, data string

	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		line := scanner.Text()
		if line == "" {
			if data != "" {
				c.dispatchEvent(ctx, eventID, eventType, data)
			}
			eventID, eventType, data = "", "", ""
			continue
		}

		switch {
		case strings.HasPrefix(line, "id: "):
			eventID = strings.TrimPrefix(line, "id: ")
		case strings.HasPrefix(line, "event: "):
			eventType = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = strings.TrimPrefix(line, "data: ")
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading stream: %w", err)
	}
	return errStreamClosed
}

func (c *SSEClient) dispatchEvent(ctx context.Context, id, eventType, data string) {
	if eventType == "" || eventType == sse.EventTypeKeepalive || eventType == sse.EventTypeConnected {
		return
	}

	var evt SSEEvent
	if err := json.Unmarshal([]byte(data), &evt); err != nil {
		slog.Warn(sseLogMsgParseError, "error", err, "data", data)
		return
	}

	evt.Type = eventType
	if id != "" {
		evt.ID = id
	}

	c.mu.RLock()
	handlers := c.handlers[evt.Type]
	c.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(ctx, evt); err != nil {
			slog.Error(sseLogMsgHandlerError, "event_type", evt.Type, "error", err)
		}
	}
}

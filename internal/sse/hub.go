package sse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

var (
	ErrBroadcastBufferFull = errors.New(ErrMsgBroadcastBufferFull)
	ErrHubStopped          = errors.New(ErrMsgHubStopped)
)

// Addressed is implemented by payloads meant for a single recipient. The
// hub routes them by the returned external identity.
type Addressed interface {
	AudienceIdentity() string
}

// Event is one frame of the stream
type Event struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	Payload   any    `json:"payload"`

	audience string
}

// Filter selects the events a client receives. The zero value receives
// everything. With AudiencePrefix set, only addressed events whose identity
// starts with the prefix are delivered.
type Filter struct {
	Types          []string
	AudiencePrefix string
}

// ParseFilter reads a filter from the types and audience query parameters
func ParseFilter(q url.Values) Filter {
	var f Filter
	for _, t := range strings.Split(q.Get(QueryTypes), ",") {
		if t = strings.TrimSpace(t); t != "" {
			f.Types = append(f.Types, t)
		}
	}
	f.AudiencePrefix = strings.TrimSpace(q.Get(QueryAudience))
	return f
}

func (f Filter) matches(evt Event) bool {
	if len(f.Types) > 0 && !slices.Contains(f.Types, evt.Type) {
		return false
	}
	if f.AudiencePrefix != "" && !strings.HasPrefix(evt.audience, f.AudiencePrefix) {
		return false
	}
	return true
}

// Client is one subscriber. Events is closed when the client is
// unsubscribed or the hub stops.
type Client struct {
	ID     string
	Events <-chan Event

	filter  Filter
	events  chan Event
	dropped atomic.Int64
}

// Dropped counts events skipped because the client fell behind
func (c *Client) Dropped() int64 {
	return c.dropped.Load()
}

// Hub fans broadcast events out to subscribed clients. Broadcast never
// blocks the caller; a single goroutine started by Start does the fan-out.
type Hub struct {
	mu       sync.RWMutex
	clients  map[string]*Client
	stopped  bool
	queue    chan Event
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		queue:   make(chan Event, BroadcastBufferSize),
		done:    make(chan struct{}),
	}
}

// Start launches the fan-out loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends the fan-out loop and closes every client. Safe to call twice.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
		h.wg.Wait()

		h.mu.Lock()
		defer h.mu.Unlock()
		h.stopped = true
		for id, c := range h.clients {
			close(c.events)
			delete(h.clients, id)
		}
	})
}

// Subscribe registers a client. It fails once the hub has stopped.
func (h *Hub) Subscribe(f Filter) (*Client, error) {
	ch := make(chan Event, ClientEventBuffer)
	c := &Client{
		ID:     uuid.NewString(),
		Events: ch,
		filter: f,
		events: ch,
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		return nil, ErrHubStopped
	}
	h.clients[c.ID] = c
	return c, nil
}

// Unsubscribe removes a client and closes its channel. Unknown ids are ignored.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[id]; ok {
		close(c.events)
		delete(h.clients, id)
	}
}

// Broadcast queues an event. When the queue is full the event is dropped
// and ErrBroadcastBufferFull returned.
func (h *Hub) Broadcast(eventType string, payload any) error {
	evt := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}
	if a, ok := payload.(Addressed); ok {
		evt.audience = a.AudienceIdentity()
	}

	select {
	case <-h.done:
		return ErrHubStopped
	default:
	}

	select {
	case h.queue <- evt:
		return nil
	default:
		return ErrBroadcastBufferFull
	}
}

// ClientCount returns the number of subscribed clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) run() {
	defer h.wg.Done()
	for {
		select {
		case evt := <-h.queue:
			h.fanOut(evt)
		case <-h.done:
			return
		}
	}
}

// fanOut holds the read lock while sending so Unsubscribe cannot close a
// channel mid-send.
func (h *Hub) fanOut(evt Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		if !c.filter.matches(evt) {
			continue
		}
		select {
		case c.events <- evt:
		default:
			c.dropped.Add(1)
			slog.Warn(LogMsgClientLagging, "client_id", c.ID, "event_type", evt.Type)
		}
	}
}

// WriteEvent writes evt in text/event-stream framing
func WriteEvent(w io.Writer, evt Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if evt.ID != "" {
		fmt.Fprintf(&buf, "id: %s\n", evt.ID)
	}
	fmt.Fprintf(&buf, "event: %s\ndata: %s\n\n", evt.Type, data)
	_, err = w.Write(buf.Bytes())
	return err
}

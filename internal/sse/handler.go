package sse

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/osse101/ShopBot_Go/internal/logger"
)

// Handler streams hub events to one HTTP client until it disconnects or
// the hub stops. Query: types=a,b to filter by type and audience=prefix to
// receive only addressed events for matching identities.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		filter := ParseFilter(r.URL.Query())

		client, err := hub.Subscribe(filter)
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"types", filter.Types,
			"audience", filter.AudiencePrefix,
			"total_clients", hub.ClientCount())
		defer func() {
			hub.Unsubscribe(client.ID)
			log.Info(LogMsgClientDisconnected,
				"client_id", client.ID,
				"dropped", client.Dropped(),
				"total_clients", hub.ClientCount())
		}()

		h := w.Header()
		h.Set("Content-Type", "text/event-stream")
		h.Set("Cache-Control", "no-cache")
		h.Set("Connection", "keep-alive")
		h.Set("X-Accel-Buffering", "no")
		w.WriteHeader(http.StatusOK)

		s := &stream{w: w, rc: http.NewResponseController(w)}
		if err := s.retry(RetryHint); err != nil {
			log.Warn(LogMsgWriteError, "error", err)
			return
		}
		hello := Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload: map[string]any{
				"client_id": client.ID,
				"types":     filter.Types,
				"audience":  filter.AudiencePrefix,
			},
		}
		if err := s.send(hello); err != nil {
			log.Warn(LogMsgWriteError, "error", err)
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case evt, ok := <-client.Events:
				if !ok {
					return
				}
				if err := s.send(evt); err != nil {
					log.Warn(LogMsgWriteError, "event_type", evt.Type, "error", err)
					return
				}
			case <-ticker.C:
				if err := s.send(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}); err != nil {
					return
				}
			}
		}
	}
}

type stream struct {
	w  http.ResponseWriter
	rc *http.ResponseController
}

func (s *stream) retry(d time.Duration) error {
	if _, err := fmt.Fprintf(s.w, "retry: %d\n\n", d.Milliseconds()); err != nil {
		return err
	}
	return s.rc.Flush()
}

func (s *stream) send(evt Event) error {
	// Recorders in tests do not support deadlines
	if err := s.rc.SetWriteDeadline(time.Now().Add(WriteTimeout)); err != nil && !errors.Is(err, http.ErrNotSupported) {
		return err
	}
	if err := WriteEvent(s.w, evt); err != nil {
		return err
	}
	return s.rc.Flush()
}

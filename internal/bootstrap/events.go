package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/ShopBot_Go/internal/event"
	"github.com/osse101/ShopBot_Go/internal/metrics"
	"github.com/osse101/ShopBot_Go/internal/sse"
)

// EventSystem is the in-process bus and the SSE hub fed from it
type EventSystem struct {
	Bus event.Bus
	Hub *sse.Hub
}

// InitializeEventSystem creates the bus, starts the SSE hub, bridges bus
// events to it and registers the event metrics collector.
func InitializeEventSystem() (*EventSystem, error) {
	bus := event.NewMemoryBus()

	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub, bus).Subscribe()

	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(bus); err != nil {
		hub.Stop()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	slog.Info(LogMsgEventSystemInitialized)
	return &EventSystem{Bus: bus, Hub: hub}, nil
}

package sse

import "time"

const (
	// BroadcastBufferSize bounds the events waiting for fan-out
	BroadcastBufferSize = 100

	// ClientEventBuffer is the per-subscriber backlog before events are dropped
	ClientEventBuffer = 50
)

const (
	KeepaliveInterval = 30 * time.Second

	// WriteTimeout bounds a single write to a subscriber connection
	WriteTimeout = 10 * time.Second

	// RetryHint is sent once so browsers and bots reconnect at a sane pace
	RetryHint = 3 * time.Second
)

// Stream-only event types
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// Query parameters understood by Handler
const (
	QueryTypes    = "types"
	QueryAudience = "audience"
)

const (
	ErrMsgBroadcastBufferFull = "sse broadcast buffer full"
	ErrMsgHubStopped          = "sse hub stopped"
)

const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgClientLagging      = "SSE client lagging, event dropped"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE event dropped"
	LogMsgSubscriberReady    = "SSE subscriber registered for event types"
	LogMsgWriteError         = "Failed to write SSE event"
)

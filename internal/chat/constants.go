package chat

import "time"

// NATSSubjectFormat is the per-recipient subject chat lines are published on
const NATSSubjectFormat = "shopbot.entity.%d.chat"

// NATSSubjectWildcard matches every recipient's chat subject
const NATSSubjectWildcard = "shopbot.entity.*.chat"

// Transport names accepted by configuration
const (
	TransportSSE  = "sse"
	TransportNATS = "nats"
)

// NATS connection settings
const (
	NATSClientName     = "shopbot"
	NATSMaxReconnects  = 10
	NATSReconnectWait  = 2 * time.Second
	NATSStartupTimeout = 10 * time.Second
)

// Error format strings
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgGetSpeakerFailed        = "failed to get speaker: %w"
	ErrMsgMarshalFailed           = "failed to marshal chat message: %w"
	ErrMsgPublishFailed           = "failed to publish chat message to %s: %w"
	ErrMsgNATSConnectFailed       = "failed to connect to nats at %s: %w"
	ErrMsgNATSNotReady            = "nats server not ready for connections"
	ErrMsgNATSServerFailed        = "failed to create nats server: %w"
)

// Log messages
const (
	LogMsgSayCalled         = "Say called"
	LogMsgDeliveryFailed    = "Chat delivery failed"
	LogMsgChatBroadcast     = "Chat broadcast"
	LogMsgNATSServerStarted = "Embedded nats server listening"
)

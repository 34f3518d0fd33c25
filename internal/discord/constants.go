package discord

import "time"

// Configuration defaults
const (
	DefaultAPIURL            = "http://localhost:8080"
	DefaultHealthPort        = "8082"
	DefaultNATSURL           = "nats://127.0.0.1:4222"
	DefaultIdentityCacheSize = 1000
	DefaultIdentityCacheTTL  = 30 * time.Minute
)

// API client settings
const (
	apiBasePath       = "/api/v1"
	apiTimeout        = 10 * time.Second
	apiMaxRetries     = 3
	apiRetryDelay     = 500 * time.Millisecond
	apiErrorBodyLimit = 4096
)

// Embed colors
const (
	ColorInfo    = 0x3498db
	ColorSuccess = 0x2ecc71
	ColorWarning = 0xf39c12
	ColorChat    = 0x9b59b6
)

// FooterShopBot is the footer on every embed the bot sends
const FooterShopBot = "ShopBot"

// Error messages
const (
	ErrMsgMarshalRequest  = "failed to marshal request: %w"
	ErrMsgCreateRequest   = "failed to create request: %w"
	ErrMsgDecodeResponse  = "failed to decode response: %w"
	ErrMsgMaxRetries      = "max retries exceeded: %w"
	ErrMsgServerStatus    = "server error: %d"
	ErrMsgDMChannelFailed = "failed to open DM channel for %s: %w"
	ErrMsgDMSendFailed    = "failed to send DM to %s: %w"
	ErrMsgFetchCommands   = "failed to fetch existing commands: %w"
	ErrMsgOverwriteFailed = "failed to overwrite commands: %w"
	ErrMsgSessionCreate   = "error creating Discord session: %w"
	ErrMsgSessionOpen     = "error opening connection: %w"
	ErrMsgNATSSubscribe   = "failed to subscribe to %s: %w"
)

// Log messages
const (
	LogMsgRetrying           = "Retrying API request"
	LogMsgRequestFailed      = "API request failed"
	LogMsgServerError        = "Server error, will retry"
	LogMsgCommandFailed      = "Command failed"
	LogMsgRespondFailed      = "Failed to send response"
	LogMsgDeferFailed        = "Failed to send deferred response"
	LogMsgCheckingCommands   = "Checking Discord commands"
	LogMsgCommandsUnchanged  = "Commands unchanged, skipping registration"
	LogMsgCommandsUpdated    = "Commands updated"
	LogMsgForceUpdate        = "Force update enabled, replacing all commands"
	LogMsgBotReady           = "Bot is ready"
	LogMsgBotRunning         = "Discord bot is now running"
	LogMsgChatRelayed        = "Chat line relayed"
	LogMsgChatRelayFailed    = "Failed to relay chat line"
	LogMsgChatDecodeFailed   = "Failed to decode chat line"
	LogMsgChatSkipped        = "Chat recipient is not on Discord"
	LogMsgNATSListening      = "Listening for chat on NATS"
	LogMsgHealthServerStart  = "Starting Discord health server"
	LogMsgHealthServerFailed = "Discord health server failed"
	LogMsgHealthServerStop   = "Discord health server shutdown failed"
)

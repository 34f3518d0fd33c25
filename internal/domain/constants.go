package domain

// Platform identifiers for external identities
const (
	PlatformDiscord = "discord"
)

// Input limits
const (
	MaxNameLength    = 64
	MaxMessageLength = 500
)

// DefaultPlayerName is used when a player registers without choosing a name
const DefaultPlayerName = "Unnamed"

package domain

// Event type constants used for event bus subscriptions and SSE.
//
// Event types follow the pattern: <entity>.<action> (e.g., "entity.moved")
const (
	// EventTypeEntityRegistered is published when a player registers
	EventTypeEntityRegistered = "entity.registered"

	// EventTypeEntityMoved is published when an entity changes location
	EventTypeEntityMoved = "entity.moved"

	// EventTypePurchaseCompleted is published after a purchase commits
	EventTypePurchaseCompleted = "purchase.completed"

	// EventTypeChatMessage is published once per chat recipient
	EventTypeChatMessage = "chat.message"
)

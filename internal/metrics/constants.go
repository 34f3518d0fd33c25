package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameHTTPRequestsRejected = "http_requests_rejected_total"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameItemsBought        = "items_bought_total"
	MetricNameMoneySpent         = "money_spent_total"
	MetricNameEntitiesRegistered = "entities_registered_total"
	MetricNameEntityMoves        = "entity_moves_total"
	MetricNameChatMessages       = "chat_messages_total"
	MetricNameChatDeliveries     = "chat_deliveries_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextHTTPRequestsRejected = "Requests refused by the auth or rate limit middleware"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextItemsBought        = "Total number of items bought from shopkeepers"
	HelpTextMoneySpent         = "Total money spent buying items"
	HelpTextEntitiesRegistered = "Total number of player registrations"
	HelpTextEntityMoves        = "Total number of entity moves between locations"
	HelpTextChatMessages       = "Total number of chat messages said"
	HelpTextChatDeliveries     = "Total number of chat deliveries by result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelItem   = "item"
	LabelResult = "result"
	LabelReason = "reason"
)

// Label values for chat delivery results
const (
	ResultDelivered = "delivered"
	ResultFailed    = "failed"
)

// Label values for rejected requests
const (
	ReasonUnauthorized = "unauthorized"
	ReasonRateLimited  = "rate_limited"
)

// UnmatchedRoute labels requests that did not hit a registered route
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded          = "Metrics recorded for event"
)

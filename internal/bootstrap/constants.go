package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept after cleanup,
	// leaving room for the file about to be created
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingShopBot     = "Starting ShopBot"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Catalog Seeding
// =============================================================================

const (
	LogMsgSeedingCatalog  = "Seeding world catalog..."
	LogMsgCatalogSeeded   = "World catalog seeded"
	LogMsgCatalogSkipped  = "World already populated, catalog seed skipped"
	LogMsgCatalogFromFile = "Using catalog file"

	ErrMsgFailedLoadCatalog = "failed to load catalog"
	ErrMsgFailedSeedCatalog = "failed to seed catalog"
)

// =============================================================================
// Event System
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Chat Transport
// =============================================================================

const (
	LogMsgChatTransport        = "Chat transport selected"
	LogMsgEmbeddedNATSStarted  = "Embedded NATS server started"
	LogMsgNATSConnected        = "Connected to NATS"
	ErrMsgFailedStartNATS      = "failed to start embedded NATS server"
	ErrMsgFailedConnectNATS    = "failed to connect to NATS"
	EmbeddedNATSHost           = "127.0.0.1"
	EmbeddedNATSPort           = 4222
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingChatTransport = "Closing chat transport..."
	LogMsgNATSDrainFailed      = "NATS drain failed"
)

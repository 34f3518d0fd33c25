package config

import "time"

// Defaults
const (
	DefaultEnvironment = "dev"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultServiceName = "shopbot"
	DefaultVersion     = "dev"

	DefaultDBName            = "shopbot"
	DefaultDBSSLMode         = "disable"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
)

// Chat transports
const (
	ChatTransportSSE  = "sse"
	ChatTransportNATS = "nats"
)

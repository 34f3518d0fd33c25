package discord

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Transport names for receiving chat lines from the API
const (
	ChatTransportSSE  = "sse"
	ChatTransportNATS = "nats"
)

// Config holds the bot configuration
type Config struct {
	Token              string
	AppID              string
	APIURL             string
	APIKey             string
	ForceCommandUpdate bool
	HealthPort         string
	ChatTransport      string
	NATSURL            string
	IdentityCacheSize  int
	IdentityCacheTTL   time.Duration
}

// LoadConfig reads the bot configuration from the environment. The caller is
// expected to have loaded any .env file already.
func LoadConfig() (Config, error) {
	cfg := Config{
		Token:              os.Getenv("DISCORD_TOKEN"),
		AppID:              os.Getenv("DISCORD_APP_ID"),
		APIURL:             getEnv("API_URL", DefaultAPIURL),
		APIKey:             os.Getenv("API_KEY"),
		ForceCommandUpdate: getEnvBool("FORCE_COMMAND_UPDATE"),
		HealthPort:         getEnv("DISCORD_HEALTH_PORT", DefaultHealthPort),
		ChatTransport:      getEnv("CHAT_TRANSPORT", ChatTransportSSE),
		NATSURL:            getEnv("NATS_URL", DefaultNATSURL),
		IdentityCacheSize:  DefaultIdentityCacheSize,
		IdentityCacheTTL:   DefaultIdentityCacheTTL,
	}

	if v := os.Getenv("DISCORD_IDENTITY_CACHE_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size <= 0 {
			return cfg, fmt.Errorf("invalid DISCORD_IDENTITY_CACHE_SIZE %q", v)
		}
		cfg.IdentityCacheSize = size
	}
	if v := os.Getenv("DISCORD_IDENTITY_CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl <= 0 {
			return cfg, fmt.Errorf("invalid DISCORD_IDENTITY_CACHE_TTL %q", v)
		}
		cfg.IdentityCacheTTL = ttl
	}

	return cfg, cfg.Validate()
}

// Validate checks the required settings
func (c Config) Validate() error {
	var errs []error
	if c.Token == "" {
		errs = append(errs, errors.New("DISCORD_TOKEN is required"))
	}
	if c.AppID == "" {
		errs = append(errs, errors.New("DISCORD_APP_ID is required"))
	}
	if c.APIURL == "" {
		errs = append(errs, errors.New("API_URL is required"))
	}
	switch c.ChatTransport {
	case ChatTransportSSE, ChatTransportNATS:
	default:
		errs = append(errs, fmt.Errorf("CHAT_TRANSPORT must be %q or %q, got %q", ChatTransportSSE, ChatTransportNATS, c.ChatTransport))
	}
	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

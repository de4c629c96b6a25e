package config

import (
	"os"
	"strings"
	"time"
)

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string
	CORSOrigins     []string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// UpstreamConfig holds the third-party data sources
type UpstreamConfig struct {
	// ESPN site API root, e.g. https://site.api.espn.com/apis/site/v2/sports
	ESPNBaseURL string

	// Spreadsheet-backed JSON feed with transfer portal rows
	TransferPortalURL string

	// WordPress RSS feed with college football news
	NewsFeedURL string

	UserAgent string
	Timeout   time.Duration
}

// CacheConfig holds freshness windows for each cache
type CacheConfig struct {
	PlayerIndexTTL    time.Duration
	PlayerListTTL     time.Duration
	TransferPortalTTL time.Duration
	ScheduleTTL       time.Duration
	NewsTTL           time.Duration
	TeamRosterTTL     time.Duration
	TeamRosterSize    int
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Format string
}

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Cache    CacheConfig
	Log      LogConfig
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            getEnv("SERVER_ADDR", ":8080"),
			CORSOrigins:     getList("CORS_ORIGINS", []string{"http://localhost:3000"}),
			RequestTimeout:  getDuration("REQUEST_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Upstream: UpstreamConfig{
			ESPNBaseURL:       getEnv("ESPN_BASE_URL", "https://site.api.espn.com/apis/site/v2/sports"),
			TransferPortalURL: getEnv("TRANSFER_PORTAL_URL", "https://sheets.pfsn.com/transfer-portal.json"),
			NewsFeedURL:       getEnv("NEWS_FEED_URL", "https://www.profootballnetwork.com/college-football/feed/"),
			UserAgent:         getEnv("USER_AGENT", "Mozilla/5.0 (compatible; CFBHQ/1.0)"),
			Timeout:           getDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		},
		Cache: CacheConfig{
			PlayerIndexTTL:    getDuration("PLAYER_INDEX_TTL", 5*time.Minute),
			PlayerListTTL:     getDuration("PLAYER_LIST_TTL", 10*time.Minute),
			TransferPortalTTL: getDuration("TRANSFER_PORTAL_TTL", 10*time.Minute),
			ScheduleTTL:       getDuration("SCHEDULE_TTL", 5*time.Minute),
			NewsTTL:           getDuration("NEWS_TTL", 10*time.Minute),
			TeamRosterTTL:     getDuration("TEAM_ROSTER_TTL", time.Hour),
			TeamRosterSize:    128,
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
		},
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration parses a duration such as "90s" or "5m", falling back to the
// default when the variable is unset or malformed
func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

// getList splits a comma-separated variable, dropping empty items
func getList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

package engine

import (
	"net/http"
	"time"
)

// Config holds all engine configuration, injected from the cli layer.
type Config struct {
	YouTubeAPIKey          string
	YouTubeAPIBase         string // "" = googleapis default
	DefaultLanguage        string
	DefaultTopN            int
	SessionTTL             time.Duration
	SessionMaxEntries      int
	SessionCleanupInterval time.Duration
	RedisURL               string // "" = sessions stay in memory only
	HTTPClient             *http.Client
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (learn, sources).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}

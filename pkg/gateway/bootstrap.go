package gateway

import (
	"fmt"

	"github.com/imbecility/media-gateway/pkg/client"
	"github.com/imbecility/media-gateway/pkg/logger"
	"github.com/imbecility/media-gateway/pkg/upstream"
)

// Config represents the configuration for gateway initialization.
type Config struct {
	// UpstreamURL is the aggregation API base (defaults to upstream.DefaultBaseURL).
	UpstreamURL string
	// TimeoutSec bounds each upstream call in seconds. 0 means no timeout.
	TimeoutSec int
	// Debug enables verbose logging.
	Debug bool
	// JSONLogs switches the log output from text to JSON.
	JSONLogs bool
}

// New creates a ready-to-use Service backed by the TLS-fingerprinting HTTP client.
func New(cfg Config) (*Service, error) {
	logger.SetupGlobal(cfg.Debug, false, cfg.JSONLogs)

	if cfg.UpstreamURL == "" {
		cfg.UpstreamURL = upstream.DefaultBaseURL
	}
	if cfg.TimeoutSec < 0 {
		cfg.TimeoutSec = 0
	}

	httpClient, err := client.NewHttpClient(client.Options{TimeoutSec: cfg.TimeoutSec})
	if err != nil {
		return nil, fmt.Errorf("failed to init http client: %w", err)
	}

	return NewService(httpClient, cfg.UpstreamURL), nil
}

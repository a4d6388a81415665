package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/imbecility/media-gateway/pkg/models"
	"github.com/imbecility/media-gateway/pkg/platforms"
	"github.com/imbecility/media-gateway/pkg/upstream"
)

type Service struct {
	Upstream *upstream.Client
}

func NewService(httpClient upstream.HTTPClient, baseURL string) *Service {
	return &Service{
		Upstream: &upstream.Client{HTTP: httpClient, BaseURL: baseURL},
	}
}

// Resolve runs the proxy-and-map pipeline for one request: validate the source URL,
// call the upstream once, check its status flag, validate the payload and map it.
// Every failure ends the request; nothing is retried and no partial result is returned.
func Resolve[T models.Payload, R any](ctx context.Context, s *Service, p platforms.Platform[T, R], req models.DownloadRequest) (R, error) {
	var zero R
	if req.SourceURL == "" {
		return zero, upstream.ErrMissingURL
	}

	start := time.Now()
	var payload T
	if err := s.Upstream.Get(ctx, p.Path, req.SourceURL, &payload); err != nil {
		return zero, fmt.Errorf("%s: %w", p.Name, err)
	}
	slog.Debug("Upstream payload decoded", "platform", p.Name, "elapsed", time.Since(start))

	// A missing or null status flag counts as a reported failure, same as false.
	ok, present := payload.Reported()
	if !present {
		slog.Debug("Upstream status flag missing", "platform", p.Name)
	}
	if !ok {
		return zero, &upstream.FailureError{Platform: p.Name, Message: p.Failure}
	}

	if err := upstream.CheckSchema(&payload); err != nil {
		return zero, fmt.Errorf("%s: %w", p.Name, err)
	}

	res, err := p.Map(&payload)
	if err != nil {
		return zero, fmt.Errorf("%s: map payload: %w", p.Name, err)
	}
	return res, nil
}

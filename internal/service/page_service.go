package service

import (
	"context"
	"fmt"

	"mini-rules/internal/capability"

	"github.com/rs/zerolog"
)

// HomePath is the path recorded for the home page.
const HomePath = "/home"

type pageService struct {
	analytics capability.Analytics
	logger    zerolog.Logger
}

// NewPageService creates a new page service.
func NewPageService(analytics capability.Analytics, logger zerolog.Logger) PageService {
	return &pageService{
		analytics: analytics,
		logger:    logger.With().Str("service", "page").Logger(),
	}
}

func (s *pageService) RenderPage(ctx context.Context) (string, error) {
	if err := s.analytics.TrackPageView(ctx, HomePath); err != nil {
		s.logger.Error().Err(err).Str("path", HomePath).Msg("failed to track page view")
		return "", fmt.Errorf("failed to track page view: %w", err)
	}
	return "<div>content</div>", nil
}

package command

import (
	"context"
	"fmt"

	"github.com/mammidi-vikram/netflix/internal/watchlist/domain"
	"github.com/mammidi-vikram/netflix/kafka"
	"github.com/mammidi-vikram/netflix/pkg/apperr"
	"github.com/mammidi-vikram/netflix/pkg/logger"
)

// RemoveEntryCommand represents the command to remove a saved movie
type RemoveEntryCommand struct {
	UserID uint
	TmdbID int
}

// RemoveEntryHandler handles the remove entry command
type RemoveEntryHandler struct {
	repo   domain.WatchlistRepository
	events *kafka.Publisher
}

// NewRemoveEntryHandler creates a new remove entry handler
func NewRemoveEntryHandler(repo domain.WatchlistRepository, events *kafka.Publisher) *RemoveEntryHandler {
	return &RemoveEntryHandler{repo: repo, events: events}
}

// Handle executes the remove entry command. Removal is idempotent: an
// absent entry or an absent watchlist returns the current set without
// error.
func (h *RemoveEntryHandler) Handle(ctx context.Context, cmd RemoveEntryCommand) ([]domain.Entry, error) {
	if cmd.UserID == 0 {
		return nil, apperr.Validation("invalid user id")
	}
	if cmd.TmdbID <= 0 {
		return nil, apperr.Validation("tmdbId is required")
	}

	entries, err := h.repo.Remove(ctx, cmd.UserID, cmd.TmdbID)
	if err != nil {
		return nil, fmt.Errorf("failed to remove watchlist entry: %w", err)
	}

	if err := h.events.PublishWatchlistEvent(ctx, kafka.WatchlistEvent{
		EventType: kafka.EventTypeEntryRemoved,
		UserID:    cmd.UserID,
		TmdbID:    cmd.TmdbID,
	}); err != nil {
		logger.Warn(ctx).Err(err).Msg("failed to publish watchlist event")
	}

	return entries, nil
}

package command

import (
	"context"
	"fmt"

	"github.com/mammidi-vikram/netflix/internal/watchlist/domain"
	"github.com/mammidi-vikram/netflix/kafka"
	"github.com/mammidi-vikram/netflix/pkg/apperr"
	"github.com/mammidi-vikram/netflix/pkg/logger"
)

// AddEntryCommand represents the command to save a movie to a watchlist
type AddEntryCommand struct {
	UserID uint
	TmdbID int
	Title  string
	Poster string
}

// AddEntryHandler handles the add entry command
type AddEntryHandler struct {
	repo   domain.WatchlistRepository
	events *kafka.Publisher
}

// NewAddEntryHandler creates a new add entry handler
func NewAddEntryHandler(repo domain.WatchlistRepository, events *kafka.Publisher) *AddEntryHandler {
	return &AddEntryHandler{repo: repo, events: events}
}

// Handle executes the add entry command. Adding an id that is already
// present is a no-op, which makes the operation safe to retry; in
// particular it never refreshes the stored title/poster snapshot.
func (h *AddEntryHandler) Handle(ctx context.Context, cmd AddEntryCommand) ([]domain.Entry, error) {
	if cmd.UserID == 0 {
		return nil, apperr.Validation("invalid user id")
	}
	if cmd.TmdbID <= 0 {
		return nil, apperr.Validation("tmdbId is required")
	}

	entries, err := h.repo.Add(ctx, cmd.UserID, domain.Entry{
		TmdbID: cmd.TmdbID,
		Title:  cmd.Title,
		Poster: cmd.Poster,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add watchlist entry: %w", err)
	}

	// Best effort: the mutation already committed
	if err := h.events.PublishWatchlistEvent(ctx, kafka.WatchlistEvent{
		EventType: kafka.EventTypeEntryAdded,
		UserID:    cmd.UserID,
		TmdbID:    cmd.TmdbID,
		Title:     cmd.Title,
		Poster:    cmd.Poster,
	}); err != nil {
		logger.Warn(ctx).Err(err).Msg("failed to publish watchlist event")
	}

	return entries, nil
}

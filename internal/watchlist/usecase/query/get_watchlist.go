package query

import (
	"context"
	"fmt"

	"github.com/mammidi-vikram/netflix/internal/watchlist/domain"
	"github.com/mammidi-vikram/netflix/pkg/apperr"
)

// GetWatchlistQuery represents the query for a user's saved movies
type GetWatchlistQuery struct {
	UserID uint
}

// GetWatchlistHandler handles the watchlist query
type GetWatchlistHandler struct {
	repo domain.WatchlistRepository
}

// NewGetWatchlistHandler creates a new watchlist query handler
func NewGetWatchlistHandler(repo domain.WatchlistRepository) *GetWatchlistHandler {
	return &GetWatchlistHandler{repo: repo}
}

// Handle executes the query; a user with no watchlist gets an empty set
func (h *GetWatchlistHandler) Handle(ctx context.Context, q GetWatchlistQuery) ([]domain.Entry, error) {
	if q.UserID == 0 {
		return nil, apperr.Validation("invalid user id")
	}

	entries, err := h.repo.Entries(ctx, q.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load watchlist: %w", err)
	}
	return entries, nil
}

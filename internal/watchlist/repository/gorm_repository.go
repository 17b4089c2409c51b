package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mammidi-vikram/netflix/internal/watchlist/domain"
)

// GormWatchlistRepository implements WatchlistRepository using GORM.
//
// Mutations never follow a read-modify-write cycle: the lazy watchlist
// creation and the entry insert are both INSERT ... ON CONFLICT DO NOTHING,
// and removal is a keyed DELETE. The unique indexes arbitrate every race,
// so per-user operations are linearizable without any application lock.
type GormWatchlistRepository struct {
	db *gorm.DB
}

// NewGormWatchlistRepository creates a new GORM watchlist repository
func NewGormWatchlistRepository(db *gorm.DB) *GormWatchlistRepository {
	return &GormWatchlistRepository{db: db}
}

// Entries returns the user's current entry set
func (r *GormWatchlistRepository) Entries(ctx context.Context, userID uint) ([]domain.Entry, error) {
	var wl domain.Watchlist
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&wl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []domain.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load watchlist: %w", err)
	}

	return r.entriesOf(ctx, wl.ID)
}

// Add inserts the entry if absent, creating the watchlist on first use
func (r *GormWatchlistRepository) Add(ctx context.Context, userID uint, entry domain.Entry) ([]domain.Entry, error) {
	wlID, err := r.ensureWatchlist(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry.WatchlistID = wlID
	// Atomic add-if-absent: a duplicate TmdbID hits the composite unique
	// index and the insert silently does nothing, preserving the stored
	// title/poster snapshot.
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "watchlist_id"}, {Name: "tmdb_id"}},
			DoNothing: true,
		}).
		Create(&entry).Error
	if err != nil {
		return nil, fmt.Errorf("failed to add entry: %w", err)
	}

	return r.entriesOf(ctx, wlID)
}

// Remove deletes the entry with the given TmdbID if present
func (r *GormWatchlistRepository) Remove(ctx context.Context, userID uint, tmdbID int) ([]domain.Entry, error) {
	var wl domain.Watchlist
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&wl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []domain.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load watchlist: %w", err)
	}

	err = r.db.WithContext(ctx).
		Where("watchlist_id = ? AND tmdb_id = ?", wl.ID, tmdbID).
		Delete(&domain.Entry{}).Error
	if err != nil {
		return nil, fmt.Errorf("failed to remove entry: %w", err)
	}

	return r.entriesOf(ctx, wl.ID)
}

// ensureWatchlist creates the user's watchlist if it does not exist yet.
// Concurrent first adds both race the insert; the loser's conflict is a
// no-op and both proceed against the same row.
func (r *GormWatchlistRepository) ensureWatchlist(ctx context.Context, userID uint) (uint, error) {
	wl := domain.Watchlist{UserID: userID}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&wl).Error
	if err != nil {
		return 0, fmt.Errorf("failed to create watchlist: %w", err)
	}

	// On conflict the insert returns no id; fetch the winning row
	if wl.ID == 0 {
		if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&wl).Error; err != nil {
			return 0, fmt.Errorf("failed to load watchlist: %w", err)
		}
	}
	return wl.ID, nil
}

func (r *GormWatchlistRepository) entriesOf(ctx context.Context, watchlistID uint) ([]domain.Entry, error) {
	entries := []domain.Entry{}
	err := r.db.WithContext(ctx).
		Where("watchlist_id = ?", watchlistID).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

// AutoMigrate runs database migrations
func (r *GormWatchlistRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Watchlist{}, &domain.Entry{})
}

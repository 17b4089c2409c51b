package domain

import (
	"context"
	"time"
)

// Watchlist is the per-user collection of saved movies. It is created
// lazily on the first add and never deleted. The unique index on UserID
// enforces the 1:1 relationship at the storage layer.
type Watchlist struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"-"`
}

// TableName specifies the table name
func (Watchlist) TableName() string {
	return "watchlists"
}

// Entry is one saved movie. TmdbID is the provider's identifier and the
// natural key within a watchlist; title and poster are snapshots taken at
// add time and never refreshed.
type Entry struct {
	ID          uint      `json:"-" gorm:"primaryKey"`
	WatchlistID uint      `json:"-" gorm:"uniqueIndex:idx_watchlist_tmdb;not null"`
	TmdbID      int       `json:"tmdbId" gorm:"uniqueIndex:idx_watchlist_tmdb;not null"`
	Title       string    `json:"title"`
	Poster      string    `json:"poster"`
	CreatedAt   time.Time `json:"-"`
}

// TableName specifies the table name
func (Entry) TableName() string {
	return "watchlist_entries"
}

// WatchlistRepository is the storage contract for watchlist mutation.
// Implementations must make Add and Remove atomic per user: two concurrent
// adds with distinct ids may never lose one of them, and the set invariant
// (no duplicate TmdbID per user) is the store's responsibility, not the
// caller's.
type WatchlistRepository interface {
	// Entries returns the user's current entry set; an absent watchlist
	// yields an empty slice, not an error.
	Entries(ctx context.Context, userID uint) ([]Entry, error)

	// Add inserts the entry if its TmdbID is not already present, creating
	// the watchlist on first use. Re-adding an existing id is a no-op that
	// leaves the stored snapshot untouched. Returns the resulting set.
	Add(ctx context.Context, userID uint, entry Entry) ([]Entry, error)

	// Remove deletes the entry with the given TmdbID if present. Absent
	// entry or absent watchlist is not an error. Returns the resulting set.
	Remove(ctx context.Context, userID uint, tmdbID int) ([]Entry, error)
}

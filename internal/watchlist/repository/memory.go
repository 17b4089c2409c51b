package repository

import (
	"context"
	"sync"

	"github.com/mammidi-vikram/netflix/internal/watchlist/domain"
)

// MemoryWatchlistRepository is an in-memory WatchlistRepository for tests
// and local development. It takes the per-user mutual exclusion route: one
// lock scope per user id held for the whole mutation, so operations for the
// same user serialize while different users proceed independently. The
// outer mutex guards only the two maps, never a whole operation.
type MemoryWatchlistRepository struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
	lists map[uint][]domain.Entry
}

// NewMemoryWatchlistRepository creates an empty in-memory repository
func NewMemoryWatchlistRepository() *MemoryWatchlistRepository {
	return &MemoryWatchlistRepository{
		locks: make(map[uint]*sync.Mutex),
		lists: make(map[uint][]domain.Entry),
	}
}

func (r *MemoryWatchlistRepository) userLock(userID uint) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[userID] = l
	}
	return l
}

func (r *MemoryWatchlistRepository) load(userID uint) []domain.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := r.lists[userID]
	out := make([]domain.Entry, len(entries))
	copy(out, entries)
	return out
}

func (r *MemoryWatchlistRepository) store(userID uint, entries []domain.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists[userID] = entries
}

// Entries returns the user's current entry set
func (r *MemoryWatchlistRepository) Entries(ctx context.Context, userID uint) ([]domain.Entry, error) {
	l := r.userLock(userID)
	l.Lock()
	defer l.Unlock()
	return r.load(userID), nil
}

// Add inserts the entry if its TmdbID is not already present
func (r *MemoryWatchlistRepository) Add(ctx context.Context, userID uint, entry domain.Entry) ([]domain.Entry, error) {
	l := r.userLock(userID)
	l.Lock()
	defer l.Unlock()

	entries := r.load(userID)
	for _, e := range entries {
		if e.TmdbID == entry.TmdbID {
			// Present already: keep the stored snapshot untouched
			return entries, nil
		}
	}
	entries = append(entries, entry)
	r.store(userID, entries)

	out := make([]domain.Entry, len(entries))
	copy(out, entries)
	return out, nil
}

// Remove deletes the entry with the given TmdbID if present
func (r *MemoryWatchlistRepository) Remove(ctx context.Context, userID uint, tmdbID int) ([]domain.Entry, error) {
	l := r.userLock(userID)
	l.Lock()
	defer l.Unlock()

	entries := r.load(userID)
	for i, e := range entries {
		if e.TmdbID == tmdbID {
			entries = append(entries[:i], entries[i+1:]...)
			r.store(userID, entries)
			break
		}
	}

	out := make([]domain.Entry, len(entries))
	copy(out, entries)
	return out, nil
}

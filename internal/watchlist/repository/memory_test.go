package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/mammidi-vikram/netflix/internal/watchlist/domain"
	"github.com/mammidi-vikram/netflix/internal/watchlist/repository"
)

func TestEntries_UnknownUserIsEmpty(t *testing.T) {
	repo := repository.NewMemoryWatchlistRepository()

	entries, err := repo.Entries(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty set, got %+v", entries)
	}
}

func TestAdd_NoDuplicates(t *testing.T) {
	repo := repository.NewMemoryWatchlistRepository()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := repo.Add(ctx, 1, domain.Entry{TmdbID: 550, Title: "Fight Club"}); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	entries, _ := repo.Entries(ctx, 1)
	if len(entries) != 1 {
		t.Fatalf("set invariant violated: %d entries for one id", len(entries))
	}
}

func TestConcurrentAdds_NoLostUpdate(t *testing.T) {
	repo := repository.NewMemoryWatchlistRepository()
	ctx := context.Background()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(id int) {
			defer wg.Done()
			if _, err := repo.Add(ctx, 1, domain.Entry{
				TmdbID: id + 1,
				Title:  fmt.Sprintf("movie-%d", id+1),
			}); err != nil {
				t.Errorf("add %d: %v", id+1, err)
			}
		}(i)
	}
	wg.Wait()

	entries, err := repo.Entries(ctx, 1)
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(entries) != n {
		t.Fatalf("lost update: expected %d entries, got %d", n, len(entries))
	}

	seen := make(map[int]bool, n)
	for _, e := range entries {
		if seen[e.TmdbID] {
			t.Fatalf("duplicate tmdb id %d", e.TmdbID)
		}
		seen[e.TmdbID] = true
	}
}

func TestConcurrentAddRemove_SetStaysConsistent(t *testing.T) {
	repo := repository.NewMemoryWatchlistRepository()
	ctx := context.Background()

	// Interleave adds and removes over a small id space; whatever the final
	// interleaving, no id may appear twice.
	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers * 2)
	for i := 0; i < workers; i++ {
		id := (i % 10) + 1
		go func(id int) {
			defer wg.Done()
			repo.Add(ctx, 1, domain.Entry{TmdbID: id})
		}(id)
		go func(id int) {
			defer wg.Done()
			repo.Remove(ctx, 1, id)
		}(id)
	}
	wg.Wait()

	entries, _ := repo.Entries(ctx, 1)
	seen := make(map[int]bool)
	for _, e := range entries {
		if seen[e.TmdbID] {
			t.Fatalf("duplicate tmdb id %d after concurrent add/remove", e.TmdbID)
		}
		seen[e.TmdbID] = true
	}
}

func TestUsersAreIsolated(t *testing.T) {
	repo := repository.NewMemoryWatchlistRepository()
	ctx := context.Background()

	repo.Add(ctx, 1, domain.Entry{TmdbID: 550})
	repo.Add(ctx, 2, domain.Entry{TmdbID: 600})

	first, _ := repo.Entries(ctx, 1)
	second, _ := repo.Entries(ctx, 2)

	if len(first) != 1 || first[0].TmdbID != 550 {
		t.Fatalf("user 1 set wrong: %+v", first)
	}
	if len(second) != 1 || second[0].TmdbID != 600 {
		t.Fatalf("user 2 set wrong: %+v", second)
	}
}

package kafka

import "time"

// WatchlistEvent records a single watchlist mutation for downstream
// consumers (analytics, audit). Title/Poster are the denormalized snapshot
// carried by the entry at mutation time.
type WatchlistEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	UserID    uint      `json:"user_id"`
	TmdbID    int       `json:"tmdb_id"`
	Title     string    `json:"title,omitempty"`
	Poster    string    `json:"poster,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// UserRegisteredEvent records a new account
type UserRegisteredEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeEntryAdded     = "watchlist.entry.added"
	EventTypeEntryRemoved   = "watchlist.entry.removed"
	EventTypeUserRegistered = "user.registered"
)

// Kafka topics
const (
	TopicWatchlist = "watchlist-events"
	TopicUsers     = "user-events"
)

//go:build wireinject
// +build wireinject

package watchlist

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	watchlisthttp "github.com/mammidi-vikram/netflix/internal/watchlist/delivery/http"
	"github.com/mammidi-vikram/netflix/internal/watchlist/domain"
	"github.com/mammidi-vikram/netflix/internal/watchlist/repository"
	"github.com/mammidi-vikram/netflix/internal/watchlist/usecase/command"
	"github.com/mammidi-vikram/netflix/internal/watchlist/usecase/query"
	"github.com/mammidi-vikram/netflix/kafka"
	"github.com/mammidi-vikram/netflix/pkg/auth"
)

// ProvideWatchlistRepository provides the watchlist repository
func ProvideWatchlistRepository(db *gorm.DB) domain.WatchlistRepository {
	return repository.NewGormWatchlistRepository(db)
}

var RepositorySet = wire.NewSet(
	ProvideWatchlistRepository,
)

var HandlerSet = wire.NewSet(
	command.NewAddEntryHandler,
	command.NewRemoveEntryHandler,
	query.NewGetWatchlistHandler,
)

// InitializeHTTPHandler initializes the watchlist HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, tokens *auth.JWT, events *kafka.Publisher) (*watchlisthttp.WatchlistHandler, error) {
	wire.Build(
		RepositorySet,
		HandlerSet,
		watchlisthttp.NewWatchlistHandler,
	)
	return nil, nil
}

//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	userhttp "github.com/mammidi-vikram/netflix/internal/user/delivery/http"
	"github.com/mammidi-vikram/netflix/internal/user/domain"
	"github.com/mammidi-vikram/netflix/internal/user/repository"
	"github.com/mammidi-vikram/netflix/internal/user/usecase/command"
	"github.com/mammidi-vikram/netflix/internal/user/usecase/query"
	"github.com/mammidi-vikram/netflix/kafka"
	"github.com/mammidi-vikram/netflix/pkg/auth"
)

// ProvideUserRepository provides the user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepository(db)
}

var RepositorySet = wire.NewSet(
	ProvideUserRepository,
)

var HandlerSet = wire.NewSet(
	command.NewRegisterUserHandler,
	command.NewLoginUserHandler,
	command.NewUpdateProfileHandler,
	query.NewGetUserHandler,
)

// InitializeHTTPHandler initializes the user HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, tokens *auth.JWT, events *kafka.Publisher) (*userhttp.UserHandler, error) {
	wire.Build(
		RepositorySet,
		HandlerSet,
		userhttp.NewUserHandler,
	)
	return nil, nil
}

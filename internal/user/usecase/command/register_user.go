package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mammidi-vikram/netflix/internal/user/domain"
	"github.com/mammidi-vikram/netflix/kafka"
	"github.com/mammidi-vikram/netflix/pkg/apperr"
	"github.com/mammidi-vikram/netflix/pkg/auth"
	"github.com/mammidi-vikram/netflix/pkg/logger"
)

// RegisterUserCommand represents the command to register a new user
type RegisterUserCommand struct {
	Username string
	Email    string
	Password string
}

// RegisterUserHandler handles user registration command
type RegisterUserHandler struct {
	repo   domain.UserRepository
	events *kafka.Publisher
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository, events *kafka.Publisher) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo, events: events}
}

// Handle executes the register user command
func (h *RegisterUserHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*domain.User, error) {
	if cmd.Username == "" {
		return nil, apperr.Validation("username is required")
	}
	if cmd.Email == "" || !strings.Contains(cmd.Email, "@") {
		return nil, apperr.Validation("a valid email is required")
	}
	if len(cmd.Password) < 6 {
		return nil, apperr.Validation("password must be at least 6 characters")
	}

	// Advisory pre-checks; the unique indexes remain authoritative
	if existing, _ := h.repo.FindByUsername(cmd.Username); existing != nil {
		return nil, apperr.Conflict("username already exists")
	}
	if existing, _ := h.repo.FindByEmail(cmd.Email); existing != nil {
		return nil, apperr.Conflict("email already in use")
	}

	hashedPassword, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:  cmd.Username,
		Email:     cmd.Email,
		Password:  hashedPassword,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.repo.Create(user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperr.Conflict("username or email already in use")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Best effort: a lost event never fails the registration
	if err := h.events.PublishUserRegistered(ctx, kafka.UserRegisteredEvent{
		UserID:   user.ID,
		Username: user.Username,
	}); err != nil {
		logger.Warn(ctx).Err(err).Uint("user_id", user.ID).Msg("failed to publish registration event")
	}

	return user, nil
}

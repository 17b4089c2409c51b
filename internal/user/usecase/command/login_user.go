package command

import (
	"fmt"

	"github.com/mammidi-vikram/netflix/internal/user/domain"
	"github.com/mammidi-vikram/netflix/pkg/apperr"
	"github.com/mammidi-vikram/netflix/pkg/auth"
)

// LoginUserCommand represents the command to login a user
type LoginUserCommand struct {
	Email    string
	Password string
}

// LoginResponse represents the response after successful login
type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// LoginUserHandler handles user login command
type LoginUserHandler struct {
	repo   domain.UserRepository
	tokens *auth.JWT
}

// NewLoginUserHandler creates a new login user handler
func NewLoginUserHandler(repo domain.UserRepository, tokens *auth.JWT) *LoginUserHandler {
	return &LoginUserHandler{repo: repo, tokens: tokens}
}

// Handle executes the login user command
func (h *LoginUserHandler) Handle(cmd LoginUserCommand) (*LoginResponse, error) {
	if cmd.Email == "" {
		return nil, apperr.Validation("email is required")
	}
	if cmd.Password == "" {
		return nil, apperr.Validation("password is required")
	}

	// A missing user and a wrong password look the same to the caller
	user, err := h.repo.FindByEmail(cmd.Email)
	if err != nil {
		return nil, apperr.NotAuthorized()
	}

	if !auth.CheckPassword(user.Password, cmd.Password) {
		return nil, apperr.NotAuthorized()
	}

	token, err := h.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{
		Token: token,
		User:  user,
	}, nil
}

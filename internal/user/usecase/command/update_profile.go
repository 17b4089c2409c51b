package command

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mammidi-vikram/netflix/internal/user/domain"
	"github.com/mammidi-vikram/netflix/pkg/apperr"
)

// UpdateProfileCommand represents the command to update a user's profile
type UpdateProfileCommand struct {
	ID       uint
	Username string
	Email    string
}

// UpdateProfileHandler handles profile update command
type UpdateProfileHandler struct {
	repo domain.UserRepository
}

// NewUpdateProfileHandler creates a new update profile handler
func NewUpdateProfileHandler(repo domain.UserRepository) *UpdateProfileHandler {
	return &UpdateProfileHandler{repo: repo}
}

// Handle executes the profile update. The email uniqueness check excludes
// the acting user's own record, so keeping the current address is always
// allowed. No mutation happens on any failure path.
func (h *UpdateProfileHandler) Handle(cmd UpdateProfileCommand) (*domain.User, error) {
	if cmd.ID == 0 {
		return nil, apperr.Validation("invalid user id")
	}
	if cmd.Username == "" {
		return nil, apperr.Validation("username is required")
	}
	if cmd.Email == "" || !strings.Contains(cmd.Email, "@") {
		return nil, apperr.Validation("a valid email is required")
	}

	user, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	taken, err := h.repo.ExistsOtherWithEmail(cmd.Email, cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if taken {
		return nil, apperr.Conflict("email already in use")
	}

	user.Username = cmd.Username
	user.Email = cmd.Email
	user.UpdatedAt = time.Now()

	if err := h.repo.Update(user); err != nil {
		// The check above races with concurrent updates; the unique index
		// closes that window and reports it here.
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperr.Conflict("email already in use")
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

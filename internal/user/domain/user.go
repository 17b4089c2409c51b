package domain

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no user matches a lookup
var ErrNotFound = errors.New("user not found")

// ErrDuplicate is returned when a unique index rejects a write
var ErrDuplicate = errors.New("duplicate user attribute")

// User represents the user entity (domain model)
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // Never expose the credential hash in JSON
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(user *User) error
	FindByID(id uint) (*User, error)
	FindByUsername(username string) (*User, error)
	FindByEmail(email string) (*User, error)
	// ExistsOtherWithEmail reports whether a user other than excludeID
	// already holds the given email.
	ExistsOtherWithEmail(email string, excludeID uint) (bool, error)
	Update(user *User) error
}

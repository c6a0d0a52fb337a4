package store

import (
	"errors"

	"codeprep/backend/models"
)

// ErrNotFound is returned when no account matches the given email.
var ErrNotFound = errors.New("user not found")

// Users is the account record store. The toggle flow is a plain
// read-modify-write against one record: last write wins, no locking.
type Users interface {
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Save(user *models.User) error
}

package user

import (
	"errors"

	"github.com/arcadehub/crisscross/internal/models"
)

const (
	InMemoryStorageType = "in-memory"
)

var ErrUserNotFound = errors.New("user not found")

// Registry tracks every connection that ever registered. Entries are
// never removed; disconnected users are only marked offline.
type Registry interface {
	// Register stores a new user for the connection, online and not playing.
	Register(id string, conn models.Conn) *models.User

	// Get returns the user for the connection id, or ErrUserNotFound.
	Get(id string) (*models.User, error)

	// List returns all users in registration order. Matchmaking depends
	// on this ordering.
	List() []*models.User
}

package room

import (
	"errors"

	"github.com/arcadehub/crisscross/internal/models"
)

const (
	InMemoryStorageType = "in-memory"
)

var ErrRoomNotFound = errors.New("room not found")

// Collection holds every room ever created, in creation order. Rooms
// are never removed; a room whose player left simply stays one-sided.
type Collection interface {
	// Append adds a freshly created room.
	Append(r *models.Room)

	// FindByPlayer returns the first room, in creation order, that has
	// the given connection id on either side, or ErrRoomNotFound.
	FindByPlayer(id string) (*models.Room, error)

	// Len returns the number of rooms ever created.
	Len() int
}

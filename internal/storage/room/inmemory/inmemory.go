package inmemory

import (
	"sync"

	"go.uber.org/zap"

	"github.com/arcadehub/crisscross/internal/models"
	"github.com/arcadehub/crisscross/internal/storage/room"
)

type Collection struct {
	rooms []*models.Room

	logger *zap.Logger

	mtx *sync.Mutex
}

func NewCollection(logger *zap.Logger) *Collection {
	return &Collection{
		rooms:  make([]*models.Room, 0),
		logger: logger,
		mtx:    &sync.Mutex{},
	}
}

func (c *Collection) Append(r *models.Room) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.rooms = append(c.rooms, r)
	c.logger.Info("room added to collection",
		zap.String("player1", r.Player1.ID),
		zap.String("player2", r.Player2.ID),
	)
}

func (c *Collection) FindByPlayer(id string) (*models.Room, error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	for _, r := range c.rooms {
		if r.Has(id) {
			return r, nil
		}
	}
	return nil, room.ErrRoomNotFound
}

func (c *Collection) Len() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return len(c.rooms)
}

package inmemory

import (
	"sync"

	"go.uber.org/zap"

	"github.com/arcadehub/crisscross/internal/models"
	"github.com/arcadehub/crisscross/internal/storage/user"
)

type Registry struct {
	data  map[string]*models.User
	order []string

	logger *zap.Logger

	mtx *sync.Mutex
}

func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		data:   make(map[string]*models.User),
		order:  make([]string, 0),
		logger: logger,
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(id string, conn models.Conn) *models.User {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	u := &models.User{
		ID:     id,
		Online: true,
		Conn:   conn,
	}
	r.data[id] = u
	r.order = append(r.order, id)
	r.logger.Info("user added to registry", zap.String("key", id))
	return u
}

func (r *Registry) Get(id string) (*models.User, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	v, ok := r.data[id]
	if !ok {
		r.logger.Info("user not found in registry", zap.String("key", id))
		return nil, user.ErrUserNotFound
	}
	return v, nil
}

func (r *Registry) List() []*models.User {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	users := make([]*models.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.data[id])
	}
	return users
}

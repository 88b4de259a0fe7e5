package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/arcadehub/crisscross/internal/rest/ws"
	"github.com/arcadehub/crisscross/internal/storage/room"
	inmemRoom "github.com/arcadehub/crisscross/internal/storage/room/inmemory"
	"github.com/arcadehub/crisscross/internal/storage/user"
	inmemUser "github.com/arcadehub/crisscross/internal/storage/user/inmemory"
)

type Rest struct {
	config *Config

	server *http.Server
}

func NewRest(config *Config) *Rest {
	return &Rest{
		config: config,
	}
}

func (rest *Rest) Start() {
	router := chi.NewRouter()

	// Define the /ping endpoint
	router.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, err := w.Write([]byte("pong"))
		if err != nil {
			return
		}
	})

	// Define the /ws endpoint
	usersRegistry, roomsCollection := rest.defineStorage()

	wsServer := ws.NewWebSocketHandler(
		usersRegistry,
		roomsCollection,
		rest.config.AllowedOrigin,
		rest.config.Logger,
	)
	router.HandleFunc("/ws", wsServer.Handle)

	rest.server = &http.Server{
		Addr:              ":" + strconv.Itoa(rest.config.Port),
		Handler:           router,
		ReadHeaderTimeout: 0,
	}
	if err := rest.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		rest.config.Logger.Error("server error", zap.Error(err))
		return
	}
}

func (rest *Rest) Stop() {
	if rest.server == nil {
		return
	}
	if err := rest.server.Shutdown(context.Background()); err != nil {
		rest.config.Logger.Error("server error", zap.Error(err))
	}
}

func (rest *Rest) defineStorage() (user.Registry, room.Collection) {
	var usersRegistry user.Registry
	var roomsCollection room.Collection

	switch rest.config.UsersStorageType {
	case user.InMemoryStorageType:
		rest.config.Logger.Info("Using in-memory storage for users")
		usersRegistry = inmemUser.NewRegistry(rest.config.Logger)
	default:
		rest.config.Logger.Info("Using in-memory storage for users")
		usersRegistry = inmemUser.NewRegistry(rest.config.Logger)
	}
	switch rest.config.RoomsStorageType {
	case room.InMemoryStorageType:
		rest.config.Logger.Info("Using in-memory storage for rooms")
		roomsCollection = inmemRoom.NewCollection(rest.config.Logger)
	default:
		rest.config.Logger.Info("Using in-memory storage for rooms")
		roomsCollection = inmemRoom.NewCollection(rest.config.Logger)
	}

	return usersRegistry, roomsCollection
}

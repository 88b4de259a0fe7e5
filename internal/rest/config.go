package rest

import (
	"go.uber.org/zap"
)

type Config struct {
	// Port is the port where the server will listen
	Port int

	// AllowedOrigin is the client origin accepted on websocket upgrade;
	// empty allows any origin
	AllowedOrigin string

	// UsersStorageType selects the users registry implementation
	UsersStorageType string

	// RoomsStorageType selects the room collection implementation
	RoomsStorageType string

	Logger *zap.Logger
}

package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/arcadehub/crisscross/internal/models"
	roomStorage "github.com/arcadehub/crisscross/internal/storage/room"
	userStorage "github.com/arcadehub/crisscross/internal/storage/user"
)

const (
	EventRequestToPlay    = "request_to_play"
	EventOpponentFound    = "OpponentFound"
	EventOpponentNotFound = "OpponentNotFound"
	EventMoveFromClient   = "playerMoveFromClient"
	EventMoveFromServer   = "playerMoveFromServer"
	EventRematchRequest   = "rematchRequestFromPlayer"
	EventRematchOrder     = "rematchOrderFromServer"
	EventOpponentLeft     = "opponentLeftMatch"
)

type WebSocketHandler struct {
	// upgrader is used to upgrade the HTTP connection to a WebSocket connection
	upgrader *websocket.Upgrader

	// users is the registry of every connection ever seen
	users userStorage.Registry

	// rooms is the collection of every paired session ever created
	rooms roomStorage.Collection

	// mtx serializes event handling across connections. Every handler runs
	// to completion while holding it; that atomicity is the only
	// synchronization the registry and room collection rely on.
	mtx sync.Mutex

	logger *zap.Logger
}

func NewWebSocketHandler(
	users userStorage.Registry,
	rooms roomStorage.Collection,
	allowedOrigin string,
	logger *zap.Logger,
) *WebSocketHandler {
	return &WebSocketHandler{
		upgrader: &websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				if allowedOrigin == "" {
					return true
				}
				return r.Header.Get("Origin") == allowedOrigin
			},
		},
		users:  users,
		rooms:  rooms,
		logger: logger,
	}
}

func (ws *WebSocketHandler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := ws.upgrader.Upgrade(w, r, nil)
	if err != nil {
		ws.logger.Error("Failed to upgrade connection", zap.Error(err))
		return
	}
	defer conn.Close()

	connID := uuid.NewString()
	ws.connect(connID, conn)
	ws.logger.Info("Connection upgraded successfully", zap.String("connID", connID))

	for {
		mt, msg, err := conn.ReadMessage()
		if err != nil || mt == websocket.CloseMessage {
			ws.disconnect(connID)
			ws.logger.Info("Connection closed", zap.String("connID", connID))
			break
		}

		// Handled synchronously: events from one connection are processed
		// in the order they arrive.
		ws.messageHandler(connID, msg)
	}
}

func (ws *WebSocketHandler) messageHandler(connID string, msg []byte) {
	message, err := messageDefiner(msg)
	if err != nil {
		ws.logger.Debug("Failed to define message", zap.Error(err))
		return
	}

	switch v := message.(type) {
	case MessagePlayRequest:
		ws.logger.Info("Received MessagePlayRequest", zap.String("connID", connID))
		ws.requestToPlay(connID, v.PlayerName)
	case MessageMoveRequest:
		ws.relayMove(connID, v.Data)
	case MessageRematchRequest:
		ws.logger.Info("Received MessageRematchRequest", zap.String("connID", connID))
		ws.rematchRequest(connID, v.PlayingAs)
	}
}

func (ws *WebSocketHandler) connect(connID string, conn models.Conn) {
	ws.mtx.Lock()
	defer ws.mtx.Unlock()

	ws.users.Register(connID, conn)
}

func (ws *WebSocketHandler) disconnect(connID string) {
	ws.mtx.Lock()
	defer ws.mtx.Unlock()

	// Mark the user gone; the registry entry itself stays.
	u, err := ws.users.Get(connID)
	if err != nil {
		return
	}
	u.Online = false
	u.Playing = false

	// Notify the surviving peer of the first room this user is in.
	currentRoom, err := ws.rooms.FindByPlayer(connID)
	if err != nil {
		return
	}

	ws.send(currentRoom.Other(connID), MessageOpponentLeftResponse{
		Message: Message{Event: EventOpponentLeft},
	})
}

// relayMove forwards the payload verbatim to the sender's room peer.
// The server never inspects move contents.
func (ws *WebSocketHandler) relayMove(connID string, payload json.RawMessage) {
	ws.mtx.Lock()
	defer ws.mtx.Unlock()

	currentRoom, err := ws.rooms.FindByPlayer(connID)
	if err != nil {
		return
	}

	ws.send(currentRoom.Other(connID), MessageMoveResponse{
		Message: Message{Event: EventMoveFromServer},
		Data:    payload,
	})
}

func (ws *WebSocketHandler) send(u *models.User, v interface{}) {
	if err := u.Conn.WriteJSON(v); err != nil {
		// A dead peer is handled by its own disconnect event.
		ws.logger.Debug("Failed to write message", zap.String("connID", u.ID), zap.Error(err))
	}
}

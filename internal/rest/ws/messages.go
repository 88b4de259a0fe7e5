package ws

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/arcadehub/crisscross/internal/models"
)

var ErrInvalidMessage = errors.New("invalid message")

type Message struct {
	Event string `json:"event"`
}

type MessagePlayRequest struct {
	Message
	PlayerName string `json:"playerName"`
}

type MessageOpponentFoundResponse struct {
	Message
	OpponentName string        `json:"opponentName"`
	PlayingAs    models.Symbol `json:"playingAs"`
}

type MessageOpponentNotFoundResponse struct {
	Message
}

// MessageMoveRequest carries an opaque move payload. Data stays raw so
// the relay forwards the client's bytes untouched.
type MessageMoveRequest struct {
	Message
	Data json.RawMessage `json:"data"`
}

type MessageMoveResponse struct {
	Message
	Data json.RawMessage `json:"data"`
}

// MessageRematchRequest optionally carries the symbol the player wants
// to hold before the swap; empty means no preference.
type MessageRematchRequest struct {
	Message
	PlayingAs models.Symbol `json:"playingAs,omitempty"`
}

type MessageRematchOrderResponse struct {
	Message
	PlayingAs      models.Symbol `json:"playingAs"`
	GameState      models.Board  `json:"gameState"`
	StartingPlayer models.Symbol `json:"startingPlayer"`
}

type MessageOpponentLeftResponse struct {
	Message
}

func messageDefiner(msg []byte) (interface{}, error) {
	var message Message
	if err := json.Unmarshal(msg, &message); err != nil {
		return nil, ErrInvalidMessage
	}
	switch message.Event {
	case EventRequestToPlay:
		var playRequest MessagePlayRequest
		if err := json.Unmarshal(msg, &playRequest); err != nil {
			return nil, fmt.Errorf("error Unmarshaling MessagePlayRequest: %w", err)
		}
		return playRequest, nil
	case EventMoveFromClient:
		var moveRequest MessageMoveRequest
		if err := json.Unmarshal(msg, &moveRequest); err != nil {
			return nil, fmt.Errorf("error Unmarshaling MessageMoveRequest: %w", err)
		}
		return moveRequest, nil
	case EventRematchRequest:
		var rematchRequest MessageRematchRequest
		if err := json.Unmarshal(msg, &rematchRequest); err != nil {
			return nil, fmt.Errorf("error Unmarshaling MessageRematchRequest: %w", err)
		}
		return rematchRequest, nil
	}
	return nil, ErrInvalidMessage
}

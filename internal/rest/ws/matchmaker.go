package ws

import (
	"go.uber.org/zap"

	"github.com/arcadehub/crisscross/internal/models"
)

// requestToPlay pairs the requester with the earliest-registered idle
// user. The earlier party always plays cross and the requester circle;
// the requester starts the first round.
func (ws *WebSocketHandler) requestToPlay(connID string, playerName string) {
	ws.mtx.Lock()
	defer ws.mtx.Unlock()

	requester, err := ws.users.Get(connID)
	if err != nil {
		return
	}
	requester.PlayerName = playerName

	// First idle user in registration order wins the pairing.
	var opponent *models.User
	for _, u := range ws.users.List() {
		if u.Online && !u.Playing && u.ID != connID {
			opponent = u
			break
		}
	}

	if opponent == nil {
		// No retry is scheduled; the client re-issues the request.
		ws.send(requester, MessageOpponentNotFoundResponse{
			Message: Message{Event: EventOpponentNotFound},
		})
		return
	}

	opponent.Playing = true
	requester.Playing = true
	opponent.PlayingAs = models.SymbolCross
	requester.PlayingAs = models.SymbolCircle

	ws.rooms.Append(models.NewRoom(opponent, requester))

	// Each side gets the other's name and its own symbol.
	ws.send(opponent, MessageOpponentFoundResponse{
		Message:      Message{Event: EventOpponentFound},
		OpponentName: requester.PlayerName,
		PlayingAs:    opponent.PlayingAs,
	})
	ws.send(requester, MessageOpponentFoundResponse{
		Message:      Message{Event: EventOpponentFound},
		OpponentName: opponent.PlayerName,
		PlayingAs:    requester.PlayingAs,
	})

	ws.logger.Info("Users paired",
		zap.String("player1", opponent.ID),
		zap.String("player2", requester.ID),
	)
}

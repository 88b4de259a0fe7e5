package ws

import (
	"go.uber.org/zap"

	"github.com/arcadehub/crisscross/internal/models"
)

// rematchRequest records one side's rematch intent. Nothing happens
// until both sides of the room have asked; the second matching request
// swaps symbols, resets the board and toggles the starter.
func (ws *WebSocketHandler) rematchRequest(connID string, playingAs models.Symbol) {
	ws.mtx.Lock()
	defer ws.mtx.Unlock()

	currentRoom, err := ws.rooms.FindByPlayer(connID)
	if err != nil {
		// Stale request after a disconnect, nothing to do.
		return
	}

	// Re-requesting before the partner answers just re-sets the flag.
	currentRoom.RematchFlags[connID] = true
	if playingAs != "" {
		currentRoom.PlayerByID(connID).PlayingAs = playingAs
	}

	for _, requested := range currentRoom.RematchFlags {
		if !requested {
			return
		}
	}

	// Both sides asked: swap symbols and start the next round.
	p1, p2 := currentRoom.Player1, currentRoom.Player2
	p1.PlayingAs, p2.PlayingAs = p2.PlayingAs, p1.PlayingAs

	currentRoom.RematchFlags[p1.ID] = false
	currentRoom.RematchFlags[p2.ID] = false

	board := models.NewBoard()

	newStarter := p1
	if currentRoom.LastStarterID == p1.ID {
		newStarter = p2
	}
	currentRoom.LastStarterID = newStarter.ID

	// Each side gets its own post-swap symbol; startingPlayer is the new
	// starter's post-swap symbol.
	for _, p := range []*models.User{p1, p2} {
		ws.send(p, MessageRematchOrderResponse{
			Message:        Message{Event: EventRematchOrder},
			PlayingAs:      p.PlayingAs,
			GameState:      board,
			StartingPlayer: newStarter.PlayingAs,
		})
	}

	ws.logger.Info("Rematch barrier satisfied",
		zap.String("player1", p1.ID),
		zap.String("player2", p2.ID),
		zap.String("starter", newStarter.ID),
	)
}

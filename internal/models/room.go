package models

// Room is the state for one paired two-player session.
type Room struct {
	// Player1 is the user who was waiting when the pairing happened.
	Player1 *User

	// Player2 is the user whose play request triggered the pairing.
	Player2 *User

	// RematchFlags tracks, per connection id, whether that player has
	// requested a rematch since the last reset.
	RematchFlags map[string]bool

	// LastStarterID is the connection id of whoever started the most
	// recently completed round.
	LastStarterID string
}

// NewRoom creates a room for a freshly paired session. Player2, the
// pairing triggerer, starts the first round.
func NewRoom(player1, player2 *User) *Room {
	return &Room{
		Player1: player1,
		Player2: player2,
		RematchFlags: map[string]bool{
			player1.ID: false,
			player2.ID: false,
		},
		LastStarterID: player2.ID,
	}
}

// Has reports whether the user with the given connection id is one of
// the room's two players.
func (r *Room) Has(id string) bool {
	return r.Player1.ID == id || r.Player2.ID == id
}

// PlayerByID returns the room's player with the given connection id,
// or nil if neither matches.
func (r *Room) PlayerByID(id string) *User {
	switch id {
	case r.Player1.ID:
		return r.Player1
	case r.Player2.ID:
		return r.Player2
	}
	return nil
}

// Other returns the room's player on the opposite side of the given
// connection id, or nil if the id is not in the room.
func (r *Room) Other(id string) *User {
	switch id {
	case r.Player1.ID:
		return r.Player2
	case r.Player2.ID:
		return r.Player1
	}
	return nil
}

package models

// Symbol is one of the two mutually exclusive markers identifying a
// player's pieces for a round.
type Symbol string

const (
	SymbolCross  Symbol = "cross"
	SymbolCircle Symbol = "circle"
)

// Conn is the write side of a player's connection.
type Conn interface {
	WriteJSON(v interface{}) error
}

// User is a struct that represents one live connection's game state.
type User struct {
	// ID is the unique identifier of the connection, stable for its lifetime.
	ID string

	// Online is true while the connection is open.
	Online bool

	// Playing is true while the user is assigned to an active room.
	Playing bool

	// PlayerName is set on the user's first play request.
	PlayerName string

	// PlayingAs is the user's current symbol; empty until paired.
	PlayingAs Symbol

	// Conn is the connection of the user.
	Conn Conn
}

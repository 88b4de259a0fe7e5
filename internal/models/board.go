package models

// Board is the 3x3 game grid sent to clients when a round starts over.
type Board [3][3]int

// NewBoard returns the fixed initial layout: cells numbered 1 through 9
// in row-major order.
func NewBoard() Board {
	return Board{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRoom(t *testing.T) {
	p1 := &User{ID: "a"}
	p2 := &User{ID: "b"}

	r := NewRoom(p1, p2)

	assert.Same(t, p1, r.Player1)
	assert.Same(t, p2, r.Player2)
	assert.Equal(t, map[string]bool{"a": false, "b": false}, r.RematchFlags)
	assert.Equal(t, "b", r.LastStarterID)
}

func TestRoomLookups(t *testing.T) {
	p1 := &User{ID: "a"}
	p2 := &User{ID: "b"}
	r := NewRoom(p1, p2)

	assert.True(t, r.Has("a"))
	assert.True(t, r.Has("b"))
	assert.False(t, r.Has("c"))

	assert.Same(t, p1, r.PlayerByID("a"))
	assert.Same(t, p2, r.PlayerByID("b"))
	assert.Nil(t, r.PlayerByID("c"))

	assert.Same(t, p2, r.Other("a"))
	assert.Same(t, p1, r.Other("b"))
	assert.Nil(t, r.Other("c"))
}

func TestNewBoard(t *testing.T) {
	assert.Equal(t, Board{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}, NewBoard())
}

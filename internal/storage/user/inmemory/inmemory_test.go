package inmemory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/arcadehub/crisscross/internal/storage/user"
)

type nopConn struct{}

func (nopConn) WriteJSON(interface{}) error { return nil }

func TestRegisterAndGet(t *testing.T) {
	r := NewRegistry(zap.NewNop())

	u := r.Register("c1", nopConn{})
	assert.Equal(t, "c1", u.ID)
	assert.True(t, u.Online)
	assert.False(t, u.Playing)

	got, err := r.Get("c1")
	require.NoError(t, err)
	assert.Same(t, u, got)
}

func TestGetUnknown(t *testing.T) {
	r := NewRegistry(zap.NewNop())

	_, err := r.Get("ghost")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestListKeepsRegistrationOrder(t *testing.T) {
	r := NewRegistry(zap.NewNop())

	r.Register("c3", nopConn{})
	r.Register("c1", nopConn{})
	r.Register("c2", nopConn{})

	users := r.List()
	require.Len(t, users, 3)
	assert.Equal(t, "c3", users[0].ID)
	assert.Equal(t, "c1", users[1].ID)
	assert.Equal(t, "c2", users[2].ID)
}

package engine_test

import (
	"testing"
	"time"

	"anonchat/backend/internal/engine"
	"anonchat/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomStoreIndexes(t *testing.T) {
	rs := engine.NewRoomStore()
	room := models.NewRoom("a", "b", time.Now())
	rs.Add(room)

	got, ok := rs.Get(room.ID)
	require.True(t, ok)
	assert.Same(t, room, got)

	byA, ok := rs.ByMember("a")
	require.True(t, ok)
	assert.Same(t, room, byA)

	byB, ok := rs.ByMember("b")
	require.True(t, ok)
	assert.Same(t, room, byB)

	_, ok = rs.ByMember("c")
	assert.False(t, ok)
}

func TestRoomStoreRemove(t *testing.T) {
	rs := engine.NewRoomStore()
	room := models.NewRoom("a", "b", time.Now())
	rs.Add(room)

	rs.Remove(room.ID)

	_, ok := rs.Get(room.ID)
	assert.False(t, ok)
	_, ok = rs.ByMember("a")
	assert.False(t, ok)
	_, ok = rs.ByMember("b")
	assert.False(t, ok)
	assert.Zero(t, rs.Len())

	// Removing an unknown room is a no-op.
	rs.Remove("ghost")
}

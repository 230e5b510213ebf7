package storage_test

import (
	"testing"
	"time"

	"anonchat/backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The service must behave as a silent no-op when it has no backing
// handles, so a deployment without Postgres or Redis stays functional.
func TestServiceWithoutHandlesIsNoOp(t *testing.T) {
	s := storage.NewStorageService(nil, nil)

	assert.NoError(t, s.RecordRoomStarted("r1", []string{"a", "b"}, time.Now()))
	assert.NoError(t, s.RecordRoomEnded("r1", time.Now(), 1234))
	assert.NoError(t, s.IncrCounter(storage.CounterMatches))

	n, err := s.Counter(storage.CounterMatches)
	require.NoError(t, err)
	assert.Zero(t, n)

	counters, err := s.Counters()
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{
		storage.CounterMatches:       0,
		storage.CounterStalePartners: 0,
		storage.CounterRoomsClosed:   0,
	}, counters)

	recs, err := s.RecentRooms(10)
	require.NoError(t, err)
	assert.Empty(t, recs)

	removed, err := s.PurgeBefore(time.Now())
	require.NoError(t, err)
	assert.Zero(t, removed)
}

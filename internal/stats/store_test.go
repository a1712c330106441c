package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/varnamala/internal/store"
)

func TestStoreLoadMissing(t *testing.T) {
	s := NewStore(store.NewMemoryKV())
	d, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, d.TotalGames)
	assert.NotNil(t, d.Languages)
	assert.NotNil(t, d.RecentGames)
}

func TestStoreLoadMalformed(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	require.NoError(t, kv.Put(ctx, Key, []byte(`{"totalGames": "lots"`)))

	d, err := NewStore(kv).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, d.TotalGames)

	// Recording over a malformed document replaces it.
	_, err = NewStore(kv).Record(ctx, rec("hindi", Memory, 8, 20))
	require.NoError(t, err)
	d, err = NewStore(kv).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, d.TotalGames)
}

func TestStoreRecordPersists(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	s := NewStore(kv)

	_, err := s.Record(ctx, rec("hindi", Memory, 10, 30))
	require.NoError(t, err)
	d, err := s.Record(ctx, rec("hindi", Memory, 6, 45))
	require.NoError(t, err)
	assert.Equal(t, 6, d.Languages["hindi"].Memory.BestMoves)

	reloaded, err := NewStore(kv).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.TotalGames)
	assert.Equal(t, 30, reloaded.Languages["hindi"].Memory.BestTime)
	assert.True(t, reloaded.RecentGames[0].Date.Equal(day))
}

func TestStoreRecordStampsDate(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	s := NewStore(store.NewMemoryKV(), WithClock(func() time.Time { return now }))

	d, err := s.Record(context.Background(), GameStats{Language: "tamil", GameType: Drawing, Moves: 10, Time: 5})
	require.NoError(t, err)
	assert.True(t, d.RecentGames[0].Date.Equal(now))
	assert.True(t, d.Languages["tamil"].Drawing.LastPlayed.Equal(now))
}

func TestStoreRejectsInvalidRecords(t *testing.T) {
	s := NewStore(store.NewMemoryKV())
	ctx := context.Background()

	bad := []GameStats{
		{Language: "hindi", GameType: 0},
		{Language: "", GameType: Memory},
		{Language: "hindi", GameType: Memory, Moves: -1},
	}
	for _, r := range bad {
		_, err := s.Record(ctx, r)
		assert.ErrorIs(t, err, ErrInvalidRecord)
	}
}

func TestStoreSaveFailureKeepsMergedValue(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	s := NewStore(kv)
	boom := errors.New("quota exceeded")

	kv.FailWrites(boom)
	d, err := s.Record(ctx, rec("hindi", Memory, 10, 30))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, d.TotalGames)

	_, err = kv.Get(ctx, Key)
	assert.ErrorIs(t, err, store.ErrNotFound, "nothing was persisted")

	kv.FailWrites(nil)
	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.TotalGames, "unsaved game still counted")

	_, err = s.Record(ctx, rec("hindi", Memory, 8, 25))
	require.NoError(t, err)
	loaded, err = NewStore(kv).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.TotalGames)
	assert.Len(t, loaded.RecentGames, 2)
	assert.Equal(t, 8, loaded.Languages["hindi"].Memory.BestMoves)
}

func TestStoreReadFailureKeepsSavedHistory(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	for i := range 5 {
		_, err := NewStore(kv).Record(ctx, rec("hindi", Memory, 10+i, 30))
		require.NoError(t, err)
	}

	s := NewStore(kv)
	busy := errors.New("disk busy")
	kv.FailReads(busy)
	d, err := s.Record(ctx, rec("hindi", Memory, 7, 20))
	assert.ErrorIs(t, err, busy)
	assert.Equal(t, 1, d.TotalGames, "session keeps playing in memory")

	kv.FailReads(nil)
	persisted, err := NewStore(kv).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, persisted.TotalGames, "saved history untouched")
	assert.Equal(t, 10, persisted.Languages["hindi"].Memory.BestMoves)

	// Once reads work again the held game lands on top of the saved history.
	d, err = s.Record(ctx, rec("tamil", Memory, 9, 15))
	require.NoError(t, err)
	assert.Equal(t, 7, d.TotalGames)

	persisted, err = NewStore(kv).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, persisted.TotalGames)
	assert.Len(t, persisted.RecentGames, 7)
	assert.Equal(t, 7, persisted.Languages["hindi"].Memory.BestMoves)
	assert.Equal(t, 1, persisted.Languages["tamil"].TotalGames)
}

func TestStoreLoadReadFailure(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	s := NewStore(kv)
	_, err := s.Record(ctx, rec("hindi", Memory, 10, 30))
	require.NoError(t, err)

	kv.FailReads(errors.New("io error"))
	d, err := s.Load(ctx)
	assert.Error(t, err)
	assert.Equal(t, 1, d.TotalGames, "last value seen is returned")
}

func TestStoreRetention(t *testing.T) {
	ctx := context.Background()
	s := NewStore(store.NewMemoryKV(), WithRetention(3))
	for i := range 5 {
		_, err := s.Record(ctx, rec("hindi", Memory, i+1, 10))
		require.NoError(t, err)
	}
	d, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, d.RecentGames, 3)
	assert.Equal(t, 5, d.TotalGames)
	assert.Equal(t, 1, d.Languages["hindi"].Memory.BestMoves)
}

func TestStoreReset(t *testing.T) {
	ctx := context.Background()
	s := NewStore(store.NewMemoryKV())
	for _, r := range []GameStats{
		rec("hindi", Memory, 10, 30),
		rec("tamil", Memory, 8, 20),
		rec("hindi", WordBuilder, 2, 60),
	} {
		_, err := s.Record(ctx, r)
		require.NoError(t, err)
	}

	require.NoError(t, s.Reset(ctx, "hindi"))
	d, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, d.TotalGames)
	assert.NotContains(t, d.Languages, "hindi")
	require.Len(t, d.RecentGames, 1)
	assert.Equal(t, "tamil", d.RecentGames[0].Language)

	require.NoError(t, s.Reset(ctx, ""))
	d, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, d.TotalGames)
}

func TestStoreSnapshot(t *testing.T) {
	ctx := context.Background()
	s := NewStore(store.NewMemoryKV())
	_, err := s.Record(ctx, rec("hindi", Memory, 10, 30))
	require.NoError(t, err)

	raw, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"gameType": "memory"`)
}

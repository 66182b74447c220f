package progress

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleKick() KickEvent {
	return KickEvent{
		ID:          "kick-1",
		ProfileID:   "profile-1",
		StoryID:     "counting-kicks",
		SectionName: "evening-session",
		Timestamp:   1714557600000,
		SessionID:   "session-1",
	}
}

func TestLogKick_AppendsInOrder(t *testing.T) {
	store := NewKickStore(NewMemoryKV(), testLogger())
	ctx := context.Background()

	first := sampleKick()
	second := sampleKick()
	second.ID = "kick-2"
	second.Timestamp = first.Timestamp + 60_000

	require.NoError(t, store.LogKick(ctx, first))
	require.NoError(t, store.LogKick(ctx, second))

	kicks := store.Kicks(ctx, "profile-1")
	require.Len(t, kicks, 2)
	assert.Equal(t, "kick-1", kicks[0].ID)
	assert.Equal(t, "kick-2", kicks[1].ID)
}

func TestLogKick_ValidationRejectsBeforeWrite(t *testing.T) {
	kv := NewMemoryKV()
	store := NewKickStore(kv, testLogger())
	ctx := context.Background()

	invalid := []KickEvent{
		func() KickEvent { e := sampleKick(); e.ID = ""; return e }(),
		func() KickEvent { e := sampleKick(); e.ProfileID = ""; return e }(),
		func() KickEvent { e := sampleKick(); e.StoryID = ""; return e }(),
		func() KickEvent { e := sampleKick(); e.SectionName = ""; return e }(),
		func() KickEvent { e := sampleKick(); e.Timestamp = 0; return e }(),
		func() KickEvent { e := sampleKick(); e.SessionID = ""; return e }(),
	}

	for i, ev := range invalid {
		assert.Error(t, store.LogKick(ctx, ev), "case %d", i)
	}

	// Storage untouched by any rejected event.
	_, err := kv.Get(ctx, fmt.Sprintf(kickKeyPattern, "profile-1"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessions_Aggregation(t *testing.T) {
	store := NewKickStore(NewMemoryKV(), testLogger())
	ctx := context.Background()

	base := sampleKick()
	for i := 0; i < 3; i++ {
		ev := base
		ev.ID = fmt.Sprintf("a-%d", i)
		ev.Timestamp = base.Timestamp + int64(i)*60_000
		require.NoError(t, store.LogKick(ctx, ev))
	}
	later := base
	later.ID = "b-0"
	later.SessionID = "session-2"
	later.Timestamp = base.Timestamp + 3_600_000
	require.NoError(t, store.LogKick(ctx, later))

	sessions := store.Sessions(ctx, "profile-1")
	require.Len(t, sessions, 2)

	// Newest session first.
	assert.Equal(t, "session-2", sessions[0].SessionID)
	assert.Equal(t, 1, sessions[0].Kicks)

	assert.Equal(t, "session-1", sessions[1].SessionID)
	assert.Equal(t, 3, sessions[1].Kicks)
	assert.Equal(t, base.Timestamp, sessions[1].FirstAt)
	assert.Equal(t, base.Timestamp+2*60_000, sessions[1].LastAt)
}

func TestReset_ClearsKickLog(t *testing.T) {
	store := NewKickStore(NewMemoryKV(), testLogger())
	ctx := context.Background()

	require.NoError(t, store.LogKick(ctx, sampleKick()))
	require.NoError(t, store.Reset(ctx, "profile-1"))
	assert.Empty(t, store.Kicks(ctx, "profile-1"))
}

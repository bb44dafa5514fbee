package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beautypulse-backend/internal/intent"
)

func TestMemoryStoreHistoryOrderAndTrim(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(3, 0)

	for _, content := range []string{"one", "two", "three", "four"} {
		require.NoError(t, s.Append(ctx, "sid", Message{Role: "user", Content: content}))
	}

	msgs, err := s.History(ctx, "sid")
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "two", msgs[0].Content)
	assert.Equal(t, "four", msgs[2].Content)
}

func TestMemoryStoreHistoryIsACopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0, 0)
	require.NoError(t, s.Append(ctx, "sid", Message{Role: "user", Content: "hello"}))

	msgs, _ := s.History(ctx, "sid")
	msgs[0].Content = "mutated"

	again, _ := s.History(ctx, "sid")
	assert.Equal(t, "hello", again[0].Content)
}

func TestMemoryStoreSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0, 0)
	require.NoError(t, s.Append(ctx, "a", Message{Role: "user", Content: "hi"}))

	msgs, err := s.History(ctx, "b")
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestMemoryStoreStateRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0, time.Minute)

	st := &intent.ConversationState{
		WaitingFor: intent.SlotPlatform,
		Collected:  intent.Params{Keyword: "kw_1"},
		Flow:       intent.FlowRecipe,
		Step:       1,
	}
	require.NoError(t, s.SetState(ctx, "sid", st))

	got, err := s.State(ctx, "sid")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *st, *got)

	// Setting nil clears the pending conversation, as does ClearState.
	require.NoError(t, s.SetState(ctx, "sid", nil))
	got, err = s.State(ctx, "sid")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, s.SetState(ctx, "sid", st))
	require.NoError(t, s.ClearState(ctx, "sid"))
	got, err = s.State(ctx, "sid")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreStateExpires(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0, 10*time.Millisecond)

	require.NoError(t, s.SetState(ctx, "sid", &intent.ConversationState{WaitingFor: intent.SlotAudience}))
	time.Sleep(25 * time.Millisecond)

	got, err := s.State(ctx, "sid")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreClearDropsEverything(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0, 0)
	require.NoError(t, s.Append(ctx, "sid", Message{Role: "assistant", Content: "hi"}))
	require.NoError(t, s.SetState(ctx, "sid", &intent.ConversationState{WaitingFor: intent.SlotPlatform}))

	require.NoError(t, s.Clear(ctx, "sid"))

	msgs, _ := s.History(ctx, "sid")
	assert.Empty(t, msgs)
	st, _ := s.State(ctx, "sid")
	assert.Nil(t, st)
}

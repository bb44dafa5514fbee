package store

import (
	"context"
	"sync"
	"time"

	"beautypulse-backend/internal/intent"
)

type pendingState struct {
	state     intent.ConversationState
	updatedAt time.Time
}

// MemoryStore is the default in-process session store.
type MemoryStore struct {
	mu          sync.RWMutex
	sessions    map[string][]Message
	states      map[string]pendingState
	maxMessages int
	stateTTL    time.Duration
}

func NewMemoryStore(maxMessages int, stateTTL time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions:    make(map[string][]Message),
		states:      make(map[string]pendingState),
		maxMessages: maxMessages,
		stateTTL:    stateTTL,
	}
}

func (m *MemoryStore) Append(_ context.Context, sessionID string, msg Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionID] = append(m.sessions[sessionID], msg)
	m.trimLocked(sessionID)
	return nil
}

func (m *MemoryStore) History(_ context.Context, sessionID string) ([]Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	msgs := m.sessions[sessionID]
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (m *MemoryStore) Clear(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	delete(m.states, sessionID)
	return nil
}

func (m *MemoryStore) trimLocked(sessionID string) {
	if m.maxMessages <= 0 {
		return
	}
	msgs := m.sessions[sessionID]
	if len(msgs) > m.maxMessages {
		m.sessions[sessionID] = msgs[len(msgs)-m.maxMessages:]
	}
}

func (m *MemoryStore) SetState(_ context.Context, sessionID string, st *intent.ConversationState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if st == nil {
		delete(m.states, sessionID)
		return nil
	}
	m.states[sessionID] = pendingState{state: *st, updatedAt: time.Now()}
	return nil
}

func (m *MemoryStore) State(_ context.Context, sessionID string) (*intent.ConversationState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.states[sessionID]
	if !ok {
		return nil, nil
	}
	if m.stateTTL > 0 && time.Since(p.updatedAt) > m.stateTTL {
		delete(m.states, sessionID)
		return nil, nil
	}
	st := p.state
	return &st, nil
}

func (m *MemoryStore) ClearState(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, sessionID)
	return nil
}

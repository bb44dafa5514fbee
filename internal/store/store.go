package store

import (
	"context"

	"beautypulse-backend/internal/intent"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SessionStore keeps the append-only chat transcript per session, plus the
// pending slot-filling conversation state carried between turns. State
// entries expire so an abandoned conversation does not resume days later;
// transcripts are trimmed to a maximum length.
type SessionStore interface {
	Append(ctx context.Context, sessionID string, msg Message) error
	History(ctx context.Context, sessionID string) ([]Message, error)
	Clear(ctx context.Context, sessionID string) error

	SetState(ctx context.Context, sessionID string, st *intent.ConversationState) error
	State(ctx context.Context, sessionID string) (*intent.ConversationState, error)
	ClearState(ctx context.Context, sessionID string) error
}

package types

import "beautypulse-backend/internal/intent"

type ChatRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
	// Page is the dashboard view the user is currently on, passed through to
	// the resolver as a hint.
	Page string `json:"page,omitempty"`
}

type ChatResponse struct {
	SessionID string          `json:"sessionId"`
	Reply     string          `json:"reply"`
	Action    *ActionResponse `json:"action,omitempty"`
}

// ActionResponse tells the frontend what to do with the reply beyond
// displaying it: navigate, trigger a generation, or keep asking.
type ActionResponse struct {
	Kind              string                    `json:"kind"`
	Parameters        *intent.Params            `json:"parameters,omitempty"`
	Confidence        float64                   `json:"confidence"`
	ConversationState *intent.ConversationState `json:"conversationState,omitempty"`
	// NavigateTo is the recipe-builder query string, set when kind is
	// navigate or video_generate.
	NavigateTo        string `json:"navigateTo,omitempty"`
	VideoRequirements string `json:"videoRequirements,omitempty"`
}

type PredictRequest struct {
	Audio    string `json:"audio"`
	Keyword  string `json:"keyword"`
	Platform string `json:"platform"`
	Audience string `json:"audience"`
}

type GenerateVideoRequest struct {
	Audio        string `json:"audio"`
	Keyword      string `json:"keyword"`
	Platform     string `json:"platform"`
	Audience     string `json:"audience"`
	Requirements string `json:"requirements,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"beautypulse-backend/internal/catalog"
	"beautypulse-backend/internal/config"
	"beautypulse-backend/internal/intent"
	"beautypulse-backend/internal/recipe"
	"beautypulse-backend/internal/store"
	"beautypulse-backend/internal/types"
)

type Server struct {
	router   *chi.Mux
	sessions store.SessionStore
	resolver *intent.Resolver
	cfg      config.Config
}

func NewServer(cfg config.Config) (*Server, error) {
	rules := intent.DefaultRules()
	if cfg.RulesFile != "" {
		loaded, err := intent.LoadRules(cfg.RulesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load intent rules: %w", err)
		}
		rules = loaded
		log.Info().Str("path", cfg.RulesFile).Msg("loaded intent rules override")
	}

	var sessions store.SessionStore
	if cfg.RedisURL != "" {
		client, err := store.NewRedisClient(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis session store: %w", err)
		}
		sessions = store.NewRedisStore(client, cfg.SessionMaxMessages, cfg.StateTTL)
		log.Info().Msg("using redis session store")
	} else {
		sessions = store.NewMemoryStore(cfg.SessionMaxMessages, cfg.StateTTL)
		log.Info().Msg("using in-memory session store")
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Session-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	s := &Server{
		router:   r,
		sessions: sessions,
		resolver: intent.NewResolver(rules, cfg.ClarifyMaxAttempts),
		cfg:      cfg,
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.router.Get("/api/health", s.handleHealth)
	s.router.Post("/api/chat", s.handleChat)
	s.router.Post("/api/chat/reset", s.handleChatReset)
	// Dashboard data
	s.router.Get("/api/trends/top", s.handleTopTrends)
	s.router.Get("/api/trends/comparison", s.handleComparison)
	s.router.Get("/api/insights/hero", s.handleHeroInsight)
	s.router.Get("/api/catalog/audios", s.handleAudios)
	s.router.Get("/api/catalog/keywords", s.handleKeywords)
	s.router.Get("/api/videos", s.handleVideos)
	s.router.Get("/api/prompts", s.handlePrompts)
	// Mock generation
	s.router.Post("/api/recipe/predict", s.handlePredict)
	s.router.Post("/api/videos/generate", s.handleGenerateVideo)
}

func (s *Server) Router() http.Handler { return s.router }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		s.writeError(w, http.StatusBadRequest, "message is required")
		return
	}
	sid := getOrCreateSessionID(r, w, req.SessionID)
	ctx := r.Context()

	// History and pending state are fetched before the new utterance is
	// appended: the resolver expects the transcript as of the previous turn.
	history, err := s.sessions.History(ctx, sid)
	if err != nil {
		log.Error().Err(err).Str("session", sid).Msg("failed to load history")
		s.writeError(w, http.StatusBadGateway, "session store unavailable")
		return
	}
	state, err := s.sessions.State(ctx, sid)
	if err != nil {
		log.Error().Err(err).Str("session", sid).Msg("failed to load state")
		s.writeError(w, http.StatusBadGateway, "session store unavailable")
		return
	}

	var action intent.Action
	if answer, ok := catalog.ChatAnswers[req.Message]; ok && state == nil {
		// Suggested prompts have authored answers and bypass the resolver.
		action = intent.Action{Kind: intent.KindRespond, Message: answer, Confidence: 0.9}
	} else {
		transcript := make([]string, len(history))
		for i, m := range history {
			transcript[i] = m.Content
		}
		action = s.resolver.Resolve(req.Message, transcript, req.Page, state)
	}

	if err := s.sessions.Append(ctx, sid, store.Message{Role: "user", Content: req.Message}); err != nil {
		log.Error().Err(err).Str("session", sid).Msg("failed to append user message")
	}
	if err := s.sessions.Append(ctx, sid, store.Message{Role: "assistant", Content: action.Message}); err != nil {
		log.Error().Err(err).Str("session", sid).Msg("failed to append assistant message")
	}
	if err := s.sessions.SetState(ctx, sid, action.State); err != nil {
		log.Error().Err(err).Str("session", sid).Msg("failed to store conversation state")
	}

	resp := types.ChatResponse{
		SessionID: sid,
		Reply:     action.Message,
		Action: &types.ActionResponse{
			Kind:              string(action.Kind),
			Parameters:        action.Parameters,
			Confidence:        action.Confidence,
			ConversationState: action.State,
			VideoRequirements: action.VideoRequirements,
		},
	}
	if (action.Kind == intent.KindNavigate || action.Kind == intent.KindVideoGenerate) && action.Parameters != nil {
		resp.Action.NavigateTo = "/recipe-builder?" + recipe.BuildQuery(*action.Parameters)
	}

	log.Debug().
		Str("session", sid).
		Str("kind", string(action.Kind)).
		Float64("confidence", action.Confidence).
		Msg("resolved chat message")

	w.Header().Set("X-Session-Id", sid)
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleChatReset(w http.ResponseWriter, r *http.Request) {
	sid := getSessionID(r)
	if sid == "" {
		s.writeError(w, http.StatusBadRequest, "no session to reset")
		return
	}
	if err := s.sessions.Clear(r.Context(), sid); err != nil {
		log.Error().Err(err).Str("session", sid).Msg("failed to clear session")
		s.writeError(w, http.StatusBadGateway, "session store unavailable")
		return
	}
	ClearSessionCookie(w)
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	s.writeJSON(w, code, types.ErrorResponse{Error: msg})
}

func newSessionID() string {
	return fmt.Sprintf("s_%d", time.Now().UnixNano())
}

// getSessionID retrieves the session ID from cookie, header, or query.
func getSessionID(r *http.Request) string {
	if cookie, err := GetSessionCookie(r); err == nil && cookie != "" {
		return cookie
	}
	if sid := r.Header.Get("X-Session-Id"); sid != "" {
		return sid
	}
	if sid := r.URL.Query().Get("sessionId"); sid != "" {
		return sid
	}
	return ""
}

// getOrCreateSessionID prefers an explicit session ID from the request body,
// then any transport-level ID, and mints a new one otherwise. The cookie is
// only written when it is missing or names a different session.
func getOrCreateSessionID(r *http.Request, w http.ResponseWriter, bodySID string) string {
	sid := strings.TrimSpace(bodySID)
	if sid == "" {
		sid = getSessionID(r)
	}
	if sid == "" {
		sid = newSessionID()
		log.Debug().Str("session", sid).Str("path", r.URL.Path).Msg("creating new session")
	}
	if cookie, err := GetSessionCookie(r); err != nil || cookie != sid {
		SetSessionCookie(w, sid)
	}
	return sid
}

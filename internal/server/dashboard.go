package server

import (
	"encoding/json"
	"net/http"

	"beautypulse-backend/internal/catalog"
	"beautypulse-backend/internal/intent"
	"beautypulse-backend/internal/recipe"
	"beautypulse-backend/internal/types"
	"beautypulse-backend/internal/video"
)

// trendCardView pairs a trend card with its computed direction so the UI
// does not have to re-derive colors client-side.
type trendCardView struct {
	catalog.TrendCard
	Analysis catalog.TrendAnalysis `json:"analysis"`
}

func (s *Server) handleTopTrends(w http.ResponseWriter, r *http.Request) {
	cards := make([]trendCardView, len(catalog.TopTrends))
	for i, c := range catalog.TopTrends {
		cards[i] = trendCardView{TrendCard: c, Analysis: catalog.AnalyzeTrend(c.Data)}
	}
	s.writeJSON(w, http.StatusOK, cards)
}

func (s *Server) handleComparison(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, catalog.Comparison)
}

func (s *Server) handleHeroInsight(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, catalog.Hero)
}

func (s *Server) handleAudios(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, catalog.Audios)
}

func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, catalog.Keywords)
}

func (s *Server) handleVideos(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, catalog.SampleVideos)
}

func (s *Server) handlePrompts(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"prompts": catalog.ChatPrompts})
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req types.PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	p := recipe.Predict(intent.Params{
		Audio:    req.Audio,
		Keyword:  req.Keyword,
		Platform: req.Platform,
		Audience: req.Audience,
	})
	s.writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleGenerateVideo(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	g := video.Generate(intent.Params{
		Audio:    req.Audio,
		Keyword:  req.Keyword,
		Platform: req.Platform,
		Audience: req.Audience,
	}, req.Requirements)
	s.writeJSON(w, http.StatusOK, g)
}

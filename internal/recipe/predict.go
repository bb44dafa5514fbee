// Package recipe implements the mock performance prediction for a trend
// recipe and the navigation contract between the chat assistant and the
// recipe builder view. The score is demo arithmetic, not a model.
package recipe

import (
	"math/rand"

	"beautypulse-backend/internal/intent"
)

// ForecastPoint is one day of the projected engagement curve.
type ForecastPoint struct {
	Day        int     `json:"day"`
	Engagement float64 `json:"engagement"`
}

// Prediction is the mock success estimate for a recipe combination.
type Prediction struct {
	Score    int             `json:"score"`
	Verdict  string          `json:"verdict"`
	Forecast []ForecastPoint `json:"forecast"`
}

// The authored 14-day engagement curve shown with every prediction.
var forecastCurve = []float64{100, 150, 280, 420, 580, 720, 850, 920, 980, 1000, 950, 880, 800, 720}

// Predict scores a recipe: 60 base, bonuses for each selected element, a
// small random jitter, capped at 100.
func Predict(p intent.Params) Prediction {
	score := 60.0
	if p.Audio != "" {
		score += 10
	}
	if p.Keyword != "" {
		score += 15
	}
	if p.Platform == "TikTok" {
		score += 10
	}
	if p.Audience == "Gen Z" {
		score += 5
	}
	score += rand.Float64() * 10

	final := int(score + 0.5)
	if final > 100 {
		final = 100
	}

	forecast := make([]ForecastPoint, len(forecastCurve))
	for i, v := range forecastCurve {
		forecast[i] = ForecastPoint{Day: i + 1, Engagement: v}
	}
	return Prediction{Score: final, Verdict: verdict(final), Forecast: forecast}
}

func verdict(score int) string {
	switch {
	case score >= 80:
		return "Excellent potential! This combination is highly likely to succeed."
	case score >= 60:
		return "Good potential. Consider optimizing some elements."
	default:
		return "Moderate potential. Try different combinations for better results."
	}
}

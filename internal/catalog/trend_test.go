package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeTrendRising(t *testing.T) {
	a := AnalyzeTrend([]Point{{Value: 10}, {Value: 25}, {Value: 72}})
	assert.Equal(t, Rising, a.Direction)
	assert.InDelta(t, 620.0, a.PercentageChange, 0.001)
}

func TestAnalyzeTrendDeclining(t *testing.T) {
	a := AnalyzeTrend([]Point{{Value: 80}, {Value: 57}})
	assert.Equal(t, Declining, a.Direction)
	assert.InDelta(t, -28.75, a.PercentageChange, 0.001)
}

func TestAnalyzeTrendStableWithinThreshold(t *testing.T) {
	a := AnalyzeTrend([]Point{{Value: 100}, {Value: 104}})
	assert.Equal(t, Stable, a.Direction)

	a = AnalyzeTrend([]Point{{Value: 100}, {Value: 96}})
	assert.Equal(t, Stable, a.Direction)
}

func TestAnalyzeTrendDegenerateSeries(t *testing.T) {
	assert.Equal(t, Stable, AnalyzeTrend(nil).Direction)
	assert.Equal(t, Stable, AnalyzeTrend([]Point{{Value: 50}}).Direction)
	assert.Equal(t, Stable, AnalyzeTrend([]Point{{Value: 0}, {Value: 90}}).Direction)
}

func TestNameLookups(t *testing.T) {
	assert.Equal(t, "Vanilla Girl", KeywordName("kw_2"))
	assert.Equal(t, "Aesthetic", AudioName("audio_2"))

	// Unknown IDs fall back to generic display names.
	assert.Equal(t, "Beauty", KeywordName("kw_99"))
	assert.Equal(t, "trending", AudioName(""))
}

func TestEveryPromptHasAnAnswer(t *testing.T) {
	for _, p := range ChatPrompts {
		assert.Contains(t, ChatAnswers, p)
	}
}

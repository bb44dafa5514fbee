package video

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"beautypulse-backend/internal/intent"
)

func TestGenerateSeedsFromMatchingSample(t *testing.T) {
	out := Generate(intent.Params{Keyword: "kw_2"}, "soft lighting")

	// vid_2 is the first sample sharing the keyword.
	assert.Equal(t, "kw_2", out.KeywordID)
	assert.True(t, strings.HasPrefix(out.ID, "generated_"))
	assert.Equal(t, "Generated Vanilla Girl Tutorial", out.Title)
	assert.Equal(t, "@ai_generated", out.Creator)
	assert.Equal(t, "soft lighting", out.Requirements)
}

func TestGenerateFallsBackToFirstSample(t *testing.T) {
	out := Generate(intent.Params{Audio: "audio_99", Keyword: "kw_99"}, "")
	assert.Equal(t, "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4", out.VideoURL)
	assert.Equal(t, "Generated Beauty Tutorial", out.Title)
}

func TestGenerateLikesRange(t *testing.T) {
	for i := 0; i < 20; i++ {
		out := Generate(intent.Params{}, "")
		assert.GreaterOrEqual(t, out.Likes, 10000)
		assert.Less(t, out.Likes, 60000)
	}
}

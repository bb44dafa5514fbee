// Package video provides the mock video generation stub: it picks the best
// matching sample from the catalog and restamps it as a generated clip.
package video

import (
	"fmt"
	"math/rand"
	"time"

	"beautypulse-backend/internal/catalog"
	"beautypulse-backend/internal/intent"
)

// Generated is the stubbed output of a video generation request.
type Generated struct {
	catalog.Video
	Requirements string `json:"requirements,omitempty"`
}

// Generate builds a mock video for the recipe. A sample sharing the
// recipe's audio, keyword, or platform seeds the result; likes are
// randomized to look fresh on every call.
func Generate(p intent.Params, requirements string) Generated {
	base := catalog.SampleVideos[0]
	for _, v := range catalog.SampleVideos {
		if v.AudioID == p.Audio || v.KeywordID == p.Keyword || v.Platform == p.Platform {
			base = v
			break
		}
	}

	out := base
	out.ID = fmt.Sprintf("generated_%d", time.Now().UnixMilli())
	out.Title = fmt.Sprintf("Generated %s Tutorial", catalog.KeywordName(p.Keyword))
	out.Creator = "@ai_generated"
	out.Likes = rand.Intn(50000) + 10000
	if p.Platform != "" {
		out.Platform = p.Platform
	}
	return Generated{Video: out, Requirements: requirements}
}

package intent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	return NewResolver(DefaultRules(), 0)
}

func TestVanillaGirlShortcut(t *testing.T) {
	r := newTestResolver(t)

	action := r.Resolve("vanilla girl please", nil, "", nil)

	require.Equal(t, KindNavigate, action.Kind)
	require.NotNil(t, action.Parameters)
	assert.Equal(t, "kw_2", action.Parameters.Keyword)
	assert.Equal(t, "TikTok", action.Parameters.Platform)
	assert.Equal(t, "Gen Z", action.Parameters.Audience)
	assert.Equal(t, "generate", action.Parameters.Action)
	assert.Equal(t, 0.95, action.Confidence)
	assert.Nil(t, action.State)
}

func TestFullySpecifiedRecipeNavigatesDirectly(t *testing.T) {
	r := newTestResolver(t)

	action := r.Resolve("build a glass skin campaign on tiktok for gen z", nil, "", nil)

	require.Equal(t, KindNavigate, action.Kind)
	require.NotNil(t, action.Parameters)
	assert.Equal(t, "kw_1", action.Parameters.Keyword)
	assert.Equal(t, "TikTok", action.Parameters.Platform)
	assert.Equal(t, "Gen Z", action.Parameters.Audience)
	assert.Equal(t, "generate", action.Parameters.Action)
	assert.Equal(t, 0.95, action.Confidence)
}

func TestRecipeStarterAsksForPlatform(t *testing.T) {
	r := newTestResolver(t)

	action := r.Resolve("create a recipe for glass skin", nil, "", nil)

	require.Equal(t, KindAskQuestion, action.Kind)
	assert.Contains(t, action.Message, "Which platform")
	require.NotNil(t, action.State)
	assert.Equal(t, SlotPlatform, action.State.WaitingFor)
	assert.Equal(t, FlowRecipe, action.State.Flow)
	assert.Equal(t, 1, action.State.Step)
	assert.Equal(t, "kw_1", action.State.Collected.Keyword)
	// Audio defaults silently to the trending track.
	assert.Equal(t, "audio_2", action.State.Collected.Audio)
}

func TestSlotFillingWithExplicitState(t *testing.T) {
	r := newTestResolver(t)

	start := r.Resolve("create a recipe for glass skin", nil, "", nil)
	require.Equal(t, KindAskQuestion, start.Kind)
	require.NotNil(t, start.State)

	// Answer the platform question.
	next := r.Resolve("instagram", nil, "", start.State)
	require.Equal(t, KindAskQuestion, next.Kind)
	assert.Contains(t, next.Message, "target audience")
	require.NotNil(t, next.State)
	assert.Equal(t, SlotAudience, next.State.WaitingFor)
	assert.Equal(t, 2, next.State.Step)
	assert.Equal(t, "Instagram", next.State.Collected.Platform)
	assert.Equal(t, "kw_1", next.State.Collected.Keyword)

	// Answer the audience question: conversation completes.
	final := r.Resolve("gen z", nil, "", next.State)
	require.Equal(t, KindNavigate, final.Kind)
	require.NotNil(t, final.Parameters)
	assert.Equal(t, "Instagram", final.Parameters.Platform)
	assert.Equal(t, "Gen Z", final.Parameters.Audience)
	assert.Equal(t, "generate", final.Parameters.Action)
	assert.Equal(t, 0.95, final.Confidence)
	assert.Nil(t, final.State)
}

func TestPlatformAnswerCanFillBothRemainingSlots(t *testing.T) {
	r := newTestResolver(t)

	start := r.Resolve("create a recipe for glass skin", nil, "", nil)
	require.Equal(t, KindAskQuestion, start.Kind)

	// One answer names the platform and the audience: no second question.
	final := r.Resolve("instagram for gen z", nil, "", start.State)
	require.Equal(t, KindNavigate, final.Kind)
	require.NotNil(t, final.Parameters)
	assert.Equal(t, "Instagram", final.Parameters.Platform)
	assert.Equal(t, "Gen Z", final.Parameters.Audience)
	assert.Equal(t, "generate", final.Parameters.Action)
	assert.Nil(t, final.State)
}

func TestSlotFillingFromTranscriptMarkers(t *testing.T) {
	r := newTestResolver(t)

	start := r.Resolve("create a recipe for glass skin", nil, "", nil)
	require.Equal(t, KindAskQuestion, start.Kind)

	// No explicit state: the resolver re-derives it from the transcript tail.
	transcript := []string{"create a recipe for glass skin", start.Message}
	next := r.Resolve("instagram", transcript, "", nil)
	require.Equal(t, KindAskQuestion, next.Kind)
	assert.Contains(t, next.Message, "target audience")
	require.NotNil(t, next.State)
	assert.Equal(t, SlotAudience, next.State.WaitingFor)
	assert.Equal(t, "Instagram", next.State.Collected.Platform)
	// The keyword mentioned two turns ago is still collected.
	assert.Equal(t, "kw_1", next.State.Collected.Keyword)

	transcript = append(transcript, "instagram", next.Message)
	final := r.Resolve("gen z", transcript, "", nil)
	require.Equal(t, KindNavigate, final.Kind)
	require.NotNil(t, final.Parameters)
	assert.Equal(t, "Instagram", final.Parameters.Platform)
	assert.Equal(t, "Gen Z", final.Parameters.Audience)
}

func TestUnrecognizedPlatformAnswerReasksUnchanged(t *testing.T) {
	r := newTestResolver(t)

	state := &ConversationState{
		WaitingFor: SlotPlatform,
		Collected:  Params{Audio: "audio_2", Keyword: "kw_1"},
		Flow:       FlowRecipe,
		Step:       1,
	}
	action := r.Resolve("maybe twitter-ish??", nil, "", state)

	require.Equal(t, KindAskQuestion, action.Kind)
	assert.Contains(t, action.Message, "Which platform")
	assert.Equal(t, 0.5, action.Confidence)
	require.NotNil(t, action.State)
	assert.Equal(t, *state, *action.State)
}

func TestUnrecognizedAudienceAnswerReasks(t *testing.T) {
	r := newTestResolver(t)

	state := &ConversationState{
		WaitingFor: SlotAudience,
		Collected:  Params{Audio: "audio_2", Keyword: "kw_1", Platform: "TikTok"},
		Flow:       FlowRecipe,
		Step:       2,
	}
	// "hmm not sure" is free of every audience substring, including "all",
	// which matches inside ordinary words.
	action := r.Resolve("hmm not sure", nil, "", state)

	require.Equal(t, KindAskQuestion, action.Kind)
	assert.Contains(t, action.Message, "target audience")
	assert.Equal(t, 0.5, action.Confidence)
	require.NotNil(t, action.State)
	assert.Equal(t, *state, *action.State)
}

func TestAudienceMatchingIsBareSubstring(t *testing.T) {
	r := newTestResolver(t)

	state := &ConversationState{
		WaitingFor: SlotAudience,
		Collected:  Params{Audio: "audio_2", Keyword: "kw_1", Platform: "TikTok"},
		Flow:       FlowRecipe,
		Step:       2,
	}
	// "really" contains "all", so a vague answer completes the flow with the
	// broad audience. Surprising, but that is how the matching works.
	action := r.Resolve("whoever really", nil, "", state)

	require.Equal(t, KindNavigate, action.Kind)
	require.NotNil(t, action.Parameters)
	assert.Equal(t, "All", action.Parameters.Audience)
	assert.Equal(t, 0.95, action.Confidence)
}

func TestClarifyAttemptCapFallsBackToDefaults(t *testing.T) {
	r := NewResolver(DefaultRules(), 2)

	state := &ConversationState{
		WaitingFor: SlotPlatform,
		Collected:  Params{Audio: "audio_2", Keyword: "kw_1"},
		Flow:       FlowRecipe,
		Step:       1,
	}
	first := r.Resolve("no idea", nil, "", state)
	require.Equal(t, KindAskQuestion, first.Kind)
	require.NotNil(t, first.State)
	assert.Equal(t, SlotPlatform, first.State.WaitingFor)
	assert.Equal(t, 1, first.State.Attempts)

	// Second miss exhausts the cap: platform defaults and the flow advances.
	second := r.Resolve("still no idea", nil, "", first.State)
	require.Equal(t, KindAskQuestion, second.Kind)
	require.NotNil(t, second.State)
	assert.Equal(t, SlotAudience, second.State.WaitingFor)
	assert.Equal(t, "TikTok", second.State.Collected.Platform)
	assert.Equal(t, 0, second.State.Attempts)
}

func TestVideoFlow(t *testing.T) {
	r := newTestResolver(t)

	start := r.Resolve("can you film something dreamy for me", nil, "", nil)
	require.Equal(t, KindAskQuestion, start.Kind)
	assert.Contains(t, start.Message, "Which platform")
	assert.Contains(t, strings.ToLower(start.Message), "video")
	require.NotNil(t, start.State)
	assert.Equal(t, FlowVideo, start.State.Flow)
	assert.Contains(t, start.VideoRequirements, "dreamy")

	next := r.Resolve("tiktok", nil, "", start.State)
	require.Equal(t, KindAskQuestion, next.Kind)
	assert.Contains(t, next.Message, "target audience")
	assert.Contains(t, strings.ToLower(next.Message), "video")

	final := r.Resolve("everyone", nil, "", next.State)
	require.Equal(t, KindVideoGenerate, final.Kind)
	require.NotNil(t, final.Parameters)
	assert.Equal(t, "TikTok", final.Parameters.Platform)
	assert.Equal(t, "All", final.Parameters.Audience)
	assert.Equal(t, "video", final.Parameters.Action)
	assert.Equal(t, 0.95, final.Confidence)
}

func TestVideoFlowFromTranscriptMarkers(t *testing.T) {
	r := newTestResolver(t)

	start := r.Resolve("can you film something for me", nil, "", nil)
	require.Equal(t, KindAskQuestion, start.Kind)

	transcript := []string{"can you film something for me", start.Message}
	next := r.Resolve("youtube", transcript, "", nil)
	require.Equal(t, KindAskQuestion, next.Kind)
	require.NotNil(t, next.State)
	// The platform prompt mentioned the video, so the re-derived flow does too.
	assert.Equal(t, FlowVideo, next.State.Flow)
	assert.Equal(t, "YouTube", next.State.Collected.Platform)
}

func TestGenerationIntent(t *testing.T) {
	r := newTestResolver(t)

	action := r.Resolve("how well would this do?", nil, "", nil)

	require.Equal(t, KindGenerate, action.Kind)
	assert.Equal(t, 0.8, action.Confidence)
	assert.NotEmpty(t, action.Message)
}

func TestFallbackResponses(t *testing.T) {
	r := newTestResolver(t)

	t.Run("generic", func(t *testing.T) {
		action := r.Resolve("hello there", nil, "", nil)
		require.Equal(t, KindRespond, action.Kind)
		assert.Equal(t, 0.6, action.Confidence)
		assert.Equal(t, r.DefaultReply(), action.Message)
	})

	t.Run("topic match", func(t *testing.T) {
		action := r.Resolve("what is trending right now?", nil, "", nil)
		require.Equal(t, KindRespond, action.Kind)
		assert.Contains(t, action.Message, "#VanillaGirl")
	})
}

func TestConfidenceAccumulation(t *testing.T) {
	r := newTestResolver(t)

	// keyword (+0.25) + platform (+0.20) + navigate bonus (+0.30)
	m := r.detectRecipe("dewy makeup on instagram")
	require.True(t, m.shouldNavigate)
	assert.InDelta(t, 0.75, m.confidence, 1e-9)

	// Confidence never exceeds 1.0 regardless of match count.
	m = r.detectRecipe("viral glowing up glass skin vanilla girl tiktok reels gen z teens")
	require.True(t, m.shouldNavigate)
	assert.LessOrEqual(t, m.confidence, 1.0)
}

func TestNoStateDetectedFromShortTranscript(t *testing.T) {
	r := newTestResolver(t)

	// A single prior message can not carry a question marker worth trusting,
	// so the platform keyword starts a fresh recipe flow instead of being
	// treated as a follow-up answer.
	action := r.Resolve("instagram", []string{"Which platform would you like?"}, "", nil)
	require.Equal(t, KindAskQuestion, action.Kind)
	assert.Contains(t, action.Message, "target audience")
	require.NotNil(t, action.State)
	assert.Equal(t, "Instagram", action.State.Collected.Platform)
}

func TestExtractParamsLastOccurrenceWins(t *testing.T) {
	r := newTestResolver(t)

	// Both keyword phrases present: the one mentioned later wins.
	p := r.extractParams("i like vanilla girl and glass skin")
	assert.Equal(t, "kw_1", p.Keyword)

	// A follow-up answer outweighs the option menu that preceded it.
	p = r.extractParams("pick one: tiktok, instagram, youtube ... instagram please")
	assert.Equal(t, "Instagram", p.Platform)
}

func TestExtractRequirementsDefault(t *testing.T) {
	r := newTestResolver(t)

	got := r.ExtractRequirements("just a plain clip")
	assert.Equal(t, "Create engaging video based on recipe parameters", got)

	got = r.ExtractRequirements("short clip in a bright bathroom with a female creator")
	assert.Contains(t, got, "Keep video short (15-30 seconds)")
	assert.Contains(t, got, "Bright, well-lit setting")
	assert.Contains(t, got, "Bathroom or mirror setting")
	assert.Contains(t, got, "Feature female creator")
}

package intent

import (
	"fmt"
	"math"
	"strings"

	"beautypulse-backend/internal/catalog"
)

// Silent defaults applied when a conversation starts without an explicit
// choice, or when the clarify-attempt cap is exhausted.
const (
	defaultAudio    = "audio_2"
	defaultPlatform = "TikTok"
	defaultAudience = "All"
)

// Resolver maps free-text chat messages to structured actions using ordered
// substring tables. It is a pure function of its inputs: it never errors and
// keeps no per-conversation state of its own.
type Resolver struct {
	rules *Rules
	// maxAttempts bounds consecutive non-matching answers to one clarifying
	// question before the slot is filled with a default. 0 means re-ask forever.
	maxAttempts int
}

func NewResolver(rules *Rules, maxAttempts int) *Resolver {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Resolver{rules: rules, maxAttempts: maxAttempts}
}

// Resolve produces the single response action for one user turn.
//
// transcript holds the prior utterance texts in order (user and assistant),
// not including message itself. state, when non-nil, is the slot-filling
// conversation the caller stored from the previous turn; when nil the
// resolver re-derives it from marker phrases in the transcript tail.
// currentPage is a UI hint and does not affect resolution.
func (r *Resolver) Resolve(message string, transcript []string, currentPage string, state *ConversationState) Action {
	lower := strings.ToLower(message)

	if state == nil {
		state = r.detectState(transcript)
	}
	if state != nil && state.WaitingFor != "" {
		return r.resolveFollowUp(lower, *state)
	}

	if m := r.detectRecipe(lower); m.shouldNavigate {
		return r.startRecipe(m.params)
	}
	if containsAny(lower, r.rules.VideoTriggers) {
		m := r.detectRecipe(lower)
		return r.startVideo(m.params, r.ExtractRequirements(lower))
	}
	if containsAny(lower, r.rules.GenerateTriggers) {
		return Action{
			Kind:       KindGenerate,
			Message:    "Let me generate a prediction for your recipe combination!",
			Confidence: 0.8,
		}
	}
	return Action{Kind: KindRespond, Message: r.fallbackReply(lower), Confidence: 0.6}
}

// detectState reconstructs an in-progress conversation from marker phrases
// in the most recent assistant message. Collected parameters are re-derived
// from the whole transcript, so a field mentioned once can never be lost.
func (r *Resolver) detectState(transcript []string) *ConversationState {
	if len(transcript) < 2 {
		return nil
	}
	last := transcript[len(transcript)-1]
	if last == "" {
		return nil
	}

	flow := FlowRecipe
	if strings.Contains(strings.ToLower(last), "video") {
		flow = FlowVideo
	}

	if strings.Contains(last, "Which platform") ||
		strings.Contains(last, "platform would you like") ||
		strings.Contains(last, "platform should I optimize") {
		return &ConversationState{
			WaitingFor: SlotPlatform,
			Collected:  r.extractParams(strings.ToLower(strings.Join(transcript, " "))),
			Flow:       flow,
			Step:       1,
		}
	}
	if strings.Contains(last, "target audience") ||
		strings.Contains(last, "audience would you like") {
		return &ConversationState{
			WaitingFor: SlotAudience,
			Collected:  r.extractParams(strings.ToLower(strings.Join(transcript, " "))),
			Flow:       flow,
			Step:       2,
		}
	}
	return nil
}

// extractParams scans lowercased text against every table, keeping the
// match per category whose phrase occurs latest in the text.
func (r *Resolver) extractParams(lower string) Params {
	return Params{
		Audio:    lastMatch(lower, r.rules.Audio),
		Keyword:  lastMatch(lower, r.rules.Keyword),
		Platform: lastMatch(lower, r.rules.Platform),
		Audience: lastMatch(lower, r.rules.Audience),
	}
}

// lastMatch picks the value whose phrase occurs latest in the text. Bot
// prompts list every option, so when re-deriving collected parameters from
// the transcript a user's follow-up answer has to outweigh the menu that
// preceded it.
func lastMatch(lower string, table []Pattern) string {
	best := -1
	value := ""
	for _, pat := range table {
		if idx := strings.LastIndex(lower, pat.Phrase); idx >= 0 && idx >= best {
			best = idx
			value = pat.Value
		}
	}
	return value
}

type recipeMatch struct {
	params         Params
	confidence     float64
	matches        int
	shouldNavigate bool
}

// detectRecipe runs the fresh recipe-intent detection: parameter extraction
// with per-category confidence, plus the trigger-phrase check.
func (r *Resolver) detectRecipe(lower string) recipeMatch {
	var m recipeMatch
	for _, pat := range r.rules.Audio {
		if strings.Contains(lower, pat.Phrase) {
			m.params.Audio = pat.Value
			m.confidence += 0.25
			m.matches++
		}
	}
	for _, pat := range r.rules.Keyword {
		if strings.Contains(lower, pat.Phrase) {
			m.params.Keyword = pat.Value
			m.confidence += 0.25
			m.matches++
		}
	}
	for _, pat := range r.rules.Platform {
		if strings.Contains(lower, pat.Phrase) {
			m.params.Platform = pat.Value
			m.confidence += 0.20
			m.matches++
		}
	}
	for _, pat := range r.rules.Audience {
		if strings.Contains(lower, pat.Phrase) {
			m.params.Audience = pat.Value
			m.confidence += 0.20
			m.matches++
		}
	}

	hasTrigger := containsAny(lower, r.rules.RecipeTriggers)
	hasKeywordPhrase := false
	for _, pat := range r.rules.Keyword {
		if strings.Contains(lower, pat.Phrase) {
			hasKeywordPhrase = true
			break
		}
	}

	m.shouldNavigate = (hasTrigger && hasKeywordPhrase) || m.matches >= 1
	if m.shouldNavigate {
		m.confidence = math.Min(m.confidence+0.3, 1.0)
	}
	return m
}

// startRecipe begins (or short-circuits) the recipe slot-filling flow.
func (r *Resolver) startRecipe(params Params) Action {
	if params.Audio == "" {
		params.Audio = defaultAudio
	}

	// The single most common demo request gets resolved immediately with
	// the optimal platform and audience.
	if params.Keyword == "kw_2" && params.Platform == "" && params.Audience == "" {
		p := params
		p.Platform = "TikTok"
		p.Audience = "Gen Z"
		p.Action = "generate"
		return Action{
			Kind:       KindNavigate,
			Parameters: &p,
			Message: fmt.Sprintf(
				"Perfect! Creating your %s recipe with optimal settings for TikTok and Gen Z audience. Generating prediction now!",
				catalog.KeywordName(p.Keyword)),
			Confidence: 0.95,
		}
	}

	if params.Platform != "" && params.Audience != "" {
		p := params
		p.Action = "generate"
		return Action{
			Kind:       KindNavigate,
			Parameters: &p,
			Message: fmt.Sprintf(
				"Perfect! I have all the details. Creating your %s recipe for %s targeting %s. Generating prediction now!",
				catalog.KeywordName(p.Keyword), p.Platform, p.Audience),
			Confidence: 0.95,
		}
	}

	if params.Platform == "" {
		p := params
		return Action{
			Kind:       KindAskQuestion,
			Parameters: &p,
			Message: fmt.Sprintf(
				"Great! I'll help you create a %s recipe with %s audio. Which platform would you like to target?\n\n• TikTok (short-form, viral content)\n• Instagram (polished, aesthetic content)\n• YouTube (longer tutorials)",
				catalog.KeywordName(params.Keyword), catalog.AudioName(params.Audio)),
			Confidence: 0.9,
			State:      &ConversationState{WaitingFor: SlotPlatform, Collected: params, Flow: FlowRecipe, Step: 1},
		}
	}

	p := params
	return Action{
		Kind:       KindAskQuestion,
		Parameters: &p,
		Message:    "Excellent choice! Now, what target audience would you like to focus on?\n\n• Gen Z (18-24) - loves authentic, trendy content\n• Millennials (25-40) - prefers polished, informative content\n• All Ages - broader appeal",
		Confidence: 0.9,
		State:      &ConversationState{WaitingFor: SlotAudience, Collected: params, Flow: FlowRecipe, Step: 2},
	}
}

// startVideo begins the video slot-filling flow. Platform is always asked
// first when missing.
func (r *Resolver) startVideo(params Params, requirements string) Action {
	if params.Audio == "" {
		params.Audio = defaultAudio
	}

	if params.Platform != "" && params.Audience != "" {
		p := params
		p.Action = "video"
		return Action{
			Kind:       KindVideoGenerate,
			Parameters: &p,
			Message: fmt.Sprintf(
				"Perfect! Creating your %s video for %s targeting %s!",
				catalog.KeywordName(p.Keyword), p.Platform, p.Audience),
			Confidence:        0.95,
			VideoRequirements: requirements,
		}
	}

	if params.Platform == "" {
		p := params
		return Action{
			Kind:       KindAskQuestion,
			Parameters: &p,
			Message: fmt.Sprintf(
				"I'll create a %s video with %s audio! Which platform should I optimize it for?\n\n• TikTok (vertical, 15-60s)\n• Instagram (square/vertical, stories/reels)\n• YouTube (horizontal, longer format)",
				catalog.KeywordName(params.Keyword), catalog.AudioName(params.Audio)),
			Confidence:        0.9,
			State:             &ConversationState{WaitingFor: SlotPlatform, Collected: params, Flow: FlowVideo, Step: 1},
			VideoRequirements: requirements,
		}
	}

	p := params
	return Action{
		Kind:              KindAskQuestion,
		Parameters:        &p,
		Message:           "Almost there! What target audience should this video reach?\n\n• Gen Z (18-24)\n• Millennials (25-40)\n• All Ages",
		Confidence:        0.9,
		State:             &ConversationState{WaitingFor: SlotAudience, Collected: params, Flow: FlowVideo, Step: 2},
		VideoRequirements: requirements,
	}
}

// resolveFollowUp advances the slot-filling state machine with the user's
// answer to the pending question. Non-matching answers re-ask the same
// question without advancing.
func (r *Resolver) resolveFollowUp(lower string, state ConversationState) Action {
	switch state.WaitingFor {
	case SlotPlatform:
		platform := matchPlatformAnswer(lower)
		if platform == "" {
			// Attempts are only counted when a cap is configured, so the
			// re-ask leaves the state untouched in the default setup.
			if r.maxAttempts > 0 {
				state.Attempts++
			}
			if r.maxAttempts == 0 || state.Attempts < r.maxAttempts {
				return Action{
					Kind:       KindAskQuestion,
					Message:    r.platformRetryPrompt(state.Flow),
					Confidence: 0.5,
					State:      &state,
				}
			}
			platform = defaultPlatform
		}
		state.Collected.Platform = platform
		// An answer like "instagram for gen z" fills the remaining slot too.
		state.Collected.Merge(r.extractParams(lower))
		if state.Collected.Complete() {
			return r.completeFlow(state)
		}
		state.WaitingFor = SlotAudience
		state.Step = 2
		state.Attempts = 0
		p := state.Collected
		return Action{
			Kind:       KindAskQuestion,
			Parameters: &p,
			Message:    r.audiencePrompt(platform, state.Flow),
			Confidence: 0.9,
			State:      &state,
		}

	case SlotAudience:
		audience := matchAudienceAnswer(lower)
		if audience == "" {
			if r.maxAttempts > 0 {
				state.Attempts++
			}
			if r.maxAttempts == 0 || state.Attempts < r.maxAttempts {
				return Action{
					Kind:       KindAskQuestion,
					Message:    r.audienceRetryPrompt(state.Flow),
					Confidence: 0.5,
					State:      &state,
				}
			}
			audience = defaultAudience
		}
		state.Collected.Audience = audience
		return r.completeFlow(state)
	}

	return Action{
		Kind:       KindRespond,
		Message:    "Something went wrong in our conversation. Let's start over!",
		Confidence: 0.3,
	}
}

// completeFlow emits the terminal action once every slot is filled. The
// returned action carries no state: the conversation is over and the next
// turn starts detection from scratch.
func (r *Resolver) completeFlow(state ConversationState) Action {
	p := state.Collected
	if state.Flow == FlowVideo {
		p.Action = "video"
		return Action{
			Kind:       KindVideoGenerate,
			Parameters: &p,
			Message: fmt.Sprintf(
				"Perfect! Creating your %s video for %s targeting %s. Let's make some magic!",
				catalog.KeywordName(p.Keyword), p.Platform, p.Audience),
			Confidence: 0.95,
		}
	}
	p.Action = "generate"
	return Action{
		Kind:       KindNavigate,
		Parameters: &p,
		Message: fmt.Sprintf(
			"Excellent! I have everything I need. Creating your %s recipe for %s targeting %s. Generating prediction now!",
			catalog.KeywordName(p.Keyword), p.Platform, p.Audience),
		Confidence: 0.95,
	}
}

func (r *Resolver) platformRetryPrompt(flow Flow) string {
	if flow == FlowVideo {
		return "I didn't catch that. Which platform should I optimize the video for?\n\n• TikTok\n• Instagram\n• YouTube"
	}
	return "I didn't catch that. Which platform would you like?\n\n• TikTok\n• Instagram\n• YouTube"
}

func (r *Resolver) audiencePrompt(platform string, flow Flow) string {
	if flow == FlowVideo {
		return fmt.Sprintf("Great choice! %s it is. Now, what target audience should this video reach?\n\n• Gen Z (18-24)\n• Millennials (25-40)\n• All Ages", platform)
	}
	return fmt.Sprintf("Great choice! %s it is. Now, what target audience would you like to focus on?\n\n• Gen Z (18-24)\n• Millennials (25-40)\n• All Ages", platform)
}

func (r *Resolver) audienceRetryPrompt(flow Flow) string {
	if flow == FlowVideo {
		return "Please choose the target audience for this video:\n\n• Gen Z (18-24)\n• Millennials (25-40)\n• All Ages"
	}
	return "Please choose your target audience:\n\n• Gen Z (18-24)\n• Millennials (25-40)\n• All Ages"
}

// matchPlatformAnswer accepts only the three literal platform names when
// answering the platform question; "reels" or "shorts" are not shortcuts here.
func matchPlatformAnswer(lower string) string {
	switch {
	case strings.Contains(lower, "tiktok"):
		return "TikTok"
	case strings.Contains(lower, "instagram"):
		return "Instagram"
	case strings.Contains(lower, "youtube"):
		return "YouTube"
	}
	return ""
}

func matchAudienceAnswer(lower string) string {
	switch {
	case strings.Contains(lower, "gen z"), strings.Contains(lower, "18"), strings.Contains(lower, "young"):
		return "Gen Z"
	case strings.Contains(lower, "millennials"), strings.Contains(lower, "25"), strings.Contains(lower, "30"):
		return "Millennials"
	case strings.Contains(lower, "all"), strings.Contains(lower, "everyone"):
		return "All"
	}
	return ""
}

// ExtractRequirements collects production notes implied by cue phrases in a
// video request, one per line.
func (r *Resolver) ExtractRequirements(lower string) string {
	var notes []string
	for _, req := range r.rules.Requirements {
		if containsAny(lower, req.Cues) {
			notes = append(notes, req.Note)
		}
	}
	if len(notes) == 0 {
		return "Create engaging video based on recipe parameters"
	}
	return strings.Join(notes, "\n")
}

func (r *Resolver) fallbackReply(lower string) string {
	for _, fb := range r.rules.Fallbacks {
		if containsAny(lower, fb.Cues) {
			return fb.Reply
		}
	}
	return r.DefaultReply()
}

// DefaultReply is the generic greeting used when nothing matches.
func (r *Resolver) DefaultReply() string {
	return r.rules.DefaultReply
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

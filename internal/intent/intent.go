package intent

// Kind identifies the single response action the resolver emits per turn.
type Kind string

const (
	KindNavigate      Kind = "navigate"
	KindGenerate      Kind = "generate"
	KindVideoGenerate Kind = "video_generate"
	KindAskQuestion   Kind = "ask_question"
	KindRespond       Kind = "respond"
)

// Slot names a parameter the resolver is currently asking the user for.
type Slot string

const (
	SlotPlatform Slot = "platform"
	SlotAudience Slot = "audience"
)

// Flow distinguishes which conversation started the slot-filling loop.
type Flow string

const (
	FlowRecipe Flow = "recipe"
	FlowVideo  Flow = "video"
)

// Params is the partial recipe record accumulated across a conversation.
// Fields are only ever added, never cleared, until all four are populated.
type Params struct {
	Audio    string `json:"audio,omitempty"`
	Keyword  string `json:"keyword,omitempty"`
	Platform string `json:"platform,omitempty"`
	Audience string `json:"audience,omitempty"`
	// Action is appended on completion: "generate" for recipes, "video" for videos.
	Action string `json:"action,omitempty"`
}

// Merge fills unset fields of p from other. Existing fields win, so an
// earlier mention can never be contradicted by a later one.
func (p *Params) Merge(other Params) {
	if p.Audio == "" {
		p.Audio = other.Audio
	}
	if p.Keyword == "" {
		p.Keyword = other.Keyword
	}
	if p.Platform == "" {
		p.Platform = other.Platform
	}
	if p.Audience == "" {
		p.Audience = other.Audience
	}
}

// Complete reports whether every recipe field has been collected.
func (p Params) Complete() bool {
	return p.Audio != "" && p.Keyword != "" && p.Platform != "" && p.Audience != ""
}

// ConversationState tracks a slot-filling conversation in progress. The
// caller stores it per session and passes it back on the next turn; when it
// is absent the resolver falls back to re-deriving it from the transcript.
type ConversationState struct {
	WaitingFor Slot   `json:"waitingFor"`
	Collected  Params `json:"collectedParams"`
	Flow       Flow   `json:"originalIntent"`
	Step       int    `json:"step"`
	// Attempts counts consecutive non-matching answers to the current question.
	Attempts int `json:"attempts,omitempty"`
}

// Action is the resolver's output for one turn.
type Action struct {
	Kind       Kind               `json:"kind"`
	Parameters *Params            `json:"parameters,omitempty"`
	Message    string             `json:"message"`
	Confidence float64            `json:"confidence"`
	State      *ConversationState `json:"conversationState,omitempty"`
	// VideoRequirements carries free-text production notes extracted from a
	// video request, one per line.
	VideoRequirements string `json:"videoRequirements,omitempty"`
}

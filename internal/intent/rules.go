package intent

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRulesYAML []byte

// Pattern maps a literal phrase to the parameter value it implies.
type Pattern struct {
	Phrase string `yaml:"phrase"`
	Value  string `yaml:"value"`
}

// Requirement maps cue phrases in a video request to a production note.
type Requirement struct {
	Cues []string `yaml:"cues"`
	Note string   `yaml:"note"`
}

// Fallback maps cue phrases to a canned reply for freeform questions.
type Fallback struct {
	Cues  []string `yaml:"cues"`
	Reply string   `yaml:"reply"`
}

// Rules holds the ordered keyword tables and trigger phrase lists the
// resolver matches against. Tables are evaluated in declaration order.
type Rules struct {
	Audio    []Pattern `yaml:"audio"`
	Keyword  []Pattern `yaml:"keyword"`
	Platform []Pattern `yaml:"platform"`
	Audience []Pattern `yaml:"audience"`

	RecipeTriggers   []string `yaml:"recipe_triggers"`
	VideoTriggers    []string `yaml:"video_triggers"`
	GenerateTriggers []string `yaml:"generate_triggers"`

	Requirements []Requirement `yaml:"requirements"`
	Fallbacks    []Fallback    `yaml:"fallbacks"`
	DefaultReply string        `yaml:"default_reply"`
}

func parseRules(b []byte) (*Rules, error) {
	var r Rules
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	if len(r.Keyword) == 0 || len(r.Platform) == 0 || len(r.Audience) == 0 {
		return nil, fmt.Errorf("rules are missing required tables")
	}
	// Matching happens against lowercased text, so normalize every phrase
	// once here rather than on each lookup.
	for _, table := range [][]Pattern{r.Audio, r.Keyword, r.Platform, r.Audience} {
		for i := range table {
			table[i].Phrase = strings.ToLower(table[i].Phrase)
		}
	}
	lowerAll(r.RecipeTriggers)
	lowerAll(r.VideoTriggers)
	lowerAll(r.GenerateTriggers)
	for i := range r.Requirements {
		lowerAll(r.Requirements[i].Cues)
	}
	for i := range r.Fallbacks {
		lowerAll(r.Fallbacks[i].Cues)
	}
	return &r, nil
}

func lowerAll(ss []string) {
	for i := range ss {
		ss[i] = strings.ToLower(ss[i])
	}
}

// DefaultRules returns the rule tables embedded in the binary.
func DefaultRules() *Rules {
	r, err := parseRules(defaultRulesYAML)
	if err != nil {
		// The embedded tables are validated by tests; a parse failure here is
		// a build defect.
		panic(err)
	}
	return r
}

// LoadRules reads rule tables from a YAML file, allowing deployments to
// tune phrases without a rebuild.
func LoadRules(path string) (*Rules, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r, err := parseRules(b)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rules %s: %w", path, err)
	}
	return r, nil
}

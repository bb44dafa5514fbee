// Package catalog holds the hand-authored mock content backing the
// dashboard: trending audios and keywords, regional trend cards, sample
// videos, and canned analyst answers. There is no live data source.
package catalog

// Audio is a trending audio track selectable in the recipe builder.
type Audio struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Platform string `json:"platform"`
	Trending bool   `json:"trending"`
}

// Keyword is a trending beauty keyword selectable in the recipe builder.
type Keyword struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Trending bool   `json:"trending"`
}

// Point is one sample of a weekly trend series.
type Point struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// TrendCard is one of the regional trend summary cards.
type TrendCard struct {
	Kind        string  `json:"kind"`
	Name        string  `json:"name"`
	Growth      float64 `json:"growth"`
	Views       string  `json:"views,omitempty"`
	Data        []Point `json:"data"`
	Platform    string  `json:"platform"`
	Demographic string  `json:"demographic"`
}

// ComparisonPoint is one sample of the global-vs-Malaysia comparison chart.
type ComparisonPoint struct {
	Date     string  `json:"date"`
	Global   float64 `json:"global"`
	Malaysia float64 `json:"malaysia"`
}

// Video is a sample video shown in the inspiration gallery.
type Video struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	VideoURL     string   `json:"videoUrl"`
	ThumbnailURL string   `json:"thumbnailUrl"`
	Duration     string   `json:"duration"`
	Creator      string   `json:"creator"`
	Likes        int      `json:"likes"`
	Platform     string   `json:"platform"`
	AudioID      string   `json:"audioId"`
	KeywordID    string   `json:"keywordId"`
	Tags         []string `json:"tags"`
}

// HeroInsight is the headline market alert on the dashboard landing page.
type HeroInsight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Metric      string `json:"metric"`
	Action      string `json:"action"`
}

var Audios = []Audio{
	{ID: "audio_1", Name: "Oh No", Platform: "TikTok", Trending: true},
	{ID: "audio_2", Name: "Aesthetic", Platform: "Instagram", Trending: true},
	{ID: "audio_3", Name: "Glowing Up", Platform: "TikTok", Trending: false},
	{ID: "audio_4", Name: "Skincare Routine", Platform: "YouTube", Trending: true},
	{ID: "audio_5", Name: "Makeup Transformation", Platform: "TikTok", Trending: false},
}

var Keywords = []Keyword{
	{ID: "kw_1", Name: "Glass Skin", Category: "skincare", Trending: true},
	{ID: "kw_2", Name: "Vanilla Girl", Category: "makeup", Trending: true},
	{ID: "kw_3", Name: "Clean Girl", Category: "makeup", Trending: false},
	{ID: "kw_4", Name: "Korean Skincare", Category: "skincare", Trending: true},
	{ID: "kw_5", Name: "Dewy Makeup", Category: "makeup", Trending: true},
	{ID: "kw_6", Name: "Minimalist Beauty", Category: "lifestyle", Trending: false},
}

var TopTrends = []TrendCard{
	{
		Kind:   "audio",
		Name:   "Oh No",
		Growth: 72,
		Data: []Point{
			{Date: "2024-09-01", Value: 10},
			{Date: "2024-09-08", Value: 25},
			{Date: "2024-09-15", Value: 45},
			{Date: "2024-09-22", Value: 62},
			{Date: "2024-09-29", Value: 72},
		},
		Platform:    "TikTok",
		Demographic: "Gen Z",
	},
	{
		Kind:   "keyword",
		Name:   "Glass Skin",
		Growth: 45,
		Data: []Point{
			{Date: "2024-09-01", Value: 20},
			{Date: "2024-09-08", Value: 28},
			{Date: "2024-09-15", Value: 35},
			{Date: "2024-09-22", Value: 40},
			{Date: "2024-09-29", Value: 45},
		},
		Platform:    "Instagram",
		Demographic: "Millennials",
	},
	{
		Kind:   "hashtag",
		Name:   "#VanillaGirl",
		Growth: 89,
		Views:  "2.4M",
		Data: []Point{
			{Date: "2024-09-01", Value: 5},
			{Date: "2024-09-08", Value: 15},
			{Date: "2024-09-15", Value: 35},
			{Date: "2024-09-22", Value: 65},
			{Date: "2024-09-29", Value: 89},
		},
		Platform:    "TikTok",
		Demographic: "Gen Z",
	},
	{
		Kind:   "decay",
		Name:   "Clean Girl",
		Growth: -23,
		Data: []Point{
			{Date: "2024-09-01", Value: 80},
			{Date: "2024-09-08", Value: 70},
			{Date: "2024-09-15", Value: 60},
			{Date: "2024-09-22", Value: 50},
			{Date: "2024-09-29", Value: 57},
		},
		Platform:    "Instagram",
		Demographic: "All",
	},
}

var Comparison = []ComparisonPoint{
	{Date: "2024-09-01", Global: 10, Malaysia: 5},
	{Date: "2024-09-08", Global: 25, Malaysia: 12},
	{Date: "2024-09-15", Global: 45, Malaysia: 25},
	{Date: "2024-09-22", Global: 62, Malaysia: 40},
	{Date: "2024-09-29", Global: 45, Malaysia: 62},
	{Date: "2024-10-06", Global: 30, Malaysia: 75},
	{Date: "2024-10-13", Global: 25, Malaysia: 68},
}

var Hero = HeroInsight{
	Title:       "Malaysian Beauty Market Alert",
	Description: "#VanillaGirl trend is peaking in Malaysia, 3 weeks behind global trend cycle. Perfect timing for campaign launch.",
	Metric:      "89% growth this week",
	Action:      "Launch recommended within 7 days",
}

var SampleVideos = []Video{
	{
		ID:           "vid_1",
		Title:        "Glass Skin Tutorial",
		VideoURL:     "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
		ThumbnailURL: "https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=400&h=300&fit=crop&crop=face",
		Duration:     "0:45",
		Creator:      "@skincare_guru",
		Likes:        15000,
		Platform:     "TikTok",
		AudioID:      "audio_1",
		KeywordID:    "kw_1",
		Tags:         []string{"glass skin", "skincare", "korean beauty"},
	},
	{
		ID:           "vid_2",
		Title:        "Vanilla Girl Makeup Look",
		VideoURL:     "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
		ThumbnailURL: "https://images.unsplash.com/photo-1487412947147-5cebf100ffc2?w=400&h=300&fit=crop&crop=face",
		Duration:     "1:20",
		Creator:      "@makeup_artist",
		Likes:        23000,
		Platform:     "Instagram",
		AudioID:      "audio_2",
		KeywordID:    "kw_2",
		Tags:         []string{"vanilla girl", "minimal makeup", "natural beauty"},
	},
	{
		ID:           "vid_3",
		Title:        "Dewy Skin Secrets",
		VideoURL:     "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
		ThumbnailURL: "https://images.unsplash.com/photo-1594736797933-d0501ba2fe65?w=400&h=300&fit=crop&crop=face",
		Duration:     "0:30",
		Creator:      "@glowup_queen",
		Likes:        12000,
		Platform:     "TikTok",
		AudioID:      "audio_2",
		KeywordID:    "kw_5",
		Tags:         []string{"dewy skin", "glowing skin", "makeup"},
	},
	{
		ID:           "vid_4",
		Title:        "Vanilla Girl Look Tutorial",
		VideoURL:     "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4",
		ThumbnailURL: "https://images.unsplash.com/photo-1616683693504-3ea7e9ad6fec?w=400&h=300&fit=crop&crop=face",
		Duration:     "0:58",
		Creator:      "@minimal_makeup",
		Likes:        31000,
		Platform:     "Instagram",
		AudioID:      "audio_1",
		KeywordID:    "kw_2",
		Tags:         []string{"vanilla girl", "tutorial", "makeup"},
	},
}

// ChatPrompts are the suggested questions surfaced in the chat UI.
var ChatPrompts = []string{
	"What beauty trends are emerging in Southeast Asia?",
	"How does the Malaysian beauty market differ from global trends?",
	"Which L'Oréal products align with current trending keywords?",
	"What's the optimal posting time for beauty content in Malaysia?",
	"Analyze the performance potential of #VanillaGirl trend",
}

// ChatAnswers maps each suggested prompt to its authored answer.
var ChatAnswers = map[string]string{
	"What beauty trends are emerging in Southeast Asia?":               "Based on our analysis, Southeast Asia is seeing a strong rise in 'Glass Skin' and minimalist beauty trends, with a 67% increase in related content. The region shows particular interest in K-beauty influenced routines and natural, dewy finishes. Malaysia specifically is leading in the adoption of the #VanillaGirl aesthetic.",
	"How does the Malaysian beauty market differ from global trends?":  "Malaysian consumers tend to adopt global beauty trends 2-3 weeks after they peak internationally, but with higher engagement rates (+34% vs global average). They show stronger preference for skincare-focused content and multi-step routines. The market is particularly responsive to influencer-driven trends from Singapore and Thailand.",
	"Which L'Oréal products align with current trending keywords?":     "For 'Glass Skin': Revitalift Crystal Micro-Essence and Hydra Genius line. For 'Vanilla Girl': True Match foundation in light coverage and Lash Paradise mascara in brown. For 'Dewy Makeup': Glow Mon Amour highlighting drops and Infallible Pro-Glow foundation.",
	"What's the optimal posting time for beauty content in Malaysia?":  "Peak engagement occurs between 7-9 PM MYT on weekdays, and 2-4 PM on weekends. Tuesday and Thursday show highest engagement for skincare content, while Friday-Sunday perform best for makeup tutorials. Consider Ramadan and local holidays for content calendar planning.",
	"Analyze the performance potential of #VanillaGirl trend":          "High potential: 89% growth rate, strong demographic alignment with L'Oréal target audience (18-34), and currently at peak adoption phase in Malaysia. Recommended action: Launch campaign within 7 days to maximize trend momentum. Expected reach: 2.4M+ impressions in first week.",
}

// AudioName resolves an audio ID to its display name.
func AudioName(id string) string {
	for _, a := range Audios {
		if a.ID == id {
			return a.Name
		}
	}
	return "trending"
}

// KeywordName resolves a keyword ID to its display name.
func KeywordName(id string) string {
	for _, k := range Keywords {
		if k.ID == id {
			return k.Name
		}
	}
	return "Beauty"
}

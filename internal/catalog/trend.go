package catalog

// Direction classifies the movement of a trend series.
type Direction string

const (
	Rising    Direction = "rising"
	Declining Direction = "declining"
	Stable    Direction = "stable"
)

// Series with less than this much change either way count as stable.
const stableThreshold = 5.0

// TrendAnalysis summarizes a trend series for card rendering.
type TrendAnalysis struct {
	Direction        Direction `json:"direction"`
	PercentageChange float64   `json:"percentageChange"`
}

// AnalyzeTrend compares the first and last samples of a series and
// classifies the movement. Series that are too short, or that start at
// zero, report as stable.
func AnalyzeTrend(data []Point) TrendAnalysis {
	if len(data) < 2 || data[0].Value == 0 {
		return TrendAnalysis{Direction: Stable}
	}
	first := data[0].Value
	last := data[len(data)-1].Value
	change := (last - first) / first * 100

	switch {
	case change > stableThreshold:
		return TrendAnalysis{Direction: Rising, PercentageChange: change}
	case change < -stableThreshold:
		return TrendAnalysis{Direction: Declining, PercentageChange: change}
	default:
		return TrendAnalysis{Direction: Stable, PercentageChange: change}
	}
}

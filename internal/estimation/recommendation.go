package estimation

// RecommendationThreshold is the minimum score at which a scenario is
// considered recommended.
const RecommendationThreshold = 70.0

// Recommendation is the combined cost/duration/risk suitability verdict.
type Recommendation struct {
	Score       float64 `json:"score"`
	Recommended bool    `json:"recommended"`
}

// ScoreRecommendation combines cost, duration and risk into a single 0-100
// suitability score: start at 100, subtract tiered cost and duration
// penalties and a risk penalty, add an SLA bonus, clamp to [0,100].
func ScoreRecommendation(totalCost, totalDays float64, risk RiskLevel, slaUptimePercent float64) Recommendation {
	score := 100.0

	switch {
	case totalCost > 100000:
		score -= 30
	case totalCost > 50000:
		score -= 20
	case totalCost > 10000:
		score -= 10
	}

	switch {
	case totalDays > 30:
		score -= 20
	case totalDays > 14:
		score -= 10
	case totalDays > 7:
		score -= 5
	}

	switch risk {
	case RiskCritical:
		score -= 30
	case RiskHigh:
		score -= 20
	case RiskMedium:
		score -= 10
	}

	switch {
	case slaUptimePercent >= 99.99:
		score += 10
	case slaUptimePercent >= 99.9:
		score += 5
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return Recommendation{
		Score:       round2(score),
		Recommended: score >= RecommendationThreshold,
	}
}

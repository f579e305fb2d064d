package estimation

// RiskLevel classifies a migration scenario's overall risk.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Risk factor tags appended to the assessment when a factor fires.
const (
	FactorLargeVMCount       = "large_vm_count"
	FactorModerateVMCount    = "moderate_vm_count"
	FactorLargeDataVolume    = "large_data_volume"
	FactorModerateDataVolume = "moderate_data_volume"
	FactorDowntimeRequired   = "downtime_required"
	FactorComplexPlatform    = "complex_target_platform"
	FactorComplexStrategy    = "complex_migration_strategy"
)

// RiskAssessment is the result of the additive risk rubric.
type RiskAssessment struct {
	Score   int       `json:"score"`
	Level   RiskLevel `json:"level"`
	Factors []string  `json:"factors"`
}

// AssessRisk scores the scenario with a deterministic additive rubric.
// Independent factors each add to the score and append a tag; multiple
// factors may fire at once. This is a transparent checklist, not a model.
func AssessRisk(summary ResourceSummary, target TargetProfile, strategy Strategy) RiskAssessment {
	score := 0
	factors := []string{}

	switch {
	case summary.VMCount > 100:
		score += 2
		factors = append(factors, FactorLargeVMCount)
	case summary.VMCount > 50:
		score++
		factors = append(factors, FactorModerateVMCount)
	}

	storageTB := summary.TotalStorageGB / 1024
	switch {
	case storageTB > 50:
		score += 2
		factors = append(factors, FactorLargeDataVolume)
	case storageTB > 20:
		score++
		factors = append(factors, FactorModerateDataVolume)
	}

	if !target.SupportsLiveMigration && strategy == StrategyRehost {
		score++
		factors = append(factors, FactorDowntimeRequired)
	}

	if target.PlatformType == "kubernetes" || target.PlatformType == "openstack" {
		score++
		factors = append(factors, FactorComplexPlatform)
	}

	if strategy == StrategyRefactor || strategy == StrategyRepurchase {
		score += 2
		factors = append(factors, FactorComplexStrategy)
	}

	return RiskAssessment{
		Score:   score,
		Level:   riskLevelForScore(score),
		Factors: factors,
	}
}

// riskLevelForScore maps the total score to a level. Thresholds are
// inclusive lower bounds checked in descending order; first match wins.
func riskLevelForScore(score int) RiskLevel {
	switch {
	case score >= 5:
		return RiskCritical
	case score >= 3:
		return RiskHigh
	case score >= 1:
		return RiskMedium
	default:
		return RiskLow
	}
}

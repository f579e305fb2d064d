package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	scenarioPlanner = "scenario_planner"

	// Scenario metrics
	scenariosComputedTotal       = "scenarios_computed_total"
	scenarioComputationSeconds   = "scenario_computation_seconds"
	migrationWavesGeneratedTotal = "migration_waves_generated_total"

	// Labels
	strategyLabel = "strategy"
	riskLabel     = "risk_level"
)

var scenariosComputedLabels = []string{
	strategyLabel,
	riskLabel,
}

/**
* Metrics definition
**/
var scenariosComputedTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: scenarioPlanner,
		Name:      scenariosComputedTotal,
		Help:      "number of migration scenarios computed, by strategy and risk level",
	},
	scenariosComputedLabels,
)

var scenarioComputationSecondsMetric = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Subsystem: scenarioPlanner,
		Name:      scenarioComputationSeconds,
		Help:      "latency of a full scenario computation including persistence",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
	},
)

var migrationWavesGeneratedTotalMetric = prometheus.NewCounter(
	prometheus.CounterOpts{
		Subsystem: scenarioPlanner,
		Name:      migrationWavesGeneratedTotal,
		Help:      "number of migration waves generated across all scenarios",
	},
)

func IncreaseScenariosComputedMetric(strategy, riskLevel string) {
	labels := prometheus.Labels{
		strategyLabel: strategy,
		riskLabel:     riskLevel,
	}
	scenariosComputedTotalMetric.With(labels).Inc()
}

func ObserveScenarioComputationSeconds(seconds float64) {
	scenarioComputationSecondsMetric.Observe(seconds)
}

func AddMigrationWavesGeneratedMetric(count int) {
	migrationWavesGeneratedTotalMetric.Add(float64(count))
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(scenariosComputedTotalMetric)
	prometheus.MustRegister(scenarioComputationSecondsMetric)
	prometheus.MustRegister(migrationWavesGeneratedTotalMetric)
}

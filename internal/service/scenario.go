package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vmdash/scenario-planner/internal/estimation"
	"github.com/vmdash/scenario-planner/internal/service/mappers"
	"github.com/vmdash/scenario-planner/internal/store"
	"github.com/vmdash/scenario-planner/internal/store/model"
	"github.com/vmdash/scenario-planner/pkg/log"
	"github.com/vmdash/scenario-planner/pkg/metrics"
)

// ScenarioService orchestrates scenario planning: it resolves the target,
// the VM selection and the strategy parameters, runs the estimation models
// and persists the resulting snapshot atomically.
type ScenarioService struct {
	store  store.Store
	logger *log.StructuredLogger
}

func NewScenarioService(store store.Store) *ScenarioService {
	return &ScenarioService{
		store:  store,
		logger: log.NewDebugLogger("scenario_service"),
	}
}

func (s *ScenarioService) CreateScenario(ctx context.Context, createForm mappers.ScenarioCreateForm) (*model.MigrationScenario, error) {
	tracer := s.logger.Operation("create_scenario").
		WithString("name", createForm.Name).
		WithUUID("target_id", createForm.TargetID).
		WithString("strategy", createForm.Strategy).
		WithInt("parallel_migrations", createForm.ParallelMigrations).
		Build()

	strategy := estimation.Strategy(createForm.Strategy)
	if !strategy.Valid() {
		return nil, NewErrInvalidStrategy(createForm.Strategy)
	}
	if createForm.ParallelMigrations <= 0 {
		return nil, NewErrInvalidParallelMigrations(createForm.ParallelMigrations)
	}
	// An empty criteria value would select the whole inventory; scenario
	// scope must always be explicit.
	if createForm.Criteria.Empty() {
		return nil, NewErrEmptySelection()
	}

	started := time.Now()

	target, err := s.store.Target().Get(ctx, createForm.TargetID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrTargetNotFound(createForm.TargetID)
		}
		return nil, fmt.Errorf("failed to get migration target: %w", err)
	}
	tracer.Step("target_resolved").WithString("target_name", target.Name).Log()

	vms, err := s.store.VirtualMachine().List(ctx, store.NewVMQueryFilter().ByCriteria(createForm.Criteria), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list virtual machines: %w", err)
	}
	if len(vms) == 0 {
		return nil, NewErrEmptySelection()
	}
	tracer.Step("vms_resolved").WithInt("vm_count", len(vms)).Log()

	params, err := s.resolveStrategyParameters(ctx, strategy)
	if err != nil {
		return nil, err
	}

	profile := target.Profile()
	estVMs := mappers.InventoryToEstimationVMs(vms)
	summary := estimation.Aggregate(estVMs)

	duration, err := estimation.CalculateMigrationDuration(estVMs, profile, createForm.ParallelMigrations, params)
	if err != nil {
		return nil, fmt.Errorf("failed to estimate duration: %w", err)
	}
	cost := estimation.CalculateMigrationCost(estVMs, profile, duration.TotalDays, params)
	risk := estimation.AssessRisk(summary, profile, strategy)
	recommendation := estimation.ScoreRecommendation(cost.TotalCost, duration.TotalDays, risk.Level, profile.SLAUptimePercent)

	tracer.Step("models_computed").
		WithFloat("total_days", duration.TotalDays).
		WithFloat("total_cost", cost.TotalCost).
		WithString("risk_level", string(risk.Level)).
		WithFloat("recommendation_score", recommendation.Score).
		Log()

	scenario := createForm.ToModel()
	scenario.VMCount = summary.VMCount
	scenario.TotalVCPUs = summary.TotalVCPUs
	scenario.TotalMemoryGB = summary.TotalMemoryGB
	scenario.TotalStorageGB = summary.TotalStorageGB
	scenario.EstimatedDurationDays = duration.TotalDays
	scenario.EstimatedMigrationCost = cost.Migration.Total
	scenario.EstimatedRuntimeCostMonthly = cost.Runtime.TotalMonthly
	scenario.EstimatedCostTotal = cost.TotalCost
	scenario.DurationBreakdown = model.MakeJSONField(duration)
	scenario.CostBreakdown = model.MakeJSONField(cost)
	scenario.RiskLevel = string(risk.Level)
	scenario.RiskFactors = model.MakeJSONField(risk.Factors)
	scenario.RecommendationScore = recommendation.Score
	scenario.Recommended = recommendation.Recommended

	ctx, err = s.store.NewTransactionContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_, _ = store.Rollback(ctx)
	}()

	created, err := s.store.Scenario().Create(ctx, scenario)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, NewErrScenarioDuplicateName(scenario.Name)
		}
		tracer.Error(err).Log()
		return nil, fmt.Errorf("failed to create scenario: %w", err)
	}

	if _, err := store.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.IncreaseScenariosComputedMetric(createForm.Strategy, string(risk.Level))
	metrics.ObserveScenarioComputationSeconds(time.Since(started).Seconds())

	tracer.Success().
		WithUUID("scenario_id", created.ID).
		WithBool("recommended", created.Recommended).
		Log()
	return created, nil
}

// resolveStrategyParameters prefers the seeded configuration row and falls
// back to the documented defaults when the row is missing.
func (s *ScenarioService) resolveStrategyParameters(ctx context.Context, strategy estimation.Strategy) (estimation.StrategyParameters, error) {
	config, err := s.store.StrategyConfig().Get(ctx, strategy)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return estimation.DefaultParameters(strategy)
		}
		return estimation.StrategyParameters{}, fmt.Errorf("failed to get strategy config: %w", err)
	}
	return config.Parameters(), nil
}

func (s *ScenarioService) GetScenario(ctx context.Context, id uuid.UUID) (*model.MigrationScenario, error) {
	scenario, err := s.store.Scenario().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrScenarioNotFound(id)
		}
		return nil, fmt.Errorf("failed to get scenario: %w", err)
	}
	return scenario, nil
}

func (s *ScenarioService) ListScenarios(ctx context.Context, filter *ScenarioFilter) ([]model.MigrationScenario, error) {
	storeFilter := store.NewScenarioQueryFilter()
	if filter != nil {
		if filter.Strategy != "" {
			storeFilter = storeFilter.ByStrategy(filter.Strategy)
		}
		if filter.TargetID != uuid.Nil {
			storeFilter = storeFilter.ByTargetID(filter.TargetID.String())
		}
	}

	scenarios, err := s.store.Scenario().List(ctx, storeFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	return scenarios, nil
}

// DeleteScenario removes a scenario and its waves. Deleting an absent
// scenario is a no-op.
func (s *ScenarioService) DeleteScenario(ctx context.Context, id uuid.UUID) error {
	tracer := s.logger.Operation("delete_scenario").
		WithUUID("scenario_id", id).
		Build()

	ctx, err := s.store.NewTransactionContext(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = store.Rollback(ctx)
	}()

	if err := s.store.Scenario().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete scenario: %w", err)
	}

	if _, err := store.Commit(ctx); err != nil {
		return err
	}

	tracer.Success().Log()
	return nil
}

// DeleteScenarios removes the given scenarios and reports how many existed.
// Duplicate ids in the request count once.
func (s *ScenarioService) DeleteScenarios(ctx context.Context, ids []uuid.UUID) (int64, error) {
	tracer := s.logger.Operation("delete_scenarios").
		WithInt("requested", len(ids)).
		Build()

	// go-funk's Uniq cannot dedupe array-typed elements such as uuid.UUID,
	// so the dedupe is done by hand.
	seen := make(map[uuid.UUID]struct{}, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	ctx, err := s.store.NewTransactionContext(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		_, _ = store.Rollback(ctx)
	}()

	deleted, err := s.store.Scenario().DeleteBulk(ctx, unique)
	if err != nil {
		return 0, fmt.Errorf("failed to delete scenarios: %w", err)
	}

	if _, err := store.Commit(ctx); err != nil {
		return 0, err
	}

	tracer.Success().WithInt("deleted", int(deleted)).Log()
	return deleted, nil
}

// ScenarioFilter narrows a scenario listing.
type ScenarioFilter struct {
	Strategy string
	TargetID uuid.UUID
}

// ScenarioComparison is the side-by-side projection of one scenario.
type ScenarioComparison struct {
	ID                    uuid.UUID `json:"id"`
	Name                  string    `json:"name"`
	Strategy              string    `json:"strategy"`
	VMCount               int       `json:"vm_count"`
	EstimatedDurationDays float64   `json:"estimated_duration_days"`
	EstimatedCostTotal    float64   `json:"estimated_cost_total"`
	RiskLevel             string    `json:"risk_level"`
	RecommendationScore   float64   `json:"recommendation_score"`
	Recommended           bool      `json:"recommended"`
}

// CompareScenarios projects the named scenarios side by side, preserving
// the requested order. Every id must resolve.
func (s *ScenarioService) CompareScenarios(ctx context.Context, ids []uuid.UUID) ([]ScenarioComparison, error) {
	idStrings := make([]string, 0, len(ids))
	for _, id := range ids {
		idStrings = append(idStrings, id.String())
	}

	scenarios, err := s.store.Scenario().List(ctx, store.NewScenarioQueryFilter().ByIDs(idStrings))
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}

	byID := make(map[uuid.UUID]model.MigrationScenario, len(scenarios))
	for _, scenario := range scenarios {
		byID[scenario.ID] = scenario
	}

	comparisons := make([]ScenarioComparison, 0, len(ids))
	for _, id := range ids {
		scenario, ok := byID[id]
		if !ok {
			return nil, NewErrScenarioNotFound(id)
		}
		comparisons = append(comparisons, ScenarioComparison{
			ID:                    scenario.ID,
			Name:                  scenario.Name,
			Strategy:              scenario.Strategy,
			VMCount:               scenario.VMCount,
			EstimatedDurationDays: scenario.EstimatedDurationDays,
			EstimatedCostTotal:    scenario.EstimatedCostTotal,
			RiskLevel:             scenario.RiskLevel,
			RecommendationScore:   scenario.RecommendationScore,
			Recommended:           scenario.Recommended,
		})
	}
	return comparisons, nil
}

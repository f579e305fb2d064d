package store

import (
	"context"

	"gorm.io/gorm"
)

type Store interface {
	NewTransactionContext(ctx context.Context) (context.Context, error)
	VirtualMachine() VirtualMachine
	Target() Target
	StrategyConfig() StrategyConfig
	Scenario() Scenario
	Wave() Wave
	InitialMigration() error
	Seed(ctx context.Context) error
	Close() error
}

type DataStore struct {
	db             *gorm.DB
	vm             VirtualMachine
	target         Target
	strategyConfig StrategyConfig
	scenario       Scenario
	wave           Wave
}

func NewStore(db *gorm.DB) Store {
	return &DataStore{
		db:             db,
		vm:             NewVMStore(db),
		target:         NewTargetStore(db),
		strategyConfig: NewStrategyConfigStore(db),
		scenario:       NewScenarioStore(db),
		wave:           NewWaveStore(db),
	}
}

func (s *DataStore) NewTransactionContext(ctx context.Context) (context.Context, error) {
	return newTransactionContext(ctx, s.db)
}

func (s *DataStore) VirtualMachine() VirtualMachine {
	return s.vm
}

func (s *DataStore) Target() Target {
	return s.target
}

func (s *DataStore) StrategyConfig() StrategyConfig {
	return s.strategyConfig
}

func (s *DataStore) Scenario() Scenario {
	return s.scenario
}

func (s *DataStore) Wave() Wave {
	return s.wave
}

// InitialMigration creates the schema when no goose migration folder is
// configured. Order matters: scenarios reference targets, waves reference
// scenarios.
func (s *DataStore) InitialMigration() error {
	ctx := context.Background()
	for _, migrate := range []func(context.Context) error{
		s.vm.InitialMigration,
		s.target.InitialMigration,
		s.strategyConfig.InitialMigration,
		s.scenario.InitialMigration,
		s.wave.InitialMigration,
	} {
		if err := migrate(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Seed populates the six strategy-config rows with their documented
// defaults. Existing rows are left untouched.
func (s *DataStore) Seed(ctx context.Context) error {
	return s.strategyConfig.Seed(ctx)
}

func (s *DataStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

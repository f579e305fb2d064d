package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vmdash/scenario-planner/internal/estimation"
	"github.com/vmdash/scenario-planner/internal/store/model"
)

type StrategyConfig interface {
	Get(ctx context.Context, strategy estimation.Strategy) (*model.MigrationStrategyConfig, error)
	List(ctx context.Context) ([]model.MigrationStrategyConfig, error)
	Seed(ctx context.Context) error
	InitialMigration(ctx context.Context) error
}

type StrategyConfigStore struct {
	db *gorm.DB
}

// Make sure we conform to StrategyConfig interface
var _ StrategyConfig = (*StrategyConfigStore)(nil)

func NewStrategyConfigStore(db *gorm.DB) StrategyConfig {
	return &StrategyConfigStore{db: db}
}

func (s *StrategyConfigStore) InitialMigration(ctx context.Context) error {
	return s.getDB(ctx).AutoMigrate(&model.MigrationStrategyConfig{})
}

func (s *StrategyConfigStore) Get(ctx context.Context, strategy estimation.Strategy) (*model.MigrationStrategyConfig, error) {
	config := model.MigrationStrategyConfig{Strategy: string(strategy)}
	if err := s.getDB(ctx).First(&config).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &config, nil
}

func (s *StrategyConfigStore) List(ctx context.Context) ([]model.MigrationStrategyConfig, error) {
	var configs []model.MigrationStrategyConfig
	if err := s.getDB(ctx).Model(&model.MigrationStrategyConfig{}).Order("strategy").Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

// Seed inserts the documented default parameter set for every strategy.
// Existing rows win; concurrent seeding is a benign race resolved by the
// conflict clause.
func (s *StrategyConfigStore) Seed(ctx context.Context) error {
	for _, strategy := range estimation.Strategies {
		params, err := estimation.DefaultParameters(strategy)
		if err != nil {
			return err
		}
		config := model.NewStrategyConfig(params)
		if err := s.getDB(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "strategy"}},
			DoNothing: true,
		}).Create(&config).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *StrategyConfigStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return s.db.WithContext(ctx)
}

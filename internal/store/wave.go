package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vmdash/scenario-planner/internal/store/model"
)

type Wave interface {
	CreateBatch(ctx context.Context, waves []model.MigrationWave) (model.MigrationWaveList, error)
	ListByScenario(ctx context.Context, scenarioID uuid.UUID) (model.MigrationWaveList, error)
	DeleteByScenario(ctx context.Context, scenarioID uuid.UUID) error
	InitialMigration(ctx context.Context) error
}

type WaveStore struct {
	db *gorm.DB
}

// Make sure we conform to Wave interface
var _ Wave = (*WaveStore)(nil)

func NewWaveStore(db *gorm.DB) Wave {
	return &WaveStore{db: db}
}

func (s *WaveStore) InitialMigration(ctx context.Context) error {
	return s.getDB(ctx).AutoMigrate(&model.MigrationWave{})
}

func (s *WaveStore) CreateBatch(ctx context.Context, waves []model.MigrationWave) (model.MigrationWaveList, error) {
	if len(waves) == 0 {
		return nil, nil
	}
	if err := s.getDB(ctx).Create(&waves).Error; err != nil {
		return nil, err
	}
	return waves, nil
}

func (s *WaveStore) ListByScenario(ctx context.Context, scenarioID uuid.UUID) (model.MigrationWaveList, error) {
	var waves model.MigrationWaveList
	if err := s.getDB(ctx).
		Where("scenario_id = ?", scenarioID).
		Order("wave_number").
		Find(&waves).Error; err != nil {
		return nil, err
	}
	return waves, nil
}

func (s *WaveStore) DeleteByScenario(ctx context.Context, scenarioID uuid.UUID) error {
	return s.getDB(ctx).Where("scenario_id = ?", scenarioID).Delete(&model.MigrationWave{}).Error
}

func (s *WaveStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return s.db.WithContext(ctx)
}

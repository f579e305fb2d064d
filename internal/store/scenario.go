package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vmdash/scenario-planner/internal/store/model"
)

type Scenario interface {
	List(ctx context.Context, filter *ScenarioQueryFilter) (model.MigrationScenarioList, error)
	Get(ctx context.Context, id uuid.UUID) (*model.MigrationScenario, error)
	Create(ctx context.Context, scenario model.MigrationScenario) (*model.MigrationScenario, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteBulk(ctx context.Context, ids []uuid.UUID) (int64, error)
	InitialMigration(ctx context.Context) error
}

type ScenarioStore struct {
	db *gorm.DB
}

// Make sure we conform to Scenario interface
var _ Scenario = (*ScenarioStore)(nil)

func NewScenarioStore(db *gorm.DB) Scenario {
	return &ScenarioStore{db: db}
}

func (s *ScenarioStore) InitialMigration(ctx context.Context) error {
	return s.getDB(ctx).AutoMigrate(&model.MigrationScenario{})
}

func (s *ScenarioStore) List(ctx context.Context, filter *ScenarioQueryFilter) (model.MigrationScenarioList, error) {
	var scenarios model.MigrationScenarioList
	tx := s.getDB(ctx).Model(&model.MigrationScenario{})

	if filter != nil {
		for _, fn := range filter.QueryFn {
			tx = fn(tx)
		}
	}

	if err := tx.Order("created_at").Find(&scenarios).Error; err != nil {
		return nil, err
	}
	return scenarios, nil
}

func (s *ScenarioStore) Get(ctx context.Context, id uuid.UUID) (*model.MigrationScenario, error) {
	scenario := model.MigrationScenario{ID: id}
	if err := s.getDB(ctx).First(&scenario).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &scenario, nil
}

func (s *ScenarioStore) Create(ctx context.Context, scenario model.MigrationScenario) (*model.MigrationScenario, error) {
	if err := s.getDB(ctx).Create(&scenario).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}
	return &scenario, nil
}

// Delete is idempotent: removing an absent scenario is a no-op. Waves are
// removed alongside their scenario.
func (s *ScenarioStore) Delete(ctx context.Context, id uuid.UUID) error {
	db := s.getDB(ctx)
	if err := db.Where("scenario_id = ?", id).Delete(&model.MigrationWave{}).Error; err != nil {
		return err
	}
	result := db.Delete(&model.MigrationScenario{ID: id})
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}
	return nil
}

// DeleteBulk removes the given scenarios and returns how many rows were
// actually deleted.
func (s *ScenarioStore) DeleteBulk(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	db := s.getDB(ctx)
	if err := db.Where("scenario_id IN ?", ids).Delete(&model.MigrationWave{}).Error; err != nil {
		return 0, err
	}
	result := db.Where("id IN ?", ids).Delete(&model.MigrationScenario{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (s *ScenarioStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return s.db.WithContext(ctx)
}

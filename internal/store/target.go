package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vmdash/scenario-planner/internal/store/model"
)

type Target interface {
	List(ctx context.Context) (model.MigrationTargetList, error)
	Get(ctx context.Context, id uuid.UUID) (*model.MigrationTarget, error)
	Create(ctx context.Context, target model.MigrationTarget) (*model.MigrationTarget, error)
	Delete(ctx context.Context, id uuid.UUID) error
	InitialMigration(ctx context.Context) error
}

type TargetStore struct {
	db *gorm.DB
}

// Make sure we conform to Target interface
var _ Target = (*TargetStore)(nil)

func NewTargetStore(db *gorm.DB) Target {
	return &TargetStore{db: db}
}

func (s *TargetStore) InitialMigration(ctx context.Context) error {
	return s.getDB(ctx).AutoMigrate(&model.MigrationTarget{})
}

func (s *TargetStore) List(ctx context.Context) (model.MigrationTargetList, error) {
	var targets model.MigrationTargetList
	if err := s.getDB(ctx).Model(&model.MigrationTarget{}).Order("name").Find(&targets).Error; err != nil {
		return nil, err
	}
	return targets, nil
}

func (s *TargetStore) Get(ctx context.Context, id uuid.UUID) (*model.MigrationTarget, error) {
	target := model.MigrationTarget{ID: id}
	if err := s.getDB(ctx).First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &target, nil
}

func (s *TargetStore) Create(ctx context.Context, target model.MigrationTarget) (*model.MigrationTarget, error) {
	if target.ID == (uuid.UUID{}) {
		target.ID = uuid.New()
	}
	if err := s.getDB(ctx).Create(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}
	return &target, nil
}

func (s *TargetStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.getDB(ctx).Delete(&model.MigrationTarget{ID: id})
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}
	return nil
}

func (s *TargetStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return s.db.WithContext(ctx)
}

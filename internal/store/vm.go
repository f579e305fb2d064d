package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vmdash/scenario-planner/internal/store/model"
)

// VirtualMachine reads the inventory table. The planner never writes VM
// rows; they come from the inventory import pipeline.
type VirtualMachine interface {
	List(ctx context.Context, filter *VMQueryFilter, opts *VMQueryOptions) (model.VirtualMachineList, error)
	Get(ctx context.Context, id string) (*model.VirtualMachine, error)
	InitialMigration(ctx context.Context) error
}

type VMStore struct {
	db *gorm.DB
}

// Make sure we conform to VirtualMachine interface
var _ VirtualMachine = (*VMStore)(nil)

func NewVMStore(db *gorm.DB) VirtualMachine {
	return &VMStore{db: db}
}

func (s *VMStore) InitialMigration(ctx context.Context) error {
	return s.getDB(ctx).AutoMigrate(&model.VirtualMachine{}, &model.VMLabel{})
}

func (s *VMStore) List(ctx context.Context, filter *VMQueryFilter, opts *VMQueryOptions) (model.VirtualMachineList, error) {
	var vms model.VirtualMachineList
	tx := s.getDB(ctx).Model(&model.VirtualMachine{})

	if filter != nil {
		for _, fn := range filter.QueryFn {
			tx = fn(tx)
		}
	}
	if opts != nil {
		for _, fn := range opts.QueryFn {
			tx = fn(tx)
		}
	}

	if err := tx.Preload("Labels").Find(&vms).Error; err != nil {
		return nil, err
	}
	return vms, nil
}

func (s *VMStore) Get(ctx context.Context, id string) (*model.VirtualMachine, error) {
	vm := model.VirtualMachine{ID: id}
	if err := s.getDB(ctx).Preload("Labels").First(&vm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &vm, nil
}

func (s *VMStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return s.db.WithContext(ctx)
}

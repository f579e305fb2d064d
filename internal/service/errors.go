package service

import (
	"fmt"

	"github.com/google/uuid"
)

type ErrResourceNotFound struct {
	error
}

func NewErrResourceNotFound(id uuid.UUID, resourceType string) *ErrResourceNotFound {
	return &ErrResourceNotFound{fmt.Errorf("%s %s not found", resourceType, id)}
}

func NewErrTargetNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "migration target")
}

func NewErrScenarioNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "scenario")
}

type ErrInvalidRequest struct {
	error
}

func NewErrInvalidStrategy(strategy string) *ErrInvalidRequest {
	return &ErrInvalidRequest{fmt.Errorf("unknown migration strategy %q", strategy)}
}

func NewErrInvalidParallelMigrations(value int) *ErrInvalidRequest {
	return &ErrInvalidRequest{fmt.Errorf("parallel migrations must be at least 1, got %d", value)}
}

func NewErrInvalidWaveSize(size int) *ErrInvalidRequest {
	return &ErrInvalidRequest{fmt.Errorf("wave size must be at least 1, got %d", size)}
}

func NewErrInvalidWaveOrdering(ordering string) *ErrInvalidRequest {
	return &ErrInvalidRequest{fmt.Errorf("unknown wave ordering %q", ordering)}
}

type ErrEmptySelection struct {
	error
}

func NewErrEmptySelection() *ErrEmptySelection {
	return &ErrEmptySelection{fmt.Errorf("no virtual machines match the selection criteria")}
}

type ErrScenarioDuplicateName struct {
	error
}

func NewErrScenarioDuplicateName(name string) *ErrScenarioDuplicateName {
	return &ErrScenarioDuplicateName{fmt.Errorf("a scenario named %q already exists", name)}
}

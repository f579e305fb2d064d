package store

import (
	"gorm.io/gorm"

	"github.com/vmdash/scenario-planner/internal/store/model"
)

type BaseQuerier struct {
	QueryFn []func(tx *gorm.DB) *gorm.DB
}

type SortOrder int

const (
	SortByID SortOrder = iota
	SortByCreatedTime
	SortByStorage
)

// VMQueryFilter builds the WHERE clauses of a VM selection. Distinct
// criteria AND together; values inside one criterion OR together.
type VMQueryFilter BaseQuerier

func NewVMQueryFilter() *VMQueryFilter {
	return &VMQueryFilter{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (qf *VMQueryFilter) ByIDs(ids []string) *VMQueryFilter {
	qf.QueryFn = append(qf.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("id IN ?", ids)
	})
	return qf
}

func (qf *VMQueryFilter) ByDatacenters(datacenters []string) *VMQueryFilter {
	qf.QueryFn = append(qf.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("datacenter IN ?", datacenters)
	})
	return qf
}

func (qf *VMQueryFilter) ByClusters(clusters []string) *VMQueryFilter {
	qf.QueryFn = append(qf.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("cluster IN ?", clusters)
	})
	return qf
}

// ByFolderPrefixes matches VMs whose folder path starts with any of the
// given prefixes.
func (qf *VMQueryFilter) ByFolderPrefixes(prefixes []string) *VMQueryFilter {
	qf.QueryFn = append(qf.QueryFn, func(tx *gorm.DB) *gorm.DB {
		if len(prefixes) == 0 {
			return tx
		}
		cond := tx.Session(&gorm.Session{NewDB: true}).Where("folder LIKE ?", prefixes[0]+"%")
		for _, prefix := range prefixes[1:] {
			cond = cond.Or("folder LIKE ?", prefix+"%")
		}
		return tx.Where(cond)
	})
	return qf
}

// ByLabels requires the VM to carry every given key/value pair.
func (qf *VMQueryFilter) ByLabels(labels map[string]string) *VMQueryFilter {
	for key, value := range labels {
		key, value := key, value
		qf.QueryFn = append(qf.QueryFn, func(tx *gorm.DB) *gorm.DB {
			return tx.Where("id IN (?)",
				tx.Session(&gorm.Session{NewDB: true}).
					Model(&model.VMLabel{}).
					Select("vm_id").
					Where("key = ? AND value = ?", key, value))
		})
	}
	return qf
}

// ByCriteria translates a selection criteria value into filter clauses.
func (qf *VMQueryFilter) ByCriteria(criteria model.SelectionCriteria) *VMQueryFilter {
	if len(criteria.IDs) > 0 {
		qf = qf.ByIDs(criteria.IDs)
	}
	if len(criteria.Datacenters) > 0 {
		qf = qf.ByDatacenters(criteria.Datacenters)
	}
	if len(criteria.Clusters) > 0 {
		qf = qf.ByClusters(criteria.Clusters)
	}
	if len(criteria.FolderPrefixes) > 0 {
		qf = qf.ByFolderPrefixes(criteria.FolderPrefixes)
	}
	if len(criteria.Labels) > 0 {
		qf = qf.ByLabels(criteria.Labels)
	}
	return qf
}

type VMQueryOptions BaseQuerier

func NewVMQueryOptions() *VMQueryOptions {
	return &VMQueryOptions{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (o *VMQueryOptions) WithSortOrder(sort SortOrder) *VMQueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		switch sort {
		case SortByID:
			return tx.Order("id")
		case SortByCreatedTime:
			return tx.Order("created_at")
		case SortByStorage:
			return tx.Order("provisioned_mib ASC")
		default:
			return tx
		}
	})
	return o
}

type ScenarioQueryFilter BaseQuerier

func NewScenarioQueryFilter() *ScenarioQueryFilter {
	return &ScenarioQueryFilter{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (qf *ScenarioQueryFilter) ByIDs(ids []string) *ScenarioQueryFilter {
	qf.QueryFn = append(qf.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("id IN ?", ids)
	})
	return qf
}

func (qf *ScenarioQueryFilter) ByStrategy(strategy string) *ScenarioQueryFilter {
	qf.QueryFn = append(qf.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("strategy = ?", strategy)
	})
	return qf
}

func (qf *ScenarioQueryFilter) ByTargetID(targetID string) *ScenarioQueryFilter {
	qf.QueryFn = append(qf.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("target_id = ?", targetID)
	})
	return qf
}

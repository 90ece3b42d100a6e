package interfaces

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sstlab/vigia/pkg/domain/model"
)

// ErrNotFound is returned by all repositories when a record does not exist.
// Backends wrap it so callers can test with errors.Is regardless of backend.
var ErrNotFound = goerr.New("record not found")

// Store is the access contract shared by every collection: full CRUD with
// backend-assigned identifiers.
type Store[T any] interface {
	// Create persists a new record with an auto-generated ID and returns it
	Create(ctx context.Context, v *T) (*T, error)

	// Get retrieves a record by ID
	Get(ctx context.Context, id int64) (*T, error)

	// List retrieves all records of the collection
	List(ctx context.Context) ([]*T, error)

	// Update replaces an existing record, keyed by its ID
	Update(ctx context.Context, v *T) (*T, error)

	// Delete removes a record by ID
	Delete(ctx context.Context, id int64) error
}

// CompanyRepository defines access to companies
type CompanyRepository interface {
	Store[model.Company]
}

// EmployeeRepository defines access to employees
type EmployeeRepository interface {
	Store[model.Employee]

	// ListByCompany retrieves the employees of one company
	ListByCompany(ctx context.Context, companyID int64) ([]*model.Employee, error)
}

// SegmentRepository defines access to market segments
type SegmentRepository interface {
	Store[model.Segment]
}

// DangerGroupRepository defines access to danger groups
type DangerGroupRepository interface {
	Store[model.DangerGroup]
}

// DangerRepository defines access to dangers
type DangerRepository interface {
	Store[model.Danger]

	// ListByGroup retrieves the dangers categorized under one group.
	// Used by the delete guard on danger groups.
	ListByGroup(ctx context.Context, groupID int64) ([]*model.Danger, error)
}

// DangerSourceRepository defines access to hazard-generating sources
type DangerSourceRepository interface {
	Store[model.DangerSource]
}

// ProtectionMeasureRepository defines access to protection measures
type ProtectionMeasureRepository interface {
	Store[model.ProtectionMeasure]
}

// InjuryRepository defines access to injuries
type InjuryRepository interface {
	Store[model.Injury]
}

// SectorRepository defines access to company-scoped sectors
type SectorRepository interface {
	Store[model.Sector]

	// ListByCompany retrieves the sectors of one company
	ListByCompany(ctx context.Context, companyID int64) ([]*model.Sector, error)
}

// FunctionRepository defines access to company-scoped job functions
type FunctionRepository interface {
	Store[model.Function]

	// ListByCompany retrieves the functions of one company
	ListByCompany(ctx context.Context, companyID int64) ([]*model.Function, error)
}

// NormRepository defines access to regulatory norms
type NormRepository interface {
	Store[model.Norm]
}

// NormDetailRepository defines access to norm-danger detail links
type NormDetailRepository interface {
	Store[model.NormDetail]

	// ListByNorm retrieves all details of one norm
	ListByNorm(ctx context.Context, normID int64) ([]*model.NormDetail, error)

	// FindByNormDanger retrieves the detail linking a norm and a danger.
	// Returns nil, nil when no such detail exists.
	FindByNormDanger(ctx context.Context, normID, dangerID int64) (*model.NormDetail, error)

	// DeleteByNorm removes every detail referencing the norm. Part of the
	// norm cascade delete; no orphaned detail may remain afterwards.
	DeleteByNorm(ctx context.Context, normID int64) error
}

// SegmentNormAssocRepository defines access to segment-norm associations
type SegmentNormAssocRepository interface {
	Store[model.SegmentNormAssociation]

	// ListBySegment retrieves the associations of one segment
	ListBySegment(ctx context.Context, segmentID int64) ([]*model.SegmentNormAssociation, error)
}

// InventoryRepository defines access to hazard inventories
type InventoryRepository interface {
	Store[model.Inventory]

	// ListByCompany retrieves the inventories of one company
	ListByCompany(ctx context.Context, companyID int64) ([]*model.Inventory, error)
}

// Repository aggregates one capability-scoped store per collection
type Repository interface {
	Company() CompanyRepository
	Employee() EmployeeRepository
	Segment() SegmentRepository
	DangerGroup() DangerGroupRepository
	Danger() DangerRepository
	DangerSource() DangerSourceRepository
	ProtectionMeasure() ProtectionMeasureRepository
	Injury() InjuryRepository
	Sector() SectorRepository
	Function() FunctionRepository
	Norm() NormRepository
	NormDetail() NormDetailRepository
	SegmentNormAssoc() SegmentNormAssocRepository
	Inventory() InventoryRepository

	Close() error
}

package memory

import (
	"context"
	"time"

	"github.com/sstlab/vigia/pkg/domain/interfaces"
	"github.com/sstlab/vigia/pkg/domain/model"
)

// Memory is the in-memory repository backend. It is the development and
// test backend; the Firestore backend mirrors its behavior.
type Memory struct {
	company           *companyRepository
	employee          *employeeRepository
	segment           *store[model.Segment]
	dangerGroup       *store[model.DangerGroup]
	danger            *dangerRepository
	dangerSource      *store[model.DangerSource]
	protectionMeasure *store[model.ProtectionMeasure]
	injury            *store[model.Injury]
	sector            *sectorRepository
	function          *functionRepository
	norm              *store[model.Norm]
	normDetail        *normDetailRepository
	segmentNormAssoc  *segmentNormAssocRepository
	inventory         *inventoryRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		company:  newCompanyRepository(),
		employee: newEmployeeRepository(),
		segment: newStore(hooks[model.Segment]{
			clone: (*model.Segment).Clone,
			id:    func(v *model.Segment) int64 { return v.ID },
			setID: func(v *model.Segment, id int64) { v.ID = id },
		}),
		dangerGroup: newStore(hooks[model.DangerGroup]{
			clone: (*model.DangerGroup).Clone,
			id:    func(v *model.DangerGroup) int64 { return v.ID },
			setID: func(v *model.DangerGroup, id int64) { v.ID = id },
		}),
		danger: newDangerRepository(),
		dangerSource: newStore(hooks[model.DangerSource]{
			clone: (*model.DangerSource).Clone,
			id:    func(v *model.DangerSource) int64 { return v.ID },
			setID: func(v *model.DangerSource, id int64) { v.ID = id },
		}),
		protectionMeasure: newStore(hooks[model.ProtectionMeasure]{
			clone: (*model.ProtectionMeasure).Clone,
			id:    func(v *model.ProtectionMeasure) int64 { return v.ID },
			setID: func(v *model.ProtectionMeasure, id int64) { v.ID = id },
		}),
		injury: newStore(hooks[model.Injury]{
			clone: (*model.Injury).Clone,
			id:    func(v *model.Injury) int64 { return v.ID },
			setID: func(v *model.Injury, id int64) { v.ID = id },
		}),
		sector:   newSectorRepository(),
		function: newFunctionRepository(),
		norm: newStore(hooks[model.Norm]{
			clone: (*model.Norm).Clone,
			id:    func(v *model.Norm) int64 { return v.ID },
			setID: func(v *model.Norm, id int64) { v.ID = id },
		}),
		normDetail:       newNormDetailRepository(),
		segmentNormAssoc: newSegmentNormAssocRepository(),
		inventory:        newInventoryRepository(),
	}
}

func (m *Memory) Company() interfaces.CompanyRepository { return m.company }

func (m *Memory) Employee() interfaces.EmployeeRepository { return m.employee }

func (m *Memory) Segment() interfaces.SegmentRepository { return m.segment }

func (m *Memory) DangerGroup() interfaces.DangerGroupRepository { return m.dangerGroup }

func (m *Memory) Danger() interfaces.DangerRepository { return m.danger }

func (m *Memory) DangerSource() interfaces.DangerSourceRepository { return m.dangerSource }

func (m *Memory) ProtectionMeasure() interfaces.ProtectionMeasureRepository {
	return m.protectionMeasure
}

func (m *Memory) Injury() interfaces.InjuryRepository { return m.injury }

func (m *Memory) Sector() interfaces.SectorRepository { return m.sector }

func (m *Memory) Function() interfaces.FunctionRepository { return m.function }

func (m *Memory) Norm() interfaces.NormRepository { return m.norm }

func (m *Memory) NormDetail() interfaces.NormDetailRepository { return m.normDetail }

func (m *Memory) SegmentNormAssoc() interfaces.SegmentNormAssocRepository {
	return m.segmentNormAssoc
}

func (m *Memory) Inventory() interfaces.InventoryRepository { return m.inventory }

func (m *Memory) Close() error { return nil }

// companyRepository stamps creation and update times
type companyRepository struct {
	*store[model.Company]
}

func newCompanyRepository() *companyRepository {
	return &companyRepository{
		store: newStore(hooks[model.Company]{
			clone: (*model.Company).Clone,
			id:    func(v *model.Company) int64 { return v.ID },
			setID: func(v *model.Company, id int64) { v.ID = id },
			stamp: func(v, prev *model.Company, now time.Time) {
				if prev == nil {
					v.CreatedAt = now
				} else {
					v.CreatedAt = prev.CreatedAt
				}
				v.UpdatedAt = now
			},
		}),
	}
}

type employeeRepository struct {
	*store[model.Employee]
}

func newEmployeeRepository() *employeeRepository {
	return &employeeRepository{
		store: newStore(hooks[model.Employee]{
			clone: (*model.Employee).Clone,
			id:    func(v *model.Employee) int64 { return v.ID },
			setID: func(v *model.Employee, id int64) { v.ID = id },
			stamp: func(v, prev *model.Employee, now time.Time) {
				if prev == nil {
					v.CreatedAt = now
				} else {
					v.CreatedAt = prev.CreatedAt
				}
				v.UpdatedAt = now
			},
		}),
	}
}

func (r *employeeRepository) ListByCompany(ctx context.Context, companyID int64) ([]*model.Employee, error) {
	return r.listWhere(func(v *model.Employee) bool { return v.CompanyID == companyID }), nil
}

type dangerRepository struct {
	*store[model.Danger]
}

func newDangerRepository() *dangerRepository {
	return &dangerRepository{
		store: newStore(hooks[model.Danger]{
			clone: (*model.Danger).Clone,
			id:    func(v *model.Danger) int64 { return v.ID },
			setID: func(v *model.Danger, id int64) { v.ID = id },
		}),
	}
}

func (r *dangerRepository) ListByGroup(ctx context.Context, groupID int64) ([]*model.Danger, error) {
	return r.listWhere(func(v *model.Danger) bool { return v.GroupID == groupID }), nil
}

type sectorRepository struct {
	*store[model.Sector]
}

func newSectorRepository() *sectorRepository {
	return &sectorRepository{
		store: newStore(hooks[model.Sector]{
			clone: (*model.Sector).Clone,
			id:    func(v *model.Sector) int64 { return v.ID },
			setID: func(v *model.Sector, id int64) { v.ID = id },
		}),
	}
}

func (r *sectorRepository) ListByCompany(ctx context.Context, companyID int64) ([]*model.Sector, error) {
	return r.listWhere(func(v *model.Sector) bool { return v.CompanyID == companyID }), nil
}

type functionRepository struct {
	*store[model.Function]
}

func newFunctionRepository() *functionRepository {
	return &functionRepository{
		store: newStore(hooks[model.Function]{
			clone: (*model.Function).Clone,
			id:    func(v *model.Function) int64 { return v.ID },
			setID: func(v *model.Function, id int64) { v.ID = id },
		}),
	}
}

func (r *functionRepository) ListByCompany(ctx context.Context, companyID int64) ([]*model.Function, error) {
	return r.listWhere(func(v *model.Function) bool { return v.CompanyID == companyID }), nil
}

type normDetailRepository struct {
	*store[model.NormDetail]
}

func newNormDetailRepository() *normDetailRepository {
	return &normDetailRepository{
		store: newStore(hooks[model.NormDetail]{
			clone: (*model.NormDetail).Clone,
			id:    func(v *model.NormDetail) int64 { return v.ID },
			setID: func(v *model.NormDetail, id int64) { v.ID = id },
		}),
	}
}

func (r *normDetailRepository) ListByNorm(ctx context.Context, normID int64) ([]*model.NormDetail, error) {
	return r.listWhere(func(v *model.NormDetail) bool { return v.NormID == normID }), nil
}

func (r *normDetailRepository) FindByNormDanger(ctx context.Context, normID, dangerID int64) (*model.NormDetail, error) {
	return r.findWhere(func(v *model.NormDetail) bool {
		return v.NormID == normID && v.DangerID == dangerID
	}), nil
}

func (r *normDetailRepository) DeleteByNorm(ctx context.Context, normID int64) error {
	r.deleteWhere(func(v *model.NormDetail) bool { return v.NormID == normID })
	return nil
}

type segmentNormAssocRepository struct {
	*store[model.SegmentNormAssociation]
}

func newSegmentNormAssocRepository() *segmentNormAssocRepository {
	return &segmentNormAssocRepository{
		store: newStore(hooks[model.SegmentNormAssociation]{
			clone: (*model.SegmentNormAssociation).Clone,
			id:    func(v *model.SegmentNormAssociation) int64 { return v.ID },
			setID: func(v *model.SegmentNormAssociation, id int64) { v.ID = id },
		}),
	}
}

func (r *segmentNormAssocRepository) ListBySegment(ctx context.Context, segmentID int64) ([]*model.SegmentNormAssociation, error) {
	return r.listWhere(func(v *model.SegmentNormAssociation) bool { return v.SegmentID == segmentID }), nil
}

type inventoryRepository struct {
	*store[model.Inventory]
}

func newInventoryRepository() *inventoryRepository {
	return &inventoryRepository{
		store: newStore(hooks[model.Inventory]{
			clone: (*model.Inventory).Clone,
			id:    func(v *model.Inventory) int64 { return v.ID },
			setID: func(v *model.Inventory, id int64) { v.ID = id },
			stamp: func(v, prev *model.Inventory, now time.Time) {
				if prev == nil {
					v.CreatedAt = now
				} else {
					v.CreatedAt = prev.CreatedAt
				}
				v.UpdatedAt = now
			},
		}),
	}
}

func (r *inventoryRepository) ListByCompany(ctx context.Context, companyID int64) ([]*model.Inventory, error) {
	return r.listWhere(func(v *model.Inventory) bool { return v.CompanyID == companyID }), nil
}

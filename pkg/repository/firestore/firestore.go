package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sstlab/vigia/pkg/domain/interfaces"
	"github.com/sstlab/vigia/pkg/domain/model"
)

// Firestore is the persistent repository backend.
type Firestore struct {
	client            *firestore.Client
	company           *companyRepository
	employee          *employeeRepository
	segment           *collection[model.Segment]
	dangerGroup       *collection[model.DangerGroup]
	danger            *dangerRepository
	dangerSource      *collection[model.DangerSource]
	protectionMeasure *collection[model.ProtectionMeasure]
	injury            *collection[model.Injury]
	sector            *sectorRepository
	function          *functionRepository
	norm              *collection[model.Norm]
	normDetail        *normDetailRepository
	segmentNormAssoc  *segmentNormAssocRepository
	inventory         *inventoryRepository

	prefixed []interface{ setPrefix(string) }
}

var _ interfaces.Repository = &Firestore{}

func (c *collection[T]) setPrefix(prefix string) { c.prefix = prefix }

type Option func(*Firestore)

// WithCollectionPrefix namespaces every collection, used to isolate test data
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		for _, c := range f.prefixed {
			c.setPrefix(prefix)
		}
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID), goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client:   client,
		company:  newCompanyRepository(client),
		employee: newEmployeeRepository(client),
		segment: newCollection(client, "segments", hooks[model.Segment]{
			clone: (*model.Segment).Clone,
			id:    func(v *model.Segment) int64 { return v.ID },
			setID: func(v *model.Segment, id int64) { v.ID = id },
		}),
		dangerGroup: newCollection(client, "danger_groups", hooks[model.DangerGroup]{
			clone: (*model.DangerGroup).Clone,
			id:    func(v *model.DangerGroup) int64 { return v.ID },
			setID: func(v *model.DangerGroup, id int64) { v.ID = id },
		}),
		danger: newDangerRepository(client),
		dangerSource: newCollection(client, "danger_sources", hooks[model.DangerSource]{
			clone: (*model.DangerSource).Clone,
			id:    func(v *model.DangerSource) int64 { return v.ID },
			setID: func(v *model.DangerSource, id int64) { v.ID = id },
		}),
		protectionMeasure: newCollection(client, "protection_measures", hooks[model.ProtectionMeasure]{
			clone: (*model.ProtectionMeasure).Clone,
			id:    func(v *model.ProtectionMeasure) int64 { return v.ID },
			setID: func(v *model.ProtectionMeasure, id int64) { v.ID = id },
		}),
		injury: newCollection(client, "injuries", hooks[model.Injury]{
			clone: (*model.Injury).Clone,
			id:    func(v *model.Injury) int64 { return v.ID },
			setID: func(v *model.Injury, id int64) { v.ID = id },
		}),
		sector:   newSectorRepository(client),
		function: newFunctionRepository(client),
		norm: newCollection(client, "norms", hooks[model.Norm]{
			clone: (*model.Norm).Clone,
			id:    func(v *model.Norm) int64 { return v.ID },
			setID: func(v *model.Norm, id int64) { v.ID = id },
		}),
		normDetail:       newNormDetailRepository(client),
		segmentNormAssoc: newSegmentNormAssocRepository(client),
		inventory:        newInventoryRepository(client),
	}

	f.prefixed = []interface{ setPrefix(string) }{
		f.company.collection,
		f.employee.collection,
		f.segment,
		f.dangerGroup,
		f.danger.collection,
		f.dangerSource,
		f.protectionMeasure,
		f.injury,
		f.sector.collection,
		f.function.collection,
		f.norm,
		f.normDetail.collection,
		f.segmentNormAssoc.collection,
		f.inventory.collection,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Company() interfaces.CompanyRepository { return f.company }

func (f *Firestore) Employee() interfaces.EmployeeRepository { return f.employee }

func (f *Firestore) Segment() interfaces.SegmentRepository { return f.segment }

func (f *Firestore) DangerGroup() interfaces.DangerGroupRepository { return f.dangerGroup }

func (f *Firestore) Danger() interfaces.DangerRepository { return f.danger }

func (f *Firestore) DangerSource() interfaces.DangerSourceRepository { return f.dangerSource }

func (f *Firestore) ProtectionMeasure() interfaces.ProtectionMeasureRepository {
	return f.protectionMeasure
}

func (f *Firestore) Injury() interfaces.InjuryRepository { return f.injury }

func (f *Firestore) Sector() interfaces.SectorRepository { return f.sector }

func (f *Firestore) Function() interfaces.FunctionRepository { return f.function }

func (f *Firestore) Norm() interfaces.NormRepository { return f.norm }

func (f *Firestore) NormDetail() interfaces.NormDetailRepository { return f.normDetail }

func (f *Firestore) SegmentNormAssoc() interfaces.SegmentNormAssocRepository {
	return f.segmentNormAssoc
}

func (f *Firestore) Inventory() interfaces.InventoryRepository { return f.inventory }

func (f *Firestore) Close() error {
	return f.client.Close()
}

func stampTimes[T any](get func(*T) *time.Time, set func(*T, time.Time), setUpdated func(*T, time.Time)) func(v, prev *T, now time.Time) {
	return func(v, prev *T, now time.Time) {
		if prev == nil {
			set(v, now)
		} else {
			set(v, *get(prev))
		}
		setUpdated(v, now)
	}
}

type companyRepository struct {
	*collection[model.Company]
}

func newCompanyRepository(client *firestore.Client) *companyRepository {
	return &companyRepository{
		collection: newCollection(client, "companies", hooks[model.Company]{
			clone: (*model.Company).Clone,
			id:    func(v *model.Company) int64 { return v.ID },
			setID: func(v *model.Company, id int64) { v.ID = id },
			stamp: stampTimes(
				func(v *model.Company) *time.Time { return &v.CreatedAt },
				func(v *model.Company, t time.Time) { v.CreatedAt = t },
				func(v *model.Company, t time.Time) { v.UpdatedAt = t },
			),
		}),
	}
}

type employeeRepository struct {
	*collection[model.Employee]
}

func newEmployeeRepository(client *firestore.Client) *employeeRepository {
	return &employeeRepository{
		collection: newCollection(client, "employees", hooks[model.Employee]{
			clone: (*model.Employee).Clone,
			id:    func(v *model.Employee) int64 { return v.ID },
			setID: func(v *model.Employee, id int64) { v.ID = id },
			stamp: stampTimes(
				func(v *model.Employee) *time.Time { return &v.CreatedAt },
				func(v *model.Employee, t time.Time) { v.CreatedAt = t },
				func(v *model.Employee, t time.Time) { v.UpdatedAt = t },
			),
		}),
	}
}

func (r *employeeRepository) ListByCompany(ctx context.Context, companyID int64) ([]*model.Employee, error) {
	return r.listWhere(ctx, "CompanyID", companyID)
}

type dangerRepository struct {
	*collection[model.Danger]
}

func newDangerRepository(client *firestore.Client) *dangerRepository {
	return &dangerRepository{
		collection: newCollection(client, "dangers", hooks[model.Danger]{
			clone: (*model.Danger).Clone,
			id:    func(v *model.Danger) int64 { return v.ID },
			setID: func(v *model.Danger, id int64) { v.ID = id },
		}),
	}
}

func (r *dangerRepository) ListByGroup(ctx context.Context, groupID int64) ([]*model.Danger, error) {
	return r.listWhere(ctx, "GroupID", groupID)
}

type sectorRepository struct {
	*collection[model.Sector]
}

func newSectorRepository(client *firestore.Client) *sectorRepository {
	return &sectorRepository{
		collection: newCollection(client, "sectors", hooks[model.Sector]{
			clone: (*model.Sector).Clone,
			id:    func(v *model.Sector) int64 { return v.ID },
			setID: func(v *model.Sector, id int64) { v.ID = id },
		}),
	}
}

func (r *sectorRepository) ListByCompany(ctx context.Context, companyID int64) ([]*model.Sector, error) {
	return r.listWhere(ctx, "CompanyID", companyID)
}

type functionRepository struct {
	*collection[model.Function]
}

func newFunctionRepository(client *firestore.Client) *functionRepository {
	return &functionRepository{
		collection: newCollection(client, "functions", hooks[model.Function]{
			clone: (*model.Function).Clone,
			id:    func(v *model.Function) int64 { return v.ID },
			setID: func(v *model.Function, id int64) { v.ID = id },
		}),
	}
}

func (r *functionRepository) ListByCompany(ctx context.Context, companyID int64) ([]*model.Function, error) {
	return r.listWhere(ctx, "CompanyID", companyID)
}

type normDetailRepository struct {
	*collection[model.NormDetail]
}

func newNormDetailRepository(client *firestore.Client) *normDetailRepository {
	return &normDetailRepository{
		collection: newCollection(client, "norm_details", hooks[model.NormDetail]{
			clone: (*model.NormDetail).Clone,
			id:    func(v *model.NormDetail) int64 { return v.ID },
			setID: func(v *model.NormDetail, id int64) { v.ID = id },
		}),
	}
}

func (r *normDetailRepository) ListByNorm(ctx context.Context, normID int64) ([]*model.NormDetail, error) {
	return r.listWhere(ctx, "NormID", normID)
}

func (r *normDetailRepository) FindByNormDanger(ctx context.Context, normID, dangerID int64) (*model.NormDetail, error) {
	details, err := r.query(ctx, r.client.Collection(r.colName()).
		Where("NormID", "==", normID).
		Where("DangerID", "==", dangerID).
		Limit(1))
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, nil
	}
	return details[0], nil
}

func (r *normDetailRepository) DeleteByNorm(ctx context.Context, normID int64) error {
	return r.deleteWhere(ctx, "NormID", normID)
}

type segmentNormAssocRepository struct {
	*collection[model.SegmentNormAssociation]
}

func newSegmentNormAssocRepository(client *firestore.Client) *segmentNormAssocRepository {
	return &segmentNormAssocRepository{
		collection: newCollection(client, "segment_norm_associations", hooks[model.SegmentNormAssociation]{
			clone: (*model.SegmentNormAssociation).Clone,
			id:    func(v *model.SegmentNormAssociation) int64 { return v.ID },
			setID: func(v *model.SegmentNormAssociation, id int64) { v.ID = id },
		}),
	}
}

func (r *segmentNormAssocRepository) ListBySegment(ctx context.Context, segmentID int64) ([]*model.SegmentNormAssociation, error) {
	return r.listWhere(ctx, "SegmentID", segmentID)
}

type inventoryRepository struct {
	*collection[model.Inventory]
}

func newInventoryRepository(client *firestore.Client) *inventoryRepository {
	return &inventoryRepository{
		collection: newCollection(client, "inventories", hooks[model.Inventory]{
			clone: (*model.Inventory).Clone,
			id:    func(v *model.Inventory) int64 { return v.ID },
			setID: func(v *model.Inventory, id int64) { v.ID = id },
			stamp: stampTimes(
				func(v *model.Inventory) *time.Time { return &v.CreatedAt },
				func(v *model.Inventory, t time.Time) { v.CreatedAt = t },
				func(v *model.Inventory, t time.Time) { v.UpdatedAt = t },
			),
		}),
	}
}

func (r *inventoryRepository) ListByCompany(ctx context.Context, companyID int64) ([]*model.Inventory, error) {
	return r.listWhere(ctx, "CompanyID", companyID)
}

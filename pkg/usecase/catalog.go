package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sstlab/vigia/pkg/domain/interfaces"
	"github.com/sstlab/vigia/pkg/domain/model"
)

// CatalogUseCase manages the flat reference collections: segments, danger
// sources, protection measures, injuries, and the company-scoped sectors
// and job functions.
type CatalogUseCase struct {
	repo interfaces.Repository
}

func NewCatalogUseCase(repo interfaces.Repository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (uc *CatalogUseCase) CreateSegment(ctx context.Context, segment *model.Segment) (*model.Segment, error) {
	if segment.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "segment name is required")
	}
	created, err := uc.repo.Segment().Create(ctx, segment)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create segment")
	}
	return created, nil
}

func (uc *CatalogUseCase) ListSegments(ctx context.Context) ([]*model.Segment, error) {
	return uc.repo.Segment().List(ctx)
}

func (uc *CatalogUseCase) UpdateSegment(ctx context.Context, segment *model.Segment) (*model.Segment, error) {
	if segment.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "segment name is required")
	}
	return uc.repo.Segment().Update(ctx, segment)
}

func (uc *CatalogUseCase) DeleteSegment(ctx context.Context, id int64) error {
	return uc.repo.Segment().Delete(ctx, id)
}

func (uc *CatalogUseCase) CreateDangerSource(ctx context.Context, source *model.DangerSource) (*model.DangerSource, error) {
	if source.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "danger source name is required")
	}
	created, err := uc.repo.DangerSource().Create(ctx, source)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create danger source")
	}
	return created, nil
}

func (uc *CatalogUseCase) ListDangerSources(ctx context.Context) ([]*model.DangerSource, error) {
	return uc.repo.DangerSource().List(ctx)
}

func (uc *CatalogUseCase) UpdateDangerSource(ctx context.Context, source *model.DangerSource) (*model.DangerSource, error) {
	if source.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "danger source name is required")
	}
	return uc.repo.DangerSource().Update(ctx, source)
}

func (uc *CatalogUseCase) DeleteDangerSource(ctx context.Context, id int64) error {
	return uc.repo.DangerSource().Delete(ctx, id)
}

func (uc *CatalogUseCase) CreateProtectionMeasure(ctx context.Context, measure *model.ProtectionMeasure) (*model.ProtectionMeasure, error) {
	if measure.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "protection measure name is required")
	}
	created, err := uc.repo.ProtectionMeasure().Create(ctx, measure)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create protection measure")
	}
	return created, nil
}

func (uc *CatalogUseCase) ListProtectionMeasures(ctx context.Context) ([]*model.ProtectionMeasure, error) {
	return uc.repo.ProtectionMeasure().List(ctx)
}

func (uc *CatalogUseCase) UpdateProtectionMeasure(ctx context.Context, measure *model.ProtectionMeasure) (*model.ProtectionMeasure, error) {
	if measure.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "protection measure name is required")
	}
	return uc.repo.ProtectionMeasure().Update(ctx, measure)
}

func (uc *CatalogUseCase) DeleteProtectionMeasure(ctx context.Context, id int64) error {
	return uc.repo.ProtectionMeasure().Delete(ctx, id)
}

func (uc *CatalogUseCase) CreateInjury(ctx context.Context, injury *model.Injury) (*model.Injury, error) {
	if injury.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "injury name is required")
	}
	created, err := uc.repo.Injury().Create(ctx, injury)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create injury")
	}
	return created, nil
}

func (uc *CatalogUseCase) ListInjuries(ctx context.Context) ([]*model.Injury, error) {
	return uc.repo.Injury().List(ctx)
}

func (uc *CatalogUseCase) UpdateInjury(ctx context.Context, injury *model.Injury) (*model.Injury, error) {
	if injury.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "injury name is required")
	}
	return uc.repo.Injury().Update(ctx, injury)
}

func (uc *CatalogUseCase) DeleteInjury(ctx context.Context, id int64) error {
	return uc.repo.Injury().Delete(ctx, id)
}

func (uc *CatalogUseCase) CreateSector(ctx context.Context, sector *model.Sector) (*model.Sector, error) {
	if sector.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "sector name is required")
	}
	if _, err := uc.repo.Company().Get(ctx, sector.CompanyID); err != nil {
		return nil, goerr.Wrap(err, "company not found", goerr.V(CompanyIDKey, sector.CompanyID))
	}
	created, err := uc.repo.Sector().Create(ctx, sector)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create sector")
	}
	return created, nil
}

func (uc *CatalogUseCase) ListSectors(ctx context.Context, companyID int64) ([]*model.Sector, error) {
	return uc.repo.Sector().ListByCompany(ctx, companyID)
}

func (uc *CatalogUseCase) UpdateSector(ctx context.Context, sector *model.Sector) (*model.Sector, error) {
	if sector.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "sector name is required")
	}
	return uc.repo.Sector().Update(ctx, sector)
}

func (uc *CatalogUseCase) DeleteSector(ctx context.Context, id int64) error {
	return uc.repo.Sector().Delete(ctx, id)
}

func (uc *CatalogUseCase) CreateFunction(ctx context.Context, function *model.Function) (*model.Function, error) {
	if function.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "function name is required")
	}
	if _, err := uc.repo.Company().Get(ctx, function.CompanyID); err != nil {
		return nil, goerr.Wrap(err, "company not found", goerr.V(CompanyIDKey, function.CompanyID))
	}
	created, err := uc.repo.Function().Create(ctx, function)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create function")
	}
	return created, nil
}

func (uc *CatalogUseCase) ListFunctions(ctx context.Context, companyID int64) ([]*model.Function, error) {
	return uc.repo.Function().ListByCompany(ctx, companyID)
}

func (uc *CatalogUseCase) UpdateFunction(ctx context.Context, function *model.Function) (*model.Function, error) {
	if function.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "function name is required")
	}
	return uc.repo.Function().Update(ctx, function)
}

func (uc *CatalogUseCase) DeleteFunction(ctx context.Context, id int64) error {
	return uc.repo.Function().Delete(ctx, id)
}

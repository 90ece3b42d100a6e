package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sstlab/vigia/pkg/domain/interfaces"
	"github.com/sstlab/vigia/pkg/domain/model"
)

type NormUseCase struct {
	repo interfaces.Repository
}

func NewNormUseCase(repo interfaces.Repository) *NormUseCase {
	return &NormUseCase{repo: repo}
}

func (uc *NormUseCase) CreateNorm(ctx context.Context, norm *model.Norm) (*model.Norm, error) {
	if norm.Number == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "norm number is required")
	}
	if norm.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "norm name is required")
	}

	created, err := uc.repo.Norm().Create(ctx, norm)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create norm")
	}
	return created, nil
}

func (uc *NormUseCase) GetNorm(ctx context.Context, id int64) (*model.Norm, error) {
	norm, err := uc.repo.Norm().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get norm", goerr.V(NormIDKey, id))
	}
	return norm, nil
}

func (uc *NormUseCase) ListNorms(ctx context.Context) ([]*model.Norm, error) {
	return uc.repo.Norm().List(ctx)
}

func (uc *NormUseCase) UpdateNorm(ctx context.Context, norm *model.Norm) (*model.Norm, error) {
	if norm.Number == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "norm number is required")
	}
	if norm.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "norm name is required")
	}
	return uc.repo.Norm().Update(ctx, norm)
}

// DeleteNorm removes the norm and all of its details. Details go first so
// a failure cannot leave orphaned details behind a deleted norm.
func (uc *NormUseCase) DeleteNorm(ctx context.Context, id int64) error {
	if _, err := uc.repo.Norm().Get(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to get norm", goerr.V(NormIDKey, id))
	}

	if err := uc.repo.NormDetail().DeleteByNorm(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete norm details", goerr.V(NormIDKey, id))
	}
	if err := uc.repo.Norm().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete norm", goerr.V(NormIDKey, id))
	}
	return nil
}

// SaveDetail upserts the detail linking a norm and a danger: one detail per
// (norm, danger) pair, updated in place when it already exists.
func (uc *NormUseCase) SaveDetail(ctx context.Context, detail *model.NormDetail) (*model.NormDetail, error) {
	if _, err := uc.repo.Norm().Get(ctx, detail.NormID); err != nil {
		return nil, goerr.Wrap(err, "norm not found", goerr.V(NormIDKey, detail.NormID))
	}
	if _, err := uc.repo.Danger().Get(ctx, detail.DangerID); err != nil {
		return nil, goerr.Wrap(err, "danger not found", goerr.V("dangerID", detail.DangerID))
	}

	existing, err := uc.repo.NormDetail().FindByNormDanger(ctx, detail.NormID, detail.DangerID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to look up norm detail")
	}
	if existing != nil {
		detail.ID = existing.ID
		updated, err := uc.repo.NormDetail().Update(ctx, detail)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to update norm detail", goerr.V(NormIDKey, detail.NormID))
		}
		return updated, nil
	}

	created, err := uc.repo.NormDetail().Create(ctx, detail)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create norm detail", goerr.V(NormIDKey, detail.NormID))
	}
	return created, nil
}

func (uc *NormUseCase) ListDetails(ctx context.Context, normID int64) ([]*model.NormDetail, error) {
	return uc.repo.NormDetail().ListByNorm(ctx, normID)
}

func (uc *NormUseCase) DeleteDetail(ctx context.Context, id int64) error {
	return uc.repo.NormDetail().Delete(ctx, id)
}

func (uc *NormUseCase) CreateAssociation(ctx context.Context, assoc *model.SegmentNormAssociation) (*model.SegmentNormAssociation, error) {
	if _, err := uc.repo.Segment().Get(ctx, assoc.SegmentID); err != nil {
		return nil, goerr.Wrap(err, "segment not found", goerr.V("segmentID", assoc.SegmentID))
	}
	if _, err := uc.repo.DangerSource().Get(ctx, assoc.DangerSourceID); err != nil {
		return nil, goerr.Wrap(err, "danger source not found", goerr.V("dangerSourceID", assoc.DangerSourceID))
	}
	if _, err := uc.repo.Norm().Get(ctx, assoc.NormID); err != nil {
		return nil, goerr.Wrap(err, "norm not found", goerr.V(NormIDKey, assoc.NormID))
	}
	if _, err := uc.repo.Danger().Get(ctx, assoc.DangerID); err != nil {
		return nil, goerr.Wrap(err, "danger not found", goerr.V("dangerID", assoc.DangerID))
	}

	created, err := uc.repo.SegmentNormAssoc().Create(ctx, assoc)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create segment norm association")
	}
	return created, nil
}

func (uc *NormUseCase) ListAssociations(ctx context.Context, segmentID int64) ([]*model.SegmentNormAssociation, error) {
	return uc.repo.SegmentNormAssoc().ListBySegment(ctx, segmentID)
}

func (uc *NormUseCase) DeleteAssociation(ctx context.Context, id int64) error {
	return uc.repo.SegmentNormAssoc().Delete(ctx, id)
}

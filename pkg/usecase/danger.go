package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sstlab/vigia/pkg/domain/interfaces"
	"github.com/sstlab/vigia/pkg/domain/model"
)

type DangerUseCase struct {
	repo interfaces.Repository
}

func NewDangerUseCase(repo interfaces.Repository) *DangerUseCase {
	return &DangerUseCase{repo: repo}
}

func (uc *DangerUseCase) CreateGroup(ctx context.Context, group *model.DangerGroup) (*model.DangerGroup, error) {
	if group.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "danger group name is required")
	}
	created, err := uc.repo.DangerGroup().Create(ctx, group)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create danger group")
	}
	return created, nil
}

func (uc *DangerUseCase) ListGroups(ctx context.Context) ([]*model.DangerGroup, error) {
	return uc.repo.DangerGroup().List(ctx)
}

func (uc *DangerUseCase) UpdateGroup(ctx context.Context, group *model.DangerGroup) (*model.DangerGroup, error) {
	if group.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "danger group name is required")
	}
	updated, err := uc.repo.DangerGroup().Update(ctx, group)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update danger group", goerr.V(GroupIDKey, group.ID))
	}
	return updated, nil
}

// DeleteGroup refuses to remove a group while any danger still references
// it, reporting how many dangers block the deletion.
func (uc *DangerUseCase) DeleteGroup(ctx context.Context, id int64) error {
	dangers, err := uc.repo.Danger().ListByGroup(ctx, id)
	if err != nil {
		return goerr.Wrap(err, "failed to count dangers of group", goerr.V(GroupIDKey, id))
	}
	if len(dangers) > 0 {
		return goerr.Wrap(ErrStillReferenced, "danger group has dangers",
			goerr.V(GroupIDKey, id), goerr.V("danger_count", len(dangers)))
	}

	if err := uc.repo.DangerGroup().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete danger group", goerr.V(GroupIDKey, id))
	}
	return nil
}

func (uc *DangerUseCase) CreateDanger(ctx context.Context, danger *model.Danger) (*model.Danger, error) {
	if danger.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "danger name is required")
	}
	if _, err := uc.repo.DangerGroup().Get(ctx, danger.GroupID); err != nil {
		return nil, goerr.Wrap(err, "danger group not found", goerr.V(GroupIDKey, danger.GroupID))
	}

	created, err := uc.repo.Danger().Create(ctx, danger)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create danger")
	}
	return created, nil
}

func (uc *DangerUseCase) ListDangers(ctx context.Context) ([]*model.Danger, error) {
	return uc.repo.Danger().List(ctx)
}

func (uc *DangerUseCase) ListDangersByGroup(ctx context.Context, groupID int64) ([]*model.Danger, error) {
	return uc.repo.Danger().ListByGroup(ctx, groupID)
}

func (uc *DangerUseCase) UpdateDanger(ctx context.Context, danger *model.Danger) (*model.Danger, error) {
	if danger.Name == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "danger name is required")
	}
	if _, err := uc.repo.DangerGroup().Get(ctx, danger.GroupID); err != nil {
		return nil, goerr.Wrap(err, "danger group not found", goerr.V(GroupIDKey, danger.GroupID))
	}
	return uc.repo.Danger().Update(ctx, danger)
}

func (uc *DangerUseCase) DeleteDanger(ctx context.Context, id int64) error {
	if err := uc.repo.Danger().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete danger", goerr.V("dangerID", id))
	}
	return nil
}

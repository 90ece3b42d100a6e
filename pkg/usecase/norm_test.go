package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/sstlab/vigia/pkg/domain/model"
	"github.com/sstlab/vigia/pkg/repository/memory"
	"github.com/sstlab/vigia/pkg/usecase"
)

func TestSaveDetailUpserts(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	norm, err := uc.Norm.CreateNorm(ctx, &model.Norm{Number: "12", Name: "Safety in Machinery and Equipment"})
	gt.NoError(t, err).Required()
	group, err := uc.Danger.CreateGroup(ctx, &model.DangerGroup{Name: "Accident"})
	gt.NoError(t, err).Required()
	danger, err := uc.Danger.CreateDanger(ctx, &model.Danger{GroupID: group.ID, Name: "Crushing"})
	gt.NoError(t, err).Required()

	first, err := uc.Norm.SaveDetail(ctx, &model.NormDetail{
		NormID: norm.ID, DangerID: danger.ID, InjuryIDs: []int64{1},
	})
	gt.NoError(t, err).Required()

	second, err := uc.Norm.SaveDetail(ctx, &model.NormDetail{
		NormID: norm.ID, DangerID: danger.ID, InjuryIDs: []int64{1, 2},
	})
	gt.NoError(t, err).Required()
	gt.Value(t, second.ID).Equal(first.ID)

	details, err := uc.Norm.ListDetails(ctx, norm.ID)
	gt.NoError(t, err).Required()
	gt.Number(t, len(details)).Equal(1)
	gt.Number(t, len(details[0].InjuryIDs)).Equal(2)
}

func TestDeleteNormCascades(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	norm, err := uc.Norm.CreateNorm(ctx, &model.Norm{Number: "12", Name: "Safety in Machinery and Equipment"})
	gt.NoError(t, err).Required()
	other, err := uc.Norm.CreateNorm(ctx, &model.Norm{Number: "35", Name: "Work at Height"})
	gt.NoError(t, err).Required()

	group, err := uc.Danger.CreateGroup(ctx, &model.DangerGroup{Name: "Accident"})
	gt.NoError(t, err).Required()
	crushing, err := uc.Danger.CreateDanger(ctx, &model.Danger{GroupID: group.ID, Name: "Crushing"})
	gt.NoError(t, err).Required()
	fall, err := uc.Danger.CreateDanger(ctx, &model.Danger{GroupID: group.ID, Name: "Fall from height"})
	gt.NoError(t, err).Required()

	_, err = uc.Norm.SaveDetail(ctx, &model.NormDetail{NormID: norm.ID, DangerID: crushing.ID})
	gt.NoError(t, err).Required()
	_, err = uc.Norm.SaveDetail(ctx, &model.NormDetail{NormID: norm.ID, DangerID: fall.ID})
	gt.NoError(t, err).Required()
	kept, err := uc.Norm.SaveDetail(ctx, &model.NormDetail{NormID: other.ID, DangerID: fall.ID})
	gt.NoError(t, err).Required()

	gt.NoError(t, uc.Norm.DeleteNorm(ctx, norm.ID)).Required()

	_, err = uc.Norm.GetNorm(ctx, norm.ID)
	gt.Value(t, err).NotNil()

	orphans, err := uc.Norm.ListDetails(ctx, norm.ID)
	gt.NoError(t, err).Required()
	gt.Number(t, len(orphans)).Equal(0)

	remaining, err := uc.Norm.ListDetails(ctx, other.ID)
	gt.NoError(t, err).Required()
	gt.Number(t, len(remaining)).Equal(1)
	gt.Value(t, remaining[0].ID).Equal(kept.ID)
}

func TestDeleteUnknownNorm(t *testing.T) {
	uc := usecase.New(memory.New())

	err := uc.Norm.DeleteNorm(context.Background(), 999)
	gt.Value(t, err).NotNil()
}

func TestDeleteGroupGuard(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	group, err := uc.Danger.CreateGroup(ctx, &model.DangerGroup{Name: "Accident"})
	gt.NoError(t, err).Required()
	danger, err := uc.Danger.CreateDanger(ctx, &model.Danger{GroupID: group.ID, Name: "Crushing"})
	gt.NoError(t, err).Required()

	err = uc.Danger.DeleteGroup(ctx, group.ID)
	gt.Bool(t, errors.Is(err, usecase.ErrStillReferenced)).True()

	gt.NoError(t, uc.Danger.DeleteDanger(ctx, danger.ID)).Required()
	gt.NoError(t, uc.Danger.DeleteGroup(ctx, group.ID)).Required()
}

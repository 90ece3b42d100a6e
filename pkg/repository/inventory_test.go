package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/sstlab/vigia/pkg/domain/interfaces"
	"github.com/sstlab/vigia/pkg/domain/model"
	"github.com/sstlab/vigia/pkg/domain/types"
)

func runInventoryRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create stores entries with the inventory", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		inv := &model.Inventory{
			CompanyID:   1,
			CompanyName: "Acme Industrial",
			Version:     1,
			Status:      types.InventoryStatusDraft,
			Entries: []model.RiskEntry{
				{
					ID:          model.NewEntryID(),
					SectorID:    1,
					SourceID:    2,
					DangerID:    3,
					Probability: 3,
					Severity:    4,
					Score:       model.ScoreRisk(3, 4),
					Measures: []model.MeasureStatus{
						{MeasureID: 5, MeasureName: "Machine guard", Status: types.ImplementationYes},
					},
					InjuryIDs: []int64{7, 8},
				},
			},
		}

		created, err := repo.Inventory().Create(ctx, inv)
		gt.NoError(t, err).Required()
		gt.Value(t, created.ID).NotEqual(int64(0))

		got, err := repo.Inventory().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Number(t, len(got.Entries)).Equal(1)
		gt.Value(t, got.Entries[0].Score.Band).Equal(types.RiskBandMedium)
		gt.Value(t, got.Entries[0].Score.Value).Equal(12)
		gt.Number(t, len(got.Entries[0].Measures)).Equal(1)
		gt.Number(t, len(got.Entries[0].InjuryIDs)).Equal(2)
	})

	t.Run("Stored inventory is isolated from caller mutation", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		inv := &model.Inventory{
			CompanyID: 1,
			Version:   1,
			Status:    types.InventoryStatusDraft,
			Entries: []model.RiskEntry{
				{ID: model.NewEntryID(), Description: "original"},
			},
		}
		created, err := repo.Inventory().Create(ctx, inv)
		gt.NoError(t, err).Required()

		created.Entries[0].Description = "mutated"

		got, err := repo.Inventory().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Entries[0].Description).Equal("original")
	})

	t.Run("ListByCompany returns only that company's versions", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, inv := range []*model.Inventory{
			{CompanyID: 1, Version: 1, Status: types.InventoryStatusFinal},
			{CompanyID: 1, Version: 2, Status: types.InventoryStatusDraft},
			{CompanyID: 2, Version: 1, Status: types.InventoryStatusDraft},
		} {
			_, err := repo.Inventory().Create(ctx, inv)
			gt.NoError(t, err).Required()
		}

		listed, err := repo.Inventory().ListByCompany(ctx, 1)
		gt.NoError(t, err).Required()
		gt.Number(t, len(listed)).Equal(2)
	})

	t.Run("Delete removes the inventory", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Inventory().Create(ctx, &model.Inventory{CompanyID: 1, Version: 1})
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Inventory().Delete(ctx, created.ID)).Required()

		_, err = repo.Inventory().Get(ctx, created.ID)
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
	})
}

func TestInventoryRepository_Memory(t *testing.T) {
	runInventoryRepositoryTest(t, newMemoryRepo)
}

func TestInventoryRepository_Firestore(t *testing.T) {
	runInventoryRepositoryTest(t, newFirestoreRepo)
}

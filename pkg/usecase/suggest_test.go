package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/sstlab/vigia/pkg/domain/model"
	"github.com/sstlab/vigia/pkg/domain/types"
	"github.com/sstlab/vigia/pkg/repository/memory"
	"github.com/sstlab/vigia/pkg/usecase"
)

type suggestFixture struct {
	uc        *usecase.UseCases
	company   *model.Company
	inventory *model.Inventory
	source    *model.DangerSource
	danger    *model.Danger
}

func newSuggestFixture(t *testing.T) *suggestFixture {
	t.Helper()
	ctx := context.Background()
	uc := usecase.New(memory.New())

	segment, err := uc.Catalog.CreateSegment(ctx, &model.Segment{Name: "Metallurgy"})
	gt.NoError(t, err).Required()

	company, err := uc.Company.CreateCompany(ctx, &model.Company{
		Name:      "Acme Industrial",
		SegmentID: segment.ID,
	})
	gt.NoError(t, err).Required()

	source, err := uc.Catalog.CreateDangerSource(ctx, &model.DangerSource{Name: "Machinery and equipment"})
	gt.NoError(t, err).Required()

	group, err := uc.Danger.CreateGroup(ctx, &model.DangerGroup{Name: "Accident"})
	gt.NoError(t, err).Required()

	danger, err := uc.Danger.CreateDanger(ctx, &model.Danger{
		GroupID:     group.ID,
		Name:        "Crushing",
		Description: "Crushing by moving machine parts",
	})
	gt.NoError(t, err).Required()

	norm, err := uc.Norm.CreateNorm(ctx, &model.Norm{
		Number: "12",
		Name:   "Safety in Machinery and Equipment",
		Type:   "NR",
	})
	gt.NoError(t, err).Required()

	guard, err := uc.Catalog.CreateProtectionMeasure(ctx, &model.ProtectionMeasure{Name: "Machine guard"})
	gt.NoError(t, err).Required()

	fracture, err := uc.Catalog.CreateInjury(ctx, &model.Injury{Name: "Fracture"})
	gt.NoError(t, err).Required()

	_, err = uc.Norm.SaveDetail(ctx, &model.NormDetail{
		NormID:     norm.ID,
		DangerID:   danger.ID,
		InjuryIDs:  []int64{fracture.ID},
		MeasureIDs: []int64{guard.ID},
	})
	gt.NoError(t, err).Required()

	_, err = uc.Norm.CreateAssociation(ctx, &model.SegmentNormAssociation{
		SegmentID:      segment.ID,
		DangerSourceID: source.ID,
		NormID:         norm.ID,
		DangerID:       danger.ID,
	})
	gt.NoError(t, err).Required()

	inventory, err := uc.Inventory.CreateInventory(ctx, company.ID)
	gt.NoError(t, err).Required()

	return &suggestFixture{
		uc:        uc,
		company:   company,
		inventory: inventory,
		source:    source,
		danger:    danger,
	}
}

func TestSuggestEntries(t *testing.T) {
	f := newSuggestFixture(t)
	ctx := context.Background()

	added, err := f.uc.Inventory.SuggestEntries(ctx, f.inventory.ID)
	gt.NoError(t, err).Required()
	gt.Number(t, len(added)).Equal(1)

	entry := added[0]
	gt.Value(t, entry.SourceID).Equal(f.source.ID)
	gt.Value(t, entry.DangerID).Equal(f.danger.ID)
	gt.Value(t, entry.SourceName).Equal("Machinery and equipment")
	gt.Value(t, entry.DangerName).Equal("Crushing")
	gt.Value(t, entry.Description).Equal("Suggested hazard based on the regulatory norm for the company segment.")
	gt.Value(t, entry.Probability).Equal(3)
	gt.Value(t, entry.Severity).Equal(3)
	gt.Value(t, entry.Score.Value).Equal(9)
	gt.Value(t, entry.Score.Band).Equal(types.RiskBandMedium)
	gt.Number(t, len(entry.Measures)).Equal(0)
	gt.Number(t, len(entry.InjuryIDs)).Equal(1)

	stored, err := f.uc.Inventory.GetInventory(ctx, f.inventory.ID)
	gt.NoError(t, err).Required()
	gt.Number(t, len(stored.Entries)).Equal(1)
}

func TestSuggestEntriesIdempotent(t *testing.T) {
	f := newSuggestFixture(t)
	ctx := context.Background()

	first, err := f.uc.Inventory.SuggestEntries(ctx, f.inventory.ID)
	gt.NoError(t, err).Required()
	gt.Number(t, len(first)).Equal(1)

	second, err := f.uc.Inventory.SuggestEntries(ctx, f.inventory.ID)
	gt.NoError(t, err).Required()
	gt.Number(t, len(second)).Equal(0)

	stored, err := f.uc.Inventory.GetInventory(ctx, f.inventory.ID)
	gt.NoError(t, err).Required()
	gt.Number(t, len(stored.Entries)).Equal(1)
}

func TestSuggestEntriesWithoutSegment(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	company, err := uc.Company.CreateCompany(ctx, &model.Company{Name: "No Segment Ltd"})
	gt.NoError(t, err).Required()

	inventory, err := uc.Inventory.CreateInventory(ctx, company.ID)
	gt.NoError(t, err).Required()

	_, err = uc.Inventory.SuggestEntries(ctx, inventory.ID)
	gt.Bool(t, errors.Is(err, usecase.ErrNoSegment)).True()
}

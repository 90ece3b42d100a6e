package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/sstlab/vigia/pkg/domain/model"
	"github.com/sstlab/vigia/pkg/domain/types"
	"github.com/sstlab/vigia/pkg/repository/memory"
	"github.com/sstlab/vigia/pkg/usecase"
)

func TestBuildReport(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()

	for _, e := range []*model.Employee{
		{CompanyID: f.company.ID, Name: "Ana", Sector: "Production"},
		{CompanyID: f.company.ID, Name: "Bruno", Sector: "Production"},
		{CompanyID: f.company.ID, Name: "Carla", Sector: "Maintenance"},
		{CompanyID: f.company.ID, Name: "Diego"},
	} {
		_, err := f.uc.Company.CreateEmployee(ctx, e)
		gt.NoError(t, err).Required()
	}

	inv, err := f.uc.Inventory.CreateInventory(ctx, f.company.ID)
	gt.NoError(t, err).Required()

	installed, err := f.uc.Catalog.CreateProtectionMeasure(ctx, &model.ProtectionMeasure{Name: "Installed guard"})
	gt.NoError(t, err).Required()

	// one low-band entry excluded from the action plan, two above it
	_, err = f.uc.Inventory.SaveEntry(ctx, inv.ID, &model.RiskEntry{
		SectorID: f.sector.ID, SourceID: f.source.ID, DangerID: f.danger.ID,
		Probability: 2, Severity: 2,
	})
	gt.NoError(t, err).Required()
	_, err = f.uc.Inventory.SaveEntry(ctx, inv.ID, &model.RiskEntry{
		SectorID: f.sector.ID, SourceID: f.source.ID, DangerID: f.danger.ID,
		Probability: 3, Severity: 3,
		Measures: []model.MeasureStatus{
			{MeasureID: f.measure.ID, Status: types.ImplementationNo},
			{MeasureID: installed.ID, Status: types.ImplementationYes},
		},
	})
	gt.NoError(t, err).Required()
	_, err = f.uc.Inventory.SaveEntry(ctx, inv.ID, &model.RiskEntry{
		SectorID: f.sector.ID, SourceID: f.source.ID, DangerID: f.danger.ID,
		Probability: 5, Severity: 5,
	})
	gt.NoError(t, err).Required()

	report, err := f.uc.Report.BuildReport(ctx, inv.ID)
	gt.NoError(t, err).Required()

	t.Run("cover", func(t *testing.T) {
		gt.Value(t, report.Cover.CompanyName).Equal("Acme Industrial")
		gt.Bool(t, report.Cover.GeneratedAt.IsZero()).False()
		gt.Bool(t, strings.Contains(report.Cover.Validity, "2 years")).True()
	})

	t.Run("static sections", func(t *testing.T) {
		gt.Number(t, len(report.Introduction.Paragraphs)).Equal(3)
		gt.Number(t, len(report.Introduction.Responsibilities)).Equal(4)
		gt.Number(t, len(report.Scales.Probability)).Equal(5)
		gt.Number(t, len(report.Scales.Severity)).Equal(5)
		gt.Number(t, len(report.Matrix.Grid)).Equal(5)
		gt.Number(t, len(report.Matrix.Criteria)).Equal(5)
	})

	t.Run("roster groups by sector", func(t *testing.T) {
		gt.Number(t, len(report.Company.Roster)).Equal(3)

		counts := map[string]int{}
		for _, row := range report.Company.Roster {
			counts[row.Sector] = row.Count
		}
		gt.Value(t, counts["Production"]).Equal(2)
		gt.Value(t, counts["Maintenance"]).Equal(1)
		gt.Value(t, counts["No Sector"]).Equal(1)
	})

	t.Run("hazard rows", func(t *testing.T) {
		gt.Number(t, len(report.Hazards.Rows)).Equal(3)
		gt.Value(t, report.Hazards.Placeholder).Equal("")
		gt.Value(t, report.Hazards.Rows[0].Sector).Equal("Production")
		gt.Value(t, report.Hazards.Rows[0].Source).Equal("Machinery and equipment")
		gt.Value(t, report.Hazards.Rows[0].Hazard).Equal("Crushing")
	})

	t.Run("action plan filters and sorts", func(t *testing.T) {
		gt.Number(t, len(report.ActionPlan.Rows)).Equal(2)
		gt.Value(t, report.ActionPlan.Rows[0].Value).Equal(25)
		gt.Value(t, report.ActionPlan.Rows[1].Value).Equal(9)
		gt.Array(t, report.ActionPlan.Rows[1].Measures).Equal([]string{"Installed guard"})
		gt.Number(t, len(report.ActionPlan.Signatures)).Equal(2)
	})
}

func TestBuildReportEmptyInventory(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()

	inv, err := f.uc.Inventory.CreateInventory(ctx, f.company.ID)
	gt.NoError(t, err).Required()

	report, err := f.uc.Report.BuildReport(ctx, inv.ID)
	gt.NoError(t, err).Required()

	gt.Number(t, len(report.Hazards.Rows)).Equal(0)
	gt.Bool(t, report.Hazards.Placeholder != "").True()
	gt.Number(t, len(report.ActionPlan.Rows)).Equal(0)
	gt.Bool(t, report.ActionPlan.Placeholder != "").True()
}

func TestBuildReportMissingInventory(t *testing.T) {
	uc := usecase.New(memory.New())

	_, err := uc.Report.BuildReport(context.Background(), 999)
	gt.Value(t, err).NotNil()
}

func TestBuildReportMissingCompany(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()

	inv, err := f.uc.Inventory.CreateInventory(ctx, f.company.ID)
	gt.NoError(t, err).Required()

	gt.NoError(t, f.uc.Company.DeleteCompany(ctx, f.company.ID)).Required()

	_, err = f.uc.Report.BuildReport(ctx, inv.ID)
	gt.Value(t, err).NotNil()
}

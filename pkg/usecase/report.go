package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sstlab/vigia/pkg/domain/interfaces"
	"github.com/sstlab/vigia/pkg/domain/model"
	"github.com/sstlab/vigia/pkg/domain/types"
)

type ReportUseCase struct {
	repo interfaces.Repository
}

func NewReportUseCase(repo interfaces.Repository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// BuildReport assembles the full eight-section risk management program
// document for one inventory. The inventory and its company must both
// exist; a partial document is never produced.
func (uc *ReportUseCase) BuildReport(ctx context.Context, inventoryID int64) (*model.Report, error) {
	inventory, err := uc.repo.Inventory().Get(ctx, inventoryID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get inventory", goerr.V(InventoryIDKey, inventoryID))
	}

	company, err := uc.repo.Company().Get(ctx, inventory.CompanyID)
	if err != nil {
		return nil, goerr.Wrap(err, "company not found", goerr.V(CompanyIDKey, inventory.CompanyID))
	}

	employees, err := uc.repo.Employee().ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list employees", goerr.V(CompanyIDKey, company.ID))
	}

	hazards, err := uc.buildHazardSection(ctx, inventory)
	if err != nil {
		return nil, err
	}

	return &model.Report{
		Cover:        buildCoverSection(company, inventory),
		Introduction: buildIntroductionSection(company),
		Methodology:  buildMethodologySection(),
		Scales:       buildScaleSection(),
		Matrix:       buildMatrixSection(),
		Company:      buildCompanySection(company, employees),
		Hazards:      hazards,
		ActionPlan:   buildActionPlanSection(inventory),
	}, nil
}

func buildCoverSection(company *model.Company, inventory *model.Inventory) model.CoverSection {
	return model.CoverSection{
		Title:       "Risk Management Program",
		Subtitle:    fmt.Sprintf("Hazard and Risk Inventory - Version %d", inventory.Version),
		CompanyName: company.Name,
		TaxID:       company.TaxID,
		GeneratedAt: time.Now().UTC(),
		Validity:    "This document is valid for 2 years from the generation date or until the working conditions it describes change.",
	}
}

func buildIntroductionSection(company *model.Company) model.IntroductionSection {
	return model.IntroductionSection{
		Paragraphs: []string{
			fmt.Sprintf("This Risk Management Program consolidates the identification, evaluation and control of occupational hazards present in the activities of %s.", company.Name),
			"The program covers all sectors and job functions of the organization, and is reviewed whenever working conditions change or new hazards are identified.",
			"It establishes the preventive measures required to preserve the health and physical integrity of all workers, including third parties operating on the premises.",
		},
		Responsibilities: []string{
			"The employer must implement and maintain the preventive measures defined in this program.",
			"The employer must inform workers about the occupational risks present in their activities.",
			"Workers must follow the safety guidance and use the protection equipment provided.",
			"Workers must report to their supervisor any situation that poses a risk to health or safety.",
		},
	}
}

func buildMethodologySection() model.MethodologySection {
	return model.MethodologySection{
		SurveyParagraph:     "Hazards were surveyed through workplace inspections, interviews with workers and supervisors, and review of the regulatory norms applicable to the company's market segment. Each identified hazard is recorded with its generating source, exposed sectors and job functions.",
		EvaluationParagraph: "Each hazard is evaluated by combining the probability of occurrence with the severity of its consequences, both graded from 1 to 5. The product of the two grades places the hazard in one of five risk bands which determine the priority of control actions.",
	}
}

func buildScaleSection() model.ScaleSection {
	return model.ScaleSection{
		Probability: []model.ScaleRow{
			{Grade: 1, Name: "Rare", Criteria: "Occurrence is conceivable only under exceptional circumstances."},
			{Grade: 2, Name: "Unlikely", Criteria: "Occurrence is possible but not expected under normal conditions."},
			{Grade: 3, Name: "Possible", Criteria: "Occurrence is expected occasionally during the activity."},
			{Grade: 4, Name: "Likely", Criteria: "Occurrence is expected frequently during the activity."},
			{Grade: 5, Name: "Almost Certain", Criteria: "Occurrence is expected in most exposures."},
		},
		Severity: []model.ScaleRow{
			{Grade: 1, Name: "Negligible", Criteria: "No injury, or discomfort without need of first aid."},
			{Grade: 2, Name: "Minor", Criteria: "Injury requiring first aid, without lost workdays."},
			{Grade: 3, Name: "Moderate", Criteria: "Injury with temporary absence from work."},
			{Grade: 4, Name: "Major", Criteria: "Injury with permanent partial disability."},
			{Grade: 5, Name: "Catastrophic", Criteria: "Injury with permanent total disability or death."},
		},
	}
}

func buildMatrixSection() model.MatrixSection {
	bands := types.AllRiskBands()
	criteria := make([]model.CriterionRow, 0, len(bands))
	for _, band := range bands {
		criteria = append(criteria, model.CriterionRow{
			Band:   band,
			Label:  band.Label(),
			Action: band.Action(),
		})
	}

	return model.MatrixSection{
		Grid:     model.RiskMatrix(),
		Criteria: criteria,
	}
}

// buildCompanySection characterizes the company and groups its employees by
// sector. Employees without a sector are counted under an explicit bucket
// rather than dropped.
func buildCompanySection(company *model.Company, employees []*model.Employee) model.CompanySection {
	counts := map[string]int{}
	for _, e := range employees {
		sector := e.Sector
		if sector == "" {
			sector = "No Sector"
		}
		counts[sector]++
	}

	roster := make([]model.RosterRow, 0, len(counts))
	for sector, count := range counts {
		roster = append(roster, model.RosterRow{Sector: sector, Count: count})
	}
	sort.Slice(roster, func(i, j int) bool { return roster[i].Sector < roster[j].Sector })

	return model.CompanySection{
		Name:         company.Name,
		TaxID:        company.TaxID,
		Address:      company.Address,
		ActivityCode: company.ActivityCode,
		RiskGrade:    company.RiskGrade,
		Roster:       roster,
	}
}

func (uc *ReportUseCase) buildHazardSection(ctx context.Context, inventory *model.Inventory) (model.HazardSection, error) {
	if len(inventory.Entries) == 0 {
		return model.HazardSection{
			Rows:        []model.HazardRow{},
			Placeholder: "No hazards have been recorded in this inventory.",
		}, nil
	}

	injuryNames := map[int64]string{}
	injuries, err := uc.repo.Injury().List(ctx)
	if err != nil {
		return model.HazardSection{}, goerr.Wrap(err, "failed to list injuries")
	}
	for _, injury := range injuries {
		injuryNames[injury.ID] = injury.Name
	}

	rows := make([]model.HazardRow, 0, len(inventory.Entries))
	for i := range inventory.Entries {
		entry := &inventory.Entries[i]

		names := make([]string, 0, len(entry.InjuryIDs))
		for _, id := range entry.InjuryIDs {
			if name, ok := injuryNames[id]; ok {
				names = append(names, name)
			}
		}

		measures := make([]model.MeasureLine, 0, len(entry.Measures))
		for _, m := range entry.Measures {
			measures = append(measures, model.MeasureLine{
				Name:   m.MeasureName,
				Status: m.Status.Label(),
			})
		}

		rows = append(rows, model.HazardRow{
			Sector:      entry.SectorName,
			Functions:   strings.Join(entry.FunctionNames, ", "),
			Source:      entry.SourceName,
			Hazard:      entry.DangerName,
			Description: entry.Description,
			Measures:    measures,
			Injuries:    strings.Join(names, ", "),
			Probability: entry.Probability,
			Severity:    entry.Severity,
			Band:        entry.Score.Label(),
		})
	}

	return model.HazardSection{Rows: rows}, nil
}

// buildActionPlanSection keeps only entries above the lowest band, ordered
// by descending risk value. The measures column lists the controls already
// implemented for each hazard.
func buildActionPlanSection(inventory *model.Inventory) model.ActionPlanSection {
	rows := []model.ActionRow{}
	for i := range inventory.Entries {
		entry := &inventory.Entries[i]
		if entry.Score.Band == types.RiskBandVeryLow {
			continue
		}

		measures := []string{}
		for _, m := range entry.Measures {
			if m.Status.Normalize() == types.ImplementationYes {
				measures = append(measures, m.MeasureName)
			}
		}

		rows = append(rows, model.ActionRow{
			Band:     entry.Score.Label(),
			Danger:   entry.DangerName,
			Measures: measures,
			Value:    entry.Score.Value,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Value > rows[j].Value })

	section := model.ActionPlanSection{
		Rows: rows,
		Signatures: []model.SignatureLine{
			{Name: "", Role: "Employer"},
			{Name: "", Role: "Occupational Safety Technician"},
		},
	}
	if len(rows) == 0 {
		section.Placeholder = "No control actions are required: every recorded hazard is in the lowest risk band."
	}
	return section
}

package model

import (
	"time"

	"github.com/sstlab/vigia/pkg/domain/types"
)

// Report is the assembled risk management program (PGR) document: eight
// fixed sections, each independently addressable by a rendering target.
// For a given inventory, company and employee set the content is
// deterministic except for GeneratedAt on the cover.
type Report struct {
	Cover        CoverSection        `json:"cover"`
	Introduction IntroductionSection `json:"introduction"`
	Methodology  MethodologySection  `json:"methodology"`
	Scales       ScaleSection        `json:"scales"`
	Matrix       MatrixSection       `json:"matrix"`
	Company      CompanySection      `json:"company"`
	Hazards      HazardSection       `json:"hazards"`
	ActionPlan   ActionPlanSection   `json:"actionPlan"`
}

// CoverSection is section 1: document identity and validity.
type CoverSection struct {
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	CompanyName string    `json:"companyName"`
	TaxID       string    `json:"taxId"`
	GeneratedAt time.Time `json:"generatedAt"`
	Validity    string    `json:"validity"`
}

// IntroductionSection is section 2: regulatory boilerplate parameterized
// only by the company name.
type IntroductionSection struct {
	Paragraphs       []string `json:"paragraphs"`
	Responsibilities []string `json:"responsibilities"`
}

// MethodologySection is section 3: the two-stage process description
// (hazard survey, then probability x severity evaluation).
type MethodologySection struct {
	SurveyParagraph     string `json:"surveyParagraph"`
	EvaluationParagraph string `json:"evaluationParagraph"`
}

// ScaleRow is one grade of the probability or severity reference scale
type ScaleRow struct {
	Grade    int    `json:"grade"`
	Name     string `json:"name"`
	Criteria string `json:"criteria"`
}

// ScaleSection is section 4: static probability and severity scale tables.
type ScaleSection struct {
	Probability []ScaleRow `json:"probability"`
	Severity    []ScaleRow `json:"severity"`
}

// CriterionRow is one band of the decision-criteria table
type CriterionRow struct {
	Band   types.RiskBand `json:"band"`
	Label  string         `json:"label"`
	Action string         `json:"action"`
}

// MatrixSection is section 5: the 5x5 grid plus decision criteria, a
// human-readable restatement of the scoring thresholds.
type MatrixSection struct {
	Grid     [][]MatrixCell `json:"grid"`
	Criteria []CriterionRow `json:"criteria"`
}

// RosterRow counts employees of one sector
type RosterRow struct {
	Sector string `json:"sector"`
	Count  int    `json:"count"`
}

// CompanySection is section 6: company characterization and the employee
// roster grouped by sector name.
type CompanySection struct {
	Name         string      `json:"name"`
	TaxID        string      `json:"taxId"`
	Address      string      `json:"address"`
	ActivityCode string      `json:"activityCode"`
	RiskGrade    int         `json:"riskGrade"`
	Roster       []RosterRow `json:"roster"`
}

// MeasureLine is one protection measure with its implementation status label
type MeasureLine struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// HazardRow is one row of the hazard inventory table
type HazardRow struct {
	Sector      string        `json:"sector"`
	Functions   string        `json:"functions"`
	Source      string        `json:"source"`
	Hazard      string        `json:"hazard"`
	Description string        `json:"description"`
	Measures    []MeasureLine `json:"measures"`
	Injuries    string        `json:"injuries"`
	Probability int           `json:"probability"`
	Severity    int           `json:"severity"`
	Band        string        `json:"band"`
}

// HazardSection is section 7: one row per risk entry. Empty renders a single
// explicit placeholder row instead of an empty table.
type HazardSection struct {
	Rows        []HazardRow `json:"rows"`
	Placeholder string      `json:"placeholder,omitempty"`
}

// ActionRow is one prioritized action-plan row
type ActionRow struct {
	Band        string   `json:"band"`
	Danger      string   `json:"danger"`
	Measures    []string `json:"measures"`
	Schedule    string   `json:"schedule"`
	Responsible string   `json:"responsible"`
	Value       int      `json:"value"`
}

// SignatureLine is one fixed signature placeholder
type SignatureLine struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// ActionPlanSection is section 8: entries above the lowest band sorted by
// descending risk value, followed by the fixed signature block.
type ActionPlanSection struct {
	Rows        []ActionRow     `json:"rows"`
	Placeholder string          `json:"placeholder,omitempty"`
	Signatures  []SignatureLine `json:"signatures"`
}

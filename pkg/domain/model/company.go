package model

import "time"

// Company is an organization whose hazards are managed. SegmentID is zero
// when the company has no market segment assigned; hazard suggestions are
// unavailable in that case.
type Company struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	TaxID        string    `json:"taxId"`
	ActivityCode string    `json:"activityCode"`
	Address      string    `json:"address"`
	RiskGrade    int       `json:"riskGrade"`
	SegmentID    int64     `json:"segmentId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Clone returns a deep copy of the company
func (c *Company) Clone() *Company {
	copied := *c
	return &copied
}

// Employee belongs to exactly one company. Sector and Role are free text,
// entered as-is by the user.
type Employee struct {
	ID        int64     `json:"id"`
	CompanyID int64     `json:"companyId"`
	Name      string    `json:"name"`
	TaxID     string    `json:"taxId"`
	Sector    string    `json:"sector"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clone returns a deep copy of the employee
func (e *Employee) Clone() *Employee {
	copied := *e
	return &copied
}

package model

// Segment is a market-sector classification used to pre-suggest hazards
// for companies operating in that sector.
type Segment struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Clone returns a copy of the segment
func (s *Segment) Clone() *Segment {
	copied := *s
	return &copied
}

// DangerSource is the generating source of a hazard, e.g. machinery.
type DangerSource struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Clone returns a copy of the danger source
func (s *DangerSource) Clone() *DangerSource {
	copied := *s
	return &copied
}

// ProtectionMeasure is a candidate control measure for a hazard.
type ProtectionMeasure struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Clone returns a copy of the protection measure
func (m *ProtectionMeasure) Clone() *ProtectionMeasure {
	copied := *m
	return &copied
}

// Injury is a possible harm outcome of a hazard.
type Injury struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Clone returns a copy of the injury
func (i *Injury) Clone() *Injury {
	copied := *i
	return &copied
}

// Sector is a company-scoped classification label for risk entries.
type Sector struct {
	ID        int64  `json:"id"`
	CompanyID int64  `json:"companyId"`
	Name      string `json:"name"`
}

// Clone returns a copy of the sector
func (s *Sector) Clone() *Sector {
	copied := *s
	return &copied
}

// Function is a company-scoped job function label for risk entries.
type Function struct {
	ID        int64  `json:"id"`
	CompanyID int64  `json:"companyId"`
	Name      string `json:"name"`
}

// Clone returns a copy of the function
func (f *Function) Clone() *Function {
	copied := *f
	return &copied
}

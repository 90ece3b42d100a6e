package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/sstlab/vigia/pkg/domain/types"
)

// NewEntryID generates a fresh identifier for a risk entry
func NewEntryID() string {
	return uuid.New().String()
}

// MeasureStatus records one protection measure attached to a risk entry and
// its implementation state. MeasureName is a snapshot taken at save time.
type MeasureStatus struct {
	MeasureID   int64                      `json:"measureId"`
	MeasureName string                     `json:"measureName"`
	Status      types.ImplementationStatus `json:"status"`
}

// RiskEntry is one identified hazard inside an inventory.
//
// SectorName, FunctionNames, SourceName and DangerName are documented
// snapshots of the referenced records, taken when the entry is saved, so that
// report rendering survives later renames or deletions of the referenced
// entities. Score is always recomputed from Probability and Severity when the
// entry is saved, never carried over independently.
type RiskEntry struct {
	ID          string  `json:"id"`
	SectorID    int64   `json:"sectorId"`
	FunctionIDs []int64 `json:"functionIds"`
	SourceID    int64   `json:"sourceId"`
	DangerID    int64   `json:"dangerId"`
	Description string  `json:"description"`
	Probability int     `json:"probability"`
	Severity    int     `json:"severity"`

	Measures  []MeasureStatus `json:"measures"`
	InjuryIDs []int64         `json:"injuryIds"`

	SectorName    string   `json:"sectorName"`
	FunctionNames []string `json:"functionNames"`
	SourceName    string   `json:"sourceName"`
	DangerName    string   `json:"dangerName"`

	Score     Score     `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a deep copy of the entry, keeping its identifier
func (e *RiskEntry) Clone() *RiskEntry {
	copied := *e
	copied.FunctionIDs = append([]int64(nil), e.FunctionIDs...)
	copied.InjuryIDs = append([]int64(nil), e.InjuryIDs...)
	copied.FunctionNames = append([]string(nil), e.FunctionNames...)
	copied.Measures = append([]MeasureStatus(nil), e.Measures...)
	return &copied
}

// Inventory is a versioned snapshot of a company's identified hazards.
// CompanyName is a snapshot of the owning company's name at creation time.
type Inventory struct {
	ID          int64                 `json:"id"`
	CompanyID   int64                 `json:"companyId"`
	CompanyName string                `json:"companyName"`
	Version     int                   `json:"version"`
	Status      types.InventoryStatus `json:"status"`
	Entries     []RiskEntry           `json:"entries"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

// Clone returns a deep copy of the inventory. Entry identifiers are kept;
// callers cloning an inventory into a new version assign fresh ones.
func (v *Inventory) Clone() *Inventory {
	copied := *v
	copied.Entries = make([]RiskEntry, len(v.Entries))
	for i := range v.Entries {
		copied.Entries[i] = *v.Entries[i].Clone()
	}
	return &copied
}

// HasEntry reports whether the inventory already holds an entry for the
// given (source, danger) pair. The suggestion engine uses this to avoid
// duplicating entries.
func (v *Inventory) HasEntry(sourceID, dangerID int64) bool {
	for i := range v.Entries {
		if v.Entries[i].SourceID == sourceID && v.Entries[i].DangerID == dangerID {
			return true
		}
	}
	return false
}

// NextVersion returns the version number a new inventory for the company
// must receive: one more than the highest existing version, starting at 1.
// Versions stay unique per company even after older inventories are deleted.
func NextVersion(existing []*Inventory) int {
	maxVersion := 0
	for _, inv := range existing {
		if inv.Version > maxVersion {
			maxVersion = inv.Version
		}
	}
	return maxVersion + 1
}

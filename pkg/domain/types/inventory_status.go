package types

import "github.com/m-mizutani/goerr/v2"

// InventoryStatus represents the lifecycle state of a hazard inventory
type InventoryStatus string

const (
	InventoryStatusDraft InventoryStatus = "draft"
	InventoryStatusFinal InventoryStatus = "final"
)

// AllInventoryStatuses returns all valid inventory statuses
func AllInventoryStatuses() []InventoryStatus {
	return []InventoryStatus{
		InventoryStatusDraft,
		InventoryStatusFinal,
	}
}

// IsValid checks if the inventory status is valid
func (s InventoryStatus) IsValid() bool {
	switch s {
	case InventoryStatusDraft, InventoryStatusFinal:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as InventoryStatusDraft
func (s InventoryStatus) Normalize() InventoryStatus {
	if s == "" {
		return InventoryStatusDraft
	}
	return s
}

// String returns the string representation of the inventory status
func (s InventoryStatus) String() string {
	return string(s)
}

// ParseInventoryStatus parses a string into an InventoryStatus
func ParseInventoryStatus(s string) (InventoryStatus, error) {
	status := InventoryStatus(s)
	if !status.IsValid() {
		return "", goerr.New("invalid inventory status", goerr.V("status", s))
	}
	return status, nil
}

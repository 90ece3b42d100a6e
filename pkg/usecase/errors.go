package usecase

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for use case layer
var (
	// Validation errors
	ErrInvalidInput = goerr.New("invalid input")

	// Referential integrity errors
	ErrStillReferenced = goerr.New("record is still referenced")

	// Prerequisite errors
	ErrNoSegment        = goerr.New("company has no segment assigned")
	ErrInventoryMissing = goerr.New("company has no hazard inventory")
)

// Context keys for error values
const (
	CompanyIDKey   = "company_id"
	InventoryIDKey = "inventory_id"
	EntryIDKey     = "entry_id"
	NormIDKey      = "norm_id"
	GroupIDKey     = "group_id"
)

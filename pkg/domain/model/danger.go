package model

// DangerGroup categorizes dangers. Color is a display hint consumed by
// rendering targets, stored as-is.
type DangerGroup struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// Clone returns a copy of the danger group
func (g *DangerGroup) Clone() *DangerGroup {
	copied := *g
	return &copied
}

// Danger is a potential source of harm, categorized by a DangerGroup.
// A group cannot be deleted while any danger still references it.
type Danger struct {
	ID          int64  `json:"id"`
	GroupID     int64  `json:"groupId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Clone returns a copy of the danger
func (d *Danger) Clone() *Danger {
	copied := *d
	return &copied
}

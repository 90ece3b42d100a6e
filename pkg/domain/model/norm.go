package model

// Norm is a regulatory norm (NR). Number is stored zero-padded ("01", "35")
// so lexical ordering matches the numeric one.
type Norm struct {
	ID          int64  `json:"id"`
	Number      string `json:"number"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Clone returns a copy of the norm
func (n *Norm) Clone() *Norm {
	copied := *n
	return &copied
}

// NormDetail links one norm to one danger, together with the injuries that
// danger can cause and the protection measures the norm suggests for it.
// Deleting a norm removes all of its details first.
type NormDetail struct {
	ID         int64   `json:"id"`
	NormID     int64   `json:"normId"`
	DangerID   int64   `json:"dangerId"`
	InjuryIDs  []int64 `json:"injuryIds"`
	MeasureIDs []int64 `json:"measureIds"`
}

// Clone returns a deep copy of the norm detail
func (d *NormDetail) Clone() *NormDetail {
	copied := *d
	copied.InjuryIDs = append([]int64(nil), d.InjuryIDs...)
	copied.MeasureIDs = append([]int64(nil), d.MeasureIDs...)
	return &copied
}

// SegmentNormAssociation ties a segment, a danger source, a norm and a
// danger together. These rows are the basis for auto-suggesting inventory
// entries for companies of that segment.
type SegmentNormAssociation struct {
	ID             int64 `json:"id"`
	SegmentID      int64 `json:"segmentId"`
	DangerSourceID int64 `json:"dangerSourceId"`
	NormID         int64 `json:"normId"`
	DangerID       int64 `json:"dangerId"`
}

// Clone returns a copy of the association
func (a *SegmentNormAssociation) Clone() *SegmentNormAssociation {
	copied := *a
	return &copied
}

package model

import "github.com/sstlab/vigia/pkg/domain/types"

// Score is the result of evaluating a risk entry. Value is the raw
// probability x severity product (1..25) and Band the qualitative level
// derived from it by fixed thresholds.
type Score struct {
	Band  types.RiskBand `json:"band"`
	Value int            `json:"value"`
}

// Label returns the human-readable band name
func (s Score) Label() string {
	return s.Band.Label()
}

// Token returns the stable rendering token of the band
func (s Score) Token() string {
	return s.Band.Token()
}

// ScoreRisk maps a probability and severity (both expected in 1..5) to a
// Score. Thresholds are evaluated in ascending order, first match wins:
// <=4 very low, <=8 low, <=15 medium, <=20 high, above that very high.
//
// The function is pure and total. Inputs outside 1..5 are not rejected here;
// callers constrain the domain.
func ScoreRisk(probability, severity int) Score {
	value := probability * severity

	switch {
	case value <= 4:
		return Score{Band: types.RiskBandVeryLow, Value: value}
	case value <= 8:
		return Score{Band: types.RiskBandLow, Value: value}
	case value <= 15:
		return Score{Band: types.RiskBandMedium, Value: value}
	case value <= 20:
		return Score{Band: types.RiskBandHigh, Value: value}
	default:
		return Score{Band: types.RiskBandVeryHigh, Value: value}
	}
}

// MatrixCell is one cell of the 5x5 probability/severity reference grid
type MatrixCell struct {
	Probability int   `json:"probability"`
	Severity    int   `json:"severity"`
	Score       Score `json:"score"`
}

// RiskMatrix enumerates the full 5x5 grid for static reference display.
// Rows run severity 5 down to 1, columns probability 1 up to 5, matching the
// printed matrix layout. It is not used by scoring logic.
func RiskMatrix() [][]MatrixCell {
	matrix := make([][]MatrixCell, 0, 5)
	for severity := 5; severity >= 1; severity-- {
		row := make([]MatrixCell, 0, 5)
		for probability := 1; probability <= 5; probability++ {
			row = append(row, MatrixCell{
				Probability: probability,
				Severity:    severity,
				Score:       ScoreRisk(probability, severity),
			})
		}
		matrix = append(matrix, row)
	}
	return matrix
}

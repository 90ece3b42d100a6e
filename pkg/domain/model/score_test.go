package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/sstlab/vigia/pkg/domain/model"
	"github.com/sstlab/vigia/pkg/domain/types"
)

func TestScoreRisk(t *testing.T) {
	cases := []struct {
		probability int
		severity    int
		value       int
		band        types.RiskBand
	}{
		{1, 1, 1, types.RiskBandVeryLow},
		{2, 2, 4, types.RiskBandVeryLow},
		{4, 1, 4, types.RiskBandVeryLow},
		{1, 5, 5, types.RiskBandLow},
		{2, 4, 8, types.RiskBandLow},
		{3, 3, 9, types.RiskBandMedium},
		{3, 5, 15, types.RiskBandMedium},
		{4, 4, 16, types.RiskBandHigh},
		{4, 5, 20, types.RiskBandHigh},
		{5, 5, 25, types.RiskBandVeryHigh},
	}

	for _, c := range cases {
		score := model.ScoreRisk(c.probability, c.severity)
		gt.Value(t, score.Value).Equal(c.value)
		gt.Value(t, score.Band).Equal(c.band)
	}
}

func TestScoreRiskIsSymmetric(t *testing.T) {
	for p := 1; p <= 5; p++ {
		for s := 1; s <= 5; s++ {
			gt.Value(t, model.ScoreRisk(p, s)).Equal(model.ScoreRisk(s, p))
		}
	}
}

func TestScoreRiskBandMonotonic(t *testing.T) {
	prevRank := -1
	for value := 1; value <= 25; value++ {
		// every product value is reachable as value x 1 only up to 5,
		// so probe through the raw thresholds with a 1..25 sweep via 5x5 pairs
		for p := 1; p <= 5; p++ {
			for s := 1; s <= 5; s++ {
				if p*s != value {
					continue
				}
				rank := model.ScoreRisk(p, s).Band.Rank()
				gt.Bool(t, rank >= prevRank).True()
				prevRank = rank
			}
		}
	}
}

func TestRiskMatrix(t *testing.T) {
	matrix := model.RiskMatrix()

	gt.Number(t, len(matrix)).Equal(5)
	for _, row := range matrix {
		gt.Number(t, len(row)).Equal(5)
	}

	// top-left cell: severity 5, probability 1
	gt.Value(t, matrix[0][0].Severity).Equal(5)
	gt.Value(t, matrix[0][0].Probability).Equal(1)
	gt.Value(t, matrix[0][0].Score.Value).Equal(5)

	// bottom-right cell: severity 1, probability 5
	gt.Value(t, matrix[4][4].Severity).Equal(1)
	gt.Value(t, matrix[4][4].Probability).Equal(5)
	gt.Value(t, matrix[4][4].Score.Band).Equal(types.RiskBandLow)

	// top-right cell: the maximum
	gt.Value(t, matrix[0][4].Score.Value).Equal(25)
	gt.Value(t, matrix[0][4].Score.Band).Equal(types.RiskBandVeryHigh)
}

func TestRiskBandTokens(t *testing.T) {
	gt.Value(t, types.RiskBandVeryLow.Token()).Equal("risk-very-low")
	gt.Value(t, types.RiskBandVeryHigh.Token()).Equal("risk-very-high")

	for _, band := range types.AllRiskBands() {
		gt.Bool(t, band.Action() != "").True()
		gt.Bool(t, band.Label() != "Unknown").True()
	}
}

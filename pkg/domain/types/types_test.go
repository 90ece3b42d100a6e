package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/sstlab/vigia/pkg/domain/types"
)

func TestParseRiskBand(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.RiskBand
		wantErr bool
	}{
		{
			name:  "valid very-low",
			input: "very-low",
			want:  types.RiskBandVeryLow,
		},
		{
			name:  "valid medium",
			input: "medium",
			want:  types.RiskBandMedium,
		},
		{
			name:  "valid very-high",
			input: "very-high",
			want:  types.RiskBandVeryHigh,
		},
		{
			name:    "invalid band",
			input:   "extreme",
			wantErr: true,
		},
		{
			name:    "empty band",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.ParseRiskBand(tt.input)
			if tt.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
				gt.V(t, got).Equal(tt.want)
			}
		})
	}
}

func TestParseInventoryStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.InventoryStatus
		wantErr bool
	}{
		{
			name:  "valid draft",
			input: "draft",
			want:  types.InventoryStatusDraft,
		},
		{
			name:  "valid final",
			input: "final",
			want:  types.InventoryStatusFinal,
		},
		{
			name:    "invalid status",
			input:   "archived",
			wantErr: true,
		},
		{
			name:    "empty status",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.ParseInventoryStatus(tt.input)
			if tt.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
				gt.V(t, got).Equal(tt.want)
			}
		})
	}
}

func TestParseImplementationStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.ImplementationStatus
		wantErr bool
	}{
		{
			name:  "valid yes",
			input: "yes",
			want:  types.ImplementationYes,
		},
		{
			name:  "valid not-applicable",
			input: "not_applicable",
			want:  types.ImplementationNotApplicable,
		},
		{
			name:    "invalid status",
			input:   "maybe",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.ParseImplementationStatus(tt.input)
			if tt.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
				gt.V(t, got).Equal(tt.want)
			}
		})
	}
}

package types

import "github.com/m-mizutani/goerr/v2"

// RiskBand is the qualitative level derived from probability x severity.
type RiskBand string

const (
	RiskBandVeryLow  RiskBand = "very-low"
	RiskBandLow      RiskBand = "low"
	RiskBandMedium   RiskBand = "medium"
	RiskBandHigh     RiskBand = "high"
	RiskBandVeryHigh RiskBand = "very-high"
)

// AllRiskBands returns all risk bands in ascending severity order
func AllRiskBands() []RiskBand {
	return []RiskBand{
		RiskBandVeryLow,
		RiskBandLow,
		RiskBandMedium,
		RiskBandHigh,
		RiskBandVeryHigh,
	}
}

// IsValid checks if the risk band is valid
func (b RiskBand) IsValid() bool {
	switch b {
	case RiskBandVeryLow,
		RiskBandLow,
		RiskBandMedium,
		RiskBandHigh,
		RiskBandVeryHigh:
		return true
	default:
		return false
	}
}

// Label returns the human-readable name of the band
func (b RiskBand) Label() string {
	switch b {
	case RiskBandVeryLow:
		return "Very Low"
	case RiskBandLow:
		return "Low"
	case RiskBandMedium:
		return "Medium"
	case RiskBandHigh:
		return "High"
	case RiskBandVeryHigh:
		return "Very High"
	default:
		return "Unknown"
	}
}

// Token returns a stable identifier usable as a color/style key by renderers.
// Tokens are part of the report contract and must not change between releases.
func (b RiskBand) Token() string {
	return "risk-" + string(b)
}

// Action returns the fixed decision-criteria text associated with the band
func (b RiskBand) Action() string {
	switch b {
	case RiskBandVeryLow:
		return "No additional control is required."
	case RiskBandLow:
		return "An alternative control solution may be considered. Inspection of the existing prevention measures is required."
	case RiskBandMedium:
		return "Studies must be carried out to reduce the hazard level. Inspections of the existing measures are required."
	case RiskBandHigh:
		return "Studies must be carried out to reduce the hazard level, with reassessment. Start executing or implementing the proposed actions."
	case RiskBandVeryHigh:
		return "Work must not be started or continued until the hazard has been reduced. If the hazard cannot be reduced, work must remain prohibited."
	default:
		return ""
	}
}

// Rank returns the ordinal position of the band, starting at 0 for the
// lowest. Bands are monotonically non-decreasing in the numeric risk value.
func (b RiskBand) Rank() int {
	for i, band := range AllRiskBands() {
		if band == b {
			return i
		}
	}
	return -1
}

// String returns the string representation of the risk band
func (b RiskBand) String() string {
	return string(b)
}

// ParseRiskBand parses a string into a RiskBand
func ParseRiskBand(s string) (RiskBand, error) {
	band := RiskBand(s)
	if !band.IsValid() {
		return "", goerr.New("invalid risk band", goerr.V("band", s))
	}
	return band, nil
}

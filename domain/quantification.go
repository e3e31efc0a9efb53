package domain

// QuantificationResult is the value stored under quantification_data.
type QuantificationResult struct {
	PresentValue         float64 `json:"present_value"`
	InflationRateAssumed float64 `json:"inflation_rate_assumed"`
	TimelineYears        float64 `json:"timeline_years"`
	FutureValueRequired  float64 `json:"future_value_required"`
}

// FutureValueInput carries calculator arguments from callers outside the
// document flow. Nil fields were not supplied.
type FutureValueInput struct {
	PresentValue  *float64 `json:"present_value"`
	TimelineYears *float64 `json:"timeline_years"`
	InflationRate *float64 `json:"inflation_rate,omitempty"` // nil usa la tasa por defecto
}

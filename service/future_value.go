package service

import (
	"math"

	"goal-quantifier/domain"
)

// ComputeFutureValue grows presentValue by inflationRate compounded yearly
// over timelineYears: FV = PV * (1 + i)^n.
//
// Inputs are not range checked. Negative values go through math.Pow as-is,
// so a negative base with a fractional exponent yields NaN.
func ComputeFutureValue(
	presentValue float64,
	timelineYears float64,
	inflationRate float64,
) domain.QuantificationResult {
	fv := presentValue * math.Pow(1+inflationRate, timelineYears)

	return domain.QuantificationResult{
		PresentValue:         presentValue,
		InflationRateAssumed: inflationRate,
		TimelineYears:        timelineYears,
		FutureValueRequired:  fv,
	}
}

// ComputeFutureValueAtDefaultRate applies DefaultInflationRate.
func ComputeFutureValueAtDefaultRate(presentValue, timelineYears float64) domain.QuantificationResult {
	return ComputeFutureValue(presentValue, timelineYears, DefaultInflationRate)
}

// exemptResult is the record for goals that do not grow with inflation:
// present and future value are the same amount.
func exemptResult(presentValue, timelineYears float64) domain.QuantificationResult {
	return domain.QuantificationResult{
		PresentValue:         presentValue,
		InflationRateAssumed: ExemptInflationRate,
		TimelineYears:        timelineYears,
		FutureValueRequired:  presentValue,
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

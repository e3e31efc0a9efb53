package service

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"goal-quantifier/domain"
)

func TestComputeFutureValue(t *testing.T) {
	tests := []struct {
		name  string
		pv    float64
		years float64
		rate  float64
		want  float64
	}{
		{"five years at six percent", 100000, 5, 0.06, 133822.55776},
		{"zero horizon", 50000, 0, 0.06, 50000},
		{"zero inflation", 20000, 10, 0, 20000},
		{"fractional years", 1000, 2.5, 0.05, 1129.726321947046},
		{"deflation shrinks", 1000, 10, -0.03, 737.4241268949281},
		{"zero present value", 0, 30, 0.06, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeFutureValue(tt.pv, tt.years, tt.rate)

			assert.InDelta(t, tt.want, got.FutureValueRequired, 1e-6)
			assert.Equal(t, tt.pv, got.PresentValue)
			assert.Equal(t, tt.years, got.TimelineYears)
			assert.Equal(t, tt.rate, got.InflationRateAssumed)
		})
	}
}

func TestComputeFutureValue_MatchesFormula(t *testing.T) {
	for _, pv := range []float64{0, 1, 999.99, 250000, 1e9} {
		for _, n := range []float64{0, 0.5, 1, 7, 30.25} {
			for _, i := range []float64{-0.5, 0, 0.02, 0.06, 0.15} {
				want := pv * math.Pow(1+i, n)
				got := ComputeFutureValue(pv, n, i).FutureValueRequired

				if want == 0 {
					assert.Zero(t, got)
					continue
				}
				assert.Less(t, math.Abs(got-want)/math.Abs(want), 1e-9,
					"pv=%v n=%v i=%v", pv, n, i)
			}
		}
	}
}

func TestComputeFutureValue_IdentityCases(t *testing.T) {
	for _, pv := range []float64{0, 1, 50000, 1234.56} {
		for _, i := range []float64{-0.2, 0, 0.06, 1.5} {
			assert.Equal(t, pv, ComputeFutureValue(pv, 0, i).FutureValueRequired)
		}
		for _, n := range []float64{0, 1, 10, 42.5} {
			assert.Equal(t, pv, ComputeFutureValue(pv, n, 0).FutureValueRequired)
		}
	}
}

func TestComputeFutureValue_NoRangeChecks(t *testing.T) {
	neg := ComputeFutureValue(-1000, 2, 0.1)
	assert.InDelta(t, -1210, neg.FutureValueRequired, 1e-9)

	back := ComputeFutureValue(1210, -2, 0.1)
	assert.InDelta(t, 1000, back.FutureValueRequired, 1e-9)

	nan := ComputeFutureValue(1000, 0.5, -2)
	assert.True(t, math.IsNaN(nan.FutureValueRequired))
}

func TestComputeFutureValue_Deterministic(t *testing.T) {
	a := ComputeFutureValue(123456.78, 17.5, 0.0725)
	b := ComputeFutureValue(123456.78, 17.5, 0.0725)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("results differ (-first +second):\n%s", diff)
	}
}

func TestComputeFutureValueAtDefaultRate(t *testing.T) {
	got := ComputeFutureValueAtDefaultRate(100000, 5)

	want := domain.QuantificationResult{
		PresentValue:         100000,
		InflationRateAssumed: 0.06,
		TimelineYears:        5,
		FutureValueRequired:  100000 * math.Pow(1.06, 5),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected result (-want +got):\n%s", diff)
	}
}

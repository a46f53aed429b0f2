package bayesglm

import (
	"math"
	"testing"
)

func TestDispersionProfilerGaussian(t *testing.T) {

	// With a fixed mean, the profile MLE of the Gaussian dispersion is
	// the root mean squared residual.
	y := []float64{1.1, 0.8, 1.3, 0.9, 1.2, 0.7}
	eta := []float64{1, 1, 1, 1, 1, 1}

	e := mustEngine(t, GaussianFamily, 1, y, nil)

	dp, err := NewDispersionProfiler(e, eta, 1)
	if err != nil {
		t.Fatal(err)
	}

	var ssr float64
	for _, v := range y {
		r := v - 1
		ssr += r * r
	}
	want := math.Sqrt(ssr / float64(len(y)))

	if !scalarClose(dp.DispersionMLE(), want, 1e-3) {
		t.Errorf("dispersion MLE = %v, want %v", dp.DispersionMLE(), want)
	}

	ll, err := e.LogLike(eta, dp.DispersionMLE())
	if err != nil {
		t.Fatal(err)
	}
	if !scalarClose(dp.MaxLogLike(), ll, 1e-8) {
		t.Errorf("max log-likelihood = %v, engine gives %v", dp.MaxLogLike(), ll)
	}
}

func TestDispersionProfilerConfInt(t *testing.T) {

	y := []float64{1.4, 0.6, 2.1, 0.9, 1.7, 1.1, 0.8, 1.9}
	eta := []float64{0.2, 0.2, 0.2, 0.2, 0.2, 0.2, 0.2, 0.2}

	e := mustEngine(t, GammaFamily, 2, y, nil)

	dp, err := NewDispersionProfiler(e, eta, 2)
	if err != nil {
		t.Fatal(err)
	}

	lo, hi := dp.ConfInt(0.95)

	if !(lo < dp.DispersionMLE() && dp.DispersionMLE() < hi) {
		t.Errorf("interval (%v, %v) does not bracket the MLE %v", lo, hi, dp.DispersionMLE())
	}

	// The endpoints sit on the chi-squared cutoff: at 95% coverage the
	// profile drops by 1.92 log-likelihood units.
	cut := dp.MaxLogLike() - 1.9207
	if !scalarClose(dp.LogLike(lo), cut, 1e-2) {
		t.Errorf("profile at lower endpoint = %v, want about %v", dp.LogLike(lo), cut)
	}
	if !scalarClose(dp.LogLike(hi), cut, 1e-2) {
		t.Errorf("profile at upper endpoint = %v, want about %v", dp.LogLike(hi), cut)
	}

	// The search history is sorted by dispersion.
	for i := 1; i < len(dp.Profile); i++ {
		if dp.Profile[i][0] < dp.Profile[i-1][0] {
			t.Errorf("profile history out of order at %d", i)
			break
		}
	}
}

func TestDispersionProfilerErrors(t *testing.T) {

	y := []float64{1, 2, 3}
	e := mustEngine(t, GaussianFamily, 1, y, nil)

	if _, err := NewDispersionProfiler(e, []float64{1, 2, 3}, 0); err == nil {
		t.Error("nonpositive start: expected an error")
	}
	if _, err := NewDispersionProfiler(e, []float64{1, 2}, 1); err == nil {
		t.Error("short predictor: expected an error")
	}
}

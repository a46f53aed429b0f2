package bayesglm

import (
	"math"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

// constEta fills an n-vector with the value v.
func constEta(n int, v float64) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = v
	}
	return x
}

func TestPredictiveMeanGaussian(t *testing.T) {

	n := 20000
	e := mustEngine(t, GaussianFamily, 1, constEta(n, 1), nil)

	src := rand.NewPCG(42, 1)
	m, err := e.PredictiveMean(constEta(n, 1.5), 0.5, src)
	if err != nil {
		t.Fatal(err)
	}
	if !scalarClose(m, 1.5, 0.02) {
		t.Errorf("Gaussian predictive mean = %v, want about 1.5", m)
	}
}

func TestPredictiveMeanLogNormal(t *testing.T) {

	n := 20000
	e := mustEngine(t, GaussianFamily, 2, constEta(n, 1), nil)

	// log-normal mean is exp(mu + sigma^2/2)
	src := rand.NewPCG(7, 3)
	m, err := e.PredictiveMean(constEta(n, 0), 0.5, src)
	if err != nil {
		t.Fatal(err)
	}
	want := math.Exp(0.125)
	if !scalarClose(m, want, 0.05) {
		t.Errorf("log-normal predictive mean = %v, want about %v", m, want)
	}
}

func TestPredictiveMeanGamma(t *testing.T) {

	n := 20000
	e := mustEngine(t, GammaFamily, 2, constEta(n, 1), nil)

	src := rand.NewPCG(11, 5)
	m, err := e.PredictiveMean(constEta(n, math.Log(2)), 3, src)
	if err != nil {
		t.Fatal(err)
	}
	if !scalarClose(m, 2, 0.05) {
		t.Errorf("Gamma predictive mean = %v, want about 2", m)
	}
}

func TestPredictiveMeanInvGaussian(t *testing.T) {

	n := 50000
	e := mustEngine(t, InvGaussianFamily, 1, constEta(n, 1), nil)

	// mean mu = 1, variance mu^3/lambda = 0.25
	src := rand.NewPCG(19, 2)
	m, err := e.PredictiveMean(constEta(n, 1), 4, src)
	if err != nil {
		t.Fatal(err)
	}
	if !scalarClose(m, 1, 0.03) {
		t.Errorf("inverse Gaussian predictive mean = %v, want about 1", m)
	}
}

func TestPredictiveMeanBeta(t *testing.T) {

	n := 20000
	e := mustEngine(t, BetaFamily, 1, constEta(n, 0.5), nil)

	src := rand.NewPCG(23, 9)
	m, err := e.PredictiveMean(constEta(n, 0), 4, src)
	if err != nil {
		t.Fatal(err)
	}
	if !scalarClose(m, 0.5, 0.02) {
		t.Errorf("Beta predictive mean = %v, want about 0.5", m)
	}
}

func TestPredictiveMeanBetaModeledPrecision(t *testing.T) {

	n := 20000
	e := mustEngine(t, BetaFamily, 1, constEta(n, 0.5), nil)

	phi := constEta(n, 6)
	src := rand.NewPCG(29, 4)
	m, err := e.PredictiveMeanPrecision(constEta(n, 0), phi, src)
	if err != nil {
		t.Fatal(err)
	}
	if !scalarClose(m, 0.5, 0.02) {
		t.Errorf("Beta modeled-precision predictive mean = %v, want about 0.5", m)
	}
}

// The inverse Gaussian generator should also reproduce the spread of the
// distribution, not just its center.
func TestInvGaussianRandMoments(t *testing.T) {

	src := rand.NewPCG(31, 8)
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	unif := distuv.Uniform{Min: 0, Max: 1, Src: src}

	n := 100000
	mu, lambda := 2.0, 3.0

	var s, s2 float64
	for i := 0; i < n; i++ {
		x := invGaussianRand(mu, lambda, norm, unif)
		if x <= 0 {
			t.Fatalf("draw %d is %v; inverse Gaussian draws must be positive", i, x)
		}
		s += x
		s2 += x * x
	}

	mean := s / float64(n)
	vr := s2/float64(n) - mean*mean

	if !scalarClose(mean, mu, 0.05) {
		t.Errorf("mean = %v, want about %v", mean, mu)
	}
	wantVar := mu * mu * mu / lambda
	if !scalarClose(vr, wantVar, 0.15) {
		t.Errorf("variance = %v, want about %v", vr, wantVar)
	}
}

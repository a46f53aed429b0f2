package bayesglm

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat/distuv"
)

// DispersionProfiler conducts a profile likelihood analysis of the
// dispersion parameter, holding the adjusted linear predictor fixed.
// It is a frequentist diagnostic companion to the sampler: the MLE and
// profile interval of the dispersion at a posterior summary of the
// predictor give a quick check on the sampled dispersion marginal.
type DispersionProfiler struct {
	engine *Engine

	eta []float64

	// The MLE of the dispersion and the log-likelihood value there.
	dispersionMLE float64
	maxLogLike    float64

	// A sequence of (dispersion, log-likelihood) points visited
	// during the searches.
	Profile [][2]float64
}

// NewDispersionProfiler profiles the dispersion of the engine's model at
// the given linear predictor, searching from the given starting value.
func NewDispersionProfiler(e *Engine, eta []float64, start float64) (*DispersionProfiler, error) {

	if math.IsNaN(start) || start <= 0 {
		return nil, domainErrorf("profiler starting dispersion must be positive, got %v", start)
	}
	if len(eta) != e.NumObs() {
		return nil, domainErrorf("linear predictor has length %d, outcome has length %d", len(eta), e.NumObs())
	}

	ec := make([]float64, len(eta))
	copy(ec, eta)

	dp := &DispersionProfiler{
		engine: e,
		eta:    ec,
	}

	if err := dp.getMLE(start); err != nil {
		return nil, err
	}

	return dp, nil
}

// LogLike returns the profile log-likelihood at the given dispersion.
// Dispersions outside the domain score -Inf.
func (dp *DispersionProfiler) LogLike(disp float64) float64 {

	ll, err := dp.engine.LogLike(dp.eta, disp)
	if err != nil {
		return math.Inf(-1)
	}
	return ll
}

// DispersionMLE returns the maximum likelihood estimate of the dispersion.
func (dp *DispersionProfiler) DispersionMLE() float64 {
	return dp.dispersionMLE
}

// MaxLogLike returns the log-likelihood at the dispersion MLE.
func (dp *DispersionProfiler) MaxLogLike() float64 {
	return dp.maxLogLike
}

// The search runs on the log scale so the positivity constraint never
// binds.
func (dp *DispersionProfiler) getMLE(start float64) error {

	p := optimize.Problem{
		Func: func(x []float64) float64 {
			return -dp.LogLike(math.Exp(x[0]))
		},
	}

	r, err := optimize.Minimize(p, []float64{math.Log(start)}, nil, &optimize.NelderMead{})
	if err != nil {
		return err
	}

	dp.dispersionMLE = math.Exp(r.X[0])
	dp.maxLogLike = -r.F
	dp.Profile = append(dp.Profile, [2]float64{dp.dispersionMLE, dp.maxLogLike})

	return nil
}

// ConfInt identifies dispersions d0, d1 that bound a profile likelihood
// confidence interval with the given coverage probability.  All points on
// the profile visited during the search are added to the Profile field.
func (dp *DispersionProfiler) ConfInt(prob float64) (float64, float64) {

	qp := distuv.ChiSquared{K: 1}.Quantile(prob) / 2
	cut := dp.maxLogLike - qp

	// Left side
	d0 := 0.9 * dp.dispersionMLE
	ll0 := dp.LogLike(d0)
	for ll0 > cut {
		d0 *= 0.9
		ll0 = dp.LogLike(d0)
		dp.Profile = append(dp.Profile, [2]float64{d0, ll0})
	}
	d0 = dp.bisectProfile(d0, dp.dispersionMLE, ll0, dp.maxLogLike, cut)

	// Right side
	d1 := 1.1 * dp.dispersionMLE
	ll1 := dp.LogLike(d1)
	for ll1 > cut {
		d1 *= 1.1
		ll1 = dp.LogLike(d1)
		dp.Profile = append(dp.Profile, [2]float64{d1, ll1})
	}
	d1 = dp.bisectProfile(dp.dispersionMLE, d1, dp.maxLogLike, ll1, cut)

	sort.Slice(dp.Profile, func(i, j int) bool {
		return dp.Profile[i][0] < dp.Profile[j][0]
	})

	return d0, d1
}

// bisectProfile locates the dispersion where the profile log-likelihood
// crosses yt, given a bracket [x0, x1] with values y0, y1 on opposite
// sides of yt.
func (dp *DispersionProfiler) bisectProfile(x0, x1, y0, y1, yt float64) float64 {

	if (y0-yt)*(y1-yt) > 0 {
		panic("bisectProfile: invalid bracket")
	}

	for x1-x0 > 1e-8*(1+x0) {
		x := (x0 + x1) / 2
		y := dp.LogLike(x)
		dp.Profile = append(dp.Profile, [2]float64{x, y})
		if (y-yt)*(y0-yt) > 0 {
			x0 = x
			y0 = y
		} else {
			x1 = x
		}
	}

	return (x0 + x1) / 2
}

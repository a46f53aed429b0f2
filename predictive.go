package bayesglm

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// PredictiveMean draws one simulated outcome per observation from the
// fitted family/link/dispersion combination and returns the arithmetic
// mean of the draws.  The linear predictor must already be link-adjusted
// (see AdjustPredictor), and the means come through the same inverse link
// as the likelihood path, so the simulation is drawn from exactly the
// distribution that was scored.  The random source is supplied by the
// caller; the engine owns no RNG state.
func (e *Engine) PredictiveMean(eta []float64, disp float64, src rand.Source) (float64, error) {

	if err := e.checkEval(eta, disp); err != nil {
		return 0, err
	}

	n := len(e.y)
	draws := make([]float64, n)

	switch e.cfg.fam.TypeCode {

	case GaussianFamily:
		if e.cfg.code == 2 {
			for i := range draws {
				d := distuv.LogNormal{Mu: eta[i], Sigma: disp, Src: src}
				draws[i] = d.Rand()
			}
		} else {
			mu := make([]float64, n)
			e.cfg.link.InvLink(eta, mu)
			for i := range draws {
				d := distuv.Normal{Mu: mu[i], Sigma: disp, Src: src}
				draws[i] = d.Rand()
			}
		}

	case GammaFamily:
		mu := make([]float64, n)
		e.cfg.link.InvLink(eta, mu)
		for i := range draws {
			d := distuv.Gamma{Alpha: disp, Beta: disp / mu[i], Src: src}
			draws[i] = d.Rand()
		}

	case InvGaussianFamily:
		mu := make([]float64, n)
		e.cfg.link.InvLink(eta, mu)
		norm := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
		unif := distuv.Uniform{Min: 0, Max: 1, Src: src}
		for i := range draws {
			draws[i] = invGaussianRand(mu[i], disp, norm, unif)
		}

	default:
		mu := make([]float64, n)
		e.cfg.link.InvLink(eta, mu)
		for i := range draws {
			d := distuv.Beta{Alpha: mu[i] * disp, Beta: (1 - mu[i]) * disp, Src: src}
			draws[i] = d.Rand()
		}
	}

	m := stat.Mean(draws, nil)
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return 0, numericErrorf("non-finite posterior predictive mean for the %s family", e.cfg.fam.Name)
	}

	return m, nil
}

// PredictiveMeanPrecision is the Beta-family predictive mean with an
// observation-varying precision.
func (e *Engine) PredictiveMeanPrecision(eta, phi []float64, src rand.Source) (float64, error) {

	if err := e.checkPrecision(eta, phi); err != nil {
		return 0, err
	}

	n := len(e.y)
	mu := make([]float64, n)
	e.cfg.link.InvLink(eta, mu)

	draws := make([]float64, n)
	for i := range draws {
		d := distuv.Beta{Alpha: mu[i] * phi[i], Beta: (1 - mu[i]) * phi[i], Src: src}
		draws[i] = d.Rand()
	}

	m := stat.Mean(draws, nil)
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return 0, numericErrorf("non-finite posterior predictive mean for the Beta family with modeled precision")
	}

	return m, nil
}

// invGaussianRand draws from the inverse Gaussian distribution with the
// given mean and shape using the Michael, Schucany and Haas transform:
// one squared standard normal locates a root of the quantile equation and
// one uniform picks between the two roots.
func invGaussianRand(mu, lambda float64, norm distuv.Normal, unif distuv.Uniform) float64 {

	z := norm.Rand()
	v := z * z

	x := mu + mu*mu*v/(2*lambda) - mu/(2*lambda)*math.Sqrt(4*mu*lambda*v+mu*mu*v*v)

	if unif.Rand() <= mu/(mu+x) {
		return x
	}
	return mu * mu / x
}

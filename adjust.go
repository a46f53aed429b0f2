package bayesglm

import "gonum.org/v1/gonum/floats"

// AdjustPredictor shifts the linear predictor in place so that, combined
// with the intercept, every element lies in the domain required by the
// configured link.  The returned value is the additive shift applied to
// the predictor, not counting the intercept.
//
// For the Gaussian family, for the log link, and for every Beta mean link
// except the log link (code 5) the domain is unconstrained and the
// intercept is added directly.  The Beta log link requires exp(eta) to
// stay inside the unit interval, so the predictor is bounded above by
// subtracting its maximum; the intercept then represents the value at the
// maximum.  Links with a nonnegative domain (identity and inverse links
// for Gamma and inverse Gaussian) subtract the minimum, so the intercept
// represents the value at the minimum and the shifted predictor is
// guaranteed nonnegative.
//
// The same routine serves both the model evaluation and the generated
// quantities paths, so the two can never drift apart.
func (c *Config) AdjustPredictor(eta []float64, intercept float64) float64 {

	var shift float64
	switch {
	case c.fam.TypeCode == GaussianFamily,
		c.fam.TypeCode == BetaFamily && c.code != 5,
		c.fam.TypeCode != BetaFamily && c.code == 2:
		shift = 0
	case c.fam.TypeCode == BetaFamily:
		shift = -floats.Max(eta)
	default:
		shift = -floats.Min(eta)
	}

	floats.AddConst(shift+intercept, eta)

	return shift
}

// ReportedIntercept back-transforms a sampled intercept onto the original
// (uncentered) covariate scale for reporting: the sampler works with
// centered covariates, so the user-facing intercept is the sampled value
// minus the dot product of the covariate means and the coefficients.
func ReportedIntercept(intercept float64, xbar, coeff []float64) float64 {
	return intercept - floats.Dot(xbar, coeff)
}

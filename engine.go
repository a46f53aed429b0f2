package bayesglm

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Config is the immutable family/link configuration of a model.  It is
// fixed when the model is defined and shared read-only by every
// evaluation, so independent sampler chains can use it concurrently.
type Config struct {
	fam  *Family
	link *Link
	code int
}

// NewConfig validates the family and link codes and returns the
// configuration.  The link code must lie within the family's link table.
func NewConfig(family FamilyType, link int) (*Config, error) {

	fam, err := NewFamily(family)
	if err != nil {
		return nil, err
	}

	lnk, err := MeanLink(family, link)
	if err != nil {
		return nil, err
	}

	return &Config{fam: fam, link: lnk, code: link}, nil
}

// Family returns the configured family.
func (c *Config) Family() *Family { return c.fam }

// Link returns the configured mean link.
func (c *Config) Link() *Link { return c.link }

// LinkCode returns the family-scoped numeric code of the mean link.
func (c *Config) LinkCode() int { return c.code }

// Engine evaluates the log-likelihood of one outcome vector under a fixed
// family/link configuration.  The outcome, the optional weights and the
// sufficient statistics are validated and computed once at construction
// and are read-only afterwards; the evaluation methods hold no mutable
// state between calls.
type Engine struct {
	cfg *Config

	y   []float64
	wgt []float64

	// Sufficient statistics precomputed from y, reused across every
	// evaluation.
	sumLogY float64
	logY    []float64
	sqrtY   []float64
}

// NewEngine validates the outcome and weights against the configured
// family and precomputes the sufficient statistics.  The weights may be
// nil, which is equivalent to all weights being one but selects a cheaper
// aggregate code path during evaluation.
func NewEngine(cfg *Config, y, weights []float64) (*Engine, error) {

	if weights != nil && len(weights) != len(y) {
		return nil, domainErrorf("weight vector has length %d, outcome has length %d", len(weights), len(y))
	}
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, domainErrorf("weight %d is %v; weights must be finite and nonnegative", i, w)
		}
	}

	if err := checkOutcome(cfg, y); err != nil {
		return nil, err
	}

	e := &Engine{cfg: cfg, y: y, wgt: weights}

	switch cfg.fam.TypeCode {
	case GaussianFamily:
		if cfg.code == 2 {
			e.setLogStats()
		}
	case GammaFamily:
		e.setLogStats()
	case InvGaussianFamily:
		e.setLogStats()
		e.sqrtY = make([]float64, len(y))
		for i, v := range y {
			e.sqrtY[i] = math.Sqrt(v)
		}
	}

	return e, nil
}

func (e *Engine) setLogStats() {
	e.logY = make([]float64, len(e.y))
	for i, v := range e.y {
		e.logY[i] = math.Log(v)
	}
	e.sumLogY = floats.Sum(e.logY)
}

// checkOutcome confirms that every outcome value lies in the support of
// the configured family: positive for Gamma and inverse Gaussian (and for
// Gaussian under the log link, where the outcome is log-normal), and in
// the open unit interval for Beta.
func checkOutcome(cfg *Config, y []float64) error {

	for i, v := range y {

		if math.IsNaN(v) || math.IsInf(v, 0) {
			return domainErrorf("outcome %d is %v", i, v)
		}

		switch cfg.fam.TypeCode {
		case GaussianFamily:
			if cfg.code == 2 && v <= 0 {
				return domainErrorf("outcome %d is %v; the Gaussian family with log link requires positive outcomes", i, v)
			}
		case GammaFamily, InvGaussianFamily:
			if v <= 0 {
				return domainErrorf("outcome %d is %v; the %s family requires positive outcomes", i, v, cfg.fam.Name)
			}
		case BetaFamily:
			if v <= 0 || v >= 1 {
				return domainErrorf("outcome %d is %v; the Beta family requires outcomes in (0,1)", i, v)
			}
		}
	}

	return nil
}

// NumObs returns the number of observations.
func (e *Engine) NumObs() int { return len(e.y) }

// Config returns the engine's family/link configuration.
func (e *Engine) Config() *Config { return e.cfg }

func (e *Engine) checkEval(eta []float64, disp float64) error {

	if len(eta) != len(e.y) {
		return domainErrorf("linear predictor has length %d, outcome has length %d", len(eta), len(e.y))
	}
	if math.IsNaN(disp) || disp <= 0 {
		return domainErrorf("dispersion must be positive, got %v", disp)
	}
	return nil
}

// LogLike returns the total log-likelihood of the outcome given the
// linear predictor and the dispersion (residual SD for Gaussian, shape
// for Gamma, lambda for inverse Gaussian, precision for Beta).  With nil
// weights the closed-form aggregate path is used; otherwise the pointwise
// vector is computed and dotted with the weights.  A non-finite total is
// reported as a NumericError.
func (e *Engine) LogLike(eta []float64, disp float64) (float64, error) {

	if err := e.checkEval(eta, disp); err != nil {
		return 0, err
	}

	var ll float64
	if e.wgt == nil {
		ll = e.aggregate(eta, disp)
	} else {
		pw := make([]float64, len(e.y))
		e.pointwise(eta, disp, pw)
		ll = floats.Dot(e.wgt, pw)
	}

	if math.IsNaN(ll) || math.IsInf(ll, 0) {
		return 0, numericErrorf("non-finite log-likelihood (%v) for the %s family", ll, e.cfg.fam.Name)
	}

	return ll, nil
}

// Pointwise returns the per-observation log-likelihood vector, for
// weighted aggregation or per-observation diagnostics.
func (e *Engine) Pointwise(eta []float64, disp float64) ([]float64, error) {

	if err := e.checkEval(eta, disp); err != nil {
		return nil, err
	}

	dst := make([]float64, len(e.y))
	e.pointwise(eta, disp, dst)

	return dst, nil
}

func (e *Engine) aggregate(eta []float64, disp float64) float64 {

	switch e.cfg.fam.TypeCode {
	case GaussianFamily:
		return gaussianLogLike(e.y, eta, e.cfg.code, e.cfg.link, disp, e.logY, e.sumLogY)
	case GammaFamily:
		return gammaLogLike(e.y, eta, e.cfg.code, disp, e.sumLogY)
	case InvGaussianFamily:
		mu := make([]float64, len(e.y))
		e.cfg.link.InvLink(eta, mu)
		return invGaussLogLike(e.y, mu, disp, e.sumLogY, e.sqrtY)
	default:
		mu := make([]float64, len(e.y))
		e.cfg.link.InvLink(eta, mu)
		pw := make([]float64, len(e.y))
		betaPointwise(e.y, mu, disp, pw)
		return floats.Sum(pw)
	}
}

func (e *Engine) pointwise(eta []float64, disp float64, dst []float64) {

	switch e.cfg.fam.TypeCode {
	case GaussianFamily:
		gaussianPointwise(e.y, eta, e.cfg.code, e.cfg.link, disp, dst)
	case GammaFamily:
		gammaPointwise(e.y, eta, e.cfg.link, disp, dst)
	case InvGaussianFamily:
		mu := make([]float64, len(e.y))
		e.cfg.link.InvLink(eta, mu)
		invGaussPointwise(e.y, mu, disp, e.logY, e.sqrtY, dst)
	default:
		mu := make([]float64, len(e.y))
		e.cfg.link.InvLink(eta, mu)
		betaPointwise(e.y, mu, disp, dst)
	}
}

func (e *Engine) checkPrecision(eta, phi []float64) error {

	if e.cfg.fam.TypeCode != BetaFamily {
		return configErrorf("modeled precision applies only to the Beta family, not %s", e.cfg.fam.Name)
	}
	if len(eta) != len(e.y) {
		return domainErrorf("linear predictor has length %d, outcome has length %d", len(eta), len(e.y))
	}
	if len(phi) != len(e.y) {
		return domainErrorf("precision vector has length %d, outcome has length %d", len(phi), len(e.y))
	}
	for i, p := range phi {
		if math.IsNaN(p) || p <= 0 {
			return domainErrorf("precision %d must be positive, got %v", i, p)
		}
	}
	return nil
}

// LogLikePrecision is the Beta-family log-likelihood with an
// observation-varying precision, as produced by a PrecisionModel.
func (e *Engine) LogLikePrecision(eta, phi []float64) (float64, error) {

	if err := e.checkPrecision(eta, phi); err != nil {
		return 0, err
	}

	mu := make([]float64, len(e.y))
	e.cfg.link.InvLink(eta, mu)

	pw := make([]float64, len(e.y))
	betaPointwisePhi(e.y, mu, phi, pw)

	var ll float64
	if e.wgt == nil {
		ll = floats.Sum(pw)
	} else {
		ll = floats.Dot(e.wgt, pw)
	}

	if math.IsNaN(ll) || math.IsInf(ll, 0) {
		return 0, numericErrorf("non-finite log-likelihood (%v) for the Beta family with modeled precision", ll)
	}

	return ll, nil
}

// PointwisePrecision returns the per-observation Beta log-likelihood
// vector with an observation-varying precision.
func (e *Engine) PointwisePrecision(eta, phi []float64) ([]float64, error) {

	if err := e.checkPrecision(eta, phi); err != nil {
		return nil, err
	}

	mu := make([]float64, len(e.y))
	e.cfg.link.InvLink(eta, mu)

	dst := make([]float64, len(e.y))
	betaPointwisePhi(e.y, mu, phi, dst)

	return dst, nil
}

// one sets all elements of the slice to 1
func one(x []float64) {
	for i := range x {
		x[i] = 1
	}
}

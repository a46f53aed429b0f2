package bayesglm

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// PrecisionModel is the Beta family's optional dispersion sub-model: a
// secondary design matrix, coefficient vector and link that together
// produce one precision parameter per observation.
type PrecisionModel struct {
	z    mat.Matrix
	zbar []float64

	link *Link
	code int

	hasIntercept bool

	n, q int
}

// NewPrecisionModel returns a precision sub-model over n observations.
// z is the n x q secondary design; it may be nil when the sub-model has
// no covariates, in which case an intercept is required.  zbar holds the
// column means of the uncentered secondary design; if nil it is computed
// from z.  link is a precision link code (1 log, 2 identity, 3 sqrt).
func NewPrecisionModel(n int, z mat.Matrix, zbar []float64, link int, hasIntercept bool) (*PrecisionModel, error) {

	lnk, err := PrecisionLink(link)
	if err != nil {
		return nil, err
	}

	var q int
	if z != nil {
		var zn int
		zn, q = z.Dims()
		if zn != n {
			return nil, domainErrorf("secondary design has %d rows, expected %d", zn, n)
		}
	}

	if q == 0 && !hasIntercept {
		return nil, configErrorf("precision sub-model needs covariates or an intercept")
	}

	if zbar == nil && q > 0 {
		zbar = make([]float64, q)
		col := make([]float64, n)
		for j := 0; j < q; j++ {
			mat.Col(col, j, z)
			zbar[j] = floats.Sum(col) / float64(n)
		}
	}
	if len(zbar) != q {
		return nil, domainErrorf("secondary covariate means have length %d, design has %d columns", len(zbar), q)
	}

	return &PrecisionModel{
		z:            z,
		zbar:         zbar,
		link:         lnk,
		code:         link,
		hasIntercept: hasIntercept,
		n:            n,
		q:            q,
	}, nil
}

// Precision maps the secondary coefficients and intercept to a vector of
// per-observation precisions.  The intercept/shift policy mirrors
// AdjustPredictor under the precision link table: the log link has an
// unconstrained domain and adds the intercept directly, while the
// identity and sqrt links subtract the minimum of the secondary predictor
// first.  Without an intercept the predictor is anchored at the mean
// covariate profile instead, by adding dot(zbar, omega).  A non-positive
// resulting precision is a domain error, not clamped.
func (pm *PrecisionModel) Precision(omega []float64, intercept float64) ([]float64, error) {

	if len(omega) != pm.q {
		return nil, domainErrorf("secondary coefficient vector has length %d, design has %d columns", len(omega), pm.q)
	}

	etaZ := make([]float64, pm.n)
	if pm.q > 0 {
		ev := mat.NewVecDense(pm.n, etaZ)
		ev.MulVec(pm.z, mat.NewVecDense(pm.q, omega))
	}

	if pm.hasIntercept {
		if pm.code > 1 {
			floats.AddConst(intercept-floats.Min(etaZ), etaZ)
		} else {
			floats.AddConst(intercept, etaZ)
		}
	} else {
		floats.AddConst(floats.Dot(pm.zbar, omega), etaZ)
	}

	phi := make([]float64, pm.n)
	pm.link.InvLink(etaZ, phi)

	for i, p := range phi {
		if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
			return nil, domainErrorf("precision %d is %v after the %s link; precisions must be positive", i, p, pm.link.Name)
		}
	}

	return phi, nil
}

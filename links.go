package bayesglm

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// VecFunc applies a transform elementwise, reading from its first argument
// and writing to its second.  The two slices must have equal length.
type VecFunc func([]float64, []float64)

// Link holds the transforms associated with one link function.  Link maps
// the mean scale to the linear predictor scale, InvLink is its inverse
// (mapping a linear predictor to the mean), and Deriv is the derivative of
// the link function with respect to the mean.
type Link struct {
	Name string

	Link VecFunc

	InvLink VecFunc

	Deriv VecFunc
}

// Link codes are family-scoped and 1-based: code k refers to the k'th
// entry of the family's link table.  Each family has its own table, so the
// same code can name different links under different families.
var (
	gaussianLinks    = []*Link{&identityLink, &logLink, &recipLink}
	gammaLinks       = []*Link{&identityLink, &logLink, &recipLink}
	invGaussianLinks = []*Link{&identityLink, &logLink, &recipLink, &recipSquaredLink}
	betaLinks        = []*Link{&logitLink, &probitLink, &cloglogLink, &cauchitLink, &logLink, &loglogLink}
	precisionLinks   = []*Link{&logLink, &identityLink, &sqrtLink}
)

// MeanLink returns the mean link function with the given family-scoped
// code.  The code must lie in 1..n where n is the size of the family's
// link table; anything else is a configuration error.
func MeanLink(fam FamilyType, code int) (*Link, error) {

	f, err := NewFamily(fam)
	if err != nil {
		return nil, err
	}
	table := f.links

	if code < 1 || code > len(table) {
		return nil, configErrorf("link code %d is out of range for the %s family (valid codes are 1..%d)",
			code, famName(fam), len(table))
	}

	return table[code-1], nil
}

// PrecisionLink returns the link function with the given code for the
// Beta precision sub-model.  Valid codes are 1 (log), 2 (identity) and
// 3 (sqrt).
func PrecisionLink(code int) (*Link, error) {

	if code < 1 || code > len(precisionLinks) {
		return nil, configErrorf("precision link code %d is out of range (valid codes are 1..%d)",
			code, len(precisionLinks))
	}

	return precisionLinks[code-1], nil
}

var identityLink = Link{
	Name:    "Identity",
	Link:    idFunc,
	InvLink: idFunc,
	Deriv:   oneFunc,
}

var logLink = Link{
	Name:    "Log",
	Link:    logFunc,
	InvLink: expFunc,
	Deriv:   recipFunc,
}

var recipLink = Link{
	Name:    "Recip",
	Link:    genPowFunc(-1, 1),
	InvLink: genPowFunc(-1, 1),
	Deriv:   genPowFunc(-2, -1),
}

var recipSquaredLink = Link{
	Name:    "RecipSquared",
	Link:    genPowFunc(-2, 1),
	InvLink: genPowFunc(-0.5, 1),
	Deriv:   genPowFunc(-3, -2),
}

var logitLink = Link{
	Name:    "Logit",
	Link:    logitFunc,
	InvLink: expitFunc,
	Deriv:   logitDerivFunc,
}

var probitLink = Link{
	Name:    "Probit",
	Link:    probitFunc,
	InvLink: probitInvFunc,
	Deriv:   probitDerivFunc,
}

var cloglogLink = Link{
	Name:    "CLogLog",
	Link:    cloglogFunc,
	InvLink: cloglogInvFunc,
	Deriv:   cloglogDerivFunc,
}

var cauchitLink = Link{
	Name:    "Cauchit",
	Link:    cauchitFunc,
	InvLink: cauchitInvFunc,
	Deriv:   cauchitDerivFunc,
}

var loglogLink = Link{
	Name:    "LogLog",
	Link:    loglogFunc,
	InvLink: loglogInvFunc,
	Deriv:   loglogDerivFunc,
}

var sqrtLink = Link{
	Name:    "Sqrt",
	Link:    sqrtFunc,
	InvLink: squareFunc,
	Deriv:   sqrtDerivFunc,
}

func idFunc(x, y []float64) {
	copy(y, x)
}

func oneFunc(x, y []float64) {
	one(y)
}

func logFunc(x, y []float64) {
	for i := range x {
		y[i] = math.Log(x[i])
	}
}

func expFunc(x, y []float64) {
	for i := range x {
		y[i] = math.Exp(x[i])
	}
}

func recipFunc(x, y []float64) {
	for i := range x {
		y[i] = 1 / x[i]
	}
}

func logitFunc(x, y []float64) {
	for i := range x {
		y[i] = math.Log(x[i] / (1 - x[i]))
	}
}

func expitFunc(x, y []float64) {
	for i := range x {
		y[i] = 1 / (1 + math.Exp(-x[i]))
	}
}

func logitDerivFunc(x, y []float64) {
	for i := range x {
		y[i] = 1 / (x[i] * (1 - x[i]))
	}
}

// The probit transforms are not expressible as a single vector operation;
// each element goes through the standard normal CDF or quantile.
func probitFunc(x, y []float64) {
	for i := range x {
		y[i] = distuv.UnitNormal.Quantile(x[i])
	}
}

func probitInvFunc(x, y []float64) {
	for i := range x {
		y[i] = distuv.UnitNormal.CDF(x[i])
	}
}

func probitDerivFunc(x, y []float64) {
	for i := range x {
		y[i] = 1 / distuv.UnitNormal.Prob(distuv.UnitNormal.Quantile(x[i]))
	}
}

func cloglogFunc(x, y []float64) {
	for i, v := range x {
		y[i] = math.Log(-math.Log(1 - v))
	}
}

func cloglogInvFunc(x, y []float64) {
	for i, v := range x {
		y[i] = 1 - math.Exp(-math.Exp(v))
	}
}

func cloglogDerivFunc(x, y []float64) {
	for i, v := range x {
		y[i] = -1 / ((1 - v) * math.Log(1-v))
	}
}

func cauchitFunc(x, y []float64) {
	for i, v := range x {
		y[i] = math.Tan(math.Pi * (v - 0.5))
	}
}

func cauchitInvFunc(x, y []float64) {
	for i, v := range x {
		y[i] = 0.5 + math.Atan(v)/math.Pi
	}
}

func cauchitDerivFunc(x, y []float64) {
	for i, v := range x {
		t := math.Tan(math.Pi * (v - 0.5))
		y[i] = math.Pi * (1 + t*t)
	}
}

// The loglog link maps a mean in (0,1) to an unbounded predictor through
// the Gumbel CDF, mu = exp(-exp(-eta)).
func loglogFunc(x, y []float64) {
	for i, v := range x {
		y[i] = -math.Log(-math.Log(v))
	}
}

func loglogInvFunc(x, y []float64) {
	for i, v := range x {
		y[i] = math.Exp(-math.Exp(-v))
	}
}

func loglogDerivFunc(x, y []float64) {
	for i, v := range x {
		y[i] = -1 / (v * math.Log(v))
	}
}

func sqrtFunc(x, y []float64) {
	for i, v := range x {
		y[i] = math.Sqrt(v)
	}
}

func squareFunc(x, y []float64) {
	for i, v := range x {
		y[i] = v * v
	}
}

func sqrtDerivFunc(x, y []float64) {
	for i, v := range x {
		y[i] = 1 / (2 * math.Sqrt(v))
	}
}

func genPowFunc(p, s float64) VecFunc {
	return func(x, y []float64) {
		for i := range x {
			y[i] = s * math.Pow(x[i], p)
		}
	}
}

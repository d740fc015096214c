package sss

import (
	"io"
	"math/big"
)

// polynomial represents a polynomial over a prime field.
// coefficients[0] is the constant term (the secret chunk).
type polynomial struct {
	f            *field
	coefficients []*big.Int
}

// newRandomPolynomial creates a random polynomial of degree (threshold-1)
// with the given chunk value as the constant term. The higher coefficients
// are drawn from r and rejected until nonzero, so exactly threshold points
// determine the curve.
func newRandomPolynomial(f *field, chunk *big.Int, threshold int, r io.Reader) (*polynomial, error) {
	coefficients := make([]*big.Int, threshold)
	coefficients[0] = new(big.Int).Set(chunk)

	for i := 1; i < threshold; i++ {
		coef, err := f.randomElement(r)
		if err != nil {
			return nil, err
		}
		coefficients[i] = coef
	}

	return &polynomial{f: f, coefficients: coefficients}, nil
}

// evaluate evaluates the polynomial at point x using Horner's method:
// ((a_n*x + a_{n-1})*x + ... + a_1)*x + a_0, all arithmetic mod prime.
func (p *polynomial) evaluate(x *big.Int) *big.Int {
	if len(p.coefficients) == 0 {
		return big.NewInt(0)
	}

	result := new(big.Int).Set(p.coefficients[len(p.coefficients)-1])

	for i := len(p.coefficients) - 2; i >= 0; i-- {
		result = p.f.mul(result, x)
		result = p.f.add(result, p.coefficients[i])
	}

	return result
}

// reverseCoefficients computes the Lagrange basis weights for interpolation
// at x=0: weight_i = Π_{j≠i} (-x_j) · (x_i - x_j)⁻¹ mod prime. Over a prime
// field a weight is zero iff two x values coincide, so a zero weight is
// reported as a duplicate share.
func reverseCoefficients(f *field, xs []*big.Int) ([]*big.Int, error) {
	weights := make([]*big.Int, len(xs))

	for i := range xs {
		weight := big.NewInt(1)

		for j := range xs {
			if i == j {
				continue
			}

			weight = f.mul(weight, f.neg(xs[j]))
			weight = f.mul(weight, f.inverse(f.sub(xs[i], xs[j])))
		}

		if weight.Sign() == 0 {
			return nil, ErrDuplicateShare
		}

		weights[i] = weight
	}

	return weights, nil
}

// interpolate reconstructs the polynomial's value at x=0 as Σ y_i·weight_i.
func interpolate(f *field, weights, ys []*big.Int) *big.Int {
	result := new(big.Int)

	for i, weight := range weights {
		result = f.add(result, f.mul(ys[i], weight))
	}

	return result
}

// lagrangeEvaluate interpolates the polynomial defined by (xs, ys) at an
// arbitrary point x. The xs must be distinct; callers check that first.
// Used to verify that extra shares lie on the same curve.
func lagrangeEvaluate(f *field, xs, ys []*big.Int, x *big.Int) *big.Int {
	result := new(big.Int)

	for i := range xs {
		basis := big.NewInt(1)

		for j := range xs {
			if i == j {
				continue
			}

			basis = f.mul(basis, f.sub(x, xs[j]))
			basis = f.mul(basis, f.inverse(f.sub(xs[i], xs[j])))
		}

		result = f.add(result, f.mul(ys[i], basis))
	}

	return result
}

// Package poly implements dense univariate polynomials over the BN254 scalar field.
package poly

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Poly is a polynomial in coefficient form.
// Coeffs[i] is the coefficient of X^i.
type Poly struct {
	Coeffs []fr.Element
}

// NewPoly creates a new Poly with n zero coefficients.
func NewPoly(n int) Poly {
	return Poly{
		Coeffs: make([]fr.Element, n),
	}
}

// Copy creates a copy of p.
func (p Poly) Copy() Poly {
	coeffs := make([]fr.Element, len(p.Coeffs))
	copy(coeffs, p.Coeffs)
	return Poly{Coeffs: coeffs}
}

// Degree returns the degree of p, ignoring leading zero coefficients.
// The zero polynomial has degree 0.
func (p Poly) Degree() int {
	for i := len(p.Coeffs) - 1; i > 0; i-- {
		if !p.Coeffs[i].IsZero() {
			return i
		}
	}
	return 0
}

// IsZero returns whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	for i := range p.Coeffs {
		if !p.Coeffs[i].IsZero() {
			return false
		}
	}
	return true
}

// Evaluate evaluates p at x using Horner's method.
func (p Poly) Evaluate(x fr.Element) fr.Element {
	var out fr.Element
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		out.Mul(&out, &x)
		out.Add(&out, &p.Coeffs[i])
	}
	return out
}

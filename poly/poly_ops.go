package poly

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"

	"github.com/sp301415/plonk-piop/num"
)

// Add returns p0 + p1.
func Add(p0, p1 Poly) Poly {
	pOut := NewPoly(max(len(p0.Coeffs), len(p1.Coeffs)))
	copy(pOut.Coeffs, p0.Coeffs)
	for i := range p1.Coeffs {
		pOut.Coeffs[i].Add(&pOut.Coeffs[i], &p1.Coeffs[i])
	}
	return pOut
}

// Sub returns p0 - p1.
func Sub(p0, p1 Poly) Poly {
	pOut := NewPoly(max(len(p0.Coeffs), len(p1.Coeffs)))
	copy(pOut.Coeffs, p0.Coeffs)
	for i := range p1.Coeffs {
		pOut.Coeffs[i].Sub(&pOut.Coeffs[i], &p1.Coeffs[i])
	}
	return pOut
}

// ScalarMul returns p * c.
func ScalarMul(p Poly, c fr.Element) Poly {
	pOut := NewPoly(len(p.Coeffs))
	for i := range p.Coeffs {
		pOut.Coeffs[i].Mul(&p.Coeffs[i], &c)
	}
	return pOut
}

// Mul returns p0 * p1, computed over an FFT domain
// large enough to hold the product.
func Mul(p0, p1 Poly) Poly {
	if len(p0.Coeffs) == 0 || len(p1.Coeffs) == 0 {
		return NewPoly(0)
	}

	prodLen := len(p0.Coeffs) + len(p1.Coeffs) - 1
	domain := fft.NewDomain(uint64(num.NextPowerOfTwo(prodLen)))

	buf0 := make([]fr.Element, domain.Cardinality)
	buf1 := make([]fr.Element, domain.Cardinality)
	copy(buf0, p0.Coeffs)
	copy(buf1, p1.Coeffs)

	domain.FFT(buf0, fft.DIF)
	domain.FFT(buf1, fft.DIF)
	for i := range buf0 {
		buf0[i].Mul(&buf0[i], &buf1[i])
	}
	domain.FFTInverse(buf0, fft.DIT)

	return Poly{Coeffs: buf0[:prodLen]}
}

// Shift returns the polynomial p(wX).
func Shift(p Poly, w fr.Element) Poly {
	pOut := NewPoly(len(p.Coeffs))
	pow := fr.One()
	for i := range p.Coeffs {
		pOut.Coeffs[i].Mul(&p.Coeffs[i], &pow)
		pow.Mul(&pow, &w)
	}
	return pOut
}

// FromRoots returns the monic polynomial with the given roots.
// An empty root set yields the constant polynomial 1.
func FromRoots(roots []fr.Element) Poly {
	pOut := NewPoly(len(roots) + 1)
	pOut.Coeffs[0].SetOne()

	var t fr.Element
	for i, root := range roots {
		pOut.Coeffs[i+1].Set(&pOut.Coeffs[i])
		for j := i; j >= 1; j-- {
			t.Mul(&pOut.Coeffs[j], &root)
			pOut.Coeffs[j].Sub(&pOut.Coeffs[j-1], &t)
		}
		t.Mul(&pOut.Coeffs[0], &root)
		pOut.Coeffs[0].Neg(&t)
	}
	return pOut
}

// QuoRem returns the quotient and remainder of p divided by d.
// Panics if d is the zero polynomial.
func QuoRem(p, d Poly) (Poly, Poly) {
	if len(d.Coeffs) == 0 {
		panic("division by zero polynomial")
	}
	dDeg := d.Degree()
	if d.Coeffs[dDeg].IsZero() {
		panic("division by zero polynomial")
	}

	rem := p.Copy()
	pDeg := rem.Degree()
	if pDeg < dDeg {
		return NewPoly(1), rem
	}

	var leadInv fr.Element
	leadInv.Inverse(&d.Coeffs[dDeg])

	quo := NewPoly(pDeg - dDeg + 1)
	var c, t fr.Element
	for i := pDeg; i >= dDeg; i-- {
		c.Mul(&rem.Coeffs[i], &leadInv)
		quo.Coeffs[i-dDeg].Set(&c)
		for j := 0; j <= dDeg; j++ {
			t.Mul(&c, &d.Coeffs[j])
			rem.Coeffs[i-dDeg+j].Sub(&rem.Coeffs[i-dDeg+j], &t)
		}
	}

	return quo, Poly{Coeffs: rem.Coeffs[:dDeg+1]}
}

// QuoRemByVanishing returns the quotient and remainder of p
// divided by the vanishing polynomial X^n - 1.
func QuoRemByVanishing(p Poly, n int) (Poly, Poly) {
	if len(p.Coeffs) <= n {
		return NewPoly(1), p.Copy()
	}

	coeffs := make([]fr.Element, len(p.Coeffs))
	copy(coeffs, p.Coeffs)

	quo := NewPoly(len(coeffs) - n)
	for i := len(coeffs) - 1; i >= n; i-- {
		quo.Coeffs[i-n].Set(&coeffs[i])
		coeffs[i-n].Add(&coeffs[i-n], &coeffs[i])
	}

	return quo, Poly{Coeffs: coeffs[:n]}
}

package poly_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"

	"github.com/sp301415/plonk-piop/poly"
)

func randomPoly(n int) poly.Poly {
	p := poly.NewPoly(n)
	for i := range p.Coeffs {
		p.Coeffs[i].SetRandom()
	}
	return p
}

func TestPoly(t *testing.T) {
	t.Run("Mul", func(t *testing.T) {
		p0 := randomPoly(5)
		p1 := randomPoly(7)

		got := poly.Mul(p0, p1)

		want := poly.NewPoly(11)
		var u fr.Element
		for i := range p0.Coeffs {
			for j := range p1.Coeffs {
				u.Mul(&p0.Coeffs[i], &p1.Coeffs[j])
				want.Coeffs[i+j].Add(&want.Coeffs[i+j], &u)
			}
		}

		assert.Equal(t, want.Coeffs, got.Coeffs)
	})

	t.Run("FromRoots", func(t *testing.T) {
		roots := make([]fr.Element, 6)
		for i := range roots {
			roots[i].SetRandom()
		}

		p := poly.FromRoots(roots)

		assert.Equal(t, 6, p.Degree())
		assert.True(t, p.Coeffs[6].IsOne())
		for i := range roots {
			v := p.Evaluate(roots[i])
			assert.True(t, v.IsZero())
		}

		one := poly.FromRoots(nil)
		assert.Equal(t, 0, one.Degree())
		assert.True(t, one.Coeffs[0].IsOne())
	})

	t.Run("Shift", func(t *testing.T) {
		p := randomPoly(8)

		var w, x, wx fr.Element
		w.SetRandom()
		x.SetRandom()
		wx.Mul(&w, &x)

		got := poly.Shift(p, w).Evaluate(x)
		want := p.Evaluate(wx)
		assert.True(t, got.Equal(&want))
	})

	t.Run("QuoRem", func(t *testing.T) {
		p := randomPoly(10)
		d := randomPoly(4)

		quo, rem := poly.QuoRem(p, d)
		assert.Less(t, rem.Degree(), d.Degree())

		var x fr.Element
		x.SetRandom()

		qx := quo.Evaluate(x)
		dx := d.Evaluate(x)
		rx := rem.Evaluate(x)

		var got fr.Element
		got.Mul(&qx, &dx)
		got.Add(&got, &rx)

		want := p.Evaluate(x)
		assert.True(t, got.Equal(&want))
	})

	t.Run("QuoRemByVanishing", func(t *testing.T) {
		p := randomPoly(20)

		quo, rem := poly.QuoRemByVanishing(p, 8)
		assert.Equal(t, 8, len(rem.Coeffs))

		var x, vx fr.Element
		x.SetRandom()

		// x^8 - 1
		var one fr.Element
		one.SetOne()
		vx.Exp(x, big.NewInt(8))
		vx.Sub(&vx, &one)

		qx := quo.Evaluate(x)
		rx := rem.Evaluate(x)

		var got fr.Element
		got.Mul(&qx, &vx)
		got.Add(&got, &rx)

		want := p.Evaluate(x)
		assert.True(t, got.Equal(&want))
	})
}

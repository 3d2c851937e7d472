package pcs_test

import (
	"crypto/rand"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sp301415/plonk-piop/pcs"
	"github.com/sp301415/plonk-piop/poly"
)

func TestPCS(t *testing.T) {
	srs, err := pcs.Setup(15, rand.Reader)
	require.NoError(t, err)

	prover := pcs.NewProver(srs)
	verifier := pcs.NewVerifier(srs)

	p := poly.NewPoly(16)
	for i := range p.Coeffs {
		p.Coeffs[i].SetRandom()
	}

	com, err := prover.Commit(p)
	require.NoError(t, err)

	var x fr.Element
	x.SetRandom()

	pf, err := prover.Open(p, x)
	require.NoError(t, err)

	want := p.Evaluate(x)
	assert.True(t, pf.ClaimedValue.Equal(&want))
	assert.True(t, verifier.Verify(com, pf, x))

	var y fr.Element
	y.SetRandom()
	assert.False(t, verifier.Verify(com, pf, y))
}

func TestSetupDegreeTooSmall(t *testing.T) {
	_, err := pcs.Setup(0, rand.Reader)
	assert.Error(t, err)
}

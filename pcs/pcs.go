// Package pcs implements a polynomial commitment scheme over BN254,
// backed by the KZG scheme of gnark-crypto.
package pcs

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/kzg"

	"github.com/sp301415/plonk-piop/poly"
)

// Commitment is a commitment to a polynomial.
type Commitment = kzg.Digest

// OpeningProof is a proof that a committed polynomial
// evaluates to a claimed value at a point.
type OpeningProof = kzg.OpeningProof

// Setup generates a structured reference string supporting
// commitments to polynomials of degree up to maxDegree.
// The toxic waste is sampled from rng and discarded.
func Setup(maxDegree int, rng io.Reader) (*kzg.SRS, error) {
	if maxDegree < 1 {
		return nil, fmt.Errorf("maxDegree must be at least 1")
	}

	tau, err := rand.Int(rng, fr.Modulus())
	if err != nil {
		return nil, err
	}

	return kzg.NewSRS(uint64(maxDegree+1), tau)
}

// Prover commits to polynomials and opens commitments.
type Prover struct {
	pk kzg.ProvingKey
}

// NewProver creates a new Prover from a structured reference string.
func NewProver(srs *kzg.SRS) *Prover {
	return &Prover{pk: srs.Pk}
}

// Commit commits to p.
func (prv *Prover) Commit(p poly.Poly) (Commitment, error) {
	return kzg.Commit(p.Coeffs, prv.pk)
}

// Open opens a commitment to p at x.
func (prv *Prover) Open(p poly.Poly, x fr.Element) (OpeningProof, error) {
	return kzg.Open(p.Coeffs, x, prv.pk)
}

// Verifier verifies opening proofs.
type Verifier struct {
	vk kzg.VerifyingKey
}

// NewVerifier creates a new Verifier from a structured reference string.
func NewVerifier(srs *kzg.SRS) *Verifier {
	return &Verifier{vk: srs.Vk}
}

// Verify verifies that the polynomial committed in com
// evaluates to pf.ClaimedValue at x.
func (vrf *Verifier) Verify(com Commitment, pf OpeningProof, x fr.Element) bool {
	return kzg.Verify(&com, &pf, x, vrf.vk) == nil
}

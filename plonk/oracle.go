package plonk

import (
	"crypto/sha256"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	fiatshamir "github.com/consensys/gnark-crypto/fiat-shamir"

	"github.com/sp301415/plonk-piop/pcs"
)

const (
	challengeBeta  = "beta"
	challengeGamma = "gamma"
	challengeAlpha = "alpha"
	challengeZeta  = "zeta"
)

var challengeIDs = []string{challengeBeta, challengeGamma, challengeAlpha, challengeZeta}

// Oracle is a Fiat-Shamir random oracle over the proof transcript.
// Prover and verifier must write and sample in the same order.
type Oracle struct {
	transcript *fiatshamir.Transcript
	next       int
}

// NewOracle creates a new Oracle.
func NewOracle() *Oracle {
	return &Oracle{
		transcript: fiatshamir.NewTranscript(sha256.New(), challengeIDs...),
	}
}

// WriteCommitment writes com to the oracle.
func (o *Oracle) WriteCommitment(com pcs.Commitment) {
	if err := o.transcript.Bind(challengeIDs[o.next], com.Marshal()); err != nil {
		panic(err)
	}
}

// WriteFieldElement writes x to the oracle.
func (o *Oracle) WriteFieldElement(x fr.Element) {
	b := x.Bytes()
	if err := o.transcript.Bind(challengeIDs[o.next], b[:]); err != nil {
		panic(err)
	}
}

// SampleChallenge samples the next challenge,
// binding everything written so far.
func (o *Oracle) SampleChallenge() fr.Element {
	b, err := o.transcript.ComputeChallenge(challengeIDs[o.next])
	if err != nil {
		panic(err)
	}
	o.next++

	var x fr.Element
	x.SetBytes(b)
	return x
}

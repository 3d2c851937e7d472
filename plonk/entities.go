package plonk

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/kzg"

	"github.com/sp301415/plonk-piop/pcs"
	"github.com/sp301415/plonk-piop/poly"
)

// PublicParameters is the output of [Setup], shared by prover and verifier.
type PublicParameters struct {
	// SelectorPoly interpolates the gate selectors over the evaluation
	// domain. Addition gates map to 1, multiplication gates to 0.
	SelectorPoly poly.Poly
	// PublicInputPoly interpolates the public inputs over the evaluation
	// domain.
	PublicInputPoly poly.Poly
	// PermutationPoly interpolates the copy-constraint permutation over
	// the evaluation domain.
	PermutationPoly poly.Poly

	// SRS is the structured reference string of the commitment scheme.
	SRS *kzg.SRS
}

// Proof is a proof of correct circuit execution.
type Proof struct {
	// TraceCommitment is a commitment to the trace polynomial.
	TraceCommitment pcs.Commitment
	// GrandProductCommitment is a commitment to the grand product
	// accumulator of the copy-constraint argument.
	GrandProductCommitment pcs.Commitment
	// GateQuotientCommitment is a commitment to the quotient of the
	// gate identity.
	GateQuotientCommitment pcs.Commitment
	// InputQuotientCommitment is a commitment to the quotient of the
	// public-input identity.
	InputQuotientCommitment pcs.Commitment
	// CopyQuotientCommitment is a commitment to the quotient of the
	// copy-constraint identity.
	CopyQuotientCommitment pcs.Commitment

	// TraceOpening opens the trace polynomial at zeta.
	TraceOpening pcs.OpeningProof
	// TraceShiftOpening opens the trace polynomial at omega * zeta.
	TraceShiftOpening pcs.OpeningProof
	// TraceShift2Opening opens the trace polynomial at omega^2 * zeta.
	TraceShift2Opening pcs.OpeningProof
	// GrandProductOpening opens the grand product accumulator at zeta.
	GrandProductOpening pcs.OpeningProof
	// GrandProductShiftOpening opens the grand product accumulator at
	// omega * zeta.
	GrandProductShiftOpening pcs.OpeningProof
	// GateQuotientOpening opens the gate quotient at zeta.
	GateQuotientOpening pcs.OpeningProof
	// InputQuotientOpening opens the public-input quotient at zeta.
	InputQuotientOpening pcs.OpeningProof
	// CopyQuotientOpening opens the copy-constraint quotient at zeta.
	CopyQuotientOpening pcs.OpeningProof
}

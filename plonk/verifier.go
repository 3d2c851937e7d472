package plonk

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/sp301415/plonk-piop/circuit"
	"github.com/sp301415/plonk-piop/pcs"
)

// Verifier verifies proofs of correct circuit execution.
type Verifier struct {
	circuit *circuit.Circuit
	pp      PublicParameters

	publicInputs []fr.Element

	encoder      *Encoder
	polyVerifier *pcs.Verifier
}

// NewVerifier creates a new Verifier.
func NewVerifier(c *circuit.Circuit, pp PublicParameters, publicInputs []fr.Element) *Verifier {
	return &Verifier{
		circuit: c,
		pp:      pp,

		publicInputs: publicInputs,

		encoder:      NewEncoder(c),
		polyVerifier: pcs.NewVerifier(pp.SRS),
	}
}

// Verify verifies pf against the verifier's circuit and public inputs.
func (v *Verifier) Verify(pf Proof) bool {
	if len(v.publicInputs) != v.circuit.InputConfig().NPublic() {
		return false
	}

	oracle := NewOracle()
	for _, x := range v.publicInputs {
		oracle.WriteFieldElement(x)
	}
	oracle.WriteCommitment(pf.TraceCommitment)
	beta := oracle.SampleChallenge()
	gamma := oracle.SampleChallenge()
	oracle.WriteCommitment(pf.GrandProductCommitment)
	alpha := oracle.SampleChallenge()
	oracle.WriteCommitment(pf.GateQuotientCommitment)
	oracle.WriteCommitment(pf.InputQuotientCommitment)
	oracle.WriteCommitment(pf.CopyQuotientCommitment)
	zeta := oracle.SampleChallenge()

	var one fr.Element
	one.SetOne()
	if zeta.Equal(&one) {
		return false
	}

	w := v.encoder.Domain().Generator
	var zetaW, zetaW2 fr.Element
	zetaW.Mul(&zeta, &w)
	zetaW2.Mul(&zetaW, &w)

	openings := []struct {
		com   pcs.Commitment
		pf    pcs.OpeningProof
		point fr.Element
	}{
		{pf.TraceCommitment, pf.TraceOpening, zeta},
		{pf.TraceCommitment, pf.TraceShiftOpening, zetaW},
		{pf.TraceCommitment, pf.TraceShift2Opening, zetaW2},
		{pf.GrandProductCommitment, pf.GrandProductOpening, zeta},
		{pf.GrandProductCommitment, pf.GrandProductShiftOpening, zetaW},
		{pf.GateQuotientCommitment, pf.GateQuotientOpening, zeta},
		{pf.InputQuotientCommitment, pf.InputQuotientOpening, zeta},
		{pf.CopyQuotientCommitment, pf.CopyQuotientOpening, zeta},
	}
	for _, opening := range openings {
		if !v.polyVerifier.Verify(opening.com, opening.pf, opening.point) {
			return false
		}
	}

	return v.gateCheck(pf, zeta) && v.inputCheck(pf, zeta) && v.copyCheck(pf, zeta, beta, gamma, alpha)
}

// gateCheck checks the gate identity at zeta.
func (v *Verifier) gateCheck(pf Proof, zeta fr.Element) bool {
	s := v.pp.SelectorPoly.Evaluate(zeta)

	tr := pf.TraceOpening.ClaimedValue
	trW := pf.TraceShiftOpening.ClaimedValue
	trW2 := pf.TraceShift2Opening.ClaimedValue

	var one fr.Element
	one.SetOne()

	var lhs, t fr.Element
	t.Add(&tr, &trW)
	lhs.Mul(&s, &t)
	t.Sub(&one, &s)
	t.Mul(&t, &tr)
	t.Mul(&t, &trW)
	lhs.Add(&lhs, &t)
	lhs.Sub(&lhs, &trW2)

	var rhs fr.Element
	vanish := evaluateVanishing(v.encoder.GatePoints(v.circuit), zeta)
	rhs.Mul(&pf.GateQuotientOpening.ClaimedValue, &vanish)

	return lhs.Equal(&rhs)
}

// inputCheck checks the public-input identity at zeta.
// The public-input polynomial is recomputed locally.
func (v *Verifier) inputCheck(pf Proof, zeta fr.Element) bool {
	in := v.encoder.PublicInputPolynomial(v.circuit, v.publicInputs).Evaluate(zeta)

	var lhs fr.Element
	lhs.Sub(&pf.TraceOpening.ClaimedValue, &in)

	var rhs fr.Element
	vanish := evaluateVanishing(v.encoder.PublicInputPoints(v.circuit), zeta)
	rhs.Mul(&pf.InputQuotientOpening.ClaimedValue, &vanish)

	return lhs.Equal(&rhs)
}

// copyCheck checks the copy-constraint identity at zeta.
func (v *Verifier) copyCheck(pf Proof, zeta, beta, gamma, alpha fr.Element) bool {
	tr := pf.TraceOpening.ClaimedValue
	z := pf.GrandProductOpening.ClaimedValue
	zW := pf.GrandProductShiftOpening.ClaimedValue
	sSigma := v.pp.PermutationPoly.Evaluate(zeta)

	var one fr.Element
	one.SetOne()

	// zeta^N - 1
	var vanish fr.Element
	vanish.Exp(zeta, big.NewInt(int64(v.encoder.DomainSize())))
	vanish.Sub(&vanish, &one)

	// L_0(zeta) = (zeta^N - 1) / (N * (zeta - 1))
	var lagrangeZero fr.Element
	lagrangeZero.Sub(&zeta, &one)
	lagrangeZero.Inverse(&lagrangeZero)
	lagrangeZero.Mul(&lagrangeZero, &vanish)
	lagrangeZero.Mul(&lagrangeZero, &v.encoder.Domain().CardinalityInv)

	var lhs, t fr.Element
	t.Mul(&beta, &zeta)
	t.Add(&t, &tr)
	t.Add(&t, &gamma)
	lhs.Mul(&z, &t)

	t.Mul(&beta, &sSigma)
	t.Add(&t, &tr)
	t.Add(&t, &gamma)
	t.Mul(&t, &zW)
	lhs.Sub(&lhs, &t)

	t.Sub(&z, &one)
	t.Mul(&t, &lagrangeZero)
	t.Mul(&t, &alpha)
	lhs.Add(&lhs, &t)

	var rhs fr.Element
	rhs.Mul(&pf.CopyQuotientOpening.ClaimedValue, &vanish)

	return lhs.Equal(&rhs)
}

func evaluateVanishing(points []fr.Element, x fr.Element) fr.Element {
	out := fr.One()
	var t fr.Element
	for i := range points {
		t.Sub(&x, &points[i])
		out.Mul(&out, &t)
	}
	return out
}

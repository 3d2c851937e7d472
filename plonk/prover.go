package plonk

import (
	"fmt"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/sp301415/plonk-piop/circuit"
	"github.com/sp301415/plonk-piop/logger"
	"github.com/sp301415/plonk-piop/pcs"
	"github.com/sp301415/plonk-piop/poly"
)

// Prover proves correct execution of a circuit.
type Prover struct {
	circuit *circuit.Circuit
	pp      PublicParameters

	publicInputs  []fr.Element
	privateInputs []fr.Element

	encoder    *Encoder
	polyProver *pcs.Prover

	trace []fr.Element
}

// NewProver creates a new Prover.
func NewProver(c *circuit.Circuit, pp PublicParameters, publicInputs, privateInputs []fr.Element) *Prover {
	return &Prover{
		circuit: c,
		pp:      pp,

		publicInputs:  publicInputs,
		privateInputs: privateInputs,

		encoder:    NewEncoder(c),
		polyProver: pcs.NewProver(pp.SRS),
	}
}

// Trace returns the computed witness trace,
// or nil if [Prover.CalculateWitness] has not been called.
func (p *Prover) Trace() []fr.Element {
	return p.trace
}

// TracePolynomial interpolates the witness trace.
// [Prover.CalculateWitness] must be called first.
func (p *Prover) TracePolynomial() (poly.Poly, error) {
	if p.trace == nil {
		return poly.Poly{}, fmt.Errorf("witness is not computed")
	}
	return p.encoder.TracePolynomial(p.trace), nil
}

// Prove proves that the circuit evaluates correctly over the prover's
// inputs. The witness is computed first if it has not been already.
func (p *Prover) Prove() (Proof, error) {
	if p.trace == nil {
		if err := p.CalculateWitness(); err != nil {
			return Proof{}, err
		}
	}

	now := time.Now()

	oracle := NewOracle()
	for _, x := range p.publicInputs {
		oracle.WriteFieldElement(x)
	}

	tracePoly := p.encoder.TracePolynomial(p.trace)
	traceCommit, err := p.polyProver.Commit(tracePoly)
	if err != nil {
		return Proof{}, err
	}
	oracle.WriteCommitment(traceCommit)

	beta := oracle.SampleChallenge()
	gamma := oracle.SampleChallenge()

	grandProductPoly := p.grandProduct(beta, gamma)
	grandProductCommit, err := p.polyProver.Commit(grandProductPoly)
	if err != nil {
		return Proof{}, err
	}
	oracle.WriteCommitment(grandProductCommit)

	alpha := oracle.SampleChallenge()

	gateQuotientPoly, err := p.gateQuotient(tracePoly)
	if err != nil {
		return Proof{}, err
	}
	inputQuotientPoly, err := p.inputQuotient(tracePoly)
	if err != nil {
		return Proof{}, err
	}
	copyQuotientPoly, err := p.copyQuotient(tracePoly, grandProductPoly, beta, gamma, alpha)
	if err != nil {
		return Proof{}, err
	}

	gateQuotientCommit, err := p.polyProver.Commit(gateQuotientPoly)
	if err != nil {
		return Proof{}, err
	}
	oracle.WriteCommitment(gateQuotientCommit)
	inputQuotientCommit, err := p.polyProver.Commit(inputQuotientPoly)
	if err != nil {
		return Proof{}, err
	}
	oracle.WriteCommitment(inputQuotientCommit)
	copyQuotientCommit, err := p.polyProver.Commit(copyQuotientPoly)
	if err != nil {
		return Proof{}, err
	}
	oracle.WriteCommitment(copyQuotientCommit)

	zeta := oracle.SampleChallenge()
	w := p.encoder.Domain().Generator
	var zetaW, zetaW2 fr.Element
	zetaW.Mul(&zeta, &w)
	zetaW2.Mul(&zetaW, &w)

	pf := Proof{
		TraceCommitment:         traceCommit,
		GrandProductCommitment:  grandProductCommit,
		GateQuotientCommitment:  gateQuotientCommit,
		InputQuotientCommitment: inputQuotientCommit,
		CopyQuotientCommitment:  copyQuotientCommit,
	}

	openings := []struct {
		p     poly.Poly
		point fr.Element
		out   *pcs.OpeningProof
	}{
		{tracePoly, zeta, &pf.TraceOpening},
		{tracePoly, zetaW, &pf.TraceShiftOpening},
		{tracePoly, zetaW2, &pf.TraceShift2Opening},
		{grandProductPoly, zeta, &pf.GrandProductOpening},
		{grandProductPoly, zetaW, &pf.GrandProductShiftOpening},
		{gateQuotientPoly, zeta, &pf.GateQuotientOpening},
		{inputQuotientPoly, zeta, &pf.InputQuotientOpening},
		{copyQuotientPoly, zeta, &pf.CopyQuotientOpening},
	}
	for _, opening := range openings {
		*opening.out, err = p.polyProver.Open(opening.p, opening.point)
		if err != nil {
			return Proof{}, err
		}
	}

	log := logger.Logger()
	log.Debug().Dur("took", time.Since(now)).Msg("proof generated")

	return pf, nil
}

// grandProduct computes the accumulator polynomial of the
// copy-constraint argument. Cells beyond NCells carry zero and map to
// themselves, so their factors cancel.
func (p *Prover) grandProduct(beta, gamma fr.Element) poly.Poly {
	n := p.encoder.DomainSize()
	powers := p.encoder.DomainPowers()
	sigma := p.encoder.PermutationIndices(p.circuit)

	trace := make([]fr.Element, n)
	copy(trace, p.trace)

	nums := make([]fr.Element, n)
	dens := make([]fr.Element, n)
	var t fr.Element
	for i := 0; i < n; i++ {
		t.Mul(&beta, &powers[i])
		nums[i].Add(&trace[i], &t)
		nums[i].Add(&nums[i], &gamma)

		t.Mul(&beta, &powers[sigma[i]])
		dens[i].Add(&trace[i], &t)
		dens[i].Add(&dens[i], &gamma)
	}
	densInv := fr.BatchInvert(dens)

	evals := make([]fr.Element, n)
	evals[0].SetOne()
	for i := 1; i < n; i++ {
		t.Mul(&nums[i-1], &densInv[i-1])
		evals[i].Mul(&evals[i-1], &t)
	}

	return p.encoder.Interpolate(evals)
}

// gateQuotient divides the gate identity by the vanishing polynomial
// of the gate points.
func (p *Prover) gateQuotient(tracePoly poly.Poly) (poly.Poly, error) {
	w := p.encoder.Domain().Generator
	var w2 fr.Element
	w2.Mul(&w, &w)

	traceShift := poly.Shift(tracePoly, w)
	traceShift2 := poly.Shift(tracePoly, w2)

	one := poly.NewPoly(1)
	one.Coeffs[0].SetOne()

	// S*(T + T_w) + (1 - S)*T*T_w - T_w2
	lhs := poly.Add(
		poly.Mul(p.pp.SelectorPoly, poly.Add(tracePoly, traceShift)),
		poly.Mul(poly.Sub(one, p.pp.SelectorPoly), poly.Mul(tracePoly, traceShift)),
	)
	lhs = poly.Sub(lhs, traceShift2)

	quo, rem := poly.QuoRem(lhs, poly.FromRoots(p.encoder.GatePoints(p.circuit)))
	if !rem.IsZero() {
		return poly.Poly{}, fmt.Errorf("trace does not satisfy the gate constraints")
	}
	return quo, nil
}

// inputQuotient divides the public-input identity by the vanishing
// polynomial of the public-input points.
func (p *Prover) inputQuotient(tracePoly poly.Poly) (poly.Poly, error) {
	lhs := poly.Sub(tracePoly, p.pp.PublicInputPoly)

	quo, rem := poly.QuoRem(lhs, poly.FromRoots(p.encoder.PublicInputPoints(p.circuit)))
	if !rem.IsZero() {
		return poly.Poly{}, fmt.Errorf("trace does not match the public inputs")
	}
	return quo, nil
}

// copyQuotient divides the copy-constraint identity by the vanishing
// polynomial of the full domain.
func (p *Prover) copyQuotient(tracePoly, grandProductPoly poly.Poly, beta, gamma, alpha fr.Element) (poly.Poly, error) {
	n := p.encoder.DomainSize()
	w := p.encoder.Domain().Generator
	grandProductShift := poly.Shift(grandProductPoly, w)

	// T + beta*X + gamma
	lhsID := tracePoly.Copy()
	lhsID.Coeffs[1].Add(&lhsID.Coeffs[1], &beta)
	lhsID.Coeffs[0].Add(&lhsID.Coeffs[0], &gamma)

	// T + beta*S_sigma + gamma
	lhsPerm := poly.Add(tracePoly, poly.ScalarMul(p.pp.PermutationPoly, beta))
	lhsPerm.Coeffs[0].Add(&lhsPerm.Coeffs[0], &gamma)

	total := poly.Sub(
		poly.Mul(grandProductPoly, lhsID),
		poly.Mul(grandProductShift, lhsPerm),
	)

	// L_0 * (Z - 1)
	lagrangeZero := poly.NewPoly(n)
	for i := range lagrangeZero.Coeffs {
		lagrangeZero.Coeffs[i].Set(&p.encoder.Domain().CardinalityInv)
	}
	var one fr.Element
	one.SetOne()
	grandProductMinusOne := grandProductPoly.Copy()
	grandProductMinusOne.Coeffs[0].Sub(&grandProductMinusOne.Coeffs[0], &one)

	total = poly.Add(total, poly.ScalarMul(poly.Mul(lagrangeZero, grandProductMinusOne), alpha))

	quo, rem := poly.QuoRemByVanishing(total, n)
	if !rem.IsZero() {
		return poly.Poly{}, fmt.Errorf("trace does not satisfy the copy constraints")
	}
	return quo, nil
}

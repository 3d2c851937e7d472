package plonk

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"

	"github.com/sp301415/plonk-piop/circuit"
	"github.com/sp301415/plonk-piop/num"
	"github.com/sp301415/plonk-piop/poly"
)

// Encoder encodes circuit data as polynomials over a radix-2
// evaluation domain of size next_power_of_two(NCells).
// Trace cell k lives at the domain point omega^k.
type Encoder struct {
	domain *fft.Domain
	nCells int
}

// NewEncoder creates a new Encoder for c.
func NewEncoder(c *circuit.Circuit) *Encoder {
	return &Encoder{
		domain: fft.NewDomain(uint64(num.NextPowerOfTwo(c.NCells()))),
		nCells: c.NCells(),
	}
}

// Domain returns the evaluation domain.
func (e *Encoder) Domain() *fft.Domain {
	return e.domain
}

// DomainSize returns the size of the evaluation domain.
func (e *Encoder) DomainSize() int {
	return int(e.domain.Cardinality)
}

// DomainPowers returns the powers omega^0, ..., omega^{N-1}
// of the domain generator.
func (e *Encoder) DomainPowers() []fr.Element {
	powers := make([]fr.Element, e.domain.Cardinality)
	powers[0].SetOne()
	for i := 1; i < len(powers); i++ {
		powers[i].Mul(&powers[i-1], &e.domain.Generator)
	}
	return powers
}

// Interpolate returns the polynomial of degree less than the domain
// size taking the given values over the domain, padding with zeros.
func (e *Encoder) Interpolate(evals []fr.Element) poly.Poly {
	coeffs := make([]fr.Element, e.domain.Cardinality)
	copy(coeffs, evals)
	e.domain.FFTInverse(coeffs, fft.DIF)
	fft.BitReverse(coeffs)
	return poly.Poly{Coeffs: coeffs}
}

// TracePolynomial interpolates the witness trace.
func (e *Encoder) TracePolynomial(trace []fr.Element) poly.Poly {
	return e.Interpolate(trace)
}

// SelectorPolynomial interpolates the gate selectors of c.
// Addition gates map to 1 and multiplication gates to 0;
// non-gate points carry 0.
func (e *Encoder) SelectorPolynomial(c *circuit.Circuit) poly.Poly {
	evals := make([]fr.Element, e.domain.Cardinality)
	for r := 0; r < c.NRows(); r++ {
		if op, _ := c.Selector(r); op == circuit.Add {
			evals[3*r].SetOne()
		}
	}
	return e.Interpolate(evals)
}

// PublicInputPolynomial interpolates the public inputs of c
// at their cell addresses.
func (e *Encoder) PublicInputPolynomial(c *circuit.Circuit, publicInputs []fr.Element) poly.Poly {
	evals := make([]fr.Element, e.domain.Cardinality)
	for i := range publicInputs {
		evals[c.NCells()-(i+1)].Set(&publicInputs[i])
	}
	return e.Interpolate(evals)
}

// PermutationIndices returns the copy-constraint permutation over cell
// addresses: each copy group is rotated cyclically, and all other
// cells map to themselves.
func (e *Encoder) PermutationIndices(c *circuit.Circuit) []int {
	sigma := make([]int, e.domain.Cardinality)
	for i := range sigma {
		sigma[i] = i
	}
	for _, group := range c.CopyConstraintGroups() {
		for i, id := range group {
			sigma[id] = group[(i+1)%len(group)]
		}
	}
	return sigma
}

// PermutationPolynomial interpolates omega^sigma(i) over the domain,
// where sigma is the copy-constraint permutation.
func (e *Encoder) PermutationPolynomial(c *circuit.Circuit) poly.Poly {
	powers := e.DomainPowers()
	sigma := e.PermutationIndices(c)

	evals := make([]fr.Element, e.domain.Cardinality)
	for i, s := range sigma {
		evals[i].Set(&powers[s])
	}
	return e.Interpolate(evals)
}

// GatePoints returns the domain points carrying gate constraints.
func (e *Encoder) GatePoints(c *circuit.Circuit) []fr.Element {
	powers := e.DomainPowers()
	points := make([]fr.Element, c.NRows())
	for r := range points {
		points[r].Set(&powers[3*r])
	}
	return points
}

// PublicInputPoints returns the domain points carrying public inputs.
func (e *Encoder) PublicInputPoints(c *circuit.Circuit) []fr.Element {
	powers := e.DomainPowers()
	points := make([]fr.Element, c.InputConfig().NPublic())
	for i := range points {
		points[i].Set(&powers[c.NCells()-(i+1)])
	}
	return points
}

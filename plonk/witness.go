package plonk

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/sp301415/plonk-piop/circuit"
	"github.com/sp301415/plonk-piop/logger"
)

// CalculateWitness evaluates the circuit over the prover's inputs,
// filling every cell of the trace.
//
// Inputs are assigned first, values propagate through copy-constraint
// groups, and gate rows are evaluated in FIFO order as soon as both of
// their input cells are assigned.
func (p *Prover) CalculateWitness() error {
	c := p.circuit

	if len(p.publicInputs) != c.InputConfig().NPublic() {
		return fmt.Errorf("expected %d public inputs, got %d", c.InputConfig().NPublic(), len(p.publicInputs))
	}
	if len(p.privateInputs) != c.InputConfig().NPrivate() {
		return fmt.Errorf("expected %d private inputs, got %d", c.InputConfig().NPrivate(), len(p.privateInputs))
	}

	trace := make([]fr.Element, c.NCells())
	assigned := bitset.New(uint(c.NCells()))
	queue := make([]int, 0, c.NRows())

	var assignCell func(id int, x fr.Element)
	assignCell = func(id int, x fr.Element) {
		if assigned.Test(uint(id)) {
			return
		}
		trace[id].Set(&x)
		assigned.Set(uint(id))

		// propagation stops at the circuit output
		if id != c.OutputID() {
			if group, ok := c.CopyConstraints(id); ok {
				for _, peer := range group {
					assignCell(peer, x)
				}
			}
		}

		if id < 3*c.NRows() && id%3 != 2 {
			r := id / 3
			lhs, rhs, out := uint(3*r), uint(3*r+1), uint(3*r+2)
			if assigned.Test(lhs) && assigned.Test(rhs) && !assigned.Test(out) {
				queue = append(queue, r)
			}
		}
	}

	for i := 0; i < c.NInputs(); i++ {
		assignCell(c.NCells()-(i+1), p.inputValue(i))
	}

	log := logger.Logger()
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]

		lhs, rhs, out := 3*r, 3*r+1, 3*r+2
		if assigned.Test(uint(out)) {
			continue
		}

		op, _ := c.Selector(r)
		var x fr.Element
		switch op {
		case circuit.Add:
			x.Add(&trace[lhs], &trace[rhs])
		case circuit.Mul:
			x.Mul(&trace[lhs], &trace[rhs])
		}
		log.Debug().Int("row", r).Str("op", op.String()).Msg("gate evaluated")

		assignCell(out, x)
	}

	if assigned.Count() != uint(c.NCells()) {
		id, _ := assigned.NextClear(0)
		return fmt.Errorf("incomplete trace: cell %d is not assigned", id)
	}

	p.trace = trace
	return nil
}

func (p *Prover) inputValue(i int) fr.Element {
	if i < len(p.publicInputs) {
		return p.publicInputs[i]
	}
	return p.privateInputs[i-len(p.publicInputs)]
}

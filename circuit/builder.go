package circuit

import (
	"fmt"
	"slices"
)

// Builder builds a [Circuit] gate by gate.
// The zero value is not usable; create one with [NewBuilder].
type Builder struct {
	inputConfig InputConfig

	ops         []Op
	wiringPairs [][2]CellRef

	currentRow int
	built      bool
}

// NewBuilder creates a new Builder for a circuit with the given input arity.
func NewBuilder(inputConfig InputConfig) *Builder {
	return &Builder{
		inputConfig: inputConfig,
	}
}

// InputRefs returns references to the public and private inputs,
// in declaration order.
func (b *Builder) InputRefs() (pub, priv []CellRef) {
	for i := 1; i <= b.inputConfig.NPublic(); i++ {
		pub = append(pub, InputRef(i))
	}
	for i := b.inputConfig.NPublic() + 1; i <= b.inputConfig.NInputs(); i++ {
		priv = append(priv, InputRef(i))
	}
	return pub, priv
}

func (b *Builder) checkRef(ref CellRef) error {
	switch ref.kind {
	case refInput:
		if ref.id < 1 || ref.id > b.inputConfig.NInputs() {
			return fmt.Errorf("input %d does not exist", ref.id)
		}
	case refWire:
		if ref.id < 0 || ref.id >= 3*b.currentRow {
			return fmt.Errorf("wire %d does not exist", ref.id)
		}
	}
	return nil
}

func (b *Builder) addGate(op Op, lhs, rhs CellRef) (CellRef, error) {
	if err := b.checkRef(lhs); err != nil {
		return CellRef{}, fmt.Errorf("lhs: %w", err)
	}
	if err := b.checkRef(rhs); err != nil {
		return CellRef{}, fmt.Errorf("rhs: %w", err)
	}

	pos := 3 * b.currentRow
	b.ops = append(b.ops, op)
	b.currentRow++

	b.AddWireConstraint(lhs, WireRef(pos))
	b.AddWireConstraint(rhs, WireRef(pos+1))

	return WireRef(pos + 2), nil
}

// AddAddition adds a gate computing lhs + rhs,
// and returns a reference to its output cell.
func (b *Builder) AddAddition(lhs, rhs CellRef) (CellRef, error) {
	return b.addGate(Add, lhs, rhs)
}

// AddMultiplication adds a gate computing lhs * rhs,
// and returns a reference to its output cell.
func (b *Builder) AddMultiplication(lhs, rhs CellRef) (CellRef, error) {
	return b.addGate(Mul, lhs, rhs)
}

// AddWireConstraint constrains the cells x and y to carry equal values.
func (b *Builder) AddWireConstraint(x, y CellRef) {
	b.wiringPairs = append(b.wiringPairs, [2]CellRef{x, y})
}

// Build compiles the builder into an immutable [Circuit].
// A builder can be built only once.
func (b *Builder) Build() (*Circuit, error) {
	if b.built {
		return nil, fmt.Errorf("builder has already been built")
	}
	if b.currentRow == 0 {
		return nil, fmt.Errorf("circuit has no gates")
	}
	b.built = true

	nCells := b.inputConfig.NInputs() + 3*b.currentRow

	resolve := func(ref CellRef) int {
		if ref.kind == refInput {
			return nCells - ref.id
		}
		return ref.id
	}

	sets := make([]map[int]struct{}, 0, b.inputConfig.NInputs())
	for i := 1; i <= b.inputConfig.NInputs(); i++ {
		sets = append(sets, map[int]struct{}{nCells - i: {}})
	}

	for _, pair := range b.wiringPairs {
		x, y := resolve(pair[0]), resolve(pair[1])

		merged := false
		for _, set := range sets {
			if _, ok := set[x]; ok {
				set[y] = struct{}{}
				merged = true
				break
			}
		}
		if !merged {
			for _, set := range sets {
				if _, ok := set[y]; ok {
					set[x] = struct{}{}
					merged = true
					break
				}
			}
		}
		if !merged {
			sets = append(sets, map[int]struct{}{x: {}, y: {}})
		}
	}

	groups := make([][]int, 0, len(sets))
	groupIdx := make([]int, nCells)
	for i := range groupIdx {
		groupIdx[i] = -1
	}
	for _, set := range sets {
		group := make([]int, 0, len(set))
		for id := range set {
			group = append(group, id)
		}
		slices.Sort(group)

		for _, id := range group {
			groupIdx[id] = len(groups)
		}
		groups = append(groups, group)
	}

	return &Circuit{
		inputConfig: b.inputConfig,

		ops:      slices.Clone(b.ops),
		groups:   groups,
		groupIdx: groupIdx,

		nCells:   nCells,
		outputID: 3*b.currentRow - 1,
	}, nil
}

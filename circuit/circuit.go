// Package circuit implements an arithmetic circuit of fan-in-two
// addition and multiplication gates with copy constraints.
//
// A circuit is laid out as a flat array of cells. Each gate row r
// occupies three consecutive cells 3r, 3r+1, 3r+2 (left input, right
// input, output), and the k-th input of the circuit lives at cell
// n_cells - k. Copy constraints tie cells that must carry equal values.
package circuit

// Op is the operation of a gate.
type Op int

const (
	// Mul multiplies the two gate inputs.
	Mul Op = iota
	// Add adds the two gate inputs.
	Add
)

// String returns a string representation of op.
func (op Op) String() string {
	switch op {
	case Mul:
		return "Mul"
	case Add:
		return "Add"
	}
	return "Unknown"
}

// InputConfig is the input arity of a circuit.
type InputConfig struct {
	nPublic  int
	nPrivate int
}

// NewInputConfig creates a new InputConfig.
// Panics if either count is negative.
func NewInputConfig(nPublic, nPrivate int) InputConfig {
	if nPublic < 0 || nPrivate < 0 {
		panic("input count cannot be negative")
	}
	return InputConfig{nPublic: nPublic, nPrivate: nPrivate}
}

// NPublic returns the number of public inputs.
func (c InputConfig) NPublic() int {
	return c.nPublic
}

// NPrivate returns the number of private inputs.
func (c InputConfig) NPrivate() int {
	return c.nPrivate
}

// NInputs returns the total number of inputs.
func (c InputConfig) NInputs() int {
	return c.nPublic + c.nPrivate
}

type refKind int

const (
	refInput refKind = iota
	refWire
)

// CellRef refers to a cell during circuit construction.
// Input references are one-based, counted from the end of the cell
// array; wire references are absolute cell addresses.
type CellRef struct {
	kind refKind
	id   int
}

// InputRef returns a reference to the i-th input, starting from 1.
// Public inputs come first, followed by private inputs.
func InputRef(i int) CellRef {
	return CellRef{kind: refInput, id: i}
}

// WireRef returns a reference to the cell at address id.
func WireRef(id int) CellRef {
	return CellRef{kind: refWire, id: id}
}

// Circuit is a compiled arithmetic circuit.
// It is immutable; create one with [Builder.Build].
type Circuit struct {
	inputConfig InputConfig

	ops      []Op
	groups   [][]int
	groupIdx []int

	nCells   int
	outputID int
}

// InputConfig returns the input arity of the circuit.
func (c *Circuit) InputConfig() InputConfig {
	return c.inputConfig
}

// NInputs returns the total number of inputs.
func (c *Circuit) NInputs() int {
	return c.inputConfig.NInputs()
}

// NRows returns the number of gate rows.
func (c *Circuit) NRows() int {
	return len(c.ops)
}

// NCells returns the total number of cells,
// which is 3 * NRows + NInputs.
func (c *Circuit) NCells() int {
	return c.nCells
}

// OutputID returns the cell address of the circuit output.
func (c *Circuit) OutputID() int {
	return c.outputID
}

// Selector returns the operation of gate row r.
// Returns false if there is no such row.
func (c *Circuit) Selector(r int) (Op, bool) {
	if r < 0 || r >= len(c.ops) {
		return 0, false
	}
	return c.ops[r], true
}

// CopyConstraints returns the sorted copy-constraint group containing
// cell id. Returns false if the cell belongs to no group.
// The returned slice must not be modified.
func (c *Circuit) CopyConstraints(id int) ([]int, bool) {
	if id < 0 || id >= len(c.groupIdx) || c.groupIdx[id] < 0 {
		return nil, false
	}
	return c.groups[c.groupIdx[id]], true
}

// CopyConstraintGroups returns all copy-constraint groups.
// The returned slices must not be modified.
func (c *Circuit) CopyConstraintGroups() [][]int {
	return c.groups
}

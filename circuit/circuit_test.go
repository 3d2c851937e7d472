package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sp301415/plonk-piop/circuit"
)

// buildExample builds out = (pub0 + priv0) * pub1 + priv0
// with two public inputs and one private input.
func buildExample(t *testing.T) *circuit.Circuit {
	t.Helper()

	builder := circuit.NewBuilder(circuit.NewInputConfig(2, 1))
	pub, priv := builder.InputRefs()

	sum, err := builder.AddAddition(pub[0], priv[0])
	require.NoError(t, err)
	prod, err := builder.AddMultiplication(sum, pub[1])
	require.NoError(t, err)
	_, err = builder.AddAddition(prod, priv[0])
	require.NoError(t, err)

	c, err := builder.Build()
	require.NoError(t, err)
	return c
}

func TestBuilder(t *testing.T) {
	t.Run("Layout", func(t *testing.T) {
		c := buildExample(t)

		assert.Equal(t, 3, c.NRows())
		assert.Equal(t, 3, c.NInputs())
		assert.Equal(t, 12, c.NCells())
		assert.Equal(t, 8, c.OutputID())

		ops := make([]circuit.Op, 0, c.NRows())
		for r := 0; r < c.NRows(); r++ {
			op, ok := c.Selector(r)
			require.True(t, ok)
			ops = append(ops, op)
		}
		assert.Equal(t, []circuit.Op{circuit.Add, circuit.Mul, circuit.Add}, ops)

		_, ok := c.Selector(3)
		assert.False(t, ok)
	})

	t.Run("CopyConstraints", func(t *testing.T) {
		c := buildExample(t)

		assert.Equal(t, [][]int{{0, 11}, {4, 10}, {1, 7, 9}, {2, 3}, {5, 6}}, c.CopyConstraintGroups())

		for _, group := range c.CopyConstraintGroups() {
			for _, id := range group {
				got, ok := c.CopyConstraints(id)
				require.True(t, ok)
				assert.Equal(t, group, got)
			}
		}

		_, ok := c.CopyConstraints(8)
		assert.False(t, ok)
		_, ok = c.CopyConstraints(-1)
		assert.False(t, ok)
		_, ok = c.CopyConstraints(c.NCells())
		assert.False(t, ok)
	})

	t.Run("Deterministic", func(t *testing.T) {
		c0 := buildExample(t)
		c1 := buildExample(t)

		assert.Equal(t, c0.CopyConstraintGroups(), c1.CopyConstraintGroups())
	})

	t.Run("InvalidRef", func(t *testing.T) {
		builder := circuit.NewBuilder(circuit.NewInputConfig(2, 1))
		pub, _ := builder.InputRefs()

		_, err := builder.AddAddition(circuit.InputRef(100), pub[0])
		assert.EqualError(t, err, "lhs: input 100 does not exist")
		_, err = builder.AddAddition(pub[0], circuit.InputRef(100))
		assert.EqualError(t, err, "rhs: input 100 does not exist")
		_, err = builder.AddAddition(circuit.WireRef(1), pub[0])
		assert.EqualError(t, err, "lhs: wire 1 does not exist")
		_, err = builder.AddAddition(pub[0], circuit.WireRef(1))
		assert.EqualError(t, err, "rhs: wire 1 does not exist")

		_, err = builder.Build()
		assert.EqualError(t, err, "circuit has no gates")
	})

	t.Run("Empty", func(t *testing.T) {
		builder := circuit.NewBuilder(circuit.NewInputConfig(1, 0))
		_, err := builder.Build()
		assert.EqualError(t, err, "circuit has no gates")
	})

	t.Run("Rebuild", func(t *testing.T) {
		builder := circuit.NewBuilder(circuit.NewInputConfig(1, 0))
		pub, _ := builder.InputRefs()
		_, err := builder.AddAddition(pub[0], pub[0])
		require.NoError(t, err)

		_, err = builder.Build()
		require.NoError(t, err)
		_, err = builder.Build()
		assert.EqualError(t, err, "builder has already been built")
	})
}

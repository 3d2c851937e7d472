// Package plonk implements a PLONK-style proof system for arithmetic
// circuits: a queue-driven witness engine, polynomial encodings over a
// radix-2 evaluation domain, and a prove/verify protocol built on a
// KZG polynomial commitment scheme.
package plonk

import (
	"fmt"
)

// ParametersLiteral is a structure for PLONK parameters.
type ParametersLiteral struct {
	// MaxDegree is the maximum degree of committed polynomials.
	// For a circuit over a domain of size N, it must be at least 3*(N-1).
	MaxDegree int
}

// Compile transforms ParametersLiteral to read-only Parameters.
// If the parameters are invalid, it panics.
func (p ParametersLiteral) Compile() Parameters {
	if p.MaxDegree < 1 {
		panic(fmt.Errorf("MaxDegree must be at least 1"))
	}

	return Parameters{
		maxDegree: p.MaxDegree,
	}
}

// Parameters is a read-only structure for PLONK parameters.
type Parameters struct {
	maxDegree int
}

// MaxDegree returns the maximum degree of committed polynomials.
func (p Parameters) MaxDegree() int {
	return p.maxDegree
}

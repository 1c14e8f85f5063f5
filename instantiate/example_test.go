// SPDX-License-Identifier: MIT
// Package instantiate_test: runnable documentation examples.

package instantiate_test

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/katalvlaran/qsynth/circuit"
	"github.com/katalvlaran/qsynth/gate"
	"github.com/katalvlaran/qsynth/instantiate"
	"github.com/katalvlaran/qsynth/unitary"
)

// ExampleSweep_Instantiate instantiates a single dense gate against Pauli-X
// and checks the result reproduces the target.
func ExampleSweep_Instantiate() {
	c, err := circuit.New(1)
	if err != nil {
		log.Fatal(err)
	}
	vug, err := gate.NewVariableUnitary(1)
	if err != nil {
		log.Fatal(err)
	}
	if err = c.Append(vug, []int{0}, make([]float64, vug.NumParams())); err != nil {
		log.Fatal(err)
	}

	target, err := unitary.New([][]complex128{{0, 1}, {1, 0}})
	if err != nil {
		log.Fatal(err)
	}

	s := instantiate.NewSweep()
	x, err := s.Instantiate(c, target, make([]float64, c.NumParams()))
	if err != nil {
		log.Fatal(err)
	}

	u, err := c.UnitaryAt(x)
	if err != nil {
		log.Fatal(err)
	}
	dist, err := u.DistanceFrom(target)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("converged:", dist < 1e-8)
	// Output:
	// converged: true
}

// ExampleGenStartingPoints draws reproducible multistart vectors for a
// circuit under an explicit seed.
func ExampleGenStartingPoints() {
	c, err := circuit.New(1)
	if err != nil {
		log.Fatal(err)
	}
	vug, err := gate.NewVariableUnitary(1)
	if err != nil {
		log.Fatal(err)
	}
	if err = c.Append(vug, []int{0}, make([]float64, vug.NumParams())); err != nil {
		log.Fatal(err)
	}

	points, err := instantiate.GenStartingPoints(rand.New(rand.NewSource(1)), 3, c)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("starts:", len(points), "params each:", len(points[0]))
	// Output:
	// starts: 3 params each: 8
}

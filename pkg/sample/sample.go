// Package sample generates the data sets scattered by the demo programs.
package sample

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Normal returns n draws from the standard normal distribution. The same
// seed gives the same values.
func Normal(n int, seed uint64) []float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: 1,
		Src:   rand.NewSource(seed),
	}

	vs := make([]float64, n)
	for i := range vs {
		vs[i] = dist.Rand()
	}
	return vs
}

// Index returns 0, 1, ..., n-1 as floats, the x values of a series plotted
// against its position.
func Index(n int) []float64 {
	vs := make([]float64, n)
	for i := range vs {
		vs[i] = float64(i)
	}
	return vs
}

package datastructure

import (
	"math"

	"github.com/rotax-engine/rotax/pkg"
)

func Eq(a, b float64) bool {
	return math.Abs(a-b) <= pkg.EPS
}

func Lt(a, b float64) bool {
	return a+pkg.EPS < b
}

func Ge(a, b float64) bool {
	return !Lt(a, b)
}

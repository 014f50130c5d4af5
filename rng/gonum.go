// SPDX-License-Identifier: MIT
// Package: contactnet/rng
//
// gonum.go - Source implementation over gonum.org/v1/gonum/stat/distuv.

package rng

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Gonum draws from gonum distuv distributions sharing one rand.Source.
type Gonum struct {
	src    rand.Source
	normal distuv.Normal
}

// New returns a Gonum source configured by opts.
// Complexity: O(len(opts)).
func New(opts ...Option) *Gonum {
	c := newConfig(opts...)
	return &Gonum{
		src:    c.src,
		normal: distuv.Normal{Mu: 0, Sigma: 1, Src: c.src},
	}
}

// Normal fills buf with N(0,1) draws. Complexity: O(len(buf)).
func (g *Gonum) Normal(buf []float64) {
	for i := range buf {
		buf[i] = g.normal.Rand()
	}
}

// Poisson returns a Poisson(mean) draw. NaN, infinite and non-positive
// means return 0 without consuming the stream. Draws beyond math.MaxInt
// saturate at math.MaxInt.
func (g *Gonum) Poisson(mean float64) int {
	if !(mean > 0) || math.IsInf(mean, 1) {
		return 0
	}
	p := distuv.Poisson{Lambda: mean, Src: g.src}
	k := p.Rand()
	// float→int conversion is undefined beyond MaxInt
	if math.IsNaN(k) || k >= float64(math.MaxInt) {
		return math.MaxInt
	}
	return int(k)
}

// Uniform returns a draw from [low, high]. Reversed bounds are swapped and
// an empty range returns low.
func (g *Gonum) Uniform(low, high float64) float64 {
	if high < low {
		low, high = high, low
	}
	if low == high {
		return low
	}
	u := distuv.Uniform{Min: low, Max: high, Src: g.src}
	return u.Rand()
}

// Compile-time check.
var _ Source = (*Gonum)(nil)

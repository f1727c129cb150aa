// Package rootfind implements the Regula-Falsi (false position) method for
// bracketed single-variable root-finding.
package rootfind

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for solver failures.
var (
	// ErrNoSignChange indicates the bracket endpoints have the same sign.
	ErrNoSignChange = errors.New("rootfind: bracket does not contain a sign change")

	// ErrMaxIterations indicates the iteration cap was reached before the
	// residual dropped below tolerance.
	ErrMaxIterations = errors.New("rootfind: iteration cap exceeded")

	// ErrFlatBracket indicates the secant denominator vanished, so no
	// further interpolation step exists.
	ErrFlatBracket = errors.New("rootfind: bracket endpoints evaluate equal")
)

// ConvergenceError wraps a solver failure with bracket context.
type ConvergenceError struct {
	Lo, Hi     float64
	Iterations int
	Residual   float64
	Wrapped    error
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%v (bracket [%g, %g], %d iterations, residual %g)",
		e.Wrapped, e.Lo, e.Hi, e.Iterations, e.Residual)
}

func (e *ConvergenceError) Unwrap() error { return e.Wrapped }

const (
	DefaultTolerance = 1e-6
	DefaultMaxIter   = 200
)

// Solver runs false-position iterations until the residual at the estimate
// drops below Tol, or MaxIter steps have been taken.
type Solver struct {
	Tol     float64
	MaxIter int
}

// New returns a solver with the given tolerance and the default iteration
// cap. Non-positive tolerance falls back to DefaultTolerance.
func New(tol float64) *Solver {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	return &Solver{Tol: tol, MaxIter: DefaultMaxIter}
}

// Root finds a root of f inside [lo, hi]. The bracket must straddle a sign
// change. Each step interpolates linearly between the endpoints,
//
//	t = (lo·f(hi) − hi·f(lo)) / (f(hi) − f(lo))
//
// and replaces the endpoint whose sign matches f(t), keeping the root
// bracketed. When the same endpoint survives two steps in a row its stored
// value is halved (the Illinois variant); plain false position pins one
// endpoint on convex profiles and converges only linearly, which on the
// log-shaped orbit equation can exhaust the iteration cap before reaching
// tolerance. Root is a pure function of its inputs.
func (s *Solver) Root(f func(float64) float64, lo, hi float64) (float64, error) {
	fLo := f(lo)
	fHi := f(hi)

	if fLo == 0 {
		return lo, nil
	}
	if fHi == 0 {
		return hi, nil
	}
	if fLo*fHi > 0 {
		return 0, &ConvergenceError{Lo: lo, Hi: hi, Wrapped: ErrNoSignChange}
	}

	maxIter := s.MaxIter
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}

	// +1 when hi was kept last step, -1 when lo was kept
	kept := 0

	var t, fT float64
	for i := 0; i < maxIter; i++ {
		if fHi == fLo {
			return 0, &ConvergenceError{Lo: lo, Hi: hi, Iterations: i, Residual: fT, Wrapped: ErrFlatBracket}
		}

		t = (lo*fHi - hi*fLo) / (fHi - fLo)
		fT = f(t)

		if math.Abs(fT) <= s.Tol {
			return t, nil
		}

		if fLo*fT < 0 {
			hi, fHi = t, fT
			if kept == -1 {
				fLo /= 2
			}
			kept = -1
		} else {
			lo, fLo = t, fT
			if kept == 1 {
				fHi /= 2
			}
			kept = 1
		}
	}

	return 0, &ConvergenceError{Lo: lo, Hi: hi, Iterations: maxIter, Residual: fT, Wrapped: ErrMaxIterations}
}

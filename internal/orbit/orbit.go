package orbit

import "math"

// Point is a single (prey, predator) sample on the traced orbit.
type Point struct {
	Prey     float64
	Predator float64
}

// IsValid reports whether both populations are finite and positive.
func (pt Point) IsValid() bool {
	for _, v := range []float64{pt.Prey, pt.Predator} {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Orbit is the implicit relation satisfied by the closed trajectory through
// the initial populations:
//
//	F(x, y) = α·ln y + γ·ln x − β·y − δ·x − K = 0
//
// where K is the value of the conserved quantity at (Prey0, Predator0).
type Orbit struct {
	p Params
	k float64
}

// New builds the orbit through p's initial populations.
func New(p Params) (*Orbit, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	o := &Orbit{p: p}
	o.k = o.invariant(p.Prey0, p.Predator0)
	return o, nil
}

func (o *Orbit) invariant(x, y float64) float64 {
	return o.p.Growth*math.Log(y) + o.p.Death*math.Log(x) -
		o.p.Predation*y - o.p.Conversion*x
}

// Eval returns F(x, y); it is zero exactly on the orbit, positive inside it
// and negative outside.
func (o *Orbit) Eval(x, y float64) float64 {
	return o.invariant(x, y) - o.k
}

// K returns the conserved-quantity value fixed by the initial populations.
func (o *Orbit) K() float64 { return o.k }

// Params returns a copy of the model parameters.
func (o *Orbit) Params() Params { return o.p }

// Center returns the equilibrium point (γ/δ, α/β). F attains its maximum
// there, so both centerlines cross the orbit exactly twice.
func (o *Orbit) Center() (x, y float64) {
	return o.p.Death / o.p.Conversion, o.p.Growth / o.p.Predation
}

// AtPrey fixes the prey population and returns F as a function of the
// predator population, ready for a bracketed root solver.
func (o *Orbit) AtPrey(x float64) func(float64) float64 {
	return func(y float64) float64 { return o.Eval(x, y) }
}

// AtPredator fixes the predator population and returns F as a function of
// the prey population.
func (o *Orbit) AtPredator(y float64) func(float64) float64 {
	return func(x float64) float64 { return o.Eval(x, y) }
}

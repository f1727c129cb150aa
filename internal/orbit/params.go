package orbit

import "fmt"

// Params holds the Lotka-Volterra coefficients and initial populations.
// Values are fixed at construction; the tracer never mutates them.
type Params struct {
	Growth     float64 // prey growth rate (alpha)
	Predation  float64 // predation rate (beta)
	Death      float64 // predator death rate (gamma)
	Conversion float64 // predator growth per consumed prey (delta)
	Prey0      float64 // initial prey population
	Predator0  float64 // initial predator population
}

// DefaultParams returns the reference parameter set: a stable regime with
// equilibrium at (20, 10) and initial populations (50, 40).
func DefaultParams() Params {
	return Params{
		Growth:     1.0,
		Predation:  0.1,
		Death:      1.5,
		Conversion: 0.075,
		Prey0:      50,
		Predator0:  40,
	}
}

// Validate checks that every coefficient and both initial populations are
// positive reals.
func (p Params) Validate() error {
	fields := []struct {
		name string
		val  float64
	}{
		{"growth", p.Growth},
		{"predation", p.Predation},
		{"death", p.Death},
		{"conversion", p.Conversion},
		{"prey0", p.Prey0},
		{"predator0", p.Predator0},
	}
	for _, f := range fields {
		if f.val <= 0 {
			return fmt.Errorf("%w: %s = %g", ErrParameterBounds, f.name, f.val)
		}
	}
	return nil
}

// Package orbit defines the Lotka-Volterra model and its conserved quantity.
//
// The predator-prey system
//
//	dx/dt = αx − βxy
//	dy/dt = δxy − γy
//
// admits a first integral F(x, y) = α·ln y + γ·ln x − βy − δx. Every closed
// trajectory satisfies F(x, y) = K for the K fixed by its initial
// populations, so the orbit can be recovered by root-finding on F instead of
// integrating the equations in time.
//
//   - [Params]: the four coefficients plus initial populations
//   - [Orbit]: the implicit relation F(x, y) − K = 0
//   - [Point]: a (prey, predator) pair on the traced orbit
package orbit

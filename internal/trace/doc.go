// Package trace recovers the closed Lotka-Volterra orbit by bracketed
// root-finding instead of time integration.
//
// The tracer first locates the orbit's extreme populations along the two
// centerlines through the equilibrium, then splits the bounding box into
// four quadrants and sweeps each one column by column, solving the implicit
// orbit equation for the remaining coordinate with Regula-Falsi.
package trace

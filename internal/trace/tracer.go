package trace

import (
	"context"
	"errors"
	"fmt"

	"github.com/san-kum/lvorbit/internal/orbit"
	"github.com/san-kum/lvorbit/internal/rootfind"
)

const (
	// DefaultStep is the sweep increment along the domain axis, in
	// population units per column.
	DefaultStep = 0.01

	// lowerBracket is the near-zero start of the lower root brackets;
	// the orbit equation diverges to -inf at the axes.
	lowerBracket = 1e-4

	// maxExpand caps the geometric bracket expansion above the center.
	maxExpand = 64
)

// Bounds holds the extreme populations reached on the closed orbit.
type Bounds struct {
	PreyMin, PreyMax         float64
	PredatorMin, PredatorMax float64
}

// Trajectory is the traced orbit: the four per-quadrant branches plus the
// combined point sequence, seeded with the four extreme points.
type Trajectory struct {
	K         float64
	Bounds    Bounds
	Quadrants [4][]orbit.Point
	Points    []orbit.Point
}

// Tracer computes orbit trajectories for one model. It holds no mutable
// state between calls; tracing twice with identical inputs yields identical
// trajectories.
type Tracer struct {
	orb    *orbit.Orbit
	solver *rootfind.Solver
	step   float64
}

// New returns a tracer over o using the given solver. A non-positive step
// falls back to DefaultStep.
func New(o *orbit.Orbit, solver *rootfind.Solver, step float64) *Tracer {
	if step <= 0 {
		step = DefaultStep
	}
	return &Tracer{orb: o, solver: solver, step: step}
}

// Bounds finds the orbit's extreme populations. Each extreme is a root of
// the orbit equation along a centerline through the equilibrium, where the
// equation attains its maximum: the lower root is bracketed against
// lowerBracket, the upper one against a geometrically expanded endpoint.
func (t *Tracer) Bounds(ctx context.Context) (Bounds, error) {
	if err := ctx.Err(); err != nil {
		return Bounds{}, err
	}

	xc, yc := t.orb.Center()

	xMin, err := t.solver.Root(t.orb.AtPredator(yc), lowerBracket, xc)
	if err != nil {
		return Bounds{}, fmt.Errorf("prey minimum: %w", err)
	}
	xMax, err := t.rootAbove(t.orb.AtPredator(yc), xc)
	if err != nil {
		return Bounds{}, fmt.Errorf("prey maximum: %w", err)
	}

	yMin, err := t.solver.Root(t.orb.AtPrey(xc), lowerBracket, yc)
	if err != nil {
		return Bounds{}, fmt.Errorf("predator minimum: %w", err)
	}
	yMax, err := t.rootAbove(t.orb.AtPrey(xc), yc)
	if err != nil {
		return Bounds{}, fmt.Errorf("predator maximum: %w", err)
	}

	return Bounds{PreyMin: xMin, PreyMax: xMax, PredatorMin: yMin, PredatorMax: yMax}, nil
}

// rootAbove brackets the root to the right of lo by doubling the upper
// endpoint until the orbit equation turns negative, then solves.
func (t *Tracer) rootAbove(f func(float64) float64, lo float64) (float64, error) {
	hi := lo * 2
	for i := 0; i < maxExpand && f(hi) > 0; i++ {
		hi *= 2
	}
	return t.solver.Root(f, lo, hi)
}

// Trace computes the full orbit. The bounding box around the equilibrium is
// split into four quadrants; each quadrant is swept along the prey axis and
// the predator value is solved per column. Columns whose bracket lies
// outside the orbit are skipped.
func (t *Tracer) Trace(ctx context.Context) (*Trajectory, error) {
	b, err := t.Bounds(ctx)
	if err != nil {
		return nil, err
	}

	xc, yc := t.orb.Center()

	traj := &Trajectory{K: t.orb.K(), Bounds: b}

	// The extreme points are known exactly; seed them so the combined
	// sequence always closes at the centerlines.
	traj.Points = append(traj.Points,
		orbit.Point{Prey: xc, Predator: b.PredatorMin},
		orbit.Point{Prey: xc, Predator: b.PredatorMax},
		orbit.Point{Prey: b.PreyMin, Predator: yc},
		orbit.Point{Prey: b.PreyMax, Predator: yc},
	)

	regions := [4]struct {
		domLo, domHi float64
		ranLo, ranHi float64
	}{
		{xc, b.PreyMax, yc, b.PredatorMax},
		{b.PreyMin, xc, yc, b.PredatorMax},
		{b.PreyMin, xc, b.PredatorMin, yc},
		{xc, b.PreyMax, b.PredatorMin, yc},
	}

	for i, r := range regions {
		pts, err := t.sweep(ctx, r.domLo, r.domHi, r.ranLo, r.ranHi)
		if err != nil {
			return nil, err
		}
		traj.Quadrants[i] = pts
		traj.Points = append(traj.Points, pts...)
	}

	return traj, nil
}

// sweep walks the prey axis from domLo to domHi and solves the predator
// value inside [ranLo, ranHi] at each column.
func (t *Tracer) sweep(ctx context.Context, domLo, domHi, ranLo, ranHi float64) ([]orbit.Point, error) {
	pts := make([]orbit.Point, 0, int((domHi-domLo)/t.step)+1)

	for i := 0; ; i++ {
		d := domLo + float64(i)*t.step
		if d > domHi {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		r, err := t.solver.Root(t.orb.AtPrey(d), ranLo, ranHi)
		if err != nil {
			// Near the turning points the column no longer crosses
			// the orbit inside this quadrant.
			if errors.Is(err, rootfind.ErrNoSignChange) {
				continue
			}
			return nil, err
		}

		if r < ranLo || r > ranHi {
			continue
		}
		pts = append(pts, orbit.Point{Prey: d, Predator: r})
	}

	return pts, nil
}

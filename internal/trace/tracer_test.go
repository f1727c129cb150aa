package trace_test

import (
	"context"
	"errors"
	"math"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lvorbit/internal/config"
	"github.com/san-kum/lvorbit/internal/orbit"
	"github.com/san-kum/lvorbit/internal/plot"
	"github.com/san-kum/lvorbit/internal/rootfind"
	"github.com/san-kum/lvorbit/internal/trace"
)

var _ = Describe("Tracer", func() {
	const tol = 1e-6

	var (
		orb    *orbit.Orbit
		tracer *trace.Tracer
	)

	BeforeEach(func() {
		var err error
		orb, err = orbit.New(orbit.DefaultParams())
		Expect(err).NotTo(HaveOccurred())
		tracer = trace.New(orb, rootfind.New(tol), 0.05)
	})

	Describe("Bounds", func() {
		It("straddles the equilibrium on both axes", func() {
			b, err := tracer.Bounds(context.Background())
			Expect(err).NotTo(HaveOccurred())

			xc, yc := orb.Center()
			Expect(b.PreyMin).To(BeNumerically(">", 0))
			Expect(b.PreyMin).To(BeNumerically("<", xc))
			Expect(b.PreyMax).To(BeNumerically(">", xc))
			Expect(b.PredatorMin).To(BeNumerically(">", 0))
			Expect(b.PredatorMin).To(BeNumerically("<", yc))
			Expect(b.PredatorMax).To(BeNumerically(">", yc))
		})

		It("contains the initial populations", func() {
			b, err := tracer.Bounds(context.Background())
			Expect(err).NotTo(HaveOccurred())

			p := orb.Params()
			Expect(p.Prey0).To(And(
				BeNumerically(">=", b.PreyMin-tol),
				BeNumerically("<=", b.PreyMax+tol),
			))
			Expect(p.Predator0).To(And(
				BeNumerically(">=", b.PredatorMin-tol),
				BeNumerically("<=", b.PredatorMax+tol),
			))
		})
	})

	Describe("Trace", func() {
		It("returns a non-empty trajectory of positive populations", func() {
			traj, err := tracer.Trace(context.Background())
			Expect(err).NotTo(HaveOccurred())

			Expect(traj.Points).NotTo(BeEmpty())
			for _, pt := range traj.Points {
				Expect(pt.IsValid()).To(BeTrue(), "point (%v, %v)", pt.Prey, pt.Predator)
			}
		})

		It("keeps every point on the conserved-quantity level set", func() {
			traj, err := tracer.Trace(context.Background())
			Expect(err).NotTo(HaveOccurred())

			for _, pt := range traj.Points {
				Expect(math.Abs(orb.Eval(pt.Prey, pt.Predator))).To(BeNumerically("<=", tol))
			}
		})

		It("covers all four quadrants of the orbit", func() {
			traj, err := tracer.Trace(context.Background())
			Expect(err).NotTo(HaveOccurred())

			for i, q := range traj.Quadrants {
				Expect(q).NotTo(BeEmpty(), "quadrant %d", i+1)
			}
		})

		It("completes at the default sweep step", func() {
			// The fine step reaches columns near the turning points,
			// where the vertical bracket pins one endpoint far from
			// the root and the solver must not stall.
			fine := trace.New(orb, rootfind.New(tol), trace.DefaultStep)

			traj, err := fine.Trace(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(traj.Points).NotTo(BeEmpty())
			for _, pt := range traj.Points {
				Expect(math.Abs(orb.Eval(pt.Prey, pt.Predator))).To(BeNumerically("<=", tol))
			}
		})

		It("is idempotent", func() {
			first, err := tracer.Trace(context.Background())
			Expect(err).NotTo(HaveOccurred())
			second, err := tracer.Trace(context.Background())
			Expect(err).NotTo(HaveOccurred())

			Expect(second).To(Equal(first))
		})

		It("fails with a convergence error when the tolerance is unreachable", func() {
			strict := trace.New(orb, &rootfind.Solver{Tol: 1e-300, MaxIter: 50}, 0.05)

			_, err := strict.Trace(context.Background())
			Expect(err).To(MatchError(rootfind.ErrMaxIterations))

			var convErr *rootfind.ConvergenceError
			Expect(errors.As(err, &convErr)).To(BeTrue())
			Expect(convErr.Iterations).To(Equal(50))
		})

		It("aborts on context cancellation", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := tracer.Trace(ctx)
			Expect(err).To(MatchError(context.Canceled))
		})
	})

	Describe("end to end", func() {
		It("produces a closed orbit and a non-empty plot file", func() {
			traj, err := tracer.Trace(context.Background())
			Expect(err).NotTo(HaveOccurred())

			dir := GinkgoT().TempDir()
			path, err := plot.NewRenderer(dir, 320, 320).Render("x50y40", "Predator (y) vs Prey (x)", traj.Points)
			Expect(err).NotTo(HaveOccurred())

			info, err := os.Stat(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Size()).To(BeNumerically(">", 0))
		})

		It("traces the coursework coefficients and writes a plot", func() {
			cfg := config.GetPreset("classic")
			Expect(cfg).NotTo(BeNil())

			classic, err := orbit.New(cfg.ParamsFor(cfg.Runs[0]))
			Expect(err).NotTo(HaveOccurred())

			traj, err := trace.New(classic, rootfind.New(cfg.Tolerance), cfg.Step).Trace(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(traj.Points).NotTo(BeEmpty())
			for _, pt := range traj.Points {
				Expect(pt.IsValid()).To(BeTrue())
			}

			dir := GinkgoT().TempDir()
			path, err := plot.NewRenderer(dir, 320, 320).Render("x20y50", "Predator (y) vs Prey (x)", traj.Points)
			Expect(err).NotTo(HaveOccurred())

			info, err := os.Stat(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Size()).To(BeNumerically(">", 0))
		})
	})
})

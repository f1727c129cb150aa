package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/lvorbit/internal/config"
	"github.com/san-kum/lvorbit/internal/orbit"
	"github.com/san-kum/lvorbit/internal/plot"
	"github.com/san-kum/lvorbit/internal/rootfind"
	"github.com/san-kum/lvorbit/internal/trace"
	"github.com/san-kum/lvorbit/internal/viz"
)

var (
	configFile string
	preset     string
	outDir     string
	tolerance  float64
	step       float64
)

// main registers the lvorbit commands. The root command needs no arguments:
// it traces the configured orbits and writes the plot files.
func main() {
	rootCmd := &cobra.Command{
		Use:   "lvorbit",
		Short: "lotka-volterra phase portraits via regula-falsi",
		RunE:  runTrace,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.Flags().StringVar(&outDir, "out", "", "plot output directory")
	rootCmd.Flags().Float64Var(&tolerance, "tolerance", 0, "root-finding tolerance")
	rootCmd.Flags().Float64Var(&step, "step", 0, "sweep step (population units per column)")

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "interactive orbit viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			p := tea.NewProgram(viz.NewModel(cfg))
			_, err = p.Run()
			return err
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(viewCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override config
	if cmd.Flags().Changed("out") {
		cfg.OutDir = outDir
	}
	if cmd.Flags().Changed("tolerance") {
		cfg.Tolerance = tolerance
	}
	if cmd.Flags().Changed("step") {
		cfg.Step = step
	}

	return cfg, nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	renderer := plot.NewRenderer(cfg.OutDir, cfg.Width, cfg.Height)
	solver := rootfind.New(cfg.Tolerance)

	var combined []orbit.Point

	for _, run := range cfg.Runs {
		orb, err := orbit.New(cfg.ParamsFor(run))
		if err != nil {
			return err
		}

		fmt.Printf("tracing orbit through (%g, %g)...\n", run.Prey, run.Predator)
		start := time.Now()

		traj, err := trace.New(orb, solver, cfg.Step).Trace(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("completed in %v\n", time.Since(start).Round(time.Millisecond))
		fmt.Printf("K: %.6f\n", traj.K)
		fmt.Printf("prey bounds: [%.4f, %.4f]\n", traj.Bounds.PreyMin, traj.Bounds.PreyMax)
		fmt.Printf("predator bounds: [%.4f, %.4f]\n", traj.Bounds.PredatorMin, traj.Bounds.PredatorMax)
		fmt.Printf("points: %d\n", len(traj.Points))

		base := fmt.Sprintf("x%gy%g", run.Prey, run.Predator)
		for i, q := range traj.Quadrants {
			if len(q) == 0 {
				continue
			}
			if _, err := renderer.Render(fmt.Sprintf("%s-%d", base, i+1), fmt.Sprintf("Predator (y) vs Prey (x), quadrant %d", i+1), q); err != nil {
				return err
			}
		}

		path, err := renderer.Render(base, "Predator (y) vs Prey (x)", traj.Points)
		if err != nil {
			return err
		}
		fmt.Printf("plot: %s\n\n", path)

		fmt.Println(plot.Portrait(traj.Points))
		fmt.Println(plot.BranchGraph(traj.Quadrants[0], "upper branch, predator vs prey"))
		fmt.Println()

		combined = append(combined, traj.Points...)
	}

	if len(cfg.Runs) > 1 {
		path, err := renderer.Render("combined-plot", "Predator (y) vs Prey (x), all orbits", combined)
		if err != nil {
			return err
		}
		fmt.Printf("combined plot: %s\n", path)
	}

	return nil
}

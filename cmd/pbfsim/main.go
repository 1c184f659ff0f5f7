package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/pbf/internal/analysis"
	"github.com/san-kum/pbf/internal/config"
	"github.com/san-kum/pbf/internal/experiment"
	"github.com/san-kum/pbf/internal/metrics"
	"github.com/san-kum/pbf/internal/pbf"
	"github.com/san-kum/pbf/internal/store"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	configFile string
	preset     string
	frameRate  int
)

// main is the entry point for the pbfsim CLI; it registers the run,
// live, scenes, and bench subcommands and executes the root command.
func main() {
	rootCmd := &cobra.Command{
		Use:   "pbfsim",
		Short: "position-based fluids simulation lab",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".pbfsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scene]",
		Short: "run a simulation to completion and save the result",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep in seconds")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration in seconds")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use a named preset")

	liveCmd := &cobra.Command{
		Use:   "live [scene]",
		Short: "run a simulation with a live terminal status view",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep in seconds")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "UI refresh rate")

	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "list built-in scenes and their presets",
		RunE:  listScenes,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [scene]",
		Short: "benchmark a scene across several timesteps",
		Args:  cobra.ExactArgs(1),
		RunE:  benchScene,
	}

	rootCmd.AddCommand(runCmd, liveCmd, scenesCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func resolveRunConfig(sceneName string) (*config.Config, error) {
	registry := experiment.NewRegistry()
	sceneID, err := registry.SceneID(sceneName)
	if err != nil {
		return nil, err
	}

	cfg := &config.Config{Scene: sceneID, Dt: dt, Duration: duration}

	if preset != "" {
		p := config.GetPreset(sceneName, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q for scene %q (available: %v)", preset, sceneName, config.ListPresets(sceneName))
		}
		cfg = p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
		cfg.Scene = sceneID
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	sceneName := args[0]
	cfg, err := resolveRunConfig(sceneName)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	energy := metrics.NewSeries("kinetic_energy_series")
	ms := append(experiment.DefaultMetrics(), energy)

	exp := experiment.New(experiment.Config{
		SceneID:  cfg.Scene,
		Dt:       cfg.Dt,
		Duration: cfg.Duration,
		Tunables: cfg.Apply(pbf.DefaultTunables()),
	})
	if err := exp.Setup(ms); err != nil {
		return err
	}

	fmt.Printf("running scene %q (dt=%.4f, duration=%.1fs)...\n", sceneName, cfg.Dt, cfg.Duration)
	start := time.Now()
	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Scene, cfg.Dt, cfg.Duration, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n\n", result.StepsTaken)

	fmt.Println("metrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	if series := energy.Values(); len(series) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(series, asciigraph.Height(10), asciigraph.Width(70), asciigraph.Caption("kinetic energy")))
	}

	if cfg.Scene == 1 {
		if freq := analysis.SloshFrequency(energy.Values(), cfg.Dt); freq > 0 {
			fmt.Printf("\ndominant slosh frequency: %.3f hz (period %.3fs)\n", freq, 1.0/freq)
		}
	}

	return nil
}

func listScenes(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENE\tPRESETS")
	for _, name := range registry.ListScenes() {
		presets := config.ListPresets(name)
		fmt.Fprintf(w, "%s\t%v\n", name, presets)
	}
	return w.Flush()
}

func benchScene(cmd *cobra.Command, args []string) error {
	sceneName := args[0]
	registry := experiment.NewRegistry()
	sceneID, err := registry.SceneID(sceneName)
	if err != nil {
		return err
	}

	durations := []float64{1.0, 2.0}
	dts := []float64{1.0 / 100, 1.0 / 200, 1.0 / 400}

	fmt.Printf("benchmarking scene %q\n\n", sceneName)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DURATION\tDT\tSTEPS\tTIME\tSTEPS/SEC")

	for _, dur := range durations {
		for _, stepDt := range dts {
			exp := experiment.New(experiment.Config{
				SceneID:  sceneID,
				Dt:       stepDt,
				Duration: dur,
				Tunables: pbf.DefaultTunables(),
			})
			if err := exp.Setup(nil); err != nil {
				return err
			}

			start := time.Now()
			result, err := exp.Run(context.Background())
			if err != nil {
				return err
			}
			elapsed := time.Since(start)
			stepsPerSec := float64(result.StepsTaken) / elapsed.Seconds()

			fmt.Fprintf(w, "%.1fs\t%.4fs\t%d\t%v\t%.0f\n", dur, stepDt, result.StepsTaken, elapsed, stepsPerSec)
		}
	}

	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	sceneName := args[0]
	registry := experiment.NewRegistry()
	sceneID, err := registry.SceneID(sceneName)
	if err != nil {
		return err
	}

	sim := pbf.New()
	sim.SetSceneID(sceneID)
	if err := sim.ResetSystem(); err != nil {
		return err
	}

	m := newLiveModel(sim, dt, sceneName, frameRate)
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}

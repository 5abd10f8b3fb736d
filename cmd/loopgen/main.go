package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/loopgen/internal/analysis"
	"github.com/san-kum/loopgen/internal/api"
	"github.com/san-kum/loopgen/internal/config"
	"github.com/san-kum/loopgen/internal/export"
	"github.com/san-kum/loopgen/internal/loop"
	"github.com/san-kum/loopgen/internal/metrics"
	"github.com/san-kum/loopgen/internal/oscil"
	"github.com/san-kum/loopgen/internal/storage"
	"github.com/san-kum/loopgen/internal/sweep"
	"github.com/san-kum/loopgen/internal/viz"
)

var (
	dataDir  string
	duration float64
	frames   int
	radius   float64
	centerX  float64
	centerY  float64
	phase0   float64
	loops    int
	inertia  float64
	stiff    float64
	fluidity float64
	softness float64
	warmup   float64
	// Input sources
	configFile string
	preset     string
	// Output
	outPath  string
	animName string
	// plot
	plotWidth    int
	plotHeight   int
	showSpectrum bool
	// sweep
	gridSize int
	// serve
	addr string
	// check
	tolerance float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "loopgen",
		Short: "seamless damped-oscillator loop generator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".loopgen", "data directory")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "generate a loop and store it",
		RunE:  runGenerate,
	}
	addInputFlags(generateCmd)

	keyframesCmd := &cobra.Command{
		Use:   "keyframes",
		Short: "export a loop as CSS keyframes",
		RunE:  runKeyframes,
	}
	addInputFlags(keyframesCmd)
	keyframesCmd.Flags().StringVar(&outPath, "out", "-", "output file or '-' for stdout")
	keyframesCmd.Flags().StringVar(&animName, "name", "loopgen", "animation name")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "export a loop as JSON",
		RunE:  runExportJSON,
	}
	addInputFlags(exportJSONCmd)
	exportJSONCmd.Flags().StringVar(&outPath, "out", "-", "output file or '-' for stdout")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "export a loop as CSV",
		RunE:  runExportCSV,
	}
	addInputFlags(exportCSVCmd)
	exportCSVCmd.Flags().StringVar(&outPath, "out", "-", "output file or '-' for stdout")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot the sampled angle and tracking error",
		RunE:  runPlot,
	}
	addInputFlags(plotCmd)
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 12, "plot height")
	plotCmd.Flags().BoolVar(&showSpectrum, "spectrum", false, "also plot the error power spectrum")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "replay the loop in the terminal",
		RunE:  runPlay,
	}
	addInputFlags(playCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "grid-sweep fluidity and softness, score by tracking error",
		RunE:  runSweep,
	}
	addInputFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&gridSize, "grid", 5, "grid points per axis")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "probe warm-up convergence",
		RunE:  runCheck,
	}
	addInputFlags(checkCmd)
	checkCmd.Flags().Float64Var(&tolerance, "tol", 1e-4, "convergence tolerance (rad)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  runList,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the loop generator over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return api.NewRouter().Run(addr)
		},
	}
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	rootCmd.AddCommand(generateCmd, keyframesCmd, exportJSONCmd, exportCSVCmd,
		plotCmd, playCmd, sweepCmd, checkCmd, listCmd, presetsCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&duration, "duration", loop.DefaultDuration, "period length (seconds)")
	cmd.Flags().IntVar(&frames, "frames", loop.DefaultFrames, "samples per period")
	cmd.Flags().Float64Var(&radius, "radius", loop.DefaultRadius, "path radius")
	cmd.Flags().Float64Var(&centerX, "center-x", 0, "path center x")
	cmd.Flags().Float64Var(&centerY, "center-y", 0, "path center y")
	cmd.Flags().Float64Var(&phase0, "phase0", 0, "initial reference phase (rad)")
	cmd.Flags().IntVar(&loops, "loops", 1, "reference turns per period")
	cmd.Flags().Float64Var(&inertia, "inertia", loop.DefaultInertia, "rotational inertia")
	cmd.Flags().Float64Var(&stiff, "stiffness", loop.DefaultStiffness, "spring stiffness")
	cmd.Flags().Float64Var(&fluidity, "fluidity", loop.DefaultFluidity, "damping knob, 0..1")
	cmd.Flags().Float64Var(&softness, "softness", loop.DefaultSoftness, "velocity softening, 0..1")
	cmd.Flags().Float64Var(&warmup, "warmup", loop.DefaultWarmup, "warm-up periods before sampling")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "preset name")
}

// buildInput resolves the generation input: preset or config file first,
// then explicit flags override individual fields.
func buildInput(cmd *cobra.Command) (loop.Input, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return loop.Input{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	} else if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return loop.Input{}, err
		}
		cfg = loaded
	}

	in := cfg.Input()

	flagOverrides := map[string]func(){
		"duration":  func() { in.Duration = duration },
		"frames":    func() { in.FrameCount = frames },
		"radius":    func() { in.Radius = radius },
		"center-x":  func() { in.CenterX = centerX },
		"center-y":  func() { in.CenterY = centerY },
		"phase0":    func() { in.Phase0 = phase0 },
		"loops":     func() { in.Loops = loops },
		"inertia":   func() { in.Inertia = inertia },
		"stiffness": func() { in.Stiffness = stiff },
		"fluidity":  func() { in.Fluidity = fluidity },
		"softness":  func() { in.Softness = softness },
		"warmup":    func() { in.WarmupPeriods = warmup },
	}
	for name, apply := range flagOverrides {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}

	return in, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	in, err := buildInput(cmd)
	if err != nil {
		return err
	}

	gen := loop.NewGenerator()
	ms := []metrics.Metric{
		metrics.NewTrackingError(),
		metrics.NewPeakSlip(),
		metrics.NewSettleTime(0.05),
	}
	for _, m := range ms {
		gen.AddObserver(m)
	}

	res := gen.Generate(in)

	values := make(map[string]float64, len(ms))
	for _, m := range ms {
		values[m.Name()] = m.Value()
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(in, res, values)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "run\t%s\n", runID)
	fmt.Fprintf(w, "period\t%.4fs\n", res.Period)
	fmt.Fprintf(w, "frames\t%d (+1 seam)\n", len(res.Samples))
	fmt.Fprintf(w, "damping\t%.4f (zeta=%.2f)\n", res.Params.Damping, dampingRatioOf(in))
	for _, m := range ms {
		fmt.Fprintf(w, "%s\t%.6f\n", m.Name(), m.Value())
	}
	return w.Flush()
}

func dampingRatioOf(in loop.Input) float64 {
	resolved, _ := loop.Resolve(in)
	return oscil.DampingRatio(resolved.Fluidity)
}

func runKeyframes(cmd *cobra.Command, args []string) error {
	in, err := buildInput(cmd)
	if err != nil {
		return err
	}
	res := loop.NewGenerator().Generate(in)
	kfs := export.Keyframes(res, in)
	return export.ExportCSS(outPath, animName, res.Period, kfs)
}

func runExportJSON(cmd *cobra.Command, args []string) error {
	in, err := buildInput(cmd)
	if err != nil {
		return err
	}
	res := loop.NewGenerator().Generate(in)
	return export.ExportJSON(outPath, export.NewDocument(res, in))
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	in, err := buildInput(cmd)
	if err != nil {
		return err
	}
	res := loop.NewGenerator().Generate(in)
	return export.ExportCSV(outPath, res)
}

func runPlot(cmd *cobra.Command, args []string) error {
	in, err := buildInput(cmd)
	if err != nil {
		return err
	}
	res := loop.NewGenerator().Generate(in)
	fmt.Println(viz.RenderAnglePlot(res, plotWidth, plotHeight))
	if showSpectrum {
		fmt.Println(viz.RenderSpectrumPlot(res, plotWidth, plotHeight))
	}
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	in, err := buildInput(cmd)
	if err != nil {
		return err
	}
	res := loop.NewGenerator().Generate(in)
	_, err = tea.NewProgram(viz.NewPlayer(res, in)).Run()
	return err
}

func runSweep(cmd *cobra.Command, args []string) error {
	in, err := buildInput(cmd)
	if err != nil {
		return err
	}

	grid := sweep.Grid{
		Fluidity: sweep.Range(0, 1, gridSize),
		Softness: sweep.Range(0, 1, gridSize),
	}
	cells := grid.Run(context.Background(), in, analysis.MeanSampleError)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "fluidity\tsoftness\tmean|err| (rad)")
	for _, c := range cells {
		fmt.Fprintf(w, "%.2f\t%.2f\t%.6f\n", c.Fluidity, c.Softness, c.Score)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	best := sweep.Best(cells)
	fmt.Printf("\nbest: fluidity=%.2f softness=%.2f score=%.6f\n", best.Fluidity, best.Softness, best.Score)
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	in, err := buildInput(cmd)
	if err != nil {
		return err
	}

	residual := analysis.WarmupResidual(in)
	fmt.Printf("warmup=%.1f periods, residual on samples[0].angle vs doubled warm-up: %.2e rad\n",
		in.WarmupPeriods, residual)
	if analysis.Converged(in, tolerance) {
		fmt.Println("converged: sampled period reflects the steady-state limit cycle")
	} else {
		fmt.Printf("not converged at tol=%.1e; increase --warmup\n", tolerance)
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\ttimestamp\tperiod\tframes\tfluidity\tsoftness")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.3fs\t%d\t%.2f\t%.2f\n",
			r.ID, r.Timestamp.Format("2006-01-02 15:04:05"), r.Period, r.Frames,
			r.Input.Fluidity, r.Input.Softness)
	}
	return w.Flush()
}

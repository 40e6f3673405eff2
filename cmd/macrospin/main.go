package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/macrospin/internal/config"
	"github.com/san-kum/macrospin/internal/export"
	"github.com/san-kum/macrospin/internal/llg"
	"github.com/san-kum/macrospin/internal/mallinson"
	"github.com/san-kum/macrospin/internal/storage"
	"github.com/san-kum/macrospin/internal/sweep"
	"github.com/san-kum/macrospin/internal/validate"
	"github.com/san-kum/macrospin/internal/viz"
)

var (
	dataDir    string
	hField     float64
	hkField    float64
	alpha      float64
	gamma      float64
	startAngle float64
	endAngle   float64
	steps      int
	configFile string
	preset     string
	outFile    string
	plotKind   string
	alphaList  string
	fieldList  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "macrospin",
		Short: "exact LLG macrospin switching solver",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".macrospin", "data directory")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "generate the exact switching trajectory",
		RunE:  runGenerate,
	}
	addExperimentFlags(generateCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&outFile, "out", "", "write a PNG instead of terminal output")
	plotCmd.Flags().StringVar(&plotKind, "kind", "polar", "plot kind: polar (vs time) or phase (azimuth vs polar)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export trajectory data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export trajectory plot to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outFile, "out", "trajectory.svg", "output file")
	exportSVGCmd.Flags().StringVar(&plotKind, "kind", "polar", "plot kind: polar or phase")

	importCmd := &cobra.Command{
		Use:   "import [csv_file]",
		Short: "import an externally integrated trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  importRun,
	}
	addExperimentFlags(importCmd)

	compareCmd := &cobra.Command{
		Use:   "compare [run_id]",
		Short: "compare a stored trajectory against the exact solution",
		Args:  cobra.ExactArgs(1),
		RunE:  compareRun,
	}

	validateCmd := &cobra.Command{
		Use:   "validate [run_id]",
		Short: "damping self-consistency check of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  validateRun,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "evaluate switching time across parameter sets",
		RunE:  runSweep,
	}
	addExperimentFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&alphaList, "alphas", "", "comma-separated damping values")
	sweepCmd.Flags().StringVar(&fieldList, "fields", "", "comma-separated applied-field values")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "terminal playback of the switching event",
		RunE:  runLive,
	}
	addExperimentFlags(liveCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list parameter presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tH\tHK\tALPHA\tGAMMA\tSTEPS")
			for _, name := range config.ListPresets() {
				c := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\t%d\n",
					name, c.Params.H, c.Params.Hk, c.Params.Alpha, c.Params.Gamma, c.Range.Steps)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(generateCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd,
		exportSVGCmd, importCmd, compareCmd, validateCmd, sweepCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addExperimentFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&hField, "h", config.DefaultH, "applied field magnitude")
	cmd.Flags().Float64Var(&hkField, "hk", config.DefaultHk, "anisotropy field magnitude")
	cmd.Flags().Float64Var(&alpha, "alpha", config.DefaultAlpha, "damping constant")
	cmd.Flags().Float64Var(&gamma, "gamma", config.DefaultGamma, "gyromagnetic ratio")
	cmd.Flags().Float64Var(&startAngle, "start", config.DefaultStartAngle, "start polar angle (rad)")
	cmd.Flags().Float64Var(&endAngle, "end", config.DefaultEndAngle, "end polar angle (rad)")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of polar samples")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig merges preset, config file and changed CLI flags, in that
// order of increasing precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("h") {
		cfg.Params.H = hField
	}
	if cmd.Flags().Changed("hk") {
		cfg.Params.Hk = hkField
	}
	if cmd.Flags().Changed("alpha") {
		cfg.Params.Alpha = alpha
	}
	if cmd.Flags().Changed("gamma") {
		cfg.Params.Gamma = gamma
	}
	if cmd.Flags().Changed("start") {
		cfg.Range.StartAngle = startAngle
	}
	if cmd.Flags().Changed("end") {
		cfg.Range.EndAngle = endAngle
	}
	if cmd.Flags().Changed("steps") {
		cfg.Range.Steps = steps
	}

	return cfg, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	params := cfg.MagParams()

	traj, err := mallinson.GenerateDynamics(params, cfg.SampleRange())
	if err != nil {
		return err
	}

	rep, err := validate.DampingConsistency(traj, params)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	meta := storage.RunMetadata{
		Source:     "analytic",
		H:          params.H,
		Hk:         params.Hk,
		Alpha:      params.Alpha,
		Gamma:      params.Gamma,
		StartAngle: cfg.Range.StartAngle,
		EndAngle:   cfg.Range.EndAngle,
		Metrics: map[string]float64{
			"total_time":         traj.Times[traj.Len()-1],
			"alpha_recovered":    rep.Mean,
			"alpha_max_dev":      rep.MaxDev,
			"alpha_dev_tol":      rep.Tol,
			"final_polar":        traj.Points[traj.Len()-1].Pol,
			"final_azimuth":      traj.Points[traj.Len()-1].Azi,
			"trajectory_samples": float64(traj.Len()),
		},
	}

	runID, err := st.Save(meta, traj)
	if err != nil {
		return err
	}

	fmt.Printf("generated exact dynamics for %s\n", params)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", traj.Len())
	fmt.Printf("switching time: %.6f\n", traj.Times[traj.Len()-1])
	fmt.Printf("damping self-consistency: mean %.6f, max dev %.2e (tol %.2e)\n",
		rep.Mean, rep.MaxDev, rep.Tol)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSOURCE\tTIME\tH\tHK\tALPHA\tSAMPLES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%g\t%g\t%d\n",
			run.ID,
			run.Source,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.H,
			run.Hk,
			run.Alpha,
			run.Steps,
		)
	}
	return w.Flush()
}

func loadRun(runID string) (*storage.RunMetadata, *llg.Trajectory, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	traj, err := st.LoadTrajectory(runID)
	if err != nil {
		return nil, nil, err
	}
	if traj.Len() == 0 {
		return nil, nil, fmt.Errorf("run %s has no trajectory data", runID)
	}
	return meta, traj, nil
}

func metaParams(meta *storage.RunMetadata) llg.MagParams {
	return llg.MagParams{
		H: meta.H, Hk: meta.Hk, Alpha: meta.Alpha, Gamma: meta.Gamma,
		Ms: 1.0, Mu0: 1.0,
	}
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, traj, err := loadRun(args[0])
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("out") {
		switch plotKind {
		case "phase":
			err = export.SaveAziVsPolar(traj, metaParams(meta), outFile)
		default:
			err = export.SavePolarVsTime(traj, metaParams(meta), outFile)
		}
		if err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outFile)
		return nil
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("params: %s\n", metaParams(meta))
	fmt.Printf("samples: %d\n\n", traj.Len())

	graph := asciigraph.Plot(traj.Polars(),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("polar angle (sample index follows time)"),
	)
	fmt.Println(graph)
	fmt.Println()

	graph = asciigraph.Plot(traj.Azimuths(),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("azimuth, wrapped to [0, 2pi)"),
	)
	fmt.Println(graph)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, traj, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return storage.ExportCSV(os.Stdout, traj)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, traj, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, *meta, traj)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	_, traj, err := loadRun(args[0])
	if err != nil {
		return err
	}

	var pts []export.Point
	switch plotKind {
	case "phase":
		pts = export.AziVsPolar(traj)
	default:
		pts = export.PolarVsTime(traj)
	}

	svg := export.SeriesToSVG(pts, 800, 500, "#00ff00")
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func importRun(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	params := cfg.MagParams()
	if err := params.Validate(); err != nil {
		return err
	}

	traj, err := storage.ReadTrajectoryCSV(args[0])
	if err != nil {
		return err
	}
	if traj.Len() == 0 {
		return fmt.Errorf("no trajectory rows in %s", args[0])
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	meta := storage.RunMetadata{
		Source: "imported",
		H:      params.H,
		Hk:     params.Hk,
		Alpha:  params.Alpha,
		Gamma:  params.Gamma,
	}
	runID, err := st.Save(meta, traj)
	if err != nil {
		return err
	}

	fmt.Printf("imported %d samples as run %s\n", traj.Len(), runID)
	return nil
}

func compareRun(cmd *cobra.Command, args []string) error {
	meta, traj, err := loadRun(args[0])
	if err != nil {
		return err
	}

	dev, err := validate.Compare(metaParams(meta), traj)
	if err != nil {
		return err
	}

	fmt.Printf("comparison against exact solution: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", dev.Samples)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "QUANTITY\tMAX ERR\tRMS ERR")
	fmt.Fprintf(w, "time\t%.3e\t%.3e\n", dev.MaxTimeErr, dev.RMSTimeErr)
	fmt.Fprintf(w, "azimuth\t%.3e\t%.3e\n", dev.MaxAziErr, dev.RMSAziErr)
	return w.Flush()
}

func validateRun(cmd *cobra.Command, args []string) error {
	meta, traj, err := loadRun(args[0])
	if err != nil {
		return err
	}

	rep, err := validate.DampingConsistency(traj, metaParams(meta))
	if err != nil {
		return err
	}

	fmt.Printf("damping self-consistency: %s\n", meta.ID)
	fmt.Printf("alpha: %.6f\n", rep.Alpha)
	fmt.Printf("recovered mean: %.6f (stddev %.2e)\n", rep.Mean, rep.StdDev)
	fmt.Printf("max deviation: %.3e (tolerance %.3e)\n", rep.MaxDev, rep.Tol)
	if rep.Pass {
		fmt.Println("result: PASS")
	} else {
		fmt.Println("result: FAIL")
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	base := cfg.MagParams()

	var jobs []sweep.Job
	switch {
	case alphaList != "":
		values, err := parseFloats(alphaList)
		if err != nil {
			return err
		}
		jobs = sweep.AlphaJobs(base, values)
	case fieldList != "":
		values, err := parseFloats(fieldList)
		if err != nil {
			return err
		}
		jobs = sweep.FieldJobs(base, values)
	default:
		return fmt.Errorf("one of --alphas or --fields is required")
	}

	outcomes := sweep.New(cfg.SampleRange()).Run(cmd.Context(), jobs)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSWITCHING TIME\tERROR")
	for _, out := range outcomes {
		if out.Err != nil {
			fmt.Fprintf(w, "%s\t-\t%v\n", out.Name, out.Err)
			continue
		}
		fmt.Fprintf(w, "%s\t%.6f\t\n", out.Name, out.SwitchingTime)
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	params := cfg.MagParams()

	traj, err := mallinson.GenerateDynamics(params, cfg.SampleRange())
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(params, traj))
	_, err = p.Run()
	return err
}

func parseFloats(list string) ([]float64, error) {
	parts := strings.Split(list, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("bad value %q: %w", part, err)
		}
		values = append(values, v)
	}
	return values, nil
}

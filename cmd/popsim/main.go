package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/popsim/internal/analysis"
	"github.com/san-kum/popsim/internal/chart"
	"github.com/san-kum/popsim/internal/config"
	"github.com/san-kum/popsim/internal/experiment"
	"github.com/san-kum/popsim/internal/models"
	"github.com/san-kum/popsim/internal/ode"
	"github.com/san-kum/popsim/internal/storage"
	"github.com/san-kum/popsim/internal/tui"
	"github.com/san-kum/popsim/internal/viz"
)

var (
	dataDir    string
	method     string
	tmin       float64
	tmax       float64
	step       float64
	eps        float64
	x0         string
	params     []string
	preset     string
	configFile string
	chartOut   string
	frameRate  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "popsim",
		Short: "population dynamics simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".popsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "run simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	chartCmd := &cobra.Command{
		Use:   "chart [run_id]",
		Short: "write run results as a PNG chart",
		Args:  cobra.ExactArgs(1),
		RunE:  chartRun,
	}
	chartCmd.Flags().StringVar(&chartOut, "out", "", "output file (default <run_id>.png)")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "run simulation and replay it as an animation",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "playback frame rate")

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list available models and their presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range models.Names() {
				presets := config.ListPresets(name)
				if len(presets) > 0 {
					fmt.Printf("%s (presets: %s)\n", name, strings.Join(presets, ", "))
				} else {
					fmt.Println(name)
				}
			}
		},
	}

	methodsCmd := &cobra.Command{
		Use:   "methods",
		Short: "list available step schemes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range ode.SchemeNames() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, chartCmd, exportCmd, liveCmd, modelsCmd, methodsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&method, "method", "rk4", "step scheme")
	cmd.Flags().Float64Var(&tmin, "tmin", 0, "start time")
	cmd.Flags().Float64Var(&tmax, "tmax", 10, "end time (exclusive)")
	cmd.Flags().Float64Var(&step, "step", ode.DefaultStep, "step size")
	cmd.Flags().Float64Var(&eps, "eps", ode.DefaultEps, "modeuler tolerance")
	cmd.Flags().StringVar(&x0, "x0", "", "initial state, comma separated")
	cmd.Flags().StringArrayVar(&params, "param", nil, "model parameter key=value (repeatable)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
}

func buildConfig(cmd *cobra.Command, model string) (experiment.Config, error) {
	base := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return experiment.Config{}, err
		}
		base = loaded
		if model == "" {
			model = base.Model
		}
	}

	if preset != "" {
		p := config.GetPreset(model, preset)
		if p == nil {
			return experiment.Config{}, fmt.Errorf("no preset %q for model %q (available: %s)",
				preset, model, strings.Join(config.ListPresets(model), ", "))
		}
		base = p
	}

	cfg := experiment.Config{
		Model:  model,
		Method: base.Method,
		X0:     base.X0,
		Tmin:   base.Tmin,
		Tmax:   base.Tmax,
		H:      base.H,
		Eps:    base.Eps,
		Params: models.Params(base.Params),
	}

	// explicit flags beat both presets and config files
	if cmd.Flags().Changed("method") {
		cfg.Method = method
	}
	if cmd.Flags().Changed("tmin") {
		cfg.Tmin = tmin
	}
	if cmd.Flags().Changed("tmax") {
		cfg.Tmax = tmax
	}
	if cmd.Flags().Changed("step") {
		cfg.H = step
	}
	if cmd.Flags().Changed("eps") {
		cfg.Eps = eps
	}
	if cmd.Flags().Changed("x0") {
		parsed, err := parseX0(x0)
		if err != nil {
			return experiment.Config{}, err
		}
		cfg.X0 = parsed
	}
	if len(params) > 0 {
		if cfg.Params == nil {
			cfg.Params = models.Params{}
		}
		for _, kv := range params {
			key, val, err := parseParam(kv)
			if err != nil {
				return experiment.Config{}, err
			}
			cfg.Params[key] = val
		}
	}

	return cfg, nil
}

func parseX0(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad x0 entry %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseParam(kv string) (string, float64, error) {
	key, val, ok := strings.Cut(kv, "=")
	if !ok {
		return "", 0, fmt.Errorf("bad param %q, expected key=value", kv)
	}
	v, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return "", 0, fmt.Errorf("bad param value %q: %w", val, err)
	}
	return strings.ToLower(strings.TrimSpace(key)), v, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running %s with %s...\n", cfg.Model, cfg.Method)
	start := time.Now()

	result, err := experiment.Run(cfg)
	if err != nil {
		return err
	}

	runID, err := st.Save(cfg, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", len(result.Trajectory))

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COMPARTMENT\tMIN\tMAX\tMEAN\tFINAL")
	for _, s := range analysis.Summarize(result) {
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\t%.4f\n", s.Label, s.Min, s.Max, s.Mean, s.Final)
	}
	return w.Flush()
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
	fmt.Fprintln(w, "ID\tMODEL\tMETHOD\tTIME\tSPAN\tSTEP\tSAMPLES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t[%g,%g)\t%g\t%d\n",
			run.ID,
			run.Model,
			run.Method,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Tmin, run.Tmax,
			run.H,
			run.Samples,
		)
	}
	return w.Flush()
}

func loadResult(runID string) (*storage.RunMetadata, *experiment.Result, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	times, states, err := st.LoadTrajectory(runID)
	if err != nil {
		return nil, nil, err
	}
	return meta, &experiment.Result{
		Times:      times,
		Trajectory: states,
		Labels:     meta.Labels,
	}, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, result, err := loadResult(args[0])
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s (%s, %d samples)", meta.Model, meta.Method, meta.Samples)
	fmt.Print(viz.PlotAll(result, title))
	return nil
}

func chartRun(cmd *cobra.Command, args []string) error {
	meta, result, err := loadResult(args[0])
	if err != nil {
		return err
	}

	out := chartOut
	if out == "" {
		out = meta.ID + ".png"
	}
	if err := chart.WritePNG(out, meta.Model, result); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[0])
	if err != nil {
		return err
	}

	result, err := experiment.Run(cfg)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s (%s)", cfg.Model, cfg.Method)
	return tui.Run(title, result, frameRate)
}

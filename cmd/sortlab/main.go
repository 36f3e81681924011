package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortlab/internal/algorithms"
	"github.com/san-kum/sortlab/internal/arrays"
	"github.com/san-kum/sortlab/internal/config"
	"github.com/san-kum/sortlab/internal/engine"
	"github.com/san-kum/sortlab/internal/metrics"
	"github.com/san-kum/sortlab/internal/storage"
	"github.com/san-kum/sortlab/internal/tui"
	"github.com/san-kum/sortlab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	speed      int
	mode       string
	size       int
	kind       string
	seed       int64
	values     string
	configFile string
	preset     string
	frameRate  int
	benchRuns  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sortlab",
		Short: "sorting algorithm animation lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the live view with a demo configuration.
			return runLive(cmd, []string{config.DefaultAlgorithm})
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".sortlab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "run a sort headless and print the summary",
		Args:  cobra.ExactArgs(1),
		RunE:  runSort,
	}
	addRunFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live [algorithm]",
		Short: "run a sort with the interactive live view",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui [algorithm]",
		Short: "run a sort with the legacy ANSI bar view",
		Args:  cobra.ExactArgs(1),
		RunE:  runTUI,
	}
	addRunFlags(tuiCmd)
	tuiCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list available algorithms",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl := engine.NewController(algorithms.NewRegistry(), nil)
			for _, name := range ctl.Algorithms() {
				fmt.Println(name)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
		},
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run's final array as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportCSV(os.Stdout, args[0])
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench [algorithm]",
		Short: "benchmark operation counts across sizes",
		Args:  cobra.ExactArgs(1),
		RunE:  benchAlgorithm,
	}
	benchCmd.Flags().IntVar(&benchRuns, "runs", 5, "seeded runs per size")
	benchCmd.Flags().StringVar(&kind, "kind", arrays.KindRandom, "input kind")

	plotCmd := &cobra.Command{
		Use:   "plot [algorithm]",
		Short: "plot comparison growth against input size",
		Args:  cobra.ExactArgs(1),
		RunE:  plotGrowth,
	}
	plotCmd.Flags().StringVar(&kind, "kind", arrays.KindRandom, "input kind")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-12s %s, %d elements, speed %d, %s\n",
					name, p.Algorithm, p.Size, p.Speed, p.Mode)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, tuiCmd, algorithmsCmd, listCmd,
		exportCmd, exportCSVCmd, benchCmd, plotCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&speed, "speed", config.DefaultSpeed, "speed 1-10")
	cmd.Flags().StringVar(&mode, "mode", config.DefaultMode, "continuous or step")
	cmd.Flags().IntVar(&size, "size", config.DefaultSize, "generated array size")
	cmd.Flags().StringVar(&kind, "kind", config.DefaultKind, "input kind: "+strings.Join(arrays.Kinds(), ", "))
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().StringVar(&values, "values", "", "comma-separated explicit values")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig merges preset, config file and flags; flags win over the
// config file, which wins over the preset.
func resolveConfig(cmd *cobra.Command, algorithm string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Algorithm = algorithm
	cfg.Seed = seed

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		p.Seed = cfg.Seed
		if algorithm != "" {
			p.Algorithm = algorithm
		}
		cfg = p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		fileCfg.Algorithm = cfg.Algorithm
		if fileCfg.Seed == 0 {
			fileCfg.Seed = cfg.Seed
		}
		cfg = fileCfg
	}

	if cmd.Flags().Changed("speed") {
		cfg.Speed = speed
	}
	if cmd.Flags().Changed("mode") {
		cfg.Mode = mode
	}
	if cmd.Flags().Changed("size") {
		cfg.Size = size
	}
	if cmd.Flags().Changed("kind") {
		cfg.Kind = kind
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if values != "" {
		parsed, err := parseValues(values)
		if err != nil {
			return nil, err
		}
		cfg.Values = parsed
	}
	return cfg, nil
}

func parseValues(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func engineConfig(cfg *config.Config) (engine.Config, error) {
	input, err := cfg.ResolveInput()
	if err != nil {
		return engine.Config{}, err
	}
	return engine.Config{
		Speed: cfg.Speed,
		Mode:  engine.Mode(cfg.Mode),
		Input: input,
	}, nil
}

func runSort(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	ecfg, err := engineConfig(cfg)
	if err != nil {
		return err
	}
	// Headless runs never need the animation delays.
	ecfg.Instant = true

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctl := engine.NewController(algorithms.NewRegistry(), nil)

	fmt.Printf("running %s on %d elements...\n", cfg.Algorithm, len(ecfg.Input))
	result, err := ctl.Run(context.Background(), cfg.Algorithm, ecfg)
	if err != nil {
		return err
	}

	runID, err := st.Save(cfg.Speed, cfg.Mode, cfg.Seed, result)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("success: %v\n", result.Success)
	fmt.Printf("comparisons: %s\n", metrics.FormatCount(result.Comparisons))
	fmt.Printf("swaps: %s\n", metrics.FormatCount(result.Swaps))
	fmt.Printf("accesses: %s\n", metrics.FormatCount(result.Accesses))
	fmt.Printf("time: %s\n", metrics.FormatDuration(result.Elapsed))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	ecfg, err := engineConfig(cfg)
	if err != nil {
		return err
	}

	m := viz.NewModel(algorithms.NewRegistry(), cfg.Algorithm, ecfg)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	ecfg, err := engineConfig(cfg)
	if err != nil {
		return err
	}

	r := tui.NewLiveRenderer(cfg.Algorithm, frameRate)
	r.Start()
	defer r.Stop()

	ctl := engine.NewController(algorithms.NewRegistry(), r)
	result, err := ctl.Run(context.Background(), cfg.Algorithm, ecfg)
	if err != nil {
		return err
	}

	r.Render()
	fmt.Printf("\n  comparisons: %s  swaps: %s  accesses: %s  time: %s\n",
		metrics.FormatCount(result.Comparisons),
		metrics.FormatCount(result.Swaps),
		metrics.FormatCount(result.Accesses),
		metrics.FormatDuration(result.Elapsed))
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
	fmt.Fprintln(w, "ID\tALGORITHM\tTIME\tSIZE\tCOMPARES\tSWAPS\tELAPSED\tOK")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%dms\t%v\n",
			run.ID,
			run.Algorithm,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Size,
			metrics.FormatCount(run.Comparisons),
			metrics.FormatCount(run.Swaps),
			run.ElapsedMS,
			run.Success,
		)
	}

	return w.Flush()
}

func benchAlgorithm(cmd *cobra.Command, args []string) error {
	name := args[0]
	reg := algorithms.NewRegistry()
	if _, err := reg.Get(name); err != nil {
		return err
	}

	sizes := []int{100, 500, 1000, 2000}
	ensemble := engine.NewEnsemble(reg)

	fmt.Printf("benchmarking %s (%s input, %d runs per size)\n\n", name, kind, benchRuns)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tCOMPARES\tSWAPS\tACCESSES\tTIME")

	for _, sz := range sizes {
		inputs := make([][]int, benchRuns)
		for i := range inputs {
			input, err := arrays.Generate(kind, sz, int64(i)+1)
			if err != nil {
				return err
			}
			inputs[i] = input
		}

		start := time.Now()
		results, err := ensemble.Run(context.Background(), name, inputs)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		var comparisons, swaps, accesses int64
		for _, r := range results {
			comparisons += r.Comparisons
			swaps += r.Swaps
			accesses += r.Accesses
		}
		n := int64(len(results))

		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%v\n",
			sz,
			metrics.FormatCount(comparisons/n),
			metrics.FormatCount(swaps/n),
			metrics.FormatCount(accesses/n),
			elapsed,
		)
	}

	return w.Flush()
}

func plotGrowth(cmd *cobra.Command, args []string) error {
	name := args[0]
	reg := algorithms.NewRegistry()
	ctl := engine.NewController(reg, nil)

	sizes := []int{8, 16, 32, 64, 128, 256, 512}
	data := make([]float64, 0, len(sizes))

	for _, sz := range sizes {
		input, err := arrays.Generate(kind, sz, 42)
		if err != nil {
			return err
		}
		result, err := ctl.Run(context.Background(), name, engine.Config{
			Speed:   10,
			Mode:    engine.ModeContinuous,
			Input:   input,
			Instant: true,
		})
		if err != nil {
			return err
		}
		data = append(data, float64(result.Comparisons))
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("%s comparisons for sizes %v", name, sizes)),
	)
	fmt.Println(graph)
	return nil
}

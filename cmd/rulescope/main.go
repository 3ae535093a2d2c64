package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rulescope/internal/config"
	"rulescope/internal/gui"
	"rulescope/internal/pattern"
	"rulescope/internal/render"
	"rulescope/internal/tui"
)

var (
	configFile   string
	preset       string
	rule         int
	speed        float64
	cellSize     int
	cellMargin   int
	renderMargin int
	backend      string
	patternName  string
	seed         int64
	width        int
	height       int
	startPaused  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rulescope",
		Short: "elementary cellular automaton visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			return gui.Run(cfg, logger)
		},
	}
	addConfigFlags(rootCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	addConfigFlags(tuiCmd)

	probeCmd := &cobra.Command{
		Use:   "probe",
		Short: "report gpu capability",
		Run: func(cmd *cobra.Command, args []string) {
			rl.SetConfigFlags(rl.FlagWindowHidden)
			rl.InitWindow(64, 64, "rulescope probe")
			ok := render.HasGPUSupport()
			rl.CloseWindow()
			if ok {
				fmt.Println("gpu: supported")
				return
			}
			fmt.Println("gpu: not supported (cpu backend will be used)")
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets and seed patterns",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PRESET\tRULE\tSPEED\tPATTERN\tBACKEND")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%.0f\t%s\t%s\n",
					name, p.Rule, p.Speed, p.Pattern, p.Backend)
			}
			w.Flush()
			fmt.Println("\npatterns:")
			for _, name := range pattern.Names() {
				fmt.Println("  " + name)
			}
		},
	}

	rootCmd.AddCommand(tuiCmd, probeCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().IntVar(&rule, "rule", config.DefaultRule, "wolfram rule number (0-255)")
	cmd.Flags().Float64Var(&speed, "speed", config.DefaultSpeed, "generations per second")
	cmd.Flags().IntVar(&cellSize, "cell-size", config.DefaultCellSize, "cell square size in pixels")
	cmd.Flags().IntVar(&cellMargin, "cell-margin", config.DefaultCellMargin, "gap between cells in pixels")
	cmd.Flags().IntVar(&renderMargin, "render-margin", config.DefaultRenderMargin, "outer margin in pixels")
	cmd.Flags().StringVar(&backend, "backend", "auto", "renderer backend (auto, cpu, gpu)")
	cmd.Flags().StringVar(&patternName, "pattern", "center", "seed pattern")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "window width")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "window height")
	cmd.Flags().BoolVar(&startPaused, "paused", false, "start paused")
}

// resolveConfig layers preset or config file over the defaults, then
// applies explicitly set flags on top.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	switch {
	case preset != "":
		if cfg = config.GetPreset(preset); cfg == nil {
			return nil, fmt.Errorf("unknown preset %q (see 'rulescope presets')", preset)
		}
	case configFile != "":
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("rule") {
		cfg.Rule = rule
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("cell-size") {
		cfg.CellSize = cellSize
	}
	if flags.Changed("cell-margin") {
		cfg.CellMargin = cellMargin
	}
	if flags.Changed("render-margin") {
		cfg.RenderMargin = renderMargin
	}
	if flags.Changed("backend") {
		cfg.Backend = backend
	}
	if flags.Changed("pattern") {
		cfg.Pattern = patternName
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("paused") {
		cfg.StartPaused = startPaused
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

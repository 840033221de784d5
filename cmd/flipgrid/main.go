package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/flipgrid/internal/config"
	"github.com/san-kum/flipgrid/internal/export"
	"github.com/san-kum/flipgrid/internal/segment"
	"github.com/san-kum/flipgrid/internal/tui"
)

var (
	configFile string
	preset     string

	cols         int
	rows         int
	padSize      int
	gridGap      int
	cornerRadius int
	period       float64
	cascade      string
	seed         int64

	outDir  string
	outFile string
	caption string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "flipgrid",
		Short: "flip-tile image board for the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, nil)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "board preset: "+strings.Join(presetNames(), ", "))

	playCmd := &cobra.Command{
		Use:   "play [images...]",
		Short: "run the board, cycling through the given images",
		RunE:  runPlay,
	}
	addBoardFlags(playCmd)

	sliceCmd := &cobra.Command{
		Use:   "slice [image]",
		Short: "write every fragment of an image to PNG files",
		Args:  cobra.ExactArgs(1),
		RunE:  runSlice,
	}
	addBoardFlags(sliceCmd)
	sliceCmd.Flags().StringVar(&outDir, "out", "fragments", "output directory")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [image]",
		Short: "render a resting board to a PNG",
		Args:  cobra.ExactArgs(1),
		RunE:  runSnapshot,
	}
	addBoardFlags(snapshotCmd)
	snapshotCmd.Flags().StringVar(&outFile, "out", "board.png", "output file")
	snapshotCmd.Flags().StringVar(&caption, "caption", "", "caption under the board")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list board presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range presetNames() {
				p := config.Presets[name]
				fmt.Printf("%-12s %dx%d  %s  %.1fs\n", name, p.Cols, p.Rows, p.Cascade, p.CyclePeriodSeconds)
			}
		},
	}

	rootCmd.AddCommand(playCmd, sliceCmd, snapshotCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&cols, "cols", config.DefaultCols, "grid columns")
	cmd.Flags().IntVar(&rows, "rows", config.DefaultRows, "grid rows")
	cmd.Flags().IntVar(&padSize, "pad", config.DefaultPadSize, "cell edge length in pixels")
	cmd.Flags().IntVar(&gridGap, "gap", config.DefaultGridGap, "inter-cell gap in pixels")
	cmd.Flags().IntVar(&cornerRadius, "radius", config.DefaultCornerRadius, "tile corner radius")
	cmd.Flags().Float64Var(&period, "period", config.DefaultCyclePeriod, "cycle period in seconds")
	cmd.Flags().StringVar(&cascade, "cascade", "", "cascade mode: simultaneous or staggered")
	cmd.Flags().Int64Var(&seed, "seed", 0, "stagger jitter seed")
}

// loadConfig resolves preset, config file and flag overrides, in that
// order of increasing precedence.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (have: %s)", preset, strings.Join(presetNames(), ", "))
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if cmd != nil {
		flags := cmd.Flags()
		if flags.Changed("cols") {
			cfg.Cols = cols
		}
		if flags.Changed("rows") {
			cfg.Rows = rows
		}
		if flags.Changed("pad") {
			cfg.PadSize = padSize
		}
		if flags.Changed("gap") {
			cfg.GridGap = gridGap
		}
		if flags.Changed("radius") {
			cfg.CornerRadius = cornerRadius
		}
		if flags.Changed("period") {
			cfg.CyclePeriodSeconds = period
		}
		if flags.Changed("cascade") {
			cfg.Cascade = cascade
		}
		if flags.Changed("seed") {
			cfg.Seed = seed
		}
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Images = args
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return tui.Run(cfg)
}

func runSlice(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	img, err := segment.LoadImage(args[0])
	if err != nil {
		return err
	}
	seg, err := segment.New("slice", img, cfg.Cols, cfg.Rows, cfg.PadSize, cfg.GridGap)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			f := seg.Frag(col, row)
			name := filepath.Join(outDir, fmt.Sprintf("%s_%dx%d.png", base, col, row))
			out, err := os.Create(name)
			if err != nil {
				return err
			}
			if err := png.Encode(out, f.Image); err != nil {
				out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}
		}
	}
	fmt.Printf("wrote %d fragments to %s\n", cfg.Cols*cfg.Rows, outDir)
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	img, err := segment.LoadImage(args[0])
	if err != nil {
		return err
	}
	seg, err := segment.New("snapshot", img, cfg.Cols, cfg.Rows, cfg.PadSize, cfg.GridGap)
	if err != nil {
		return err
	}
	if err := export.Snapshot(seg, cfg.CornerRadius, caption, outFile); err != nil {
		return err
	}
	fmt.Println("wrote", outFile)
	return nil
}

func presetNames() []string {
	names := config.ListPresets()
	sort.Strings(names)
	return names
}

package config

var Presets = map[string]*Config{
	// Dashboard-style board: few large tiles, slow lockstep flips.
	"billboard": {
		Cols: 3, Rows: 2, PadSize: 160, GridGap: 12, CornerRadius: 16,
		CyclePeriodSeconds: 8.0, Cascade: CascadeSimultaneous,
	},
	// Dense mosaic with a pronounced wave.
	"mosaic": {
		Cols: 8, Rows: 6, PadSize: 48, GridGap: 4, CornerRadius: 4,
		CyclePeriodSeconds: 5.0, Cascade: CascadeStaggered,
		StaggerMs: 40, JitterMs: 60,
	},
	// Split-flap departure board feel: wide, shallow, fast.
	"departures": {
		Cols: 10, Rows: 3, PadSize: 56, GridGap: 6, CornerRadius: 6,
		CyclePeriodSeconds: 3.0, Cascade: CascadeStaggered,
		StaggerMs: 25, JitterMs: 20,
	},
	// Single-row ticker.
	"ticker": {
		Cols: 12, Rows: 1, PadSize: 40, GridGap: 4, CornerRadius: 4,
		CyclePeriodSeconds: 2.5, Cascade: CascadeStaggered,
		StaggerMs: 30, JitterMs: 10,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *cfg
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}

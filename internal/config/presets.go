package config

import "sort"

// presets adjust the defaults to reproduce earlier releases of the viewer.
var presets = map[string]func(*Config){
	// classic halves zoom on zoom out, pans a tenth of the view and polls at 60fps.
	"classic": func(c *Config) {
		c.View.ZoomOutDivisor = 2
		c.View.PanStep = 0.1
		c.View.PanScaling = "inverse"
		c.View.PrecisionMax = 1000
		c.View.Fractal = "mandelbrot1"
		c.Render.Cadence = "continuous"
	},
	// pixels draws one point per pixel instead of a full-screen quad.
	"pixels": func(c *Config) {
		c.Render.Geometry = "pixels"
	},
}

// GetPreset returns the defaults with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

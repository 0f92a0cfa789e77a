package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/stewi1014/fracview/internal/view"
)

const (
	DefaultWidth     = 1920
	DefaultHeight    = 1080
	DefaultGLMajor   = 4
	DefaultGLMinor   = 4
	DefaultFrameRate = 60
)

type Config struct {
	Window WindowConfig `yaml:"window"`
	View   ViewConfig   `yaml:"view"`
	Render RenderConfig `yaml:"render"`
}

type WindowConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Title       string `yaml:"title"`
	GLMajor     int    `yaml:"gl_major"`
	GLMinor     int    `yaml:"gl_minor"`
	Debug       bool   `yaml:"debug"`
	ErrorDialog bool   `yaml:"error_dialog"`
}

type ViewConfig struct {
	Precision      int32   `yaml:"precision"`
	PrecisionMin   int32   `yaml:"precision_min"`
	PrecisionMax   int32   `yaml:"precision_max"`
	PrecisionStep  int32   `yaml:"precision_step"`
	ZoomOutDivisor float64 `yaml:"zoom_out_divisor"`
	PanStep        float64 `yaml:"pan_step"`
	PanScaling     string  `yaml:"pan_scaling"`
	Fractal        string  `yaml:"fractal"`
	Color          int32   `yaml:"color"`
	Automate       bool    `yaml:"automate"`
	Power          int32   `yaml:"power"`
}

type RenderConfig struct {
	Cadence   string `yaml:"cadence"`
	FrameRate int    `yaml:"frame_rate"`
	Geometry  string `yaml:"geometry"`
	Compute   string `yaml:"compute"`
}

func DefaultConfig() *Config {
	opts := view.DefaultOptions()
	return &Config{
		Window: WindowConfig{
			Width:   DefaultWidth,
			Height:  DefaultHeight,
			Title:   "fracview",
			GLMajor: DefaultGLMajor,
			GLMinor: DefaultGLMinor,
		},
		View: ViewConfig{
			Precision:      opts.Precision,
			PrecisionMin:   opts.PrecisionMin,
			PrecisionMax:   opts.PrecisionMax,
			PrecisionStep:  opts.PrecisionStep,
			ZoomOutDivisor: opts.ZoomOutDivisor,
			PanStep:        opts.PanStep,
			PanScaling:     opts.PanScaling.String(),
			Fractal:        opts.Fractal.String(),
			Color:          opts.Color,
			Automate:       opts.Automate,
			Power:          opts.Power,
		},
		Render: RenderConfig{
			Cadence:   "demand",
			FrameRate: DefaultFrameRate,
			Geometry:  "quad",
			Compute:   opts.Compute.String(),
		},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	return LoadInto(path, DefaultConfig())
}

// LoadInto reads a YAML file over base, keeping base's values for every
// field the file leaves out. It returns base.
func LoadInto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if err := Write(f, cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write encodes cfg as YAML.
func Write(w io.Writer, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Validate reports every problem with c at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.GLMajor < 4 || c.Window.GLMajor == 4 && c.Window.GLMinor < 3 {
		errs = append(errs, fmt.Errorf("OpenGL %d.%d is older than the required 4.3", c.Window.GLMajor, c.Window.GLMinor))
	}

	v := c.View
	if v.PrecisionMin <= 0 || v.PrecisionMin > v.PrecisionMax {
		errs = append(errs, fmt.Errorf("precision bounds [%d, %d] are invalid", v.PrecisionMin, v.PrecisionMax))
	}
	if v.Precision < v.PrecisionMin || v.Precision > v.PrecisionMax {
		errs = append(errs, fmt.Errorf("precision %d outside [%d, %d]", v.Precision, v.PrecisionMin, v.PrecisionMax))
	}
	if v.PrecisionStep <= 0 {
		errs = append(errs, fmt.Errorf("precision step %d must be positive", v.PrecisionStep))
	}
	if v.ZoomOutDivisor <= 1 {
		errs = append(errs, fmt.Errorf("zoom out divisor %v must be greater than 1", v.ZoomOutDivisor))
	}
	if v.PanStep <= 0 {
		errs = append(errs, fmt.Errorf("pan step %v must be positive", v.PanStep))
	}
	if _, err := view.ParsePanScaling(v.PanScaling); err != nil {
		errs = append(errs, err)
	}
	if _, err := view.ParseFractal(v.Fractal); err != nil {
		errs = append(errs, err)
	}
	if v.Color < 1 || v.Color > view.Colors {
		errs = append(errs, fmt.Errorf("color %d outside [1, %d]", v.Color, view.Colors))
	}
	if v.Power < view.MinPower || v.Power > view.MaxPower {
		errs = append(errs, fmt.Errorf("power %d outside [%d, %d]", v.Power, view.MinPower, view.MaxPower))
	}

	r := c.Render
	if r.Cadence != "demand" && r.Cadence != "continuous" {
		errs = append(errs, fmt.Errorf("unknown cadence %q", r.Cadence))
	}
	if r.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("frame rate %d must be positive", r.FrameRate))
	}
	if r.Geometry != "quad" && r.Geometry != "pixels" {
		errs = append(errs, fmt.Errorf("unknown geometry %q", r.Geometry))
	}
	if _, err := view.ParseComputeMode(r.Compute); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// ViewOptions converts the view section for view.New. c must be valid.
func (c *Config) ViewOptions() view.Options {
	v := c.View
	scaling, _ := view.ParsePanScaling(v.PanScaling)
	fractal, _ := view.ParseFractal(v.Fractal)
	compute, _ := view.ParseComputeMode(c.Render.Compute)

	return view.Options{
		Precision:      v.Precision,
		PrecisionMin:   v.PrecisionMin,
		PrecisionMax:   v.PrecisionMax,
		PrecisionStep:  v.PrecisionStep,
		ZoomOutDivisor: v.ZoomOutDivisor,
		PanStep:        v.PanStep,
		PanScaling:     scaling,
		Fractal:        fractal,
		Color:          v.Color,
		Automate:       v.Automate,
		Power:          v.Power,
		Compute:        compute,
	}
}

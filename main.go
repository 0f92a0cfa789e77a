package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/stewi1014/fracview/internal/config"
	"github.com/stewi1014/fracview/internal/render"
)

// GLFW and GL calls must stay on the main thread.
func init() {
	runtime.LockOSThread()
}

var (
	configFile  string
	preset      string
	width       int
	height      int
	cadence     string
	geometry    string
	debugOutput bool
	errorDialog bool
	output      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "fracview",
		Short:         "real-time GPU fractal viewer",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runViewer,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path (yaml)")
	flags.StringVar(&preset, "preset", "", "start from a preset configuration")
	flags.IntVar(&width, "width", config.DefaultWidth, "window width")
	flags.IntVar(&height, "height", config.DefaultHeight, "window height")
	flags.StringVar(&cadence, "cadence", "demand", "draw cadence (demand, continuous)")
	flags.StringVar(&geometry, "geometry", "quad", "GPU geometry (quad, pixels)")
	flags.BoolVar(&debugOutput, "debug", false, "debug logging and GL debug output")
	flags.BoolVar(&errorDialog, "error-dialog", false, "show fatal errors in a dialog")

	keysCmd := &cobra.Command{
		Use:   "keys",
		Short: "list key bindings",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), keyHelp())
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if output != "" {
				return config.Save(output, cfg)
			}
			return config.Write(cmd.OutOrStdout(), cfg)
		},
	}
	configCmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
		},
	}

	rootCmd.AddCommand(keysCmd, configCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("fracview", "err", err)
		if errorDialog {
			NewErrorDialog(err)
		}
		os.Exit(1)
	}
}

// loadConfig builds the configuration from the preset, then the config
// file, then any flags set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadInto(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Window.Width = width
	}
	if flags.Changed("height") {
		cfg.Window.Height = height
	}
	if flags.Changed("cadence") {
		cfg.Render.Cadence = cadence
	}
	if flags.Changed("geometry") {
		cfg.Render.Geometry = geometry
	}
	if flags.Changed("debug") {
		cfg.Window.Debug = debugOutput
	}
	if flags.Changed("error-dialog") {
		cfg.Window.ErrorDialog = errorDialog
	}
	errorDialog = cfg.Window.ErrorDialog

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runViewer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Window.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	render.SetLogger(logger)

	mainContext, mainQuit := context.WithCancelCause(cmd.Context())
	func() {
		defer CatchPanicToContext(mainQuit)
		mainQuit(viewerMain(mainContext, mainQuit, cfg))
	}()

	<-mainContext.Done()
	if err := context.Cause(mainContext); !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

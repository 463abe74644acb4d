// focustrail shows a sign-up form with a ball that chases the focused
// field, trailing a smoothed tail behind it.
//
// By default it opens a window. With --record it runs headless for a fixed
// number of frames, pressing Tab at a steady interval, and writes every
// frame as a PNG.
package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"chosenoffset.com/focustrail/internal/app"
	"chosenoffset.com/focustrail/internal/config"
	"chosenoffset.com/focustrail/internal/render"
	ebitenrender "chosenoffset.com/focustrail/internal/render/ebiten"
	"chosenoffset.com/focustrail/internal/render/raster"
)

type options struct {
	configPath string
	recordDir  string
	frames     int
	focusEvery int
}

func main() {
	if err := run(); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

func run() error {
	var opts options
	flagged := config.DefaultConfig()

	flagSet := pflag.NewFlagSet("focustrail", pflag.ContinueOnError)
	flagSet.StringVar(&opts.configPath, "config", "focustrail.jsonc", "path to the JSONC config file")
	flagSet.Float64Var(&flagged.Radius, "radius", flagged.Radius, "ball radius and tail width in pixels")
	flagSet.IntVar(&flagged.TailLength, "tail-length", flagged.TailLength, "number of trail points")
	flagSet.StringVar(&flagged.BallColor, "ball-color", flagged.BallColor, "ball color as #rrggbb")
	flagSet.StringVar(&flagged.LineColor, "line-color", flagged.LineColor, "trail color as #rrggbb")
	flagSet.IntVar(&flagged.Window.Width, "width", flagged.Window.Width, "window width in pixels")
	flagSet.IntVar(&flagged.Window.Height, "height", flagged.Window.Height, "window height in pixels")
	flagSet.StringVar(&opts.recordDir, "record", "", "render headless and write PNG frames to this directory")
	flagSet.IntVar(&opts.frames, "frames", 120, "number of frames to record")
	flagSet.IntVar(&opts.focusEvery, "focus-every", 20, "press Tab every N recorded frames")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		return err
	}

	// Flags override the file, so load it first and re-apply the flags.
	loaded, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	cfg := applyFlags(flagSet, loaded, flagged)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if opts.recordDir != "" {
		return record(cfg, opts)
	}
	return runWindow(cfg)
}

// applyFlags copies every flag the user set from flagged onto base.
func applyFlags(flagSet *pflag.FlagSet, base, flagged *config.Config) *config.Config {
	out := *base
	flagSet.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "radius":
			out.Radius = flagged.Radius
		case "tail-length":
			out.TailLength = flagged.TailLength
		case "ball-color":
			out.BallColor = flagged.BallColor
		case "line-color":
			out.LineColor = flagged.LineColor
		case "width":
			out.Window.Width = flagged.Window.Width
		case "height":
			out.Window.Height = flagged.Window.Height
		}
	})
	return &out
}

func runWindow(cfg *config.Config) error {
	width, height := cfg.Window.Width, cfg.Window.Height

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	manager := app.NewManager(renderer, inputMgr, cfg.FormFields(), cfg.EffectOptions(), width, height)

	// Set up the window
	engine.SetWindowSize(width, height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)

	log.Println("Starting focus trail...")
	if err := engine.RunGame(manager); err != nil && !errors.Is(err, app.ErrQuit) {
		return err
	}
	return nil
}

func record(cfg *config.Config, opts options) error {
	if opts.frames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", opts.frames)
	}
	if opts.focusEvery <= 0 {
		return fmt.Errorf("--focus-every must be positive, got %d", opts.focusEvery)
	}
	if err := os.MkdirAll(opts.recordDir, 0o755); err != nil {
		return fmt.Errorf("failed to create record directory: %w", err)
	}

	width, height := cfg.Window.Width, cfg.Window.Height
	renderer := raster.NewRenderer()
	input := raster.NewInput()
	engine := raster.NewEngine(renderer, input, opts.frames)
	engine.SetWindowSize(width, height)
	engine.SetWindowTitle(cfg.Window.Title)

	manager := app.NewManager(renderer, input, cfg.FormFields(), cfg.EffectOptions(), width, height)

	engine.BeforeFrame = func(frame int) {
		if frame%opts.focusEvery == 0 {
			input.Press(render.KeyTab)
		}
	}
	engine.OnFrame = func(frame int, img *image.RGBA) error {
		return writePNG(filepath.Join(opts.recordDir, fmt.Sprintf("frame_%04d.png", frame)), img)
	}

	log.Printf("Recording %d frames to %s", opts.frames, opts.recordDir)
	if err := engine.RunGame(manager); err != nil {
		return err
	}
	log.Printf("Recorded %d frames", manager.FrameCount)
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

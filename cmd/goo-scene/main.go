package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/goo-scene/config"
	"github.com/lixenwraith/goo-scene/core"
)

var (
	configFlag = flag.String("config", "", "Scene YAML file layered over built-in defaults")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/goo-scene.log")
	seedFlag   = flag.Uint64("seed", 0, "Override the noise seed")
	fpsFlag    = flag.Int("fps", 0, "Override the frame rate")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the scene crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "goo-scene: %v\n", err)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	core.SetCrashScreen(screen)
	// Normal exit terminal cleanup
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(cfg, screen)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "goo-scene: %v\n", err)
		os.Exit(1)
	}
	a.run(ctx)
	log.Printf("goo-scene: exit after %d frames", a.sched.Frames())
}

// loadConfig reads path if given and applies flag overrides
func loadConfig(path string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if *seedFlag != 0 {
		cfg.Scene.NoiseSeed = *seedFlag
	}
	if *fpsFlag != 0 {
		cfg.Scene.FPS = *fpsFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

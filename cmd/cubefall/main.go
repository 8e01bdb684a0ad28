package main

import (
	"flag"
	"fmt"
	"os"

	"cubefall/internal/config"
	"cubefall/internal/graphics"
	"cubefall/internal/logger"
	"cubefall/internal/scene"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML preferences file")
	debugFlag := flag.Bool("debug", false, "show the stats overlay at startup (toggle with F3)")
	seed := flag.Uint64("seed", 0, "random seed for spawns (0 = use config, then time)")
	writeConfig := flag.Bool("write-config", false, "write the effective preferences to -config and exit")
	flag.Parse()

	prefs, err := config.Load(*configPath)
	log := logger.New(prefs.LogPath)
	log.Echo = graphics.TraceInfo
	if err != nil {
		log.Log(err.Error() + "; using defaults")
	}
	if *debugFlag {
		prefs.DebugOverlay = true
	}
	if *seed != 0 {
		prefs.Seed = *seed
	}

	if *writeConfig {
		if err := config.Save(*configPath, prefs); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		log.Log("Wrote preferences to " + *configPath)
		return
	}

	w := prefs.Window
	if err := graphics.Initialize(w.Width, w.Height, w.Title, w.TargetFPS); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer graphics.Shutdown()

	input := graphics.NewInput(prefs.DebugOverlay)
	renderer := graphics.NewRenderer()
	loop := scene.New(renderer, input, prefs.Params())
	loop.SetLogger(log)

	graphics.Run(renderer, func(dt float32) {
		input.Poll()
		loop.Tick(dt)
	})
}

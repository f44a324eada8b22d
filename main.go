package main

import (
	"flag"
	"log"

	"github.com/leonelquinteros/gotext"

	"github.com/etha37521-jpg/sigma-wasm/pkg/game/config"
	"github.com/etha37521-jpg/sigma-wasm/pkg/game/devtools"
	"github.com/etha37521-jpg/sigma-wasm/pkg/game/renderer"
	ebitenrenderer "github.com/etha37521-jpg/sigma-wasm/pkg/game/renderer/ebiten"
	"github.com/etha37521-jpg/sigma-wasm/pkg/game/renderer/tui"
	"github.com/etha37521-jpg/sigma-wasm/pkg/game/state"
)

func initGotext() {
	gotext.Configure("locales", "en_GB", "default")
}

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML config file")
	rendererName := flag.String("renderer", "", "rendering backend: tui or ebiten (overrides config)")
	seed := flag.Int64("seed", 0, "map seed (overrides config)")
	width := flag.Int("width", 0, "map width in cells (overrides config)")
	height := flag.Int("height", 0, "map height in cells (overrides config)")
	density := flag.Float64("density", 0, "obstacle density in [0,1) (overrides config)")
	diagonal := flag.Bool("diagonal", false, "allow diagonal movement (overrides config)")
	watch := flag.Bool("watch", false, "rebuild the simulation when the config file changes")
	dev := flag.Bool("dev", false, "use the handcrafted developer testing map")
	flag.Parse()

	initGotext()

	file, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	cfg, err := file.StateConfig()
	if err != nil {
		log.Fatalf("Bad config: %v", err)
	}

	// Flags beat the config file, but only the ones actually passed.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "renderer":
			file.Renderer = *rendererName
		case "seed":
			cfg.Seed = *seed
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "density":
			cfg.ObstacleDensity = *density
		case "diagonal":
			cfg.DiagonalMovement = *diagonal
		}
	})
	if *dev {
		cfg.Generator = devtools.DevMap
	}

	st, err := state.New(cfg)
	if err != nil {
		log.Fatalf("Could not start the simulation: %v", err)
	}

	switch file.Renderer {
	case "ebiten":
		renderer.SetRenderer(ebitenrenderer.New())
	case "tui", "":
		renderer.SetRenderer(tui.New())
	default:
		log.Fatalf("Unknown renderer %q (want tui or ebiten)", file.Renderer)
	}

	opts := renderer.RunOptions{}
	if *watch {
		reload := make(chan *state.AgentState, 1)
		opts.Reload = reload
		go watchConfig(*configPath, reload)
	}

	if err := renderer.Run(st, opts); err != nil {
		log.Fatalf("Renderer failed: %v", err)
	}
}

// watchConfig rebuilds the simulation whenever the config file changes and
// hands the replacement to the renderer. Flag overrides apply to the initial
// simulation only; reloads take the file as written.
func watchConfig(path string, reload chan *state.AgentState) {
	w, err := config.NewWatcher(path)
	if err != nil {
		log.Printf("Config watch disabled: %v", err)
		return
	}
	defer w.Close()

	for {
		select {
		case <-w.Events:
			file, err := config.LoadOrDefault(path)
			if err != nil {
				log.Printf("Config reload failed: %v", err)
				continue
			}
			cfg, err := file.StateConfig()
			if err != nil {
				log.Printf("Config reload failed: %v", err)
				continue
			}
			st, err := state.New(cfg)
			if err != nil {
				log.Printf("Config reload failed: %v", err)
				continue
			}

			select {
			case reload <- st:
			default:
				// Replace the queued state with the newest one. This
				// goroutine is the only producer, so the send cannot block.
				select {
				case <-reload:
				default:
				}
				reload <- st
			}
		case err := <-w.Errors:
			log.Printf("Config watch: %v", err)
		}
	}
}

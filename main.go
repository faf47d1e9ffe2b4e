package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"corridor-gallery/config"
	"corridor-gallery/engine"
	"corridor-gallery/gallery"
	"corridor-gallery/settings"
)

func main() {
	configPath := flag.String("config", "gallery.yaml", "YAML config file")
	writeConfig := flag.String("write-config", "", "write the default config to this file and exit")
	mapping := flag.String("mapping", "", "image mapping file (overrides the config)")
	layout := flag.String("layout", "", "Starlark layout script (overrides the config)")
	flag.Parse()

	if *writeConfig != "" {
		if err := config.Save(*writeConfig, config.Default()); err != nil {
			log.Fatalf("write config: %v", err)
		}
		log.Printf("Default config written to %s", *writeConfig)
		return
	}

	cfg, err := config.Load(*configPath)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("[Config] %s not found, using defaults", *configPath)
	} else if err != nil {
		log.Printf("[Config] %v (using defaults)", err)
	}
	if *mapping != "" {
		cfg.Dataset.Mapping = *mapping
	}
	if *layout != "" {
		cfg.Dataset.Layout = *layout
	}

	var loadErrs []error
	place, err := engine.LoadLayout(cfg.Dataset.Layout)
	if err != nil {
		log.Printf("[Layout] %v (using built-in corridor)", err)
		loadErrs = append(loadErrs, err)
	}
	frames, err := gallery.LoadFrames(cfg.Dataset.Mapping, place)
	if err != nil {
		log.Printf("[Gallery] %v (starting with an empty gallery)", err)
		loadErrs = append(loadErrs, err)
	}

	prefs := settings.Open(SettingsApp)
	g := NewGame(cfg, prefs, frames)
	if len(loadErrs) > 0 {
		g.ui.Debug.SetError(errors.Join(loadErrs...).Error())
	}
	defer g.assets.stop()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetFullscreen(prefs.Viewer().Fullscreen)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"corridor-gallery/gallery"
)

// assetLoader runs the picture loader off the game loop and hands the batch back
// over a channel.
type assetLoader struct {
	loader *gallery.Loader
	once   sync.Once
	done   chan map[string]gallery.Asset
	cancel context.CancelFunc
}

func newAssetLoader(l *gallery.Loader) *assetLoader {
	return &assetLoader{loader: l, done: make(chan map[string]gallery.Asset, 1)}
}

// start launches the batch once; later calls are no-ops.
func (a *assetLoader) start(frames []gallery.Frame) {
	a.once.Do(func() {
		ctx, cancel := context.WithCancel(context.Background())
		a.cancel = cancel
		go func() {
			a.done <- a.loader.Load(ctx, frames)
		}()
	})
}

func (a *assetLoader) stop() {
	if a.cancel != nil {
		a.cancel()
	}
}

// poll returns the finished batch without blocking.
func (a *assetLoader) poll() (map[string]gallery.Asset, bool) {
	select {
	case assets := <-a.done:
		return assets, true
	default:
		return nil, false
	}
}

// pollAssets turns a finished batch into textures and releases the intro.
func (g *Game) pollAssets() {
	done, total := g.assets.loader.Progress()
	g.ui.Loading.Done, g.ui.Loading.Total = done, total

	assets, ok := g.assets.poll()
	if !ok {
		return
	}
	failed := g.applyAssets(assets)
	for id, a := range assets {
		if a.Image != nil {
			g.sprites[id] = ebiten.NewImageFromImage(a.Image)
		}
	}
	if failed > 0 {
		g.ui.Debug.SetError(fmt.Sprintf("%d of %d pictures failed to load", failed, len(assets)))
	}
	log.Printf("[Game] %d pictures ready, %d failed", len(assets)-failed, failed)

	g.ui.SetLoading(false)
	g.ctrl.Animator().SetReady()
}

// applyAssets records measured aspect ratios and reports how many pictures failed.
func (g *Game) applyAssets(assets map[string]gallery.Asset) int {
	failed := 0
	for id, a := range assets {
		g.geometry.Set(id, a.Aspect)
		if a.Err != nil {
			failed++
		}
	}
	return failed
}

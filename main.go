package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hammerjam/arena"
	"github.com/milk9111/hammerjam/audio"
	"github.com/milk9111/hammerjam/common"
	"github.com/milk9111/hammerjam/prefabs"
	"github.com/milk9111/hammerjam/save"
	"github.com/milk9111/hammerjam/spectate"
)

func main() {
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	debug := flag.Bool("debug", false, "draw the navmesh and print timings")
	watch := flag.Bool("watch", false, "reload prefabs and scripts from prefabs/ when they change")
	arenaFile := flag.String("arena", "arena.yaml", "arena prefab in prefabs/")
	spectateAddr := flag.String("spectate", "", "serve a websocket spectator feed on this address (e.g. :8080)")
	volume := flag.Float64("volume", 0.5, "sound volume, 0 mutes")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	specs, err := arena.LoadSpecs(*arenaFile)
	if err != nil {
		log.Fatal(err)
	}

	store, err := save.Open("hammerjam")
	if err != nil {
		log.Printf("main: %v (run record kept in memory)", err)
	}

	cues := audio.NewCues(*volume)
	if err := cues.Init(); err != nil {
		log.Printf("main: audio disabled: %v", err)
	}
	defer cues.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var hub *spectate.Hub
	if *spectateAddr != "" {
		hub = spectate.NewHub()
		go hub.Run(ctx)
		go func() {
			if err := spectate.Serve(ctx, *spectateAddr, hub); err != nil {
				log.Printf("main: spectate: %v", err)
			}
		}()
	}

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts")
		if err != nil {
			log.Printf("main: hot reload disabled: %v", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	game, err := NewGame(Options{
		Seed:    *seed,
		Debug:   *debug,
		Specs:   specs,
		Store:   store,
		Cues:    cues,
		Hub:     hub,
		Watcher: watcher,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("hammerjam")
	ebiten.SetTPS(arena.TickRate)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("main: %v", err)
	}
	game.Close()
}

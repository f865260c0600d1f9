// Command arena-tui runs the arena in a terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/hammerjam/arena"
	"github.com/milk9111/hammerjam/nav"
	"github.com/milk9111/hammerjam/save"
)

type game struct {
	screen tcell.Screen
	specs  arena.Specs
	store  *save.Store
	input  *keyInput
	sim    *arena.Sim
	canvas *canvas

	seed     int64
	runs     int
	paused   bool
	finished bool
}

func newGame(screen tcell.Screen, specs arena.Specs, store *save.Store, seed int64) (*game, error) {
	g := &game{screen: screen, specs: specs, store: store, input: &keyInput{}, seed: seed}
	if err := g.restart(); err != nil {
		return nil, err
	}
	g.resize()
	return g, nil
}

func (g *game) restart() error {
	if g.sim != nil {
		g.finish()
	}
	sim, err := arena.New(g.specs, arena.Config{
		Seed:          g.seed + int64(g.runs),
		CarriedHealth: g.store.Record().CarriedHealth,
		Input:         g.input,
	})
	if err != nil {
		return err
	}
	g.sim = sim
	g.runs++
	g.finished = false
	g.paused = false
	return nil
}

func (g *game) finish() {
	if g.finished {
		return
	}
	g.finished = true
	g.store.Finish(g.sim.Score(), g.sim.PlayerHealth())
	if err := g.store.Save(); err != nil {
		log.Printf("arena-tui: %v", err)
	}
}

func (g *game) resize() {
	w, h := g.screen.Size()
	g.canvas = newCanvas(w, h, g.specs.Player.CameraYaw, extent(g.sim.Mesh()))
	g.screen.Clear()
}

// extent is the largest distance from the origin to a corner of the mesh.
func extent(mesh *nav.Mesh) float64 {
	if mesh == nil {
		return 10
	}
	bb := mesh.Bounds()
	return math.Max(math.Max(math.Abs(bb.L), math.Abs(bb.R)), math.Max(math.Abs(bb.B), math.Abs(bb.T))) * math.Sqrt2
}

// handle applies a terminal event and reports whether to keep running.
func (g *game) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'p':
				if !g.sim.Over() {
					g.paused = !g.paused
				}
				return true
			case 'r':
				if g.sim.Over() || g.paused {
					if err := g.restart(); err != nil {
						log.Printf("arena-tui: restart: %v", err)
						return false
					}
				}
				return true
			}
		}
		g.input.press(ev)
	case *tcell.EventResize:
		g.resize()
		g.screen.Sync()
	}
	return true
}

func (g *game) run() {
	ticker := time.NewTicker(time.Second / arena.TickRate)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !g.handle(ev) {
				return
			}
		case <-ticker.C:
			if !g.paused && !g.sim.Over() {
				g.sim.Step(1.0 / arena.TickRate)
			}
			if g.sim.Over() {
				g.finish()
			}
			g.canvas.draw(g.sim.Snapshot(), g.sim.Mesh(), g.store.Record().BestSurvival)
			g.canvas.blit(g.screen)
			g.screen.Show()
		}
	}
}

func main() {
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	arenaFile := flag.String("arena", "arena.yaml", "arena prefab in prefabs/")
	logFile := flag.String("log", "arena-tui.log", "log file; the terminal is busy drawing")
	flag.Parse()

	if f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	specs, err := arena.LoadSpecs(*arenaFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arena-tui: %v\n", err)
		os.Exit(1)
	}

	store, err := save.Open("hammerjam")
	if err != nil {
		log.Printf("arena-tui: %v (run record kept in memory)", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "arena-tui: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "arena-tui: %v\n", err)
		os.Exit(1)
	}

	g, err := newGame(screen, specs, store, *seed)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "arena-tui: %v\n", err)
		os.Exit(1)
	}

	g.run()
	g.finish()
	screen.Fini()
}

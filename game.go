package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/hammerjam/arena"
	"github.com/milk9111/hammerjam/audio"
	"github.com/milk9111/hammerjam/common"
	"github.com/milk9111/hammerjam/ecs/component"
	"github.com/milk9111/hammerjam/ecs/system"
	"github.com/milk9111/hammerjam/prefabs"
	"github.com/milk9111/hammerjam/save"
	"github.com/milk9111/hammerjam/spectate"
)

// publishEvery is how many ticks pass between spectator snapshots.
const publishEvery = 2

type Options struct {
	Seed    int64
	Debug   bool
	Specs   arena.Specs
	Store   *save.Store
	Cues    *audio.Cues
	Hub     *spectate.Hub
	Watcher *prefabs.Watcher
}

// heldInput replays the frame the host already polled, so pause handling and
// the simulation see the same presses.
type heldInput struct {
	frame component.Input
}

func (h *heldInput) Poll() component.Input {
	return h.frame
}

type Game struct {
	opts   Options
	frames int
	runs   int

	input    *heldInput
	sim      *arena.Sim
	kills    *audio.Watch
	finished bool
	paused   bool
	quit     bool

	ui    *ebitenui.UI
	title *widget.Text
}

func NewGame(opts Options) (*Game, error) {
	if opts.Store == nil {
		opts.Store = save.NewStore(nil)
	}
	if opts.Cues == nil {
		opts.Cues = audio.NewCues(0)
	}

	g := &Game{opts: opts, input: &heldInput{}}
	if err := g.restart(); err != nil {
		return nil, err
	}
	g.ui, g.title = NewPauseUI(g)
	return g, nil
}

// restart folds the current run into the record, if any, and starts a fresh
// one carrying over whatever health the record holds.
func (g *Game) restart() error {
	if g.sim != nil {
		g.finish()
	}

	sim, err := arena.New(g.opts.Specs, arena.Config{
		Seed:          g.opts.Seed + int64(g.runs),
		CarriedHealth: g.opts.Store.Record().CarriedHealth,
		Input:         g.input,
	})
	if err != nil {
		return err
	}
	sim.Observe(g.opts.Cues.OnDamage)

	g.sim = sim
	g.kills = audio.NewWatch(g.opts.Cues)
	g.finished = false
	g.paused = false
	g.runs++
	log.Printf("game: run %d started (seed %d, health %.0f)", g.runs, g.opts.Seed+int64(g.runs-1), sim.PlayerHealth())
	return nil
}

func (g *Game) finish() {
	if g.finished {
		return
	}
	g.finished = true

	rec := g.opts.Store.Finish(g.sim.Score(), g.sim.PlayerHealth())
	if err := g.opts.Store.Save(); err != nil {
		log.Printf("game: %v", err)
	}
	log.Printf("game: run over after %.1fs with %d kills (best %.1fs)", g.sim.Score().Survived, g.sim.Score().Kills, rec.BestSurvival)
}

// Close records an unfinished run.
func (g *Game) Close() {
	if g.sim != nil {
		g.finish()
	}
}

func (g *Game) Update() error {
	g.frames++
	if g.quit {
		return ebiten.Termination
	}

	g.reload()

	g.input.frame = system.EbitenInput{}.Poll()
	if g.input.frame.Pause && !g.sim.Over() {
		g.paused = !g.paused
	}

	if g.paused || g.sim.Over() {
		if g.sim.Over() {
			g.finish()
			g.title.Label = fmt.Sprintf("Run over: %.1fs, %d kills", g.sim.Score().Survived, g.sim.Score().Kills)
		} else {
			g.title.Label = "Paused"
		}
		g.ui.Update()
		return nil
	}

	g.sim.Step(1.0 / arena.TickRate)
	g.kills.Score(g.sim.Score())

	if g.opts.Hub != nil && g.frames%publishEvery == 0 {
		g.opts.Hub.Publish(g.sim.Snapshot())
	}
	return nil
}

// reload applies every prefab change the watcher reported since last frame.
func (g *Game) reload() {
	w := g.opts.Watcher
	if w == nil {
		return
	}
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				g.opts.Watcher = nil
				return
			}
			if err := g.sim.Reload(name); err != nil {
				log.Printf("game: reload %s: %v", name, err)
				continue
			}
			g.opts.Specs = g.sim.Specs
		case err, ok := <-w.Errors:
			if !ok {
				g.opts.Watcher = nil
				return
			}
			log.Printf("game: watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.sim.Snapshot()
	v := newView(g.opts.Specs.Player.CameraYaw)

	screen.Fill(g.opts.Specs.Arena.Floor.Or(backgroundColor))
	if g.opts.Debug {
		drawMesh(screen, v, g.sim.Mesh())
	}
	drawSnapshot(screen, v, snap)

	rec := g.opts.Store.Record()
	hud := fmt.Sprintf("Time %.1fs  Kills %d  Health %.0f  Best %.1fs", snap.Survived, snap.Kills, g.sim.PlayerHealth(), rec.BestSurvival)
	if g.opts.Debug {
		hud += fmt.Sprintf("\nTPS %.1f  FPS %.1f  enemies %d  run %d", ebiten.ActualTPS(), ebiten.ActualFPS(), len(snap.Enemies), g.runs)
	}
	ebitenutil.DebugPrint(screen, hud)

	if g.paused || snap.Over {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

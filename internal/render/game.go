package render

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/DebuggersLV/ants.debuggers.lv/pkg/simulation"
	"github.com/DebuggersLV/ants.debuggers.lv/pkg/ui"
	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tochemey/goakt/v3/actor"
)

// snapshotBuffer matches the largest steps-per-frame setting. Once full,
// the sink evicts the oldest snapshot to make room for the newest.
const snapshotBuffer = 32

var (
	background  = color.RGBA{R: 24, G: 24, B: 28, A: 255}
	carrierRing = color.RGBA{R: 255, G: 220, B: 120, A: 255}
)

// Game drives the world actor from ebiten's update loop and draws the
// latest snapshot it pushed back.
type Game struct {
	ctx        context.Context
	worldPID   *actor.PID
	snapshotCh chan *simulation.Snapshot
	lastState  *simulation.Snapshot
	cfg        *simulation.Config

	// Driver controls
	panel           *ui.UIPanel
	widgetPaused    *ui.Checkbox
	widgetSpeed     *ui.Slider
	widgetStep      *ui.Button
	widgetHighlight *ui.Checkbox
	pendingSteps    int

	// Timing instrumentation
	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
	updateAvg          float64 // Rolling average in ms
	drawAvg            float64 // Rolling average in ms
}

// GetNewGame spawns the world actor on system and wires its snapshots to the screen.
func GetNewGame(ctx context.Context, cfg *simulation.Config, system actor.ActorSystem, opts ...simulation.Option) (*Game, error) {
	snapshotCh := make(chan *simulation.Snapshot, snapshotBuffer)

	worldPID, err := system.Spawn(ctx, "world", simulation.NewWorldActor(snapshotCh, cfg, opts...))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn world: %w", err)
	}

	g := &Game{
		ctx:        ctx,
		worldPID:   worldPID,
		snapshotCh: snapshotCh,
		cfg:        cfg,
		panel:      ui.NewUIPanel(10, 10, 170, "Driver [H hides]"),
	}
	g.widgetPaused = g.panel.AddCheckbox("Paused [space]", false)
	g.widgetSpeed = g.panel.AddSlider("Steps per frame", 1, snapshotBuffer, 1, 1)
	g.widgetStep = g.panel.AddButton("Step", func() { g.pendingSteps++ })
	g.widgetHighlight = g.panel.AddCheckbox("Ring carriers", true)
	return g, nil
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()

	// 1. Controls
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.widgetPaused.Value = !g.widgetPaused.Value
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.panel.Hidden = !g.panel.Hidden
	}
	g.widgetStep.Disabled = !g.widgetPaused.Value
	g.panel.Update()

	// 2. Latest state, before deciding whether to tick
	g.drainSnapshots()
	if g.lastState != nil && g.lastState.Halted {
		// the world is frozen in its final state
		return nil
	}

	// 3. Steps for this frame
	steps := g.pendingSteps
	g.pendingSteps = 0
	if !g.widgetPaused.Value {
		steps = g.widgetSpeed.Int()
	}
	for range steps {
		if err := actor.Tell(g.ctx, g.worldPID, simulation.Tick()); err != nil {
			return fmt.Errorf("failed to tick world: %w", err)
		}
	}
	return nil
}

// drainSnapshots empties the channel and keeps the last snapshot it read,
// which is the newest one the world pushed.
func (g *Game) drainSnapshots() {
	for {
		select {
		case snap := <-g.snapshotCh:
			g.lastState = snap
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.lastDrawDuration = time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(g.lastDrawDuration.Microseconds())/1000.0*0.05
	}()

	screen.Fill(background)

	// 1. Bodies, y axis pointing up
	if s := g.lastState; s != nil {
		h := float64(s.Height)
		for _, b := range s.Objects {
			vector.FillCircle(screen, float32(b.Pos.X), float32(h-b.Pos.Y), float32(b.Radius), s.ObjectColor, true)
		}
		for _, b := range s.Agents {
			vector.FillCircle(screen, float32(b.Pos.X), float32(h-b.Pos.Y), float32(b.Radius), s.AgentColor, true)
			if b.Held && g.widgetHighlight.Value {
				vector.StrokeCircle(screen, float32(b.Pos.X), float32(h-b.Pos.Y), float32(b.Radius+2), 1, carrierRing, true)
			}
		}
	}

	// 2. Controls
	g.panel.Draw(screen)

	// 3. Status
	g.drawStatus(screen)

	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\n\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.updateAvg,
		g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, g.cfg.WorldWidth-120, 10)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	y := g.cfg.WorldHeight - 20
	s := g.lastState
	if s == nil {
		ebitenutil.DebugPrintAt(screen, "waiting for the first step...", 10, y)
		return
	}

	msg := fmt.Sprintf("t = %s / %s   carried %d of %d",
		humanize.Commaf(s.Time), humanize.Commaf(g.cfg.AvailableTime), s.Carried, len(s.Objects))
	switch {
	case s.Halted:
		msg += "   HALTED"
	case g.widgetPaused.Value:
		msg += "   paused"
	}
	ebitenutil.DebugPrintAt(screen, msg, 10, y)
}

func (g *Game) Layout(w, h int) (int, int) { return g.cfg.WorldWidth, g.cfg.WorldHeight }

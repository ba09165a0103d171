// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/ecsreg/ecs"
	"github.com/plus3/ecsreg/ecs/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Use this to integrate Dear ImGui rendering into Ebiten game loops.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Game implements ebiten.Game by running one scheduler frame per tick inside
// an ImGui frame. Render functions deferred by ImguiSystem and DebugUISystem
// run when the scheduler flushes its commands, before the ImGui frame ends.
type Game struct {
	Scheduler *ecs.Scheduler
	Backend   ImguiBackend
	// DrawWorld draws game content below the ImGui overlay. Optional.
	DrawWorld func(screen *ebiten.Image)

	timer *debugui.FrameTimer
}

// NewGame creates a Game for scheduler, spawning the ImGui input-state entity
// in the scheduler's registry.
func NewGame(scheduler *ecs.Scheduler, backend *ebitenbackend.EbitenBackend) *Game {
	debugui.SpawnInputState(scheduler.Registry())
	return &Game{
		Scheduler: scheduler,
		Backend:   ImguiBackend{EbitenBackend: backend},
		timer:     debugui.NewFrameTimer(),
	}
}

func (g *Game) Update() error {
	// Begin ImGui frame before executing systems
	g.Backend.BeginFrame()

	g.Scheduler.Once(float64(g.timer.GetDeltaTime()))

	// End ImGui frame after systems complete
	g.Backend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.DrawWorld != nil {
		g.DrawWorld(screen)
	}

	// Draw ImGui overlay on top
	g.Backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

package ebiten_test

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/ecsreg/ecs"
	"github.com/plus3/ecsreg/ecs/debugui"
	debugui_ebiten "github.com/plus3/ecsreg/ecs/debugui/ebiten"
	"github.com/plus3/ecsreg/eventbus"
)

func Example() {
	// Create Ebiten window and ImGui backend
	imguiBackend := ebitenbackend.NewEbitenBackend()
	imguiBackend.CreateWindow("ECS ImGui Example", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	registry := ecs.NewRegistry()
	debugui.RegisterDebugUIComponents(registry.Components())
	scheduler := ecs.NewScheduler(registry, eventbus.New())

	// Spawn entities with ImGui render functions
	e := registry.CreateEntity()
	ecs.AddComponent(e, debugui.ImguiItem{
		Render: func() {
			imgui.Begin("Debug Window")
			imgui.Text("Hello from ECS!")
			imgui.End()
		},
	})

	// Built-in inspection windows
	debugui.SpawnDebugUI(registry)

	scheduler.Register(debugui.NewImguiSystem())
	scheduler.Register(debugui.NewDebugUISystem(scheduler))

	game := debugui_ebiten.NewGame(scheduler, imguiBackend)

	// Run the game
	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}

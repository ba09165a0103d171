// Package debugui provides immediate-mode GUI integration for ECS applications using Dear ImGui.
// Render functions and debug windows are ordinary components; the systems in
// this package collect them each frame and defer their rendering to the end
// of the frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ecsreg/ecs"
)

// InputTag is the tag of the entity holding ImguiInputState.
const InputTag = "imgui-input"

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming input. It lives on
// the entity tagged InputTag; game systems check it before handling mouse or
// keyboard events themselves.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem matches every entity with an ImguiItem and defers its render
// function. It also refreshes the ImguiInputState of the input entity.
type ImguiSystem struct {
	ecs.BaseSystem
}

// NewImguiSystem creates the system with its ImguiItem requirement declared.
func NewImguiSystem() *ImguiSystem {
	s := &ImguiSystem{}
	ecs.RequireComponent[ImguiItem](&s.BaseSystem)
	return s
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	if input, ok := frame.Registry.GetEntityByTag(InputTag); ok {
		if state, err := ecs.GetComponent[ImguiInputState](input); err == nil {
			state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
			state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()
		}
	}

	for _, e := range i.Entities() {
		item := ecs.MustGetComponent[ImguiItem](e)
		if item.Render != nil {
			frame.Commands.Defer(item.Render)
		}
	}
}

// InputState returns the current input capture state, or the zero value when
// no input entity exists.
func InputState(r *ecs.Registry) ImguiInputState {
	input, ok := r.GetEntityByTag(InputTag)
	if !ok {
		return ImguiInputState{}
	}
	state, err := ecs.GetComponent[ImguiInputState](input)
	if err != nil {
		return ImguiInputState{}
	}
	return *state
}

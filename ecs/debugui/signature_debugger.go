package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ecsreg/ecs"
)

// maxListedMatches caps the entity ids printed under the match count.
const maxListedMatches = 64

type SignatureDebuggerCache struct {
	componentTypes []string
	ids            map[string]ecs.ComponentId
}

// SignatureMatch is the result of evaluating a signature against a registry.
type SignatureMatch struct {
	Signature ecs.Signature
	Entities  []ecs.EntityId
	Systems   []string
}

func NewSignatureDebuggerComponent() SignatureDebuggerComponent {
	return SignatureDebuggerComponent{
		selectedComponentTypes: make(map[string]bool),
		cache:                  &SignatureDebuggerCache{},
	}
}

func (sd *SignatureDebuggerComponent) Render(r *ecs.Registry) {
	if !imgui.BeginV("Signature Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	sd.rebuildCacheIfNeeded(r)

	imgui.Text("Select Component Types:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		sd.selectedComponentTypes = make(map[string]bool)
	}

	for _, compType := range sd.cache.componentTypes {
		selected := sd.selectedComponentTypes[compType]
		if imgui.Checkbox(compType, &selected) {
			if selected {
				sd.selectedComponentTypes[compType] = true
			} else {
				delete(sd.selectedComponentTypes, compType)
			}
		}
	}

	imgui.Separator()

	sig := sd.selectedSignature()
	if sig.IsEmpty() {
		imgui.Text("No component types selected")
		imgui.End()
		return
	}

	match := matchSignature(r, sig)
	imgui.Text(fmt.Sprintf("Signature: %s", sig.String()))
	imgui.Text(fmt.Sprintf("Matching Entities: %d", len(match.Entities)))

	if imgui.TreeNodeStr("Systems processing this signature") {
		for _, name := range match.Systems {
			imgui.BulletText(name)
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Entity Ids") {
		for i, id := range match.Entities {
			if i == maxListedMatches {
				imgui.Text(fmt.Sprintf("... %d more", len(match.Entities)-maxListedMatches))
				break
			}
			imgui.BulletText(fmt.Sprintf("%d", id))
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (sd *SignatureDebuggerComponent) rebuildCacheIfNeeded(r *ecs.Registry) {
	types := r.Components().Types()
	if len(sd.cache.componentTypes) == len(types) {
		return
	}

	sd.cache.ids = make(map[string]ecs.ComponentId, len(types))
	sd.cache.componentTypes = make([]string, 0, len(types))
	for i, t := range types {
		sd.cache.ids[t.String()] = ecs.ComponentId(i)
		sd.cache.componentTypes = append(sd.cache.componentTypes, t.String())
	}

	sort.Strings(sd.cache.componentTypes)
}

func (sd *SignatureDebuggerComponent) selectedSignature() ecs.Signature {
	var sig ecs.Signature
	for name := range sd.selectedComponentTypes {
		if id, ok := sd.cache.ids[name]; ok {
			sig = sig.Set(id)
		}
	}
	return sig
}

// matchSignature lists the active entities holding every component in sig,
// and the systems whose requirement those entities satisfy.
func matchSignature(r *ecs.Registry, sig ecs.Signature) SignatureMatch {
	match := SignatureMatch{Signature: sig}

	for _, e := range r.Entities() {
		if r.IsPending(e) {
			continue
		}
		if e.Signature().Contains(sig) {
			match.Entities = append(match.Entities, e.Id())
		}
	}

	for _, sys := range r.CollectStats().Systems {
		if sig.Contains(sys.Signature) {
			match.Systems = append(match.Systems, sys.Name)
		}
	}

	return match
}

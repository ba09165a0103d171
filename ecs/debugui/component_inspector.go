package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ecsreg/ecs"
)

func NewComponentInspectorComponent() ComponentInspectorComponent {
	return ComponentInspectorComponent{}
}

// Select sets the entity shown by the inspector.
func (ci *ComponentInspectorComponent) Select(id ecs.EntityId, ok bool) {
	ci.selected = id
	ci.hasSelection = ok
}

func (ci *ComponentInspectorComponent) Render(r *ecs.Registry) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if !ci.hasSelection {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	entity := r.Entity(ci.selected)
	if !r.IsAlive(entity) {
		imgui.Text(fmt.Sprintf("Entity %d is no longer alive", ci.selected))
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity ID: %d", ci.selected))
	imgui.Text(fmt.Sprintf("Signature: %s", entity.Signature().String()))
	if tag, ok := r.TagOf(entity); ok {
		imgui.Text(fmt.Sprintf("Tag: %s", tag))
	}
	if group, ok := r.GroupOf(entity); ok {
		imgui.Text(fmt.Sprintf("Group: %s", group))
	}
	switch {
	case r.IsPendingKill(entity):
		imgui.Text("State: pending kill")
	case r.IsPending(entity):
		imgui.Text("State: pending")
	}
	imgui.Separator()

	for _, compType := range r.ComponentTypes(entity) {
		component := r.ComponentByType(entity, compType)
		if component == nil {
			continue
		}

		if imgui.TreeNodeStr(compType.String()) {
			renderComponent(reflect.ValueOf(component).Elem(), compType)
			imgui.TreePop()
		}
	}

	imgui.End()
}

// renderComponent draws an editor for the component behind val. val is
// addressable because it comes from a pointer into the pool, so edits write
// straight back into the component.
func renderComponent(val reflect.Value, compType reflect.Type) {
	fields := globalReflectionCache.GetFields(compType)
	if len(fields) == 0 {
		if val.Kind() == reflect.Struct {
			imgui.Text("no exported fields")
		} else {
			renderValue("value", val)
		}
		return
	}

	for _, field := range fields {
		fieldVal := val.Field(field.Index)
		if field.IsPointer {
			if fieldVal.IsNil() {
				imgui.Text(fmt.Sprintf("%s: nil", field.Name))
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		renderValue(field.Name, fieldVal)
	}
}

func renderValue(name string, val reflect.Value) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && v >= 0 && val.CanSet() {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(fmt.Sprintf("##%s", name), "", &v, imgui.InputTextFlagsNone, nil) && val.CanSet() {
			val.SetString(v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			renderComponent(val, val.Type())
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	case reflect.Func:
		imgui.Text(fmt.Sprintf("%s: func", name))

	default:
		if val.CanInterface() {
			imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
		} else {
			imgui.Text(fmt.Sprintf("%s: <unexported>", name))
		}
	}
}

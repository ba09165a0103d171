package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ecsreg/ecs"
)

type SystemViewerCache struct {
	systems       []ecs.SystemInfo
	sortColumn    int
	sortAscending bool
}

func NewSystemViewerComponent() SystemViewerComponent {
	return SystemViewerComponent{
		cache: &SystemViewerCache{
			sortColumn:    3,
			sortAscending: false,
		},
	}
}

// Render draws the system table. When a row is clicked it returns the
// system's signature and true.
func (sv *SystemViewerComponent) Render(r *ecs.Registry) (ecs.Signature, bool) {
	if !imgui.BeginV("System Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return 0, false
	}

	sv.rebuildCache(r)

	maxEntityCount := 0
	for _, sys := range sv.cache.systems {
		maxEntityCount = max(maxEntityCount, sys.EntityCount)
	}

	var clicked ecs.Signature
	wasClicked := false

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("SystemTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Signature")
		imgui.TableSetupColumn("Requires")
		imgui.TableSetupColumn("Entity Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			sv.cache.sortColumn = int(spec.ColumnIndex())
			sv.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sv.sortSystems()
			sortSpecs.SetSpecsDirty(false)
		}

		for _, sys := range sv.cache.systems {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := sv.selectedSystem == sys.Name
			if imgui.SelectableBoolV(sys.Name, isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				sv.selectedSystem = sys.Name
				clicked = sys.Signature
				wasClicked = true
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("0x%08X", uint32(sys.Signature)))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(sys.Components, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", sys.EntityCount))

			if maxEntityCount > 0 {
				barWidth := float32(sys.EntityCount) / float32(maxEntityCount) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	imgui.End()
	return clicked, wasClicked
}

func (sv *SystemViewerComponent) rebuildCache(r *ecs.Registry) {
	sv.cache.systems = r.CollectStats().Systems
	sv.sortSystems()
}

func (sv *SystemViewerComponent) sortSystems() {
	sort.SliceStable(sv.cache.systems, func(i, j int) bool {
		a, b := sv.cache.systems[i], sv.cache.systems[j]
		var less bool

		switch sv.cache.sortColumn {
		case 0:
			less = a.Name < b.Name
		case 1:
			less = a.Signature < b.Signature
		case 2:
			less = len(a.Components) < len(b.Components)
		default:
			less = a.EntityCount < b.EntityCount
		}

		if !sv.cache.sortAscending {
			return !less
		}
		return less
	})
}

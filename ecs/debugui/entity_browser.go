package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ecsreg/ecs"
)

type EntityInfo struct {
	ID             ecs.EntityId
	Signature      ecs.Signature
	ComponentTypes []string
	Tag            string
	Group          string
}

type EntityBrowserCache struct {
	entities      []EntityInfo
	sortColumn    int
	sortAscending bool
}

func NewEntityBrowserComponent(maxEntitiesPerPage int) EntityBrowserComponent {
	return EntityBrowserComponent{
		cache: &EntityBrowserCache{
			sortColumn:    0,
			sortAscending: true,
		},
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

func (eb *EntityBrowserComponent) Render(r *ecs.Registry) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.rebuildCache(r)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
		eb.filterSignature = nil
		eb.currentPage = 0
	}
	if eb.filterSignature != nil {
		imgui.Text(fmt.Sprintf("Signature filter: %s", eb.filterSignature.String()))
	}

	filteredEntities := eb.getFilteredEntities()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Signature")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Tag")
		imgui.TableSetupColumn("Group")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.cache.sortColumn = int(spec.ColumnIndex())
			eb.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			eb.sortEntities()
			filteredEntities = eb.getFilteredEntities()
			sortSpecs.SetSpecsDirty(false)
		}

		startIdx := min(eb.currentPage*eb.maxEntitiesPerPage, len(filteredEntities))
		endIdx := min(startIdx+eb.maxEntitiesPerPage, len(filteredEntities))

		for _, entity := range filteredEntities[startIdx:endIdx] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.hasSelection && eb.selected == entity.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", entity.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selected = entity.ID
				eb.hasSelection = true
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("0x%08X", uint32(entity.Signature)))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.ComponentTypes, ", "))

			imgui.TableNextColumn()
			imgui.Text(entity.Tag)

			imgui.TableNextColumn()
			imgui.Text(entity.Group)
		}

		imgui.EndTable()
	}

	if len(filteredEntities) > eb.maxEntitiesPerPage {
		totalPages := (len(filteredEntities) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filteredEntities)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		eb.currentPage = 0
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filteredEntities)))
	}

	imgui.End()
}

// rebuildCache snapshots every allocated entity. Component sets change
// without any cheap version counter to key on, so the snapshot is retaken
// each frame the window is open.
func (eb *EntityBrowserComponent) rebuildCache(r *ecs.Registry) {
	eb.cache.entities = eb.cache.entities[:0]

	for _, e := range r.Entities() {
		types := r.ComponentTypes(e)
		componentTypes := make([]string, len(types))
		for i, t := range types {
			componentTypes[i] = t.String()
		}

		tag, _ := r.TagOf(e)
		group, _ := r.GroupOf(e)
		eb.cache.entities = append(eb.cache.entities, EntityInfo{
			ID:             e.Id(),
			Signature:      e.Signature(),
			ComponentTypes: componentTypes,
			Tag:            tag,
			Group:          group,
		})
	}

	eb.sortEntities()
}

func (eb *EntityBrowserComponent) sortEntities() {
	sort.SliceStable(eb.cache.entities, func(i, j int) bool {
		a, b := eb.cache.entities[i], eb.cache.entities[j]
		var less bool

		switch eb.cache.sortColumn {
		case 0:
			less = a.ID < b.ID
		case 1:
			less = a.Signature < b.Signature
		case 2:
			less = strings.Join(a.ComponentTypes, ",") < strings.Join(b.ComponentTypes, ",")
		case 3:
			less = a.Tag < b.Tag
		case 4:
			less = a.Group < b.Group
		default:
			less = a.ID < b.ID
		}

		if !eb.cache.sortAscending {
			return !less
		}
		return less
	})
}

func (eb *EntityBrowserComponent) getFilteredEntities() []EntityInfo {
	if eb.filterText == "" && eb.filterSignature == nil {
		return eb.cache.entities
	}

	filtered := make([]EntityInfo, 0, len(eb.cache.entities))
	filterLower := strings.ToLower(eb.filterText)

	for _, entity := range eb.cache.entities {
		if eb.filterSignature != nil && !entity.Signature.Contains(*eb.filterSignature) {
			continue
		}

		if eb.filterText != "" {
			idStr := fmt.Sprintf("%d", entity.ID)
			componentsStr := strings.ToLower(strings.Join(entity.ComponentTypes, " "))

			if !strings.Contains(idStr, filterLower) &&
				!strings.Contains(componentsStr, filterLower) &&
				!strings.Contains(strings.ToLower(entity.Tag), filterLower) &&
				!strings.Contains(strings.ToLower(entity.Group), filterLower) {
				continue
			}
		}

		filtered = append(filtered, entity)
	}

	return filtered
}

// FilterBySignature limits the browser to entities whose signature contains sig.
func (eb *EntityBrowserComponent) FilterBySignature(sig ecs.Signature) {
	eb.filterSignature = &sig
	eb.currentPage = 0
}

func (eb *EntityBrowserComponent) GetSelectedEntity() (ecs.EntityId, bool) {
	return eb.selected, eb.hasSelection
}

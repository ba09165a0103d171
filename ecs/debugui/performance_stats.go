package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ecsreg/ecs"
)

func NewPerformanceStatsComponent(historyFrames int) PerformanceStatsComponent {
	return PerformanceStatsComponent{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

// record stores a frame time in milliseconds and returns the average over the history.
func (ps *PerformanceStatsComponent) record(deltaTime float32) float32 {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	return avgFrameTime / float32(ps.historyFrames)
}

// Render draws registry counts, the frame time graph and, when scheduler is
// not nil, per-system timings.
func (ps *PerformanceStatsComponent) Render(r *ecs.Registry, scheduler *ecs.Scheduler, deltaTime float32) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avgFrameTime := ps.record(deltaTime)
	stats := r.CollectStats()

	imgui.Text(fmt.Sprintf("Active Entities: %d", stats.EntityCount))
	imgui.Text(fmt.Sprintf("Pending: +%d / -%d", stats.PendingAddCount, stats.PendingKillCount))
	imgui.Text(fmt.Sprintf("Free Ids: %d", stats.FreeIdCount))
	imgui.Text(fmt.Sprintf("Component Types: %d / %d", stats.ComponentTypeCount, ecs.MaxComponents))
	imgui.Text(fmt.Sprintf("Tags: %d  Groups: %d", stats.TagCount, stats.GroupCount))

	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Component Pools") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PoolStatsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Id")
			imgui.TableSetupColumn("Component")
			imgui.TableSetupColumn("Size")
			imgui.TableHeadersRow()

			for _, pool := range stats.Pools {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", pool.Id))
				imgui.TableNextColumn()
				imgui.Text(pool.Type)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", pool.Size))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if scheduler != nil && imgui.TreeNodeStr("System Timings") {
		schedStats := scheduler.GetStats()
		imgui.Text(fmt.Sprintf("Frames: %d", schedStats.FrameCount))

		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemTimingTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range schedStats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(sys.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Groups") {
		for _, group := range r.Groups() {
			imgui.BulletText(fmt.Sprintf("%s (%d)", group, len(r.GetEntitiesByGroup(group))))
		}
		imgui.TreePop()
	}

	imgui.End()
}

// FrameTimer measures wall-clock time between frames for loops that do not
// run at a fixed rate.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}

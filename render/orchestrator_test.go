package render

import (
	"slices"
	"testing"

	"github.com/lixenwraith/hell-escape/engine"
)

type recordingRenderer struct {
	name    string
	log     *[]string
	visible bool
}

func (r *recordingRenderer) Render(RenderContext, *RenderBuffer) { *r.log = append(*r.log, r.name) }
func (r *recordingRenderer) ShouldRender(RenderContext) bool     { return r.visible }

func TestRenderOrchestrator_PriorityOrder(t *testing.T) {
	var log []string
	o := NewRenderOrchestrator(4, 4)

	o.Register(&recordingRenderer{name: "overlay", log: &log, visible: true}, PriorityOverlay)
	o.Register(&recordingRenderer{name: "bg", log: &log, visible: true}, PriorityBackground)
	o.Register(&recordingRenderer{name: "world-a", log: &log, visible: true}, PriorityWorld)
	o.Register(&recordingRenderer{name: "hidden", log: &log, visible: false}, PriorityWorld)
	o.Register(&recordingRenderer{name: "world-b", log: &log, visible: true}, PriorityWorld)

	o.Compose(engine.NewGameContext(nil))

	want := []string{"bg", "world-a", "world-b", "overlay"}
	if !slices.Equal(log, want) {
		t.Errorf("Expected %v, got %v", want, log)
	}
}

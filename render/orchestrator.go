package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hell-escape/engine"
	"github.com/lixenwraith/hell-escape/parameter/visual"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline for the game area
type RenderOrchestrator struct {
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator for a cols x rows cell area
func NewRenderOrchestrator(cols, rows int) *RenderOrchestrator {
	return &RenderOrchestrator{
		buffer:    NewRenderBuffer(cols, rows),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates the game area in cells
func (o *RenderOrchestrator) Resize(cols, rows int) {
	o.buffer.Resize(cols, rows)
}

// Buffer exposes the composited frame
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// Compose runs every renderer whose condition holds into the buffer
// Must run on the loop goroutine, the context is read directly
func (o *RenderOrchestrator) Compose(ctx *engine.GameContext) {
	o.buffer.Clear(visual.RgbBlack)
	w, h := o.buffer.Size()
	rc := NewRenderContext(ctx, w, h)

	for _, entry := range o.renderers {
		if c, ok := entry.renderer.(Conditional); ok && !c.ShouldRender(rc) {
			continue
		}
		entry.renderer.Render(rc, o.buffer)
	}
}

// RenderFrame composes and flushes to screen at cell offset (ox, oy)
// The caller calls screen.Show after drawing the rest of the layout
func (o *RenderOrchestrator) RenderFrame(ctx *engine.GameContext, screen tcell.Screen, ox, oy int) {
	o.Compose(ctx)
	o.buffer.FlushToScreen(screen, ox, oy)
}

package render

// SystemRenderer draws one layer of the frame
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// Conditional renderers are skipped on frames where ShouldRender is false
// Used by overlays gated on run state (pause dim, frame debug)
type Conditional interface {
	ShouldRender(ctx RenderContext) bool
}

package render

import (
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sketchy-shooter/engine"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
// A nil screen turns every frame into a no-op
type RenderOrchestrator struct {
	mu        sync.Mutex // Serializes frames from the loop and from phase changes
	screen    tcell.Screen
	renderers []rendererEntry
	regCount  int
	frames    uint64

	// Last laid-out viewport, read by the input goroutine for pointer mapping
	view atomic.Pointer[Viewport]
}

// NewRenderOrchestrator creates an orchestrator drawing to screen
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	o := &RenderOrchestrator{
		screen:    screen,
		renderers: make([]rendererEntry, 0, 8),
	}
	if screen != nil {
		o.layout()
	}
	return o
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	o.mu.Lock()
	defer o.mu.Unlock()

	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize re-lays the viewport after a terminal resize and repaints
func (o *RenderOrchestrator) Resize() {
	if o.screen == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.layout()
	o.screen.Sync()
}

// layout recomputes the viewport from the screen size
func (o *RenderOrchestrator) layout() RenderContext {
	w, h := o.screen.Size()
	v := NewViewport(w, h)
	o.view.Store(&v)
	return RenderContext{ScreenWidth: w, ScreenHeight: h, View: v}
}

// RenderFrame executes the render pipeline: clear, render all, show
func (o *RenderOrchestrator) RenderFrame(s engine.State) {
	if o.screen == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	ctx := o.layout()
	o.frames++ // Guarded by mu
	ctx.Frame = o.frames

	o.screen.Clear()
	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible(s) {
			continue
		}
		entry.renderer.Render(ctx, s, o.screen)
	}
	o.screen.Show()
}

// ScreenToArena maps a screen cell through the last laid-out viewport
func (o *RenderOrchestrator) ScreenToArena(x, y int) (engine.Vec, bool) {
	v := o.view.Load()
	if v == nil {
		return engine.Vec{}, false
	}
	return v.ScreenToArena(x, y)
}

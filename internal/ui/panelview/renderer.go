// Package panelview presents accordion documents with Fyne: a renderer that
// executes show/hide intents against canvas objects, a tappable trigger
// widget that feeds activations into the document tree, and the Section
// builder that pairs the two.
package panelview

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/shhac/bellows/internal/accordion"
	"github.com/shhac/bellows/internal/dom"
)

// Compile-time interface check.
var _ accordion.Renderer = (*Renderer)(nil)

// Renderer executes render intents against the canvas objects tracked for
// content nodes. Animated intents run on Fyne's animation timeline and are
// never awaited by the caller; instant intents apply synchronously.
type Renderer struct {
	duration time.Duration
	objects  map[*dom.Node]fyne.CanvasObject
}

// NewRenderer creates a renderer whose animated transitions take duration.
// A zero or negative duration degrades animated intents to instant ones.
func NewRenderer(duration time.Duration) *Renderer {
	return &Renderer{
		duration: duration,
		objects:  make(map[*dom.Node]fyne.CanvasObject),
	}
}

// Track associates a content node with the canvas object that presents it.
// Intents for untracked nodes are dropped.
func (r *Renderer) Track(node *dom.Node, obj fyne.CanvasObject) {
	r.objects[node] = obj
}

// ShowInstant implements accordion.Renderer.
func (r *Renderer) ShowInstant(node *dom.Node) {
	if obj, ok := r.objects[node]; ok {
		obj.Show()
	}
}

// HideInstant implements accordion.Renderer.
func (r *Renderer) HideInstant(node *dom.Node) {
	if obj, ok := r.objects[node]; ok {
		obj.Hide()
	}
}

// ShowAnimated implements accordion.Renderer.
func (r *Renderer) ShowAnimated(node *dom.Node) {
	obj, ok := r.objects[node]
	if !ok {
		return
	}
	if r.duration <= 0 {
		obj.Show()
		return
	}
	obj.Show()
	target := obj.MinSize()
	anim := fyne.NewAnimation(r.duration, func(progress float32) {
		obj.Resize(fyne.NewSize(target.Width, target.Height*progress))
	})
	anim.Curve = fyne.AnimationEaseInOut
	anim.Start()
}

// HideAnimated implements accordion.Renderer.
func (r *Renderer) HideAnimated(node *dom.Node) {
	obj, ok := r.objects[node]
	if !ok {
		return
	}
	if r.duration <= 0 {
		obj.Hide()
		return
	}
	start := obj.Size()
	anim := fyne.NewAnimation(r.duration, func(progress float32) {
		obj.Resize(fyne.NewSize(start.Width, start.Height*(1-progress)))
		if progress >= 1 {
			obj.Hide()
		}
	})
	anim.Curve = fyne.AnimationEaseInOut
	anim.Start()
}

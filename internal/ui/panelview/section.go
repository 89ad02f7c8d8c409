package panelview

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/bellows/internal/accordion"
	"github.com/shhac/bellows/internal/dom"
)

// Section pairs one accordion container subtree (container > trigger,
// content) with the Fyne objects presenting it. The subtree is built with the
// markers of the supplied configuration, so binding the parent document
// discovers the section without further wiring.
type Section struct {
	title   string
	node    *dom.Node
	trigger *Trigger
	content fyne.CanvasObject
	box     *fyne.Container
}

// NewSection builds a section titled title around content. The content's
// canvas object is tracked with renderer so show/hide intents reach it.
func NewSection(cfg accordion.Config, title string, content fyne.CanvasObject, renderer *Renderer) *Section {
	node := dom.NewNode(cfg.ContainerMarker)
	triggerNode := dom.NewNode(cfg.TriggerMarker)
	contentNode := dom.NewNode(cfg.ContentMarker)
	node.Append(triggerNode, contentNode)

	trigger := NewTrigger(title, triggerNode)
	renderer.Track(contentNode, content)

	return &Section{
		title:   title,
		node:    node,
		trigger: trigger,
		content: content,
		box:     container.NewVBox(trigger, widget.NewSeparator(), content),
	}
}

// Title returns the section's header title.
func (s *Section) Title() string {
	return s.title
}

// Node returns the section's container node, for attaching into a document.
func (s *Section) Node() *dom.Node {
	return s.node
}

// CanvasObject returns the section's presentation for window layout.
func (s *Section) CanvasObject() fyne.CanvasObject {
	return s.box
}

// Trigger returns the section's header widget.
func (s *Section) Trigger() *Trigger {
	return s.trigger
}

// SetCollapsed updates the header chevron; visibility itself is driven by the
// renderer's intents.
func (s *Section) SetCollapsed(collapsed bool) {
	s.trigger.SetCollapsed(collapsed)
	s.box.Refresh()
}

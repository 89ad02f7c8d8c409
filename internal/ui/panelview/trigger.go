package panelview

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/bellows/internal/dom"
)

// Compile-time interface check.
var _ fyne.Tappable = (*Trigger)(nil)

// Trigger is the clickable header of an accordion section. Tapping it
// activates its document node; the accordion binding attached to that node
// decides what happens. The chevron icon tracks the collapsed state.
type Trigger struct {
	widget.BaseWidget

	node  *dom.Node
	label *widget.Label
	icon  *widget.Icon
}

// NewTrigger creates a trigger header for the given document node.
func NewTrigger(title string, node *dom.Node) *Trigger {
	t := &Trigger{
		node:  node,
		label: widget.NewLabel(title),
		icon:  widget.NewIcon(theme.MenuExpandIcon()),
	}
	t.label.TextStyle = fyne.TextStyle{Bold: true}
	t.ExtendBaseWidget(t)
	return t
}

// Tapped implements fyne.Tappable by dispatching an activation on the
// trigger's document node.
func (t *Trigger) Tapped(_ *fyne.PointEvent) {
	t.node.Activate()
}

// SetCollapsed updates the chevron to reflect the section's state.
func (t *Trigger) SetCollapsed(collapsed bool) {
	if collapsed {
		t.icon.SetResource(theme.MenuExpandIcon())
	} else {
		t.icon.SetResource(theme.MenuDropDownIcon())
	}
}

// Node returns the document node the trigger activates.
func (t *Trigger) Node() *dom.Node {
	return t.node
}

// CreateRenderer implements fyne.Widget.
func (t *Trigger) CreateRenderer() fyne.WidgetRenderer {
	row := container.NewBorder(nil, nil, t.icon, nil, t.label)
	return widget.NewSimpleRenderer(row)
}

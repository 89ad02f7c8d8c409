package panelview

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/bellows/internal/accordion"
	"github.com/shhac/bellows/internal/dom"
)

func TestRenderer_InstantIntents(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	r := NewRenderer(0)
	node := dom.NewNode("accordion-content")
	obj := widget.NewLabel("content")
	r.Track(node, obj)

	r.HideInstant(node)
	assert.False(t, obj.Visible())

	r.ShowInstant(node)
	assert.True(t, obj.Visible())
}

func TestRenderer_ZeroDurationAnimatedDegradesToInstant(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	r := NewRenderer(0)
	node := dom.NewNode("accordion-content")
	obj := widget.NewLabel("content")
	r.Track(node, obj)

	r.HideAnimated(node)
	assert.False(t, obj.Visible())

	r.ShowAnimated(node)
	assert.True(t, obj.Visible())
}

func TestRenderer_UntrackedNodeIsDropped(t *testing.T) {
	r := NewRenderer(0)
	r.ShowInstant(dom.NewNode("accordion-content"))
	r.HideAnimated(dom.NewNode("accordion-content"))
}

func TestTrigger_TappedActivatesNode(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	node := dom.NewNode("accordion-trigger")
	activations := 0
	node.OnActivate(func(e *dom.Event) {
		activations++
		assert.Same(t, node, e.Target())
	})

	trigger := NewTrigger("Details", node)
	test.Tap(trigger)
	test.Tap(trigger)

	assert.Equal(t, 2, activations)
}

func TestSection_EndToEnd(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	t.Cleanup(func() { accordion.Deregister(accordion.DefaultNamespace) })

	cfg := accordion.DefaultConfig()
	renderer := NewRenderer(0)
	content := widget.NewLabel("panel body")
	section := NewSection(cfg, "Details", content, renderer)

	doc := dom.NewNode("document")
	doc.Append(section.Node())

	_, err := accordion.Install(doc, cfg, renderer)
	require.NoError(t, err)

	// Default collapsed: content hidden instantly, marker class present
	assert.False(t, content.Visible())
	assert.True(t, section.Node().HasClass(accordion.ClassCollapsed))

	// First tap reveals
	test.Tap(section.Trigger())
	assert.True(t, content.Visible())
	assert.False(t, section.Node().HasClass(accordion.ClassCollapsed))
	raw, ok := section.Node().Data(cfg.StateKey)
	require.True(t, ok)
	assert.Equal(t, "visible", raw)

	// Second tap collapses again
	test.Tap(section.Trigger())
	assert.False(t, content.Visible())
	assert.True(t, section.Node().HasClass(accordion.ClassCollapsed))
	raw, _ = section.Node().Data(cfg.StateKey)
	assert.Equal(t, "collapsed", raw)
}

func TestSections_ToggleIndependently(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()
	t.Cleanup(func() { accordion.Deregister(accordion.DefaultNamespace) })

	cfg := accordion.DefaultConfig()
	renderer := NewRenderer(0)
	firstContent := widget.NewLabel("first")
	secondContent := widget.NewLabel("second")
	first := NewSection(cfg, "First", firstContent, renderer)
	second := NewSection(cfg, "Second", secondContent, renderer)

	doc := dom.NewNode("document")
	doc.Append(first.Node(), second.Node())

	_, err := accordion.Install(doc, cfg, renderer)
	require.NoError(t, err)

	test.Tap(first.Trigger())

	assert.True(t, firstContent.Visible())
	assert.False(t, secondContent.Visible(), "sections are independent")
	assert.True(t, second.Node().HasClass(accordion.ClassCollapsed))
}

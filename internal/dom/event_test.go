package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivate_RunsHandlersInOrder(t *testing.T) {
	n := NewNode("trigger")
	var calls []string
	n.OnActivate(func(*Event) { calls = append(calls, "first") })
	n.OnActivate(func(*Event) { calls = append(calls, "second") })

	n.Activate()

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestActivate_BubblesToAncestors(t *testing.T) {
	section := NewNode("section")
	trigger := NewNode("trigger")
	label := NewNode("")
	trigger.Append(label)
	section.Append(trigger)

	var order []string
	var target *Node
	trigger.OnActivate(func(e *Event) {
		order = append(order, "trigger")
		target = e.Target()
	})
	section.OnActivate(func(*Event) { order = append(order, "section") })

	label.Activate()

	assert.Equal(t, []string{"trigger", "section"}, order)
	assert.Same(t, label, target, "event target is the activated node")
}

func TestActivate_DefaultAction(t *testing.T) {
	t.Run("runs when not prevented", func(t *testing.T) {
		n := NewNode("link")
		navigated := false
		n.SetDefaultAction(func() { navigated = true })
		n.OnActivate(func(*Event) {})

		n.Activate()

		assert.True(t, navigated)
	})

	t.Run("suppressed by PreventDefault", func(t *testing.T) {
		n := NewNode("link")
		navigated := false
		n.SetDefaultAction(func() { navigated = true })
		n.OnActivate(func(e *Event) { e.PreventDefault() })

		n.Activate()

		assert.False(t, navigated)
	})

	t.Run("ancestor handler may prevent the target default", func(t *testing.T) {
		parent := NewNode("section")
		link := NewNode("link")
		parent.Append(link)
		navigated := false
		link.SetDefaultAction(func() { navigated = true })
		parent.OnActivate(func(e *Event) { e.PreventDefault() })

		link.Activate()

		assert.False(t, navigated)
	})
}

func TestOnActivate_Unbind(t *testing.T) {
	n := NewNode("trigger")
	count := 0
	unbind := n.OnActivate(func(*Event) { count++ })

	n.Activate()
	require.Equal(t, 1, count)

	unbind()
	n.Activate()
	assert.Equal(t, 1, count)

	// Unbinding twice is safe
	unbind()
	n.Activate()
	assert.Equal(t, 1, count)
}

func TestOnActivate_UnbindDuringDispatch(t *testing.T) {
	n := NewNode("trigger")
	var calls []string
	var unbind Unbind
	unbind = n.OnActivate(func(*Event) {
		calls = append(calls, "once")
		unbind()
	})
	n.OnActivate(func(*Event) { calls = append(calls, "always") })

	n.Activate()
	n.Activate()

	assert.Equal(t, []string{"once", "always", "always"}, calls)
}

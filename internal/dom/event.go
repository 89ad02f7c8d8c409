package dom

// Event describes a single activation travelling up the tree from its target.
type Event struct {
	target    *Node
	prevented bool
}

// Target returns the node the activation originated on.
func (e *Event) Target() *Node {
	return e.target
}

// PreventDefault suppresses the target's default action for this event.
// Handlers on any node along the propagation path may call it.
func (e *Event) PreventDefault() {
	e.prevented = true
}

// DefaultPrevented reports whether a handler suppressed the default action.
func (e *Event) DefaultPrevented() bool {
	return e.prevented
}

// Unbind removes a previously attached activation handler.
type Unbind func()

type handler struct {
	fn     func(*Event)
	active bool
}

// OnActivate attaches an activation handler to the node. Handlers run in
// registration order when the node or any of its descendants is activated.
// The returned Unbind removes the handler.
func (n *Node) OnActivate(fn func(*Event)) Unbind {
	h := &handler{fn: fn, active: true}
	n.handlers = append(n.handlers, h)
	return func() {
		h.active = false
		for i, cur := range n.handlers {
			if cur == h {
				n.handlers = append(n.handlers[:i], n.handlers[i+1:]...)
				return
			}
		}
	}
}

// SetDefaultAction sets the host behavior that runs after an activation on
// this node finishes dispatching, unless a handler prevented it. A navigating
// trigger models its navigation here.
func (n *Node) SetDefaultAction(fn func()) {
	n.defaultAction = fn
}

// Activate dispatches an activation event targeted at this node. Handlers run
// on the target first, then on each ancestor in turn. The target's default
// action runs last unless any handler called PreventDefault.
func (n *Node) Activate() {
	ev := &Event{target: n}
	for cur := n; cur != nil; cur = cur.parent {
		// Snapshot so a handler unbinding itself mid-dispatch stays safe.
		hs := make([]*handler, len(cur.handlers))
		copy(hs, cur.handlers)
		for _, h := range hs {
			if h.active {
				h.fn(ev)
			}
		}
	}
	if !ev.prevented && n.defaultAction != nil {
		n.defaultAction()
	}
}

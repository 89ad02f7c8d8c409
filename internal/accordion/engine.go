package accordion

import "github.com/shhac/bellows/internal/dom"

// Renderer is the visual transition collaborator. Calls are one-way commands:
// the engine never waits for a transition to complete, and an animated
// transition may still be running when the next state change lands.
type Renderer interface {
	// ShowInstant makes node visible with no transition (initial render).
	ShowInstant(node *dom.Node)
	// HideInstant makes node collapsed with no transition (initial render).
	HideInstant(node *dom.Node)
	// ShowAnimated reveals node on the renderer's own timeline.
	ShowAnimated(node *dom.Node)
	// HideAnimated collapses node on the renderer's own timeline.
	HideAnimated(node *dom.Node)
}

// TransitionFunc observes a state change after it has been persisted and the
// render intent dispatched.
type TransitionFunc func(container *dom.Node, state State)

// TransitionEngine is the accordion state machine. The only states are
// visible and collapsed; activation is a pure toggle, and initialization
// applies the configured default. State writes are synchronous and complete
// before any render intent is issued.
type TransitionEngine struct {
	store        *StateStore
	resolver     *StructureResolver
	renderer     Renderer
	onTransition TransitionFunc
}

// NewTransitionEngine creates an engine driving the given renderer.
func NewTransitionEngine(cfg Config, renderer Renderer) *TransitionEngine {
	return &TransitionEngine{
		store:    NewStateStore(cfg),
		resolver: NewStructureResolver(cfg),
		renderer: renderer,
	}
}

// SetOnTransition sets a callback invoked after every applied state change,
// including initialization. Fire-and-forget, like the render intents.
func (e *TransitionEngine) SetOnTransition(fn TransitionFunc) {
	e.onTransition = fn
}

// Store returns the engine's state store.
func (e *TransitionEngine) Store() *StateStore {
	return e.store
}

// Initialize applies the configured default state to container with an
// instant (non-animated) render intent. Re-initializing an already-toggled
// container re-applies the default, overwriting the user's state; see Bind.
// Fails with a ConfigurationError when the default key is unresolvable.
func (e *TransitionEngine) Initialize(container *dom.Node) error {
	def, err := e.store.DefaultState()
	if err != nil {
		return err
	}
	e.apply(container, def, false)
	return nil
}

// Toggle flips container's state and requests the matching animated render
// intent. It returns the state that is now persisted.
func (e *TransitionEngine) Toggle(container *dom.Node) (State, error) {
	cur, err := e.store.State(container)
	if err != nil {
		return cur, err
	}
	next := StateCollapsed
	if cur == StateCollapsed {
		next = StateVisible
	}
	e.apply(container, next, true)
	return next, nil
}

// apply persists state, maintains the collapsed marker class, and issues the
// render intent for the container's first content element. A container with
// no content still records state; the transition is a visual no-op.
func (e *TransitionEngine) apply(container *dom.Node, state State, animated bool) {
	e.store.SetState(container, state)
	container.SetClass(ClassCollapsed, state == StateCollapsed)

	if contents := e.resolver.FindContents(container); len(contents) > 0 {
		content := contents[0]
		switch {
		case state == StateVisible && animated:
			e.renderer.ShowAnimated(content)
		case state == StateVisible:
			e.renderer.ShowInstant(content)
		case animated:
			e.renderer.HideAnimated(content)
		default:
			e.renderer.HideInstant(content)
		}
	}

	if e.onTransition != nil {
		e.onTransition(container, state)
	}
}

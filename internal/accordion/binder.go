// Package accordion implements the collapsible-panel core: structure
// discovery by marker, per-container state, the visible/collapsed transition
// engine, and the binding layer that wires activation events to it. Visual
// transitions and the host document are collaborators; see Renderer and the
// dom package.
package accordion

import (
	"log/slog"

	"github.com/shhac/bellows/internal/dom"
	apperrors "github.com/shhac/bellows/internal/errors"
)

// Option configures a Binder.
type Option func(*Binder)

// WithLogger sets the structured logger used by the binder and engine.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Binder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithTransitionCallback registers an observer for applied state changes.
func WithTransitionCallback(fn TransitionFunc) Option {
	return func(b *Binder) {
		b.engine.SetOnTransition(fn)
	}
}

// Binder initializes containers to their default state, tags discovered
// structure with marker classes, and attaches the activation handlers that
// drive the transition engine.
type Binder struct {
	cfg      Config
	resolver *StructureResolver
	store    *StateStore
	engine   *TransitionEngine
	logger   *slog.Logger

	unbinds map[*dom.Node][]dom.Unbind
}

// NewBinder creates a binder driving the given renderer. A nil renderer is a
// setup defect and fails immediately.
func NewBinder(cfg Config, renderer Renderer, opts ...Option) (*Binder, error) {
	if renderer == nil {
		return nil, apperrors.ErrNilRenderer
	}
	engine := NewTransitionEngine(cfg, renderer)
	b := &Binder{
		cfg:      cfg,
		resolver: NewStructureResolver(cfg),
		store:    engine.Store(),
		engine:   engine,
		logger:   slog.New(slog.DiscardHandler),
		unbinds:  make(map[*dom.Node][]dom.Unbind),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Engine returns the binder's transition engine, for callers that toggle
// containers programmatically.
func (b *Binder) Engine() *TransitionEngine {
	return b.engine
}

// Bind initializes every container in the selection: applies the default
// state (instant render), tags container/trigger/content nodes with their
// marker classes, and attaches an activation handler to every trigger match.
// The input selection is returned unchanged to support chaining.
//
// The default state is resolved once up front; an unresolvable default key
// aborts the whole batch before any container is touched. Binding the same
// containers again re-applies the default state over any user toggles.
func (b *Binder) Bind(containers []*dom.Node) ([]*dom.Node, error) {
	if _, err := b.store.DefaultState(); err != nil {
		return containers, err
	}

	for _, container := range containers {
		if container == nil {
			continue
		}
		triggers := b.resolver.FindTriggers(container)
		contents := b.resolver.FindContents(container)

		// Default resolved above; Initialize cannot fail here.
		_ = b.engine.Initialize(container)

		container.AddClass(ClassContainer)
		for _, content := range contents {
			content.AddClass(ClassContent)
		}
		for _, trigger := range triggers {
			trigger.AddClass(ClassTrigger)
			unbind := trigger.OnActivate(b.handleActivate)
			b.unbinds[container] = append(b.unbinds[container], unbind)
		}

		b.logger.Debug("bound accordion container",
			slog.Int("triggers", len(triggers)),
			slog.Int("contents", len(contents)),
		)
	}

	return containers, nil
}

// Unbind detaches the activation handlers and strips the marker classes from
// previously bound containers. Persisted state is left on the nodes. The
// input selection is returned unchanged.
func (b *Binder) Unbind(containers []*dom.Node) []*dom.Node {
	for _, container := range containers {
		if container == nil {
			continue
		}
		for _, unbind := range b.unbinds[container] {
			unbind()
		}
		delete(b.unbinds, container)

		container.RemoveClass(ClassContainer)
		container.RemoveClass(ClassCollapsed)
		for _, trigger := range b.resolver.FindTriggers(container) {
			trigger.RemoveClass(ClassTrigger)
		}
		for _, content := range b.resolver.FindContents(container) {
			content.RemoveClass(ClassContent)
		}
	}
	return containers
}

// handleActivate is attached to every bound trigger. It suppresses the
// event's default action, resolves the owning container from the event
// target, and toggles it.
func (b *Binder) handleActivate(e *dom.Event) {
	e.PreventDefault()

	container := b.resolver.OwningContainer(e.Target())
	if container == nil {
		return
	}

	state, err := b.engine.Toggle(container)
	if err != nil {
		b.logger.Error("accordion toggle failed", slog.Any("error", err))
		return
	}
	b.logger.Debug("accordion toggled", slog.String("state", state.String()))
}

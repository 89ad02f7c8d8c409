package accordion

import (
	"github.com/shhac/bellows/internal/dom"
	apperrors "github.com/shhac/bellows/internal/errors"
)

// StateStore reads and writes the per-container state value. State lives in
// the container node's own dataset, so ownership travels with the node and no
// shared registry of container state exists.
type StateStore struct {
	cfg Config
}

// NewStateStore creates a store for the given configuration.
func NewStateStore(cfg Config) *StateStore {
	return &StateStore{cfg: cfg}
}

// DefaultState resolves the configured default key to its enumerated state.
// An unknown key is a static configuration defect and returns a
// ConfigurationError; callers must abort their initialization batch.
func (s *StateStore) DefaultState() (State, error) {
	st, ok := s.cfg.States[s.cfg.DefaultKey]
	if !ok {
		return StateCollapsed, apperrors.ConfigurationError{Key: s.cfg.DefaultKey}
	}
	return st, nil
}

// State returns the state persisted on container, falling back to the
// configured default when none (or an unrecognized value) is present.
func (s *StateStore) State(container *dom.Node) (State, error) {
	if raw, ok := container.Data(s.cfg.StateKey); ok {
		switch raw {
		case StateVisible.String():
			return StateVisible, nil
		case StateCollapsed.String():
			return StateCollapsed, nil
		}
	}
	return s.DefaultState()
}

// SetState persists value on container under the configured state key.
func (s *StateStore) SetState(container *dom.Node, value State) {
	container.SetData(s.cfg.StateKey, value.String())
}

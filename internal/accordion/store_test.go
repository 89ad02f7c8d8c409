package accordion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/bellows/internal/dom"
	apperrors "github.com/shhac/bellows/internal/errors"
)

func TestStateStore_DefaultState(t *testing.T) {
	tests := []struct {
		name       string
		defaultKey string
		want       State
		wantErr    bool
	}{
		{"collapsed default", "collapsed", StateCollapsed, false},
		{"visible default", "visible", StateVisible, false},
		{"unknown key", "expanded", StateCollapsed, true},
		{"empty key", "", StateCollapsed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.DefaultKey = tt.defaultKey
			store := NewStateStore(cfg)

			got, err := store.DefaultState()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsConfiguration(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStateStore_State(t *testing.T) {
	store := NewStateStore(DefaultConfig())
	container := dom.NewNode("accordion")

	// No persisted state: the configured default applies
	st, err := store.State(container)
	require.NoError(t, err)
	assert.Equal(t, StateCollapsed, st)

	store.SetState(container, StateVisible)
	st, err = store.State(container)
	require.NoError(t, err)
	assert.Equal(t, StateVisible, st)

	store.SetState(container, StateCollapsed)
	st, err = store.State(container)
	require.NoError(t, err)
	assert.Equal(t, StateCollapsed, st)
}

func TestStateStore_State_UnrecognizedValueFallsBack(t *testing.T) {
	store := NewStateStore(DefaultConfig())
	container := dom.NewNode("accordion")
	container.SetData("accordion-state", "half-open")

	st, err := store.State(container)
	require.NoError(t, err)
	assert.Equal(t, StateCollapsed, st)
}

func TestStateStore_StateIsPerContainer(t *testing.T) {
	store := NewStateStore(DefaultConfig())
	first := dom.NewNode("accordion")
	second := dom.NewNode("accordion")

	store.SetState(first, StateVisible)

	st, err := store.State(second)
	require.NoError(t, err)
	assert.Equal(t, StateCollapsed, st, "state must not leak across containers")

	raw, ok := first.Data("accordion-state")
	require.True(t, ok)
	assert.Equal(t, "visible", raw)
}

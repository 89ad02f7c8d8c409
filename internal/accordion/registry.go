package accordion

import (
	"fmt"
	"sync"

	apperrors "github.com/shhac/bellows/internal/errors"
)

// DefaultNamespace is the name Install claims in the feature registry.
const DefaultNamespace = "accordion"

// registry is the process-wide table of installed widget features. Claiming
// an already-taken namespace fails loudly rather than silently replacing the
// prior registration.
var registry = struct {
	mu      sync.Mutex
	binders map[string]*Binder
}{binders: make(map[string]*Binder)}

// Register claims namespace for binder. Returns ErrNamespaceTaken when the
// namespace is already claimed.
func Register(namespace string, binder *Binder) error {
	if namespace == "" {
		return fmt.Errorf("register: empty namespace")
	}
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, taken := registry.binders[namespace]; taken {
		return fmt.Errorf("register %q: %w", namespace, apperrors.ErrNamespaceTaken)
	}
	registry.binders[namespace] = binder
	return nil
}

// Lookup returns the binder registered under namespace.
func Lookup(namespace string) (*Binder, bool) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	b, ok := registry.binders[namespace]
	return b, ok
}

// Deregister releases namespace. Releasing an unclaimed namespace is a no-op.
func Deregister(namespace string) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	delete(registry.binders, namespace)
}

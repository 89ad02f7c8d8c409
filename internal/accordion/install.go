package accordion

import (
	"github.com/shhac/bellows/internal/dom"
	apperrors "github.com/shhac/bellows/internal/errors"
)

// Install is the bootstrap entry point: it registers the accordion feature
// under DefaultNamespace, scans doc for container markers, and binds every
// container found. It is glue over NewBinder/Register/Bind — callers that
// want lazy or manual-root initialization can drive Binder.Bind directly.
//
// Install fails fast when doc is nil, when the namespace is already claimed,
// or when the configured default state key is unresolvable; on bind failure
// the namespace is released again.
func Install(doc *dom.Node, cfg Config, renderer Renderer, opts ...Option) (*Binder, error) {
	if doc == nil {
		return nil, apperrors.ErrNilDocument
	}
	binder, err := NewBinder(cfg, renderer, opts...)
	if err != nil {
		return nil, err
	}
	if err := Register(DefaultNamespace, binder); err != nil {
		return nil, err
	}
	if _, err := binder.Bind(dom.Query(doc, cfg.ContainerMarker)); err != nil {
		Deregister(DefaultNamespace)
		return nil, err
	}
	return binder, nil
}

// Uninstall unbinds every container of the installed feature in doc and
// releases the namespace. It is the teardown counterpart to Install.
func Uninstall(doc *dom.Node) {
	binder, ok := Lookup(DefaultNamespace)
	if !ok || doc == nil {
		Deregister(DefaultNamespace)
		return
	}
	binder.Unbind(dom.Query(doc, binder.cfg.ContainerMarker))
	Deregister(DefaultNamespace)
}

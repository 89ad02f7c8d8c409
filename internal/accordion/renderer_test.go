package accordion

import "github.com/shhac/bellows/internal/dom"

// recordingRenderer captures render intents in order. Assertions are made on
// which intent was requested for which node, never on timing.
type recordingRenderer struct {
	intents []recordedIntent
}

type recordedIntent struct {
	op   string
	node *dom.Node
}

func (r *recordingRenderer) ShowInstant(n *dom.Node)  { r.record("show-instant", n) }
func (r *recordingRenderer) HideInstant(n *dom.Node)  { r.record("hide-instant", n) }
func (r *recordingRenderer) ShowAnimated(n *dom.Node) { r.record("show-animated", n) }
func (r *recordingRenderer) HideAnimated(n *dom.Node) { r.record("hide-animated", n) }

func (r *recordingRenderer) record(op string, n *dom.Node) {
	r.intents = append(r.intents, recordedIntent{op: op, node: n})
}

func (r *recordingRenderer) ops() []string {
	ops := make([]string, 0, len(r.intents))
	for _, i := range r.intents {
		ops = append(ops, i.op)
	}
	return ops
}

// newTestContainer builds a minimal container subtree using the default
// markers: container > trigger(label), content.
func newTestContainer() (container, trigger, content *dom.Node) {
	container = dom.NewNode("accordion")
	trigger = dom.NewNode("accordion-trigger")
	content = dom.NewNode("accordion-content")
	container.Append(trigger, content)
	return container, trigger, content
}

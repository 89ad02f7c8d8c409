// Package dom implements the document tree that bellows widgets are bound
// against: nodes carry a structural marker, a class list for styling hooks,
// and a dataset for values owned by the node itself. The package also provides
// ordered structural queries, nearest-ancestor lookup, and activation event
// dispatch with preventable default actions.
package dom

// Node is a single element in a document tree. A Node is created with an
// optional structural marker (its role, e.g. "accordion") and owns its
// children directly.
type Node struct {
	marker   string
	parent   *Node
	children []*Node

	classes []string
	dataset map[string]string

	handlers      []*handler
	defaultAction func()
}

// NewNode creates a node with the given structural marker. An empty marker is
// valid for plain structural filler.
func NewNode(marker string) *Node {
	return &Node{marker: marker}
}

// Marker returns the node's structural marker.
func (n *Node) Marker() string {
	return n.marker
}

// Matches reports whether the node carries the given structural marker.
func (n *Node) Matches(marker string) bool {
	return marker != "" && n.marker == marker
}

// Append adds children to this node, reparenting them under it.
func (n *Node) Append(children ...*Node) *Node {
	for _, child := range children {
		child.parent = n
		n.children = append(n.children, child)
	}
	return n
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children in document order.
func (n *Node) Children() []*Node {
	return n.children
}

// Detach removes the node from its parent. Detaching a root is a no-op.
func (n *Node) Detach() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// AddClass adds a class to the node's class list. Adding a class the node
// already has is a no-op.
func (n *Node) AddClass(class string) {
	if n.HasClass(class) {
		return
	}
	n.classes = append(n.classes, class)
}

// RemoveClass removes a class from the node's class list.
func (n *Node) RemoveClass(class string) {
	for i, c := range n.classes {
		if c == class {
			n.classes = append(n.classes[:i], n.classes[i+1:]...)
			return
		}
	}
}

// SetClass adds or removes a class depending on present.
func (n *Node) SetClass(class string, present bool) {
	if present {
		n.AddClass(class)
	} else {
		n.RemoveClass(class)
	}
}

// HasClass reports whether the node carries the given class.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.classes {
		if c == class {
			return true
		}
	}
	return false
}

// Classes returns the node's classes in the order they were added.
func (n *Node) Classes() []string {
	return n.classes
}

// Data returns the dataset value stored under key.
func (n *Node) Data(key string) (string, bool) {
	v, ok := n.dataset[key]
	return v, ok
}

// SetData stores a dataset value under key. The dataset is owned by the node
// and travels with it.
func (n *Node) SetData(key, value string) {
	if n.dataset == nil {
		n.dataset = make(map[string]string)
	}
	n.dataset[key] = value
}

// DeleteData removes the dataset value stored under key.
func (n *Node) DeleteData(key string) {
	delete(n.dataset, key)
}

package dom

// Query returns every descendant of root carrying the given marker, in
// document order (depth-first, children before siblings). The root itself is
// not considered. An empty result is valid.
func Query(root *Node, marker string) []*Node {
	if root == nil || marker == "" {
		return nil
	}
	var matches []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		for _, child := range n.children {
			if child.Matches(marker) {
				matches = append(matches, child)
			}
			walk(child)
		}
	}
	walk(root)
	return matches
}

// Closest returns the nearest ancestor of n, inclusive of n itself, carrying
// the given marker. Returns nil when no ancestor matches.
func Closest(n *Node, marker string) *Node {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.Matches(marker) {
			return cur
		}
	}
	return nil
}

package access

// Satisfy reports whether attrs (the attribute set of some private key)
// satisfies node: a leaf is satisfied iff its attribute is in attrs; an
// internal threshold-k gate is satisfied iff at least k of its children
// are (spec §4.7 satisfy).
func Satisfy(node *Node, attrs map[string]bool) bool {
	if node.isLeaf() {
		return attrs[node.attribute]
	}
	count := 0
	for _, c := range node.children {
		if Satisfy(c, attrs) {
			count++
		}
	}
	return count >= node.threshold
}

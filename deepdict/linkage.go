package deepdict

// Parent returns the node holding this one, or nil for a root.
func (d *Dict[K]) Parent() *Dict[K] {
	return d.parent
}

// IsRoot reports whether the node has no parent.
func (d *Dict[K]) IsRoot() bool {
	return d.parent == nil
}

// Root returns the top-level node of the layout. A root returns itself.
func (d *Dict[K]) Root() *Dict[K] {
	if d.parent == nil {
		return d
	}
	if d.root != nil {
		return d.root
	}
	return d.parent.Root()
}

// Key returns the key this node is stored under in its parent. The second
// return is false for a root.
func (d *Dict[K]) Key() (K, bool) {
	var zero K
	if d.parent == nil {
		return zero, false
	}
	return d.key, true
}

// Depth returns the number of ancestors above the node; a root has depth 0.
func (d *Dict[K]) Depth() int {
	if d.parent == nil {
		return 0
	}
	return d.parent.Depth() + 1
}

// Address returns the keys leading from the root down to this node. The
// result is a fresh slice on every call; a root has an empty address.
func (d *Dict[K]) Address() []K {
	if d.parent == nil {
		return []K{}
	}
	return append(d.parent.Address(), d.key)
}

// join attaches the node to a parent under a key, overwriting any previous
// linkage. A node moving in from another slot is removed there first, so a
// node is never reachable under a slot its back-reference does not name.
func (d *Dict[K]) join(parent *Dict[K], key K) {
	if d.parent != nil && (d.parent != parent || d.key != key) {
		d.parent.entries.Delete(d.key)
	}
	d.parent = parent
	d.root = parent.Root()
	d.key = key
}

// leave detaches the node from its parent, making it a free root again.
func (d *Dict[K]) leave() {
	var zero K
	d.parent = nil
	d.root = nil
	d.key = zero
}

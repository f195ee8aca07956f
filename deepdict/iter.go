package deepdict

import "iter"

// Keys returns an iterator over the node's direct keys in insertion order.
func (d *Dict[K]) Keys() iter.Seq[K] {
	return d.entries.Keys()
}

// Values returns an iterator over the node's direct values in insertion
// order. Child nodes are yielded as-is, not expanded.
func (d *Dict[K]) Values() iter.Seq[any] {
	return d.entries.Values()
}

// Items returns an iterator over the node's direct key/value pairs in
// insertion order.
func (d *Dict[K]) Items() iter.Seq2[K, any] {
	return d.entries.All()
}

// DeepItems returns an iterator over every leaf value of the subtree in
// depth-first insertion order, paired with its local key. Child nodes are
// expanded at the point they are encountered and are not yielded
// themselves. The subtree must not be mutated while iterating.
func (d *Dict[K]) DeepItems() iter.Seq2[K, any] {
	return func(yield func(K, any) bool) {
		d.deepItems(yield)
	}
}

func (d *Dict[K]) deepItems(yield func(K, any) bool) bool {
	for k, v := range d.entries.All() {
		if child, ok := v.(*Dict[K]); ok {
			if !child.deepItems(yield) {
				return false
			}
		} else if !yield(k, v) {
			return false
		}
	}
	return true
}

// DeepKeys returns an iterator over the local keys of every leaf in the
// subtree, in depth-first insertion order.
func (d *Dict[K]) DeepKeys() iter.Seq[K] {
	return func(yield func(K) bool) {
		d.deepItems(func(k K, _ any) bool {
			return yield(k)
		})
	}
}

// DeepValues returns an iterator over every leaf value in the subtree, in
// depth-first insertion order.
func (d *Dict[K]) DeepValues() iter.Seq[any] {
	return func(yield func(any) bool) {
		d.deepItems(func(_ K, v any) bool {
			return yield(v)
		})
	}
}

// Walk returns an iterator over every leaf of the subtree together with
// its address relative to this node, in depth-first insertion order. Each
// yielded address is a fresh slice the caller may keep.
func (d *Dict[K]) Walk() iter.Seq2[[]K, any] {
	return func(yield func([]K, any) bool) {
		d.walk(nil, yield)
	}
}

func (d *Dict[K]) walk(prefix []K, yield func([]K, any) bool) bool {
	for k, v := range d.entries.All() {
		if child, ok := v.(*Dict[K]); ok {
			if !child.walk(append(prefix, k), yield) {
				return false
			}
			continue
		}
		addr := make([]K, len(prefix)+1)
		copy(addr, prefix)
		addr[len(prefix)] = k
		if !yield(addr, v) {
			return false
		}
	}
	return true
}

// Addrs returns an iterator over the addresses of every leaf in the
// subtree, relative to this node.
func (d *Dict[K]) Addrs() iter.Seq[[]K] {
	return func(yield func([]K) bool) {
		d.walk(nil, func(addr []K, _ any) bool {
			return yield(addr)
		})
	}
}

// IsContainer reports whether at least one direct entry is itself a Dict.
func (d *Dict[K]) IsContainer() bool {
	for v := range d.entries.Values() {
		if _, ok := v.(*Dict[K]); ok {
			return true
		}
	}
	return false
}

// Containers returns an iterator over the child nodes of the subtree in
// depth-first insertion order. With inclusive, the node itself is yielded
// first. With deep false, only the direct children are yielded; otherwise
// every descendant node at any depth.
func (d *Dict[K]) Containers(inclusive, deep bool) iter.Seq[*Dict[K]] {
	return func(yield func(*Dict[K]) bool) {
		if inclusive && !yield(d) {
			return
		}
		d.childDicts(deep, yield)
	}
}

func (d *Dict[K]) childDicts(deep bool, yield func(*Dict[K]) bool) bool {
	for v := range d.entries.Values() {
		child, ok := v.(*Dict[K])
		if !ok {
			continue
		}
		if !yield(child) {
			return false
		}
		if deep && !child.childDicts(true, yield) {
			return false
		}
	}
	return true
}

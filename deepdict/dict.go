package deepdict

import (
	"fmt"
	"strings"

	"github.com/sigma-epsilon/linkeddeepdict/ordmap"
)

// lock flag of a single node; the effective state is resolved dynamically
// through the parent chain, see Locked.
type lockFlag int8

const (
	lockInherit lockFlag = iota
	lockOn
	lockOff
)

// Item is a single key/value pair of a Dict.
type Item[K comparable] struct {
	Key K
	Val any
}

// Dict is one node of a nested key/value layout. Its direct entries are an
// insertion-ordered map whose values are either plain values (leaves) or
// other *Dict nodes (children). A Dict must be created with New, FromMap or
// one of the codec constructors.
type Dict[K comparable] struct {
	entries *ordmap.Map[K, any]

	parent *Dict[K]
	root   *Dict[K] // cached top-level node, nil when unknown
	key    K        // key of this node in parent, valid while parent != nil
	lock   lockFlag
}

// New returns an empty, unlocked root Dict, optionally pre-populated with
// items. Item values that are themselves *Dict nodes are attached as
// children.
func New[K comparable](items ...Item[K]) *Dict[K] {
	d := &Dict[K]{entries: ordmap.New[K, any]()}
	for _, it := range items {
		d.store(it.Key, it.Val)
	}
	return d
}

// FromMap converts a nested plain map into a Dict. Values of type map[K]any
// become attached child nodes, recursively; *Dict values are attached
// as-is. Go maps iterate in unspecified order, so the entry order of the
// result is unspecified too; use FromYAML when document order matters.
func FromMap[K comparable](m map[K]any) *Dict[K] {
	d := New[K]()
	for k, v := range m {
		if mv, ok := v.(map[K]any); ok {
			d.store(k, FromMap(mv))
		} else {
			d.store(k, v)
		}
	}
	return d
}

// Len returns the number of direct entries.
func (d *Dict[K]) Len() int {
	return d.entries.Len()
}

// Has reports whether the key is a direct entry.
func (d *Dict[K]) Has(key K) bool {
	return d.entries.Has(key)
}

// Get returns the value stored under the key. A miss on an unlocked node
// creates, attaches and returns a new empty child Dict (autovivification);
// a miss on an effectively locked node returns ErrKeyNotFound.
func (d *Dict[K]) Get(key K) (any, error) {
	if v, ok := d.entries.Get(key); ok {
		return v, nil
	}
	child, err := d.missing(key)
	if err != nil {
		return nil, err
	}
	return child, nil
}

// missing is the shared miss handler of Get and the address walks.
func (d *Dict[K]) missing(key K) (*Dict[K], error) {
	if d.Locked() {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	child := New[K]()
	d.store(key, child)
	return child, nil
}

// Set stores a value under the key. A child Dict currently in the slot is
// detached first. Storing nil, including a nil *Dict, removes the key (a
// no-op when absent).
// Storing a *Dict attaches it to this node, overwriting any linkage it had
// before, so assignment moves a subtree between parents.
// Returns ErrLocked when the node is effectively locked.
func (d *Dict[K]) Set(key K, value any) error {
	if d.Locked() {
		return fmt.Errorf("%w: cannot set %v", ErrLocked, key)
	}
	d.store(key, value)
	return nil
}

// store applies the set protocol without a lock check. Constructors and
// codecs rely on it to populate fresh nodes.
func (d *Dict[K]) store(key K, value any) {
	if old, ok := d.entries.Get(key); ok {
		if child, ok := old.(*Dict[K]); ok {
			child.leave()
		}
	}
	if value == nil {
		d.entries.Delete(key)
		return
	}
	if child, ok := value.(*Dict[K]); ok {
		// a typed nil is still the delete sentinel
		if child == nil {
			d.entries.Delete(key)
			return
		}
		child.join(d, key)
	}
	d.entries.Set(key, value)
}

// Delete removes the key, detaching a child Dict stored under it. Deleting
// an absent key is a no-op. Returns ErrLocked when the node is effectively
// locked.
func (d *Dict[K]) Delete(key K) error {
	if d.Locked() {
		return fmt.Errorf("%w: cannot delete %v", ErrLocked, key)
	}
	if old, ok := d.entries.Get(key); ok {
		if child, ok := old.(*Dict[K]); ok {
			child.leave()
		}
		d.entries.Delete(key)
	}
	return nil
}

// String formats the node's direct entries in insertion order. Child nodes
// are abbreviated, not dumped.
func (d *Dict[K]) String() string {
	var b strings.Builder
	b.WriteString("Dict{")
	first := true
	for k, v := range d.entries.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		if child, ok := v.(*Dict[K]); ok {
			fmt.Fprintf(&b, "%v: Dict<%d>", k, child.Len())
		} else {
			fmt.Fprintf(&b, "%v: %v", k, v)
		}
	}
	b.WriteString("}")
	return b.String()
}

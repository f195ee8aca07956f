// Package deepdict defines a nested, self-extending key/value map: a tree
// of map nodes where a missing key on an unlocked node transparently
// creates a new child node instead of failing, so deep layouts can be
// assigned without declaring the intermediate levels first.
//
//	d := deepdict.New[string]()
//	d.SetAt(1, "a", "b", "c")
//	v, _ := d.GetAt("a", "b", "c") // 1
//
// Every node keeps its entries in insertion order and knows its place in
// the layout through a parent back-reference: Parent, Root, Key, Depth and
// Address all work from any node. Storing a *Dict value attaches it to the
// new parent (move by assignment), overwriting or deleting it detaches it
// again.
//
// # Locking
//
// Each node carries a tri-state lock flag. Lock and Unlock set an explicit
// state on one node only; a node without an explicit state inherits the
// effective state of its nearest flagged ancestor (an unset root is
// unlocked). On a locked node mutations fail with ErrLocked and missing
// keys fail with ErrKeyNotFound instead of creating a child.
//
// # Iteration
//
// Keys, Values and Items iterate the direct entries only. DeepKeys,
// DeepValues, DeepItems and Walk expand child nodes in place and yield the
// leaf values of the whole subtree in depth-first insertion order, Walk
// pairing each leaf with its address. Containers enumerates the child
// nodes themselves. All iterators are lazy and restartable; breaking out
// early is always safe. The subtree being traversed must not be mutated
// while a traversal is running, the result of doing so is undefined.
//
// The structure has no internal synchronization and is not safe for
// concurrent use without external locking.
package deepdict

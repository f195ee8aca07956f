package deepdict

// Lock forbids mutations on this node and, through inheritance, on every
// descendant without an explicit flag of its own. Missing keys on a locked
// node fail instead of creating a child.
func (d *Dict[K]) Lock() {
	d.lock = lockOn
}

// Unlock allows mutations on this node regardless of ancestor locks.
func (d *Dict[K]) Unlock() {
	d.lock = lockOff
}

// Locked returns the effective lock state: the node's own flag when
// explicit, else the effective state of its parent. An unset root is
// unlocked. The state is computed on every call, never cached, so locking
// a mid-tree node takes effect for all unset descendants immediately.
func (d *Dict[K]) Locked() bool {
	switch d.lock {
	case lockOn:
		return true
	case lockOff:
		return false
	}
	if d.parent == nil {
		return false
	}
	return d.parent.Locked()
}

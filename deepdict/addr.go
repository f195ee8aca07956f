package deepdict

import "fmt"

// GetAt resolves a compound address one segment at a time and returns the
// value at its end. Each step uses the single-key protocol, so a missing
// segment autovivifies on an unlocked node and fails with ErrKeyNotFound on
// a locked one. An intermediate segment holding a plain value also fails
// with ErrKeyNotFound. An empty address fails with ErrEmptyPath.
func (d *Dict[K]) GetAt(addr ...K) (any, error) {
	if len(addr) == 0 {
		return nil, ErrEmptyPath
	}
	cur := d
	for i, key := range addr {
		v, err := cur.Get(key)
		if err != nil {
			return nil, err
		}
		if i == len(addr)-1 {
			return v, nil
		}
		child, ok := v.(*Dict[K])
		if !ok {
			return nil, fmt.Errorf("%w: %v is not a nested dict", ErrKeyNotFound, addr[:i+1])
		}
		cur = child
	}
	return nil, nil
}

// SetAt stores a value at a compound address, creating the intermediate
// child nodes as needed. Every level checks its own effective lock state,
// so a locked node anywhere along the address fails the whole call. The
// final segment follows Set semantics: a nil value removes the key, a
// *Dict value is attached. An empty address fails with ErrEmptyPath.
func (d *Dict[K]) SetAt(value any, addr ...K) error {
	if len(addr) == 0 {
		return ErrEmptyPath
	}
	if d.Locked() {
		return fmt.Errorf("%w: cannot set %v", ErrLocked, addr[0])
	}
	if len(addr) == 1 {
		d.store(addr[0], value)
		return nil
	}
	var child *Dict[K]
	if v, ok := d.entries.Get(addr[0]); ok {
		child, ok = v.(*Dict[K])
		if !ok {
			return fmt.Errorf("%w: %v is not a nested dict", ErrKeyNotFound, addr[:1])
		}
	} else {
		child = New[K]()
		d.store(addr[0], child)
	}
	return child.SetAt(value, addr[1:]...)
}

// HasAt reports whether every segment of the address resolves, stopping at
// the first absent segment. It never creates nodes and works the same on
// locked and unlocked layouts. An empty address fails with ErrEmptyPath.
func (d *Dict[K]) HasAt(addr ...K) (bool, error) {
	if len(addr) == 0 {
		return false, ErrEmptyPath
	}
	cur := d
	for i, key := range addr {
		v, ok := cur.entries.Get(key)
		if !ok {
			return false, nil
		}
		if i == len(addr)-1 {
			return true, nil
		}
		child, ok := v.(*Dict[K])
		if !ok {
			return false, nil
		}
		cur = child
	}
	return true, nil
}

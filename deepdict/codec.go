package deepdict

import (
	"fmt"
	"reflect"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"
	"gopkg.in/yaml.v3"
)

// Clone returns a structurally equal copy of the subtree: a fresh root
// with the node's shallow items replayed, child nodes cloned recursively.
// Leaf values are copied by assignment. The clone is a free root with no
// parent linkage and default (inherit) lock flags.
func (d *Dict[K]) Clone() *Dict[K] {
	out := New[K]()
	for k, v := range d.entries.All() {
		if child, ok := v.(*Dict[K]); ok {
			out.store(k, child.Clone())
		} else {
			out.store(k, v)
		}
	}
	return out
}

// AsMap converts the subtree into nested plain maps, the inverse of
// FromMap. Entry order is lost, Go maps do not keep one.
func (d *Dict[K]) AsMap() map[K]any {
	out := make(map[K]any, d.entries.Len())
	for k, v := range d.entries.All() {
		if child, ok := v.(*Dict[K]); ok {
			out[k] = child.AsMap()
		} else {
			out[k] = v
		}
	}
	return out
}

// Equal reports whether two subtrees hold the same keys in the same order
// with equal leaf values at equal positions. Linkage and lock flags are
// not compared.
func (d *Dict[K]) Equal(other *Dict[K]) bool {
	a, b := d.entries.Items(), other.entries.Items()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Key != b[i].Key {
			return false
		}
		ac, aok := a[i].Val.(*Dict[K])
		bc, bok := b[i].Val.(*Dict[K])
		if aok != bok {
			return false
		}
		if aok {
			if !ac.Equal(bc) {
				return false
			}
		} else if !reflect.DeepEqual(a[i].Val, b[i].Val) {
			return false
		}
	}
	return true
}

// FromJSON parses a JSON document into a Dict. The top-level value must be
// an object; nested objects become attached child nodes. Object key order
// is not preserved (the parser produces Go maps), use FromYAML when
// document order matters.
func FromJSON(data []byte) (*Dict[string], error) {
	v, err := oj.Parse(data)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top-level JSON value is not an object", ErrInvalidKey)
	}
	return FromMap(m), nil
}

// ToJSON renders the subtree as compact JSON with object keys sorted.
func ToJSON(d *Dict[string]) []byte {
	return []byte(oj.JSON(d.AsMap(), &ojg.Options{Sort: true}))
}

// FromYAML parses a YAML document into a Dict, preserving mapping order.
// Nested mappings become attached child nodes. A non-scalar mapping key
// fails with ErrInvalidKey.
func FromYAML(data []byte) (*Dict[string], error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return New[string](), nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top-level YAML node is not a mapping", ErrInvalidKey)
	}
	return fromYAMLMapping(root)
}

func fromYAMLMapping(n *yaml.Node) (*Dict[string], error) {
	d := New[string]()
	for i := 0; i+1 < len(n.Content); i += 2 {
		kn, vn := n.Content[i], n.Content[i+1]
		if kn.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: mapping key at line %d is not a scalar", ErrInvalidKey, kn.Line)
		}
		var key string
		if err := kn.Decode(&key); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
		if vn.Kind == yaml.MappingNode {
			child, err := fromYAMLMapping(vn)
			if err != nil {
				return nil, err
			}
			d.store(key, child)
			continue
		}
		var val any
		if err := vn.Decode(&val); err != nil {
			return nil, err
		}
		d.store(key, val)
	}
	return d, nil
}

// ToYAML renders the subtree as a YAML document in entry insertion order.
func ToYAML(d *Dict[string]) ([]byte, error) {
	node, err := toYAMLNode(d)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

func toYAMLNode(d *Dict[string]) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range d.entries.All() {
		kn := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
		var vn *yaml.Node
		if child, ok := v.(*Dict[string]); ok {
			var err error
			vn, err = toYAMLNode(child)
			if err != nil {
				return nil, err
			}
		} else {
			vn = &yaml.Node{}
			if err := vn.Encode(v); err != nil {
				return nil, err
			}
		}
		n.Content = append(n.Content, kn, vn)
	}
	return n, nil
}

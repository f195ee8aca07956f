package deepdict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone_RoundTrip(t *testing.T) {
	t.Parallel()

	d := buildSample(t)
	c := d.Clone()

	require.NotSame(t, d, c)
	assert.True(t, d.Equal(c))
	assert.True(t, c.IsRoot())
	assert.Nil(t, c.Parent())

	// same leaves at the same addresses in the same order
	var orig, clone [][]string
	for addr := range d.Addrs() {
		orig = append(orig, addr)
	}
	for addr := range c.Addrs() {
		clone = append(clone, addr)
	}
	assert.Equal(t, orig, clone)

	// the clone is independent of the original
	require.NoError(t, c.SetAt(9, "a", "b", "c"))

	v, err := d.GetAt("a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.False(t, d.Equal(c))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := buildSample(t)
	b := buildSample(t)
	assert.True(t, a.Equal(b))

	// same entries in a different order are not equal
	reordered := New[string]()
	require.NoError(t, reordered.SetAt(3, "e"))
	require.NoError(t, reordered.SetAt(1, "a", "b", "c"))
	require.NoError(t, reordered.SetAt(2, "a", "b", "d"))
	assert.False(t, a.Equal(reordered))

	// a leaf where the other has a child is not equal
	leafy := New[string]()
	require.NoError(t, leafy.Set("a", 1))
	require.NoError(t, leafy.SetAt(3, "e"))
	assert.False(t, a.Equal(leafy))
}

func TestAsMap_FromMap_RoundTrip(t *testing.T) {
	t.Parallel()

	d := buildSample(t)
	m := d.AsMap()

	assert.Equal(t, map[string]any{
		"a": map[string]any{
			"b": map[string]any{"c": 1, "d": 2},
		},
		"e": 3,
	}, m)

	back := FromMap(m)

	// map order is unspecified, compare structure by address
	for addr, v := range d.Walk() {
		got, err := back.GetAt(addr...)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	var count int
	for range back.Walk() {
		count++
	}
	assert.Equal(t, 3, count)
}

func TestJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	d := buildSample(t)
	data := ToJSON(d)

	// keys are sorted, so the output is deterministic
	assert.JSONEq(t, `{"a":{"b":{"c":1,"d":2}},"e":3}`, string(data))

	back, err := FromJSON(data)
	require.NoError(t, err)

	for addr, v := range d.Walk() {
		got, err := back.GetAt(addr...)
		require.NoError(t, err)
		// JSON numbers come back as int64 for integral values
		assert.EqualValues(t, v, got)
	}

	child, err := back.Get("a")
	require.NoError(t, err)
	assert.Same(t, back, child.(*Dict[string]).Parent())
}

func TestFromJSON_Errors(t *testing.T) {
	t.Parallel()

	_, err := FromJSON([]byte(`[1, 2, 3]`))
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = FromJSON([]byte(`{"a":`))
	assert.Error(t, err)
}

func TestYAML_RoundTrip(t *testing.T) {
	t.Parallel()

	src := []byte("z: 1\na:\n  m: 2\n  b: 3\nc: 4\n")

	d, err := FromYAML(src)
	require.NoError(t, err)

	// document order survives ingestion
	var addrs [][]string
	for addr := range d.Addrs() {
		addrs = append(addrs, addr)
	}
	assert.Equal(t, [][]string{{"z"}, {"a", "m"}, {"a", "b"}, {"c"}}, addrs)

	child, err := d.Get("a")
	require.NoError(t, err)
	assert.Same(t, d, child.(*Dict[string]).Parent())

	out, err := ToYAML(d)
	require.NoError(t, err)

	back, err := FromYAML(out)
	require.NoError(t, err)
	assert.True(t, d.Equal(back))
}

func TestFromYAML_Errors(t *testing.T) {
	t.Parallel()

	// a mapping with a non-scalar key cannot become a dict key
	_, err := FromYAML([]byte("? [1, 2]\n: value\n"))
	assert.ErrorIs(t, err, ErrInvalidKey)

	// a top-level sequence has no keys at all
	_, err = FromYAML([]byte("- 1\n- 2\n"))
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = FromYAML([]byte("a: [unclosed\n"))
	assert.Error(t, err)
}

func TestFromYAML_Empty(t *testing.T) {
	t.Parallel()

	d, err := FromYAML(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())
}

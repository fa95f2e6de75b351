package attribute

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geode-kernel/geode/pkg/basic"
)

// TestAttributeLifecycle is scenario S1 from the spec.
func TestAttributeLifecycle(t *testing.T) {
	m := NewManager()
	m.Resize(10)

	c, err := FindOrCreateConstant[bool](m, "c", true, Properties{Assignable: true})
	require.NoError(t, err)
	c.SetValue(false)
	require.Equal(t, false, c.Value())

	iAttr, err := FindOrCreateDense[int](m, "i", 12, Properties{Assignable: true})
	require.NoError(t, err)
	iAttr.SetValue(3, 3)
	require.Equal(t, 3, iAttr.Value(3))
	require.Equal(t, 12, iAttr.Value(6))

	dAttr, err := FindOrCreateSparse[float64](m, "d", 12.0, Properties{Assignable: true})
	require.NoError(t, err)
	dAttr.SetValue(3, 3.0)
	require.Equal(t, 3.0, dAttr.Value(3))
	require.Equal(t, 12.0, dAttr.Value(6))
	require.False(t, dAttr.HasValue(6))

	mask := make([]bool, 10)
	mask[3] = true
	mask[5] = true
	oldToNew, err := m.DeleteElements(mask)
	require.NoError(t, err)
	require.Equal(t, 8, m.NbElements())
	require.Equal(t, basic.NoID, oldToNew[3])
	require.Equal(t, basic.NoID, oldToNew[5])
	require.Equal(t, basic.Index(0), oldToNew[0])
	require.Equal(t, basic.Index(3), oldToNew[4]) // index 4 -> new 3 (3 deleted)

	// "Serialize, reload, verify all values survive."
	var buf bytes.Buffer
	err = basic.EncodeRecord(&buf, SerializationVersion, m.EncodeMsg)
	require.NoError(t, err)

	reloaded := NewManager()
	err = basic.DecodeRecord(&buf, ManagerVersions, reloaded.DecodeMsg)
	require.NoError(t, err)

	require.Equal(t, 8, reloaded.NbElements())
	rc, err := FindOrCreateConstant[bool](reloaded, "c", true, Properties{Assignable: true})
	require.NoError(t, err)
	require.Equal(t, false, rc.Value())

	ri, err := Find[int](reloaded, "i")
	require.NoError(t, err)
	require.Equal(t, 12, ri.Value(6))

	rd, err := FindOrCreateSparse[float64](reloaded, "d", 12.0, Properties{Assignable: true})
	require.NoError(t, err)
	require.Equal(t, 12.0, rd.Value(6))
	require.False(t, rd.HasValue(6))
}

func TestSparseValueMutInsertsDefault(t *testing.T) {
	m := NewManager()
	m.Resize(5)
	a, err := FindOrCreateSparse[float64](m, "d", 42.0, Properties{})
	require.NoError(t, err)
	require.False(t, a.HasValue(2))
	got := a.ValueMut(2)
	require.Equal(t, 42.0, got)
	require.True(t, a.HasValue(2))
}

func TestDenseResizeDefaultFills(t *testing.T) {
	m := NewManager()
	m.Resize(3)
	a, err := FindOrCreateDense[int](m, "x", 7, Properties{})
	require.NoError(t, err)
	a.SetValue(0, 100)
	m.Resize(6)
	require.Equal(t, 100, a.Value(0))
	require.Equal(t, 7, a.Value(5))
	require.Equal(t, 6, a.Len())
}

func TestAttributeTypeMismatch(t *testing.T) {
	m := NewManager()
	m.Resize(3)
	_, err := FindOrCreateDense[int](m, "x", 1, Properties{})
	require.NoError(t, err)
	_, err = FindOrCreateDense[string](m, "x", "hi", Properties{})
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestAttributeStorageConflict(t *testing.T) {
	m := NewManager()
	m.Resize(3)
	_, err := FindOrCreateDense[int](m, "x", 1, Properties{})
	require.NoError(t, err)
	_, err = FindOrCreateSparse[int](m, "x", 1, Properties{})
	require.ErrorIs(t, err, ErrStorageConflict)
}

func TestDeleteElementsSizeMismatch(t *testing.T) {
	m := NewManager()
	m.Resize(3)
	_, err := m.DeleteElements([]bool{true, false})
	require.ErrorIs(t, err, ErrSizeMismatch)
}

func TestPermuteElements(t *testing.T) {
	m := NewManager()
	m.Resize(3)
	a, err := FindOrCreateDense[string](m, "name", "", Properties{})
	require.NoError(t, err)
	a.SetValue(0, "a")
	a.SetValue(1, "b")
	a.SetValue(2, "c")

	// Reverse the order: element 0 -> 2, 1 -> 1, 2 -> 0.
	err = m.PermuteElements([]basic.Index{2, 1, 0})
	require.NoError(t, err)
	require.Equal(t, "c", a.Value(0))
	require.Equal(t, "b", a.Value(1))
	require.Equal(t, "a", a.Value(2))
}

func TestManagerCopy(t *testing.T) {
	src := NewManager()
	src.Resize(2)
	a, err := FindOrCreateDense[int](src, "x", 0, Properties{})
	require.NoError(t, err)
	a.SetValue(0, 5)
	a.SetValue(1, 9)

	dst := NewManager()
	dst.Copy(src)
	require.Equal(t, 2, dst.NbElements())
	b, err := Find[int](dst, "x")
	require.NoError(t, err)
	require.Equal(t, 5, b.Value(0))

	// Mutating the copy must not affect the source (deep clone).
	b.SetValue(0, 100)
	require.Equal(t, 5, a.Value(0))
}

func TestManagerClear(t *testing.T) {
	m := NewManager()
	m.Resize(4)
	_, err := FindOrCreateDense[int](m, "x", 0, Properties{})
	require.NoError(t, err)
	m.Clear()
	require.Equal(t, 0, m.NbElements())
	require.Equal(t, 0, m.NbAttributes())
}

func TestAttributeNamesInsertionOrder(t *testing.T) {
	m := NewManager()
	m.Resize(1)
	_, _ = FindOrCreateDense[int](m, "z", 0, Properties{})
	_, _ = FindOrCreateDense[int](m, "a", 0, Properties{})
	_, _ = FindOrCreateDense[int](m, "m", 0, Properties{})
	require.Equal(t, []string{"z", "a", "m"}, m.AttributeNames())
}

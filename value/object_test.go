package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObject_SetKeepsPosition(t *testing.T) {
	obj := NewObject()
	obj.Set("a", Int(1))
	obj.Set("b", Int(2))
	obj.Set("a", Int(3))

	require.Equal(t, []string{"a", "b"}, obj.Keys())
	v, ok := obj.Get("a")
	require.True(t, ok)
	require.True(t, v.Equal(Int(3)))
}

func TestObject_NilReceiver(t *testing.T) {
	var obj *Object

	require.Equal(t, 0, obj.Len())
	require.Nil(t, obj.Keys())
	require.False(t, obj.Has("a"))
	_, ok := obj.Get("a")
	require.False(t, ok)

	for range obj.All() {
		t.Fatal("nil object must not yield fields")
	}

	require.Equal(t, 0, obj.Clone().Len())
}

func TestObject_Merge(t *testing.T) {
	base := NewObject()
	base.Set("startTime", String("t0"))
	base.Set("value", Int(1))

	point := NewObject()
	point.Set("value", Int(2))
	point.Set("count", Int(5))

	base.Merge(point)
	base.Merge(nil)

	require.Equal(t, []string{"startTime", "value", "count"}, base.Keys())
	v, _ := base.Get("value")
	require.True(t, v.Equal(Int(2)))
}

func TestObject_Clone(t *testing.T) {
	obj := NewObject()
	obj.Set("a", Int(1))

	clone := obj.Clone()
	clone.Set("b", Int(2))
	clone.Set("a", Int(9))

	require.Equal(t, []string{"a"}, obj.Keys())
	v, _ := obj.Get("a")
	require.True(t, v.Equal(Int(1)))
	require.Equal(t, []string{"a", "b"}, clone.Keys())
}

func TestObject_AllStopsEarly(t *testing.T) {
	obj := NewObject()
	obj.Set("a", Int(1))
	obj.Set("b", Int(2))
	obj.Set("c", Int(3))

	var seen []string
	for k := range obj.All() {
		seen = append(seen, k)
		if k == "b" {
			break
		}
	}

	require.Equal(t, []string{"a", "b"}, seen)
}

func TestObject_Equal(t *testing.T) {
	var nilObj *Object
	require.True(t, nilObj.Equal(NewObject()))

	a := NewObject()
	a.Set("x", Int(1))
	b := NewObject()
	b.Set("x", Int(1))
	require.True(t, a.Equal(b))

	b.Set("y", Int(2))
	require.False(t, a.Equal(b))
}

package mru

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

// makeSimpleList returns a, b, c with the changed flag cleared.
func makeSimpleList() *List[string] {
	l := NewList[string](20)
	l.Insert("c")
	l.Insert("b")
	l.Insert("a")
	l.ClearChanged()
	return l
}

func TestNewList(t *testing.T) {
	l := NewList[string](5)
	assert.Equal(t, 0, l.Len())
	assert.False(t, l.Changed())
	assert.Equal(t, 5, l.MaxItems())

	assert.Equal(t, 1, NewList[int](0).MaxItems())
}

func TestList_Insert(t *testing.T) {
	tests := []struct {
		name     string
		insert   string
		expected []string
	}{
		{name: "new item goes first", insert: "d", expected: []string{"d", "a", "b", "c"}},
		{name: "existing first item stays", insert: "a", expected: []string{"a", "b", "c"}},
		{name: "existing middle item moves", insert: "b", expected: []string{"b", "a", "c"}},
		{name: "existing last item moves", insert: "c", expected: []string{"c", "a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := makeSimpleList()
			l.Insert(tt.insert)
			assert.Equal(t, tt.expected, l.Items())
			assert.True(t, l.Changed())
		})
	}
}

func TestList_InsertTruncates(t *testing.T) {
	l := NewList[int](3)
	for i := range 5 {
		l.Insert(i)
	}
	assert.Equal(t, []int{4, 3, 2}, l.Items())
}

func TestList_Remove(t *testing.T) {
	tests := []struct {
		name     string
		remove   string
		found    bool
		expected []string
	}{
		{name: "first item", remove: "a", found: true, expected: []string{"b", "c"}},
		{name: "middle item", remove: "b", found: true, expected: []string{"a", "c"}},
		{name: "last item", remove: "c", found: true, expected: []string{"a", "b"}},
		{name: "absent item", remove: "z", found: false, expected: []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := makeSimpleList()
			assert.Equal(t, tt.found, l.Remove(tt.remove))
			assert.Equal(t, tt.found, l.Changed())
			assert.Equal(t, tt.expected, l.Items())
		})
	}
}

func TestList_AtAndAll(t *testing.T) {
	l := makeSimpleList()
	assert.Equal(t, "a", l.At(0))
	assert.Equal(t, "c", l.At(2))
	assert.Panics(t, func() { l.At(3) })

	collected := maps.Collect(l.All())
	assert.Equal(t, map[int]string{0: "a", 1: "b", 2: "c"}, collected)

	var order []string
	for _, v := range l.All() {
		order = append(order, v)
	}
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestList_ItemsIsACopy(t *testing.T) {
	l := makeSimpleList()
	items := l.Items()
	items[0] = "mutated"
	assert.Equal(t, "a", l.At(0))
	assert.False(t, slices.Contains(l.Items(), "mutated"))
}

func TestList_SetMaxItems(t *testing.T) {
	l := makeSimpleList()

	l.SetMaxItems(10)
	assert.False(t, l.Changed(), "growing does not change contents")

	l.SetMaxItems(2)
	assert.True(t, l.Changed())
	assert.Equal(t, []string{"a", "b"}, l.Items())

	l.Insert("z")
	assert.Equal(t, []string{"z", "a"}, l.Items())
}

// Package mru keeps the most recently used directory list and persists it
// as one path token per line.
package mru

import (
	"iter"
	"slices"
)

// List is a small most-recently-used list. New items go to the front; an
// item already present is moved there. The list remembers whether it has
// changed since the flag was last cleared so callers only persist real
// changes. It is meant for tens of entries, not thousands.
type List[T comparable] struct {
	items    []T
	maxItems int
	changed  bool
}

// NewList returns an empty list holding at most maxItems entries. A
// maxItems below 1 is treated as 1.
func NewList[T comparable](maxItems int) *List[T] {
	maxItems = max(maxItems, 1)
	return &List[T]{items: make([]T, 0, maxItems), maxItems: maxItems}
}

// Insert makes v the first item, dropping the oldest entry when full.
func (l *List[T]) Insert(v T) {
	l.Remove(v)
	l.items = slices.Insert(l.items, 0, v)
	if len(l.items) > l.maxItems {
		clear(l.items[l.maxItems:])
		l.items = l.items[:l.maxItems]
	}
	l.changed = true
}

// Remove deletes v and reports whether it was present.
func (l *List[T]) Remove(v T) bool {
	i := slices.Index(l.items, v)
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	l.changed = true
	return true
}

// Len returns the number of items.
func (l *List[T]) Len() int { return len(l.items) }

// At returns the i'th item, most recent first. It panics if i is out of range.
func (l *List[T]) At(i int) T { return l.items[i] }

// All iterates over index and item, most recent first.
func (l *List[T]) All() iter.Seq2[int, T] {
	return slices.All(l.items)
}

// Items returns a copy of the items, most recent first.
func (l *List[T]) Items() []T { return slices.Clone(l.items) }

// Changed reports whether the list changed since ClearChanged.
func (l *List[T]) Changed() bool { return l.changed }

// ClearChanged resets the changed flag.
func (l *List[T]) ClearChanged() { l.changed = false }

// MaxItems returns the capacity limit.
func (l *List[T]) MaxItems() int { return l.maxItems }

// SetMaxItems changes the capacity limit, truncating the list if needed.
func (l *List[T]) SetMaxItems(n int) {
	l.maxItems = max(n, 1)
	if len(l.items) > l.maxItems {
		clear(l.items[l.maxItems:])
		l.items = l.items[:l.maxItems]
		l.changed = true
	}
}

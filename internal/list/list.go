// Package list provides an ordered collection with a cyclic cursor.
package list

// SelectionList holds a fixed sequence of items and an optional cursor into it.
// The items never change after construction; only the cursor moves.
type SelectionList[T any] struct {
	items     []T
	cursor    int
	hasCursor bool
}

// New creates a SelectionList over items. A non-empty list starts with the
// first item selected; an empty list has no selection.
func New[T any](items []T) *SelectionList[T] {
	return &SelectionList[T]{
		items:     items,
		hasCursor: len(items) > 0,
	}
}

// Items returns the items in display order.
func (l *SelectionList[T]) Items() []T {
	return l.items
}

// Len returns the number of items.
func (l *SelectionList[T]) Len() int {
	return len(l.items)
}

// Cursor returns the current cursor and whether one is set.
func (l *SelectionList[T]) Cursor() (int, bool) {
	return l.cursor, l.hasCursor
}

// Select moves the cursor to index without validating it.
// An out-of-range index makes Selected report no selection.
func (l *SelectionList[T]) Select(index int) {
	l.cursor = index
	l.hasCursor = true
}

// Selected returns the item under the cursor.
func (l *SelectionList[T]) Selected() (T, bool) {
	var zero T
	if !l.hasCursor || l.cursor < 0 || l.cursor >= len(l.items) {
		return zero, false
	}
	return l.items[l.cursor], true
}

// Next moves the cursor forward, wrapping from the last item to the first.
func (l *SelectionList[T]) Next() {
	if !l.hasCursor || len(l.items) == 0 {
		return
	}
	l.cursor = mod(l.cursor+1, len(l.items))
}

// Previous moves the cursor back, wrapping from the first item to the last.
func (l *SelectionList[T]) Previous() {
	if !l.hasCursor || len(l.items) == 0 {
		return
	}
	l.cursor = mod(l.cursor-1, len(l.items))
}

// HandleNavigationKey applies down/j as Next and up/k as Previous.
// It reports whether the key was consumed.
func (l *SelectionList[T]) HandleNavigationKey(key string) bool {
	switch key {
	case "down", "j":
		l.Next()
	case "up", "k":
		l.Previous()
	default:
		return false
	}
	return true
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}

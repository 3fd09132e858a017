package tui

// Focusable is anything the focus ring can land on.
type Focusable interface {
	FocusID() string
}

// Ring is a circular focus order over a list of items. An empty ring
// degrades to no-ops; Current reports false until an item exists.
type Ring struct {
	items []Focusable
	index int
}

// NewRing builds a ring over items, focusing the first one.
func NewRing(items []Focusable) *Ring {
	r := &Ring{items: items, index: -1}
	if len(items) > 0 {
		r.index = 0
	}
	return r
}

// Len returns the number of items in the ring.
func (r *Ring) Len() int { return len(r.items) }

// Index returns the focused position, -1 when empty.
func (r *Ring) Index() int { return r.index }

// Current returns the focused item.
func (r *Ring) Current() (Focusable, bool) {
	if r.index < 0 || r.index >= len(r.items) {
		return nil, false
	}
	return r.items[r.index], true
}

// Next advances focus, wrapping past the end.
func (r *Ring) Next() {
	if len(r.items) == 0 {
		return
	}
	r.index = (r.index + 1) % len(r.items)
}

// Prev retreats focus, wrapping past the start.
func (r *Ring) Prev() {
	if len(r.items) == 0 {
		return
	}
	r.index = (r.index - 1 + len(r.items)) % len(r.items)
}

// Focus moves focus to the item with the given ID, if present.
func (r *Ring) Focus(id string) {
	for i, item := range r.items {
		if item.FocusID() == id {
			r.index = i
			return
		}
	}
}

// Rebuild replaces the item list, keeping focus on the same item when it
// survives the rebuild and falling back to the first item otherwise.
func (r *Ring) Rebuild(items []Focusable) {
	var focusedID string
	if cur, ok := r.Current(); ok {
		focusedID = cur.FocusID()
	}

	r.items = items
	r.index = -1
	if len(items) == 0 {
		return
	}
	r.index = 0
	if focusedID != "" {
		r.Focus(focusedID)
	}
}

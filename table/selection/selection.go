// Package selection tracks the set of selected row identities independent of
// which rows are currently rendered.
package selection

import (
	"cmp"
	"slices"
)

// Tracker holds selected identities and remembers the order they were
// selected in. Identities must be comparable. A Tracker is owned by a single
// grid and is not safe for concurrent use.
type Tracker struct {
	// Identity to selection sequence number.
	members map[any]uint64
	next    uint64

	// Called after every mutation that changed membership.
	onChange func()
}

func NewTracker(onChange func()) *Tracker {
	return &Tracker{
		members:  make(map[any]uint64),
		onChange: onChange,
	}
}

// Toggle flips the membership of id. It reports whether id is selected
// afterwards.
func (t *Tracker) Toggle(id any) bool {
	selected := !t.Contains(id)
	if selected {
		t.add(id)
	} else {
		t.remove(id)
	}
	t.changed()
	return selected
}

// Set forces the membership of id and reports whether anything changed.
func (t *Tracker) Set(id any, selected bool) bool {
	var changed bool
	if selected {
		changed = t.add(id)
	} else {
		changed = t.remove(id)
	}
	if changed {
		t.changed()
	}
	return changed
}

// ToggleAll inserts every id when checked, otherwise removes exactly those
// ids. The change hook fires once.
func (t *Tracker) ToggleAll(ids []any, checked bool) bool {
	changed := false
	for _, id := range ids {
		if checked {
			changed = t.add(id) || changed
		} else {
			changed = t.remove(id) || changed
		}
	}
	if changed {
		t.changed()
	}
	return changed
}

func (t *Tracker) Contains(id any) bool {
	_, ok := t.members[id]
	return ok
}

// AllSelected reports whether ids is non-empty and every id is selected.
func (t *Tracker) AllSelected(ids []any) bool {
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if !t.Contains(id) {
			return false
		}
	}
	return true
}

// Prune drops every identity for which keep returns false and returns how
// many were dropped.
func (t *Tracker) Prune(keep func(id any) bool) int {
	dropped := 0
	for id := range t.members {
		if !keep(id) {
			delete(t.members, id)
			dropped++
		}
	}
	if dropped > 0 {
		t.changed()
	}
	return dropped
}

// Clear empties the selection.
func (t *Tracker) Clear() {
	if len(t.members) == 0 {
		return
	}
	clear(t.members)
	t.changed()
}

// Snapshot returns the selected identities in the order they were selected.
func (t *Tracker) Snapshot() []any {
	type entry struct {
		id  any
		seq uint64
	}
	entries := make([]entry, 0, len(t.members))
	for id, seq := range t.members {
		entries = append(entries, entry{id, seq})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return cmp.Compare(a.seq, b.seq)
	})
	out := make([]any, len(entries))
	for i, e := range entries {
		out[i] = e.id
	}
	return out
}

func (t *Tracker) Len() int {
	return len(t.members)
}

func (t *Tracker) add(id any) bool {
	if t.Contains(id) {
		return false
	}
	t.members[id] = t.next
	t.next++
	return true
}

func (t *Tracker) remove(id any) bool {
	if !t.Contains(id) {
		return false
	}
	delete(t.members, id)
	return true
}

func (t *Tracker) changed() {
	if t.onChange != nil {
		t.onChange()
	}
}

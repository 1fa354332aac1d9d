package domain

// SelectionRange is the normalized result of a drag gesture: an inclusive
// slot index range scoped to one resource. It is transient and never
// persisted; it is consumed once by the slot mutator or the task commit.
// Pointer-driven callers build it through StartDrag/Move/Selection; the HTTP
// layer skips the gesture and submits normalized indices directly.
type SelectionRange struct {
	ResourceID string
	Start      int
	End        int
}

// Width returns the number of slots covered by the selection
func (r SelectionRange) Width() int {
	return r.End - r.Start + 1
}

// Drag is the in-flight state of a pointer drag over a schedule row.
// It is a plain value carried by the caller between pointer events; the
// engine keeps no state of its own.
type Drag struct {
	ResourceID string
	Anchor     int
	Current    int
}

// StartDrag begins a drag on the given resource row. The anchor index is
// clamped to the slot grid.
func StartDrag(resourceID string, anchorIndex int) Drag {
	idx := clampIndex(anchorIndex)
	return Drag{ResourceID: resourceID, Anchor: idx, Current: idx}
}

// Move extends the drag to a new index. Movement reported against a different
// resource row is ignored: the range stays anchored to the originating
// resource and keeps its last in-row index.
func (d Drag) Move(resourceID string, currentIndex int) Drag {
	if resourceID != d.ResourceID {
		return d
	}
	d.Current = clampIndex(currentIndex)
	return d
}

// Selection normalizes the drag into an inclusive range with Start <= End
func (d Drag) Selection() SelectionRange {
	start, end := d.Anchor, d.Current
	if start > end {
		start, end = end, start
	}
	return SelectionRange{ResourceID: d.ResourceID, Start: start, End: end}
}

func clampIndex(i int) int {
	if i < MinSlotIndex {
		return MinSlotIndex
	}
	if i > MaxSlotIndex {
		return MaxSlotIndex
	}
	return i
}

package pixedit

// FilterHistory is a stack of image snapshots enabling undo. The bottom
// entry is the originally loaded image and can never be popped, so the
// stack always holds at least one buffer. Every stored entry is an
// independent deep copy; mutating one buffer can never affect another.
type FilterHistory struct {
	stack []*Buffer
}

// NewHistory creates a history whose sentinel base entry is a deep copy
// of initial.
func NewHistory(initial *Buffer) *FilterHistory {
	return &FilterHistory{stack: []*Buffer{initial.Clone()}}
}

// Push snapshots b onto the stack. The stored entry is a deep copy, so
// the caller may keep using b freely.
func (h *FilterHistory) Push(b *Buffer) {
	h.stack = append(h.stack, b.Clone())
}

// Pop removes and returns the most recent snapshot. Popping the sentinel
// base entry is refused with ErrEmptyHistory, leaving the stack intact.
func (h *FilterHistory) Pop() (*Buffer, error) {
	if len(h.stack) <= 1 {
		return nil, ErrEmptyHistory
	}

	top := h.stack[len(h.stack)-1]
	h.stack[len(h.stack)-1] = nil
	h.stack = h.stack[:len(h.stack)-1]
	return top, nil
}

// Peek returns the current top snapshot without removing it.
func (h *FilterHistory) Peek() *Buffer {
	return h.stack[len(h.stack)-1]
}

// Len returns the number of snapshots, counting the sentinel.
func (h *FilterHistory) Len() int {
	return len(h.stack)
}

// Reset discards every snapshot except the sentinel base entry.
func (h *FilterHistory) Reset() {
	for i := 1; i < len(h.stack); i++ {
		h.stack[i] = nil
	}
	h.stack = h.stack[:1]
}

package buffer

// snapshot is everything undo restores: the text and where the user was in it.
type snapshot struct {
	text   string
	cursor Pos
	sel    selectionState
}

// history is a bounded undo stack plus the redo stack of undone states.
// limit < 0 records nothing.
type history struct {
	limit int
	undo  []snapshot
	redo  []snapshot
}

// record pushes the state before an edit. Any redo states are lost.
func (h *history) record(s snapshot) {
	h.push(s)
	h.redo = h.redo[:0]
}

func (h *history) push(s snapshot) {
	if h.limit < 0 {
		return
	}
	h.undo = append(h.undo, s)
	if over := len(h.undo) - h.limit; over > 0 {
		h.undo = append(h.undo[:0], h.undo[over:]...)
	}
}

// stepBack swaps cur for the newest undo state.
func (h *history) stepBack(cur snapshot) (snapshot, bool) {
	n := len(h.undo)
	if n == 0 {
		return snapshot{}, false
	}
	prev := h.undo[n-1]
	h.undo = h.undo[:n-1]
	h.redo = append(h.redo, cur)
	return prev, true
}

// stepForward swaps cur for the newest redo state.
func (h *history) stepForward(cur snapshot) (snapshot, bool) {
	n := len(h.redo)
	if n == 0 {
		return snapshot{}, false
	}
	next := h.redo[n-1]
	h.redo = h.redo[:n-1]
	h.push(cur)
	return next, true
}

func (b *Buffer) snapshot() snapshot {
	return snapshot{text: b.Text(), cursor: b.cursor, sel: b.sel}
}

// restore replaces the document with s, clamping positions against the
// restored lines.
func (b *Buffer) restore(s snapshot) {
	b.lines = splitLines(s.text)
	b.cursor = b.clampPos(s.cursor)
	b.sel = selectionState{}
	if s.sel.active {
		anchor, end := b.clampPos(s.sel.anchor), b.clampPos(s.sel.end)
		if anchor != end {
			b.sel = selectionState{active: true, anchor: anchor, end: end}
		}
	}
	b.version++
	b.textVersion++
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

// Undo restores the state before the last edit. It reports whether anything
// was undone.
func (b *Buffer) Undo() bool {
	prev, ok := b.hist.stepBack(b.snapshot())
	if ok {
		b.restore(prev)
	}
	return ok
}

// Redo reapplies the last undone edit.
func (b *Buffer) Redo() bool {
	next, ok := b.hist.stepForward(b.snapshot())
	if ok {
		b.restore(next)
	}
	return ok
}

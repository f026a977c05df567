package buffer

// Action is one discrete buffer operation. Content-changing actions are
// classified by IsEdit.
type Action interface {
	isAction()
}

type (
	// Insert types text at the cursor, replacing the selection.
	Insert struct{ Text string }
	// Paste behaves like Insert; it is kept apart so callers can tell typed
	// input from clipboard input.
	Paste struct{ Text string }
	Newline   struct{}
	Backspace struct{}
	Delete    struct{}
	// Cut removes the selection. Copying it somewhere is the caller's job.
	Cut struct{}
	// Replace clears the document and inserts Text.
	Replace struct{ Text string }
	Undo    struct{}
	Redo    struct{}

	MoveCursor struct{ Move Move }
	MoveTo     struct {
		Pos    Pos
		Extend bool
	}
	Select    struct{ Range Range }
	SelectAll struct{}
)

func (Insert) isAction()     {}
func (Paste) isAction()      {}
func (Newline) isAction()    {}
func (Backspace) isAction()  {}
func (Delete) isAction()     {}
func (Cut) isAction()        {}
func (Replace) isAction()    {}
func (Undo) isAction()       {}
func (Redo) isAction()       {}
func (MoveCursor) isAction() {}
func (MoveTo) isAction()     {}
func (Select) isAction()     {}
func (SelectAll) isAction()  {}

// IsEdit reports whether a may change the document text. Navigation
// actions never do.
func IsEdit(a Action) bool {
	switch a.(type) {
	case Insert, Paste, Newline, Backspace, Delete, Cut, Replace, Undo, Redo:
		return true
	default:
		return false
	}
}

// State is the cursor and selection after an action.
type State struct {
	Cursor       Pos
	Selection    Range
	HasSelection bool
	// Changed is true when the text itself changed.
	Changed bool
}

// Perform applies a and returns the resulting cursor and selection.
func (b *Buffer) Perform(a Action) State {
	var changed bool
	switch a := a.(type) {
	case Insert:
		changed = b.InsertText(a.Text)
	case Paste:
		changed = b.InsertText(a.Text)
	case Newline:
		changed = b.InsertNewline()
	case Backspace:
		changed = b.DeleteBackward()
	case Delete:
		changed = b.DeleteForward()
	case Cut:
		changed = b.DeleteSelection()
	case Replace:
		changed = b.ReplaceAll(a.Text)
	case Undo:
		changed = b.Undo()
	case Redo:
		changed = b.Redo()
	case MoveCursor:
		b.Move(a.Move)
	case MoveTo:
		b.MoveTo(a.Pos, a.Extend)
	case Select:
		b.SetSelection(a.Range)
	case SelectAll:
		b.SelectAll()
	}

	st := State{Cursor: b.cursor, Changed: changed}
	st.Selection, st.HasSelection = b.Selection()
	return st
}

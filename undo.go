package main

// Undo is a stack of full-grid deep copies. A snapshot is pushed before any
// accepted click or hint mutates the grid, so RestoreState is always an
// exact rollback to the pre-move state.

func (b *Board) pushUndo() {
	b.undoStack = append(b.undoStack, b.tiles.Clone())
}

// RestoreState pops the most recent snapshot and overwrites the whole grid
// from it, hover flags included. No-op with an empty stack. The replay log
// keeps its entries: undo rolls back state, not history.
func (b *Board) RestoreState() {
	if len(b.undoStack) == 0 {
		return
	}
	last := len(b.undoStack) - 1
	snapshot := b.undoStack[last]
	b.undoStack = b.undoStack[:last]
	b.tiles.CopyFrom(snapshot)
}

package main

func (m *model) handleCursorMove(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.cursorX -= speed
	case "l", "right", "L", "shift+right":
		m.cursorX += speed
	case "k", "up", "K", "shift+up":
		m.cursorY -= speed
	case "j", "down", "J", "shift+down":
		m.cursorY += speed
	}
	m.ensureCursorInBounds()
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

func (m *model) ensureCursorInBounds() {
	size := m.gridSize()
	if size == 0 {
		m.cursorX, m.cursorY = 0, 0
		return
	}
	if m.cursorX < 0 {
		m.cursorX = 0
	}
	if m.cursorY < 0 {
		m.cursorY = 0
	}
	if m.cursorX >= size {
		m.cursorX = size - 1
	}
	if m.cursorY >= size {
		m.cursorY = size - 1
	}
}

// gridSize is the side length of whichever grid the cursor moves on in the
// current mode.
func (m *model) gridSize() int {
	if m.mode == ModeEditor && m.editorGrid != nil {
		return m.editorGrid.Size()
	}
	if m.board != nil {
		return m.board.Size()
	}
	return 0
}

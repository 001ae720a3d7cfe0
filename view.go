package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleFilled    = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	styleCross     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleEmpty     = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	styleHover     = lipgloss.NewStyle().Background(lipgloss.Color("236"))
	styleFlash     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	styleCursor    = lipgloss.NewStyle().Reverse(true)
	styleClue      = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	styleClueHover = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	styleSolved    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleError     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleOK        = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// boardLayout is the screen geometry of the rendered board: where the grid
// starts and how wide the clue margins are. The mouse handler uses the same
// numbers to map screen cells back to board cells.
type boardLayout struct {
	originX int // screen column of grid cell (0,0)
	originY int // screen row of grid cell (0,0)
	cellW   int // screen columns per board cell
}

func (m *model) layout() boardLayout {
	clues := m.viewClues()
	maxRowClueChars := 1
	for _, runs := range clues.Rows {
		if n := len(clueText(runs)); n > maxRowClueChars {
			maxRowClueChars = n
		}
	}
	maxColClueCount := 1
	for _, runs := range clues.Cols {
		if len(runs) > maxColClueCount {
			maxColClueCount = len(runs)
		}
	}
	return boardLayout{
		originX: maxRowClueChars + 1,
		originY: maxColClueCount,
		cellW:   2,
	}
}

// viewClues returns the clues for whatever grid is on screen: the loaded
// puzzle's clues while playing, live-derived clues in the editor.
func (m *model) viewClues() Clues {
	if m.mode == ModeEditor && m.editorGrid != nil {
		return ComputeClues(m.editorGrid)
	}
	if m.mode == ModeReplay && m.replayBoard != nil {
		return m.replayBoard.Clues()
	}
	if m.board != nil {
		return m.board.Clues()
	}
	if m.editorGrid != nil {
		return ComputeClues(m.editorGrid)
	}
	return Clues{}
}

func (m model) View() string {
	switch m.mode {
	case ModeStartup:
		return m.startupView()
	case ModeFileInput:
		return m.fileInputView()
	case ModeSessionList:
		return m.sessionListView()
	default:
		return m.boardView()
	}
}

func (m *model) startupView() string {
	var sb strings.Builder
	sb.WriteString("nonoterm\n")
	sb.WriteString("========\n\n")
	sb.WriteString("  n    New random puzzle\n")
	sb.WriteString("  o    Open a puzzle file\n")
	sb.WriteString("  e    Puzzle editor\n")
	sb.WriteString("  R    Replay a solved session\n")
	sb.WriteString("  q    Quit\n")
	if m.errorMessage != "" {
		sb.WriteString("\n")
		sb.WriteString(styleError.Render(m.errorMessage))
	}
	return sb.String()
}

func (m *model) boardView() string {
	grid := m.viewGrid()
	if grid == nil {
		return "no puzzle loaded"
	}

	size := grid.Size()
	clues := m.viewClues()
	lay := m.layout()
	frame := 0
	if m.board != nil {
		frame = m.board.Frame()
	}

	var sb strings.Builder

	// Column clues, bottom-aligned above the grid.
	for line := 0; line < lay.originY; line++ {
		sb.WriteString(strings.Repeat(" ", lay.originX))
		for x := 0; x < size; x++ {
			runs := clues.Cols[x]
			labels := colClueLabels(runs)
			idx := line - (lay.originY - len(labels))
			cell := strings.Repeat(" ", lay.cellW)
			if idx >= 0 && idx < len(labels) {
				cell = padCell(labels[idx], lay.cellW)
			}
			style := styleClue
			if m.hoverCol == x && m.mode == ModePlaying {
				style = styleClueHover
			}
			sb.WriteString(style.Render(cell))
		}
		sb.WriteString("\n")
	}

	// Grid rows with right-aligned row clues.
	for y := 0; y < size; y++ {
		rowClue := clueText(clues.Rows[y])
		style := styleClue
		if m.hoverRow == y && m.mode == ModePlaying {
			style = styleClueHover
		}
		sb.WriteString(style.Render(fmt.Sprintf("%*s", lay.originX-1, rowClue)))
		sb.WriteString(" ")
		for x := 0; x < size; x++ {
			sb.WriteString(m.renderTile(grid.At(x, y), x, y, frame))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.statusLine())
	return sb.String()
}

func (m *model) viewGrid() *Grid {
	if m.mode == ModeReplay && m.replayBoard != nil {
		return m.replayBoard.tiles
	}
	if m.mode == ModeEditor {
		return m.editorGrid
	}
	if m.board != nil {
		return m.board.tiles
	}
	return m.editorGrid
}

func (m *model) renderTile(t Tile, x, y, frame int) string {
	var cell string
	var style lipgloss.Style
	switch t.State {
	case TileFilled:
		cell, style = "██", styleFilled
	case TileCross:
		cell, style = "✕ ", styleCross
	default:
		cell, style = "· ", styleEmpty
	}
	if t.FlashUntil > frame {
		style = styleFlash
	}
	if t.HoverX || t.HoverY {
		style = style.Copy().Inherit(styleHover)
	}
	if m.usingKeys && x == m.cursorX && y == m.cursorY &&
		(m.mode == ModePlaying || m.mode == ModeEditor) {
		style = style.Copy().Inherit(styleCursor)
	}
	return style.Render(cell)
}

func colClueLabels(runs []int) []string {
	if len(runs) == 0 {
		return []string{"0"}
	}
	labels := make([]string, len(runs))
	for i, r := range runs {
		labels[i] = strconv.Itoa(r)
	}
	return labels
}

func padCell(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

func (m *model) statusLine() string {
	if m.errorMessage != "" {
		return styleError.Render(m.errorMessage)
	}
	if m.successMessage != "" {
		return styleOK.Render(m.successMessage)
	}

	switch m.mode {
	case ModeConfirm:
		return m.confirmPrompt() + " (y/n)"
	case ModeEditor:
		return fmt.Sprintf("EDITOR %dx%d | z: paint | x: erase | +/-: resize | s: save puzzle | v: verify | esc: back",
			m.editorGrid.Size(), m.editorGrid.Size())
	case ModeReplay:
		total := len(m.replayMoves)
		state := "paused"
		if m.replayAuto {
			state = "playing"
		}
		done := ""
		if m.replayBoard != nil && m.replayBoard.IsSolved() {
			done = styleSolved.Render(" SOLVED")
		}
		return fmt.Sprintf("REPLAY %s | move %d/%d (%s) | space: play/pause | n: step | esc: back%s",
			m.replayPuzzle, m.replayPos, total, state, done)
	}

	if m.board != nil && m.board.IsSolved() {
		return styleSolved.Render(fmt.Sprintf("Solved %s in %d moves!", m.puzzleName, len(m.board.Moves()))) +
			" | n: new puzzle | S: export PNG | q: quit"
	}

	hints := "∞"
	if n := m.board.HintsRemaining(); n >= 0 {
		hints = strconv.Itoa(n)
	}
	return fmt.Sprintf("%s | z: fill | x: cross | u: undo | ?: hint (%s left) | s: save | y: yank | q: quit",
		m.puzzleName, hints)
}

func (m *model) confirmPrompt() string {
	switch m.confirmAction {
	case ConfirmQuit:
		return "Quit nonoterm?"
	case ConfirmNewPuzzle:
		return "Abandon this puzzle and start a new one?"
	case ConfirmClearBoard:
		return "Clear the whole board?"
	case ConfirmOverwriteFile:
		return fmt.Sprintf("Overwrite %s?", m.filename)
	}
	return "Are you sure?"
}

func (m *model) fileInputView() string {
	var sb strings.Builder
	switch m.fileOp {
	case FileOpOpen:
		sb.WriteString("Select a puzzle:\n")
	case FileOpSaveSnapshot:
		sb.WriteString("Save board snapshot as:\n")
	case FileOpSavePuzzle:
		sb.WriteString("Save puzzle as:\n")
	case FileOpExportPNG:
		sb.WriteString("Export PNG as:\n")
	case FileOpExportMoves:
		sb.WriteString("Export move log as:\n")
	case FileOpImportMoves:
		sb.WriteString("Import a move log:\n")
	case FileOpVerify:
		sb.WriteString("Verify the grid against a puzzle:\n")
	}
	sb.WriteString(strings.Repeat("─", 40))
	sb.WriteString("\n")

	if m.fileOpIsPicker() {
		if len(m.fileList) == 0 {
			sb.WriteString("(No " + m.fileExt() + " files found)\n")
		}
		for i, file := range m.fileList {
			name := strings.TrimSuffix(file, m.fileExt())
			if i == m.selectedFileIndex {
				sb.WriteString("> " + name + " <\n")
			} else {
				sb.WriteString("  " + name + "\n")
			}
		}
		sb.WriteString(strings.Repeat("─", 40))
		sb.WriteString("\n")
	}

	sb.WriteString("Filename: ")
	sb.WriteString(m.filename)
	sb.WriteString("█")
	if m.errorMessage != "" {
		sb.WriteString("\n")
		sb.WriteString(styleError.Render(m.errorMessage))
	}
	return sb.String()
}

func (m *model) sessionListView() string {
	var sb strings.Builder
	sb.WriteString("Solved sessions:\n")
	sb.WriteString(strings.Repeat("─", 60))
	sb.WriteString("\n")
	if len(m.sessions) == 0 {
		sb.WriteString("(none recorded yet)\n")
	}
	for i, rec := range m.sessions {
		line := fmt.Sprintf("%s  %dx%d  %d moves  %s",
			rec.Puzzle, rec.Size, rec.Size, rec.MoveCount,
			rec.SolvedAt.Local().Format("2006-01-02 15:04"))
		if i == m.selectedSession {
			sb.WriteString("> " + line + "\n")
		} else {
			sb.WriteString("  " + line + "\n")
		}
	}
	sb.WriteString(strings.Repeat("─", 60))
	sb.WriteString("\nenter: replay | esc: back")
	if m.errorMessage != "" {
		sb.WriteString("\n")
		sb.WriteString(styleError.Render(m.errorMessage))
	}
	return sb.String()
}

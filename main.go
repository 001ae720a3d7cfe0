package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

func main() {
	config := loadConfig()
	setupLogger(config)

	store, err := OpenReplayStore(config.ReplayDB)
	if err != nil {
		logger.WithError(err).Warn("replay store unavailable, sessions will not be recorded")
		store = nil
	}

	p := tea.NewProgram(
		initialModel(config, store),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
	if store != nil {
		store.Close()
	}
}

func setupLogger(config *Config) {
	logger.SetOutput(os.Stderr)
	if config.LogFile == "" {
		return
	}
	f, err := os.OpenFile(config.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	logger.SetOutput(f)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

type model struct {
	width  int
	height int

	config *Config
	store  *ReplayStore
	rng    *rand.Rand

	mode       Mode
	board      *Board
	puzzle     Puzzle
	puzzleName string
	startedAt  time.Time

	cursorX   int
	cursorY   int
	usingKeys bool
	hoverCol  int
	hoverRow  int

	editorGrid *Grid

	fileOp            FileOperation
	fileList          []string
	selectedFileIndex int
	filename          string

	confirmAction ConfirmAction

	sessions        []SessionRecord
	selectedSession int

	replayBoard  *Board
	replayMoves  []Move
	replayPos    int
	replayAuto   bool
	replayPuzzle string
	replayTicks  int

	errorMessage   string
	successMessage string
}

func initialModel(config *Config, store *ReplayStore) model {
	return model{
		config:   config,
		store:    store,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		mode:     ModeStartup,
		hoverCol: -1,
		hoverRow: -1,
	}
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/framesPerSecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.board != nil {
			m.board.Tick()
		}
		if m.mode == ModeReplay {
			m.stepReplayAuto()
		}
		return m, tick()

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleMouse maps screen coordinates through the board layout. Motion
// drives the hover flags; button presses are edge events in bubbletea, so a
// held button never repeats a toggle.
func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModePlaying && m.mode != ModeEditor {
		return m, nil
	}

	lay := m.layout()
	cellX := (msg.X - lay.originX) / lay.cellW
	cellY := msg.Y - lay.originY
	size := m.gridSize()
	inGrid := msg.X >= lay.originX && cellX >= 0 && cellX < size && cellY >= 0 && cellY < size

	switch msg.Action {
	case tea.MouseActionMotion:
		m.usingKeys = false
		if m.mode == ModePlaying && m.board != nil {
			if inGrid {
				m.hoverCol, m.hoverRow = cellX, cellY
				m.board.SetHover(cellX, cellY)
			} else {
				m.hoverCol, m.hoverRow = -1, -1
				m.board.SetHover(-1, -1)
			}
		}

	case tea.MouseActionPress:
		if !inGrid {
			return m, nil
		}
		m.clearMessages()
		switch m.mode {
		case ModePlaying:
			switch msg.Button {
			case tea.MouseButtonLeft:
				m.board.HandleInput(cellX, cellY, LeftClick)
			case tea.MouseButtonRight:
				m.board.HandleInput(cellX, cellY, RightClick)
			}
		case ModeEditor:
			switch msg.Button {
			case tea.MouseButtonLeft:
				m.paintEditorCell(cellX, cellY, TileFilled)
			case tea.MouseButtonRight:
				m.paintEditorCell(cellX, cellY, TileEmpty)
			}
		}
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeStartup:
		return m.handleStartupKey(key)
	case ModePlaying:
		return m.handlePlayingKey(key)
	case ModeEditor:
		return m.handleEditorKey(key)
	case ModeFileInput:
		return m.handleFileInputKey(msg)
	case ModeConfirm:
		return m.handleConfirmKey(key)
	case ModeSessionList:
		return m.handleSessionListKey(key)
	case ModeReplay:
		return m.handleReplayKey(key)
	}
	return m, nil
}

func (m model) handleStartupKey(key string) (tea.Model, tea.Cmd) {
	m.clearMessages()
	switch key {
	case "q":
		return m, tea.Quit
	case "n":
		m.startPuzzle(GeneratePuzzle(defaultBoardSize, defaultDensity, m.config.HintBudget, m.rng))
	case "o":
		m.enterFileInput(FileOpOpen)
	case "e":
		m.enterEditor(defaultBoardSize)
	case "R":
		m.enterSessionList()
	}
	return m, nil
}

func (m model) handlePlayingKey(key string) (tea.Model, tea.Cmd) {
	m.clearMessages()
	switch key {
	case "h", "j", "k", "l", "left", "down", "up", "right",
		"H", "J", "K", "L", "shift+left", "shift+down", "shift+up", "shift+right":
		m.usingKeys = true
		m.handleCursorMove(key, m.getMoveSpeed(key))
		m.hoverCol, m.hoverRow = m.cursorX, m.cursorY
		m.board.SetHover(m.cursorX, m.cursorY)
	case "z", " ", "enter":
		m.usingKeys = true
		m.board.HandleInput(m.cursorX, m.cursorY, LeftClick)
	case "x":
		m.usingKeys = true
		m.board.HandleInput(m.cursorX, m.cursorY, RightClick)
	case "u":
		m.board.RestoreState()
	case "?":
		if err := m.board.Hint(); err != nil {
			m.errorMessage = "No hints remaining"
		}
	case "c":
		if m.config.Confirmations {
			m.confirmAction = ConfirmClearBoard
			m.mode = ModeConfirm
		} else {
			m.board.Clear()
		}
	case "s":
		m.enterFileInput(FileOpSaveSnapshot)
	case "S":
		m.enterFileInput(FileOpExportPNG)
	case "M":
		m.enterFileInput(FileOpExportMoves)
	case "I":
		m.enterFileInput(FileOpImportMoves)
	case "y":
		m.yankBoard()
	case "n":
		if m.config.Confirmations && !m.board.IsSolved() {
			m.confirmAction = ConfirmNewPuzzle
			m.mode = ModeConfirm
		} else {
			m.startPuzzle(GeneratePuzzle(defaultBoardSize, defaultDensity, m.config.HintBudget, m.rng))
		}
	case "o":
		m.enterFileInput(FileOpOpen)
	case "R":
		m.enterSessionList()
	case "q", "escape":
		if m.config.Confirmations && !m.board.IsSolved() {
			m.confirmAction = ConfirmQuit
			m.mode = ModeConfirm
			return m, nil
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m model) handleEditorKey(key string) (tea.Model, tea.Cmd) {
	m.clearMessages()
	switch key {
	case "h", "j", "k", "l", "left", "down", "up", "right",
		"H", "J", "K", "L", "shift+left", "shift+down", "shift+up", "shift+right":
		m.usingKeys = true
		m.handleCursorMove(key, m.getMoveSpeed(key))
	case "z", " ", "enter":
		m.usingKeys = true
		m.paintEditorCell(m.cursorX, m.cursorY, TileFilled)
	case "x":
		m.usingKeys = true
		m.paintEditorCell(m.cursorX, m.cursorY, TileEmpty)
	case "+", "=":
		m.resizeEditor(m.editorGrid.Size() + 1)
	case "-":
		m.resizeEditor(m.editorGrid.Size() - 1)
	case "s":
		m.enterFileInput(FileOpSavePuzzle)
	case "v":
		m.enterFileInput(FileOpVerify)
	case "escape", "q":
		m.mode = ModeStartup
	}
	return m, nil
}

func (m model) handleFileInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "escape":
		m.errorMessage = ""
		m.returnFromFileInput()
	case "enter":
		return m.executeFileOp()
	case "up":
		if m.fileOpIsPicker() && m.selectedFileIndex > 0 {
			m.selectedFileIndex--
			m.filename = strings.TrimSuffix(m.fileList[m.selectedFileIndex], m.fileExt())
		}
	case "down":
		if m.fileOpIsPicker() && m.selectedFileIndex < len(m.fileList)-1 {
			m.selectedFileIndex++
			m.filename = strings.TrimSuffix(m.fileList[m.selectedFileIndex], m.fileExt())
		}
	case "backspace":
		if len(m.filename) > 0 {
			m.filename = m.filename[:len(m.filename)-1]
		}
	default:
		if msg.Type == tea.KeyRunes {
			m.filename += string(msg.Runes)
		}
	}
	return m, nil
}

func (m model) handleConfirmKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y":
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmNewPuzzle:
			m.startPuzzle(GeneratePuzzle(defaultBoardSize, defaultDensity, m.config.HintBudget, m.rng))
		case ConfirmClearBoard:
			m.board.Clear()
			m.mode = ModePlaying
		case ConfirmOverwriteFile:
			return m.writeFileOp(true)
		}
	case "n", "N", "escape":
		if m.confirmAction == ConfirmOverwriteFile {
			m.mode = ModeFileInput
		} else if m.board != nil {
			m.mode = ModePlaying
		} else {
			m.mode = ModeStartup
		}
	}
	return m, nil
}

func (m model) handleSessionListKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "escape", "q":
		if m.board != nil {
			m.mode = ModePlaying
		} else {
			m.mode = ModeStartup
		}
	case "k", "up":
		if m.selectedSession > 0 {
			m.selectedSession--
		}
	case "j", "down":
		if m.selectedSession < len(m.sessions)-1 {
			m.selectedSession++
		}
	case "enter":
		m.startReplay()
	}
	return m, nil
}

func (m model) handleReplayKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "escape", "q":
		m.replayBoard = nil
		m.replayAuto = false
		if m.store != nil {
			m.enterSessionList()
		} else if m.board != nil {
			m.mode = ModePlaying
		} else {
			m.mode = ModeStartup
		}
	case " ":
		m.replayAuto = !m.replayAuto
	case "n", "right", "l":
		m.stepReplay()
	}
	return m, nil
}

// startPuzzle installs a puzzle and wires the solve hook that records the
// finished session.
func (m *model) startPuzzle(p Puzzle) {
	m.board = NewBoard(p, m.rng)
	m.puzzle = p
	m.puzzleName = p.Name
	m.startedAt = time.Now()
	m.cursorX, m.cursorY = 0, 0
	m.hoverCol, m.hoverRow = -1, -1
	m.mode = ModePlaying
	m.clearMessages()

	attachSolveHook(m.board, m.store, p, m.startedAt)
	logger.WithFields(logrus.Fields{
		"puzzle": p.Name,
		"size":   p.Size,
	}).Info("session started")
}

// attachSolveHook captures only session-fixed data: bubbletea copies the
// model by value on every update, so the hook must not reach back into it.
func attachSolveHook(b *Board, store *ReplayStore, p Puzzle, startedAt time.Time) {
	solutionText := encodePuzzleText(p)
	b.SetSolveHook(func(moves []Move) {
		entry := logger.WithFields(logrus.Fields{
			"puzzle": p.Name,
			"moves":  len(moves),
		})
		if store == nil {
			entry.Info("solved (no replay store)")
			return
		}
		id, err := store.SaveSession(p.Name, p.Size, solutionText, startedAt, moves)
		if err != nil {
			entry.WithError(err).Error("failed to record session")
			return
		}
		entry.WithField("session", id).Info("solved, session recorded")
	})
}

func encodePuzzleText(p Puzzle) string {
	var sb strings.Builder
	if err := EncodePuzzle(&sb, p.Size, p.MaxHints, p.Solution); err != nil {
		return ""
	}
	return sb.String()
}

func (m *model) enterEditor(size int) {
	m.editorGrid = NewGrid(size)
	m.cursorX, m.cursorY = 0, 0
	m.mode = ModeEditor
}

func (m *model) paintEditorCell(x, y int, state TileState) {
	if m.editorGrid == nil || !m.editorGrid.InBounds(x, y) {
		return
	}
	m.editorGrid.SetState(x, y, state)
}

// resizeEditor rebuilds the editor grid, keeping the overlapping cells.
func (m *model) resizeEditor(size int) {
	size = clampInt(size, minEditorSize, maxEditorSize)
	if size == m.editorGrid.Size() {
		return
	}
	next := NewGrid(size)
	for y := 0; y < size && y < m.editorGrid.Size(); y++ {
		for x := 0; x < size && x < m.editorGrid.Size(); x++ {
			next.Set(x, y, m.editorGrid.At(x, y))
		}
	}
	m.editorGrid = next
	m.ensureCursorInBounds()
}

func (m *model) enterSessionList() {
	m.clearMessages()
	if m.store == nil {
		m.errorMessage = "Replay store unavailable"
		return
	}
	sessions, err := m.store.Sessions(sessionListLimit)
	if err != nil {
		logger.WithError(err).Error("failed to list sessions")
		m.errorMessage = "Could not read sessions"
		return
	}
	m.sessions = sessions
	m.selectedSession = 0
	m.mode = ModeSessionList
}

// startReplay rebuilds the recorded session's board from the stored
// solution and loads its move log for step-through playback.
func (m *model) startReplay() {
	if m.selectedSession < 0 || m.selectedSession >= len(m.sessions) {
		return
	}
	rec := m.sessions[m.selectedSession]

	p, err := DecodePuzzle(strings.NewReader(rec.Solution))
	if err != nil {
		logger.WithError(err).WithField("session", rec.ID).Error("stored solution is corrupt")
		m.errorMessage = "Stored session is corrupt"
		return
	}
	p.Name = rec.Puzzle

	moves, err := m.store.Moves(rec.ID)
	if err != nil {
		logger.WithError(err).WithField("session", rec.ID).Error("failed to load moves")
		m.errorMessage = "Could not load session moves"
		return
	}

	m.replayBoard = NewBoard(p, m.rng)
	m.replayMoves = moves
	m.replayPos = 0
	m.replayAuto = false
	m.replayTicks = 0
	m.replayPuzzle = rec.Puzzle
	m.mode = ModeReplay
}

func (m *model) stepReplay() {
	if m.replayBoard == nil || m.replayPos >= len(m.replayMoves) {
		m.replayAuto = false
		return
	}
	m.replayBoard.DoReplayMove(m.replayMoves[m.replayPos])
	m.replayPos++
}

func (m *model) stepReplayAuto() {
	if !m.replayAuto {
		return
	}
	m.replayTicks++
	if m.replayTicks%replayStepFrames == 0 {
		m.stepReplay()
	}
}

func (m *model) enterFileInput(op FileOperation) {
	m.fileOp = op
	m.mode = ModeFileInput
	m.clearMessages()
	switch op {
	case FileOpOpen, FileOpVerify, FileOpImportMoves:
		m.scanFiles()
	case FileOpSaveSnapshot:
		m.filename = m.puzzleName + "-save"
	case FileOpSavePuzzle:
		m.filename = "puzzle"
	case FileOpExportPNG:
		m.filename = m.puzzleName
	case FileOpExportMoves:
		m.filename = m.puzzleName + "-moves"
	}
}

// fileExt is the extension the current file operation reads or writes.
func (m *model) fileExt() string {
	switch m.fileOp {
	case FileOpExportPNG:
		return ".png"
	case FileOpExportMoves, FileOpImportMoves:
		return ".jsonl"
	default:
		return ".non"
	}
}

// fileOpIsPicker reports whether the operation selects an existing file, as
// opposed to naming a new one.
func (m *model) fileOpIsPicker() bool {
	switch m.fileOp {
	case FileOpOpen, FileOpVerify, FileOpImportMoves:
		return true
	}
	return false
}

func (m *model) returnFromFileInput() {
	if m.fileOp == FileOpSavePuzzle || m.fileOp == FileOpVerify {
		m.mode = ModeEditor
		return
	}
	if m.board != nil {
		m.mode = ModePlaying
	} else {
		m.mode = ModeStartup
	}
}

func (m *model) scanFiles() {
	m.fileList = nil
	m.selectedFileIndex = 0
	m.filename = ""

	dir := m.config.SaveDirectory
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(strings.ToLower(entry.Name()), m.fileExt()) {
			m.fileList = append(m.fileList, entry.Name())
		}
	}
	sort.Strings(m.fileList)
	if len(m.fileList) > 0 {
		m.filename = strings.TrimSuffix(m.fileList[0], m.fileExt())
	}
}

func (m model) executeFileOp() (tea.Model, tea.Cmd) {
	if m.filename == "" {
		m.errorMessage = "Filename required"
		return m, nil
	}

	switch m.fileOp {
	case FileOpOpen:
		path := m.config.GetSavePath(m.filename + ".non")
		p, err := LoadPuzzleFile(path)
		if err != nil {
			logger.WithError(err).Warn("puzzle load failed")
			m.errorMessage = fmt.Sprintf("Load failed: %v", err)
			return m, nil
		}
		m.startPuzzle(p)
		return m, nil
	case FileOpVerify:
		return m.verifyEditorGrid()
	case FileOpImportMoves:
		return m.importMoveLog()
	}

	path := m.savePathForOp()
	if m.config.Confirmations {
		if _, err := os.Stat(path); err == nil {
			m.confirmAction = ConfirmOverwriteFile
			m.mode = ModeConfirm
			return m, nil
		}
	}
	return m.writeFileOp(false)
}

func (m *model) savePathForOp() string {
	return m.config.GetSavePath(m.filename + m.fileExt())
}

// verifyEditorGrid checks the painted grid against a reference puzzle file
// under the exact policy, so a re-drawn puzzle can be compared cell for
// cell before it replaces the original.
func (m model) verifyEditorGrid() (tea.Model, tea.Cmd) {
	path := m.config.GetSavePath(m.filename + ".non")
	p, err := LoadPuzzleFile(path)
	if err != nil {
		logger.WithError(err).Warn("reference puzzle load failed")
		m.errorMessage = fmt.Sprintf("Load failed: %v", err)
		return m, nil
	}

	ref := NewBoard(p, m.rng)
	ref.SetCheckPolicy(ExactCheck{})
	m.mode = ModeEditor
	if !ref.VerifyGrid(m.editorGrid) {
		m.errorMessage = fmt.Sprintf("Grid does not match %s", p.Name)
		return m, nil
	}
	m.successMessage = fmt.Sprintf("Grid matches %s exactly", p.Name)
	return m, nil
}

// importMoveLog reads an exported .jsonl move log and opens it in replay
// mode against the puzzle currently being played.
func (m model) importMoveLog() (tea.Model, tea.Cmd) {
	path := m.config.GetSavePath(m.filename + ".jsonl")
	f, err := os.Open(path)
	if err != nil {
		m.errorMessage = fmt.Sprintf("Import failed: %v", err)
		return m, nil
	}
	defer f.Close()

	moves, err := ReadMovesJSONL(f)
	if err != nil {
		logger.WithError(err).Warn("move log import failed")
		m.errorMessage = fmt.Sprintf("Import failed: %v", err)
		return m, nil
	}

	m.clearMessages()
	m.replayBoard = NewBoard(m.puzzle, m.rng)
	m.replayMoves = moves
	m.replayPos = 0
	m.replayAuto = false
	m.replayTicks = 0
	m.replayPuzzle = m.puzzle.Name
	m.mode = ModeReplay
	return m, nil
}

func (m model) writeFileOp(overwrite bool) (tea.Model, tea.Cmd) {
	path := m.savePathForOp()
	var err error

	switch m.fileOp {
	case FileOpSaveSnapshot:
		err = writeBoardFile(path, m.board)
	case FileOpSavePuzzle:
		err = writePuzzleFile(path, m.editorGrid)
	case FileOpExportPNG:
		err = m.board.ExportPNG(path)
	case FileOpExportMoves:
		err = writeMovesFile(path, m.board.Moves())
	}

	if err != nil {
		logger.WithError(err).Warn("save failed")
		m.errorMessage = fmt.Sprintf("Save failed: %v", err)
		m.mode = ModeFileInput
		return m, nil
	}

	m.successMessage = "Saved " + path
	m.returnFromFileInput()
	return m, nil
}

func writeBoardFile(path string, b *Board) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return EncodeBoard(f, b)
}

func writePuzzleFile(path string, solution *Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return EncodePuzzle(f, solution.Size(), -1, solution)
}

func writeMovesFile(path string, moves []Move) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteMovesJSONL(f, moves)
}

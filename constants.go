package main

type Mode int

const (
	ModeStartup Mode = iota
	ModePlaying
	ModeEditor
	ModeFileInput
	ModeConfirm
	ModeSessionList
	ModeReplay
)

type FileOperation int

const (
	FileOpOpen FileOperation = iota
	FileOpSaveSnapshot
	FileOpSavePuzzle
	FileOpExportPNG
	FileOpExportMoves
	FileOpImportMoves
	FileOpVerify
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmNewPuzzle
	ConfirmClearBoard
	ConfirmOverwriteFile
)

const (
	defaultBoardSize = 10
	defaultDensity   = 0.55
	framesPerSecond  = 30
	maxEditorSize    = 25
	minEditorSize    = 3
	sessionListLimit = 20
	replayStepFrames = 6 // update ticks between auto-played replay moves
)

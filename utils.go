package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
)

// yankBoard copies the board snapshot text to the system clipboard so a
// position can be pasted into a chat or an issue.
func (m *model) yankBoard() {
	if m.board == nil {
		return
	}
	if err := clipboard.WriteAll(m.board.SnapshotText()); err != nil {
		m.errorMessage = fmt.Sprintf("Clipboard failed: %v", err)
		return
	}
	m.successMessage = "Board copied to clipboard"
}

// clueText renders one clue sequence; an empty sequence reads as 0.
func clueText(runs []int) string {
	if len(runs) == 0 {
		return "0"
	}
	parts := make([]string, len(runs))
	for i, r := range runs {
		parts[i] = strconv.Itoa(r)
	}
	return strings.Join(parts, " ")
}

func (m *model) clearMessages() {
	m.errorMessage = ""
	m.successMessage = ""
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

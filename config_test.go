package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfig(t *testing.T) {
	text := `
# nonoterm settings
save_directory = ~/puzzles
hint_budget = 3
confirmations = false
replay_db = ~/games/replays.db
log_file = /var/log/nonoterm.log
`
	config := defaultConfig()
	parseConfig(strings.NewReader(text), config, "/home/player")

	if want := filepath.Join("/home/player", "puzzles"); config.SaveDirectory != want {
		t.Errorf("SaveDirectory = %q, want %q", config.SaveDirectory, want)
	}
	if config.HintBudget != 3 {
		t.Errorf("HintBudget = %d, want 3", config.HintBudget)
	}
	if config.Confirmations {
		t.Error("Confirmations should be false")
	}
	if want := filepath.Join("/home/player", "games", "replays.db"); config.ReplayDB != want {
		t.Errorf("ReplayDB = %q, want %q", config.ReplayDB, want)
	}
	if config.LogFile != "/var/log/nonoterm.log" {
		t.Errorf("LogFile = %q", config.LogFile)
	}
}

func TestParseConfigIgnoresMalformedLines(t *testing.T) {
	text := `
this line has no equals sign
hint_budget = not-a-number
unknownkey = whatever
hints = 5
`
	config := defaultConfig()
	parseConfig(strings.NewReader(text), config, "/home/player")

	if config.HintBudget != 5 {
		t.Errorf("HintBudget = %d, want 5", config.HintBudget)
	}
	if !config.Confirmations {
		t.Error("defaults should survive malformed input")
	}
}

func TestParseConfigKeyAliases(t *testing.T) {
	config := defaultConfig()
	parseConfig(strings.NewReader("savedir = /tmp/boards\nconfirm = true\n"), config, "/home/player")
	if config.SaveDirectory != "/tmp/boards" {
		t.Errorf("SaveDirectory = %q", config.SaveDirectory)
	}
	if !config.Confirmations {
		t.Error("confirm alias not honored")
	}
}

func TestGetSavePath(t *testing.T) {
	config := defaultConfig()
	if got := config.GetSavePath("board.non"); got != "board.non" {
		t.Errorf("bare filename with no save directory: got %q", got)
	}

	config.SaveDirectory = t.TempDir()
	want := filepath.Join(config.SaveDirectory, "board.non")
	if got := config.GetSavePath("board.non"); got != want {
		t.Errorf("GetSavePath = %q, want %q", got, want)
	}
}

package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	SaveDirectory string
	HintBudget    int // default for generated puzzles, -1 = unlimited
	Confirmations bool
	ReplayDB      string
	LogFile       string
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory: "",
		HintBudget:    -1,
		Confirmations: true,
		ReplayDB:      "",
		LogFile:       "",
	}
}

func loadConfig() *Config {
	config := defaultConfig()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config
	}
	config.ReplayDB = filepath.Join(homeDir, ".nonoterm.db")
	config.LogFile = filepath.Join(homeDir, ".nonoterm.log")

	configPath := filepath.Join(homeDir, ".nonorc")
	file, err := os.Open(configPath)
	if err != nil {
		return config
	}
	defer file.Close()

	parseConfig(file, config, homeDir)
	return config
}

func parseConfig(r io.Reader, config *Config, homeDir string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			config.SaveDirectory = expandPath(value, homeDir)
		case "hintbudget", "hint_budget", "hints":
			if n, err := strconv.Atoi(value); err == nil {
				config.HintBudget = n
			}
		case "confirmations", "confirm":
			config.Confirmations = strings.ToLower(value) == "true"
		case "replaydb", "replay_db":
			config.ReplayDB = expandPath(value, homeDir)
		case "logfile", "log_file":
			config.LogFile = expandPath(value, homeDir)
		}
	}
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}

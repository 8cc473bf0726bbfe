package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode selects whether fmt drives the interactive progress view.
type uiMode uint8

const (
	uiModeAuto uiMode = iota
	uiModeOn
	uiModeOff
)

// readUIMode parses the --ui flag value. Empty means auto.
func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	}
	return uiModeOff, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
}

// shouldUseTUI resolves auto against whether stdout is a terminal.
func shouldUseTUI(mode uiMode) bool {
	if mode == uiModeAuto {
		return isTerminal(os.Stdout)
	}
	return mode == uiModeOn
}

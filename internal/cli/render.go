package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/x-color/kelvin/internal/task"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
)

// Thermal palette, cold to hot to gone.
var stateColors = map[task.State]string{
	task.StateFrozen:  "\x1b[38;2;187;232;242m",
	task.StateThawing: "\x1b[38;2;148;215;242m",
	task.StateActive:  "\x1b[38;2;85;179;217m",
	task.StateDone:    "\x1b[38;2;63;95;115m",
}

func colorEnabled() bool {
	return os.Getenv("NO_COLOR") == ""
}

func bold(s string) string {
	if !colorEnabled() {
		return s
	}
	return ansiBold + s + ansiReset
}

func coloredState(s task.State) string {
	if !colorEnabled() {
		return s.String()
	}
	return stateColors[s] + s.String() + ansiReset
}

// paddedState pads the colored state to width, adding the spaces outside
// the ANSI codes so columns stay aligned.
func paddedState(s task.State, width int) string {
	visible := len(s.String())
	padding := 0
	if width > visible {
		padding = width - visible
	}
	return coloredState(s) + strings.Repeat(" ", padding)
}

// dateStr renders an optional date, "-" when absent.
func dateStr(d *task.Date) string {
	if d == nil {
		return "-"
	}
	return d.String()
}

func printTaskLine(verb string, t *task.Task) {
	fmt.Printf("%s task %d [%s]: %s\n", verb, t.ID, t.State, t.Title)
}

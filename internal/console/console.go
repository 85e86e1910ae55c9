// Package console implements the capture sink for the print/console output
// channel. It is deliberately separate from page rendering: a display call
// mutates the document, a print call only ever lands here.
package console

import (
	"strings"
	"sync"
)

// Level tags a captured line with the console method that produced it.
type Level string

const (
	LevelLog   Level = "log"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Line is one captured console line.
type Line struct {
	Level Level
	Text  string
}

// Capture accumulates console lines for one page run. It is safe for
// concurrent use so test harnesses can read while a dispatch runs.
type Capture struct {
	mu    sync.Mutex
	lines []Line
}

// New returns an empty capture.
func New() *Capture {
	return &Capture{}
}

// Append records text at the given level. Text containing newlines is split
// so each physical line is captured as its own entry, matching how a real
// console would show it.
func (c *Capture) Append(level Level, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, line := range strings.Split(text, "\n") {
		c.lines = append(c.lines, Line{Level: level, Text: line})
	}
}

// Lines returns the text of every captured line, in capture order.
func (c *Capture) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.lines))
	for i, l := range c.lines {
		out[i] = l.Text
	}
	return out
}

// Errors returns the text of captured error-level lines, in capture order.
func (c *Capture) Errors() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []string
	for _, l := range c.lines {
		if l.Level == LevelError {
			out = append(out, l.Text)
		}
	}
	return out
}

// All returns a copy of every captured line with its level.
func (c *Capture) All() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

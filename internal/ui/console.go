package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ANSI Color Codes
const (
	Reset   = "\033[0m"
	Cyan    = "\033[36m"
	Magenta = "\033[35m"
	Yellow  = "\033[33m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Bold    = "\033[1m"
)

// Console prints the one-line status reports of a generator run.
type Console struct {
	out   io.Writer
	color bool
}

func New(out io.Writer, color bool) *Console {
	return &Console{out: out, color: color}
}

// ForWriter returns a console on w, coloured only when w is a terminal.
func ForWriter(w io.Writer, noColor bool) *Console {
	color := false
	if f, ok := w.(*os.File); ok && !noColor {
		color = IsTerminal(f.Fd())
	}
	return New(w, color)
}

func (c *Console) paint(code, s string) string {
	if !c.color {
		return s
	}
	return code + s + Reset
}

func (c *Console) Info(msg string) {
	fmt.Fprintf(c.out, "%s %s\n", c.paint(Cyan, "[INFO]"), msg)
}

func (c *Console) Success(msg string) {
	fmt.Fprintf(c.out, "%s %s\n", c.paint(Green, "[SUCCESS]"), msg)
}

func (c *Console) Warning(msg string) {
	fmt.Fprintf(c.out, "%s %s\n", c.paint(Yellow, "[WARNING]"), msg)
}

func (c *Console) Error(msg string) {
	fmt.Fprintf(c.out, "%s %s\n", c.paint(Red, "[ERROR]"), msg)
}

func (c *Console) Header(title string) {
	fmt.Fprintf(c.out, "\n%s\n", c.paint(Magenta, "=== "+title+" ==="))
}

// Block prints text verbatim, e.g. markup meant to be copied.
func (c *Console) Block(text string) {
	text = strings.TrimRight(text, "\n")
	fmt.Fprintln(c.out, c.paint(Bold, text))
}

// Package libdiff computes line diffs of rendered documents.
package libdiff

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) Prefix() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	}
	return " "
}

// Line is one line of a diff, without its newline.
type Line struct {
	Op   Op
	Text string
}

// Lines returns the line diff turning from into to.
func Lines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	var res []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, text := range splitLines(d.Text) {
			res = append(res, Line{Op: op, Text: text})
		}
	}
	return res
}

// splitLines splits s into lines. A final newline does not start a line
// of its own, but blank lines in between are kept.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Changed reports whether any line was inserted or deleted.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Op != Equal {
			return true
		}
	}
	return false
}

// Format renders lines prefixed with "+", "-" or " ", one per line.
// Inserted and deleted lines are colored when colors is set.
func Format(lines []Line, colors bool) string {
	var (
		ins = painter(color.FgGreen, colors)
		del = painter(color.FgRed, colors)
		b   strings.Builder
	)
	for _, l := range lines {
		s := l.Op.Prefix() + l.Text
		switch l.Op {
		case Insert:
			s = ins(s)
		case Delete:
			s = del(s)
		}
		b.WriteString(s)
		b.WriteByte('\n')
	}
	return b.String()
}

func painter(attr color.Attribute, enabled bool) func(string) string {
	if !enabled {
		return func(s string) string { return s }
	}
	c := color.New(attr)
	c.EnableColor()
	return func(s string) string { return c.Sprint(s) }
}

// Package input reads puzzle input files and splits them into the shapes
// every day starts from: lines, non-empty lines, and blank-line separated
// sections.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEmptyPath is returned by Open when no path is given.
var ErrEmptyPath = errors.New("input: empty path")

// maxLine bounds a single line; puzzle inputs stay far below it.
const maxLine = 1 << 20

// Open opens the puzzle input at path. The caller closes it.
func Open(path string) (io.ReadCloser, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	return f, nil
}

// Lines reads r to the end and returns its lines without terminators.
// CRLF endings are accepted and trailing blank lines are dropped.
func Lines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: read lines: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// Line is a non-empty input line together with its 1-based line number.
type Line struct {
	No   int
	Text string
}

// NonEmptyLines is Lines with blank lines removed; line numbers are kept
// so parse errors can point at the source.
func NonEmptyLines(r io.Reader) ([]Line, error) {
	lines, err := Lines(r)
	if err != nil {
		return nil, err
	}
	out := make([]Line, 0, len(lines))
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, Line{No: i + 1, Text: l})
	}
	return out, nil
}

// Sections splits r into blocks separated by one or more blank lines.
// Leading blank lines are ignored.
func Sections(r io.Reader) ([][]Line, error) {
	lines, err := Lines(r)
	if err != nil {
		return nil, err
	}
	var (
		out [][]Line
		cur []Line
	)
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, Line{No: i + 1, Text: l})
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out, nil
}

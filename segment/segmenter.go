// Package segment groups a line-oriented TOML stream into the blank-line
// delimited fragments the record package parses.
//
// The segmenter is a tolerant block grouper, not a grammar-aware parser: it
// assumes one key/value line or one table block per paragraph and performs
// no bracket balancing or duplicate-key detection.
package segment

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// tableHeaderPattern recognizes the line that opens a multi-line table
// block: a bracketed name with no internal whitespace or nested brackets.
// The match is prefix-anchored only; it is a narrow heuristic, not a
// grammar check, and anything after the closing bracket is left for the
// TOML parser to judge.
var tableHeaderPattern = regexp.MustCompile(`^\[[^\s\[\]]+\]`)

// Segmenter reads lines from an input stream and yields one fragment per
// logical record. A Segmenter makes a single pass and is not reusable.
type Segmenter struct {
	scanner *bufio.Scanner
	block   strings.Builder
	done    bool
}

// New returns a Segmenter over r.
func New(r io.Reader) *Segmenter {
	return &Segmenter{scanner: bufio.NewScanner(r)}
}

// Next returns the next complete fragment.
//
// A non-blank line outside a table block is a fragment by itself. A
// table-header line starts a block that runs until the next blank line or
// the end of input; further header-shaped lines inside a block are appended
// like any other line. Next returns io.EOF once the input is exhausted and
// any trailing block has been yielded.
func (s *Segmenter) Next() (string, error) {
	if s.done {
		return "", io.EOF
	}

	for s.scanner.Scan() {
		line := s.scanner.Text()

		if s.block.Len() > 0 {
			if line == "" {
				return s.flush(), nil
			}

			s.block.WriteByte('\n')
			s.block.WriteString(line)

			continue
		}

		if line == "" {
			continue
		}

		if tableHeaderPattern.MatchString(line) {
			s.block.WriteString(line)
			continue
		}

		return line, nil
	}

	s.done = true

	if err := s.scanner.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	// Implicit close: a table block needs no trailing blank line at EOF.
	if s.block.Len() > 0 {
		return s.flush(), nil
	}

	return "", io.EOF
}

func (s *Segmenter) flush() string {
	fragment := s.block.String()
	s.block.Reset()

	return fragment
}

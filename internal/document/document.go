// document holds the read-only, line addressed view of a buffer that the
// completion pipeline scans.
package document

import (
	"strings"
	"unicode/utf8"
)

// Position is a cursor location. Column is a byte offset into the line.
type Position struct {
	Line   int
	Column int
}

// Document is an immutable snapshot of a buffer split into lines.
type Document struct {
	lines []string
}

// New splits text on "\n". A trailing "\r" stays part of its line.
func New(text string) Document {
	return Document{lines: strings.Split(text, "\n")}
}

// FromLines builds a Document from already split lines.
func FromLines(lines []string) Document {
	cp := make([]string, len(lines))
	copy(cp, lines)
	return Document{lines: cp}
}

func (d Document) LineCount() int {
	return len(d.lines)
}

// Line returns the text of line i, or "" when i is out of range.
func (d Document) Line(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}
	return d.lines[i]
}

func (d Document) Text() string {
	return strings.Join(d.lines, "\n")
}

// Clamp moves pos inside the document.
func (d Document) Clamp(pos Position) Position {
	if len(d.lines) == 0 {
		return Position{}
	}
	if pos.Line < 0 {
		return Position{}
	}
	if pos.Line >= len(d.lines) {
		last := len(d.lines) - 1
		return Position{Line: last, Column: len(d.lines[last])}
	}
	if pos.Column < 0 {
		pos.Column = 0
	}
	if pos.Column > len(d.lines[pos.Line]) {
		pos.Column = len(d.lines[pos.Line])
	}
	return pos
}

// Offset returns the byte offset of pos within Text().
func (d Document) Offset(pos Position) int {
	pos = d.Clamp(pos)
	offset := 0
	for i := 0; i < pos.Line; i++ {
		offset += len(d.lines[i]) + 1
	}
	return offset + pos.Column
}

// FromUTF16 converts an LSP position, whose character is counted in UTF-16
// code units, into a byte Position.
func (d Document) FromUTF16(line, character uint32) Position {
	if len(d.lines) == 0 {
		return Position{}
	}
	if int(line) >= len(d.lines) {
		last := len(d.lines) - 1
		return Position{Line: last, Column: len(d.lines[last])}
	}
	return Position{Line: int(line), Column: utf16ToByteColumn(d.lines[line], character)}
}

func utf16ToByteColumn(line string, character uint32) int {
	var units uint32
	var bytes int
	for _, r := range line {
		// Each codepoint uses 1 or 2 UTF-16 code units
		n := uint32(1)
		if r > 0xFFFF {
			n = 2
		}
		if units+n > character {
			break
		}
		units += n
		bytes += utf8.RuneLen(r)
	}
	return bytes
}

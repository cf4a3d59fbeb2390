// scanner recovers the text of the tag that is still open at the cursor.
package scanner

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Smoke3785/nextjs-public-path-intellisense/internal/document"
)

// Mode selects how the scanner decides that a '<' opens the current tag.
type Mode int

const (
	// ModeNaive takes the last '<' before the cursor, even if a '>' closed
	// it again.
	ModeNaive Mode = iota

	// ModeBalanced takes the last '<' only when no '>' follows it before the
	// cursor.
	ModeBalanced
)

func (m Mode) String() string {
	switch m {
	case ModeNaive:
		return "naive"
	case ModeBalanced:
		return "balanced"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a configuration value onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "naive":
		return ModeNaive, nil
	case "balanced":
		return ModeBalanced, nil
	default:
		return ModeNaive, fmt.Errorf("unknown tag scan mode %q", s)
	}
}

// TagPrefix returns everything from the nearest preceding '<' up to the
// cursor, walking upwards across lines and keeping their newlines. It
// reports false when line 0 is exhausted without finding a tag opener, or,
// in ModeBalanced, when that opener is already closed.
func TagPrefix(doc document.Document, pos document.Position, mode Mode) (string, bool) {
	if doc.LineCount() == 0 {
		return "", false
	}
	pos = doc.Clamp(pos)

	// Lines collected bottom-up; joined top-down once the opener is found.
	var parts []string
	for line := pos.Line; line >= 0; line-- {
		sub := doc.Line(line)
		if line == pos.Line {
			sub = sub[:pos.Column]
		}

		lastOpen := strings.LastIndexByte(sub, '<')
		if lastOpen == -1 {
			parts = append(parts, sub)
			continue
		}

		parts = append(parts, sub[lastOpen:])
		slices.Reverse(parts)
		prefix := strings.Join(parts, "\n")
		if mode == ModeBalanced && strings.IndexByte(prefix, '>') != -1 {
			return "", false
		}
		return prefix, true
	}

	return "", false
}

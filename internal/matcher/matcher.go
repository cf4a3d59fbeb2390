// matcher recognises an in-progress attribute value at the end of a scanned
// tag prefix.
package matcher

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Strategy selects which tags an attribute value is completed in.
type Strategy int

const (
	// StrategyLoose accepts any tag name, so wrapper components such as
	// <Avatar src="..."> are completed too.
	StrategyLoose Strategy = iota

	// StrategyStrict accepts only the configured media tags.
	StrategyStrict

	// StrategySyntax parses the buffer with tree-sitter instead of matching
	// the scanned prefix. It is handled by the syntax package.
	StrategySyntax
)

var (
	// ErrNoAttributes is returned when no attribute names are configured.
	ErrNoAttributes = errors.New("no attribute names configured")

	// ErrNoTags is returned for the strict strategy without tag names.
	ErrNoTags = errors.New("no tag names configured for strict matching")

	// ErrUnknownStrategy is returned for strategy names ParseStrategy does not know.
	ErrUnknownStrategy = errors.New("unknown matching strategy")
)

// DefaultAttributes are the attribute names completed out of the box.
var DefaultAttributes = []string{"src"}

// DefaultStrictTags are the media-bearing tags accepted by StrategyStrict.
var DefaultStrictTags = []string{"Image", "img", "video", "source"}

func (s Strategy) String() string {
	switch s {
	case StrategyLoose:
		return "loose"
	case StrategyStrict:
		return "strict"
	case StrategySyntax:
		return "syntax"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a configuration value onto a Strategy. The empty string
// selects StrategyLoose.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "loose":
		return StrategyLoose, nil
	case "strict":
		return StrategyStrict, nil
	case "syntax":
		return StrategySyntax, nil
	default:
		return StrategyLoose, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Matcher holds a compiled attribute pattern.
type Matcher struct {
	strategy Strategy
	pattern  *regexp.Regexp
}

// New compiles the pattern for strategy. StrategySyntax has no pattern and is
// rejected; use the syntax package for it.
func New(strategy Strategy, attributes, strictTags []string) (*Matcher, error) {
	if len(attributes) == 0 {
		return nil, ErrNoAttributes
	}
	attrs := alternation(attributes)

	var expr string
	switch strategy {
	case StrategyLoose:
		expr = `<\s*[A-Za-z][A-Za-z0-9]*\b[^>]*\b` + attrs + `\s*=\s*['"]([^'"]*)$`
	case StrategyStrict:
		if len(strictTags) == 0 {
			return nil, ErrNoTags
		}
		expr = `<\s*` + alternation(strictTags) + `\b[^>]*\b` + attrs + `\s*=\s*["']([^"']*)$`
	default:
		return nil, fmt.Errorf("%w: %s has no prefix pattern", ErrUnknownStrategy, strategy)
	}

	pattern, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s pattern: %w", strategy, err)
	}
	return &Matcher{strategy: strategy, pattern: pattern}, nil
}

func (m *Matcher) Strategy() Strategy {
	return m.strategy
}

// Match returns the partial attribute value when prefix ends inside a quoted
// value of one of the configured attributes.
func (m *Matcher) Match(prefix string) (string, bool) {
	match := m.pattern.FindStringSubmatch(prefix)
	if match == nil {
		return "", false
	}
	return match[1], true
}

func alternation(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = regexp.QuoteMeta(n)
	}
	return "(?:" + strings.Join(quoted, "|") + ")"
}

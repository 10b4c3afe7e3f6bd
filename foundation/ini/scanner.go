// File: scanner.go
// Title: INI Configuration Scanner
// Description: Implements a character-level finite-state scanner for INI
//              formatted configuration files. Produces a stream of section
//              and key/value events through a Consumer interface and
//              reports errors with exact line/column positions.
// Author: msto63
// Version: v0.1.0
// Created: 2025-07-19
// Modified: 2025-07-19

package ini

import (
	"fmt"
	"strings"
)

// Consumer receives scan events in document order
type Consumer interface {
	// BeginSection is called after reading "[name]"
	BeginSection(name string)

	// EndSection is called before the next section begins and at end of input
	EndSection()

	// KeyValue is called for every "key = value" line inside a section
	KeyValue(key, value string)
}

// Position points at a character in the input (1-based)
type Position struct {
	Line   int
	Column int
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// ScanError describes a syntax error with its position
type ScanError struct {
	Pos Position
	Msg string
}

// Error implements the error interface
func (e *ScanError) Error() string {
	return fmt.Sprintf("ini: %s at %s", e.Msg, e.Pos)
}

// scanState enumerates the scanner's states
type scanState int

const (
	stateInit scanState = iota
	stateLeadingComment
	stateStartSection
	stateSectionName
	stateCloseSection
	stateDispatch
	stateComment
	stateKey
	stateAfterKey
	stateValueStart
	stateBareValue
	stateQuotedValue
	stateQuoteEscape
	stateAfterValue
)

// terminal reports whether the input may end in this state
func (s scanState) terminal() bool {
	switch s {
	case stateInit, stateLeadingComment, stateDispatch, stateComment,
		stateBareValue, stateAfterValue:
		return true
	default:
		return false
	}
}

// Scanner scans INI input character by character
type Scanner struct {
	input    string
	consumer Consumer

	state scanState
	pos   int
	line  int
	col   int

	buf       strings.Builder // current section name, key, or value
	key       string
	inSection bool
}

// NewScanner creates a scanner for the given input
func NewScanner(input string, consumer Consumer) *Scanner {
	return &Scanner{
		input:    input,
		consumer: consumer,
		state:    stateInit,
		line:     1,
		col:      1,
	}
}

// Scan runs the scanner over the whole input
func (s *Scanner) Scan() error {
	for _, ch := range s.input {
		if err := s.step(ch); err != nil {
			return err
		}
		if ch == '\n' {
			s.line++
			s.col = 1
		} else {
			s.col++
		}
	}
	return s.finish()
}

func (s *Scanner) errorf(format string, args ...interface{}) error {
	return &ScanError{
		Pos: Position{Line: s.line, Column: s.col},
		Msg: fmt.Sprintf(format, args...),
	}
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r'
}

func isAlpha(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isNameChar(ch rune) bool {
	return isAlpha(ch) || (ch >= '0' && ch <= '9') || ch == '-' || ch == '_' || ch == '.'
}

// beginSection closes the previous section and opens a new one
func (s *Scanner) beginSection() {
	if s.inSection {
		s.consumer.EndSection()
	}
	s.inSection = true
	s.consumer.BeginSection(s.buf.String())
	s.buf.Reset()
}

// emitValue emits the buffered key/value pair, trimming a bare value
func (s *Scanner) emitValue(trim bool) {
	value := s.buf.String()
	if trim {
		value = strings.TrimRight(value, " \t\r")
	}
	s.consumer.KeyValue(s.key, value)
	s.buf.Reset()
	s.key = ""
}

// step feeds one character into the state machine
func (s *Scanner) step(ch rune) error {
	switch s.state {
	case stateInit:
		switch {
		case isSpace(ch) || ch == '\n':
			// skip
		case ch == ';' || ch == '#':
			s.state = stateLeadingComment
		case ch == '[':
			s.state = stateStartSection
		default:
			return s.errorf("expected section header, got %q", ch)
		}

	case stateLeadingComment:
		if ch == '\n' {
			s.state = stateInit
		}

	case stateStartSection:
		switch {
		case isSpace(ch):
			// skip
		case isAlpha(ch):
			s.buf.WriteRune(ch)
			s.state = stateSectionName
		default:
			return s.errorf("section name must start with a letter, got %q", ch)
		}

	case stateSectionName:
		switch {
		case isNameChar(ch):
			s.buf.WriteRune(ch)
		case isSpace(ch):
			s.state = stateCloseSection
		case ch == ']':
			s.beginSection()
			s.state = stateDispatch
		default:
			return s.errorf("invalid character %q in section name", ch)
		}

	case stateCloseSection:
		switch {
		case isSpace(ch):
			// skip
		case ch == ']':
			s.beginSection()
			s.state = stateDispatch
		default:
			return s.errorf("expected ']', got %q", ch)
		}

	case stateDispatch:
		switch {
		case isSpace(ch) || ch == '\n':
			// skip
		case ch == '[':
			s.state = stateStartSection
		case ch == ';' || ch == '#':
			s.state = stateComment
		case isAlpha(ch):
			s.buf.WriteRune(ch)
			s.state = stateKey
		default:
			return s.errorf("expected key or section, got %q", ch)
		}

	case stateComment:
		if ch == '\n' {
			s.state = stateDispatch
		}

	case stateKey:
		switch {
		case isNameChar(ch):
			s.buf.WriteRune(ch)
		case isSpace(ch):
			s.key = s.buf.String()
			s.buf.Reset()
			s.state = stateAfterKey
		case ch == '=':
			s.key = s.buf.String()
			s.buf.Reset()
			s.state = stateValueStart
		default:
			return s.errorf("invalid character %q in key", ch)
		}

	case stateAfterKey:
		switch {
		case isSpace(ch):
			// skip
		case ch == '=':
			s.state = stateValueStart
		default:
			return s.errorf("expected '=' after key %q, got %q", s.key, ch)
		}

	case stateValueStart:
		switch {
		case isSpace(ch):
			// skip
		case ch == '"':
			s.state = stateQuotedValue
		case ch == '\n':
			// empty value
			s.emitValue(false)
			s.state = stateDispatch
		default:
			s.buf.WriteRune(ch)
			s.state = stateBareValue
		}

	case stateBareValue:
		switch {
		case ch == '\n':
			s.emitValue(true)
			s.state = stateDispatch
		case ch == ';' || ch == '#':
			s.emitValue(true)
			s.state = stateComment
		default:
			s.buf.WriteRune(ch)
		}

	case stateQuotedValue:
		switch ch {
		case '"':
			s.emitValue(false)
			s.state = stateAfterValue
		case '\\':
			s.state = stateQuoteEscape
		case '\n':
			return s.errorf("unterminated string")
		default:
			s.buf.WriteRune(ch)
		}

	case stateQuoteEscape:
		switch ch {
		case 'n':
			s.buf.WriteRune('\n')
		case 't':
			s.buf.WriteRune('\t')
		case '"', '\\':
			s.buf.WriteRune(ch)
		default:
			return s.errorf("invalid escape sequence \\%c", ch)
		}
		s.state = stateQuotedValue

	case stateAfterValue:
		switch {
		case isSpace(ch):
			// skip
		case ch == '\n':
			s.state = stateDispatch
		case ch == ';' || ch == '#':
			s.state = stateComment
		default:
			return s.errorf("unexpected %q after value", ch)
		}
	}
	return nil
}

// finish handles end of input
func (s *Scanner) finish() error {
	if !s.state.terminal() {
		return s.errorf("unexpected end of input")
	}
	if s.state == stateBareValue {
		s.emitValue(true)
	}
	if s.inSection {
		s.consumer.EndSection()
		s.inSection = false
	}
	return nil
}

// mapConsumer collects sections into nested maps
type mapConsumer struct {
	sections map[string]map[string]string
	current  map[string]string
}

func (c *mapConsumer) BeginSection(name string) {
	sec, ok := c.sections[name]
	if !ok {
		sec = make(map[string]string)
		c.sections[name] = sec
	}
	c.current = sec
}

func (c *mapConsumer) EndSection() {
	c.current = nil
}

func (c *mapConsumer) KeyValue(key, value string) {
	if c.current != nil {
		c.current[key] = value
	}
}

// Parse scans the input and returns section -> key -> value maps
func Parse(input string) (map[string]map[string]string, error) {
	consumer := &mapConsumer{sections: make(map[string]map[string]string)}
	if err := NewScanner(input, consumer).Scan(); err != nil {
		return nil, err
	}
	return consumer.sections, nil
}

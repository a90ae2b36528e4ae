package rcpsp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrParse  = errors.New("malformed instance file")
	ErrShape  = errors.New("schedule length mismatch")
	ErrCyclic = errors.New("cycle in successor graph")
)

// ParseError reports where an instance file stopped making sense.
type ParseError struct {
	Line int // 1-based line number; 0 when the file as a whole is truncated
	Msg  string
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", ErrParse.Error(), e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", ErrParse.Error(), e.Msg)
}

func (e *ParseError) Unwrap() error { return ErrParse }

func parsef(line int, format string, args ...any) error {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// ShapeError reports a schedule whose length does not match the instance.
type ShapeError struct{ Want, Got int }

func (e *ShapeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: want %d start times (got %d)", ErrShape.Error(), e.Want, e.Got)
}

func (e *ShapeError) Unwrap() error { return ErrShape }

// cycleError formats one cycle witness using the file's 1-based task IDs.
func cycleError(path []int) error {
	if len(path) == 0 {
		return ErrCyclic
	}
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.Itoa(v + 1)
	}
	return fmt.Errorf("%w: %s", ErrCyclic, strings.Join(parts, " -> "))
}

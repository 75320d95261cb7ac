package types

import (
	"errors"
	"fmt"
)

// Error kinds, test with errors.Is
var (
	ErrInvalidSpecification = errors.New("invalid airfoil specification")
	ErrParse                = errors.New("malformed coordinate file")
	ErrDegenerateGeometry   = errors.New("degenerate geometry")
)

// SpecificationError reports a NACA designation that can not be decoded.
type SpecificationError struct {
	Code   string
	Reason string
}

func NewSpecificationError(code, format string, args ...any) *SpecificationError {
	return &SpecificationError{
		Code:   code,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (e *SpecificationError) Error() string {
	return fmt.Sprintf("%s [%s]: %s", ErrInvalidSpecification, e.Code, e.Reason)
}

func (e *SpecificationError) Unwrap() error { return ErrInvalidSpecification }

// ParseError locates a problem in a coordinate file, Line is 1-based.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func NewParseError(line int, text, format string, args ...any) *ParseError {
	return &ParseError{
		Line:   line,
		Text:   text,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (e *ParseError) Error() string {
	if len(e.Text) == 0 {
		return fmt.Sprintf("%s, line %d: %s", ErrParse, e.Line, e.Reason)
	}
	return fmt.Sprintf("%s, line %d [%s]: %s", ErrParse, e.Line, e.Text, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// GeometryError reports a boundary or panel count the discretizer can not work with.
type GeometryError struct {
	Reason string
}

func NewGeometryError(format string, args ...any) *GeometryError {
	return &GeometryError{Reason: fmt.Sprintf(format, args...)}
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDegenerateGeometry, e.Reason)
}

func (e *GeometryError) Unwrap() error { return ErrDegenerateGeometry }

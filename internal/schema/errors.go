package schema

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a single field violation.
type ErrorKind int

const (
	MissingField ErrorKind = iota
	TooShort
	OutOfRange
	BadFormat
)

func (k ErrorKind) String() string {
	switch k {
	case MissingField:
		return "missing"
	case TooShort:
		return "too_short"
	case OutOfRange:
		return "out_of_range"
	case BadFormat:
		return "bad_format"
	}
	return "unknown"
}

// ValidationError identifies the offending field and the rule it broke.
type ValidationError struct {
	Field   string
	Kind    ErrorKind
	Rule    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Field, e.Message, e.Rule)
}

// ValidationErrors holds every violation found in one payload, in field order.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether field has at least one violation.
func (e ValidationErrors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

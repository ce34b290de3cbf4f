package model

import "fmt"

// MalformedRecordError aborts the run: the named input line could not be
// parsed, so downstream structure cannot be trusted.
type MalformedRecordError struct {
	Line    int    // 1-based line number
	Content string // the offending line as read
	Reason  string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record at line %d: %s: %q", e.Line, e.Reason, e.Content)
}

// InvalidModeError rejects anything that is not MTS or SCH, before any
// parsing happens.
type InvalidModeError struct {
	Value string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid mode %q (must be MTS or SCH)", e.Value)
}

package model

import (
	"errors"
	"fmt"
)

// ErrEmptySeries is returned by Assemble when no records are supplied.
var ErrEmptySeries = errors.New("empty bar series")

// InvalidIdentifierError reports a security code that is neither numeric
// nor in a recognized CODE.SUFFIX / MARKET.CODE shape.
type InvalidIdentifierError struct {
	Input string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("unrecognized security identifier %q", e.Input)
}

// MalformedRecordError reports a bar record that could not be parsed.
// The parser does not attempt partial recovery: a record with too few
// fields or a single bad numeric field rejects the whole record.
type MalformedRecordError struct {
	Line   string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed bar record %q: %s", e.Line, e.Reason)
}

package diag

import (
	"fmt"
)

// Code identifies a diagnostic kind.
type Code uint16

const (
	// UnknownCode is the zero Code.
	UnknownCode Code = 0

	// Lexical
	LexInfo                Code = 1000
	LexUnknownToken        Code = 1001
	LexUnterminatedString  Code = 1002
	LexUnterminatedComment Code = 1003
	LexIntOutOfRange       Code = 1004
	LexWrongKind           Code = 1005

	// Syntactic
	SynInfo          Code = 2000
	SynExpectedToken Code = 2001
	SynUnexpectedEOF Code = 2002

	// Input/output
	IOInfo      Code = 3000
	IOLoadFile  Code = 3001
	IOWriteFile Code = 3002
)

// ID returns the short printable form, e.g. "LEX1001" or "SYN2001".
func (c Code) ID() string {
	switch {
	case c >= 3000 && c < 4000:
		return fmt.Sprintf("IO%04d", uint16(c))
	case c >= 2000 && c < 3000:
		return fmt.Sprintf("SYN%04d", uint16(c))
	case c >= 1000 && c < 2000:
		return fmt.Sprintf("LEX%04d", uint16(c))
	default:
		return fmt.Sprintf("DIAG%04d", uint16(c))
	}
}

package parser

import (
	"errors"
	"fmt"
	"strings"
)

// Mismatch reports that the current token satisfied no alternative of the
// active production. Committed distinguishes the two fates the error can
// have: false means the production's first matcher failed before any token
// of the construct was consumed — the sanctioned end-of-repetition signal a
// driving loop absorbs; true means the production had already consumed
// tokens, so the failure aborts the whole parse.
type Mismatch struct {
	Construct string
	Expected  []string
	Found     string
	Line      uint32
	EOF       bool
	Committed bool
}

func (m *Mismatch) Error() string {
	if m.EOF {
		return fmt.Sprintf("in %s: unexpected end of input", m.Construct)
	}
	return fmt.Sprintf("in %s: expected %s, found %s",
		m.Construct, strings.Join(m.Expected, " | "), m.Found)
}

// asStop downgrades a Mismatch to the end-of-repetition signal. Called by
// a production on the error of its first matcher only.
func asStop(err error) error {
	var m *Mismatch
	if errors.As(err, &m) && !m.EOF {
		m.Committed = false
	}
	return err
}

// isStop reports whether err is an uncommitted Mismatch: the repetition is
// finished, no token of the next construct was consumed.
func isStop(err error) bool {
	var m *Mismatch
	return errors.As(err, &m) && !m.Committed
}

package lexer

import (
	"strings"

	"fortio.org/safecast"
)

// cleanLine is one comment-free, whitespace-collapsed logical line.
// Line is the 1-based physical line the logical line started on.
type cleanLine struct {
	Text string
	Line uint32
}

// cleaner walks the source line by line, removing comments and collapsing
// whitespace. While inside an unterminated block comment it accumulates raw
// lines into a buffer and resumes only once the terminator appears in the
// accumulated text, so a statement split across a block comment is rejoined
// into one logical line before lexeme splitting.
type cleaner struct {
	lines []string
	next  int

	inBlock    bool
	buffer     string
	blockStart uint32
}

func newCleaner(content []byte) *cleaner {
	return &cleaner{lines: strings.Split(string(content), "\n")}
}

// errUnterminated is returned when input ends inside a block comment.
type errUnterminated struct {
	Line uint32
}

func (e *errUnterminated) Error() string {
	return "unterminated block comment"
}

// nextClean yields the next non-empty cleaned line. ok is false at end of
// input; an unterminated block comment at end of input is an error.
func (c *cleaner) nextClean() (cleanLine, bool, error) {
	for c.next < len(c.lines) {
		line := c.lines[c.next]
		c.next++
		lineNo, err := safecast.Conv[uint32](c.next)
		if err != nil {
			lineNo = ^uint32(0)
		}

		if blockCommentStartPat.MatchString(line) && !c.inBlock {
			c.inBlock = true
			c.blockStart = lineNo
		}
		if c.inBlock {
			c.buffer += line + "\n"
			stripped := blockCommentPat.ReplaceAllString(c.buffer, "")
			if stripped == c.buffer {
				continue // terminator not reached yet
			}
			c.inBlock = false
			c.buffer = ""
			line = stripped
			lineNo = c.blockStart
		}

		line = lineCommentPat.ReplaceAllString(line, "")
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		return cleanLine{Text: line, Line: lineNo}, true, nil
	}

	if c.inBlock {
		return cleanLine{}, false, &errUnterminated{Line: c.blockStart}
	}
	return cleanLine{}, false, nil
}

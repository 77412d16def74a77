package lexer

import "regexp"

// One composite pattern splits a cleaned line into lexemes. Alternatives in
// priority order: string literal (interior spaces and symbols verbatim),
// integer, identifier/keyword word, single symbol character. Applied
// greedily left-to-right; anything it skips over is not part of the
// language (see splitLine's gap check).
var lexemePat = regexp.MustCompile(`"[^"\n]*"|[0-9]+|[A-Za-z_][A-Za-z0-9_]*|[{}()\[\].,;+\-*/&|<>=~]`)

var (
	lineCommentPat       = regexp.MustCompile(`//.*`)
	blockCommentPat      = regexp.MustCompile(`(?s)/\*.*?\*/`)
	blockCommentStartPat = regexp.MustCompile(`/\*`)
)

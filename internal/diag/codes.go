package diag

import (
	"fmt"
)

type Code uint16

// Codes are grouped by producing phase. The syntax layer only defines the
// ones error recovery can attach to the tree; message catalogs live with
// the drivers that render them.
const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexBadEscape                Code = 1005

	// Syntactic
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynExpectedToken    Code = 2002
	SynMissingSeparator Code = 2003
	SynUnclosedDelim    Code = 2004
	SynSkippedTokens    Code = 2005
)

func (c Code) String() string {
	return fmt.Sprintf("VLT%04d", uint16(c))
}

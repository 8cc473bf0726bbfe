package diag

import (
	"fmt"
)

// Code is a compact numeric diagnostic identifier. Numeric ranges are
// reserved per phase: LEX 1000s, SYN 2000s, FMT 3000s, IO 4000s.
type Code uint16

const (
	// UnknownCode is the fallback for unclassified diagnostics.
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexUnterminatedCode   Code = 1003
	LexBadNumber          Code = 1004

	// Syntax
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnclosedBracket    Code = 2002
	SynUnclosedBrace      Code = 2003
	SynExpectIdentifier   Code = 2004
	SynExpectValue        Code = 2005
	SynExpectString       Code = 2006
	SynUnexpectedTopLevel Code = 2007

	// Formatting
	FmtInfo           Code = 3000
	FmtSyntaxErrors   Code = 3001
	FmtMalformedField Code = 3002
	FmtMissingName    Code = 3003
	FmtMissingCode    Code = 3004
	FmtCodeFilter     Code = 3005

	// I/O
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	LexInfo:               "Lexical information",
	LexUnknownChar:        "Unknown character",
	LexUnterminatedString: "Unterminated string",
	LexUnterminatedCode:   "Unterminated embedded code block",
	LexBadNumber:          "Bad number",
	SynInfo:               "Syntax information",
	SynUnexpectedToken:    "Unexpected token",
	SynUnclosedBracket:    "Unclosed bracket",
	SynUnclosedBrace:      "Unclosed brace",
	SynExpectIdentifier:   "Expect identifier",
	SynExpectValue:        "Expect value",
	SynExpectString:       "Expect string",
	SynUnexpectedTopLevel: "Unexpected top-level construct",
	FmtInfo:               "Formatting information",
	FmtSyntaxErrors:       "File contains syntax errors",
	FmtMalformedField:     "Malformed field declaration",
	FmtMissingName:        "Missing name",
	FmtMissingCode:        "Missing embedded code body",
	FmtCodeFilter:         "External code formatter failed",
	IOLoadFileError:       "Failed to load file",
	IOWriteFileError:      "Failed to write file",
}

// ID returns the stable short identifier, e.g. "SYN2001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("FMT%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Title returns the human readable description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

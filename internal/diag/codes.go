package diag

import "fmt"

// Code identifies a diagnostic kind. Ranges are reserved per phase:
// 1xxx lexer, 2xxx parser, 3xxx name resolution, 4xxx type checking,
// 5xxx driver/IO.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar         Code = 1001
	LexBadNumber           Code = 1002
	LexUnknownUnit         Code = 1003
	LexUnterminatedComment Code = 1004
	LexUnterminatedString  Code = 1005

	// Syntax
	SynUnexpectedToken  Code = 2001
	SynExpectIdentifier Code = 2002
	SynExpectSemicolon  Code = 2003
	SynExpectType       Code = 2004
	SynUnclosedDelim    Code = 2005
	SynExpectExpr       Code = 2006
	SynBadArrayLen      Code = 2007

	// Name resolution
	NameUndefinedSymbol     Code = 3001
	NameDuplicateDefinition Code = 3002
	NameUnresolvedType      Code = 3003
	NameUndefinedField      Code = 3004
	NameUndefinedFunction   Code = 3005
	NameInvalidReference    Code = 3006

	// Type checking
	TypeMismatch              Code = 4001
	TypeUnknown               Code = 4002
	TypeInvalidOperation      Code = 4003
	TypeArgumentCountMismatch Code = 4004
	TypeArgumentTypeMismatch  Code = 4005
	TypeNotCallable           Code = 4006
	TypeInvalidReference      Code = 4008
	TypeInvalidDereference    Code = 4009
	TypeUndefinedSymbol       Code = 4010
	TypeFieldNotFound         Code = 4011
	TypeInvalidArrayIndex     Code = 4012
	TypeInvalidIndexType      Code = 4013

	// Driver / IO
	IOLoadFileError Code = 5001
)

func (c Code) String() string {
	switch {
	case c >= 1000 && c < 2000:
		return fmt.Sprintf("L%04d", uint16(c))
	case c >= 2000 && c < 3000:
		return fmt.Sprintf("S%04d", uint16(c))
	case c >= 3000 && c < 4000:
		return fmt.Sprintf("N%04d", uint16(c))
	case c >= 4000 && c < 5000:
		return fmt.Sprintf("T%04d", uint16(c))
	case c >= 5000 && c < 6000:
		return fmt.Sprintf("D%04d", uint16(c))
	default:
		return fmt.Sprintf("E%04d", uint16(c))
	}
}

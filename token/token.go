package token

import "fmt"

type Kind int

const (
	EOF Kind = iota
	ILLEGAL

	// Literals and identifiers.
	IDENT
	GENERIC
	INT
	FLOAT
	CHAR
	STRING

	// Punctuation.
	LEFTPAREN
	RIGHTPAREN
	LEFTBRACE
	RIGHTBRACE
	LEFTBRACKET
	RIGHTBRACKET
	COMMA
	SEMICOLON
	COLON
	DOT
	DOTDOT
	COLONCOLON
	DEFINE

	// Operators.
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	AMP
	PIPE
	CARET
	TILDE
	SHL
	SHR
	BANG
	ANDAND
	OROR
	EQ
	NEQ
	LT
	LE
	GT
	GE
	ASSIGN
	PLUSASSIGN
	MINUSASSIGN
	STARASSIGN
	SLASHASSIGN
	PERCENTASSIGN
	AMPASSIGN
	PIPEASSIGN
	CARETASSIGN
	SHLASSIGN
	SHRASSIGN

	keywordBegin
	// Keywords.
	FN
	STRUCT
	ENUM
	UNION
	TYPE
	TYPESET
	IMPORT
	AS
	IF
	ELSE
	WHILE
	FOR
	IN
	MATCH
	CASE
	BREAK
	CONTINUE
	RET
	DEFER
	LABEL
	CAST
	REF
	DEREF
	TRUE
	FALSE
	NIL

	primitiveBegin
	// Primitive type keywords.
	INTTYPE
	I8
	I16
	I32
	I64
	UINT
	U8
	U16
	U32
	U64
	F32
	F64
	BOOL
	BYTE
	CHARTYPE
	STRINGTYPE
	VOID
	RAWPTR
	ANY
	primitiveEnd
)

var kindNames = map[Kind]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",
	IDENT:   "IDENT",
	GENERIC: "GENERIC",
	INT:     "INT",
	FLOAT:   "FLOAT",
	CHAR:    "CHAR",
	STRING:  "STRING",

	LEFTPAREN:    "(",
	RIGHTPAREN:   ")",
	LEFTBRACE:    "{",
	RIGHTBRACE:   "}",
	LEFTBRACKET:  "[",
	RIGHTBRACKET: "]",
	COMMA:        ",",
	SEMICOLON:    ";",
	COLON:        ":",
	DOT:          ".",
	DOTDOT:       "..",
	COLONCOLON:   "::",
	DEFINE:       ":=",

	PLUS:          "+",
	MINUS:         "-",
	STAR:          "*",
	SLASH:         "/",
	PERCENT:       "%",
	AMP:           "&",
	PIPE:          "|",
	CARET:         "^",
	TILDE:         "~",
	SHL:           "<<",
	SHR:           ">>",
	BANG:          "!",
	ANDAND:        "&&",
	OROR:          "||",
	EQ:            "==",
	NEQ:           "!=",
	LT:            "<",
	LE:            "<=",
	GT:            ">",
	GE:            ">=",
	ASSIGN:        "=",
	PLUSASSIGN:    "+=",
	MINUSASSIGN:   "-=",
	STARASSIGN:    "*=",
	SLASHASSIGN:   "/=",
	PERCENTASSIGN: "%=",
	AMPASSIGN:     "&=",
	PIPEASSIGN:    "|=",
	CARETASSIGN:   "^=",
	SHLASSIGN:     "<<=",
	SHRASSIGN:     ">>=",
}

// Keywords maps every reserved word to its kind.
var Keywords = map[string]Kind{
	"fn":       FN,
	"struct":   STRUCT,
	"enum":     ENUM,
	"union":    UNION,
	"type":     TYPE,
	"typeset":  TYPESET,
	"import":   IMPORT,
	"as":       AS,
	"if":       IF,
	"else":     ELSE,
	"while":    WHILE,
	"for":      FOR,
	"in":       IN,
	"match":    MATCH,
	"case":     CASE,
	"break":    BREAK,
	"continue": CONTINUE,
	"ret":      RET,
	"defer":    DEFER,
	"label":    LABEL,
	"cast":     CAST,
	"ref":      REF,
	"deref":    DEREF,
	"true":     TRUE,
	"false":    FALSE,
	"nil":      NIL,

	"int":    INTTYPE,
	"i8":     I8,
	"i16":    I16,
	"i32":    I32,
	"i64":    I64,
	"uint":   UINT,
	"u8":     U8,
	"u16":    U16,
	"u32":    U32,
	"u64":    U64,
	"f32":    F32,
	"f64":    F64,
	"bool":   BOOL,
	"byte":   BYTE,
	"char":   CHARTYPE,
	"string": STRINGTYPE,
	"void":   VOID,
	"rawptr": RAWPTR,
	"any":    ANY,
}

func init() {
	for word, kind := range Keywords {
		kindNames[kind] = word
	}
}

// Lookup returns the keyword kind for ident, or IDENT.
func Lookup(ident string) Kind {
	if k, ok := Keywords[ident]; ok {
		return k
	}
	return IDENT
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) IsKeyword() bool {
	return k > keywordBegin && k < primitiveEnd && k != primitiveBegin
}

func (k Kind) IsPrimitive() bool {
	return k > primitiveBegin && k < primitiveEnd
}

func (k Kind) IsLiteral() bool {
	switch k {
	case INT, FLOAT, CHAR, STRING, TRUE, FALSE, NIL:
		return true
	}
	return false
}

// IsAssign reports whether k is `=` or one of the ten compound assignments.
func (k Kind) IsAssign() bool {
	return k >= ASSIGN && k <= SHRASSIGN
}

// CompoundOp returns the binary operator behind a compound assignment.
func (k Kind) CompoundOp() (Kind, bool) {
	switch k {
	case PLUSASSIGN:
		return PLUS, true
	case MINUSASSIGN:
		return MINUS, true
	case STARASSIGN:
		return STAR, true
	case SLASHASSIGN:
		return SLASH, true
	case PERCENTASSIGN:
		return PERCENT, true
	case AMPASSIGN:
		return AMP, true
	case PIPEASSIGN:
		return PIPE, true
	case CARETASSIGN:
		return CARET, true
	case SHLASSIGN:
		return SHL, true
	case SHRASSIGN:
		return SHR, true
	}
	return ILLEGAL, false
}

type Token struct {
	Kind   Kind
	Lexeme string
	Span   Span
	// NewlineBefore is set when a newline separates this token from the previous one.
	NewlineBefore bool
}

func (t Token) String() string {
	nl := ""
	if t.NewlineBefore {
		nl = " nl"
	}
	return fmt.Sprintf("{%v, %q, %s%s}", t.Kind, t.Lexeme, t.Span.Range(), nl)
}

// Describe renders the token for use in a diagnostic message.
func (t Token) Describe() string {
	switch t.Kind {
	case EOF:
		return "end of file"
	case IDENT:
		return fmt.Sprintf("identifier `%s`", t.Lexeme)
	case INT, FLOAT, CHAR, STRING:
		return fmt.Sprintf("literal %s", t.Lexeme)
	}
	return fmt.Sprintf("`%s`", t.Lexeme)
}

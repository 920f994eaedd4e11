// Package glsllex tokenizes GLSL source text.
package glsllex

// Channel distinguishes tokens a parser consumes (Default) from trivia a
// parser skips but a printer still needs to reproduce (Hidden): whitespace,
// newlines, comments, and `#` lines other than #version, #extension and
// #pragma.
type Channel int

const (
	Default Channel = iota
	Hidden
)

// TokenType tags the lexical category of a Token.
type TokenType int

const (
	EOF TokenType = iota
	Illegal

	Ident
	IntLiteral
	UintLiteral
	FloatLiteral
	DoubleLiteral
	StringLiteral
	TrueLiteral
	FalseLiteral

	Whitespace
	Newline
	LineComment
	BlockComment
	HashVersion
	HashExtension
	HashPragma
	HashDirective // any other #-line, passed through as hidden/opaque

	// Punctuation
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Semicolon
	Comma
	Dot
	Colon
	Question

	// Operators
	Plus
	Minus
	Star
	Slash
	Percent
	Assign
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	AndAnd
	OrOr
	Not
	Amp
	Pipe
	Caret
	Tilde
	Shl
	Shr
	PlusAssign
	MinusAssign
	StarAssign
	SlashAssign
	PercentAssign
	AndAssign
	OrAssign
	XorAssign
	ShlAssign
	ShrAssign
	Increment
	Decrement

	// Keywords that matter structurally to the AST.
	KwVoid
	KwStruct
	KwIf
	KwElse
	KwSwitch
	KwCase
	KwDefault
	KwFor
	KwWhile
	KwDo
	KwBreak
	KwContinue
	KwReturn
	KwDiscard
	KwPrecision
	KwIn
	KwOut
	KwInOut
	KwUniform
	KwBuffer
	KwShared
	KwConst
	KwFlat
	KwSmooth
	KwNoperspective
	KwInvariant
	KwPrecise
	KwLayout
	KwRestrict
	KwReadonly
	KwWriteonly
	KwCoherent
	KwVolatile
	KwLowp
	KwMediump
	KwHighp
)

var tokenNames = map[TokenType]string{
	EOF: "EOF", Illegal: "ILLEGAL", Ident: "IDENT",
	IntLiteral: "INT", UintLiteral: "UINT", FloatLiteral: "FLOAT",
	DoubleLiteral: "DOUBLE", StringLiteral: "STRING",
	TrueLiteral: "true", FalseLiteral: "false",
	Whitespace: "WS", Newline: "NL", LineComment: "LINE_COMMENT",
	BlockComment: "BLOCK_COMMENT", HashVersion: "#version",
	HashExtension: "#extension", HashPragma: "#pragma", HashDirective: "#directive",
	LParen: "(", RParen: ")", LBrace: "{", RBrace: "}",
	LBracket: "[", RBracket: "]", Semicolon: ";", Comma: ",",
	Dot: ".", Colon: ":", Question: "?",
	Plus: "+", Minus: "-", Star: "*", Slash: "/", Percent: "%",
	Assign: "=", Eq: "==", Ne: "!=", Lt: "<", Le: "<=", Gt: ">", Ge: ">=",
	AndAnd: "&&", OrOr: "||", Not: "!", Amp: "&", Pipe: "|", Caret: "^",
	Tilde: "~", Shl: "<<", Shr: ">>",
	PlusAssign: "+=", MinusAssign: "-=", StarAssign: "*=", SlashAssign: "/=",
	PercentAssign: "%=", AndAssign: "&=", OrAssign: "|=", XorAssign: "^=",
	ShlAssign: "<<=", ShrAssign: ">>=", Increment: "++", Decrement: "--",
	KwVoid: "void", KwStruct: "struct", KwIf: "if", KwElse: "else",
	KwSwitch: "switch", KwCase: "case", KwDefault: "default", KwFor: "for",
	KwWhile: "while", KwDo: "do", KwBreak: "break", KwContinue: "continue",
	KwReturn: "return", KwDiscard: "discard", KwPrecision: "precision",
	KwIn: "in", KwOut: "out", KwInOut: "inout", KwUniform: "uniform",
	KwBuffer: "buffer", KwShared: "shared", KwConst: "const", KwFlat: "flat",
	KwSmooth: "smooth", KwNoperspective: "noperspective", KwInvariant: "invariant",
	KwPrecise: "precise", KwLayout: "layout", KwRestrict: "restrict",
	KwReadonly: "readonly", KwWriteonly: "writeonly", KwCoherent: "coherent",
	KwVolatile: "volatile", KwLowp: "lowp", KwMediump: "mediump", KwHighp: "highp",
}

func (t TokenType) String() string {
	if s, ok := tokenNames[t]; ok {
		return s
	}
	return "UNKNOWN"
}

var keywords = map[string]TokenType{
	"void": KwVoid, "struct": KwStruct, "if": KwIf, "else": KwElse,
	"switch": KwSwitch, "case": KwCase, "default": KwDefault, "for": KwFor,
	"while": KwWhile, "do": KwDo, "break": KwBreak, "continue": KwContinue,
	"return": KwReturn, "discard": KwDiscard, "precision": KwPrecision,
	"in": KwIn, "out": KwOut, "inout": KwInOut, "uniform": KwUniform,
	"buffer": KwBuffer, "shared": KwShared, "const": KwConst, "flat": KwFlat,
	"smooth": KwSmooth, "noperspective": KwNoperspective, "invariant": KwInvariant,
	"precise": KwPrecise, "layout": KwLayout, "restrict": KwRestrict,
	"readonly": KwReadonly, "writeonly": KwWriteonly, "coherent": KwCoherent,
	"volatile": KwVolatile, "lowp": KwLowp, "mediump": KwMediump, "highp": KwHighp,
	"true": TrueLiteral, "false": FalseLiteral,
}

// LookupIdent classifies a scanned identifier as a keyword token or a plain
// IDENT.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return Ident
}

// Token is one scanned lexeme, on either the Default or Hidden channel.
type Token struct {
	Type    TokenType
	Literal string
	Channel Channel
	Line    int
	Column  int
}

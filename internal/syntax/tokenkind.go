package syntax

// TokenKind represents the category of a source token.
type TokenKind uint16

const (
	// TokenUnknown indicates an erroneous token.
	TokenUnknown TokenKind = iota
	// TokenEOF marks the end of the source input.
	TokenEOF

	// TokenIdentifier represents a plain identifier.
	TokenIdentifier
	// TokenSystemIdentifier represents a $-prefixed identifier.
	TokenSystemIdentifier
	// TokenDirectiveName represents a `-prefixed directive name.
	TokenDirectiveName

	// literals
	TokenStringLiteral
	TokenIntegerLiteral
	TokenIntegerBase
	TokenUnbasedUnsizedLiteral
	TokenRealLiteral
	TokenTimeLiteral

	// punctuation
	TokenOpenParen         // (
	TokenCloseParen        // )
	TokenOpenBracket       // [
	TokenCloseBracket      // ]
	TokenOpenBrace         // {
	TokenCloseBrace        // }
	TokenSemicolon         // ;
	TokenColon             // :
	TokenDoubleColon       // ::
	TokenComma             // ,
	TokenDot               // .
	TokenApostrophe        // '
	TokenHash              // #
	TokenAt                // @
	TokenQuestion          // ?
	TokenPlus              // +
	TokenMinus             // -
	TokenStar              // *
	TokenDoubleStar        // **
	TokenSlash             // /
	TokenPercent           // %
	TokenEquals            // =
	TokenDoubleEquals      // ==
	TokenExclamation       // !
	TokenExclamationEquals // !=
	TokenLessThan          // <
	TokenLessThanEquals    // <=
	TokenGreaterThan       // >
	TokenGreaterThanEquals // >=
	TokenLeftShift         // <<
	TokenRightShift        // >>
	TokenAnd               // &
	TokenDoubleAnd         // &&
	TokenOr                // |
	TokenDoubleOr          // ||
	TokenXor               // ^
	TokenTilde             // ~
	TokenArrow             // ->
	TokenNonblockingAssign // <=  in sequential context, distinguished by the parser

	// keywords
	TokenModuleKeyword
	TokenEndModuleKeyword
	TokenPackageKeyword
	TokenEndPackageKeyword
	TokenInputKeyword
	TokenOutputKeyword
	TokenInoutKeyword
	TokenWireKeyword
	TokenLogicKeyword
	TokenRegKeyword
	TokenIntegerKeyword
	TokenRealKeyword
	TokenTimeKeyword
	TokenParameterKeyword
	TokenLocalParamKeyword
	TokenAssignKeyword
	TokenAlwaysKeyword
	TokenInitialKeyword
	TokenBeginKeyword
	TokenEndKeyword
	TokenIfKeyword
	TokenElseKeyword
	TokenCaseKeyword
	TokenEndCaseKeyword
	TokenDefaultKeyword
	TokenForKeyword
	TokenForeverKeyword
	TokenReturnKeyword
	TokenFunctionKeyword
	TokenEndFunctionKeyword
	TokenTaskKeyword
	TokenEndTaskKeyword
	TokenTypedefKeyword
	TokenEnumKeyword
	TokenStructKeyword
	TokenUnionKeyword
	TokenSignedKeyword
	TokenUnsignedKeyword
	TokenPosEdgeKeyword
	TokenNegEdgeKeyword

	tokenKindCount
)

var tokenKindNames = [...]string{
	TokenUnknown:               "Unknown",
	TokenEOF:                   "EOF",
	TokenIdentifier:            "Identifier",
	TokenSystemIdentifier:      "SystemIdentifier",
	TokenDirectiveName:         "DirectiveName",
	TokenStringLiteral:         "StringLiteral",
	TokenIntegerLiteral:        "IntegerLiteral",
	TokenIntegerBase:           "IntegerBase",
	TokenUnbasedUnsizedLiteral: "UnbasedUnsizedLiteral",
	TokenRealLiteral:           "RealLiteral",
	TokenTimeLiteral:           "TimeLiteral",
	TokenOpenParen:             "OpenParen",
	TokenCloseParen:            "CloseParen",
	TokenOpenBracket:           "OpenBracket",
	TokenCloseBracket:          "CloseBracket",
	TokenOpenBrace:             "OpenBrace",
	TokenCloseBrace:            "CloseBrace",
	TokenSemicolon:             "Semicolon",
	TokenColon:                 "Colon",
	TokenDoubleColon:           "DoubleColon",
	TokenComma:                 "Comma",
	TokenDot:                   "Dot",
	TokenApostrophe:            "Apostrophe",
	TokenHash:                  "Hash",
	TokenAt:                    "At",
	TokenQuestion:              "Question",
	TokenPlus:                  "Plus",
	TokenMinus:                 "Minus",
	TokenStar:                  "Star",
	TokenDoubleStar:            "DoubleStar",
	TokenSlash:                 "Slash",
	TokenPercent:               "Percent",
	TokenEquals:                "Equals",
	TokenDoubleEquals:          "DoubleEquals",
	TokenExclamation:           "Exclamation",
	TokenExclamationEquals:     "ExclamationEquals",
	TokenLessThan:              "LessThan",
	TokenLessThanEquals:        "LessThanEquals",
	TokenGreaterThan:           "GreaterThan",
	TokenGreaterThanEquals:     "GreaterThanEquals",
	TokenLeftShift:             "LeftShift",
	TokenRightShift:            "RightShift",
	TokenAnd:                   "And",
	TokenDoubleAnd:             "DoubleAnd",
	TokenOr:                    "Or",
	TokenDoubleOr:              "DoubleOr",
	TokenXor:                   "Xor",
	TokenTilde:                 "Tilde",
	TokenArrow:                 "Arrow",
	TokenNonblockingAssign:     "NonblockingAssign",
	TokenModuleKeyword:         "ModuleKeyword",
	TokenEndModuleKeyword:      "EndModuleKeyword",
	TokenPackageKeyword:        "PackageKeyword",
	TokenEndPackageKeyword:     "EndPackageKeyword",
	TokenInputKeyword:          "InputKeyword",
	TokenOutputKeyword:         "OutputKeyword",
	TokenInoutKeyword:          "InoutKeyword",
	TokenWireKeyword:           "WireKeyword",
	TokenLogicKeyword:          "LogicKeyword",
	TokenRegKeyword:            "RegKeyword",
	TokenIntegerKeyword:        "IntegerKeyword",
	TokenRealKeyword:           "RealKeyword",
	TokenTimeKeyword:           "TimeKeyword",
	TokenParameterKeyword:      "ParameterKeyword",
	TokenLocalParamKeyword:     "LocalParamKeyword",
	TokenAssignKeyword:         "AssignKeyword",
	TokenAlwaysKeyword:         "AlwaysKeyword",
	TokenInitialKeyword:        "InitialKeyword",
	TokenBeginKeyword:          "BeginKeyword",
	TokenEndKeyword:            "EndKeyword",
	TokenIfKeyword:             "IfKeyword",
	TokenElseKeyword:           "ElseKeyword",
	TokenCaseKeyword:           "CaseKeyword",
	TokenEndCaseKeyword:        "EndCaseKeyword",
	TokenDefaultKeyword:        "DefaultKeyword",
	TokenForKeyword:            "ForKeyword",
	TokenForeverKeyword:        "ForeverKeyword",
	TokenReturnKeyword:         "ReturnKeyword",
	TokenFunctionKeyword:       "FunctionKeyword",
	TokenEndFunctionKeyword:    "EndFunctionKeyword",
	TokenTaskKeyword:           "TaskKeyword",
	TokenEndTaskKeyword:        "EndTaskKeyword",
	TokenTypedefKeyword:        "TypedefKeyword",
	TokenEnumKeyword:           "EnumKeyword",
	TokenStructKeyword:         "StructKeyword",
	TokenUnionKeyword:          "UnionKeyword",
	TokenSignedKeyword:         "SignedKeyword",
	TokenUnsignedKeyword:       "UnsignedKeyword",
	TokenPosEdgeKeyword:        "PosEdgeKeyword",
	TokenNegEdgeKeyword:        "NegEdgeKeyword",
}

func (k TokenKind) String() string {
	if k < tokenKindCount {
		return tokenKindNames[k]
	}
	return "TokenKind(?)"
}

// IsKeyword reports whether the token kind is a language keyword.
func (k TokenKind) IsKeyword() bool {
	return k >= TokenModuleKeyword && k <= TokenNegEdgeKeyword
}

// IsLiteral reports whether the token kind is a literal.
func (k TokenKind) IsLiteral() bool {
	return k >= TokenStringLiteral && k <= TokenTimeLiteral
}

package syntax

// SyntaxKind identifies the grammar production a node represents.
type SyntaxKind uint16

const (
	// KindUnknown indicates a node produced from unrecognized input.
	KindUnknown SyntaxKind = iota
	// KindList marks every list container node.
	KindList

	// directives
	KindDefineDirective
	KindIncludeDirective
	KindIfDefDirective
	KindIfNDefDirective
	KindElseDirective
	KindEndIfDirective
	KindTimescaleDirective
	KindResetAllDirective
	KindPragmaDirective
	KindUndefDirective

	// primary expressions
	KindNullLiteralExpression
	KindStringLiteralExpression
	KindIntegerLiteralExpression
	KindRealLiteralExpression
	KindTimeLiteralExpression
	KindWildcardLiteralExpression
	KindParenthesizedExpression
	KindConcatenationExpression

	// unary expressions
	KindUnaryPlusExpression
	KindUnaryMinusExpression
	KindLogicalNotExpression
	KindBitwiseNotExpression
	KindUnaryReductionAndExpression
	KindUnaryReductionOrExpression
	KindUnaryReductionXorExpression

	// binary expressions
	KindAddExpression
	KindSubtractExpression
	KindMultiplyExpression
	KindDivideExpression
	KindModExpression
	KindPowerExpression
	KindEqualityExpression
	KindInequalityExpression
	KindLessThanExpression
	KindGreaterThanExpression
	KindLogicalAndExpression
	KindLogicalOrExpression
	KindBinaryAndExpression
	KindBinaryOrExpression
	KindBinaryXorExpression
	KindShiftLeftExpression
	KindShiftRightExpression
	KindConditionalExpression
	KindAssignmentExpression

	// selectors and postfix
	KindBitSelect
	KindSimpleRangeSelect
	KindElementSelectExpression
	KindMemberAccessExpression
	KindInvocationExpression

	// names
	KindIdentifierName
	KindScopedName
	KindSystemName
	KindClassName

	// statements
	KindEmptyStatement
	KindConditionalStatement
	KindElseClause
	KindCaseStatement
	KindStandardCaseItem
	KindDefaultCaseItem
	KindLoopStatement
	KindForeverStatement
	KindReturnStatement
	KindTimingControlStatement
	KindBlockingAssignmentStatement
	KindNonblockingAssignmentStatement

	// declarations
	KindModuleDeclaration
	KindModuleHeader
	KindPortList
	KindPortDeclaration
	KindParameterDeclaration
	KindVariableDeclaration
	KindNetDeclaration

	kindCount
)

var kindNames = [...]string{
	KindUnknown:                        "Unknown",
	KindList:                           "List",
	KindDefineDirective:                "DefineDirective",
	KindIncludeDirective:               "IncludeDirective",
	KindIfDefDirective:                 "IfDefDirective",
	KindIfNDefDirective:                "IfNDefDirective",
	KindElseDirective:                  "ElseDirective",
	KindEndIfDirective:                 "EndIfDirective",
	KindTimescaleDirective:             "TimescaleDirective",
	KindResetAllDirective:              "ResetAllDirective",
	KindPragmaDirective:                "PragmaDirective",
	KindUndefDirective:                 "UndefDirective",
	KindNullLiteralExpression:          "NullLiteralExpression",
	KindStringLiteralExpression:        "StringLiteralExpression",
	KindIntegerLiteralExpression:       "IntegerLiteralExpression",
	KindRealLiteralExpression:          "RealLiteralExpression",
	KindTimeLiteralExpression:          "TimeLiteralExpression",
	KindWildcardLiteralExpression:      "WildcardLiteralExpression",
	KindParenthesizedExpression:        "ParenthesizedExpression",
	KindConcatenationExpression:        "ConcatenationExpression",
	KindUnaryPlusExpression:            "UnaryPlusExpression",
	KindUnaryMinusExpression:           "UnaryMinusExpression",
	KindLogicalNotExpression:           "LogicalNotExpression",
	KindBitwiseNotExpression:           "BitwiseNotExpression",
	KindUnaryReductionAndExpression:    "UnaryReductionAndExpression",
	KindUnaryReductionOrExpression:     "UnaryReductionOrExpression",
	KindUnaryReductionXorExpression:    "UnaryReductionXorExpression",
	KindAddExpression:                  "AddExpression",
	KindSubtractExpression:             "SubtractExpression",
	KindMultiplyExpression:             "MultiplyExpression",
	KindDivideExpression:               "DivideExpression",
	KindModExpression:                  "ModExpression",
	KindPowerExpression:                "PowerExpression",
	KindEqualityExpression:             "EqualityExpression",
	KindInequalityExpression:           "InequalityExpression",
	KindLessThanExpression:             "LessThanExpression",
	KindGreaterThanExpression:          "GreaterThanExpression",
	KindLogicalAndExpression:           "LogicalAndExpression",
	KindLogicalOrExpression:            "LogicalOrExpression",
	KindBinaryAndExpression:            "BinaryAndExpression",
	KindBinaryOrExpression:             "BinaryOrExpression",
	KindBinaryXorExpression:            "BinaryXorExpression",
	KindShiftLeftExpression:            "ShiftLeftExpression",
	KindShiftRightExpression:           "ShiftRightExpression",
	KindConditionalExpression:          "ConditionalExpression",
	KindAssignmentExpression:           "AssignmentExpression",
	KindBitSelect:                      "BitSelect",
	KindSimpleRangeSelect:              "SimpleRangeSelect",
	KindElementSelectExpression:        "ElementSelectExpression",
	KindMemberAccessExpression:         "MemberAccessExpression",
	KindInvocationExpression:           "InvocationExpression",
	KindIdentifierName:                 "IdentifierName",
	KindScopedName:                     "ScopedName",
	KindSystemName:                     "SystemName",
	KindClassName:                      "ClassName",
	KindEmptyStatement:                 "EmptyStatement",
	KindConditionalStatement:           "ConditionalStatement",
	KindElseClause:                     "ElseClause",
	KindCaseStatement:                  "CaseStatement",
	KindStandardCaseItem:               "StandardCaseItem",
	KindDefaultCaseItem:                "DefaultCaseItem",
	KindLoopStatement:                  "LoopStatement",
	KindForeverStatement:               "ForeverStatement",
	KindReturnStatement:                "ReturnStatement",
	KindTimingControlStatement:         "TimingControlStatement",
	KindBlockingAssignmentStatement:    "BlockingAssignmentStatement",
	KindNonblockingAssignmentStatement: "NonblockingAssignmentStatement",
	KindModuleDeclaration:              "ModuleDeclaration",
	KindModuleHeader:                   "ModuleHeader",
	KindPortList:                       "PortList",
	KindPortDeclaration:                "PortDeclaration",
	KindParameterDeclaration:           "ParameterDeclaration",
	KindVariableDeclaration:            "VariableDeclaration",
	KindNetDeclaration:                 "NetDeclaration",
}

func (k SyntaxKind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "SyntaxKind(?)"
}

// IsDirective reports whether the kind is a preprocessor directive node.
func (k SyntaxKind) IsDirective() bool {
	return k >= KindDefineDirective && k <= KindUndefDirective
}

package jsast

// NodeKind classifies the type of an AST node. Dispatching on a small
// integer keeps visitor tables dense and avoids per-node string compares.
type NodeKind uint16

// Node kinds for statements, declarations, and expressions.
const (
	KindProgram NodeKind = iota

	// Declarations.
	KindFunctionDeclaration
	KindClassDeclaration
	KindVariableDeclaration // var
	KindLexicalDeclaration  // let, const
	KindVariableDeclarator
	KindImportDeclaration
	KindExportStatement
	KindInterfaceDeclaration
	KindTypeAliasDeclaration
	KindEnumDeclaration

	// Statements.
	KindExpressionStatement
	KindStatementBlock
	KindIfStatement
	KindForStatement
	KindForInStatement // for-in and for-of
	KindWhileStatement
	KindDoStatement
	KindReturnStatement
	KindSwitchStatement
	KindTryStatement
	KindThrowStatement
	KindBreakStatement
	KindContinueStatement
	KindDebuggerStatement
	KindLabeledStatement
	KindEmptyStatement

	// Expressions.
	KindClassExpression
	KindFunctionExpression
	KindArrowFunction
	KindCallExpression
	KindNewExpression
	KindAssignmentExpression
	KindAugmentedAssignmentExpression // +=, -=, etc.
	KindUpdateExpression              // ++, --
	KindMemberExpression
	KindSubscriptExpression
	KindBinaryExpression
	KindUnaryExpression
	KindTernaryExpression
	KindParenthesizedExpression
	KindAwaitExpression
	KindYieldExpression
	KindSequenceExpression

	// Terminals and containers.
	KindIdentifier
	KindString
	KindNumber
	KindTemplateString
	KindRegex
	KindArray
	KindObject
	KindPair
	KindFormalParameters
	KindArguments
	KindMethodDefinition
	KindFieldDefinition
	KindClassBody
	KindComment

	// Fallback for CST node types with no mapping.
	KindUnknown

	// KindFile is a synthetic kind used as a visitor subscription key for
	// whole-file callbacks. It never appears in a parsed tree.
	KindFile
)

// kindNames is indexed by NodeKind.
var kindNames = [...]string{
	KindProgram:                       "Program",
	KindFunctionDeclaration:           "FunctionDeclaration",
	KindClassDeclaration:              "ClassDeclaration",
	KindVariableDeclaration:           "VariableDeclaration",
	KindLexicalDeclaration:            "LexicalDeclaration",
	KindVariableDeclarator:            "VariableDeclarator",
	KindImportDeclaration:             "ImportDeclaration",
	KindExportStatement:               "ExportStatement",
	KindInterfaceDeclaration:          "InterfaceDeclaration",
	KindTypeAliasDeclaration:          "TypeAliasDeclaration",
	KindEnumDeclaration:               "EnumDeclaration",
	KindExpressionStatement:           "ExpressionStatement",
	KindStatementBlock:                "StatementBlock",
	KindIfStatement:                   "IfStatement",
	KindForStatement:                  "ForStatement",
	KindForInStatement:                "ForInStatement",
	KindWhileStatement:                "WhileStatement",
	KindDoStatement:                   "DoStatement",
	KindReturnStatement:               "ReturnStatement",
	KindSwitchStatement:               "SwitchStatement",
	KindTryStatement:                  "TryStatement",
	KindThrowStatement:                "ThrowStatement",
	KindBreakStatement:                "BreakStatement",
	KindContinueStatement:             "ContinueStatement",
	KindDebuggerStatement:             "DebuggerStatement",
	KindLabeledStatement:              "LabeledStatement",
	KindEmptyStatement:                "EmptyStatement",
	KindClassExpression:               "ClassExpression",
	KindFunctionExpression:            "FunctionExpression",
	KindArrowFunction:                 "ArrowFunction",
	KindCallExpression:                "CallExpression",
	KindNewExpression:                 "NewExpression",
	KindAssignmentExpression:          "AssignmentExpression",
	KindAugmentedAssignmentExpression: "AugmentedAssignmentExpression",
	KindUpdateExpression:              "UpdateExpression",
	KindMemberExpression:              "MemberExpression",
	KindSubscriptExpression:           "SubscriptExpression",
	KindBinaryExpression:              "BinaryExpression",
	KindUnaryExpression:               "UnaryExpression",
	KindTernaryExpression:             "TernaryExpression",
	KindParenthesizedExpression:       "ParenthesizedExpression",
	KindAwaitExpression:               "AwaitExpression",
	KindYieldExpression:               "YieldExpression",
	KindSequenceExpression:            "SequenceExpression",
	KindIdentifier:                    "Identifier",
	KindString:                        "String",
	KindNumber:                        "Number",
	KindTemplateString:                "TemplateString",
	KindRegex:                         "Regex",
	KindArray:                         "Array",
	KindObject:                        "Object",
	KindPair:                          "Pair",
	KindFormalParameters:              "FormalParameters",
	KindArguments:                     "Arguments",
	KindMethodDefinition:              "MethodDefinition",
	KindFieldDefinition:               "FieldDefinition",
	KindClassBody:                     "ClassBody",
	KindComment:                       "Comment",
	KindUnknown:                       "Unknown",
	KindFile:                          "File",
}

// String returns the kind name.
func (k NodeKind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// IsLoop returns true for loop statement kinds.
func (k NodeKind) IsLoop() bool {
	switch k {
	case KindForStatement, KindForInStatement, KindWhileStatement, KindDoStatement:
		return true
	default:
		return false
	}
}

// IsStatement returns true for statement and declaration kinds.
func (k NodeKind) IsStatement() bool {
	switch k {
	case KindFunctionDeclaration, KindClassDeclaration, KindVariableDeclaration,
		KindLexicalDeclaration, KindImportDeclaration, KindExportStatement,
		KindInterfaceDeclaration, KindTypeAliasDeclaration, KindEnumDeclaration,
		KindExpressionStatement, KindStatementBlock, KindIfStatement,
		KindForStatement, KindForInStatement, KindWhileStatement, KindDoStatement,
		KindReturnStatement, KindSwitchStatement, KindTryStatement,
		KindThrowStatement, KindBreakStatement, KindContinueStatement,
		KindDebuggerStatement, KindLabeledStatement, KindEmptyStatement:
		return true
	default:
		return false
	}
}

package treesitter

import (
	"fortio.org/safecast"
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yaklabco/gojslint/pkg/jsast"
)

// kindByType maps tree-sitter CST type names to jsast node kinds.
// Where grammar versions disagree on a spelling, both forms are listed.
var kindByType = map[string]jsast.NodeKind{
	// Declarations.
	"function_declaration":            jsast.KindFunctionDeclaration,
	"generator_function_declaration":  jsast.KindFunctionDeclaration,
	"class_declaration":               jsast.KindClassDeclaration,
	"abstract_class_declaration":      jsast.KindClassDeclaration,
	"variable_declaration":            jsast.KindVariableDeclaration,
	"lexical_declaration":             jsast.KindLexicalDeclaration,
	"variable_declarator":             jsast.KindVariableDeclarator,
	"import_statement":                jsast.KindImportDeclaration,
	"export_statement":                jsast.KindExportStatement,
	"interface_declaration":           jsast.KindInterfaceDeclaration,
	"type_alias_declaration":          jsast.KindTypeAliasDeclaration,
	"enum_declaration":                jsast.KindEnumDeclaration,

	// Statements.
	"expression_statement": jsast.KindExpressionStatement,
	"statement_block":      jsast.KindStatementBlock,
	"if_statement":         jsast.KindIfStatement,
	"for_statement":        jsast.KindForStatement,
	"for_in_statement":     jsast.KindForInStatement,
	"for_of_statement":     jsast.KindForInStatement,
	"while_statement":      jsast.KindWhileStatement,
	"do_statement":         jsast.KindDoStatement,
	"return_statement":     jsast.KindReturnStatement,
	"switch_statement":     jsast.KindSwitchStatement,
	"try_statement":        jsast.KindTryStatement,
	"throw_statement":      jsast.KindThrowStatement,
	"break_statement":      jsast.KindBreakStatement,
	"continue_statement":   jsast.KindContinueStatement,
	"debugger_statement":   jsast.KindDebuggerStatement,
	"labeled_statement":    jsast.KindLabeledStatement,
	"empty_statement":      jsast.KindEmptyStatement,

	// Expressions.
	"class":                           jsast.KindClassExpression,
	"class_expression":                jsast.KindClassExpression,
	"function":                        jsast.KindFunctionExpression,
	"function_expression":             jsast.KindFunctionExpression,
	"generator_function":              jsast.KindFunctionExpression,
	"arrow_function":                  jsast.KindArrowFunction,
	"call_expression":                 jsast.KindCallExpression,
	"new_expression":                  jsast.KindNewExpression,
	"assignment_expression":           jsast.KindAssignmentExpression,
	"augmented_assignment_expression": jsast.KindAugmentedAssignmentExpression,
	"update_expression":               jsast.KindUpdateExpression,
	"member_expression":               jsast.KindMemberExpression,
	"subscript_expression":            jsast.KindSubscriptExpression,
	"binary_expression":               jsast.KindBinaryExpression,
	"unary_expression":                jsast.KindUnaryExpression,
	"ternary_expression":              jsast.KindTernaryExpression,
	"parenthesized_expression":        jsast.KindParenthesizedExpression,
	"await_expression":                jsast.KindAwaitExpression,
	"yield_expression":                jsast.KindYieldExpression,
	"sequence_expression":             jsast.KindSequenceExpression,

	// Terminals and containers.
	"identifier":                            jsast.KindIdentifier,
	"property_identifier":                   jsast.KindIdentifier,
	"shorthand_property_identifier":         jsast.KindIdentifier,
	"shorthand_property_identifier_pattern": jsast.KindIdentifier,
	"private_property_identifier":           jsast.KindIdentifier,
	"statement_identifier":                  jsast.KindIdentifier,
	"type_identifier":                       jsast.KindIdentifier,
	"string":                                jsast.KindString,
	"number":                                jsast.KindNumber,
	"template_string":                       jsast.KindTemplateString,
	"regex":                                 jsast.KindRegex,
	"array":                                 jsast.KindArray,
	"object":                                jsast.KindObject,
	"pair":                                  jsast.KindPair,
	"formal_parameters":                     jsast.KindFormalParameters,
	"arguments":                             jsast.KindArguments,
	"method_definition":                     jsast.KindMethodDefinition,
	"field_definition":                      jsast.KindFieldDefinition,
	"public_field_definition":               jsast.KindFieldDefinition,
	"class_body":                            jsast.KindClassBody,
	"comment":                               jsast.KindComment,
}

// mapper converts a tree-sitter CST into a jsast.Node tree, collecting
// comments into a flat list as it goes.
type mapper struct {
	content  []byte
	comments []jsast.Comment
}

// newMapper creates a new mapper for the given content.
func newMapper(content []byte) *mapper {
	return &mapper{content: content}
}

// mapProgram converts the CST root into a Program node.
func (m *mapper) mapProgram(root *sitter.Node) *jsast.Node {
	start, end, ok := byteRange(root)
	if !ok {
		start, end = 0, len(m.content)
	}
	program := jsast.NewProgram(start, end)
	m.mapChildren(root, program)
	return program
}

// mapChildren recursively maps the named children of a CST node.
// Anonymous tokens (punctuation, keywords) are not part of the tree.
func (m *mapper) mapChildren(tsParent *sitter.Node, parent *jsast.Node) {
	count := int(tsParent.NamedChildCount())
	for i := 0; i < count; i++ {
		child := tsParent.NamedChild(i)
		if child == nil {
			continue
		}
		if node := m.mapNode(child); node != nil {
			jsast.AppendChild(parent, node)
		}
	}
}

// mapNode converts a single named CST node to a jsast.Node.
// CST types with no mapping become KindUnknown with their children intact.
func (m *mapper) mapNode(tsNode *sitter.Node) *jsast.Node {
	start, end, ok := byteRange(tsNode)
	if !ok {
		return nil
	}

	kind, known := kindByType[tsNode.Type()]
	if !known {
		kind = jsast.KindUnknown
	}

	if kind == jsast.KindComment {
		m.recordComment(tsNode, start, end)
	}

	node := jsast.NewNode(kind, start, end)
	m.mapChildren(tsNode, node)
	return node
}

// recordComment appends a comment to the flat list. The CST is walked in
// preorder, so the list comes out in source order.
func (m *mapper) recordComment(tsNode *sitter.Node, start, end int) {
	m.comments = append(m.comments, jsast.Comment{
		Start:     start,
		End:       end,
		Text:      string(m.content[start:end]),
		StartLine: int(tsNode.StartPoint().Row) + 1,
		EndLine:   int(tsNode.EndPoint().Row) + 1,
	})
}

// byteRange converts the CST byte offsets, reporting false when they do
// not fit in an int.
func byteRange(tsNode *sitter.Node) (int, int, bool) {
	start, err := safecast.Conv[int](tsNode.StartByte())
	if err != nil {
		return 0, 0, false
	}
	end, err := safecast.Conv[int](tsNode.EndByte())
	if err != nil {
		return 0, 0, false
	}
	return start, end, true
}

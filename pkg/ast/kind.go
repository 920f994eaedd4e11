// Package ast defines the typed GLSL abstract syntax tree: parent-linked
// nodes attached to a Root that maintains structural indices over them.
package ast

// Kind tags the concrete variant of a Node. The node hierarchy is a closed
// sum type; Kind is the discriminant used by indices, visitors, and
// matchers instead of runtime type assertions wherever a plain comparison
// will do.
type Kind int

const (
	KindTranslationUnit Kind = iota

	KindIdentifier

	// ExternalDeclaration variants
	KindDeclarationExternal
	KindFunctionDefinition
	KindLayoutDefaults
	KindPragma
	KindExtensionDirective
	KindEmptyDeclarationExternal
	KindVersionStatement

	// Declaration variants
	KindTypeAndInitDeclaration
	KindInterfaceBlockDeclaration
	KindFunctionDeclaration
	KindPrecisionDeclaration
	KindEmptyDeclaration
	KindDeclarationMember

	// Statement variants
	KindCompoundStatement
	KindExpressionStatement
	KindDeclarationStatement
	KindSelectionStatement
	KindSwitchStatement
	KindIterationStatement
	KindJumpStatement
	KindCaseLabelStatement
	KindEmptyStatement

	// Expression variants
	KindReferenceExpression
	KindLiteralExpression
	KindGroupingExpression
	KindMemberAccessExpression
	KindArrayAccessExpression
	KindFunctionCallExpression
	KindMethodCallExpression
	KindIncDecExpression
	KindUnaryExpression
	KindBinaryExpression
	KindTernaryExpression
	KindSequenceExpression

	// Type system nodes
	KindFullySpecifiedType
	KindTypeQualifier
	KindQualifierPart
	KindLayoutQualifier
	KindLayoutQualifierPart
	KindTypeSpecifier
	KindStructSpecifier
	KindArraySpecifier
)

var kindNames = map[Kind]string{
	KindTranslationUnit:           "TranslationUnit",
	KindIdentifier:                "Identifier",
	KindDeclarationExternal:       "DeclarationExternal",
	KindFunctionDefinition:        "FunctionDefinition",
	KindLayoutDefaults:            "LayoutDefaults",
	KindPragma:                    "Pragma",
	KindExtensionDirective:        "ExtensionDirective",
	KindEmptyDeclarationExternal:  "EmptyDeclarationExternal",
	KindVersionStatement:          "VersionStatement",
	KindTypeAndInitDeclaration:    "TypeAndInitDeclaration",
	KindInterfaceBlockDeclaration: "InterfaceBlockDeclaration",
	KindFunctionDeclaration:       "FunctionDeclaration",
	KindPrecisionDeclaration:      "PrecisionDeclaration",
	KindEmptyDeclaration:          "EmptyDeclaration",
	KindDeclarationMember:         "DeclarationMember",
	KindCompoundStatement:         "CompoundStatement",
	KindExpressionStatement:       "ExpressionStatement",
	KindDeclarationStatement:      "DeclarationStatement",
	KindSelectionStatement:        "SelectionStatement",
	KindSwitchStatement:           "SwitchStatement",
	KindIterationStatement:        "IterationStatement",
	KindJumpStatement:             "JumpStatement",
	KindCaseLabelStatement:        "CaseLabelStatement",
	KindEmptyStatement:            "EmptyStatement",
	KindReferenceExpression:       "ReferenceExpression",
	KindLiteralExpression:         "LiteralExpression",
	KindGroupingExpression:        "GroupingExpression",
	KindMemberAccessExpression:    "MemberAccessExpression",
	KindArrayAccessExpression:     "ArrayAccessExpression",
	KindFunctionCallExpression:    "FunctionCallExpression",
	KindMethodCallExpression:      "MethodCallExpression",
	KindIncDecExpression:          "IncDecExpression",
	KindUnaryExpression:           "UnaryExpression",
	KindBinaryExpression:          "BinaryExpression",
	KindTernaryExpression:         "TernaryExpression",
	KindSequenceExpression:        "SequenceExpression",
	KindFullySpecifiedType:        "FullySpecifiedType",
	KindTypeQualifier:             "TypeQualifier",
	KindQualifierPart:             "QualifierPart",
	KindLayoutQualifier:           "LayoutQualifier",
	KindLayoutQualifierPart:       "LayoutQualifierPart",
	KindTypeSpecifier:             "TypeSpecifier",
	KindStructSpecifier:           "StructSpecifier",
	KindArraySpecifier:            "ArraySpecifier",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UnknownKind"
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

// KindByName looks up a Kind by its String() spelling, e.g. for a
// path/selector compiler that names node kinds in source text.
func KindByName(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

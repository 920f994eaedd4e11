package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSample(t *testing.T) (*Root, *TranslationUnit, *FunctionDefinition) {
	t.Helper()
	root := NewRoot(PolicyExact)
	tu := NewTranslationUnit(root)
	tu.SetVersion(NewVersionStatement(330, "core"))

	retType := NewFullySpecifiedType(nil, NewBuiltinTypeSpecifier(TypeBuiltinNumeric, "vec4"))
	header := NewFunctionDeclaration(retType, NewIdentifier("main"))
	body := NewCompoundStatement()
	def := NewFunctionDefinition(header, body)
	tu.Append(def)

	ref := NewExpressionStatement(NewReferenceExpression(NewIdentifier("main")))
	body.Append(ref)

	return root, tu, def
}

func TestSetupRegistersWholeSubtree(t *testing.T) {
	root, _, def := buildSample(t)

	idents := root.Identifiers("main")
	assert.Len(t, idents, 2, "function name and the reference inside its body")

	funcs := root.NodesOfKind(KindFunctionDefinition)
	require.Len(t, funcs, 1)
	assert.Same(t, def, funcs[0])
}

func TestSetNamePreservesIdentifierIndex(t *testing.T) {
	root, _, def := buildSample(t)

	nameIdent := def.Header.Name
	nameIdent.SetName("vertex")

	assert.NotContains(t, root.Identifiers("main"), nameIdent, "old spelling must drop out of the index")
	assert.Len(t, root.Identifiers("main"), 1, "the reference inside the body keeps the old spelling")
	assert.Len(t, root.Identifiers("vertex"), 1)
	require.NoError(t, root.Verify())
}

func TestSetNameMovesExternalDeclarationIndexEntry(t *testing.T) {
	root, _, def := buildSample(t)

	entries := root.ExternalDeclarationsNamed("main")
	require.Len(t, entries, 1)
	assert.Same(t, def, entries[0].Decl)

	def.Header.Name.SetName("vertex")

	assert.Empty(t, root.ExternalDeclarationsNamed("main"), "old spelling must drop out of the external-declaration index")
	renamed := root.ExternalDeclarationsNamed("vertex")
	require.Len(t, renamed, 1)
	assert.Same(t, def, renamed[0].Decl)
	require.NoError(t, root.Verify())
}

func TestDetachAndDeleteRemovesFromIndices(t *testing.T) {
	root, _, def := buildSample(t)
	body := def.Body

	stmt := body.Stmts[0]
	require.NoError(t, DetachAndDelete(stmt))

	assert.Empty(t, body.Stmts)
	assert.Nil(t, stmt.Parent())
	assert.Nil(t, stmt.Root())
	// Only the function name identifier remains indexed; the reference's
	// identifier went with the detached statement.
	assert.Len(t, root.Identifiers("main"), 1)
	require.NoError(t, root.Verify())
}

func TestReplaceByAttachesReplacement(t *testing.T) {
	root, _, def := buildSample(t)
	body := def.Body
	old := body.Stmts[0]

	replacement := NewExpressionStatement(NewReferenceExpression(NewIdentifier("replaced")))
	require.NoError(t, ReplaceBy(old, replacement))

	assert.Same(t, replacement, body.Stmts[0])
	assert.Same(t, body, replacement.Parent())
	assert.Len(t, root.Identifiers("replaced"), 1)
	assert.Len(t, root.Identifiers("main"), 1, "only the function-name identifier should remain")
	require.NoError(t, root.Verify())
}

func TestCloneIntoProducesIndependentAttachedCopy(t *testing.T) {
	root, tu, _ := buildSample(t)

	other := NewRoot(PolicyExact)
	tu.CloneInto(other)

	assert.Len(t, other.Identifiers("main"), 2)
	assert.Len(t, root.Identifiers("main"), 2, "cloning must not mutate the source tree")
	require.NoError(t, root.Verify())
	require.NoError(t, other.Verify())
}

func TestIndexBuildSessionBatchesMutations(t *testing.T) {
	root, _, def := buildSample(t)
	body := def.Body

	root.IndexBuildSession(func() {
		for i := 0; i < 5; i++ {
			body.Append(NewExpressionStatement(NewReferenceExpression(NewIdentifier("bulk"))))
		}
		// Inside the session the index has not observed the inserts yet.
		assert.Empty(t, root.Identifiers("bulk"))
	})

	assert.Len(t, root.Identifiers("bulk"), 5)
	require.NoError(t, root.Verify())
}

func TestGetAncestor(t *testing.T) {
	_, _, def := buildSample(t)
	ref := def.Body.Stmts[0].(*ExpressionStatement).Expr

	anc := GetAncestor(ref, KindFunctionDefinition)
	assert.Same(t, def, anc)
	assert.True(t, HasAncestor(ref, KindCompoundStatement))
	assert.True(t, HasAncestor(ref, KindTranslationUnit))
}

func TestIdentifierUniqueErrorsOnDuplicates(t *testing.T) {
	root, _, _ := buildSample(t)

	_, err := root.IdentifierUnique("main")
	require.Error(t, err)
	var uv *UniquenessViolationError
	assert.ErrorAs(t, err, &uv)
}

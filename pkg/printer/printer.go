// Package printer reprints a pkg/ast tree back to GLSL source text.
// It visits the AST depth-first, emitting real tokens on
// the Default channel and synthesized inter-token spacing/newlines on the
// Hidden channel, the same two-channel split pkg/glsllex tokenizes with.
// The printer is free to normalize whitespace; it must not reorder tokens
// or change a program's meaning.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/glsltx/glsltx/pkg/ast"
)

// Printer writes a GLSL translation unit to an io.Writer, tracking brace
// indent the way the teacher's pkg/clight.Printer does.
type Printer struct {
	w      io.Writer
	indent int
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer { return &Printer{w: w} }

// Print reprints tu and returns the resulting source text.
func Print(tu *ast.TranslationUnit) string {
	var b strings.Builder
	New(&b).PrintTranslationUnit(tu)
	return b.String()
}

// PrintExpression reprints a single detached or attached expression, for
// callers (e.g. pkg/rules' printf-extraction) that need an expression's
// source spelling without a whole translation unit around it.
func PrintExpression(e ast.Expression) string {
	var b strings.Builder
	New(&b).printExpression(e)
	return b.String()
}

func (p *Printer) writeIndent() { fmt.Fprint(p.w, strings.Repeat("    ", p.indent)) }

func (p *Printer) hidden(s string) { fmt.Fprint(p.w, s) } // Hidden channel: synthesized whitespace
func (p *Printer) token(s string)  { fmt.Fprint(p.w, s) } // Default channel: a real token

// PrintTranslationUnit emits the version statement (if any), then every
// external declaration in order, then the trailing-trivia hidden-token slot
// if one was recorded.
func (p *Printer) PrintTranslationUnit(tu *ast.TranslationUnit) {
	if tu.Version != nil {
		p.printVersionStatement(tu.Version)
		p.hidden("\n") // always exactly one newline after #version
	}
	for _, d := range tu.Decls {
		p.printExternalDeclaration(d)
	}
	if tu.TrailingTrivia != "" {
		p.hidden(tu.TrailingTrivia)
	}
}

func (p *Printer) printVersionStatement(v *ast.VersionStatement) {
	p.token(fmt.Sprintf("#version %d", v.Number))
	if v.Profile != "" {
		p.token(" " + v.Profile)
	}
}

func (p *Printer) printExternalDeclaration(d ast.ExternalDeclaration) {
	switch n := d.(type) {
	case *ast.DeclarationExternal:
		p.writeIndent()
		p.printDeclaration(n.Decl)
		p.hidden("\n")
	case *ast.FunctionDefinition:
		p.writeIndent()
		p.printFunctionHeader(n.Header)
		p.hidden(" ")
		p.printCompoundStatement(n.Body)
		p.hidden("\n")
	case *ast.LayoutDefaults:
		p.writeIndent()
		p.token("layout")
		p.printLayoutQualifier(n.Layout)
		p.token(" " + n.Qualifier + ";")
		p.hidden("\n")
	case *ast.Pragma:
		p.writeIndent()
		p.token("#pragma " + n.Text)
		p.hidden("\n")
	case *ast.ExtensionDirective:
		p.writeIndent()
		p.token(fmt.Sprintf("#extension %s : %s", n.Name, n.Behavior))
		p.hidden("\n")
	case *ast.EmptyDeclarationExternal:
		p.writeIndent()
		p.token(";")
		p.hidden("\n")
	case *ast.VersionStatement:
		// Reachable only if a phase relocated a VersionStatement into the
		// general declaration sequence; print it exactly like the dedicated
		// TranslationUnit.Version slot.
		p.writeIndent()
		p.printVersionStatement(n)
		p.hidden("\n")
	default:
		p.writeIndent()
		fmt.Fprintf(p.w, "/* unknown external declaration %T */\n", d)
	}
}

func (p *Printer) printDeclaration(d ast.Declaration) {
	switch n := d.(type) {
	case *ast.TypeAndInitDeclaration:
		p.printFullySpecifiedType(n.Type)
		p.hidden(" ")
		p.printDeclarationMembers(n.Members)
		p.token(";")
	case *ast.InterfaceBlockDeclaration:
		p.printTypeQualifier(n.Qualifier)
		p.hidden(" ")
		p.printIdentifier(n.BlockName)
		p.hidden(" ")
		p.printStructBody(n.Body)
		if n.InstanceName != nil {
			p.hidden(" ")
			p.printIdentifier(n.InstanceName)
			if n.Array != nil {
				p.printArraySpecifier(n.Array)
			}
		}
		p.token(";")
	case *ast.FunctionDeclaration:
		p.printFunctionHeader(n)
		p.token(";")
	case *ast.PrecisionDeclaration:
		p.token("precision " + n.Precision + " ")
		p.printTypeSpecifier(n.Type)
		p.token(";")
	case *ast.EmptyDeclaration:
		p.token(";")
	default:
		fmt.Fprintf(p.w, "/* unknown declaration %T */", d)
	}
}

func (p *Printer) printFunctionHeader(fd *ast.FunctionDeclaration) {
	p.printFullySpecifiedType(fd.ReturnType)
	p.hidden(" ")
	p.printIdentifier(fd.Name)
	p.token("(")
	if len(fd.Params) == 0 {
		p.token("void")
	}
	for i, param := range fd.Params {
		if i > 0 {
			p.token(", ")
		}
		p.printFullySpecifiedType(param.Type)
		if param.Name != nil {
			p.hidden(" ")
			p.printIdentifier(param.Name)
		}
	}
	p.token(")")
}

func (p *Printer) printDeclarationMembers(members []*ast.DeclarationMember) {
	for i, m := range members {
		if i > 0 {
			p.token(", ")
		}
		p.printIdentifier(m.Name)
		if m.Array != nil {
			p.printArraySpecifier(m.Array)
		}
		if m.Initializer != nil {
			p.token(" = ")
			p.printExpression(m.Initializer)
		}
	}
}

func (p *Printer) printFullySpecifiedType(t *ast.FullySpecifiedType) {
	if t.Qualifier != nil && len(t.Qualifier.Parts) > 0 {
		p.printTypeQualifier(t.Qualifier)
		p.hidden(" ")
	}
	p.printTypeSpecifier(t.Specifier)
}

func (p *Printer) printTypeQualifier(q *ast.TypeQualifier) {
	for i, part := range q.Parts {
		if i > 0 {
			p.hidden(" ")
		}
		p.printQualifierPart(part)
	}
}

func (p *Printer) printQualifierPart(part *ast.QualifierPart) {
	if part.Variant == ast.QualLayout {
		p.token("layout")
		p.printLayoutQualifier(part.Layout)
		return
	}
	p.token(part.Text)
}

func (p *Printer) printLayoutQualifier(lq *ast.LayoutQualifier) {
	p.token("(")
	for i, part := range lq.Parts {
		if i > 0 {
			p.token(", ")
		}
		switch part.Variant {
		case ast.LayoutShared:
			p.token("shared")
		case ast.LayoutExpressionValued:
			p.printIdentifier(part.Name)
			p.token(" = ")
			p.printExpression(part.Value)
		default:
			p.printIdentifier(part.Name)
		}
	}
	p.token(")")
}

func (p *Printer) printTypeSpecifier(ts *ast.TypeSpecifier) {
	switch ts.Variant {
	case ast.TypeStruct:
		p.printStructSpecifier(ts.Struct)
	case ast.TypeReference:
		p.printIdentifier(ts.TypeName)
	default:
		p.token(ts.BuiltinName)
	}
	if ts.Array != nil {
		p.printArraySpecifier(ts.Array)
	}
}

func (p *Printer) printStructSpecifier(s *ast.StructSpecifier) {
	p.token("struct")
	if s.Name != nil {
		p.hidden(" ")
		p.printIdentifier(s.Name)
	}
	p.hidden(" ")
	p.printStructBody(s)
}

func (p *Printer) printStructBody(s *ast.StructSpecifier) {
	p.token("{")
	p.hidden("\n")
	p.indent++
	for _, g := range s.Fields {
		p.writeIndent()
		p.printFullySpecifiedType(g.Type)
		p.hidden(" ")
		p.printDeclarationMembers(g.Members)
		p.token(";")
		p.hidden("\n")
	}
	p.indent--
	p.writeIndent()
	p.token("}")
}

func (p *Printer) printArraySpecifier(a *ast.ArraySpecifier) {
	p.token("[")
	if a.Size != nil {
		p.printExpression(a.Size)
	}
	p.token("]")
}

func (p *Printer) printIdentifier(id *ast.Identifier) { p.token(id.Name()) }

// --- Statements ---------------------------------------------------------

func (p *Printer) printCompoundStatement(cs *ast.CompoundStatement) {
	p.token("{")
	p.hidden("\n")
	p.indent++
	for _, s := range cs.Stmts {
		p.printStatement(s)
	}
	p.indent--
	p.writeIndent()
	p.token("}")
}

func (p *Printer) printStatement(s ast.Statement) {
	switch n := s.(type) {
	case *ast.CompoundStatement:
		p.writeIndent()
		p.printCompoundStatement(n)
		p.hidden("\n")
	case *ast.ExpressionStatement:
		p.writeIndent()
		if n.Expr != nil {
			p.printExpression(n.Expr)
		}
		p.token(";")
		p.hidden("\n")
	case *ast.DeclarationStatement:
		p.writeIndent()
		p.printDeclaration(n.Decl)
		p.hidden("\n")
	case *ast.SelectionStatement:
		p.writeIndent()
		p.token("if (")
		p.printExpression(n.Cond)
		p.token(") ")
		p.printBranch(n.Then)
		if n.Else != nil {
			p.writeIndent()
			p.token("else ")
			p.printBranch(n.Else)
		}
	case *ast.SwitchStatement:
		p.writeIndent()
		p.token("switch (")
		p.printExpression(n.Cond)
		p.token(") ")
		p.printCompoundStatement(n.Body)
		p.hidden("\n")
	case *ast.CaseLabelStatement:
		p.writeIndent()
		if n.Expr != nil {
			p.token("case ")
			p.printExpression(n.Expr)
		} else {
			p.token("default")
		}
		p.token(":")
		p.hidden("\n")
	case *ast.IterationStatement:
		p.printIterationStatement(n)
	case *ast.JumpStatement:
		p.writeIndent()
		p.printJumpStatement(n)
		p.hidden("\n")
	case *ast.EmptyStatement:
		p.writeIndent()
		p.token(";")
		p.hidden("\n")
	default:
		p.writeIndent()
		fmt.Fprintf(p.w, "/* unknown statement %T */\n", s)
	}
}

// printBranch prints an if/else arm, which may or may not itself be a
// CompoundStatement; printStatement already handles both shapes and
// terminates with a newline, but the brace form needs it inline after ") ".
func (p *Printer) printBranch(s ast.Statement) {
	if cs, ok := s.(*ast.CompoundStatement); ok {
		p.printCompoundStatement(cs)
		p.hidden("\n")
		return
	}
	p.hidden("\n")
	p.indent++
	p.printStatement(s)
	p.indent--
}

func (p *Printer) printIterationStatement(n *ast.IterationStatement) {
	p.writeIndent()
	switch n.Variant {
	case ast.IterationWhile:
		p.token("while (")
		p.printExpression(n.Cond)
		p.token(") ")
		p.printBranch(n.Body)
	case ast.IterationDoWhile:
		p.token("do ")
		p.printBranch(n.Body)
		p.writeIndent()
		p.token("while (")
		p.printExpression(n.Cond)
		p.token(");")
		p.hidden("\n")
	default:
		p.token("for (")
		if n.Init != nil {
			p.printForInit(n.Init)
		} else {
			p.token(";")
		}
		p.hidden(" ")
		if n.Cond != nil {
			p.printExpression(n.Cond)
		}
		p.token(";")
		p.hidden(" ")
		if n.Post != nil {
			p.printExpression(n.Post)
		}
		p.token(") ")
		p.printBranch(n.Body)
	}
}

// printForInit prints a for-loop's init clause (declaration or expression
// statement) without the trailing newline printStatement would add.
func (p *Printer) printForInit(s ast.Statement) {
	switch n := s.(type) {
	case *ast.DeclarationStatement:
		p.printDeclaration(n.Decl)
		p.token(";")
	case *ast.ExpressionStatement:
		if n.Expr != nil {
			p.printExpression(n.Expr)
		}
		p.token(";")
	}
}

func (p *Printer) printJumpStatement(n *ast.JumpStatement) {
	switch n.Variant {
	case ast.JumpBreak:
		p.token("break;")
	case ast.JumpContinue:
		p.token("continue;")
	case ast.JumpDiscard:
		p.token("discard;")
	case ast.JumpReturn:
		p.token("return")
		if n.Value != nil {
			p.hidden(" ")
			p.printExpression(n.Value)
		}
		p.token(";")
	}
}

// --- Expressions ---------------------------------------------------------

var binaryOpSpelling = map[ast.BinaryOp]string{
	ast.BinAdd: "+", ast.BinSub: "-", ast.BinMul: "*", ast.BinDiv: "/", ast.BinMod: "%",
	ast.BinLt: "<", ast.BinLe: "<=", ast.BinGt: ">", ast.BinGe: ">=",
	ast.BinEq: "==", ast.BinNe: "!=", ast.BinAnd: "&&", ast.BinOr: "||",
	ast.BinBitAnd: "&", ast.BinBitOr: "|", ast.BinBitXor: "^", ast.BinShl: "<<", ast.BinShr: ">>",
	ast.BinAssign: "=", ast.BinAddAssign: "+=", ast.BinSubAssign: "-=", ast.BinMulAssign: "*=",
	ast.BinDivAssign: "/=", ast.BinModAssign: "%=", ast.BinBitAndAssign: "&=",
	ast.BinBitOrAssign: "|=", ast.BinBitXorAssign: "^=", ast.BinShlAssign: "<<=", ast.BinShrAssign: ">>=",
}

var unaryOpSpelling = map[ast.UnaryOp]string{
	ast.UnaryPlus: "+", ast.UnaryMinus: "-", ast.UnaryNot: "!", ast.UnaryBitNot: "~",
}

func (p *Printer) printExpression(e ast.Expression) {
	switch n := e.(type) {
	case *ast.ReferenceExpression:
		p.printIdentifier(n.Name)
	case *ast.LiteralExpression:
		p.printLiteral(n)
	case *ast.GroupingExpression:
		p.token("(")
		p.printExpression(n.Inner)
		p.token(")")
	case *ast.MemberAccessExpression:
		p.printExpression(n.Receiver)
		p.token(".")
		p.printIdentifier(n.Member)
	case *ast.ArrayAccessExpression:
		p.printExpression(n.Array)
		p.token("[")
		p.printExpression(n.Index)
		p.token("]")
	case *ast.FunctionCallExpression:
		p.printIdentifier(n.Callee)
		p.printArgList(n.Args)
	case *ast.MethodCallExpression:
		p.printExpression(n.Receiver)
		p.token(".")
		p.printIdentifier(n.Method)
		p.printArgList(n.Args)
	case *ast.IncDecExpression:
		p.printIncDec(n)
	case *ast.UnaryExpression:
		p.token(unaryOpSpelling[n.Op])
		p.printExpression(n.Operand)
	case *ast.BinaryExpression:
		p.printExpression(n.Left)
		p.token(" " + binaryOpSpelling[n.Op] + " ")
		p.printExpression(n.Right)
	case *ast.TernaryExpression:
		p.printExpression(n.Cond)
		p.token(" ? ")
		p.printExpression(n.Then)
		p.token(" : ")
		p.printExpression(n.Else)
	case *ast.SequenceExpression:
		for i, item := range n.Items {
			if i > 0 {
				p.token(", ")
			}
			p.printExpression(item)
		}
	default:
		fmt.Fprintf(p.w, "/* unknown expression %T */", e)
	}
}

func (p *Printer) printArgList(args []ast.Expression) {
	p.token("(")
	for i, a := range args {
		if i > 0 {
			p.token(", ")
		}
		p.printExpression(a)
	}
	p.token(")")
}

func (p *Printer) printIncDec(n *ast.IncDecExpression) {
	switch n.Op {
	case ast.PreInc:
		p.token("++")
		p.printExpression(n.Operand)
	case ast.PreDec:
		p.token("--")
		p.printExpression(n.Operand)
	case ast.PostInc:
		p.printExpression(n.Operand)
		p.token("++")
	case ast.PostDec:
		p.printExpression(n.Operand)
		p.token("--")
	}
}

func (p *Printer) printLiteral(n *ast.LiteralExpression) {
	if n.Type == ast.LiteralString {
		p.token(fmt.Sprintf("%q", n.Text))
		return
	}
	p.token(n.Text)
}

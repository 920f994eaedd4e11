package transform

import (
	"github.com/glsltx/glsltx/pkg/ast"
	"github.com/glsltx/glsltx/pkg/glslparse"
	"github.com/pkg/errors"
)

// Context is the environment a Phase operates against during one run: the
// tree being transformed, plus the injection/query helpers a phase may
// invoke.
type Context struct {
	root *ast.Root
	tu   *ast.TranslationUnit

	cursor map[InjectionPoint]int // next Decls index for a point already used this run
}

func newContext(root *ast.Root, tu *ast.TranslationUnit) *Context {
	return &Context{root: root, tu: tu, cursor: map[InjectionPoint]int{}}
}

// Root returns the tree's index registry.
func (c *Context) Root() *ast.Root { return c.root }

// TranslationUnit returns the tree being transformed.
func (c *Context) TranslationUnit() *ast.TranslationUnit { return c.tu }

// InjectExternalDeclaration parses source as a single top-level
// construct and inserts it at point.
func (c *Context) InjectExternalDeclaration(source string, point InjectionPoint) error {
	ed, err := glslparse.ParseExternalDeclaration(c.root, source)
	if err != nil {
		return errors.Wrap(err, "inject external declaration")
	}
	return c.InjectNode(point, ed)
}

// InjectNode inserts n at point. n must already be attached to c.Root()
// (e.g. the result of InjectExternalDeclaration, or a Template
// instantiation).
func (c *Context) InjectNode(point InjectionPoint, n ast.Node) error {
	return c.InjectNodes(point, []ast.Node{n})
}

// InjectNodes inserts ns at point, in order, preserving relative order
// against anything already inserted at the same point earlier in this run.
func (c *Context) InjectNodes(point InjectionPoint, ns []ast.Node) error {
	switch point.kind {
	case pointEndOfFunctionBody, pointBeforeFunctionBody:
		fd := findFunctionDefinition(c.tu, point.funcName)
		if fd == nil {
			return errors.Errorf("inject: no function definition named %q", point.funcName)
		}
		i := c.cursor[point]
		if i > len(fd.Body.Stmts) {
			i = len(fd.Body.Stmts)
		}
		for _, n := range ns {
			stmt, ok := n.(ast.Statement)
			if !ok {
				return errors.Errorf("inject: %s is not a Statement", n.Kind())
			}
			if point.kind == pointEndOfFunctionBody {
				fd.Body.Append(stmt)
			} else {
				rest := append([]ast.Statement{ast.Setup[ast.Statement](fd.Body, stmt)}, fd.Body.Stmts[i:]...)
				fd.Body.Stmts = append(fd.Body.Stmts[:i], rest...)
				i++
			}
		}
		c.cursor[point] = i
		return nil
	default:
		i, ok := c.cursor[point]
		if !ok {
			i = topLevelIndex(c.tu, point)
		}
		for _, n := range ns {
			ed, ok := n.(ast.ExternalDeclaration)
			if !ok {
				return errors.Errorf("inject: %s is not an ExternalDeclaration", n.Kind())
			}
			c.tu.InsertAt(i, ed)
			i++
		}
		c.cursor[point] = i
		return nil
	}
}

// GetSiblings returns n's parent's children, n included.
func (c *Context) GetSiblings(n ast.Node) []ast.Node {
	p := n.Parent()
	if p == nil {
		return nil
	}
	return p.Children()
}

// PrependMainFunctionBody inserts stmt at the start of main()'s body, after
// any statements already injected there earlier in this run.
func (c *Context) PrependMainFunctionBody(stmt ast.Statement) error {
	return c.InjectNode(BeforeFunctionBody("main"), stmt)
}

// AppendMainFunctionBody inserts stmt at the end of main()'s body.
func (c *Context) AppendMainFunctionBody(stmt ast.Statement) error {
	return c.InjectNode(EndOfFunctionBody("main"), stmt)
}

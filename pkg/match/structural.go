package match

import "github.com/glsltx/glsltx/pkg/ast"

// structurallyEqual reports whether a and b are identical trees: same kind,
// same leaf data, same children recursively. It has no placeholder
// awareness — it is used both by the matcher's shape-equality rule and to
// check that repeated captures of the same placeholder name agree.
func structurallyEqual(a, b ast.Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	if !leafEqual(a, b) {
		return false
	}
	ac, bc := a.Children(), b.Children()
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if !structurallyEqual(ac[i], bc[i]) {
			return false
		}
	}
	return true
}

// leafEqual compares the non-child, non-positional data each node kind
// carries (enum tags, literal text, identifier spelling). Kinds with no
// such data (their meaning is entirely carried by Children()) fall through
// to the default true.
func leafEqual(a, b ast.Node) bool {
	switch x := a.(type) {
	case *ast.Identifier:
		return x.Name() == b.(*ast.Identifier).Name()
	case *ast.LiteralExpression:
		y := b.(*ast.LiteralExpression)
		return x.Type == y.Type && x.Text == y.Text
	case *ast.UnaryExpression:
		return x.Op == b.(*ast.UnaryExpression).Op
	case *ast.BinaryExpression:
		return x.Op == b.(*ast.BinaryExpression).Op
	case *ast.IncDecExpression:
		return x.Op == b.(*ast.IncDecExpression).Op
	case *ast.TypeSpecifier:
		y := b.(*ast.TypeSpecifier)
		return x.Variant == y.Variant && x.BuiltinName == y.BuiltinName
	case *ast.QualifierPart:
		y := b.(*ast.QualifierPart)
		return x.Variant == y.Variant && x.Text == y.Text
	case *ast.LayoutQualifierPart:
		return x.Variant == b.(*ast.LayoutQualifierPart).Variant
	case *ast.JumpStatement:
		return x.Variant == b.(*ast.JumpStatement).Variant
	case *ast.IterationStatement:
		return x.Variant == b.(*ast.IterationStatement).Variant
	case *ast.VersionStatement:
		y := b.(*ast.VersionStatement)
		return x.Number == y.Number && x.Profile == y.Profile
	case *ast.ExtensionDirective:
		y := b.(*ast.ExtensionDirective)
		return x.Name == y.Name && x.Behavior == y.Behavior
	case *ast.Pragma:
		return x.Text == b.(*ast.Pragma).Text
	case *ast.PrecisionDeclaration:
		return x.Precision == b.(*ast.PrecisionDeclaration).Precision
	case *ast.LayoutDefaults:
		return x.Qualifier == b.(*ast.LayoutDefaults).Qualifier
	default:
		return true
	}
}

// cloneMap walks orig and clone (which must be structurally identical, as
// produced by orig.CloneInto) in lockstep and returns a map from each node
// in orig's subtree to its counterpart in clone's.
func cloneMap(orig, clone ast.Node) map[ast.Node]ast.Node {
	m := make(map[ast.Node]ast.Node)
	var walk func(o, c ast.Node)
	walk = func(o, c ast.Node) {
		if o == nil || c == nil {
			return
		}
		m[o] = c
		oc, cc := o.Children(), c.Children()
		for i := 0; i < len(oc) && i < len(cc); i++ {
			walk(oc[i], cc[i])
		}
	}
	walk(orig, clone)
	return m
}

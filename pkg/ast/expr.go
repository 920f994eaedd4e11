package ast

// Expression is the interface every expression-family node implements.
type Expression interface {
	Node
	isExpression()
}

// LiteralType tags the scalar type of a LiteralExpression.
type LiteralType int

const (
	LiteralInt LiteralType = iota
	LiteralUint
	LiteralFloat
	LiteralDouble
	LiteralBool
	LiteralString
)

// ReferenceExpression is a bare identifier used as an expression (a
// variable/function-name reference).
type ReferenceExpression struct {
	base
	Name *Identifier
}

func NewReferenceExpression(name *Identifier) *ReferenceExpression {
	n := &ReferenceExpression{}
	n.Name = Setup[*Identifier](n, name)
	return n
}

func (n *ReferenceExpression) Kind() Kind       { return KindReferenceExpression }
func (n *ReferenceExpression) isExpression()    {}
func (n *ReferenceExpression) Children() []Node { return []Node{n.Name} }
func (n *ReferenceExpression) ReplaceChild(old, new Node) bool {
	if Node(n.Name) == old {
		n.Name = new.(*Identifier)
		return true
	}
	return false
}
func (n *ReferenceExpression) CloneInto(target *Root) Node {
	return NewReferenceExpression(n.Name.CloneInto(target).(*Identifier))
}
func (n *ReferenceExpression) Accept(v Visitor) { defaultAccept(n, v) }

// LiteralExpression is a typed scalar literal.
type LiteralExpression struct {
	base
	Type LiteralType
	Text string // the literal's source spelling, e.g. "1.0", "0x7", "true"
}

func NewLiteralExpression(t LiteralType, text string) *LiteralExpression {
	return &LiteralExpression{Type: t, Text: text}
}

func (n *LiteralExpression) Kind() Kind                        { return KindLiteralExpression }
func (n *LiteralExpression) isExpression()                     {}
func (n *LiteralExpression) Children() []Node                  { return nil }
func (n *LiteralExpression) ReplaceChild(old, new Node) bool    { return false }
func (n *LiteralExpression) CloneInto(target *Root) Node        { return NewLiteralExpression(n.Type, n.Text) }
func (n *LiteralExpression) Accept(v Visitor)                   { defaultAccept(n, v) }

// GroupingExpression is a parenthesized expression: `(inner)`.
type GroupingExpression struct {
	base
	Inner Expression
}

func NewGroupingExpression(inner Expression) *GroupingExpression {
	n := &GroupingExpression{}
	n.Inner = Setup[Expression](n, inner)
	return n
}

func (n *GroupingExpression) Kind() Kind       { return KindGroupingExpression }
func (n *GroupingExpression) isExpression()    {}
func (n *GroupingExpression) Children() []Node { return []Node{n.Inner} }
func (n *GroupingExpression) ReplaceChild(old, new Node) bool {
	if Node(n.Inner) == old {
		n.Inner = new.(Expression)
		return true
	}
	return false
}
func (n *GroupingExpression) CloneInto(target *Root) Node {
	return NewGroupingExpression(n.Inner.CloneInto(target).(Expression))
}
func (n *GroupingExpression) Accept(v Visitor) { defaultAccept(n, v) }

// MemberAccessExpression is `receiver.member`.
type MemberAccessExpression struct {
	base
	Receiver Expression
	Member   *Identifier
}

func NewMemberAccessExpression(receiver Expression, member *Identifier) *MemberAccessExpression {
	n := &MemberAccessExpression{}
	n.Receiver = Setup[Expression](n, receiver)
	n.Member = Setup[*Identifier](n, member)
	return n
}

func (n *MemberAccessExpression) Kind() Kind       { return KindMemberAccessExpression }
func (n *MemberAccessExpression) isExpression()    {}
func (n *MemberAccessExpression) Children() []Node { return []Node{n.Receiver, n.Member} }
func (n *MemberAccessExpression) ReplaceChild(old, new Node) bool {
	switch {
	case Node(n.Receiver) == old:
		n.Receiver = new.(Expression)
		return true
	case Node(n.Member) == old:
		n.Member = new.(*Identifier)
		return true
	}
	return false
}
func (n *MemberAccessExpression) CloneInto(target *Root) Node {
	return NewMemberAccessExpression(n.Receiver.CloneInto(target).(Expression), n.Member.CloneInto(target).(*Identifier))
}
func (n *MemberAccessExpression) Accept(v Visitor) { defaultAccept(n, v) }

// ArrayAccessExpression is `array[index]`.
type ArrayAccessExpression struct {
	base
	Array Expression
	Index Expression
}

func NewArrayAccessExpression(array, index Expression) *ArrayAccessExpression {
	n := &ArrayAccessExpression{}
	n.Array = Setup[Expression](n, array)
	n.Index = Setup[Expression](n, index)
	return n
}

func (n *ArrayAccessExpression) Kind() Kind       { return KindArrayAccessExpression }
func (n *ArrayAccessExpression) isExpression()    {}
func (n *ArrayAccessExpression) Children() []Node { return []Node{n.Array, n.Index} }
func (n *ArrayAccessExpression) ReplaceChild(old, new Node) bool {
	switch {
	case Node(n.Array) == old:
		n.Array = new.(Expression)
		return true
	case Node(n.Index) == old:
		n.Index = new.(Expression)
		return true
	}
	return false
}
func (n *ArrayAccessExpression) CloneInto(target *Root) Node {
	return NewArrayAccessExpression(n.Array.CloneInto(target).(Expression), n.Index.CloneInto(target).(Expression))
}
func (n *ArrayAccessExpression) Accept(v Visitor) { defaultAccept(n, v) }

// FunctionCallExpression is `name(args...)` (a plain function call or a
// constructor call, e.g. `vec4(...)`).
type FunctionCallExpression struct {
	base
	Callee *Identifier
	Args   []Expression
}

func NewFunctionCallExpression(callee *Identifier, args ...Expression) *FunctionCallExpression {
	n := &FunctionCallExpression{}
	n.Callee = Setup[*Identifier](n, callee)
	for _, a := range args {
		n.Args = append(n.Args, Setup[Expression](n, a))
	}
	return n
}

func (n *FunctionCallExpression) Kind() Kind { return KindFunctionCallExpression }
func (n *FunctionCallExpression) isExpression() {}
func (n *FunctionCallExpression) Children() []Node {
	cs := make([]Node, 0, len(n.Args)+1)
	cs = append(cs, n.Callee)
	for _, a := range n.Args {
		cs = append(cs, a)
	}
	return cs
}
func (n *FunctionCallExpression) ReplaceChild(old, new Node) bool {
	if Node(n.Callee) == old {
		n.Callee = new.(*Identifier)
		return true
	}
	for i, a := range n.Args {
		if Node(a) == old {
			n.Args[i] = new.(Expression)
			return true
		}
	}
	return false
}
func (n *FunctionCallExpression) CloneInto(target *Root) Node {
	args := make([]Expression, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.CloneInto(target).(Expression)
	}
	return NewFunctionCallExpression(n.Callee.CloneInto(target).(*Identifier), args...)
}
func (n *FunctionCallExpression) Accept(v Visitor) { defaultAccept(n, v) }

// MethodCallExpression is `receiver.method(args...)` (GLSL's `.length()`
// and the vector swizzle-free method-call surface).
type MethodCallExpression struct {
	base
	Receiver Expression
	Method   *Identifier
	Args     []Expression
}

func NewMethodCallExpression(receiver Expression, method *Identifier, args ...Expression) *MethodCallExpression {
	n := &MethodCallExpression{}
	n.Receiver = Setup[Expression](n, receiver)
	n.Method = Setup[*Identifier](n, method)
	for _, a := range args {
		n.Args = append(n.Args, Setup[Expression](n, a))
	}
	return n
}

func (n *MethodCallExpression) Kind() Kind { return KindMethodCallExpression }
func (n *MethodCallExpression) isExpression() {}
func (n *MethodCallExpression) Children() []Node {
	cs := []Node{n.Receiver, n.Method}
	for _, a := range n.Args {
		cs = append(cs, a)
	}
	return cs
}
func (n *MethodCallExpression) ReplaceChild(old, new Node) bool {
	switch {
	case Node(n.Receiver) == old:
		n.Receiver = new.(Expression)
		return true
	case Node(n.Method) == old:
		n.Method = new.(*Identifier)
		return true
	}
	for i, a := range n.Args {
		if Node(a) == old {
			n.Args[i] = new.(Expression)
			return true
		}
	}
	return false
}
func (n *MethodCallExpression) CloneInto(target *Root) Node {
	args := make([]Expression, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.CloneInto(target).(Expression)
	}
	return NewMethodCallExpression(n.Receiver.CloneInto(target).(Expression), n.Method.CloneInto(target).(*Identifier), args...)
}
func (n *MethodCallExpression) Accept(v Visitor) { defaultAccept(n, v) }

// IncDecOp distinguishes the four postfix/prefix increment/decrement forms.
type IncDecOp int

const (
	PostInc IncDecOp = iota
	PostDec
	PreInc
	PreDec
)

// IncDecExpression is `x++`, `x--`, `++x`, or `--x`.
type IncDecExpression struct {
	base
	Op      IncDecOp
	Operand Expression
}

func NewIncDecExpression(op IncDecOp, operand Expression) *IncDecExpression {
	n := &IncDecExpression{Op: op}
	n.Operand = Setup[Expression](n, operand)
	return n
}

func (n *IncDecExpression) Kind() Kind       { return KindIncDecExpression }
func (n *IncDecExpression) isExpression()    {}
func (n *IncDecExpression) Children() []Node { return []Node{n.Operand} }
func (n *IncDecExpression) ReplaceChild(old, new Node) bool {
	if Node(n.Operand) == old {
		n.Operand = new.(Expression)
		return true
	}
	return false
}
func (n *IncDecExpression) CloneInto(target *Root) Node {
	return NewIncDecExpression(n.Op, n.Operand.CloneInto(target).(Expression))
}
func (n *IncDecExpression) Accept(v Visitor) { defaultAccept(n, v) }

// UnaryOp enumerates unary arithmetic/logical/bitwise operators.
type UnaryOp int

const (
	UnaryPlus UnaryOp = iota
	UnaryMinus
	UnaryNot
	UnaryBitNot
)

// UnaryExpression is `op operand`.
type UnaryExpression struct {
	base
	Op      UnaryOp
	Operand Expression
}

func NewUnaryExpression(op UnaryOp, operand Expression) *UnaryExpression {
	n := &UnaryExpression{Op: op}
	n.Operand = Setup[Expression](n, operand)
	return n
}

func (n *UnaryExpression) Kind() Kind       { return KindUnaryExpression }
func (n *UnaryExpression) isExpression()    {}
func (n *UnaryExpression) Children() []Node { return []Node{n.Operand} }
func (n *UnaryExpression) ReplaceChild(old, new Node) bool {
	if Node(n.Operand) == old {
		n.Operand = new.(Expression)
		return true
	}
	return false
}
func (n *UnaryExpression) CloneInto(target *Root) Node {
	return NewUnaryExpression(n.Op, n.Operand.CloneInto(target).(Expression))
}
func (n *UnaryExpression) Accept(v Visitor) { defaultAccept(n, v) }

// BinaryOp enumerates every binary operator including the assignment
// flavors (`=`, `+=`, `-=`, …).
type BinaryOp int

const (
	BinAdd BinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinMod
	BinLt
	BinLe
	BinGt
	BinGe
	BinEq
	BinNe
	BinAnd
	BinOr
	BinBitAnd
	BinBitOr
	BinBitXor
	BinShl
	BinShr
	BinAssign
	BinAddAssign
	BinSubAssign
	BinMulAssign
	BinDivAssign
	BinModAssign
	BinBitAndAssign
	BinBitOrAssign
	BinBitXorAssign
	BinShlAssign
	BinShrAssign
)

// IsAssignment reports whether op is one of the assignment flavors.
func (op BinaryOp) IsAssignment() bool {
	return op >= BinAssign
}

// BinaryExpression is `left op right` for every binary operator, including
// assignment.
type BinaryExpression struct {
	base
	Op    BinaryOp
	Left  Expression
	Right Expression
}

func NewBinaryExpression(op BinaryOp, left, right Expression) *BinaryExpression {
	n := &BinaryExpression{Op: op}
	n.Left = Setup[Expression](n, left)
	n.Right = Setup[Expression](n, right)
	return n
}

func (n *BinaryExpression) Kind() Kind       { return KindBinaryExpression }
func (n *BinaryExpression) isExpression()    {}
func (n *BinaryExpression) Children() []Node { return []Node{n.Left, n.Right} }
func (n *BinaryExpression) ReplaceChild(old, new Node) bool {
	switch {
	case Node(n.Left) == old:
		n.Left = new.(Expression)
		return true
	case Node(n.Right) == old:
		n.Right = new.(Expression)
		return true
	}
	return false
}
func (n *BinaryExpression) CloneInto(target *Root) Node {
	return NewBinaryExpression(n.Op, n.Left.CloneInto(target).(Expression), n.Right.CloneInto(target).(Expression))
}
func (n *BinaryExpression) Accept(v Visitor) { defaultAccept(n, v) }

// TernaryExpression is `cond ? then : else`.
type TernaryExpression struct {
	base
	Cond Expression
	Then Expression
	Else Expression
}

func NewTernaryExpression(cond, then, els Expression) *TernaryExpression {
	n := &TernaryExpression{}
	n.Cond = Setup[Expression](n, cond)
	n.Then = Setup[Expression](n, then)
	n.Else = Setup[Expression](n, els)
	return n
}

func (n *TernaryExpression) Kind() Kind       { return KindTernaryExpression }
func (n *TernaryExpression) isExpression()    {}
func (n *TernaryExpression) Children() []Node { return []Node{n.Cond, n.Then, n.Else} }
func (n *TernaryExpression) ReplaceChild(old, new Node) bool {
	switch {
	case Node(n.Cond) == old:
		n.Cond = new.(Expression)
		return true
	case Node(n.Then) == old:
		n.Then = new.(Expression)
		return true
	case Node(n.Else) == old:
		n.Else = new.(Expression)
		return true
	}
	return false
}
func (n *TernaryExpression) CloneInto(target *Root) Node {
	return NewTernaryExpression(n.Cond.CloneInto(target).(Expression), n.Then.CloneInto(target).(Expression), n.Else.CloneInto(target).(Expression))
}
func (n *TernaryExpression) Accept(v Visitor) { defaultAccept(n, v) }

// SequenceExpression is `a, b, c` (the comma operator).
type SequenceExpression struct {
	base
	Items []Expression
}

func NewSequenceExpression(items ...Expression) *SequenceExpression {
	n := &SequenceExpression{}
	for _, it := range items {
		n.Items = append(n.Items, Setup[Expression](n, it))
	}
	return n
}

func (n *SequenceExpression) Kind() Kind { return KindSequenceExpression }
func (n *SequenceExpression) isExpression() {}
func (n *SequenceExpression) Children() []Node {
	cs := make([]Node, len(n.Items))
	for i, it := range n.Items {
		cs[i] = it
	}
	return cs
}
func (n *SequenceExpression) ReplaceChild(old, new Node) bool {
	for i, it := range n.Items {
		if Node(it) == old {
			n.Items[i] = new.(Expression)
			return true
		}
	}
	return false
}
func (n *SequenceExpression) RemoveChild(old Node) bool {
	for i, it := range n.Items {
		if Node(it) == old {
			n.Items = append(n.Items[:i], n.Items[i+1:]...)
			return true
		}
	}
	return false
}
func (n *SequenceExpression) CloneInto(target *Root) Node {
	items := make([]Expression, len(n.Items))
	for i, it := range n.Items {
		items[i] = it.CloneInto(target).(Expression)
	}
	return NewSequenceExpression(items...)
}
func (n *SequenceExpression) Accept(v Visitor) { defaultAccept(n, v) }

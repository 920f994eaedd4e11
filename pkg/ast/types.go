package ast

// FullySpecifiedType pairs an optional TypeQualifier with a TypeSpecifier,
// e.g. "uniform layout(location=0)" (qualifier) + "vec4" (specifier).
type FullySpecifiedType struct {
	base
	Qualifier *TypeQualifier // optional
	Specifier *TypeSpecifier
}

func NewFullySpecifiedType(qualifier *TypeQualifier, specifier *TypeSpecifier) *FullySpecifiedType {
	n := &FullySpecifiedType{Specifier: specifier}
	if qualifier != nil {
		n.Qualifier = Setup[*TypeQualifier](n, qualifier)
	}
	if specifier != nil {
		n.Specifier = Setup[*TypeSpecifier](n, specifier)
	}
	return n
}

func (n *FullySpecifiedType) Kind() Kind { return KindFullySpecifiedType }

func (n *FullySpecifiedType) Children() []Node {
	var cs []Node
	if n.Qualifier != nil {
		cs = append(cs, n.Qualifier)
	}
	if n.Specifier != nil {
		cs = append(cs, n.Specifier)
	}
	return cs
}

func (n *FullySpecifiedType) ReplaceChild(old, new Node) bool {
	if n.Qualifier != nil && Node(n.Qualifier) == old {
		n.Qualifier = new.(*TypeQualifier)
		return true
	}
	if n.Specifier != nil && Node(n.Specifier) == old {
		n.Specifier = new.(*TypeSpecifier)
		return true
	}
	return false
}

func (n *FullySpecifiedType) CloneInto(target *Root) Node {
	var q *TypeQualifier
	if n.Qualifier != nil {
		q = n.Qualifier.CloneInto(target).(*TypeQualifier)
	}
	var s *TypeSpecifier
	if n.Specifier != nil {
		s = n.Specifier.CloneInto(target).(*TypeSpecifier)
	}
	return NewFullySpecifiedType(q, s)
}

func (n *FullySpecifiedType) Accept(v Visitor) { defaultAccept(n, v) }

// QualifierPartVariant distinguishes the ordered parts a TypeQualifier may
// hold: storage ("uniform"/"in"/"out"/"buffer"/…), layout, precision,
// interpolation, invariant, and precise.
type QualifierPartVariant int

const (
	QualStorage QualifierPartVariant = iota
	QualLayout
	QualPrecision
	QualInterpolation
	QualInvariant
	QualPrecise
)

// QualifierPart is one ordered entry of a TypeQualifier: either a bare
// keyword (Text, for storage/precision/interpolation/invariant/precise) or
// a LayoutQualifier.
type QualifierPart struct {
	base
	Variant QualifierPartVariant
	Text    string         // set when Variant != QualLayout
	Layout  *LayoutQualifier // set when Variant == QualLayout
}

func NewKeywordQualifierPart(variant QualifierPartVariant, text string) *QualifierPart {
	return &QualifierPart{Variant: variant, Text: text}
}

func NewLayoutQualifierPart(layout *LayoutQualifier) *QualifierPart {
	n := &QualifierPart{Variant: QualLayout}
	n.Layout = Setup[*LayoutQualifier](n, layout)
	return n
}

func (n *QualifierPart) Kind() Kind { return KindQualifierPart }

func (n *QualifierPart) Children() []Node {
	if n.Layout != nil {
		return []Node{n.Layout}
	}
	return nil
}

func (n *QualifierPart) ReplaceChild(old, new Node) bool {
	if n.Layout != nil && Node(n.Layout) == old {
		n.Layout = new.(*LayoutQualifier)
		return true
	}
	return false
}

func (n *QualifierPart) CloneInto(target *Root) Node {
	if n.Variant == QualLayout {
		return NewLayoutQualifierPart(n.Layout.CloneInto(target).(*LayoutQualifier))
	}
	return NewKeywordQualifierPart(n.Variant, n.Text)
}

func (n *QualifierPart) Accept(v Visitor) { defaultAccept(n, v) }

// TypeQualifier is the ordered list of qualifier parts preceding a type
// specifier, e.g. "uniform layout(location=0)" or "flat in".
type TypeQualifier struct {
	base
	Parts []*QualifierPart
}

func NewTypeQualifier(parts ...*QualifierPart) *TypeQualifier {
	n := &TypeQualifier{}
	for _, p := range parts {
		n.Parts = append(n.Parts, Setup[*QualifierPart](n, p))
	}
	return n
}

func (n *TypeQualifier) Kind() Kind { return KindTypeQualifier }

func (n *TypeQualifier) Children() []Node {
	cs := make([]Node, len(n.Parts))
	for i, p := range n.Parts {
		cs[i] = p
	}
	return cs
}

func (n *TypeQualifier) ReplaceChild(old, new Node) bool {
	for i, p := range n.Parts {
		if Node(p) == old {
			n.Parts[i] = new.(*QualifierPart)
			return true
		}
	}
	return false
}

func (n *TypeQualifier) RemoveChild(old Node) bool {
	for i, p := range n.Parts {
		if Node(p) == old {
			n.Parts = append(n.Parts[:i], n.Parts[i+1:]...)
			return true
		}
	}
	return false
}

// AppendPart appends a new qualifier part, attaching it if this qualifier
// is itself attached to a tree.
func (n *TypeQualifier) AppendPart(p *QualifierPart) {
	n.Parts = append(n.Parts, Setup[*QualifierPart](n, p))
}

// HasStorage reports whether any part is the named storage keyword, e.g.
// HasStorage("out").
func (n *TypeQualifier) HasStorage(keyword string) bool {
	for _, p := range n.Parts {
		if p.Variant == QualStorage && p.Text == keyword {
			return true
		}
	}
	return false
}

// LayoutPart returns the qualifier part wrapping a layout qualifier, if any.
func (n *TypeQualifier) LayoutPart() *LayoutQualifier {
	for _, p := range n.Parts {
		if p.Variant == QualLayout {
			return p.Layout
		}
	}
	return nil
}

func (n *TypeQualifier) CloneInto(target *Root) Node {
	parts := make([]*QualifierPart, 0, len(n.Parts))
	for _, p := range n.Parts {
		parts = append(parts, p.CloneInto(target).(*QualifierPart))
	}
	return NewTypeQualifier(parts...)
}

func (n *TypeQualifier) Accept(v Visitor) { defaultAccept(n, v) }

// LayoutPartVariant distinguishes the three shapes a single layout
// qualifier entry may take: a bare named identifier ("std140"), the
// "shared" keyword, or "name = expression" ("location = 4").
type LayoutPartVariant int

const (
	LayoutNamed LayoutPartVariant = iota
	LayoutShared
	LayoutExpressionValued
)

// LayoutQualifierPart is one entry inside layout(...).
type LayoutQualifierPart struct {
	base
	Variant LayoutPartVariant
	Name    *Identifier // nil only for LayoutShared
	Value   Expression  // set only for LayoutExpressionValued
}

func NewNamedLayoutPart(name *Identifier) *LayoutQualifierPart {
	n := &LayoutQualifierPart{Variant: LayoutNamed}
	n.Name = Setup[*Identifier](n, name)
	return n
}

func NewSharedLayoutPart() *LayoutQualifierPart {
	return &LayoutQualifierPart{Variant: LayoutShared}
}

func NewExpressionValuedLayoutPart(name *Identifier, value Expression) *LayoutQualifierPart {
	n := &LayoutQualifierPart{Variant: LayoutExpressionValued}
	n.Name = Setup[*Identifier](n, name)
	n.Value = Setup[Expression](n, value)
	return n
}

func (n *LayoutQualifierPart) Kind() Kind { return KindLayoutQualifierPart }

func (n *LayoutQualifierPart) Children() []Node {
	var cs []Node
	if n.Name != nil {
		cs = append(cs, n.Name)
	}
	if n.Value != nil {
		cs = append(cs, n.Value)
	}
	return cs
}

func (n *LayoutQualifierPart) ReplaceChild(old, new Node) bool {
	if n.Name != nil && Node(n.Name) == old {
		n.Name = new.(*Identifier)
		return true
	}
	if n.Value != nil && Node(n.Value) == old {
		n.Value = new.(Expression)
		return true
	}
	return false
}

func (n *LayoutQualifierPart) CloneInto(target *Root) Node {
	switch n.Variant {
	case LayoutShared:
		return NewSharedLayoutPart()
	case LayoutExpressionValued:
		return NewExpressionValuedLayoutPart(
			n.Name.CloneInto(target).(*Identifier),
			n.Value.CloneInto(target).(Expression),
		)
	default:
		return NewNamedLayoutPart(n.Name.CloneInto(target).(*Identifier))
	}
}

func (n *LayoutQualifierPart) Accept(v Visitor) { defaultAccept(n, v) }

// LayoutQualifier is the ordered, comma-separated part list inside
// layout(...).
type LayoutQualifier struct {
	base
	Parts []*LayoutQualifierPart
}

func NewLayoutQualifier(parts ...*LayoutQualifierPart) *LayoutQualifier {
	n := &LayoutQualifier{}
	for _, p := range parts {
		n.Parts = append(n.Parts, Setup[*LayoutQualifierPart](n, p))
	}
	return n
}

func (n *LayoutQualifier) Kind() Kind { return KindLayoutQualifier }

func (n *LayoutQualifier) Children() []Node {
	cs := make([]Node, len(n.Parts))
	for i, p := range n.Parts {
		cs[i] = p
	}
	return cs
}

func (n *LayoutQualifier) ReplaceChild(old, new Node) bool {
	for i, p := range n.Parts {
		if Node(p) == old {
			n.Parts[i] = new.(*LayoutQualifierPart)
			return true
		}
	}
	return false
}

func (n *LayoutQualifier) CloneInto(target *Root) Node {
	parts := make([]*LayoutQualifierPart, 0, len(n.Parts))
	for _, p := range n.Parts {
		parts = append(parts, p.CloneInto(target).(*LayoutQualifierPart))
	}
	return NewLayoutQualifier(parts...)
}

func (n *LayoutQualifier) Accept(v Visitor) { defaultAccept(n, v) }

// TypeSpecVariant distinguishes the shapes a TypeSpecifier may take.
type TypeSpecVariant int

const (
	TypeBuiltinNumeric TypeSpecVariant = iota
	TypeBuiltinFixed
	TypeStruct
	TypeReference
)

// ArraySpecifier models `[n]` (sized, Size set) or `[]` (unsized).
type ArraySpecifier struct {
	base
	Size Expression // nil for an unsized specifier
}

func NewArraySpecifier(size Expression) *ArraySpecifier {
	n := &ArraySpecifier{}
	if size != nil {
		n.Size = Setup[Expression](n, size)
	}
	return n
}

func (n *ArraySpecifier) Kind() Kind { return KindArraySpecifier }

func (n *ArraySpecifier) Children() []Node {
	if n.Size != nil {
		return []Node{n.Size}
	}
	return nil
}

func (n *ArraySpecifier) ReplaceChild(old, new Node) bool {
	if n.Size != nil && Node(n.Size) == old {
		n.Size = new.(Expression)
		return true
	}
	return false
}

func (n *ArraySpecifier) CloneInto(target *Root) Node {
	if n.Size == nil {
		return NewArraySpecifier(nil)
	}
	return NewArraySpecifier(n.Size.CloneInto(target).(Expression))
}

func (n *ArraySpecifier) Accept(v Visitor) { defaultAccept(n, v) }

// TypeSpecifier is a builtin numeric/fixed type name, a struct specifier,
// or a reference to a user-defined type name, plus an optional array
// specifier.
type TypeSpecifier struct {
	base
	Variant     TypeSpecVariant
	BuiltinName string           // set for TypeBuiltinNumeric/TypeBuiltinFixed
	Struct      *StructSpecifier // set for TypeStruct
	TypeName    *Identifier      // set for TypeReference
	Array       *ArraySpecifier  // optional
}

func NewBuiltinTypeSpecifier(variant TypeSpecVariant, name string) *TypeSpecifier {
	return &TypeSpecifier{Variant: variant, BuiltinName: name}
}

func NewStructTypeSpecifier(spec *StructSpecifier) *TypeSpecifier {
	n := &TypeSpecifier{Variant: TypeStruct}
	n.Struct = Setup[*StructSpecifier](n, spec)
	return n
}

func NewReferenceTypeSpecifier(name *Identifier) *TypeSpecifier {
	n := &TypeSpecifier{Variant: TypeReference}
	n.TypeName = Setup[*Identifier](n, name)
	return n
}

// WithArray returns n with its array specifier set, attaching it if n is
// already attached.
func (n *TypeSpecifier) WithArray(arr *ArraySpecifier) *TypeSpecifier {
	n.Array = Setup[*ArraySpecifier](n, arr)
	return n
}

func (n *TypeSpecifier) Kind() Kind { return KindTypeSpecifier }

func (n *TypeSpecifier) Children() []Node {
	var cs []Node
	switch n.Variant {
	case TypeStruct:
		cs = append(cs, n.Struct)
	case TypeReference:
		cs = append(cs, n.TypeName)
	}
	if n.Array != nil {
		cs = append(cs, n.Array)
	}
	return cs
}

func (n *TypeSpecifier) ReplaceChild(old, new Node) bool {
	if n.Variant == TypeStruct && Node(n.Struct) == old {
		n.Struct = new.(*StructSpecifier)
		return true
	}
	if n.Variant == TypeReference && Node(n.TypeName) == old {
		n.TypeName = new.(*Identifier)
		return true
	}
	if n.Array != nil && Node(n.Array) == old {
		n.Array = new.(*ArraySpecifier)
		return true
	}
	return false
}

func (n *TypeSpecifier) CloneInto(target *Root) Node {
	var clone *TypeSpecifier
	switch n.Variant {
	case TypeStruct:
		clone = NewStructTypeSpecifier(n.Struct.CloneInto(target).(*StructSpecifier))
	case TypeReference:
		clone = NewReferenceTypeSpecifier(n.TypeName.CloneInto(target).(*Identifier))
	default:
		clone = NewBuiltinTypeSpecifier(n.Variant, n.BuiltinName)
	}
	if n.Array != nil {
		clone = clone.WithArray(n.Array.CloneInto(target).(*ArraySpecifier))
	}
	return clone
}

func (n *TypeSpecifier) Accept(v Visitor) { defaultAccept(n, v) }

// StructFieldGroup is a (type, ordered members) pair inside a struct body.
// It is plain data, not a Node: struct fields index under the enclosing
// StructSpecifier rather than as independently-addressable tree positions;
// there is no separate node kind for it.
type StructFieldGroup struct {
	Type    *FullySpecifiedType
	Members []*DeclarationMember
}

// StructSpecifier is `struct Name? { fields... }`.
type StructSpecifier struct {
	base
	Name   *Identifier // optional
	Fields []*StructFieldGroup
}

func NewStructSpecifier(name *Identifier) *StructSpecifier {
	n := &StructSpecifier{}
	if name != nil {
		n.Name = Setup[*Identifier](n, name)
	}
	return n
}

// AddField appends one (type, members) field group, attaching its pieces
// under this struct specifier.
func (n *StructSpecifier) AddField(typ *FullySpecifiedType, members ...*DeclarationMember) {
	g := &StructFieldGroup{Type: Setup[*FullySpecifiedType](n, typ)}
	for _, m := range members {
		g.Members = append(g.Members, Setup[*DeclarationMember](n, m))
	}
	n.Fields = append(n.Fields, g)
}

func (n *StructSpecifier) Kind() Kind { return KindStructSpecifier }

func (n *StructSpecifier) Children() []Node {
	var cs []Node
	if n.Name != nil {
		cs = append(cs, n.Name)
	}
	for _, g := range n.Fields {
		cs = append(cs, g.Type)
		for _, m := range g.Members {
			cs = append(cs, m)
		}
	}
	return cs
}

func (n *StructSpecifier) ReplaceChild(old, new Node) bool {
	if n.Name != nil && Node(n.Name) == old {
		n.Name = new.(*Identifier)
		return true
	}
	for _, g := range n.Fields {
		if Node(g.Type) == old {
			g.Type = new.(*FullySpecifiedType)
			return true
		}
		for i, m := range g.Members {
			if Node(m) == old {
				g.Members[i] = new.(*DeclarationMember)
				return true
			}
		}
	}
	return false
}

func (n *StructSpecifier) CloneInto(target *Root) Node {
	var name *Identifier
	if n.Name != nil {
		name = n.Name.CloneInto(target).(*Identifier)
	}
	clone := NewStructSpecifier(name)
	for _, g := range n.Fields {
		members := make([]*DeclarationMember, len(g.Members))
		for i, m := range g.Members {
			members[i] = m.CloneInto(target).(*DeclarationMember)
		}
		clone.AddField(g.Type.CloneInto(target).(*FullySpecifiedType), members...)
	}
	return clone
}

func (n *StructSpecifier) Accept(v Visitor) { defaultAccept(n, v) }

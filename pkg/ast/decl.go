package ast

// Declaration is the interface every declaration-family node implements.
// Declarations appear either wrapped in an ExternalDeclaration at top
// level, or wrapped in a DeclarationStatement inside a function body.
type Declaration interface {
	Node
	isDeclaration()
}

// DeclarationMember is one comma-separated declarator within a
// TypeAndInitDeclaration or a struct field group: a name, an optional
// array specifier, and an optional initializer.
type DeclarationMember struct {
	base
	Name        *Identifier
	Array       *ArraySpecifier // optional
	Initializer Expression      // optional
}

func NewDeclarationMember(name *Identifier) *DeclarationMember {
	n := &DeclarationMember{}
	n.Name = Setup[*Identifier](n, name)
	return n
}

// WithArray attaches an array specifier to this member.
func (n *DeclarationMember) WithArray(arr *ArraySpecifier) *DeclarationMember {
	n.Array = Setup[*ArraySpecifier](n, arr)
	return n
}

// WithInitializer attaches an initializer expression to this member.
func (n *DeclarationMember) WithInitializer(init Expression) *DeclarationMember {
	n.Initializer = Setup[Expression](n, init)
	return n
}

func (n *DeclarationMember) Kind() Kind { return KindDeclarationMember }
func (n *DeclarationMember) Children() []Node {
	cs := []Node{n.Name}
	if n.Array != nil {
		cs = append(cs, n.Array)
	}
	if n.Initializer != nil {
		cs = append(cs, n.Initializer)
	}
	return cs
}
func (n *DeclarationMember) ReplaceChild(old, new Node) bool {
	switch {
	case Node(n.Name) == old:
		n.Name = new.(*Identifier)
		return true
	case n.Array != nil && Node(n.Array) == old:
		n.Array = new.(*ArraySpecifier)
		return true
	case n.Initializer != nil && Node(n.Initializer) == old:
		n.Initializer = new.(Expression)
		return true
	}
	return false
}
func (n *DeclarationMember) CloneInto(target *Root) Node {
	clone := NewDeclarationMember(n.Name.CloneInto(target).(*Identifier))
	if n.Array != nil {
		clone = clone.WithArray(n.Array.CloneInto(target).(*ArraySpecifier))
	}
	if n.Initializer != nil {
		clone = clone.WithInitializer(n.Initializer.CloneInto(target).(Expression))
	}
	return clone
}
func (n *DeclarationMember) Accept(v Visitor) { defaultAccept(n, v) }

// TypeAndInitDeclaration is `type member, member, ...;`, e.g.
// `uniform float a, b;` or `out vec3 outColor0;`.
type TypeAndInitDeclaration struct {
	base
	Type    *FullySpecifiedType
	Members []*DeclarationMember
}

func NewTypeAndInitDeclaration(typ *FullySpecifiedType, members ...*DeclarationMember) *TypeAndInitDeclaration {
	n := &TypeAndInitDeclaration{}
	n.Type = Setup[*FullySpecifiedType](n, typ)
	for _, m := range members {
		n.Members = append(n.Members, Setup[*DeclarationMember](n, m))
	}
	return n
}

func (n *TypeAndInitDeclaration) Kind() Kind      { return KindTypeAndInitDeclaration }
func (n *TypeAndInitDeclaration) isDeclaration()  {}
func (n *TypeAndInitDeclaration) Children() []Node {
	cs := make([]Node, 0, len(n.Members)+1)
	cs = append(cs, n.Type)
	for _, m := range n.Members {
		cs = append(cs, m)
	}
	return cs
}
func (n *TypeAndInitDeclaration) ReplaceChild(old, new Node) bool {
	if Node(n.Type) == old {
		n.Type = new.(*FullySpecifiedType)
		return true
	}
	for i, m := range n.Members {
		if Node(m) == old {
			n.Members[i] = new.(*DeclarationMember)
			return true
		}
	}
	return false
}
func (n *TypeAndInitDeclaration) RemoveChild(old Node) bool {
	for i, m := range n.Members {
		if Node(m) == old {
			n.Members = append(n.Members[:i], n.Members[i+1:]...)
			return true
		}
	}
	return false
}

// AppendMember appends a declaration member, attaching it if this
// declaration is attached.
func (n *TypeAndInitDeclaration) AppendMember(m *DeclarationMember) {
	n.Members = append(n.Members, Setup[*DeclarationMember](n, m))
}

// Names returns the spellings of every member declared here, in order.
func (n *TypeAndInitDeclaration) Names() []string {
	names := make([]string, len(n.Members))
	for i, m := range n.Members {
		names[i] = m.Name.Name()
	}
	return names
}

func (n *TypeAndInitDeclaration) CloneInto(target *Root) Node {
	members := make([]*DeclarationMember, len(n.Members))
	for i, m := range n.Members {
		members[i] = m.CloneInto(target).(*DeclarationMember)
	}
	return NewTypeAndInitDeclaration(n.Type.CloneInto(target).(*FullySpecifiedType), members...)
}
func (n *TypeAndInitDeclaration) Accept(v Visitor) { defaultAccept(n, v) }

// InterfaceBlockDeclaration is a named interface block:
// `qualifier Name { struct-body } instanceName?[]?;`, e.g.
// `uniform UniformBlock { float a; float b; };`.
type InterfaceBlockDeclaration struct {
	base
	Qualifier    *TypeQualifier
	BlockName    *Identifier
	Body         *StructSpecifier
	InstanceName *Identifier     // optional
	Array        *ArraySpecifier // optional, only meaningful with InstanceName
}

func NewInterfaceBlockDeclaration(qualifier *TypeQualifier, blockName *Identifier, body *StructSpecifier) *InterfaceBlockDeclaration {
	n := &InterfaceBlockDeclaration{}
	n.Qualifier = Setup[*TypeQualifier](n, qualifier)
	n.BlockName = Setup[*Identifier](n, blockName)
	n.Body = Setup[*StructSpecifier](n, body)
	return n
}

// WithInstance attaches an optional instance name (and array specifier) to
// the block.
func (n *InterfaceBlockDeclaration) WithInstance(name *Identifier, array *ArraySpecifier) *InterfaceBlockDeclaration {
	n.InstanceName = Setup[*Identifier](n, name)
	if array != nil {
		n.Array = Setup[*ArraySpecifier](n, array)
	}
	return n
}

func (n *InterfaceBlockDeclaration) Kind() Kind     { return KindInterfaceBlockDeclaration }
func (n *InterfaceBlockDeclaration) isDeclaration() {}
func (n *InterfaceBlockDeclaration) Children() []Node {
	cs := []Node{n.Qualifier, n.BlockName, n.Body}
	if n.InstanceName != nil {
		cs = append(cs, n.InstanceName)
	}
	if n.Array != nil {
		cs = append(cs, n.Array)
	}
	return cs
}
func (n *InterfaceBlockDeclaration) ReplaceChild(old, new Node) bool {
	switch {
	case Node(n.Qualifier) == old:
		n.Qualifier = new.(*TypeQualifier)
		return true
	case Node(n.BlockName) == old:
		n.BlockName = new.(*Identifier)
		return true
	case Node(n.Body) == old:
		n.Body = new.(*StructSpecifier)
		return true
	case n.InstanceName != nil && Node(n.InstanceName) == old:
		n.InstanceName = new.(*Identifier)
		return true
	case n.Array != nil && Node(n.Array) == old:
		n.Array = new.(*ArraySpecifier)
		return true
	}
	return false
}
func (n *InterfaceBlockDeclaration) CloneInto(target *Root) Node {
	clone := NewInterfaceBlockDeclaration(
		n.Qualifier.CloneInto(target).(*TypeQualifier),
		n.BlockName.CloneInto(target).(*Identifier),
		n.Body.CloneInto(target).(*StructSpecifier),
	)
	if n.InstanceName != nil {
		var arr *ArraySpecifier
		if n.Array != nil {
			arr = n.Array.CloneInto(target).(*ArraySpecifier)
		}
		clone = clone.WithInstance(n.InstanceName.CloneInto(target).(*Identifier), arr)
	}
	return clone
}
func (n *InterfaceBlockDeclaration) Accept(v Visitor) { defaultAccept(n, v) }

// FunctionDeclaration is a function prototype or definition's header:
// `returnType name(params...)`. When it appears standalone (no body) it is
// a prototype; FunctionDefinition wraps it together with a body.
type FunctionDeclaration struct {
	base
	ReturnType *FullySpecifiedType
	Name       *Identifier
	Params     []*Parameter
}

// Parameter is one function parameter: a type and an optional name (GLSL
// allows unnamed parameters in prototypes).
type Parameter struct {
	base
	Type *FullySpecifiedType
	Name *Identifier // optional
}

func NewParameter(typ *FullySpecifiedType, name *Identifier) *Parameter {
	n := &Parameter{}
	n.Type = Setup[*FullySpecifiedType](n, typ)
	if name != nil {
		n.Name = Setup[*Identifier](n, name)
	}
	return n
}

func (n *Parameter) Kind() Kind { return KindTypeAndInitDeclaration } // shares shape; not separately indexed by spec
func (n *Parameter) Children() []Node {
	cs := []Node{n.Type}
	if n.Name != nil {
		cs = append(cs, n.Name)
	}
	return cs
}
func (n *Parameter) ReplaceChild(old, new Node) bool {
	if Node(n.Type) == old {
		n.Type = new.(*FullySpecifiedType)
		return true
	}
	if n.Name != nil && Node(n.Name) == old {
		n.Name = new.(*Identifier)
		return true
	}
	return false
}
func (n *Parameter) CloneInto(target *Root) Node {
	var name *Identifier
	if n.Name != nil {
		name = n.Name.CloneInto(target).(*Identifier)
	}
	return NewParameter(n.Type.CloneInto(target).(*FullySpecifiedType), name)
}
func (n *Parameter) Accept(v Visitor) { defaultAccept(n, v) }

func NewFunctionDeclaration(returnType *FullySpecifiedType, name *Identifier, params ...*Parameter) *FunctionDeclaration {
	n := &FunctionDeclaration{}
	n.ReturnType = Setup[*FullySpecifiedType](n, returnType)
	n.Name = Setup[*Identifier](n, name)
	for _, p := range params {
		n.Params = append(n.Params, Setup[*Parameter](n, p))
	}
	return n
}

func (n *FunctionDeclaration) Kind() Kind     { return KindFunctionDeclaration }
func (n *FunctionDeclaration) isDeclaration() {}
func (n *FunctionDeclaration) Children() []Node {
	cs := make([]Node, 0, len(n.Params)+2)
	cs = append(cs, n.ReturnType, n.Name)
	for _, p := range n.Params {
		cs = append(cs, p)
	}
	return cs
}
func (n *FunctionDeclaration) ReplaceChild(old, new Node) bool {
	switch {
	case Node(n.ReturnType) == old:
		n.ReturnType = new.(*FullySpecifiedType)
		return true
	case Node(n.Name) == old:
		n.Name = new.(*Identifier)
		return true
	}
	for i, p := range n.Params {
		if Node(p) == old {
			n.Params[i] = new.(*Parameter)
			return true
		}
	}
	return false
}
func (n *FunctionDeclaration) CloneInto(target *Root) Node {
	params := make([]*Parameter, len(n.Params))
	for i, p := range n.Params {
		params[i] = p.CloneInto(target).(*Parameter)
	}
	return NewFunctionDeclaration(n.ReturnType.CloneInto(target).(*FullySpecifiedType), n.Name.CloneInto(target).(*Identifier), params...)
}
func (n *FunctionDeclaration) Accept(v Visitor) { defaultAccept(n, v) }

// PrecisionDeclaration is `precision qualifier type;`.
type PrecisionDeclaration struct {
	base
	Precision string // "lowp" | "mediump" | "highp"
	Type      *TypeSpecifier
}

func NewPrecisionDeclaration(precision string, typ *TypeSpecifier) *PrecisionDeclaration {
	n := &PrecisionDeclaration{Precision: precision}
	n.Type = Setup[*TypeSpecifier](n, typ)
	return n
}

func (n *PrecisionDeclaration) Kind() Kind       { return KindPrecisionDeclaration }
func (n *PrecisionDeclaration) isDeclaration()   {}
func (n *PrecisionDeclaration) Children() []Node { return []Node{n.Type} }
func (n *PrecisionDeclaration) ReplaceChild(old, new Node) bool {
	if Node(n.Type) == old {
		n.Type = new.(*TypeSpecifier)
		return true
	}
	return false
}
func (n *PrecisionDeclaration) CloneInto(target *Root) Node {
	return NewPrecisionDeclaration(n.Precision, n.Type.CloneInto(target).(*TypeSpecifier))
}
func (n *PrecisionDeclaration) Accept(v Visitor) { defaultAccept(n, v) }

// EmptyDeclaration is a bare `;` at declaration position.
type EmptyDeclaration struct{ base }

func NewEmptyDeclaration() *EmptyDeclaration { return &EmptyDeclaration{} }

func (n *EmptyDeclaration) Kind() Kind                     { return KindEmptyDeclaration }
func (n *EmptyDeclaration) isDeclaration()                 {}
func (n *EmptyDeclaration) Children() []Node               { return nil }
func (n *EmptyDeclaration) ReplaceChild(old, new Node) bool { return false }
func (n *EmptyDeclaration) CloneInto(target *Root) Node     { return NewEmptyDeclaration() }
func (n *EmptyDeclaration) Accept(v Visitor)                { defaultAccept(n, v) }

// ---------------------------------------------------------------------------
// External declarations (top-level children of a TranslationUnit)
// ---------------------------------------------------------------------------

// ExternalDeclaration is the interface every top-level-construct node
// implements.
type ExternalDeclaration interface {
	Node
	isExternalDeclaration()
}

// DeclarationExternal wraps a Declaration at top level, e.g. a top-level
// `uniform float a;` or an interface block.
type DeclarationExternal struct {
	base
	Decl Declaration
}

func NewDeclarationExternal(decl Declaration) *DeclarationExternal {
	n := &DeclarationExternal{}
	n.Decl = Setup[Declaration](n, decl)
	return n
}

func (n *DeclarationExternal) Kind() Kind              { return KindDeclarationExternal }
func (n *DeclarationExternal) isExternalDeclaration()  {}
func (n *DeclarationExternal) Children() []Node        { return []Node{n.Decl} }
func (n *DeclarationExternal) ReplaceChild(old, new Node) bool {
	if Node(n.Decl) == old {
		n.Decl = new.(Declaration)
		return true
	}
	return false
}
func (n *DeclarationExternal) CloneInto(target *Root) Node {
	return NewDeclarationExternal(n.Decl.CloneInto(target).(Declaration))
}
func (n *DeclarationExternal) Accept(v Visitor) { defaultAccept(n, v) }

// FunctionDefinition is a FunctionDeclaration plus a body.
type FunctionDefinition struct {
	base
	Header *FunctionDeclaration
	Body   *CompoundStatement
}

func NewFunctionDefinition(header *FunctionDeclaration, body *CompoundStatement) *FunctionDefinition {
	n := &FunctionDefinition{}
	n.Header = Setup[*FunctionDeclaration](n, header)
	n.Body = Setup[*CompoundStatement](n, body)
	return n
}

func (n *FunctionDefinition) Kind() Kind             { return KindFunctionDefinition }
func (n *FunctionDefinition) isExternalDeclaration() {}
func (n *FunctionDefinition) Children() []Node       { return []Node{n.Header, n.Body} }
func (n *FunctionDefinition) ReplaceChild(old, new Node) bool {
	switch {
	case Node(n.Header) == old:
		n.Header = new.(*FunctionDeclaration)
		return true
	case Node(n.Body) == old:
		n.Body = new.(*CompoundStatement)
		return true
	}
	return false
}
func (n *FunctionDefinition) CloneInto(target *Root) Node {
	return NewFunctionDefinition(n.Header.CloneInto(target).(*FunctionDeclaration), n.Body.CloneInto(target).(*CompoundStatement))
}
func (n *FunctionDefinition) Accept(v Visitor) { defaultAccept(n, v) }

// Name returns the defined function's name, a convenience used by
// END_OF_FUNCTION_BODY/BEFORE_FUNCTION_BODY injection point lookups.
func (n *FunctionDefinition) Name() string { return n.Header.Name.Name() }

// LayoutDefaults is `layout(...) qualifier;` at top level, e.g.
// `layout(std140) uniform;`, setting defaults for subsequent declarations.
type LayoutDefaults struct {
	base
	Layout    *LayoutQualifier
	Qualifier string // storage keyword the defaults apply to
}

func NewLayoutDefaults(layout *LayoutQualifier, qualifier string) *LayoutDefaults {
	n := &LayoutDefaults{Qualifier: qualifier}
	n.Layout = Setup[*LayoutQualifier](n, layout)
	return n
}

func (n *LayoutDefaults) Kind() Kind             { return KindLayoutDefaults }
func (n *LayoutDefaults) isExternalDeclaration() {}
func (n *LayoutDefaults) Children() []Node       { return []Node{n.Layout} }
func (n *LayoutDefaults) ReplaceChild(old, new Node) bool {
	if Node(n.Layout) == old {
		n.Layout = new.(*LayoutQualifier)
		return true
	}
	return false
}
func (n *LayoutDefaults) CloneInto(target *Root) Node {
	return NewLayoutDefaults(n.Layout.CloneInto(target).(*LayoutQualifier), n.Qualifier)
}
func (n *LayoutDefaults) Accept(v Visitor) { defaultAccept(n, v) }

// Pragma is `#pragma text`.
type Pragma struct {
	base
	Text string
}

func NewPragma(text string) *Pragma { return &Pragma{Text: text} }

func (n *Pragma) Kind() Kind                     { return KindPragma }
func (n *Pragma) isExternalDeclaration()         {}
func (n *Pragma) Children() []Node               { return nil }
func (n *Pragma) ReplaceChild(old, new Node) bool { return false }
func (n *Pragma) CloneInto(target *Root) Node     { return NewPragma(n.Text) }
func (n *Pragma) Accept(v Visitor)                { defaultAccept(n, v) }

// ExtensionDirective is `#extension name : behavior`.
type ExtensionDirective struct {
	base
	Name     string
	Behavior string
}

func NewExtensionDirective(name, behavior string) *ExtensionDirective {
	return &ExtensionDirective{Name: name, Behavior: behavior}
}

func (n *ExtensionDirective) Kind() Kind                     { return KindExtensionDirective }
func (n *ExtensionDirective) isExternalDeclaration()         {}
func (n *ExtensionDirective) Children() []Node               { return nil }
func (n *ExtensionDirective) ReplaceChild(old, new Node) bool { return false }
func (n *ExtensionDirective) CloneInto(target *Root) Node {
	return NewExtensionDirective(n.Name, n.Behavior)
}
func (n *ExtensionDirective) Accept(v Visitor) { defaultAccept(n, v) }

// EmptyDeclarationExternal is a bare top-level `;`.
type EmptyDeclarationExternal struct{ base }

func NewEmptyDeclarationExternal() *EmptyDeclarationExternal { return &EmptyDeclarationExternal{} }

func (n *EmptyDeclarationExternal) Kind() Kind                     { return KindEmptyDeclarationExternal }
func (n *EmptyDeclarationExternal) isExternalDeclaration()         {}
func (n *EmptyDeclarationExternal) Children() []Node               { return nil }
func (n *EmptyDeclarationExternal) ReplaceChild(old, new Node) bool { return false }
func (n *EmptyDeclarationExternal) CloneInto(target *Root) Node {
	return NewEmptyDeclarationExternal()
}
func (n *EmptyDeclarationExternal) Accept(v Visitor) { defaultAccept(n, v) }

// VersionStatement is `#version number profile?`. It is also reachable as
// TranslationUnit.Version (a dedicated slot, since there can be at most
// one, always first) rather than generally living in the external
// declaration sequence; this type exists so the same node shape can be
// used if a phase needs to treat it generically as an ExternalDeclaration
// (e.g. to relocate it).
type VersionStatement struct {
	base
	Number  int
	Profile string // "" | "core" | "compatibility" | "es"
}

func NewVersionStatement(number int, profile string) *VersionStatement {
	return &VersionStatement{Number: number, Profile: profile}
}

func (n *VersionStatement) Kind() Kind                     { return KindVersionStatement }
func (n *VersionStatement) isExternalDeclaration()         {}
func (n *VersionStatement) Children() []Node               { return nil }
func (n *VersionStatement) ReplaceChild(old, new Node) bool { return false }
func (n *VersionStatement) CloneInto(target *Root) Node {
	return NewVersionStatement(n.Number, n.Profile)
}
func (n *VersionStatement) Accept(v Visitor) { defaultAccept(n, v) }

// ---------------------------------------------------------------------------
// TranslationUnit
// ---------------------------------------------------------------------------

// TranslationUnit is the root of a parsed GLSL source file: an optional
// version statement followed by an ordered sequence of external
// declarations.
type TranslationUnit struct {
	base
	Version *VersionStatement // optional
	Decls   []ExternalDeclaration

	// TrailingTrivia holds hidden-channel text (whitespace/comments) that
	// followed the last external declaration, up to EOF. It has no
	// grammatical meaning and is never indexed; the printer emits it
	// verbatim after the last declaration. pkg/glslparse does not fill it,
	// so it is empty unless set through SetTrailingTrivia, and a parsed
	// file's trailing comments are not reproduced on output.
	TrailingTrivia string
}

// SetTrailingTrivia records EOF-adjacent hidden-channel text for the
// printer to reproduce on output.
func (n *TranslationUnit) SetTrailingTrivia(s string) { n.TrailingTrivia = s }

// NewTranslationUnit creates a TranslationUnit attached to root (a fresh
// Root is created if root is nil).
func NewTranslationUnit(root *Root) *TranslationUnit {
	if root == nil {
		root = NewRoot(PolicyExact)
	}
	n := &TranslationUnit{}
	n.setRoot(root)
	root.setTranslationUnit(n)
	root.register(n)
	return n
}

// SetVersion attaches (or replaces) the version statement.
func (n *TranslationUnit) SetVersion(v *VersionStatement) {
	if n.Version != nil {
		detachSubtree(n.Root(), n.Version)
	}
	n.Version = v
	if v != nil {
		Setup[*VersionStatement](n, v)
	}
}

// Append adds an external declaration at the end of the top-level sequence.
func (n *TranslationUnit) Append(decl ExternalDeclaration) {
	n.Decls = append(n.Decls, Setup[ExternalDeclaration](n, decl))
}

// InsertAt inserts decl at position i (0 <= i <= len(Decls)) of the
// top-level sequence.
func (n *TranslationUnit) InsertAt(i int, decl ExternalDeclaration) {
	attached := Setup[ExternalDeclaration](n, decl)
	n.Decls = append(n.Decls, nil)
	copy(n.Decls[i+1:], n.Decls[i:])
	n.Decls[i] = attached
}

func (n *TranslationUnit) Kind() Kind { return KindTranslationUnit }

func (n *TranslationUnit) Children() []Node {
	cs := make([]Node, 0, len(n.Decls)+1)
	if n.Version != nil {
		cs = append(cs, n.Version)
	}
	for _, d := range n.Decls {
		cs = append(cs, d)
	}
	return cs
}

func (n *TranslationUnit) ReplaceChild(old, new Node) bool {
	if n.Version != nil && Node(n.Version) == old {
		n.Version = new.(*VersionStatement)
		return true
	}
	for i, d := range n.Decls {
		if Node(d) == old {
			n.Decls[i] = new.(ExternalDeclaration)
			return true
		}
	}
	return false
}

func (n *TranslationUnit) RemoveChild(old Node) bool {
	if n.Version != nil && Node(n.Version) == old {
		n.Version = nil
		return true
	}
	for i, d := range n.Decls {
		if Node(d) == old {
			n.Decls = append(n.Decls[:i], n.Decls[i+1:]...)
			return true
		}
	}
	return false
}

func (n *TranslationUnit) CloneInto(target *Root) Node {
	clone := NewTranslationUnit(target)
	if n.Version != nil {
		clone.SetVersion(n.Version.CloneInto(target).(*VersionStatement))
	}
	for _, d := range n.Decls {
		clone.Append(d.CloneInto(target).(ExternalDeclaration))
	}
	clone.TrailingTrivia = n.TrailingTrivia
	return clone
}

func (n *TranslationUnit) Accept(v Visitor) { defaultAccept(n, v) }

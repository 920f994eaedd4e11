package ast

// Identifier is a mutable name string. Its current spelling is the key it
// is indexed under in its Root's identifier index (invariant I3): renaming
// goes through SetName so the index is kept in sync.
type Identifier struct {
	base
	name string
}

// NewIdentifier creates a detached Identifier with the given spelling.
func NewIdentifier(name string) *Identifier {
	return &Identifier{name: name}
}

func (n *Identifier) Kind() Kind { return KindIdentifier }

// Name returns the identifier's current spelling.
func (n *Identifier) Name() string { return n.name }

// SetName renames the identifier, unregistering it under the old spelling
// and registering it under the new one in its Root's identifier index (if
// attached). This is the only mutation path that must preserve I3. If n has
// a nearest enclosing ExternalDeclaration, that declaration's entry in the
// external-declaration index is moved from the old name to the new one too,
// the same way applyRegister/applyUnregister key it.
func (n *Identifier) SetName(name string) {
	if n.name == name {
		return
	}
	if r := n.Root(); r != nil {
		ed := nearestExternalDeclaration(n)
		r.identifierIndex.remove(n.name, n)
		if ed != nil {
			r.externalDeclIndex.remove(n.name, ed)
		}
		n.name = name
		r.identifierIndex.add(n.name, n)
		if ed != nil {
			r.externalDeclIndex.add(n.name, ed)
		}
		return
	}
	n.name = name
}

func (n *Identifier) Children() []Node { return nil }

func (n *Identifier) ReplaceChild(old, new Node) bool { return false }

func (n *Identifier) CloneInto(target *Root) Node {
	return NewIdentifier(n.name)
}

func (n *Identifier) Accept(v Visitor) { defaultAccept(n, v) }

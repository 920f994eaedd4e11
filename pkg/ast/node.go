package ast

// Node is the capability set every AST node variant implements:
// enter/exit-able by a visitor, clonable into another tree, and linked to
// its parent and the Root owning its tree.
type Node interface {
	Kind() Kind
	Parent() Node
	SetParent(p Node)
	DetachParent()
	Root() *Root
	setRoot(r *Root)

	// Children returns this node's direct children in declaration order.
	// List nodes return their whole ordered sequence; inner nodes return
	// their fixed, non-nil child slots.
	Children() []Node

	// ReplaceChild atomically swaps old for new in whichever child slot
	// currently holds old. Returns false if old is not a direct child.
	// Implementations do not touch parent/root links or indices; callers
	// use UpdateParents for that.
	ReplaceChild(old, new Node) bool

	// CloneInto produces a deep, unattached copy of this subtree. Copied
	// Identifier and index-able nodes are registered with target once the
	// copy is attached via Setup.
	CloneInto(target *Root) Node

	// Accept drives a depth-first visit of this subtree.
	Accept(v Visitor)
}

// Visitor receives Enter/Exit callbacks for every node in a depth-first
// walk. Exit is always called, even if Enter returns false to skip the
// subtree's children.
type Visitor interface {
	Enter(n Node) bool
	Exit(n Node)
}

// base is embedded by every concrete node type to provide parent/root
// bookkeeping without repeating it per variant.
type base struct {
	parent Node
	root   *Root
}

func (b *base) Parent() Node       { return b.parent }
func (b *base) SetParent(p Node)   { b.parent = p }
func (b *base) DetachParent()      { b.parent = nil }
func (b *base) Root() *Root        { return b.root }
func (b *base) setRoot(r *Root)    { b.root = r }

// Setup installs child under parent: it sets child's parent pointer and,
// if parent is attached to a Root, registers child's whole subtree with
// that Root. It returns child so constructors can chain
// (e.g. `n.Then = Setup(n, stmt)`).
func Setup[T Node](parent Node, child T) T {
	child.SetParent(parent)
	if parent != nil {
		if r := parent.Root(); r != nil {
			attachSubtree(r, child)
			return child
		}
	}
	return child
}

// attachSubtree sets root on every node in the subtree rooted at n and
// registers index-able nodes (Identifier, and every node by Kind) with r.
func attachSubtree(r *Root, n Node) {
	if n == nil {
		return
	}
	n.setRoot(r)
	r.register(n)
	for _, c := range n.Children() {
		attachSubtree(r, c)
	}
}

// detachSubtree clears root on every node in the subtree and deregisters
// index-able nodes from their former Root.
func detachSubtree(r *Root, n Node) {
	if n == nil {
		return
	}
	r.unregister(n)
	n.setRoot(nil)
	for _, c := range n.Children() {
		detachSubtree(r, c)
	}
}

// UpdateParents atomically replaces the child slot currently holding
// oldChild with newChild: it detaches+deregisters the old subtree, links
// and registers the new one, and rewires parent's slot via ReplaceChild.
func UpdateParents(parent Node, oldChild, newChild Node) bool {
	if !parent.ReplaceChild(oldChild, newChild) {
		return false
	}
	if r := parent.Root(); r != nil {
		detachSubtree(r, oldChild)
	}
	oldChild.SetParent(nil)
	newChild.SetParent(parent)
	if r := parent.Root(); r != nil {
		attachSubtree(r, newChild)
	}
	return true
}

// ReplaceBy replaces n within its parent's slot with other. n must have a
// parent.
func ReplaceBy(n, other Node) error {
	p := n.Parent()
	if p == nil {
		return newDetachmentViolation("cannot replace %s: node has no parent", n.Kind())
	}
	if !UpdateParents(p, n, other) {
		return newDetachmentViolation("cannot replace %s: not found in parent %s", n.Kind(), p.Kind())
	}
	return nil
}

// ReplaceByAndDelete is ReplaceBy followed by DetachAndDelete on n.
func ReplaceByAndDelete(n, other Node) error {
	p := n.Parent()
	if err := ReplaceBy(n, other); err != nil {
		return err
	}
	zeroNode(n, nil, nil)
	_ = p
	return nil
}

// DetachAndDelete removes n from its parent's child slot, deregisters its
// subtree from the Root, and zeroes n's parent/root so reuse is detectable.
func DetachAndDelete(n Node) error {
	p := n.Parent()
	if p == nil {
		return newDetachmentViolation("cannot detach %s: node has no parent", n.Kind())
	}
	r := n.Root()
	if !removeFromParent(p, n) {
		return newDetachmentViolation("cannot detach %s: not found in parent %s", n.Kind(), p.Kind())
	}
	if r != nil {
		detachSubtree(r, n)
	}
	zeroNode(n, nil, nil)
	return nil
}

// removeFromParent asks the parent to drop n from whichever slot holds it.
// For inner nodes with fixed slots this is a no-op replace-with-nil via a
// type-specific RemoveChild when available, otherwise it is unsupported.
func removeFromParent(parent, n Node) bool {
	if r, ok := parent.(interface{ RemoveChild(Node) bool }); ok {
		return r.RemoveChild(n)
	}
	return false
}

func zeroNode(n Node, _ Node, _ *Root) {
	n.SetParent(nil)
	n.setRoot(nil)
}

// AttachFragment registers n's whole subtree with root even though n has no
// parent, and is the counterpart to Setup for nodes that are not (yet) a
// child of anything: the result of a fresh ASTParser.parseExternalDeclaration/
// parseStatement/parseExpression call, or a Matcher/Template's compiled
// pattern tree. Per invariant I5 a node is indexed iff attached to its Root;
// a parentless fragment still counts as attached once this is called.
func AttachFragment(root *Root, n Node) Node {
	attachSubtree(root, n)
	return n
}

// GetAncestor returns the nearest strict ancestor of n with the given Kind,
// or nil if none exists.
func GetAncestor(n Node, kind Kind) Node {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Kind() == kind {
			return p
		}
	}
	return nil
}

// HasAncestor reports whether n has a strict ancestor of the given Kind.
func HasAncestor(n Node, kind Kind) bool {
	return GetAncestor(n, kind) != nil
}

// GetAncestorAt walks levelsUp strict-ancestor steps from n, then continues
// upward, skipping the first offset further ancestors that satisfy
// predicate (a nil predicate accepts every ancestor), and returns the next
// one that does. It is used by matchers to locate a
// contextual structural parent at a fixed depth with a skip-offset, e.g.
// "the nearest CompoundStatement above the third ancestor".
func GetAncestorAt(n Node, levelsUp, offset int, predicate func(Node) bool) Node {
	cur := n
	for i := 0; i < levelsUp; i++ {
		if cur.Parent() == nil {
			return nil
		}
		cur = cur.Parent()
	}
	skipped := 0
	for cur.Parent() != nil {
		cur = cur.Parent()
		if predicate == nil || predicate(cur) {
			if skipped >= offset {
				return cur
			}
			skipped++
		}
	}
	return nil
}

// Walk performs a depth-first traversal of n, invoking Accept.
func Walk(n Node, v Visitor) {
	if n == nil {
		return
	}
	n.Accept(v)
}

// defaultAccept is the Accept implementation shared by every concrete node:
// Enter, then children in order (unless Enter said to skip), then Exit.
func defaultAccept(n Node, v Visitor) {
	if v.Enter(n) {
		for _, c := range n.Children() {
			Walk(c, v)
		}
	}
	v.Exit(n)
}

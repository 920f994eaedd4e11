package ast

// IndexPolicy selects how a single Root index orders entries that share a
// key. PolicyExact preserves stable insertion order; PolicyUnordered does
// not (and is cheaper to mutate under heavy churn).
type IndexPolicy int

const (
	PolicyExact IndexPolicy = iota
	PolicyUnordered
)

// nodeSet is an insertion-ordered (or not, depending on the caller) set of
// nodes sharing one index key.
type nodeSet struct {
	order []Node
	idx   map[Node]int
}

func newNodeSet() *nodeSet { return &nodeSet{idx: make(map[Node]int)} }

func (s *nodeSet) add(n Node, ordered bool) {
	if _, ok := s.idx[n]; ok {
		return
	}
	s.idx[n] = len(s.order)
	s.order = append(s.order, n)
	_ = ordered // insertion is always append; ordered only affects remove
}

func (s *nodeSet) remove(n Node, ordered bool) {
	i, ok := s.idx[n]
	if !ok {
		return
	}
	last := len(s.order) - 1
	if ordered {
		s.order = append(s.order[:i], s.order[i+1:]...)
		for j := i; j <= last-1; j++ {
			s.idx[s.order[j]] = j
		}
	} else {
		s.order[i] = s.order[last]
		s.idx[s.order[i]] = i
		s.order = s.order[:last]
	}
	delete(s.idx, n)
}

func (s *nodeSet) items() []Node { return s.order }
func (s *nodeSet) len() int      { return len(s.order) }

// multimap is a key -> nodeSet index with a single ordering policy.
type multimap[K comparable] struct {
	policy IndexPolicy
	m      map[K]*nodeSet
}

func newMultimap[K comparable](policy IndexPolicy) *multimap[K] {
	return &multimap[K]{policy: policy, m: make(map[K]*nodeSet)}
}

func (mm *multimap[K]) add(k K, n Node) {
	s := mm.m[k]
	if s == nil {
		s = newNodeSet()
		mm.m[k] = s
	}
	s.add(n, mm.policy == PolicyExact)
}

func (mm *multimap[K]) remove(k K, n Node) {
	s := mm.m[k]
	if s == nil {
		return
	}
	s.remove(n, mm.policy == PolicyExact)
	if s.len() == 0 {
		delete(mm.m, k)
	}
}

func (mm *multimap[K]) get(k K) []Node {
	s := mm.m[k]
	if s == nil {
		return nil
	}
	out := make([]Node, len(s.items()))
	copy(out, s.items())
	return out
}

// pendingOp is one deferred register/unregister recorded during an index
// build session.
type pendingOp struct {
	isAdd bool
	n     Node
}

// Root is the per-tree index registry: an
// identifier index, a node-kind index, and an external-declaration-by-name
// index, each independently ordered per IndexPolicy, plus index build
// sessions that batch mutations for bulk clone+insert operations.
type Root struct {
	tu *TranslationUnit

	identifierIndex  *multimap[string]
	nodeIndex        *multimap[Kind]
	externalDeclIndex *multimap[string]

	sessionDepth int
	pending      []pendingOp
}

// NewRoot creates a Root using policy for all three indices.
func NewRoot(policy IndexPolicy) *Root {
	return NewRootWithPolicies(policy, policy, policy)
}

// NewRootWithPolicies creates a Root with independently chosen policies,
// matching the AST-builder's RootSupplier contract, which
// selects the identifier index, node index, and external-declaration index
// policies independently.
func NewRootWithPolicies(identifierPolicy, nodePolicy, externalDeclPolicy IndexPolicy) *Root {
	return &Root{
		identifierIndex:   newMultimap[string](identifierPolicy),
		nodeIndex:         newMultimap[Kind](nodePolicy),
		externalDeclIndex: newMultimap[string](externalDeclPolicy),
	}
}

func (r *Root) setTranslationUnit(tu *TranslationUnit) { r.tu = tu }

// TranslationUnit returns the tree's root node.
func (r *Root) TranslationUnit() *TranslationUnit { return r.tu }

// register indexes n itself (not its descendants; callers recurse via
// attachSubtree). It is a no-op while a build session queues it instead.
func (r *Root) register(n Node) {
	if r.sessionDepth > 0 {
		r.pending = append(r.pending, pendingOp{isAdd: true, n: n})
		return
	}
	r.applyRegister(n)
}

func (r *Root) unregister(n Node) {
	if r.sessionDepth > 0 {
		r.pending = append(r.pending, pendingOp{isAdd: false, n: n})
		return
	}
	r.applyUnregister(n)
}

func (r *Root) applyRegister(n Node) {
	r.nodeIndex.add(n.Kind(), n)
	if id, ok := n.(*Identifier); ok {
		r.identifierIndex.add(id.Name(), id)
		if ed := nearestExternalDeclaration(n); ed != nil {
			r.externalDeclIndex.add(id.Name(), ed)
		}
	}
}

func (r *Root) applyUnregister(n Node) {
	r.nodeIndex.remove(n.Kind(), n)
	if id, ok := n.(*Identifier); ok {
		r.identifierIndex.remove(id.Name(), id)
		if ed := nearestExternalDeclaration(n); ed != nil {
			r.externalDeclIndex.remove(id.Name(), ed)
		}
	}
}

// nearestExternalDeclaration walks n's strict ancestors looking for the
// nearest one implementing ExternalDeclaration. Identifiers inside a
// function body are indexed under the enclosing FunctionDefinition;
// identifiers with no such ancestor (e.g. in a parentless fragment) are not
// indexed by name in the external-declaration index.
func nearestExternalDeclaration(n Node) ExternalDeclaration {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if ed, ok := p.(ExternalDeclaration); ok {
			return ed
		}
	}
	return nil
}

// IndexBuildSession batches index mutations performed by body: inserts and
// removals are queued and applied, net, when body returns (including when
// it panics), rather than applied as each attach/detach happens. This is
// required for bulk clone+insert operations that would otherwise cause
// O(n²) index churn. Queries made inside body observe the pre-session
// state.
func (r *Root) IndexBuildSession(body func()) {
	r.sessionDepth++
	defer func() {
		r.sessionDepth--
		if r.sessionDepth == 0 {
			ops := r.pending
			r.pending = nil
			for _, op := range ops {
				if op.isAdd {
					r.applyRegister(op.n)
				} else {
					r.applyUnregister(op.n)
				}
			}
		}
	}()
	body()
}

// --- Identifier index accessors ---

// Identifiers returns every Identifier currently spelled name.
func (r *Root) Identifiers(name string) []*Identifier {
	nodes := r.identifierIndex.get(name)
	out := make([]*Identifier, len(nodes))
	for i, n := range nodes {
		out[i] = n.(*Identifier)
	}
	return out
}

// IdentifierOne returns an arbitrary Identifier spelled name, or a
// UniquenessViolationError if none exist.
func (r *Root) IdentifierOne(name string) (*Identifier, error) {
	ids := r.Identifiers(name)
	if len(ids) == 0 {
		return nil, newUniquenessViolation("no identifier named %q", name)
	}
	return ids[0], nil
}

// IdentifierUnique returns the Identifier spelled name, requiring there be
// exactly one.
func (r *Root) IdentifierUnique(name string) (*Identifier, error) {
	ids := r.Identifiers(name)
	if len(ids) != 1 {
		return nil, newUniquenessViolation("expected exactly one identifier named %q, found %d", name, len(ids))
	}
	return ids[0], nil
}

// IdentifierAncestors returns, for every Identifier spelled name, its
// nearest unique ancestor of the given Kind (duplicates collapsed).
func (r *Root) IdentifierAncestors(name string, kind Kind) []Node {
	seen := make(map[Node]bool)
	var out []Node
	for _, id := range r.Identifiers(name) {
		if anc := GetAncestor(id, kind); anc != nil && !seen[anc] {
			seen[anc] = true
			out = append(out, anc)
		}
	}
	return out
}

// --- Node-by-kind index accessors ---

// NodesOfKind returns every attached node of the given Kind.
func (r *Root) NodesOfKind(kind Kind) []Node {
	return r.nodeIndex.get(kind)
}

// NodeOfKindOne returns an arbitrary node of the given Kind.
func (r *Root) NodeOfKindOne(kind Kind) (Node, error) {
	nodes := r.NodesOfKind(kind)
	if len(nodes) == 0 {
		return nil, newUniquenessViolation("no node of kind %s", kind)
	}
	return nodes[0], nil
}

// NodeOfKindUnique returns the single node of the given Kind, requiring
// there be exactly one.
func (r *Root) NodeOfKindUnique(kind Kind) (Node, error) {
	nodes := r.NodesOfKind(kind)
	if len(nodes) != 1 {
		return nil, newUniquenessViolation("expected exactly one node of kind %s, found %d", kind, len(nodes))
	}
	return nodes[0], nil
}

// --- External-declaration index accessors ---

// ExternalDeclEntry pairs a declared name with the external declaration
// that declares or contains it.
type ExternalDeclEntry struct {
	Name string
	Decl ExternalDeclaration
}

// ExternalDeclarationsNamed returns every external declaration that
// declares or contains name (e.g. a top-level uniform, or the function
// definition that declares it), paired with the queried name.
func (r *Root) ExternalDeclarationsNamed(name string) []ExternalDeclEntry {
	nodes := r.externalDeclIndex.get(name)
	out := make([]ExternalDeclEntry, len(nodes))
	for i, n := range nodes {
		out[i] = ExternalDeclEntry{Name: name, Decl: n.(ExternalDeclaration)}
	}
	return out
}

// Verify checks invariants I1-I4 over the whole tree (parent links, root
// links, and the keys of the identifier and node-kind indices) and returns
// an IndexInvariantError describing the first violation found, or nil. I5
// (indexed iff attached) is not checked. It is
// meant for tests, not production hot paths.
func (r *Root) Verify() error {
	if r.tu == nil {
		return nil
	}
	var err error
	var walk func(n Node)
	walk = func(n Node) {
		if err != nil {
			return
		}
		for _, c := range n.Children() {
			if c == nil {
				continue
			}
			if c.Parent() != n {
				err = newIndexInvariantBroken("%s's child %s has parent %v, want %v", n.Kind(), c.Kind(), c.Parent(), n)
				return
			}
			if c.Root() != r {
				err = newIndexInvariantBroken("%s's child %s has root %p, want %p", n.Kind(), c.Kind(), c.Root(), r)
				return
			}
			walk(c)
		}
	}
	walk(r.tu)
	if err != nil {
		return err
	}
	for key, set := range r.identifierIndex.m {
		for _, item := range set.items() {
			if item.(*Identifier).Name() != key {
				return newIndexInvariantBroken("identifier indexed under %q has name %q", key, item.(*Identifier).Name())
			}
		}
	}
	for key, set := range r.nodeIndex.m {
		for _, item := range set.items() {
			if item.Kind() != key {
				return newIndexInvariantBroken("node indexed under kind %s has kind %s", key, item.Kind())
			}
		}
	}
	return nil
}

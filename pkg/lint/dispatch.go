package lint

import "github.com/yaklabco/gojslint/pkg/jsast"

// dispatchTable aggregates the visitors of every rule running against one
// file, keyed by node kind. However many rules run, the tree is walked
// exactly once; each node is handed only to the visitors subscribed to
// its kind.
type dispatchTable struct {
	visitors     map[jsast.NodeKind][]VisitorFunc
	fileVisitors []VisitorFunc
	contexts     []*RuleContext
}

func newDispatchTable() *dispatchTable {
	return &dispatchTable{
		visitors: make(map[jsast.NodeKind][]VisitorFunc),
	}
}

// add invokes the rule's visitor factory and registers what it returns.
// Visitors keyed by jsast.KindFile run once per file instead of per node.
func (t *dispatchTable) add(rc *RuleContext) {
	t.contexts = append(t.contexts, rc)

	for kind, fn := range rc.rule.Create(rc) {
		if fn == nil {
			continue
		}
		if kind == jsast.KindFile {
			t.fileVisitors = append(t.fileVisitors, fn)
			continue
		}
		t.visitors[kind] = append(t.visitors[kind], fn)
	}
}

// run fires the whole-file visitors with the root node, then performs the
// single depth-first walk.
func (t *dispatchTable) run(root *jsast.Node) {
	for _, fn := range t.fileVisitors {
		fn(root)
	}

	if root == nil || len(t.visitors) == 0 {
		return
	}

	_ = jsast.Walk(root, func(n *jsast.Node) error {
		for _, fn := range t.visitors[n.Kind] {
			fn(n)
		}
		return nil
	})
}

// collect moves the diagnostics out of every rule context, in the order
// the rules were added.
func (t *dispatchTable) collect() []Diagnostic {
	var all []Diagnostic
	for _, rc := range t.contexts {
		all = append(all, rc.takeMessages()...)
	}
	return all
}

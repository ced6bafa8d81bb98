package jsast

// Node represents a single node in the source AST.
// Nodes form a tree structure with parent/child/sibling relationships.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Start and End are the byte range of the node in the file content.
	// Start is inclusive, End is exclusive. Both are -1 for synthetic nodes.
	Start int
	End   int

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// File is a back-reference to the containing FileSnapshot.
	File *FileSnapshot
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// ChildByKind returns the first direct child of the given kind, or nil.
func (n *Node) ChildByKind(kind NodeKind) *Node {
	for child := n.FirstChild; child != nil; child = child.Next {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

// CountChildrenByKind returns the number of direct children of the given kind.
func (n *Node) CountChildrenByKind(kind NodeKind) int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		if child.Kind == kind {
			count++
		}
	}
	return count
}

// FirstStatement returns the first statement-like child of the node,
// skipping leading comments. Returns nil if the node has no statements.
// For whole-file reports this anchors the diagnostic to real code.
func FirstStatement(root *Node) *Node {
	if root == nil {
		return nil
	}

	for child := root.FirstChild; child != nil; child = child.Next {
		if child.Kind == KindComment {
			continue
		}
		if child.Kind.IsStatement() {
			return child
		}
	}

	// Fall back to the first non-comment child of any kind.
	for child := root.FirstChild; child != nil; child = child.Next {
		if child.Kind != KindComment {
			return child
		}
	}

	return nil
}

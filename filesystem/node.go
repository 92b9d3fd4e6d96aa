package filesystem

import (
	"strings"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v4"
)

// NodeKind tags a Node as a directory or a file.
type NodeKind uint8

const (
	Dir NodeKind = iota
	File
)

func (k NodeKind) String() string {
	switch k {
	case Dir:
		return "dir"
	case File:
		return "file"
	}
	return "unknown"
}

// Node is a single entry in the namespace tree, either a directory or a
// file. A directory owns its children through the children map; the parent
// pointer is a non-owning back-reference used for path reconstruction, so
// the only ownership edges run downward and the tree stays acyclic.
type Node struct {
	id       uuid.UUID
	name     string // Name of the node (last part of the path); unique among siblings
	kind     NodeKind
	depth    int                       // 1-based; root is 1, every child is parent depth + 1
	parent   *Node                     // nil only for the root and detached nodes
	children *xsync.Map[string, *Node] // child nodes by name; nil for files
	content  string                    // file payload; unused for directories
}

// newNode allocates a child node under parent. The caller is responsible for
// inserting the node into the parent's children map.
func newNode(name string, kind NodeKind, parent *Node) *Node {
	n := &Node{
		id:     uuid.New(),
		name:   name,
		kind:   kind,
		depth:  parent.depth + 1,
		parent: parent,
	}
	if kind == Dir {
		n.children = xsync.NewMap[string, *Node]()
	}
	return n
}

// newRoot allocates the unnamed root directory at depth 1.
func newRoot() *Node {
	return &Node{
		id:       uuid.New(),
		name:     "",
		kind:     Dir,
		depth:    1,
		children: xsync.NewMap[string, *Node](),
	}
}

// ID returns the node's registry UUID, assigned at creation.
func (n *Node) ID() uuid.UUID {
	return n.id
}

// Name returns the node's immutable name.
func (n *Node) Name() string {
	return n.name
}

// Kind returns whether the node is a Dir or a File.
func (n *Node) Kind() NodeKind {
	return n.kind
}

// Depth returns the node's 1-based distance from the root.
func (n *Node) Depth() int {
	return n.depth
}

// IsDir reports whether the node is a directory.
func (n *Node) IsDir() bool {
	return n.kind == Dir
}

// IsRoot reports whether the node is the tree root.
// A detached (deleted) node also has no parent, but can never be reached
// through the live tree again.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// GetChild returns a child node by name.
func (n *Node) GetChild(name string) (child *Node, ok bool) {
	if n.children == nil {
		return nil, false
	}
	return n.children.Load(name)
}

// ChildCount returns the number of children; 0 for files.
func (n *Node) ChildCount() int {
	if n.children == nil {
		return 0
	}
	return n.children.Size()
}

// Path reconstructs the node's absolute path by walking parent links up to
// the root. The root contributes the empty string, so every non-root path
// starts with "/" and the root's own path is "".
func (n *Node) Path() string {
	if n.parent == nil {
		return ""
	}
	var parts []string
	for cur := n; cur.parent != nil; cur = cur.parent {
		parts = append(parts, cur.name)
	}
	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(parts[i])
	}
	return b.String()
}

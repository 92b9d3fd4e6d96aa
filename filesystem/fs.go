package filesystem

import (
	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/treefs/treefs/config"
	"github.com/treefs/treefs/internal/util"
)

// FileSystem is the namespace engine: a single in-memory tree of directory
// and file nodes plus the lifecycle operations on them. Creation limits come
// from the config; every operation either fully applies or leaves the tree
// untouched.
//
// The root is created once with the FileSystem and lives as long as it does.
// Callers address everything else through [Resolve]/[ResolveParent] starting
// at [FileSystem.Root].
type FileSystem struct {
	cfg      *config.Config
	root     *Node
	registry *xsync.Map[uuid.UUID, *Node] // maps node IDs to live nodes
}

// NewFS creates an empty filesystem containing only the root directory.
func NewFS(cfg *config.Config) *FileSystem {
	root := newRoot()
	fs := &FileSystem{
		cfg:      cfg,
		root:     root,
		registry: xsync.NewMap[uuid.UUID, *Node](),
	}
	fs.registry.Store(root.id, root)
	return fs
}

// Root returns the tree root.
func (fs *FileSystem) Root() *Node {
	return fs.root
}

// GetNode looks up a live node by its ID. Deleted nodes are not found.
func (fs *FileSystem) GetNode(id uuid.UUID) (*Node, bool) {
	return fs.registry.Load(id)
}

// Create allocates a new empty file or directory named name under parent.
// It fails if a sibling with the same name exists, if the parent directory
// is full, if the name is too long, or if the parent already sits at the
// depth limit.
func (fs *FileSystem) Create(parent *Node, name string, kind NodeKind) (*Node, error) {
	logger := util.GetLogger("FS.Create")

	if parent.kind != Dir {
		return nil, newError(OpCreate, name, ErrWrongKind)
	}
	if _, ok := parent.GetChild(name); ok {
		return nil, newError(OpCreate, name, ErrAlreadyExists)
	}
	switch {
	case parent.children.Size() >= fs.cfg.MaxNodes:
		return nil, newError(OpCreate, name, ErrCapacityExceeded)
	case len(name) > fs.cfg.MaxNameLength:
		return nil, newError(OpCreate, name, ErrCapacityExceeded)
	case parent.depth >= fs.cfg.MaxDepth:
		return nil, newError(OpCreate, name, ErrCapacityExceeded)
	}

	node := newNode(name, kind, parent)
	parent.children.Store(name, node)
	fs.registry.Store(node.id, node)
	logger.Debug().Str("path", node.Path()).Stringer("kind", kind).Msg("Created node")
	return node, nil
}

// ReadContent returns the current content of a file node.
func (fs *FileSystem) ReadContent(n *Node) (string, error) {
	if n.kind != File {
		return "", newError(OpRead, n.Path(), ErrWrongKind)
	}
	return n.content, nil
}

// WriteContent replaces the whole content of a file node; the prior content
// is discarded. Replacing with the empty string is valid.
func (fs *FileSystem) WriteContent(n *Node, content string) error {
	if n.kind != File {
		return newError(OpWrite, n.Path(), ErrWrongKind)
	}
	n.content = content
	return nil
}

// Delete removes a leaf from the tree: any file, or a directory with zero
// children. A non-empty directory fails with ErrNotEmpty and is left
// untouched. The root is never deletable.
func (fs *FileSystem) Delete(n *Node) error {
	logger := util.GetLogger("FS.Delete")

	if n.parent == nil {
		return newError(OpRemove, "/", ErrWrongKind)
	}
	if n.kind == Dir && n.children.Size() > 0 {
		return newError(OpRemove, n.Path(), ErrNotEmpty)
	}
	path := n.Path()
	fs.detach(n)
	logger.Debug().Str("path", path).Msg("Removed node")
	return nil
}

// DeleteRecursive removes n and every descendant unconditionally. Called on
// the root it empties the tree but keeps the root itself.
//
// Children are deleted through a restarted lookup rather than a single
// iteration pass: removing an entry may reorder the remaining entries of the
// containing map, so the cursor is re-established after every child delete.
func (fs *FileSystem) DeleteRecursive(n *Node) {
	logger := util.GetLogger("FS.DeleteRecursive")

	if n.kind == Dir {
		for {
			var child *Node
			n.children.Range(func(_ string, c *Node) bool {
				child = c
				return false
			})
			if child == nil {
				break
			}
			fs.DeleteRecursive(child)
		}
	}
	if n.parent == nil {
		return
	}
	path := n.Path()
	fs.detach(n)
	logger.Debug().Str("path", path).Msg("Removed node recursively")
}

// detach unlinks n from its parent and drops it from the registry.
// Caller guarantees n has a parent and, for directories, no children.
func (fs *FileSystem) detach(n *Node) {
	n.parent.children.Delete(n.name)
	n.parent = nil
	fs.registry.Delete(n.id)
}

package filesystem

import "strings"

// isSeparator reports whether r delimits path components. Besides the slash,
// stray whitespace left over from line-oriented input is tolerated.
func isSeparator(r rune) bool {
	switch r {
	case '/', ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

// splitPath splits a raw path string into its ordered component names.
// A path consisting solely of separators yields no components.
func splitPath(path string) []string {
	return strings.FieldsFunc(path, isSeparator)
}

// Resolve walks path from start, one component at a time, and returns the
// node at the end of it. Every intermediate component must be a directory.
// An empty component sequence fails: the root is not addressable through a
// relative path.
func Resolve(start *Node, path string) (*Node, error) {
	tokens := splitPath(path)
	if len(tokens) == 0 {
		return nil, newError(OpResolve, path, ErrPathNotFound)
	}
	cur := start
	for _, tok := range tokens {
		if cur.kind != Dir {
			return nil, newError(OpResolve, path, ErrPathNotFound)
		}
		child, ok := cur.GetChild(tok)
		if !ok {
			return nil, newError(OpResolve, path, ErrPathNotFound)
		}
		cur = child
	}
	return cur, nil
}

// ResolveParent resolves all components of path except the last and returns
// the final directory together with the unresolved terminal name, for use by
// create. If the terminal name already exists the create target is taken and
// the walk fails with ErrAlreadyExists; any earlier failure is still
// ErrPathNotFound.
func ResolveParent(start *Node, path string) (*Node, string, error) {
	tokens := splitPath(path)
	if len(tokens) == 0 {
		return nil, "", newError(OpResolve, path, ErrPathNotFound)
	}
	cur := start
	for i, tok := range tokens {
		if cur.kind != Dir {
			return nil, "", newError(OpResolve, path, ErrPathNotFound)
		}
		child, ok := cur.GetChild(tok)
		if !ok {
			if i == len(tokens)-1 {
				return cur, tok, nil
			}
			return nil, "", newError(OpResolve, path, ErrPathNotFound)
		}
		cur = child
	}
	return nil, "", newError(OpResolve, path, ErrAlreadyExists)
}

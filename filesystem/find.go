package filesystem

// FindByName recursively visits every directory in the subtree rooted at
// start and collects each node whose name equals name, regardless of kind.
// A matched directory is still recursed into, so a directory and one of its
// own descendants can both appear in the result.
//
// The result carries no ordering guarantee; it reflects the iteration order
// of the underlying children maps. Callers that present the matches are
// expected to convert them to paths and sort those.
func FindByName(start *Node, name string) []*Node {
	if start.kind != Dir {
		return nil
	}
	var matches []*Node
	start.children.Range(func(_ string, child *Node) bool {
		if child.name == name {
			matches = append(matches, child)
		}
		if child.kind == Dir {
			matches = append(matches, FindByName(child, name)...)
		}
		return true
	})
	return matches
}

// File: pkg/combine/tree.go
package combine

import (
	"fmt"
	"sort"
	"strings"

	"promptpack/pkg/patterns"
)

// treeNode is a directory or file in a rendered tree.
type treeNode struct {
	name     string
	children map[string]*treeNode
}

func (n *treeNode) isDir() bool { return n.children != nil }

// RenderTree draws the relative paths as a tree under root.
// Directories come first, then files, each alphabetical ignoring case.
func RenderTree(root string, relativePaths []string) string {
	top := &treeNode{name: root, children: map[string]*treeNode{}}
	for _, rel := range relativePaths {
		if rel == "" {
			continue
		}
		node := top
		parts := strings.Split(rel, patterns.Separator)
		for i, part := range parts {
			if part == "" {
				continue
			}
			child, ok := node.children[part]
			if !ok {
				child = &treeNode{name: part}
				if i < len(parts)-1 {
					child.children = map[string]*treeNode{}
				}
				node.children[part] = child
			} else if i < len(parts)-1 && child.children == nil {
				child.children = map[string]*treeNode{}
			}
			node = child
		}
	}

	var treeBuilder strings.Builder
	treeBuilder.WriteString(root + patterns.Separator + "\n")
	writeTree(&treeBuilder, top, "")
	return strings.TrimRight(treeBuilder.String(), "\n")
}

// writeTree appends the children of node with the given line prefix.
func writeTree(sb *strings.Builder, node *treeNode, prefix string) {
	entries := make([]*treeNode, 0, len(node.children))
	for _, child := range node.children {
		entries = append(entries, child)
	}

	// Sort entries: directories first, then files, alphabetically
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].isDir() != entries[j].isDir() {
			return entries[i].isDir()
		}
		li, lj := strings.ToLower(entries[i].name), strings.ToLower(entries[j].name)
		if li != lj {
			return li < lj
		}
		return entries[i].name < entries[j].name
	})

	for i, entry := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		if entry.isDir() {
			fmt.Fprintf(sb, "%s%s%s/\n", prefix, connector, entry.name)
			writeTree(sb, entry, prefix+extension)
			continue
		}
		fmt.Fprintf(sb, "%s%s%s\n", prefix, connector, entry.name)
	}
}

package output

import (
	"path"
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is where descriptions start when the line is shorter.
	descriptionColumn = 40
)

// TreeNode is one directory or file in a rendered tree.
type TreeNode struct {
	Name        string
	Description string
	IsDir       bool
	Children    []*TreeNode
}

// RenderFileTree renders slash-separated file paths below root, with
// descriptions aligned at descriptionColumn. files maps path to description.
func RenderFileTree(root string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	top := &TreeNode{Name: root, IsDir: true}

	for p, desc := range files {
		current := top
		parts := strings.Split(path.Clean(strings.ReplaceAll(p, "\\", "/")), "/")

		for i, part := range parts {
			isLast := i == len(parts)-1
			child := current.child(part)
			if child == nil {
				child = &TreeNode{Name: part, IsDir: !isLast}
				current.Children = append(current.Children, child)
			}
			if isLast {
				child.Description = desc
			}
			current = child
		}
	}

	sortTree(top)

	var sb strings.Builder
	renderNode(&sb, GetStyles(), top, "", true, true)
	return sb.String()
}

func (n *TreeNode) child(name string) *TreeNode {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// sortTree orders directories first, then alphabetically.
func sortTree(node *TreeNode) {
	sort.Slice(node.Children, func(i, j int) bool {
		a, b := node.Children[i], node.Children[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return a.Name < b.Name
	})
	for _, c := range node.Children {
		sortTree(c)
	}
}

func renderNode(sb *strings.Builder, styles Styles, node *TreeNode, prefix string, isRoot, isLast bool) {
	if isRoot {
		sb.WriteString(styles.Bold.Render(node.Name + "/"))
		sb.WriteString("\n")
	} else {
		connector := treeEdge
		if isLast {
			connector = treeLast
		}

		name := node.Name
		if node.IsDir {
			name += "/"
		}
		line := prefix + connector + name

		if node.Description != "" {
			padding := descriptionColumn - len([]rune(line))
			if padding < 2 {
				padding = 2
			}
			line += strings.Repeat(" ", padding) + styles.Muted.Render(node.Description)
		}

		sb.WriteString(line)
		sb.WriteString("\n")
	}

	for i, child := range node.Children {
		childPrefix := ""
		if !isRoot {
			if isLast {
				childPrefix = prefix + treeSpace
			} else {
				childPrefix = prefix + treeVert
			}
		}
		renderNode(sb, styles, child, childPrefix, false, i == len(node.Children)-1)
	}
}

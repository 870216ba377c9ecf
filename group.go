package gridview

import "github.com/example/gridview/domain/model"

// GroupNode is one node of the nested-view tree. Exactly one of
// Children or Rows is populated: Children at depths above the sort-key
// count, Rows at the leaf level. Depth equals the node's position in
// the active sort spec.
type GroupNode struct {
	// ColumnID is the sort column this level partitions by.
	ColumnID string
	// Label is the column's display label.
	Label string
	// Value is the rendered group value shared by all descendants.
	Value string
	// Depth is the node's level, equal to its index in the sort spec.
	Depth int
	// Key is the stable path of columnId=value pairs from the root,
	// used for collapse-state lookup.
	Key string
	// Children holds the next-level group nodes.
	Children []*GroupNode
	// Rows holds the leaf rows, in upstream sorted order.
	Rows []model.Row
}

// LeafCount returns the number of descendant rows under the node.
func (n *GroupNode) LeafCount() int {
	if n.Children == nil {
		return len(n.Rows)
	}
	total := 0
	for _, child := range n.Children {
		total += child.LeafCount()
	}
	return total
}

// buildTree partitions the sorted, filtered rows into a tree with one
// level per active sort key. Partitions keep the first-seen order of
// distinct rendered values; since the input is already globally sorted
// by each level's key, groups come out in sorted-key order.
func buildTree(rows []model.Row, columns map[string]Column, spec []SortKey) []*GroupNode {
	return buildLevel(rows, columns, spec, 0, "")
}

func buildLevel(rows []model.Row, columns map[string]Column, spec []SortKey, depth int, parentKey string) []*GroupNode {
	if depth >= len(spec) {
		return nil
	}
	col := columns[spec[depth].ColumnID]

	var nodes []*GroupNode
	index := make(map[string]*GroupNode)
	partitions := make(map[string][]model.Row)
	for _, r := range rows {
		value := col.RenderCell(r)
		node, ok := index[value]
		if !ok {
			node = &GroupNode{
				ColumnID: col.ID,
				Label:    col.Label,
				Value:    value,
				Depth:    depth,
				Key:      groupKey(parentKey, col.ID, value),
			}
			index[value] = node
			nodes = append(nodes, node)
		}
		partitions[value] = append(partitions[value], r)
	}

	for _, node := range nodes {
		part := partitions[node.Value]
		if depth+1 == len(spec) {
			node.Rows = part
			continue
		}
		node.Children = buildLevel(part, columns, spec, depth+1, node.Key)
	}
	return nodes
}

// groupKey derives the stable collapse-lookup key for a node as the
// path of columnId=value pairs from the root.
func groupKey(parentKey, columnID, value string) string {
	key := columnID + "=" + value
	if parentKey == "" {
		return key
	}
	return parentKey + "/" + key
}

// flattenTree returns all leaf rows of the tree in order. For any
// non-empty sort spec this reproduces exactly the sorted, filtered
// sequence the tree was built from.
func flattenTree(nodes []*GroupNode) []model.Row {
	var out []model.Row
	for _, n := range nodes {
		if n.Children == nil {
			out = append(out, n.Rows...)
			continue
		}
		out = append(out, flattenTree(n.Children)...)
	}
	return out
}

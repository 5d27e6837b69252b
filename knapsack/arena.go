package knapsack

// setArena stores every index set built during one Solve as persistent
// cons-cells: a set is the id of its last node, and each node points at the
// set it extends. Extending a set is O(1) and never copies; older sets stay
// valid because nodes are never mutated.
//
//	cell c ─► node{item 6, parent} ─► node{item 2, parent} ─► emptySet
type setArena struct {
	nodes []setNode
}

// setNode appends item (a position in Instance.Items) to the set parent.
type setNode struct {
	item   int32
	parent int32
}

// emptySet is the id of the set with no items.
const emptySet int32 = -1

// newSetArena preallocates room for hint nodes.
func newSetArena(hint int) *setArena {
	return &setArena{nodes: make([]setNode, 0, hint)}
}

// push returns the id of parent ∪ {item}.
//
// Complexity: amortized O(1).
func (a *setArena) push(parent int32, item int) int32 {
	a.nodes = append(a.nodes, setNode{item: int32(item), parent: parent})
	return int32(len(a.nodes) - 1)
}

// positions returns the items of set id in insertion order.
//
// Complexity: O(k) for a set of k items.
func (a *setArena) positions(id int32) []int {
	var k int
	for cur := id; cur != emptySet; cur = a.nodes[cur].parent {
		k++
	}
	out := make([]int, k)
	for cur := id; cur != emptySet; cur = a.nodes[cur].parent {
		k--
		out[k] = int(a.nodes[cur].item)
	}

	return out
}

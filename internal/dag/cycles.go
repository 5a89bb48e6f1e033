package dag

// visitState tracks DFS progress for cycle detection.
type visitState int

const (
	// unvisited means the node has not been reached yet.
	unvisited visitState = iota
	// inProgress means the node is on the current recursion stack.
	inProgress
	// done means the node and everything reachable from it is cycle-free.
	done
)

// findCycle runs a depth-first search over the dependency edges and
// returns the first cycle discovered, or nil if the graph is a DAG.
//
// Items are visited in plan input order and each item's dependencies in
// declared order, which makes the reported cycle reproducible for
// identical input. The returned path is reconstructed from the recursion
// stack starting at the repeated node, with the repeated node appended to
// show closure: [A B C A]. A self-dependency yields [X X].
func (g *graph) findCycle() []string {
	state := make(map[string]visitState, len(g.order))
	onStack := make(map[string]int, len(g.order))
	var stack []string
	var cycle []string

	var visit func(id string)
	visit = func(id string) {
		state[id] = inProgress
		onStack[id] = len(stack)
		stack = append(stack, id)

		for _, dep := range g.deps[id] {
			if cycle != nil {
				return
			}
			switch state[dep] {
			case unvisited:
				visit(dep)
			case inProgress:
				// The edge back into the recursion stack closes a cycle.
				start := onStack[dep]
				cycle = append(cycle, stack[start:]...)
				cycle = append(cycle, dep)
				return
			case done:
				// Already known to be safe.
			}
		}

		stack = stack[:len(stack)-1]
		delete(onStack, id)
		state[id] = done
	}

	for _, id := range g.order {
		if state[id] != unvisited {
			continue
		}
		visit(id)
		if cycle != nil {
			return cycle
		}
	}

	return nil
}

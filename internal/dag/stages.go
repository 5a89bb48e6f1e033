package dag

// assignStages computes each item's stage index and groups items into
// ordered stages. It must only run on a validated, acyclic graph.
//
// The stage index of an item is 0 when it has no dependencies, otherwise
// one more than the maximum stage index of its dependencies. This places
// every item in the earliest stage that still respects its dependencies,
// which maximizes parallelism within each stage.
//
// The computation is Kahn's algorithm with explicit max-propagation:
// indexes are settled wave by wave, and within each stage the items keep
// plan input order.
func (g *graph) assignStages() []Stage {
	if len(g.order) == 0 {
		return nil
	}

	inDegree := make(map[string]int, len(g.order))
	dependents := make(map[string][]string, len(g.order))
	for _, id := range g.order {
		inDegree[id] = len(g.deps[id])
		for _, dep := range g.deps[id] {
			dependents[dep] = append(dependents[dep], id)
		}
	}

	stageOf := make(map[string]int, len(g.order))
	maxStage := 0

	// Seed with the roots, in input order.
	var queue []string
	for _, id := range g.order {
		if inDegree[id] == 0 {
			queue = append(queue, id)
			stageOf[id] = 0
		}
	}

	for len(queue) > 0 {
		var next []string
		for _, id := range queue {
			for _, dependent := range dependents[id] {
				if s := stageOf[id] + 1; s > stageOf[dependent] {
					stageOf[dependent] = s
					if s > maxStage {
						maxStage = s
					}
				}
				inDegree[dependent]--
				if inDegree[dependent] == 0 {
					next = append(next, dependent)
				}
			}
		}
		queue = next
	}

	stages := make([]Stage, maxStage+1)
	for i := range stages {
		stages[i].Index = i
	}
	for _, id := range g.order {
		s := stageOf[id]
		stages[s].Items = append(stages[s].Items, id)
	}
	return stages
}

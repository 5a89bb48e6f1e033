package dag

// Stage is one parallel-safe group of work items. Its index is meaningful:
// stage 0 runs before stage 1, and every dependency of an item in stage k
// lives in a stage with a lower index.
type Stage struct {
	// Index is the zero-based position of the stage in the execution order.
	Index int
	// Items holds the IDs assigned to this stage, preserving plan input
	// order for deterministic output.
	Items []string
	// Conflicts maps a file path to the IDs of items in this stage that
	// both intend to modify it. Only paths touched by two or more items
	// appear. The report is advisory; it never blocks or reorders.
	Conflicts map[string][]string
}

// Result is a successful analysis: the ordered stage sequence for the plan.
type Result struct {
	Stages []Stage
}

// ItemCount returns the total number of items across all stages.
func (r *Result) ItemCount() int {
	n := 0
	for _, s := range r.Stages {
		n += len(s.Items)
	}
	return n
}

// graph is the internal working representation built once per analysis
// call. Slices keep declaration order so traversal stays deterministic.
type graph struct {
	// order holds item IDs in plan input order.
	order []string
	// deps maps an item ID to its declared dependency IDs, in declared order.
	deps map[string][]string
	// files maps an item ID to the file paths it intends to modify.
	files map[string][]string
}

package dag

// detectConflicts builds the file conflict report for one stage: a map
// from file path to the IDs of stage members that declared intent to
// modify it, restricted to paths touched by two or more items. Items in
// different stages never conflict, since stage ordering already
// serializes them.
func (g *graph) detectConflicts(stageItems []string) map[string][]string {
	touchedBy := make(map[string][]string)
	for _, id := range stageItems {
		for _, path := range g.files[id] {
			// An item listing the same path twice still counts once.
			if ids := touchedBy[path]; len(ids) > 0 && ids[len(ids)-1] == id {
				continue
			}
			touchedBy[path] = append(touchedBy[path], id)
		}
	}

	var conflicts map[string][]string
	for path, ids := range touchedBy {
		if len(ids) < 2 {
			continue
		}
		if conflicts == nil {
			conflicts = make(map[string][]string)
		}
		conflicts[path] = ids
	}
	return conflicts
}

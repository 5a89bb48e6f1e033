package config

// WorkItem is the format-agnostic representation of a single unit of
// planned work declared in a plan file.
type WorkItem struct {
	// ID is the caller-assigned, opaque identifier. Uniqueness across the
	// plan is an analyzer invariant, not a loader concern.
	ID string
	// Kind is an optional free-form classification (e.g. "prp", "task").
	// It is carried for reporting and dispatch only.
	Kind string
	// Description is a human-readable summary of the item.
	Description string
	// DependsOn lists the IDs of items that must complete before this one
	// may run. Declaration order is preserved for deterministic analysis.
	DependsOn []string
	// Files lists the file paths this item intends to modify. Used only
	// for conflict detection, never for ordering.
	Files []string
}

// Plan is the full set of work items loaded from a plan source. Item
// order matches discovery order and is semantically insignificant, but it
// is preserved so repeated analyses of the same input produce identical
// results.
type Plan struct {
	Items []WorkItem
}

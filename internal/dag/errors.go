package dag

import (
	"fmt"
	"strings"
)

// DuplicateIDError reports two work items sharing the same ID. It is the
// highest-priority validation failure: it is checked before any dependency
// reference or graph traversal.
type DuplicateIDError struct {
	// ID is the identifier declared more than once.
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate work item id %q", e.ID)
}

// UnknownDependencyError reports a dependency reference that does not
// correspond to any supplied work item.
type UnknownDependencyError struct {
	// ItemID is the item declaring the bad reference.
	ItemID string
	// DependencyID is the missing identifier it referenced.
	DependencyID string
}

func (e *UnknownDependencyError) Error() string {
	return fmt.Sprintf("item %q depends on unknown item %q", e.ItemID, e.DependencyID)
}

// CycleError reports that the dependency relation is not a DAG. Path holds
// one discovered cycle as an ordered ID sequence closed on itself, e.g.
// [A B C A]; each consecutive pair is a real dependency edge. A
// self-dependency is reported as [X X].
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle detected: %s", strings.Join(e.Path, " -> "))
}

package hcl

import "github.com/hashicorp/hcl/v2"

// itemBlock represents an `item` block from a user's plan file.
type itemBlock struct {
	ID          string         `hcl:"id,label"`
	Kind        string         `hcl:"kind,optional"`
	Description hcl.Expression `hcl:"description,optional"`
	DependsOn   hcl.Expression `hcl:"depends_on,optional"`
	Files       hcl.Expression `hcl:"files,optional"`
}

// localsBlock represents a `locals` block. Its attributes are decoded
// lazily so they can be evaluated in source order.
type localsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// fileRoot is a struct used to decode all top-level blocks from any plan file.
type fileRoot struct {
	Locals []*localsBlock `hcl:"locals,block"`
	Items  []*itemBlock   `hcl:"item,block"`
	Remain hcl.Body       `hcl:",remain"`
}

// Package hcl implements the config.Loader interface for HCL plan files.
//
// A plan file declares work items as `item` blocks:
//
//	locals {
//	  docs = "docs/agents"
//	}
//
//	item "PRP-44" {
//	  kind        = "prp"
//	  description = "Restructure orchestrator docs"
//	  depends_on  = ["PRP-43"]
//	  files       = ["${local.docs}/orchestrator.md"]
//	}
//
// Item attributes are HCL expressions evaluated against the `local.*`
// variables collected from every `locals` block in the plan, so file paths
// and dependency lists may use interpolation. The loader performs no
// plan-level validation: duplicate item labels survive into the model so
// the analyzer can report them through its own error contract.
package hcl

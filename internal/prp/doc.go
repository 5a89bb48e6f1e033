// Package prp implements the config.Loader interface for directories of
// PRP (Product Requirement Proposal) markdown documents.
//
// Each document carries a YAML front-matter block describing the work
// item it proposes:
//
//	---
//	id: PRP-44
//	depends_on: [PRP-43]
//	files:
//	  - docs/README.md
//	---
//	# PRP-44: Restructure documentation
//	...
//
// Only the front-matter is interpreted; the prose body is ignored.
// Documents without front-matter, or without an `id` key, are skipped
// with a warning so ordinary markdown can live alongside PRPs.
package prp

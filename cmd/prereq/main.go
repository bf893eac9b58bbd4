// Package main provides a CLI for querying dependency-relation graph
// documents.
//
// The CLI supports:
//   - check: Test whether one object requires another, directly or through chains
//   - list: List the direct requirements or dependents of an object
//   - chains: Enumerate maximal requirement or dependency chains
//   - validate: Load a graph document through full relation validation
//   - fmt: Rewrite a graph document in canonical form
//
// All commands operate on a YAML graph document (default requirements.yaml,
// configurable via prereq.yaml, the PREREQ_GRAPH environment variable, or
// the --graph flag). The document is loaded fresh for every invocation;
// nothing is cached between runs.
//
// Usage:
//
//	prereq [flags] <command>
package main

func main() {
	Execute()
}

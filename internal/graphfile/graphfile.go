// Package graphfile reads and writes relation stores as YAML graph
// documents. The store itself defines no serialization format; this
// package is the CLI's rendering of the Get/Set bulk transfer surface.
//
// A document looks like:
//
//	reflexive: false
//	requirements:
//	  deploy: [build]
//	  build: [compile, lint]
package graphfile

import (
	"fmt"
	"os"
	"sort"

	"sigs.k8s.io/yaml"

	"github.com/pthm/prereq"
)

// Document is the on-disk shape of a relation store.
type Document struct {
	// Reflexive mirrors the store's reflexive mode. It must be set in
	// the document for mutual requirements to load.
	Reflexive bool `json:"reflexive,omitempty"`

	// Requirements maps each dependent to its direct requirements.
	Requirements map[string][]string `json:"requirements,omitempty"`
}

// Load reads the document at path into a new store, running the full
// Set validation on its pairs.
func Load(path string) (*prereq.Store[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading graph document: %w", err)
	}
	store, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return store, nil
}

// Parse unmarshals a YAML graph document into a new store.
func Parse(data []byte) (*prereq.Store[string], error) {
	var doc Document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing graph document: %w", err)
	}

	var store *prereq.Store[string]
	if doc.Reflexive {
		store = prereq.New[string](prereq.WithReflexive())
	} else {
		store = prereq.New[string]()
	}
	if err := store.Set(doc.Requirements); err != nil {
		return nil, err
	}
	return store, nil
}

// Marshal renders the store as a YAML graph document. Requirement
// lists keep their stored order; yaml sorts the dependent keys, so
// output is deterministic for a given store.
func Marshal(store *prereq.Store[string]) ([]byte, error) {
	doc := Document{
		Reflexive:    store.Reflexive(),
		Requirements: store.Get(),
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling graph document: %w", err)
	}
	return data, nil
}

// Save writes the store to path as a YAML graph document.
func Save(path string, store *prereq.Store[string]) error {
	data, err := Marshal(store)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing graph document: %w", err)
	}
	return nil
}

// Objects returns every object named in the store, dependents and
// requirements alike, sorted for stable listing.
func Objects(store *prereq.Store[string]) []string {
	seen := make(map[string]bool)
	for dep, reqs := range store.Get() {
		seen[dep] = true
		for _, req := range reqs {
			seen[req] = true
		}
	}
	objects := make([]string, 0, len(seen))
	for obj := range seen {
		objects = append(objects, obj)
	}
	sort.Strings(objects)
	return objects
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/prereq/internal/graphfile"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a graph document",
	Long: `Load the graph document through full relation validation.

Every pair is checked the way a direct insertion would be: no object
may require itself, no pair may be stated twice or be implied by an
existing chain, and mutual requirements are rejected unless the
document sets reflexive: true.`,
	Example: `  # Validate the configured document
  prereq validate

  # Validate a specific document
  prereq validate --graph graphs/deps.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, path, err := loadGraph()
		if err != nil {
			return err
		}

		if !quiet {
			objects := graphfile.Objects(store)
			fmt.Printf("%s is valid: %d objects, %d relations", path, len(objects), store.Len())
			if store.Reflexive() {
				fmt.Print(" (reflexive)")
			}
			fmt.Println()
		}
		return nil
	},
}

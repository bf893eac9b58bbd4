package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listDependents bool

var listCmd = &cobra.Command{
	Use:   "list <object>",
	Short: "List direct requirements or dependents",
	Long: `List the objects the given one directly requires.

With --dependents the direction is flipped: list the objects that
directly require the given one.`,
	Example: `  # What does deploy require?
  prereq list deploy

  # What requires compile?
  prereq list compile --dependents`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		object := args[0]

		store, _, err := loadGraph()
		if err != nil {
			return err
		}

		var related []string
		if listDependents {
			related = store.Dependents(object)
		} else {
			related = store.Requirements(object)
		}

		if len(related) == 0 {
			if !quiet {
				if listDependents {
					fmt.Printf("nothing requires %s\n", object)
				} else {
					fmt.Printf("%s requires nothing\n", object)
				}
			}
			return nil
		}

		for _, r := range related {
			fmt.Println(r)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listDependents, "dependents", false, "list dependents instead of requirements")
}

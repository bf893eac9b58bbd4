package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/prereq/internal/cli"
)

var checkChain bool

var checkCmd = &cobra.Command{
	Use:   "check <dependent> <requirement>",
	Short: "Test whether one object requires another",
	Long: `Test whether the dependent requires the requirement.

Without --chain only the direct relation is considered. With --chain
the requirement counts when it is reachable through any chain of
requirements.

Exits 0 when the relation holds and 4 when it does not.`,
	Example: `  # Direct relation only
  prereq check deploy build

  # Follow requirement chains
  prereq check deploy compile --chain`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dependent, requirement := args[0], args[1]

		store, _, err := loadGraph()
		if err != nil {
			return err
		}

		held := store.Exists(dependent, requirement)
		if !held && checkChain {
			held = store.Requires(dependent, requirement)
		}

		if held {
			if !quiet {
				fmt.Printf("%s requires %s\n", dependent, requirement)
			}
			return nil
		}

		return &cli.ExitError{
			Code:    cli.ExitNotHeld,
			Message: fmt.Sprintf("%s does not require %s", dependent, requirement),
		}
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkChain, "chain", false, "follow requirement chains")
}

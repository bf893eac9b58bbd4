package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/prereq"
	"github.com/pthm/prereq/internal/cli"
)

var (
	chainsOf             string
	chainsReverse        bool
	chainsWithDuplicates bool
)

var chainsCmd = &cobra.Command{
	Use:   "chains",
	Short: "Enumerate requirement or dependency chains",
	Long: `Enumerate every maximal chain in the graph document, walked from
dependents down through their requirements.

With --of only chains starting at the given object are printed. With
--reverse chains are walked the other way, from requirements up
through their dependents. By default only chains starting at graph
roots (objects nothing else requires) are printed; --with-duplicates
also starts chains at intermediate objects.`,
	Example: `  # All chains from graph roots
  prereq chains

  # Chains starting at one object
  prereq chains --of deploy

  # Who ultimately depends on compile?
  prereq chains --of compile --reverse`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := loadGraph()
		if err != nil {
			return err
		}

		withDuplicates := chainsWithDuplicates || cfg.Chains.WithDuplicates
		reverse := chainsReverse || cfg.Chains.Reverse

		chains, err := collectChains(store, chainsOf, reverse, withDuplicates)
		if err != nil {
			return cli.GeneralError("enumerating chains", err)
		}

		for _, chain := range chains {
			fmt.Println(strings.Join(chain, " -> "))
		}
		return nil
	},
}

// collectChains dispatches to the single-object or whole-graph
// enumeration depending on the flags.
func collectChains(store *prereq.Store[string], of string, reverse, withDuplicates bool) ([][]string, error) {
	switch {
	case of != "" && reverse:
		return store.DependencyChains(of)
	case of != "":
		return store.RequirementChains(of)
	case reverse:
		return store.AllDependencyChains(!withDuplicates), nil
	default:
		return store.AllRequirementChains(!withDuplicates), nil
	}
}

func init() {
	chainsCmd.Flags().StringVar(&chainsOf, "of", "", "start chains at this object only")
	chainsCmd.Flags().BoolVar(&chainsReverse, "reverse", false, "walk dependents instead of requirements")
	chainsCmd.Flags().BoolVar(&chainsWithDuplicates, "with-duplicates", false, "also start chains at intermediate objects")
}

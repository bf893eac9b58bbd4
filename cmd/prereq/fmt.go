package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/prereq/internal/cli"
	"github.com/pthm/prereq/internal/graphfile"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Rewrite a graph document in canonical form",
	Long: `Load the graph document, validate it, and print it back in
canonical form: dependents sorted, requirement lists in stored order.

With --write the document is rewritten in place instead of printed.`,
	Example: `  # Print the canonical form
  prereq fmt

  # Rewrite the document in place
  prereq fmt --write`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, path, err := loadGraph()
		if err != nil {
			return err
		}

		if fmtWrite {
			if err := graphfile.Save(path, store); err != nil {
				return cli.DocumentError("rewriting graph document", err)
			}
			if !quiet {
				fmt.Printf("rewrote %s\n", path)
			}
			return nil
		}

		data, err := graphfile.Marshal(store)
		if err != nil {
			return cli.DocumentError("rendering graph document", err)
		}
		_, _ = os.Stdout.Write(data)
		return nil
	},
}

func init() {
	fmtCmd.Flags().BoolVar(&fmtWrite, "write", false, "rewrite the document in place")
}

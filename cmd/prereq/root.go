package main

import (
	"github.com/spf13/cobra"

	"github.com/pthm/prereq"
	"github.com/pthm/prereq/internal/cli"
	"github.com/pthm/prereq/internal/graphfile"
)

var (
	// Global state set during PersistentPreRunE
	cfg        *cli.Config
	configPath string

	// Persistent flags
	cfgFile   string
	graphFile string
	quiet     bool
)

var rootCmd = &cobra.Command{
	Use:   "prereq",
	Short: "Dependency-relation queries over graph documents",
	Long: `prereq - Dependency-relation queries over graph documents

Prereq records which objects require which others and answers
reachability and chain questions over the resulting graph: direct
requirements, transitive requirements, and the full chains between
an object and its ultimate requirements or dependents.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for help/completion/version commands
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, configPath, err = cli.LoadConfig(cfgFile)
		if err != nil {
			return cli.ConfigError("loading configuration", err)
		}

		return nil
	},
	SilenceUsage:  true, // Don't show usage on errors
	SilenceErrors: true, // We handle errors ourselves
}

// Command group IDs
const (
	groupQuery    = "query"
	groupDocument = "document"
	groupUtility  = "utility"
)

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: auto-discover prereq.yaml)")
	rootCmd.PersistentFlags().StringVar(&graphFile, "graph", "", "graph document (default: from config, then requirements.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	// Define command groups
	rootCmd.AddGroup(
		&cobra.Group{ID: groupQuery, Title: "Query:"},
		&cobra.Group{ID: groupDocument, Title: "Document:"},
		&cobra.Group{ID: groupUtility, Title: "Utility:"},
	)

	// Query commands
	checkCmd.GroupID = groupQuery
	listCmd.GroupID = groupQuery
	chainsCmd.GroupID = groupQuery
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(chainsCmd)

	// Document commands
	validateCmd.GroupID = groupDocument
	fmtCmd.GroupID = groupDocument
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(fmtCmd)

	// Utility commands
	configCmd.GroupID = groupUtility
	versionCmd.GroupID = groupUtility
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		cli.ExitWithError(err)
	}
}

// resolveString returns the first non-empty string from the provided values.
// Used to implement precedence: flag > config > default.
func resolveString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// loadGraph loads the configured graph document into a store.
func loadGraph() (*prereq.Store[string], string, error) {
	path := resolveString(graphFile, cfg.Graph)
	store, err := graphfile.Load(path)
	if err != nil {
		return nil, path, cli.DocumentError("loading graph document", err)
	}
	return store, path, nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "treeconv",
	Short: "treeconv turns ASCII tree diagrams into real directories and files",
	Long: `treeconv parses a tree diagram (box-drawing like ├──/└── or plain
indentation), reconstructs the hierarchy and creates it on disk. Files get a
small generated body carrying their inline '# comment'; existing files are
never overwritten. Use 'preview' or --dry-run to see the plan first.`,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("out", "o", "", "Directory to create the project in (parent of the root)")
	rootCmd.PersistentFlags().String("config", "", "Path to a defaults file (default .treeconv.yaml)")
	rootCmd.PersistentFlags().Bool("plain", false, "Plain output: no icons, no colors")
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/harsh1t3/tree-converter/internal/app"
)

// previewCmd is 'create --dry-run' under a friendlier name.
var previewCmd = &cobra.Command{
	Use:   "preview [input-file]",
	Short: "Show what would be created, without touching the filesystem",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions(cmd, args)
		if err != nil {
			return err
		}
		opts.DryRun = true
		return app.Run(opts)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().AddFlagSet(createCmd.Flags())
}

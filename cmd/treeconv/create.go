package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/harsh1t3/tree-converter/internal/app"
	"github.com/harsh1t3/tree-converter/internal/config"
)

// createCmd materializes the diagram; it is also the default command.
var createCmd = &cobra.Command{
	Use:   "create [input-file]",
	Short: "Create the directory structure described by a tree diagram",
	Long: `Reads a tree diagram from the given file ('-' for stdin), from the
built-in sample (--sample), or interactively pasted line by line, and creates
the corresponding directories and files under --out.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions(cmd, args)
		if err != nil {
			return err
		}
		return app.Run(opts)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringP("in", "i", "", "Input file with the tree diagram ('-' for stdin)")
	createCmd.Flags().Bool("sample", false, "Use the built-in sample tree")
	createCmd.Flags().Bool("dry-run", false, "Preview without creating anything")
	createCmd.Flags().String("root-name", "", "Override the root directory name")
	createCmd.Flags().String("dir-perm", "", "Permissions for created directories (octal, default 0755)")
	createCmd.Flags().String("file-perm", "", "Permissions for created files (octal, default 0644)")

	// Running treeconv with no subcommand behaves like 'create'.
	rootCmd.RunE = createCmd.RunE
	rootCmd.Args = createCmd.Args
	rootCmd.Flags().AddFlagSet(createCmd.Flags())
}

// buildOptions merges flags over environment/config-file defaults.
func buildOptions(cmd *cobra.Command, args []string) (app.Options, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		cfgPath = config.DefaultFile
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return app.Options{}, err
	}

	inPath, _ := cmd.Flags().GetString("in")
	if inPath == "" && len(args) > 0 {
		inPath = args[0]
	}

	outDir, _ := cmd.Flags().GetString("out")
	if outDir == "" {
		outDir = cfg.OutputDir
	}

	rootName, _ := cmd.Flags().GetString("root-name")
	if rootName == "" {
		rootName = cfg.RootName
	}

	plain, _ := cmd.Flags().GetBool("plain")
	if !cmd.Flags().Changed("plain") {
		plain = cfg.Plain
	}

	dirPermStr, _ := cmd.Flags().GetString("dir-perm")
	if dirPermStr == "" {
		dirPermStr = cfg.DirPerm
	}
	dirPerm, err := config.ParsePerm(dirPermStr, 0o755)
	if err != nil {
		return app.Options{}, fmt.Errorf("invalid --dir-perm: %w", err)
	}

	filePermStr, _ := cmd.Flags().GetString("file-perm")
	if filePermStr == "" {
		filePermStr = cfg.FilePerm
	}
	filePerm, err := config.ParsePerm(filePermStr, 0o644)
	if err != nil {
		return app.Options{}, fmt.Errorf("invalid --file-perm: %w", err)
	}

	sample, _ := cmd.Flags().GetBool("sample")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	return app.Options{
		InPath:   inPath,
		OutDir:   outDir,
		RootName: rootName,
		Sample:   sample,
		DryRun:   dryRun,
		Plain:    plain,
		DirPerm:  dirPerm,
		FilePerm: filePerm,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Logger:   slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}, nil
}

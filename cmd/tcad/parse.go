package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tcad/internal/diagfmt"
	"tcad/internal/driver"
	"tcad/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.tcad",
	Short: "Parse a sketch source file and report syntax errors",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	fileSet := source.NewFileSet()
	id, err := fileSet.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}

	astFile, bag := driver.ParseFile(fileSet.Get(id), maxDiagnostics(cmd))
	if bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, bag, fileSet, diagfmt.PrettyOpts{
			Color:      useColor(cmd, os.Stderr),
			ShowSource: true,
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d import(s), %d struct(s), %d sketch(es)\n",
		args[0], len(astFile.Imports), len(astFile.Structs), len(astFile.Sketches))

	if bag.HasErrors() {
		return fmt.Errorf("parsing finished with errors")
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tcad/internal/diagfmt"
	"tcad/internal/driver"
	"tcad/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.tcad",
	Short: "Tokenize a sketch source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	fileSet := source.NewFileSet()
	id, err := fileSet.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}

	toks, bag := driver.TokenizeFile(fileSet.Get(id), maxDiagnostics(cmd))
	if bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, bag, fileSet, diagfmt.PrettyOpts{
			Color:      useColor(cmd, os.Stderr),
			ShowSource: true,
		})
	}

	switch format {
	case "pretty":
		diagfmt.Tokens(cmd.OutOrStdout(), toks, fileSet)
	case "json":
		if err := diagfmt.TokensJSON(cmd.OutOrStdout(), toks, fileSet); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if bag.HasErrors() {
		return fmt.Errorf("tokenization finished with errors")
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tcad/internal/diagfmt"
	"tcad/internal/driver"
	"tcad/internal/project"
	"tcad/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [path...]",
	Short: "Resolve and type-check sketch sources",
	Long: `Check runs the full analysis pipeline over files or directories.
With no arguments it looks for a tcad.toml manifest in the current
directory or above and checks the sources it declares.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("json", false, "emit diagnostics as JSON")
	checkCmd.Flags().Int("jobs", 0, "parallel workers (0 = number of CPUs)")
	checkCmd.Flags().Bool("no-cache", false, "bypass the analysis cache")
}

func runCheck(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	jobs, _ := cmd.Flags().GetInt("jobs")
	noCache, _ := cmd.Flags().GetBool("no-cache")

	paths, err := collectPaths(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no source files found")
	}

	opts := driver.Options{
		MaxDiagnostics: maxDiagnostics(cmd),
		Jobs:           jobs,
	}
	if !noCache {
		// A broken cache only costs re-analysis.
		if cache, err := driver.OpenDiskCache("tcad"); err == nil {
			opts.Cache = cache
		}
	}

	fileSet := source.NewFileSet()
	results, err := driver.CheckFiles(cmd.Context(), fileSet, paths, opts)
	if err != nil {
		return err
	}

	hadErrors := false
	for _, res := range results {
		if res.Bag.HasErrors() {
			hadErrors = true
		}
		if res.Bag.Len() == 0 {
			continue
		}
		if asJSON {
			if err := diagfmt.JSON(cmd.OutOrStdout(), res.Bag, fileSet, diagfmt.JSONOpts{
				IncludePositions: true,
				IncludeNotes:     true,
			}); err != nil {
				return err
			}
			continue
		}
		diagfmt.Pretty(os.Stderr, res.Bag, fileSet, diagfmt.PrettyOpts{
			Color:      useColor(cmd, os.Stderr),
			ShowSource: true,
			ShowNotes:  true,
		})
	}

	if hadErrors {
		return fmt.Errorf("check finished with errors")
	}
	if !asJSON {
		fmt.Fprintf(cmd.OutOrStdout(), "checked %d file(s), no errors\n", len(results))
	}
	return nil
}

// collectPaths expands the command arguments into source files. Directory
// arguments are walked; no arguments means the project manifest.
func collectPaths(args []string) ([]string, error) {
	if len(args) == 0 {
		manifestPath, ok, err := project.Find(".")
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("no %s found; pass files or directories explicitly", project.ManifestName)
		}
		manifest, err := project.Load(manifestPath)
		if err != nil {
			return nil, err
		}
		return manifest.SourceFiles()
	}

	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			files, err := driver.ListSourceFiles(arg)
			if err != nil {
				return nil, err
			}
			paths = append(paths, files...)
			continue
		}
		paths = append(paths, arg)
	}
	return paths, nil
}

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"lantern/internal/engine"
	"lantern/internal/index"
	"lantern/internal/scan"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Query the persisted index non-interactively",
	Long:  `Rank entries from the persisted index against a query and print them for scripting.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

var (
	searchLimit     int
	searchPathsOnly bool
)

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 20, "Maximum number of results")
	searchCmd.Flags().BoolVarP(&searchPathsOnly, "paths", "p", false, "Print bare paths only")
}

func runSearch(cmd *cobra.Command, args []string) error {
	indexPath, err := index.DefaultPath()
	if err != nil {
		return fmt.Errorf("failed to locate config directory: %w", err)
	}

	root, err := resolveRoot("")
	if err != nil {
		return err
	}

	eng := engine.New(root, scan.DefaultOptions(), indexPath)
	if !eng.LoadPersistedIndex() {
		return fmt.Errorf("no index found at %s (run 'lantern scan' first)", indexPath)
	}

	results := eng.Search(args[0])
	if searchLimit > 0 && len(results) > searchLimit {
		results = results[:searchLimit]
	}

	if searchPathsOnly {
		for _, e := range results {
			fmt.Println(e.Path)
		}
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "TYPE\tNAME\tPATH\n")
	for _, e := range results {
		kind := "file"
		if e.IsDir {
			kind = "dir"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", kind, e.Name, e.Path)
	}
	w.Flush()

	return nil
}

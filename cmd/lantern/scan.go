package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"lantern/internal/engine"
	"lantern/internal/index"
	"lantern/internal/pathutil"
	"lantern/internal/scan"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a directory tree and build the index",
	Long: `Scan a directory tree, build the name index, and persist it to the
per-user configuration directory for later queries.`,
	RunE: runScan,
}

var (
	scanRoot          string
	scanIncludeHidden bool
	scanExclude       []string
	scanNoSave        bool
	scanProgress      time.Duration
)

func init() {
	scanCmd.Flags().StringVarP(&scanRoot, "root", "r", "", "Root directory to scan (default: home directory)")
	scanCmd.Flags().BoolVar(&scanIncludeHidden, "include-hidden", false, "Index names starting with '.'")
	scanCmd.Flags().StringSliceVarP(&scanExclude, "exclude", "e", nil, "Extra directory names to skip (can be repeated)")
	scanCmd.Flags().BoolVar(&scanNoSave, "no-save", false, "Do not persist the index to disk")
	scanCmd.Flags().DurationVar(&scanProgress, "progress-interval", 30*time.Second, "Emit progress lines to stderr at this interval when not a TTY (0 to disable)")
}

func runScan(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(scanRoot)
	if err != nil {
		return err
	}

	indexPath := ""
	if !scanNoSave {
		indexPath, err = index.DefaultPath()
		if err != nil {
			return fmt.Errorf("failed to locate config directory: %w", err)
		}
	}

	opts := scan.DefaultOptions().WithSkipHidden(!scanIncludeHidden)
	for _, name := range scanExclude {
		opts.AddExcludedName(name)
	}

	fmt.Printf("Scanning %s...\n", root)

	eng := engine.New(root, opts, indexPath)
	startTime := time.Now()
	if err := eng.StartScan(); err != nil {
		return err
	}

	// Scan runs in the background; this loop only renders progress.
	isTTY := isTerminal()
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()
	var spinnerIdx int
	lastNonTTY := time.Now()

	for range ticker.C {
		p := eng.Progress()
		elapsed := time.Since(startTime).Round(time.Millisecond)

		if isTTY {
			spinner := spinnerFrames[spinnerIdx%len(spinnerFrames)]
			spinnerIdx++
			fmt.Fprintf(os.Stderr, "\r\033[K%s Indexing... %s/%s folders | %s entries | %s",
				spinner,
				humanize.Comma(int64(p.IndexedFolders)),
				humanize.Comma(int64(p.TotalFolders)),
				humanize.Comma(int64(p.TotalFiles)),
				elapsed)
		} else if scanProgress > 0 && time.Since(lastNonTTY) >= scanProgress {
			fmt.Fprintf(os.Stderr, "PROGRESS folders=%d/%d entries=%d elapsed=%s\n",
				p.IndexedFolders, p.TotalFolders, p.TotalFiles, elapsed)
			lastNonTTY = time.Now()
		}

		if p.IsComplete && !eng.Scanning() {
			break
		}
	}

	if isTTY {
		fmt.Fprintf(os.Stderr, "\r\033[K")
	}

	final := eng.Progress()
	fmt.Printf("Scan completed in %s\n", time.Since(startTime).Round(time.Millisecond))
	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Entries: %s\n", humanize.Comma(int64(final.TotalFiles)))
	fmt.Printf("  Folders: %s\n", humanize.Comma(int64(final.IndexedFolders)))
	if indexPath != "" {
		fmt.Printf("  Index:   %s\n", indexPath)
	}

	return nil
}

func resolveRoot(flagValue string) (string, error) {
	root := flagValue
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not find home directory: %w", err)
		}
		root = home
	}
	root = pathutil.ExpandUser(root)
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve root path: %w", err)
	}
	return pathutil.Normalize(abs), nil
}

func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

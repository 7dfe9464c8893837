package main

import (
	"fmt"
	"os"

	"lantern/internal/index"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display persisted index metadata",
	Long:  `Print the location, size, and entry count of the persisted index.`,
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	indexPath, err := index.DefaultPath()
	if err != nil {
		return fmt.Errorf("failed to locate config directory: %w", err)
	}

	fmt.Printf("Index Information\n")
	fmt.Printf("=================\n\n")
	fmt.Printf("Location: %s\n", indexPath)

	fi, err := os.Stat(indexPath)
	if err != nil {
		fmt.Printf("Status:   not present (run 'lantern scan' to build one)\n")
		return nil
	}

	entries, ok := index.Load(indexPath)
	if !ok {
		fmt.Printf("Status:   unreadable or malformed (rebuild with 'lantern scan')\n")
		return nil
	}

	var dirs int
	for _, e := range entries {
		if e.IsDir {
			dirs++
		}
	}

	fmt.Printf("Written:  %s\n", humanize.Time(fi.ModTime()))
	fmt.Printf("Size:     %s\n", humanize.Bytes(uint64(fi.Size())))
	fmt.Printf("\nStatistics\n")
	fmt.Printf("----------\n")
	fmt.Printf("Entries:     %s\n", humanize.Comma(int64(len(entries))))
	fmt.Printf("Directories: %s\n", humanize.Comma(int64(dirs)))
	fmt.Printf("Files:       %s\n", humanize.Comma(int64(len(entries)-dirs)))

	return nil
}

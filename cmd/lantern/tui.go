package main

import (
	"fmt"

	"lantern/internal/engine"
	"lantern/internal/index"
	"lantern/internal/scan"
	"lantern/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Search the index interactively",
	Long: `Open an interactive launcher over the index. If no persisted index
exists a background scan starts and results appear once it commits.
The selected path is printed to stdout on exit.`,
	RunE: runTUI,
}

var tuiRoot string

func init() {
	tuiCmd.Flags().StringVarP(&tuiRoot, "root", "r", "", "Root directory to scan if no index exists (default: home directory)")
}

func runTUI(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(tuiRoot)
	if err != nil {
		return err
	}

	indexPath, err := index.DefaultPath()
	if err != nil {
		return fmt.Errorf("failed to locate config directory: %w", err)
	}

	eng := engine.New(root, scan.DefaultOptions(), indexPath)
	model := tui.NewModel(eng)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(cmd.ErrOrStderr()))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if selected := model.Selected(); selected != "" {
		fmt.Println(selected)
	}

	return nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/jansmrcka/gitwright/internal/config"
	"github.com/jansmrcka/gitwright/internal/git"
	"github.com/jansmrcka/gitwright/internal/theme"
	"github.com/jansmrcka/gitwright/internal/ui"
	"github.com/spf13/cobra"

	tea "github.com/charmbracelet/bubbletea"
)

var version = "dev"

var flagTheme string

var rootCmd = &cobra.Command{
	Use:     "gitwright",
	Short:   "A status-dashboard git porcelain for the terminal",
	Version: version,
	RunE:    runStatus,
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Browse recent commits with diff preview",
	RunE:  runLog,
}

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Review staged changes and commit",
	RunE:  runCommit,
}

func init() {
	rootCmd.Flags().StringVar(&flagTheme, "theme", "", "color theme (dark, light)")
	rootCmd.AddCommand(logCmd, commitCmd)
}

// Execute runs the root CLI command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func resolveTheme(cfg config.Config) theme.Theme {
	name := cfg.Theme
	if flagTheme != "" {
		name = flagTheme
	}
	if t, ok := theme.Themes[name]; ok {
		return t
	}
	return theme.DarkTheme()
}

// runStatus opens the status dashboard: the default action, section tree
// and all, wired straight through status.Assembler.
func runStatus(cmd *cobra.Command, args []string) error {
	repo, err := git.NewRepo(".")
	if err != nil {
		return err
	}

	cfg := config.Load()
	t := resolveTheme(cfg)
	styles := ui.NewStyles(t)

	model := ui.NewModel(repo, cfg, styles, t)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runCommit(cmd *cobra.Command, args []string) error {
	repo, err := git.NewRepo(".")
	if err != nil {
		return err
	}

	cfg := config.Load()
	t := resolveTheme(cfg)
	styles := ui.NewStyles(t)

	model := ui.NewModel(repo, cfg, styles, t).StartInCommitMode()
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runLog(cmd *cobra.Command, args []string) error {
	repo, err := git.NewRepo(".")
	if err != nil {
		return err
	}
	if !repo.HasCommits() {
		fmt.Println("No commits yet.")
		return nil
	}

	cfg := config.Load()
	t := resolveTheme(cfg)
	styles := ui.NewStyles(t)

	model := ui.NewLogModel(repo, cfg, styles, t)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

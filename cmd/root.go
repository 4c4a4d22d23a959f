// Package cmd wires the command line entry point.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mkerr/twig/internal/config"
	"github.com/mkerr/twig/internal/git"
	"github.com/mkerr/twig/internal/log"
	"github.com/mkerr/twig/internal/ui"
)

// Version is overridden at build time via -ldflags.
var Version = "dev"

var (
	configPath string
	debugLog   string
)

var rootCmd = &cobra.Command{
	Use:     "twig",
	Short:   "A terminal UI for managing git branches",
	Long:    `twig - browse, create, check out and sweep local git branches from the terminal`,
	Version: Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		cfg, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if debugLog != "" {
			cfg.DebugLog = debugLog
		}

		if err := log.SetFile(cfg.DebugLog); err != nil {
			fmt.Fprintf(os.Stderr, "warning: debug log unavailable: %v\n", err)
		}
		defer log.Close()

		client := git.New()
		if !client.InWorkTree() {
			return fmt.Errorf("not a git repository")
		}

		p := tea.NewProgram(ui.NewModel(cfg, client), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to run app: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.Flags().StringVar(&debugLog, "debug-log", "", "write debug logging to this file")
	rootCmd.SilenceUsage = true
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

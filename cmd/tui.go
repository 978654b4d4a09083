package cmd

import (
	"fmt"

	"product-console/internal/tui"
	"product-console/pkg/logger"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var tuiLogFile string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the terminal console",
	Long: `Start the interactive terminal console: browse products and add new ones.

Logs would corrupt the screen, so they are discarded unless --log-file is set.`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiLogFile, "log-file", "", "Write logs to this file")
}

func runTUI(cmd *cobra.Command, args []string) error {
	log := zap.NewNop()
	if tuiLogFile != "" {
		logConfig := zap.NewDevelopmentConfig()
		logConfig.OutputPaths = []string{tuiLogFile}
		logConfig.ErrorOutputPaths = []string{tuiLogFile}
		fileLogger, err := logConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		log = fileLogger
	}
	logger.SetLogger(log)
	defer log.Sync()

	model := tui.NewModel(cmd.Context(), newAPIClient(log), log)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ebelikov/go-qr-studio/internal/logger"
	"github.com/ebelikov/go-qr-studio/internal/service"
)

type TUI struct {
	services  *service.ClientServices
	outputDir string
}

func New(services *service.ClientServices, outputDir string, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, outputDir: outputDir}, nil
}

// MainLoop runs the interactive generator until the user quits.
func (t *TUI) MainLoop(ctx context.Context) error {
	model := newMainLoopModel(ctx, t.services, t.outputDir)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

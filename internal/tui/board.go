package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"pookie4u/internal/progress"
)

func RunBoard(ctx context.Context, eng *progress.Engine, out io.Writer) error {
	m := newBoardModel(ctx, eng)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aminakh/trk/internal/storage"
	"github.com/aminakh/trk/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// Automatic backup on TUI startup, after a successful load
	ctx.PerformAutomaticBackup()

	p := tea.NewProgram(tui.NewModel(ctx.Service), tea.WithAltScreen())

	// Committed mutations flow back into the program as refresh messages.
	// Send must not run on the event-loop goroutine, hence the go.
	subID := ctx.Service.Subscribe(func(storage.Event) {
		go p.Send(tui.StoreChangedMsg{})
	})
	defer ctx.Service.Unsubscribe(subID)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}

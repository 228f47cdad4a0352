package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smagulov/flightlog/internal/bot"
)

// RunChatTUI starts the interactive console chat for one user.
func RunChatTUI(userID int64, router *bot.Router) error {
	p := tea.NewProgram(NewChatModel(userID, router), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

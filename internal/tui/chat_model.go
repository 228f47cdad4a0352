package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smagulov/flightlog/internal/bot"
)

var (
	userStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).Bold(true)
	botStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	menuStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))

	// Replies carry Telegram-flavoured HTML; the terminal gets plain text.
	htmlStripper = strings.NewReplacer("<b>", "", "</b>", "")
)

// ChatModel is the console chat used to drive the bot without Telegram.
// Every submitted line goes through the same router as a Telegram
// message would; exported documents land in the working directory.
type ChatModel struct {
	userID int64
	router *bot.Router

	input      textinput.Model
	transcript []string
	width      int
	height     int
}

// NewChatModel creates the console chat model and greets the user the
// way /start would.
func NewChatModel(userID int64, router *bot.Router) ChatModel {
	ti := textinput.New()
	ti.Placeholder = "Type a message..."
	ti.CharLimit = 128
	ti.Focus()

	m := ChatModel{userID: userID, router: router, input: ti}
	m.deliver(router.Handle(userID, "/start"))
	return m
}

// Init initializes the chat model
func (m ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.SetValue("")
			m.transcript = append(m.transcript, userStyle.Render("you ")+line)
			m.deliver(m.router.Handle(m.userID, line))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// deliver renders router replies into the transcript, writing any
// exported document to disk.
func (m *ChatModel) deliver(replies []bot.Reply) {
	for _, reply := range replies {
		if reply.Document != nil {
			if err := os.WriteFile(reply.Document.Name, reply.Document.Data, 0644); err != nil {
				m.transcript = append(m.transcript, errorStyle.Render("could not save "+reply.Document.Name+": "+err.Error()))
			} else {
				m.transcript = append(m.transcript, successStyle.Render("saved "+reply.Document.Name))
			}
			continue
		}
		for _, line := range strings.Split(htmlStripper.Replace(reply.Text), "\n") {
			m.transcript = append(m.transcript, botStyle.Render("bot ")+line)
		}
		if reply.ShowMenu {
			m.transcript = append(m.transcript, menuStyle.Render(strings.Join(bot.MenuLabels(), " | ")))
		}
	}
}

// View renders the transcript tail above the input line.
func (m ChatModel) View() string {
	var b strings.Builder

	visible := m.transcript
	if m.height > 4 && len(visible) > m.height-4 {
		visible = visible[len(visible)-(m.height-4):]
	}
	for _, line := range visible {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: send • esc: quit"))
	return b.String()
}

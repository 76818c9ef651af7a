// Package tui holds the interactive chat panel for the Dayflow AI
// assistant, built on Bubble Tea.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dayflowhq/dayflow/internal/api"
)

// Assistant is the slice of the API client the chat panel needs.
type Assistant interface {
	Chat(ctx context.Context, message string) (*api.ChatResponse, error)
}

// chatSpeaker identifies who produced a transcript entry.
type chatSpeaker int

const (
	speakerUser chatSpeaker = iota
	speakerAssistant
	speakerError
)

type chatEntry struct {
	speaker chatSpeaker
	text    string
	at      time.Time
}

// ChatModel is the Bubble Tea model for the assistant chat panel.
type ChatModel struct {
	assistant Assistant
	ctx       context.Context

	input    textinput.Model
	view     viewport.Model
	spin     spinner.Model
	styles   ChatStyles
	history  []chatEntry
	waiting  bool
	ready    bool
	quitting bool
	width    int
	height   int
}

// ChatStyles contains the lipgloss styles for the chat panel.
type ChatStyles struct {
	Title     lipgloss.Style
	You       lipgloss.Style
	Assistant lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
	Border    lipgloss.Style
}

// DefaultChatStyles returns the default chat panel styles.
func DefaultChatStyles() ChatStyles {
	return ChatStyles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")). // Purple
			MarginBottom(1),
		You: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")), // Cyan
		Assistant: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46")), // Green
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")), // Red
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")). // Gray
			MarginTop(1),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1),
	}
}

// NewChatModel creates a chat panel backed by the given assistant.
func NewChatModel(ctx context.Context, assistant Assistant) ChatModel {
	input := textinput.New()
	input.Placeholder = "Ask about leave, payroll, attendance..."
	input.CharLimit = 500
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))

	return ChatModel{
		assistant: assistant,
		ctx:       ctx,
		input:     input,
		spin:      spin,
		styles:    DefaultChatStyles(),
	}
}

// Messages produced by the assistant round-trip.

type assistantReplyMsg struct {
	text string
}

type assistantErrMsg struct {
	err error
}

// Init starts the cursor blink.
func (m ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the chat state.
func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			return m.submit()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		viewHeight := msg.Height - 6
		if viewHeight < 3 {
			viewHeight = 3
		}
		if !m.ready {
			m.view = viewport.New(msg.Width-4, viewHeight)
			m.ready = true
		} else {
			m.view.Width = msg.Width - 4
			m.view.Height = viewHeight
		}
		m.input.Width = msg.Width - 8
		m.refreshTranscript()
		return m, nil

	case assistantReplyMsg:
		m.waiting = false
		m.history = append(m.history, chatEntry{speaker: speakerAssistant, text: msg.text, at: time.Now()})
		m.refreshTranscript()
		return m, nil

	case assistantErrMsg:
		m.waiting = false
		m.history = append(m.history, chatEntry{speaker: speakerError, text: msg.err.Error(), at: time.Now()})
		m.refreshTranscript()
		return m, nil

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.view, cmd = m.view.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submit sends the current input to the assistant.
func (m ChatModel) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.waiting {
		return m, nil
	}

	m.history = append(m.history, chatEntry{speaker: speakerUser, text: text, at: time.Now()})
	m.input.Reset()
	m.waiting = true
	m.refreshTranscript()

	assistant := m.assistant
	ctx := m.ctx
	ask := func() tea.Msg {
		resp, err := assistant.Chat(ctx, text)
		if err != nil {
			return assistantErrMsg{err: err}
		}
		return assistantReplyMsg{text: resp.Response}
	}
	return m, tea.Batch(ask, m.spin.Tick)
}

// View renders the chat panel.
func (m ChatModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Starting chat..."
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Dayflow Assistant"))
	b.WriteString("\n")
	b.WriteString(m.styles.Border.Render(m.view.View()))
	b.WriteString("\n")

	if m.waiting {
		b.WriteString(m.spin.View() + " thinking...")
	} else {
		b.WriteString(m.input.View())
	}

	b.WriteString(m.styles.Help.Render("\nenter send • esc quit"))
	return b.String()
}

// refreshTranscript re-renders the history into the viewport and
// scrolls to the bottom.
func (m *ChatModel) refreshTranscript() {
	if !m.ready {
		return
	}

	var b strings.Builder
	for i, entry := range m.history {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch entry.speaker {
		case speakerUser:
			b.WriteString(m.styles.You.Render("You") + "\n" + entry.text)
		case speakerAssistant:
			b.WriteString(m.styles.Assistant.Render("Assistant") + "\n" + entry.text)
		case speakerError:
			b.WriteString(m.styles.Error.Render("Error") + "\n" + entry.text)
		}
	}
	m.view.SetContent(b.String())
	m.view.GotoBottom()
}

// Transcript returns the rendered conversation so far, one line per
// entry, for non-interactive output and tests.
func (m ChatModel) Transcript() []string {
	lines := make([]string, 0, len(m.history))
	for _, entry := range m.history {
		prefix := "you"
		switch entry.speaker {
		case speakerAssistant:
			prefix = "assistant"
		case speakerError:
			prefix = "error"
		}
		lines = append(lines, prefix+": "+entry.text)
	}
	return lines
}

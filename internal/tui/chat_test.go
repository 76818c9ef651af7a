package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayflowhq/dayflow/internal/api"
)

type fakeAssistant struct {
	reply string
	err   error
	asked []string
}

func (f *fakeAssistant) Chat(ctx context.Context, message string) (*api.ChatResponse, error) {
	f.asked = append(f.asked, message)
	if f.err != nil {
		return nil, f.err
	}
	return &api.ChatResponse{Response: f.reply}, nil
}

func newReadyChat(assistant Assistant) ChatModel {
	m := NewChatModel(context.Background(), assistant)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(ChatModel)
}

func TestChatWindowSizeMakesReady(t *testing.T) {
	m := NewChatModel(context.Background(), &fakeAssistant{})
	assert.Contains(t, m.View(), "Starting chat...")

	m = newReadyChat(&fakeAssistant{})
	assert.Contains(t, m.View(), "Dayflow Assistant")
}

func TestChatSubmitRecordsQuestionAndAsks(t *testing.T) {
	assistant := &fakeAssistant{reply: "You have 7 days of leave left."}
	m := newReadyChat(assistant)
	m.input.SetValue("How much leave do I have?")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(ChatModel)

	require.NotNil(t, cmd)
	assert.True(t, m.waiting)
	require.Len(t, m.Transcript(), 1)
	assert.Equal(t, "you: How much leave do I have?", m.Transcript()[0])
	assert.Empty(t, m.input.Value())
}

func TestChatEmptySubmitIsNoop(t *testing.T) {
	m := newReadyChat(&fakeAssistant{})
	m.input.SetValue("   ")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(ChatModel)

	assert.Nil(t, cmd)
	assert.False(t, m.waiting)
	assert.Empty(t, m.Transcript())
}

func TestChatReplyAppendsToTranscript(t *testing.T) {
	m := newReadyChat(&fakeAssistant{})
	m.input.SetValue("hello")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(ChatModel)

	updated, _ = m.Update(assistantReplyMsg{text: "Hi! How can I help?"})
	m = updated.(ChatModel)

	assert.False(t, m.waiting)
	require.Len(t, m.Transcript(), 2)
	assert.Equal(t, "assistant: Hi! How can I help?", m.Transcript()[1])
}

func TestChatErrorAppendsToTranscript(t *testing.T) {
	m := newReadyChat(&fakeAssistant{})
	m.input.SetValue("hello")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(ChatModel)

	updated, _ = m.Update(assistantErrMsg{err: errors.New("could not reach the Dayflow backend")})
	m = updated.(ChatModel)

	assert.False(t, m.waiting)
	require.Len(t, m.Transcript(), 2)
	assert.Contains(t, m.Transcript()[1], "error: could not reach")
}

func TestChatSubmitCommandCallsAssistant(t *testing.T) {
	assistant := &fakeAssistant{reply: "Sure."}
	m := newReadyChat(assistant)
	m.input.SetValue("question")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(ChatModel)
	require.NotNil(t, cmd)

	// Batch commands wrap the ask and the spinner tick; running the
	// batch yields the messages it produces.
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	require.True(t, ok)

	var gotReply bool
	for _, sub := range batch {
		if reply, ok := sub().(assistantReplyMsg); ok {
			gotReply = true
			assert.Equal(t, "Sure.", reply.text)
		}
	}
	assert.True(t, gotReply)
	assert.Equal(t, []string{"question"}, assistant.asked)
}

func TestChatEscQuits(t *testing.T) {
	m := newReadyChat(&fakeAssistant{})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(ChatModel)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestChatIgnoresSubmitWhileWaiting(t *testing.T) {
	assistant := &fakeAssistant{reply: "ok"}
	m := newReadyChat(assistant)
	m.input.SetValue("first")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(ChatModel)

	m.input.SetValue("second")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(ChatModel)

	assert.Nil(t, cmd)
	assert.Len(t, m.Transcript(), 1)
}

// Package ui holds small bubbletea components shared by the interactive screens.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/swatch-cli/swatch/style"
)

// NotificationLifetime is how long a notification stays on screen.
const NotificationLifetime = 3 * time.Second

// Model shows one transient notification next to the last line of a view.
type Model struct {
	notification string
	generation   int
}

type notificationMsg string

type clearNotificationMsg struct {
	generation int
}

// Notify returns a command that displays text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return notificationMsg(text)
	}
}

// Notification returns the text on screen, if any.
func (m *Model) Notification() string {
	return m.notification
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case notificationMsg:
		m.notification = string(msg)
		m.generation++
		generation := m.generation
		return tea.Tick(NotificationLifetime, func(time.Time) tea.Msg {
			return clearNotificationMsg{generation: generation}
		})
	case clearNotificationMsg:
		// a newer notification restarts the lifetime
		if msg.generation == m.generation {
			m.notification = ""
		}
	}
	return nil
}

// View appends the notification to the last line of content.
func (m *Model) View(content string) string {
	if m.notification == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + style.Faint(m.notification)
	return strings.Join(lines, "\n")
}

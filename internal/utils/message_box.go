package utils

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MessageType defines the type of message box to render.
type MessageType int

const (
	InfoMessage MessageType = iota
	SuccessMessage
	ErrorMessage
)

var boxStyles = map[MessageType]struct {
	color  lipgloss.Color
	prefix string
}{
	InfoMessage:    {lipgloss.Color("86"), "ℹ"},
	SuccessMessage: {lipgloss.Color("42"), "✓"},
	ErrorMessage:   {lipgloss.Color("196"), "✗"},
}

// Box is a builder for creating formatted message boxes.
type Box struct {
	messageType MessageType
	title       string
	content     []string
}

// NewBox creates a new message box with a specific type.
func NewBox(messageType MessageType, title string) *Box {
	return &Box{messageType: messageType, title: title}
}

// AddLine adds a line of text to the message box content.
func (b *Box) AddLine(text string) *Box {
	b.content = append(b.content, text)
	return b
}

// Render builds and returns the formatted message box as a string.
func (b *Box) Render() string {
	s, ok := boxStyles[b.messageType]
	if !ok {
		s = boxStyles[InfoMessage]
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(s.color).Render(s.prefix) + " " + b.title
	lines := append([]string{header}, b.content...)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.color).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// Convenience functions for creating and rendering message boxes.

func Info(title string, lines ...string) string {
	return render(InfoMessage, title, lines)
}

func Success(title string, lines ...string) string {
	return render(SuccessMessage, title, lines)
}

func Error(title string, lines ...string) string {
	return render(ErrorMessage, title, lines)
}

func render(t MessageType, title string, lines []string) string {
	box := NewBox(t, title)
	for _, line := range lines {
		box.AddLine(line)
	}
	return box.Render()
}

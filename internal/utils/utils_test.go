package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableFormatter(t *testing.T) {
	table := NewTableFormatter([]string{"#", "Name"})
	table.AddRow([]string{"1", "Buy milk"})
	table.AddRow([]string{"too", "many", "cells"})

	assert.Equal(t, 1, table.Len())
	want := "┌───┬──────────┐\n" +
		"│ # │ Name     │\n" +
		"├───┼──────────┤\n" +
		"│ 1 │ Buy milk │\n" +
		"└───┴──────────┘\n"
	assert.Equal(t, want, table.String())
}

func TestPrompterReadLine(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("first\r\nlast"), &out)

	line, err := p.ReadLine("Title: ")
	require.NoError(t, err)
	assert.Equal(t, "first", line)

	line, err = p.ReadLine("Description: ")
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = p.ReadLine("More: ")
	assert.Error(t, err)
	assert.Equal(t, "Title: Description: More: ", out.String())
}

func TestPrompterReadInt(t *testing.T) {
	p := NewPrompter(strings.NewReader(" 3 \nabc\n"), &bytes.Buffer{})

	n, ok, err := p.ReadInt("n: ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	_, ok, err = p.ReadInt("n: ")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPrompterConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"yes\n", true},
		{"Y\n", true},
		{"no\n", false},
		{"\n", false},
	}

	for _, tt := range tests {
		p := NewPrompter(strings.NewReader(tt.input), &bytes.Buffer{})
		got, err := p.Confirm(false, "delete task", "Buy milk")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}

	p := NewPrompter(strings.NewReader(""), &bytes.Buffer{})
	got, err := p.Confirm(true, "delete task", "Buy milk")
	require.NoError(t, err)
	assert.True(t, got)
}

func TestMessageBoxContainsTitleAndLines(t *testing.T) {
	out := Success("Task deleted", "Buy milk")
	assert.Contains(t, out, "Task deleted")
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "✓")

	info := Info("No tasks available.")
	assert.Contains(t, info, "ℹ")
	assert.Contains(t, info, "No tasks available.")

	assert.Contains(t, Error("Invalid task number."), "✗ Invalid task number.")
}

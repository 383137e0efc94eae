package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	var p Prompter = Defaults{}

	v, err := p.Input("Name", "demo", nil)
	require.NoError(t, err)
	assert.Equal(t, "demo", v)

	ok, err := p.Confirm("Continue?", true)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = p.Input("Author", "x", func(string) error { return errors.New("bad") })
	assert.Error(t, err)
}

func TestScripted(t *testing.T) {
	notEmpty := func(s string) error {
		if s == "" {
			return errors.New("required")
		}
		return nil
	}
	p := &Scripted{Answers: []string{"", "weather", "", "invalid-then", "n", "oui"}}

	v, err := p.Input("Name", "dir", nil)
	require.NoError(t, err)
	assert.Equal(t, "dir", v, "empty answer takes the default")

	v, err = p.Input("Description", "", notEmpty)
	require.NoError(t, err)
	assert.Equal(t, "weather", v)

	v, err = p.Input("Main file", "", notEmpty)
	require.NoError(t, err)
	assert.Equal(t, "invalid-then", v, "empty default fails validation and the next answer is used")

	ok, _ := p.Confirm("Sure?", true)
	assert.False(t, ok)
	ok, _ = p.Confirm("Really?", false)
	assert.True(t, ok)
	ok, _ = p.Confirm("Out of answers", true)
	assert.True(t, ok)

	assert.Len(t, p.Asked, 7)
}

func TestInputModel(t *testing.T) {
	ti := textinput.New()
	ti.Focus()
	m := &inputModel{label: "Author", def: "johan", input: ti, validate: func(s string) error {
		if len(s) > 5 {
			return errors.New("too long")
		}
		return nil
	}}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abcdefg")})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd, "validation failure keeps the prompt open")
	assert.Equal(t, "too long", m.errMsg)
	assert.Contains(t, m.View(), "too long")

	m.input.SetValue("")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.done)
	assert.Equal(t, "johan", m.value)
}

func TestConfirmModel(t *testing.T) {
	m := &confirmModel{value: true}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	assert.True(t, m.done)
	assert.False(t, m.value)

	m = &confirmModel{value: false}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.done)
	assert.False(t, m.value)

	m = &confirmModel{}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.aborted)
}

func TestBox(t *testing.T) {
	out := Box("Update available", "1.0.0 -> 1.1.0")
	assert.Contains(t, out, "Update available")
	assert.Contains(t, out, "1.0.0 -> 1.1.0")
}

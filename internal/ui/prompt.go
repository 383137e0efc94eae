package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// ErrAborted is returned when the user cancels a prompt with ctrl+c or esc.
var ErrAborted = errors.New("prompt aborted")

// Prompter asks the user questions.
type Prompter interface {
	// Input asks for a line of text. An empty answer yields def. validate,
	// when non-nil, is applied to the final value; the prompt repeats until
	// it passes.
	Input(label, def string, validate func(string) error) (string, error)
	// Confirm asks a yes/no question.
	Confirm(label string, def bool) (bool, error)
}

// NewPrompter returns an interactive prompter when stdin is a terminal and
// non-interactive mode is off, and a defaults-only prompter otherwise.
func NewPrompter(nonInteractive bool) Prompter {
	if nonInteractive || !IsInteractive(os.Stdin) {
		return Defaults{}
	}
	return &TeaPrompter{In: os.Stdin, Out: os.Stderr}
}

// IsInteractive reports whether f is a terminal.
func IsInteractive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Defaults answers every prompt with its default value.
type Defaults struct{}

func (Defaults) Input(_ string, def string, validate func(string) error) (string, error) {
	if validate != nil {
		if err := validate(def); err != nil {
			return "", err
		}
	}
	return def, nil
}

func (Defaults) Confirm(_ string, def bool) (bool, error) { return def, nil }

// Scripted answers prompts from a fixed list, in order. An empty answer
// means "accept the default". It is meant for tests.
type Scripted struct {
	Answers []string
	// Asked records every label that was prompted.
	Asked []string
}

func (s *Scripted) next(label string) (string, bool) {
	s.Asked = append(s.Asked, label)
	if len(s.Answers) == 0 {
		return "", false
	}
	a := s.Answers[0]
	s.Answers = s.Answers[1:]
	return a, true
}

func (s *Scripted) Input(label, def string, validate func(string) error) (string, error) {
	for {
		a, ok := s.next(label)
		if !ok {
			return Defaults{}.Input(label, def, validate)
		}
		if a == "" {
			a = def
		}
		if validate != nil && validate(a) != nil {
			continue
		}
		return a, nil
	}
}

func (s *Scripted) Confirm(label string, def bool) (bool, error) {
	a, ok := s.next(label)
	if !ok || a == "" {
		return def, nil
	}
	return parseYesNo(a, def), nil
}

func parseYesNo(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "o", "oui":
		return true
	case "n", "no", "non":
		return false
	default:
		return def
	}
}

// TeaPrompter renders prompts with bubbletea.
type TeaPrompter struct {
	In  io.Reader
	Out io.Writer
}

func (p *TeaPrompter) Input(label, def string, validate func(string) error) (string, error) {
	ti := textinput.New()
	ti.Placeholder = def
	ti.Prompt = ""
	ti.Width = 50
	ti.Focus()

	m := &inputModel{label: label, def: def, validate: validate, input: ti}
	final, err := p.run(m)
	if err != nil {
		return "", err
	}
	res := final.(*inputModel)
	if res.aborted {
		return "", ErrAborted
	}
	return res.value, nil
}

func (p *TeaPrompter) Confirm(label string, def bool) (bool, error) {
	m := &confirmModel{label: label, value: def}
	final, err := p.run(m)
	if err != nil {
		return false, err
	}
	res := final.(*confirmModel)
	if res.aborted {
		return false, ErrAborted
	}
	return res.value, nil
}

func (p *TeaPrompter) run(m tea.Model) (tea.Model, error) {
	program := tea.NewProgram(m, tea.WithInput(p.In), tea.WithOutput(p.Out))
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("running prompt: %w", err)
	}
	return final, nil
}

type inputModel struct {
	label    string
	def      string
	validate func(string) error
	input    textinput.Model

	value   string
	errMsg  string
	done    bool
	aborted bool
}

func (m *inputModel) Init() tea.Cmd { return textinput.Blink }

func (m *inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			v := strings.TrimSpace(m.input.Value())
			if v == "" {
				v = m.def
			}
			if m.validate != nil {
				if err := m.validate(v); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			m.value = v
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.errMsg = ""
	return m, cmd
}

func (m *inputModel) View() string {
	q := AccentStyle.Render("? ") + BoldStyle.Render(m.label) + " "
	if m.done {
		return q + Accent(m.value) + "\n"
	}
	if m.aborted {
		return q + "\n"
	}
	view := q + m.input.View()
	if m.errMsg != "" {
		view += "\n" + Red(">> "+m.errMsg)
	}
	return view
}

type confirmModel struct {
	label   string
	value   bool
	done    bool
	aborted bool
}

func (m *confirmModel) Init() tea.Cmd { return nil }

func (m *confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit
	case tea.KeyRunes:
		switch strings.ToLower(string(key.Runes)) {
		case "y", "o":
			m.value = true
			m.done = true
			return m, tea.Quit
		case "n":
			m.value = false
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *confirmModel) View() string {
	hint := "(y/N)"
	if m.value {
		hint = "(Y/n)"
	}
	q := AccentStyle.Render("? ") + BoldStyle.Render(m.label) + " "
	if m.done {
		answer := "No"
		if m.value {
			answer = "Yes"
		}
		return q + Accent(answer) + "\n"
	}
	return q + Dim(hint)
}

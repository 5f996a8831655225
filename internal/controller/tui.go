package controller

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/spacebat/railmv/internal/model"
)

var (
	promptHeaderStyle = lipgloss.NewStyle().Bold(true)
	removedLineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	addedLineStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	helpStyle         = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI with interactive Bubble Tea prompts, delegating plain
// display to the wrapped SimpleUI.
type TUI struct {
	*SimpleUI
}

// NewTUI wraps a SimpleUI with interactive prompts.
func NewTUI(simple *SimpleUI) *TUI {
	return &TUI{SimpleUI: simple}
}

// ConfirmAction shows an interactive yes/no prompt.
func (t *TUI) ConfirmAction(prompt string) (bool, error) {
	model := newConfirmModel(prompt, false)

	final, err := runPrompt(model)
	if err != nil {
		return false, err
	}

	return final.decision == DecisionReplace || final.decision == DecisionAll, nil
}

// ConfirmReplacement shows one pending occurrence with its diff and reads
// a yes / all-in-file / quit decision.
func (t *TUI) ConfirmReplacement(rep m.Replacement) (Decision, error) {
	header := fmt.Sprintf("%s:%d", rep.File, rep.Line)
	model := newConfirmModel(header, true)
	model.diff = ReplacementDiff(rep)

	final, err := runPrompt(model)
	if err != nil {
		return DecisionQuit, err
	}

	return final.decision, nil
}

func runPrompt(model confirmModel) (confirmModel, error) {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		model.width = width
	}

	program := tea.NewProgram(model)

	final, err := program.Run()
	if err != nil {
		return model, err
	}

	result, ok := final.(confirmModel)
	if !ok {
		return model, fmt.Errorf("unexpected prompt model %T", final)
	}

	return result, nil
}

type promptKeymap struct {
	Yes  key.Binding
	All  key.Binding
	Quit key.Binding
}

func newPromptKeymap(withAll bool) promptKeymap {
	km := promptKeymap{
		Yes: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "yes"),
		),
		Quit: key.NewBinding(
			key.WithKeys("n", "q", "esc", "ctrl+c"),
			key.WithHelp("n/q", "quit"),
		),
	}

	if withAll {
		km.All = key.NewBinding(
			key.WithKeys("a", "!"),
			key.WithHelp("a", "all in file"),
		)
	}

	return km
}

// confirmModel is a one-shot prompt: it quits on the first recognized key.
type confirmModel struct {
	header   string
	diff     string
	keymap   promptKeymap
	withAll  bool
	width    int
	decision Decision
}

func newConfirmModel(header string, withAll bool) confirmModel {
	return confirmModel{
		header:   header,
		keymap:   newPromptKeymap(withAll),
		withAll:  withAll,
		decision: DecisionQuit,
	}
}

func (c confirmModel) Init() tea.Cmd {
	return nil
}

func (c confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, c.keymap.Yes):
			c.decision = DecisionReplace
			return c, tea.Quit
		case c.withAll && key.Matches(msg, c.keymap.All):
			c.decision = DecisionAll
			return c, tea.Quit
		case key.Matches(msg, c.keymap.Quit):
			c.decision = DecisionQuit
			return c, tea.Quit
		}
	}

	return c, nil
}

func (c confirmModel) View() string {
	var b strings.Builder

	b.WriteString(promptHeaderStyle.Render(c.header))
	b.WriteString("\n")

	for _, line := range strings.Split(strings.TrimRight(c.diff, "\n"), "\n") {
		if c.diff == "" {
			break
		}

		switch {
		case strings.HasPrefix(line, "-"):
			b.WriteString(removedLineStyle.Render(line))
		case strings.HasPrefix(line, "+"):
			b.WriteString(addedLineStyle.Render(line))
		default:
			b.WriteString(line)
		}

		b.WriteString("\n")
	}

	help := "[y] yes  [n/q] quit"
	if c.withAll {
		help = "[y] yes  [a] all in file  [n/q] quit"
	}

	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}

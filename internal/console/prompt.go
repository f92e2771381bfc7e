package console

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-console/internal/game"
)

// ErrQuit is returned when the user leaves a prompt with ctrl+c or esc.
var ErrQuit = errors.New("quit")

// promptModel is a one-line bubbletea prompt that finishes on enter.
type promptModel struct {
	input    textinput.Model
	question string
	answer   string
	done     bool
	quit     bool
}

func newPromptModel(question, placeholder string, styles *Styles) promptModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 32
	ti.Prompt = "> "
	ti.PromptStyle = styles.Prompt

	return promptModel{input: ti, question: question}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quit = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.answer = strings.TrimSpace(m.input.Value())
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.quit {
		return m.question + " " + m.answer + "\n"
	}
	return m.question + "\n" + m.input.View()
}

// Prompter asks the people at the table for their wagers. It implements
// game.WagerPrompter.
type Prompter struct {
	renderer *Renderer
	in       io.Reader
	out      io.Writer
	logger   *log.Logger
}

var _ game.WagerPrompter = (*Prompter)(nil)

// NewPrompter creates a prompter reading keys from in and drawing on out.
func NewPrompter(renderer *Renderer, in io.Reader, out io.Writer, logger *log.Logger) *Prompter {
	return &Prompter{
		renderer: renderer,
		in:       in,
		out:      out,
		logger:   logger.WithPrefix("prompt"),
	}
}

// ask runs a prompt to completion and returns the trimmed answer.
func (p *Prompter) ask(question, placeholder string) (string, error) {
	model := newPromptModel(question, placeholder, p.renderer.Styles())
	final, err := tea.NewProgram(model, tea.WithInput(p.in), tea.WithOutput(p.out)).Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	m := final.(promptModel)
	if m.quit {
		return "", ErrQuit
	}
	return m.answer, nil
}

// RequestWager shows the player their state and reads a wager.
func (p *Prompter) RequestWager(s game.Situation, rejected error) (game.Chips, error) {
	if rejected != nil {
		p.renderer.Rejected(rejected)
	} else {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, p.renderer.TableState(s.Community, s.HighestBet))
		fmt.Fprintln(p.out, p.renderer.PlayerState(s.Player))
	}

	question := fmt.Sprintf("%s, you owe %s. How much do you wager?", s.Player.Name, s.Owed)
	answer, err := p.ask(question, "amount, call, check, fold or all")
	if err != nil {
		return 0, err
	}

	amount, err := ParseWager(answer, s)
	p.logger.Debug("Read wager", "player", s.Player.Name, "input", answer, "amount", amount, "error", err)
	return amount, err
}

// ParseWager turns typed input into an amount. Besides plain numbers it
// accepts fold, check, call and all. Whether the amount is allowed, including
// the whole-chip rule, is decided by game.ValidateWager.
func ParseWager(input string, s game.Situation) (game.Chips, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "fold", "check":
		return 0, nil
	case "call":
		return min(s.Owed, s.Player.Stack), nil
	case "all", "allin", "all-in":
		return s.Player.Stack, nil
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: %q is not an amount", game.ErrInvalidWager, input)
	}
	return game.Chips(amount), nil
}

// Confirm asks a yes/no question; only an answer starting with y is yes.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.ask(question, "y/n")
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(answer), "y"), nil
}

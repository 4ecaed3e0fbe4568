package repl

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	evalPrompt = "➜ "
	ctrlPrompt = " :"
)

// inputMode represents the current input mode.
type inputMode int

const (
	modeEval inputMode = iota
	modeCtrl
)

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	ctrlPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	matchStyle      = suggestionStyle.Bold(true)
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
	selectedMatchStyle = selectedStyle.Bold(true)
)

// formatCommand formats the echo of a submitted line.
func formatCommand(mode inputMode, input string) string {
	if mode == modeCtrl {
		return ctrlPromptStyle.Render(ctrlPrompt) + inputStyle.Render(input)
	}

	return promptStyle.Render(evalPrompt) + inputStyle.Render(input)
}

// model is the Bubble Tea model for the REPL.
type model struct {
	ctxFunc      func() context.Context
	session      Session
	input        textinput.Model
	history      *History
	historyIdx   int
	matches      fuzzy.Matches // current fuzzy match results
	wordStart    int           // byte offset of current word start
	wordEnd      int           // byte offset of current word end
	suggIdx      int           // selected candidate index
	tabActive    bool          // whether user is tab-cycling
	preTabText   string        // input text before tab-cycling began
	preTabCursor int           // cursor position before tab-cycling began
	preview      string        // live value of the phrase being typed
	previewErr   bool
	width        int // terminal width for ellipsization
	quitting     bool
	mode         inputMode
	evalText     string
	evalCursor   int
	ctrlText     string
	ctrlCursor   int
}

// Run starts the REPL. History is kept in cacheDir, or in memory if it is
// empty.
func Run(ctx context.Context, session Session, cacheDir string) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	path := ""
	if cacheDir != "" {
		path = filepath.Join(cacheDir, baseHistory)
	}

	history := NewHistory(path)
	if err := history.Load(); err != nil {
		session.Logger.WarnContext(ctx, "could not load history",
			slog.String("path", path),
			slog.Any("error", err))
	}

	session.Logger.TraceContext(ctx, "repl start",
		slog.String("now", session.Now.String()),
		slog.Int("history", history.Len()))

	p := tea.NewProgram(newModel(ctx, session, history), tea.WithContext(ctx))
	_, err = p.Run()

	return err
}

const defaultWidth = 80

func newModel(ctx context.Context, session Session, history *History) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(evalPrompt)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	return model{
		ctxFunc:    func() context.Context { return ctx },
		session:    session,
		input:      ti,
		history:    history,
		historyIdx: history.Len(),
		suggIdx:    -1,
		width:      defaultWidth,
		mode:       modeEval,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(evalPrompt) - 2

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	input := m.input.Value()

	switch {
	case m.historyIdx < m.history.Len():
		hint := fmt.Sprintf("%s/%d",
			lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(m.historyIdx+1)),
			m.history.Len())
		b.WriteString(hintStyle.Render(hint))

	case strings.TrimSpace(input) == "":
		if m.mode == modeEval {
			b.WriteString(hintStyle.Render("Type a phrase or press Esc for commands"))
		} else {
			b.WriteString(hintStyle.Render("Type: " + strings.Join(ctrlCommands, ", ") + " (press Esc to return)"))
		}

	case len(m.matches) > 0:
		b.WriteString(renderCandidateBar(m.matches, m.suggIdx, m.tabActive, m.width))
	}

	b.WriteString("\n")

	if m.preview != "" {
		if m.previewErr {
			b.WriteString(hintStyle.Render(m.preview))
		} else {
			b.WriteString(resultStyle.Render("= " + m.preview))
		}
	}

	b.WriteString("\n")

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.tabActive = false
		m.historyIdx = m.history.Len()
		m.refresh(false)

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		if !m.tabActive || len(m.matches) == 0 {
			return m.executeInput()
		}

		// Lock in the current tab candidate without executing.
		m.tabActive = false
		m.refresh(true)

		return m, nil

	case tea.KeyTab:
		return m.cycle(1), nil

	case tea.KeyShiftTab:
		return m.cycle(-1), nil

	case tea.KeyUp:
		return m.historyStep(-1, false), nil

	case tea.KeyDown:
		return m.historyStep(1, false), nil

	case tea.KeyShiftUp:
		return m.historyStep(-1, true), nil

	case tea.KeyShiftDown:
		return m.historyStep(1, true), nil

	case tea.KeyEsc:
		if m.tabActive {
			m.tabActive = false
			m.input.SetValue(m.preTabText)
			m.input.SetCursor(m.preTabCursor)
			m.refresh(false)

			return m, nil
		}

		if m.mode == modeEval {
			return m.switchToMode(modeCtrl), nil
		}

		return m.switchToMode(modeEval), nil

	case tea.KeyRunes, tea.KeySpace:
		var cmd tea.Cmd

		m.tabActive = false
		m.historyIdx = m.history.Len()
		m.input, cmd = m.input.Update(msg)
		m.refresh(true)

		return m, cmd
	}

	// Any other key (backspace, delete, arrows) edits without completing.
	var cmd tea.Cmd

	m.tabActive = false
	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	m.refresh(false)

	return m, cmd
}

// cycle moves the tab selection by step and puts the selected candidate in
// place of the current word. A sole candidate is accepted at once.
func (m model) cycle(step int) model {
	n := len(m.matches)
	if n == 0 {
		return m
	}

	if n == 1 {
		m.replaceWord(m.matches[0].Str)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil
		m.refreshPreview()

		return m
	}

	if m.tabActive {
		m.suggIdx = (m.suggIdx + step + n) % n
	} else {
		m.tabActive = true
		m.preTabText = m.input.Value()
		m.preTabCursor = m.input.Position()

		m.suggIdx = 0
		if step < 0 {
			m.suggIdx = n - 1
		}
	}

	m.replaceWord(m.matches[m.suggIdx].Str)
	m.refreshPreview()

	return m
}

// replaceWord replaces the current word with replacement and moves the
// cursor after it.
func (m *model) replaceWord(replacement string) {
	input := m.input.Value()
	cursor := m.wordStart + len(replacement)

	m.input.SetValue(input[:m.wordStart] + replacement + input[m.wordEnd:])
	m.input.SetCursor(cursor)

	m.wordEnd = cursor
}

// refresh recomputes the completions and the live value. With autoConfirm,
// a word that already equals its sole candidate is accepted and its
// completion dropped.
func (m *model) refresh(autoConfirm bool) {
	m.matches, m.wordStart, m.wordEnd = m.computeMatches()
	if !m.tabActive {
		m.suggIdx = -1
	}

	if autoConfirm && len(m.matches) == 1 &&
		m.input.Value()[m.wordStart:m.wordEnd] == m.matches[0].Str {
		m.matches = nil
	}

	m.refreshPreview()
}

// refreshPreview resolves the phrase being typed.
func (m *model) refreshPreview() {
	m.preview, m.previewErr = "", false

	text := strings.TrimSpace(m.input.Value())
	if m.mode != modeEval || text == "" {
		return
	}

	v, err := m.session.Resolve(m.ctxFunc(), text)
	if err != nil {
		m.preview, m.previewErr = firstLine(err.Error()), true

		return
	}

	m.preview = v.String()
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")

	return line
}

func (m model) executeInput() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return m, nil
	}

	mode := m.mode

	m.evalText, m.evalCursor = "", 0
	m.ctrlText, m.ctrlCursor = "", 0
	m.input.SetValue("")
	m.matches = nil
	m.preview = ""

	if err := m.history.Add(input, mode); err != nil {
		m.session.Logger.WarnContext(m.ctxFunc(), "could not save history",
			slog.Any("error", err))
	}

	m.historyIdx = m.history.Len()

	echo := tea.Println(formatCommand(mode, input))

	if mode == modeCtrl {
		var r reply

		m.session, r = m.session.exec(m.ctxFunc(), input)

		switch {
		case r.quit:
			m.quitting = true

			return m, tea.Sequence(echo, tea.Quit)
		case r.clear:
			return m, tea.ClearScreen
		case r.err != nil:
			return m, tea.Sequence(echo, tea.Println(errorStyle.Render("error: "+r.err.Error())))
		default:
			return m, tea.Sequence(echo, tea.Println(resultStyle.Render(r.text)))
		}
	}

	v, err := m.session.Resolve(m.ctxFunc(), input)
	if err != nil {
		return m, tea.Sequence(echo, tea.Println(errorStyle.Render("error: "+err.Error())))
	}

	return m, tea.Sequence(echo, tea.Println(resultStyle.Render(v.String())))
}

// historyStep moves through the history by step. Within mode, entries of
// the other mode are skipped; otherwise the mode follows the entry.
// Stepping past the newest entry clears the input.
func (m model) historyStep(step int, withinMode bool) model {
	for i := m.historyIdx + step; i >= 0 && i < m.history.Len(); i += step {
		entry, err := m.history.Entry(i)
		if err != nil {
			break
		}

		if withinMode && entry.Mode != m.mode {
			continue
		}

		if entry.Mode != m.mode {
			m = m.switchToMode(entry.Mode)
		}

		m.historyIdx = i
		m.input.SetValue(entry.Line)
		m.input.SetCursor(len(entry.Line))
		m.refresh(false)

		return m
	}

	if step > 0 && m.historyIdx < m.history.Len() {
		m.historyIdx = m.history.Len()
		m.input.SetValue("")
		m.refresh(false)
	}

	return m
}

// switchToMode switches to mode, keeping the input of each mode.
func (m model) switchToMode(mode inputMode) model {
	if m.mode == modeEval {
		m.evalText, m.evalCursor = m.input.Value(), m.input.Position()
	} else {
		m.ctrlText, m.ctrlCursor = m.input.Value(), m.input.Position()
	}

	m.mode = mode

	if mode == modeEval {
		m.input.Prompt = promptStyle.Render(evalPrompt)
		m.input.SetValue(m.evalText)
		m.input.SetCursor(m.evalCursor)
	} else {
		m.input.Prompt = ctrlPromptStyle.Render(ctrlPrompt)
		m.input.SetValue(m.ctrlText)
		m.input.SetCursor(m.ctrlCursor)
	}

	m.tabActive = false
	m.refresh(false)

	return m
}

package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/moonlitrapids/qr-app/internal/encode"
	"github.com/moonlitrapids/qr-app/internal/prefs"
	"github.com/moonlitrapids/qr-app/internal/state"
)

const noticeDuration = 3 * time.Second

// ExportFunc writes the current text as a PNG and returns the written path.
type ExportFunc func(text string, level encode.ECLevel) (string, error)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Input     *state.Input
	Results   *state.ResultStore
	Export    ExportFunc
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	input     *state.Input
	export    ExportFunc
	prefsPath string

	// UI state
	theme     Theme
	styles    Styles
	textInput textinput.Model
	width     int
	height    int
	ready     bool
	invert    bool

	// Data state
	result state.Result

	// Transient notice
	notice    string
	noticeSeq int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Text to encode"
	ti.Prompt = "> "
	ti.Focus()

	theme := GetTheme(opts.ThemeName)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		input:     opts.Input,
		export:    opts.Export,
		prefsPath: prefsPath,
		theme:     theme,
		styles:    theme.Styles(),
		textInput: ti,
	}
	if opts.Results != nil {
		m.result = opts.Results.Snapshot()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, textinput.Blink)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = max(16, msg.Width-8)
		m.ready = true
		return m, nil

	case ResultMsg:
		m.result = state.Result(msg)
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			return m.withNotice(m.styles.Danger.Render("Export failed: " + msg.err.Error()))
		}
		return m.withNotice(m.styles.Success.Render("Saved " + msg.path))

	case copyDoneMsg:
		if msg.err != nil {
			return m.withNotice(m.styles.Danger.Render("Copy failed: " + msg.err.Error()))
		}
		return m.withNotice(m.styles.Success.Render("Copied to clipboard"))

	case noticeExpiredMsg:
		if int(msg) == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		// Clear the input entirely; the coordinator resets the display.
		m.textInput.SetValue("")
		m.input.SetText("")
		return m, nil

	case "up":
		m.input.SetLevel(prevLevel(m.input.Level()))
		m.savePrefs()
		return m, nil

	case "down":
		m.input.SetLevel(nextLevel(m.input.Level()))
		m.savePrefs()
		return m, nil

	case "ctrl+t":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		m.savePrefs()
		return m.withNotice(m.styles.Accent.Render("Theme: " + m.theme.Name))

	case "ctrl+r":
		m.invert = !m.invert
		return m, nil

	case "ctrl+s":
		if m.input.Text() == "" {
			return m.withNotice(m.styles.Hint.Render("Nothing to export"))
		}
		return m, exportCmd(m.export, m.input.Text(), m.input.Level())

	case "ctrl+y":
		if m.result.Status != state.StatusImage {
			return m.withNotice(m.styles.Hint.Render("No QR code to copy"))
		}
		return m, copyCmd(renderBlocks(m.result.Image, m.invert))
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.input.SetText(m.textInput.Value())
	return m, cmd
}

// withNotice sets a transient status-line notice and schedules its expiry.
func (m Model) withNotice(text string) (tea.Model, tea.Cmd) {
	m.notice = text
	m.noticeSeq++
	return m, expireNoticeCmd(m.noticeSeq)
}

// savePrefs persists the current theme and EC level. Preferences are
// best-effort; failures are logged and the session continues.
func (m Model) savePrefs() {
	err := prefs.Save(m.prefsPath, prefs.Prefs{
		Theme: m.theme.Name,
		Level: m.input.Level().String(),
	})
	if err != nil {
		log.Printf("save prefs failed: %v", err)
	}
}

// nextLevel cycles forward through the selectable EC levels.
func nextLevel(l encode.ECLevel) encode.ECLevel {
	for i, lvl := range encode.Levels {
		if lvl == l {
			return encode.Levels[(i+1)%len(encode.Levels)]
		}
	}
	return encode.Levels[0]
}

// prevLevel cycles backward through the selectable EC levels.
func prevLevel(l encode.ECLevel) encode.ECLevel {
	for i, lvl := range encode.Levels {
		if lvl == l {
			return encode.Levels[(i+len(encode.Levels)-1)%len(encode.Levels)]
		}
	}
	return encode.Levels[0]
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.renderHeader()
	input := m.styles.InputBox.Width(m.width - 2).Render(m.textInput.View())
	footer := m.renderFooter()

	used := lipgloss.Height(header) + lipgloss.Height(input) + lipgloss.Height(footer)
	content := m.renderContent(m.width, max(1, m.height-used))

	return lipgloss.JoinVertical(lipgloss.Left, header, input, content, footer)
}

// renderHeader renders the title line with the current EC level and status.
func (m Model) renderHeader() string {
	title := m.styles.Title.Render("▞▚ qrapp")
	level := m.styles.Label.Render(" EC: ") + m.styles.Value.Render(m.input.Level().Describe())

	var status string
	switch m.result.Status {
	case state.StatusImage:
		status = m.styles.Success.Render(fmt.Sprintf("  %d×%d modules", m.result.Image.Size(), m.result.Image.Size()))
	case state.StatusError:
		status = m.styles.Danger.Render("  encode failed")
	default:
		status = m.styles.Hint.Render("  idle")
	}

	return title + level + status
}

// renderContent renders the display area: the tri-state result.
func (m Model) renderContent(width, height int) string {
	var body string
	switch m.result.Status {
	case state.StatusImage:
		body = renderBlocks(m.result.Image, m.invert)
	case state.StatusError:
		body = m.styles.Danger.Render(m.result.ErrorMessage)
	default:
		body = m.styles.Hint.Render("Type to generate a QR code")
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// renderFooter renders the command bar plus any transient notice.
func (m Model) renderFooter() string {
	bar := m.styles.Footer.Render("↑/↓ ec level · ctrl+s save png · ctrl+y copy · ctrl+r invert · ctrl+t theme · esc clear · ctrl+c quit")
	if m.notice == "" {
		return bar
	}
	return bar + "  " + m.notice
}

// Messages

// ResultMsg carries a generation outcome into the UI loop.
type ResultMsg state.Result

type exportDoneMsg struct {
	path string
	err  error
}

type copyDoneMsg struct {
	err error
}

type noticeExpiredMsg int

// Commands

func exportCmd(export ExportFunc, text string, level encode.ECLevel) tea.Cmd {
	return func() tea.Msg {
		path, err := export(text, level)
		return exportDoneMsg{path: path, err: err}
	}
}

func copyCmd(art string) tea.Cmd {
	return func() tea.Msg {
		return copyDoneMsg{err: clipboard.WriteAll(art)}
	}
}

func expireNoticeCmd(seq int) tea.Cmd {
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg(seq)
	})
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled. Result updates are forwarded onto the UI loop, so
// rendering only ever reads state delivered as messages.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if opts.Results != nil {
		opts.Results.Subscribe(func(r state.Result) {
			p.Send(ResultMsg(r))
		})
	}
	_, err := p.Run()
	return err
}

package form

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/consultacep/internal/cep"
	"github.com/muurk/consultacep/internal/lookup"
	"github.com/muurk/consultacep/internal/ui"
)

// Placeholder is shown in the empty CEP field
const Placeholder = "Digite o CEP (XXXXX-XXX)"

// inputLimit caps raw keystrokes and pastes. It is well above
// cep.DisplayLen so pasted text with spaces or dots keeps all its digits;
// normalization then truncates to 8.
const inputLimit = 32

// outcomeMsg carries a finished fetch back to the event loop
type outcomeMsg struct {
	outcome lookup.Outcome
}

// Model is the CEP form screen. It renders the controller's session and
// state and turns keys into Input, Submit and Reset calls; it never
// changes lookup state itself.
type Model struct {
	ctrl *lookup.Controller
	ctx  context.Context

	Input   textinput.Model
	Spinner spinner.Model
	Help    help.Model
	keys    keyMap

	Width  int
	Height int
}

// New creates the form over ctrl
func New(ctrl *lookup.Controller) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	input := textinput.New()
	input.Placeholder = Placeholder
	input.CharLimit = inputLimit
	input.Width = cep.DisplayLen + 1
	input.Prompt = ""
	input.Focus()

	return Model{
		ctrl:    ctrl,
		ctx:     context.Background(),
		Input:   input,
		Spinner: s,
		Help:    help.New(),
		keys:    newKeyMap(),
		Width:   ui.MinTerminalWidth,
		Height:  ui.DefaultHeight,
	}
}

// WithContext sets the parent context of every lookup the form submits
func (m Model) WithContext(ctx context.Context) Model {
	m.ctx = ctx
	return m
}

// WithValue pre-fills the field as if raw had been typed
func (m Model) WithValue(raw string) Model {
	m.setInput(raw)
	return m
}

// Init initializes the form
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case outcomeMsg:
		m.ctrl.Resolve(msg.outcome)
		m.syncPending()
		return m, nil

	case spinner.TickMsg:
		// Stop ticking once the lookup is over
		if !m.ctrl.State().IsPending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pending := m.ctrl.State().IsPending()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case msg.String() == "q" && m.Input.Value() == "":
		return m, tea.Quit

	case key.Matches(msg, m.keys.Clear):
		m.ctrl.Reset()
		m.Input.Reset()
		m.syncPending()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}

	// The field is read-only while a lookup is in flight
	if pending {
		return m, nil
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	m.setInput(m.Input.Value())
	return m, cmd
}

// submit hands the current CEP to the controller and, when a request is
// started, schedules the fetch off the event loop
func (m Model) submit() (tea.Model, tea.Cmd) {
	ticket, ok := m.ctrl.Submit(m.ctx)
	m.syncPending()
	if !ok {
		return m, nil
	}

	ctrl := m.ctrl
	fetch := func() tea.Msg {
		return outcomeMsg{outcome: ctrl.Fetch(ticket)}
	}
	return m, tea.Batch(fetch, m.Spinner.Tick)
}

// setInput feeds raw text through the controller and replaces the field
// with the masked form
func (m *Model) setInput(raw string) {
	code := m.ctrl.Input(raw)
	m.Input.SetValue(code.Display())
	m.Input.CursorEnd()
}

// syncPending blurs the field while Pending and refocuses it afterwards
func (m *Model) syncPending() {
	pending := m.ctrl.State().IsPending()
	m.keys.setPending(pending)
	if pending {
		m.Input.Blur()
	} else {
		m.Input.Focus()
	}
}

// View renders the form
func (m Model) View() string {
	width := ui.ClampWidth(m.Width)
	inner := width - 10

	state := m.ctrl.State()

	sections := []string{
		TitleStyle.Render("Consulta de CEP"),
		SubtitleStyle.Render(Subtitle),
		"",
		LabelStyle.Render("CEP"),
		inputBoxStyle(inner, state.Phase == lookup.Failed).Render(m.Input.View()),
	}

	switch state.Phase {
	case lookup.Pending:
		sections = append(sections, PendingStyle.Render(m.Spinner.View()+" Consultando..."))
	case lookup.Failed:
		sections = append(sections, ErrorTextStyle.Render(state.Message()))
	case lookup.Success:
		sections = append(sections, "", m.renderAddress(state, inner))
	}

	sections = append(sections, "", renderTips(inner))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	height := m.Height
	if height <= 0 {
		height = ui.DefaultHeight
	}
	return renderContainer(content, m.Help.View(m.keys), width, height)
}

func (m Model) renderAddress(state lookup.State, width int) string {
	lines := []string{ResultTitleStyle.Render("Endereço Encontrado")}
	lines = append(lines, ui.RenderFields(ui.AddressFields(state.Address))...)
	return resultBoxStyle(width).Render(strings.Join(lines, "\n"))
}

// State exposes the controller state for callers that embed the form
func (m Model) State() lookup.State {
	return m.ctrl.State()
}

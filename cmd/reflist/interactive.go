package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/reflist"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	liveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	orderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	detachedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inputMode int

const (
	modeBrowse inputMode = iota
	modePush
	modeDelete
)

// trackedHandle keeps every handle ever returned by Push so the view can
// show detached entries alongside live ones.
type trackedHandle struct {
	handle reflist.Handle[string]
}

type interactiveModel struct {
	list    *reflist.List[string]
	handles []trackedHandle
	input   textinput.Model
	status  string
	isError bool
	mode    inputMode
	width   int
}

func newInteractiveModel(seed string, width int) *interactiveModel {
	input := textinput.New()
	input.CharLimit = 128
	if width > 4 {
		input.Width = width - 4
	}

	m := &interactiveModel{
		list:  reflist.New[string](),
		input: input,
		width: width,
	}
	for _, v := range splitValues(seed) {
		m.push(v)
	}
	return m
}

func (m *interactiveModel) push(v string) {
	m.handles = append(m.handles, trackedHandle{handle: m.list.Push(v)})
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.width > 4 {
			m.input.Width = m.width - 4
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeBrowse {
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "p":
				m.mode = modePush
				m.input.Placeholder = "values to push (comma-separated)"
				m.input.SetValue("")
				m.input.Focus()
				return m, textinput.Blink
			case "d":
				m.mode = modeDelete
				m.input.Placeholder = "indices to delete (comma-separated)"
				m.input.SetValue("")
				m.input.Focus()
				return m, textinput.Blink
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.mode = modeBrowse
			m.input.Blur()
			return m, nil
		case "enter":
			m.submit()
			m.mode = modeBrowse
			m.input.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) submit() {
	raw := m.input.Value()

	switch m.mode {
	case modePush:
		values := splitValues(raw)
		if len(values) == 0 {
			m.setError("nothing to push")
			return
		}
		for _, v := range values {
			m.push(v)
		}
		m.setStatus(fmt.Sprintf("pushed %d value(s), len now %d", len(values), m.list.Len()))

	case modeDelete:
		indices, err := parseIndices(raw)
		if err != nil {
			m.setError(err.Error())
			return
		}
		if len(indices) == 0 {
			m.setError("nothing to delete")
			return
		}
		for _, idx := range indices {
			if idx < 0 || idx >= m.list.Len() {
				m.setError(fmt.Sprintf("index %d out of range (len %d)", idx, m.list.Len()))
				return
			}
		}

		tx := m.list.BeginDelete()
		for _, idx := range indices {
			tx = tx.Push(idx)
		}
		tx.Done()
		m.setStatus(fmt.Sprintf("deleted %v, %d survivor(s)", indices, m.list.Len()))
	}
}

func (m *interactiveModel) setStatus(s string) {
	m.status = s
	m.isError = false
}

func (m *interactiveModel) setError(s string) {
	m.status = s
	m.isError = true
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("reflist inspector"))
	fmt.Fprintf(&b, "  len=%d\n\n", m.list.Len())

	if len(m.handles) == 0 {
		b.WriteString(helpStyle.Render("(empty — press p to push values)"))
		b.WriteString("\n")
	}

	for i, th := range m.handles {
		r := th.handle.Read()
		value := r.Value()
		r.Release()

		if idx, ok := th.handle.Order(); ok {
			fmt.Fprintf(&b, "  #%-3d %s  %s  links %d\n",
				i,
				liveStyle.Render(fmt.Sprintf("%-16q", value)),
				orderStyle.Render(fmt.Sprintf("order %d", idx)),
				th.handle.LinkCount())
		} else {
			fmt.Fprintf(&b, "  #%-3d %s  %s\n",
				i,
				detachedStyle.Render(fmt.Sprintf("%-16q", value)),
				detachedStyle.Render("detached"))
		}
	}

	b.WriteString("\n")

	if m.mode != modeBrowse {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter: apply • esc: cancel"))
		b.WriteString("\n")
	} else {
		if m.status != "" {
			style := statusStyle
			if m.isError {
				style = errorStyle
			}
			b.WriteString(style.Render(m.status))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("p: push • d: delete batch • q: quit"))
		b.WriteString("\n")
	}

	return b.String()
}

func runInteractive(seed string) error {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	p := tea.NewProgram(newInteractiveModel(seed, width))
	_, err := p.Run()
	return err
}

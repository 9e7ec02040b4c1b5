package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"qpusim/render"
)

const defaultShots = 1024

// focus represents which panel has keyboard input.
type focus int

const (
	focusList focus = iota
	focusShots
	focusPhase
	focusOutput
)

// Model is the TUI application state.
type Model struct {
	selected   int
	shotsInput textinput.Model
	phaseInput textinput.Model
	output     viewport.Model
	focus      focus
	width      int
	height     int
	statusMsg  string
	ran        bool
}

func initialModel() Model {
	shots := textinput.New()
	shots.Placeholder = strconv.Itoa(defaultShots)
	shots.CharLimit = 7
	shots.Width = 10

	phase := textinput.New()
	phase.Placeholder = "pi/4"
	phase.CharLimit = 16
	phase.Width = 10

	return Model{
		shotsInput: shots,
		phaseInput: phase,
		output:     viewport.New(60, 20),
		focus:      focusList,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listW := listWidth()
		m.output.Width = max(msg.Width-listW-8, 20)
		m.output.Height = max(msg.Height-8, 5)

	case tea.KeyMsg:
		key := msg.String()
		m.statusMsg = ""

		if key == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.focus {
		case focusList:
			switch key {
			case "q":
				return m, tea.Quit
			case "up", "k":
				if m.selected > 0 {
					m.selected--
				}
			case "down", "j":
				if m.selected < len(demos)-1 {
					m.selected++
				}
			case "tab":
				m.setFocus(focusShots)
			case "enter":
				m.runSelected()
			}

		case focusShots:
			switch key {
			case "esc":
				m.setFocus(focusList)
			case "tab":
				if demos[m.selected].needsPhase {
					m.setFocus(focusPhase)
				} else {
					m.setFocus(focusOutput)
				}
			case "enter":
				m.runSelected()
			default:
				var cmd tea.Cmd
				m.shotsInput, cmd = m.shotsInput.Update(msg)
				cmds = append(cmds, cmd)
			}

		case focusPhase:
			switch key {
			case "esc":
				m.setFocus(focusList)
			case "tab":
				m.setFocus(focusOutput)
			case "enter":
				m.runSelected()
			default:
				var cmd tea.Cmd
				m.phaseInput, cmd = m.phaseInput.Update(msg)
				cmds = append(cmds, cmd)
			}

		case focusOutput:
			switch key {
			case "q":
				return m, tea.Quit
			case "esc", "tab":
				m.setFocus(focusList)
			default:
				var cmd tea.Cmd
				m.output, cmd = m.output.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	m.shotsInput.Blur()
	m.phaseInput.Blur()
	switch f {
	case focusShots:
		m.shotsInput.Focus()
	case focusPhase:
		m.phaseInput.Focus()
	}
}

// runSelected builds the selected demo circuit, executes it, and fills the
// output viewport with the diagram and the outcome histogram.
func (m *Model) runSelected() {
	d := demos[m.selected]

	shots := defaultShots
	if v := strings.TrimSpace(m.shotsInput.Value()); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			m.statusMsg = "Shots must be a positive integer"
			return
		}
		shots = n
	}

	phase := math.Pi / 4
	if d.needsPhase {
		if v := strings.TrimSpace(m.phaseInput.Value()); v != "" {
			p, ok := parseParamExpr(v)
			if !ok {
				m.statusMsg = "Invalid phase — use numbers or pi expressions (e.g. pi/2, 3*pi/4)"
				return
			}
			phase = p
		}
	}

	c := d.build(phase)
	res, err := c.ExecuteParallel(shots, 0)
	if err != nil {
		m.statusMsg = fmt.Sprintf("Run error: %v", err)
		return
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(d.name))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(d.desc))
	if d.needsPhase {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("  λ = %s", formatParam(phase))))
	}
	sb.WriteString("\n\n")
	sb.WriteString(render.Circuit(c))
	sb.WriteString("\n")
	sb.WriteString(accentStyle.Render(fmt.Sprintf("%d shots  run %s", res.Shots, res.ID)))
	sb.WriteString("\n\n")
	sb.WriteString(render.Histogram(res, 40))

	m.output.SetContent(sb.String())
	m.output.GotoTop()
	m.ran = true
	m.setFocus(focusOutput)
}

func listWidth() int {
	w := 0
	for _, d := range demos {
		if len(d.name) > w {
			w = len(d.name)
		}
	}
	return w + 12
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	listPanel := m.renderListPanel()
	outputPanel := m.renderOutputPanel()
	controls := m.renderControls()

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, outputPanel)
	return lipgloss.JoinVertical(lipgloss.Left, topRow, controls)
}

func (m Model) renderListPanel() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Demos"))
	sb.WriteString("\n\n")
	for i, d := range demos {
		if i == m.selected {
			sb.WriteString(selectedStyle.Render(fmt.Sprintf("▸ %s", d.name)))
		} else {
			sb.WriteString(normalStyle.Render(fmt.Sprintf("  %s", d.name)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(accentStyle.Render("Shots: "))
	sb.WriteString(m.shotsInput.View())
	if demos[m.selected].needsPhase {
		sb.WriteString("\n")
		sb.WriteString(accentStyle.Render("Phase: "))
		sb.WriteString(m.phaseInput.View())
	}

	return listPanelStyle.Width(listWidth()).Render(sb.String())
}

func (m Model) renderOutputPanel() string {
	var sb strings.Builder

	title := "Results"
	if m.focus == focusOutput {
		title += " [ACTIVE]"
	}
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n\n")
	if m.ran {
		sb.WriteString(m.output.View())
	} else {
		sb.WriteString(dimStyle.Render("Select a demo and press Enter."))
	}

	return outputPanelStyle.Width(m.output.Width + 4).Render(sb.String())
}

func (m Model) renderControls() string {
	var sb strings.Builder

	sb.WriteString(accentStyle.Render("Navigate: "))
	sb.WriteString("↑↓/jk Select demo  Tab Switch focus  Enter Run  q/^C Quit")
	if m.statusMsg != "" {
		sb.WriteString("\n")
		sb.WriteString(errorStyle.Render(m.statusMsg))
	}

	return controlsStyle.Width(m.width - 4).Render(sb.String())
}

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.blurAll()
			if m.scene == sceneSalary {
				m.scene = sceneMortgage
			} else {
				m.scene = sceneSalary
			}
			m.focus = 0
			m.focusCurrent()
			return m, nil

		case "up", "shift+tab":
			m.blurAll()
			m.focus--
			if m.focus < 0 {
				m.focus = m.fieldCount() - 1
			}
			m.focusCurrent()
			return m, nil

		case "down", "enter":
			m.blurAll()
			m.focus = (m.focus + 1) % m.fieldCount()
			m.focusCurrent()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.scene == sceneSalary {
		m.salaryInputs[m.focus], cmd = m.salaryInputs[m.focus].Update(msg)
	} else {
		m.mortgageInputs[m.focus], cmd = m.mortgageInputs[m.focus].Update(msg)
	}
	m.recompute()
	return m, cmd
}

func (m *Model) blurAll() {
	for i := range m.salaryInputs {
		m.salaryInputs[i].Blur()
	}
	for i := range m.mortgageInputs {
		m.mortgageInputs[i].Blur()
	}
}

func (m *Model) focusCurrent() {
	if m.scene == sceneSalary {
		m.salaryInputs[m.focus].Focus()
	} else {
		m.mortgageInputs[m.focus].Focus()
	}
}

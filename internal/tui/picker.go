package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/algowalk/internal/topics"
)

// Selection is what the topic picker hands back to the caller.
type Selection struct {
	Topic string
	Quiz  bool
}

type pickerModel struct {
	reg       *topics.Registry
	names     []string
	cursor    int
	selection Selection
	done      bool
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Alt {
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.names)-1 {
				m.cursor++
			}
		case "enter":
			m.selection = Selection{Topic: m.names[m.cursor]}
			m.done = true
			return m, tea.Quit
		case "i":
			m.selection = Selection{Topic: m.names[m.cursor], Quiz: true}
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("ALGOWALK") + "\n")
	b.WriteString(dimStyle.Render("pick a topic") + "\n\n")

	for i, name := range m.names {
		topic, _ := m.reg.Get(name)
		line := fmt.Sprintf("%-10s %s", topic.Title, dimStyle.Render(topic.Summary))
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + valueStyle.Render(line) + "\n")
		}
	}

	b.WriteString(helpStyle.Render("\n↑↓:Move  Enter:Walkthrough  I:Interview  Q:Quit"))
	return b.String()
}

// RunPicker shows the topic menu. ok is false when the user quit without
// choosing.
func RunPicker(reg *topics.Registry) (Selection, bool, error) {
	m := pickerModel{reg: reg, names: reg.List()}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return Selection{}, false, err
	}
	got := final.(pickerModel)
	return got.selection, got.done, nil
}

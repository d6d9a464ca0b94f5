package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/algowalk/internal/interview"
)

type quizTickMsg struct {
	gen uint64
}

// QuizModel renders an interview session. Questions are answered with the
// number keys; answers are final once submitted.
type QuizModel struct {
	title string
	ctrl  *interview.Controller
	gen   uint64
}

func NewQuizModel(title string, ctrl *interview.Controller) QuizModel {
	return QuizModel{title: title, ctrl: ctrl}
}

func (m QuizModel) Init() tea.Cmd {
	if m.ctrl.TimeLimit() > 0 {
		return m.tick()
	}
	return nil
}

func (m QuizModel) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return quizTickMsg{gen: gen} })
}

func (m QuizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Alt {
			return m, nil
		}
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			m.ctrl.Close()
			return m, tea.Quit
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			m.ctrl.SelectAnswer(int(key[0] - '1'))
		case "right", "l":
			m.ctrl.Next()
		case "left", "h":
			m.ctrl.Prev()
		case "u":
			m.ctrl.UseHint()
		case "r":
			m.gen++
			m.ctrl.Restart()
			if m.ctrl.TimeLimit() > 0 {
				return m, m.tick()
			}
		}
		return m, nil

	case quizTickMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		if m.ctrl.TimeLimit() > 0 && !m.ctrl.IsComplete() {
			return m, m.tick()
		}
		return m, nil
	}
	return m, nil
}

func (m QuizModel) View() string {
	if m.ctrl.IsComplete() {
		return m.summaryView()
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(strings.ToUpper(m.title)+" — INTERVIEW") + "\n")

	q := m.ctrl.CurrentQuestion()
	b.WriteString(dimStyle.Render(fmt.Sprintf("question %d/%d", m.ctrl.Index()+1, m.ctrl.Len())))
	if m.ctrl.TimeLimit() > 0 {
		rem := m.ctrl.TimeRemaining().Round(time.Second)
		b.WriteString(dimStyle.Render(fmt.Sprintf("   %s left", rem)))
	}
	b.WriteString("\n\n")

	b.WriteString(descStyle.Render(q.Prompt) + "\n")

	for i, opt := range q.Options {
		line := fmt.Sprintf("  %d. %s", i+1, opt)
		switch {
		case m.ctrl.ShowExplanation() && i == q.Correct:
			line = correctStyle.Render(line + "  ✓")
		case m.ctrl.ShowExplanation() && i == m.ctrl.SelectedAnswer() && i != q.Correct:
			line = wrongStyle.Render(line + "  ✗")
		case i == m.ctrl.SelectedAnswer():
			line = cursorStyle.Render(line)
		default:
			line = valueStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	if m.ctrl.ShowHint() && q.Hint != "" {
		b.WriteString(hintStyle.Render("hint: "+q.Hint) + "\n")
	}
	if m.ctrl.ShowExplanation() {
		b.WriteString(valueStyle.Render(q.Explanation) + "\n")
	}

	score := m.ctrl.Score()
	b.WriteString("\n" + dimStyle.Render(fmt.Sprintf("answered %d/%d, %d correct", score.Total, m.ctrl.Len(), score.Correct)))
	b.WriteString(helpStyle.Render("\n1-4:Answer  ←/→:Navigate  U:Hint  R:Restart  Q:Quit"))
	return b.String()
}

func (m QuizModel) summaryView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(strings.ToUpper(m.title)+" — RESULTS") + "\n")

	sess := m.ctrl.Session()
	score := m.ctrl.Score()
	b.WriteString(labelStyle.Render("Score") + valueStyle.Render(fmt.Sprintf("%d/%d (%d%%)", score.Correct, score.Total, score.Percentage)) + "\n")
	b.WriteString(labelStyle.Render("Time") + valueStyle.Render(sess.TotalTime.Round(time.Second).String()) + "\n")

	hints := 0
	times := make([]float64, len(sess.Results))
	for i, r := range sess.Results {
		times[i] = r.TimeSpent.Seconds()
		if r.UsedHint {
			hints++
		}
	}
	b.WriteString(labelStyle.Render("Hints") + valueStyle.Render(fmt.Sprintf("%d", hints)) + "\n")

	if len(times) > 1 {
		chart := asciigraph.Plot(times,
			asciigraph.Height(6),
			asciigraph.Width(50),
			asciigraph.Caption("seconds per question"),
		)
		b.WriteString("\n" + chart + "\n")
	}

	b.WriteString(helpStyle.Render("\nR:Restart  Q:Quit"))
	return b.String()
}

// RunQuiz shows the quiz TUI and returns the final session snapshot.
func RunQuiz(title string, ctrl *interview.Controller) (interview.Session, error) {
	p := tea.NewProgram(NewQuizModel(title, ctrl))
	if _, err := p.Run(); err != nil {
		return interview.Session{}, err
	}
	return ctrl.Session(), nil
}

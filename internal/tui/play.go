package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/algowalk/internal/config"
	"github.com/san-kum/algowalk/internal/playback"
	"github.com/san-kum/algowalk/internal/share"
	"github.com/san-kum/algowalk/internal/step"
	"github.com/san-kum/algowalk/internal/topics"
)

type playTickMsg struct {
	gen uint64
}

// PlayModel drives a playback controller from the terminal. The controller
// runs in manual mode; this model owns the tick loop via tea.Tick and tags
// every tick with a generation so a stale one cannot advance fresh state.
type PlayModel struct {
	topic  topics.Topic
	ctrl   *playback.Controller[step.Frame]
	codec  share.Codec
	clip   share.Clipboard
	base   string
	gen    uint64
	copied bool
	width  int
}

func NewPlayModel(topic topics.Topic, cfg *config.Config, clip share.Clipboard) PlayModel {
	ctrl := playback.New(playback.Config[step.Frame]{
		GenerateSteps: topic.Generate,
		Speed:         cfg.Speed,
		Empty:         step.Frame{Description: "no steps generated"},
	})
	ctrl.SetIndex(cfg.Step)
	return PlayModel{
		topic: topic,
		ctrl:  ctrl,
		codec: share.Codec{Topic: topic.Name},
		clip:  clip,
		base:  cfg.Base,
	}
}

func (m PlayModel) Init() tea.Cmd { return nil }

func (m PlayModel) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.ctrl.Delay(), func(time.Time) tea.Msg { return playTickMsg{gen: gen} })
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.Alt {
			return m, nil // modifier combinations pass through untouched
		}
		m.copied = false
		switch msg.String() {
		case "q", "ctrl+c":
			m.ctrl.Close()
			return m, tea.Quit
		case "p", "P":
			m.ctrl.Toggle()
			if m.ctrl.Playing() {
				m.gen++
				return m, m.tick()
			}
		case "[":
			if !m.ctrl.Playing() {
				m.ctrl.StepBack()
			}
		case "]":
			if !m.ctrl.Playing() {
				m.ctrl.Step()
			}
		case "r", "R":
			m.gen++
			m.ctrl.Reset()
		case "+", "=":
			m.ctrl.SetSpeed(m.ctrl.Speed() + 10)
		case "-", "_":
			m.ctrl.SetSpeed(m.ctrl.Speed() - 10)
		case "n":
			m.gen++
			m.ctrl.SetSteps(m.topic.Generate())
		case "c":
			if m.clip != nil {
				link := m.codec.Link(m.base, m.ctrl.Index())
				if err := m.clip.WriteString(link); err == nil {
					m.copied = true
				}
			}
		}
		return m, nil

	case playTickMsg:
		if msg.gen != m.gen {
			return m, nil // tick from a previous generation
		}
		m.ctrl.Tick()
		if m.ctrl.Playing() {
			return m, m.tick()
		}
		return m, nil
	}
	return m, nil
}

func (m PlayModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(strings.ToUpper(m.topic.Title)) + "\n")

	status := "PAUSED"
	if m.ctrl.Playing() {
		status = "PLAYING"
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString(dimStyle.Render(fmt.Sprintf("   step %d/%d   speed %d", m.ctrl.Index()+1, m.ctrl.Len(), m.ctrl.Speed())))
	b.WriteString("\n\n")

	frame := m.ctrl.Current()
	b.WriteString(opStyle.Render(string(frame.Op)) + "\n")
	b.WriteString(descStyle.Render(frame.Description) + "\n")
	b.WriteString(detailStyle.Render(frame.Detail) + "\n")

	if m.copied {
		b.WriteString(hintStyle.Render("share link copied to clipboard") + "\n")
	}

	b.WriteString(helpStyle.Render("P:Play/Pause  [ ]:Step (paused)  R:Reset  +/-:Speed  N:New data  C:Share  Q:Quit"))
	return b.String()
}

// RunPlay shows the playback TUI for one topic and blocks until quit.
func RunPlay(topic topics.Topic, cfg *config.Config, clip share.Clipboard) error {
	p := tea.NewProgram(NewPlayModel(topic, cfg, clip))
	_, err := p.Run()
	return err
}

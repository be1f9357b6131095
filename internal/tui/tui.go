// Package tui renders an interactive learning-path preview in the terminal.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/learnlens/learnlens/internal/curriculum"
	"github.com/learnlens/learnlens/internal/pipeline"
)

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// PathBuilder is the pipeline operation the TUI drives.
type PathBuilder interface {
	CreateLearningPath(ctx context.Context, topic string, level curriculum.Level) (*pipeline.LearningPath, error)
}

type phase int

const (
	phaseInput phase = iota
	phaseBuilding
	phaseDone
	phaseError
)

// pathReadyMsg is sent when the pipeline finishes.
type pathReadyMsg struct {
	Path *pipeline.LearningPath
	Err  error
}

// spinnerTickMsg animates the building spinner.
type spinnerTickMsg time.Time

type model struct {
	builder PathBuilder
	level   curriculum.Level

	phase      phase
	topicInput textinput.Model
	topic      string
	spinFrame  int
	elapsed    time.Duration
	path       *pipeline.LearningPath
	err        error
	width      int
	height     int
}

func newModel(builder PathBuilder, topic string, level curriculum.Level) model {
	ti := textinput.New()
	ti.Placeholder = "What do you want to learn?"
	ti.CharLimit = 120
	ti.Focus()

	m := model{
		builder:    builder,
		level:      level,
		topicInput: ti,
		topic:      strings.TrimSpace(topic),
		phase:      phaseInput,
	}
	if m.topic != "" {
		m.phase = phaseBuilding
	}
	return m
}

func (m model) Init() tea.Cmd {
	if m.phase == phaseBuilding {
		return tea.Batch(m.buildPath(), spinnerTick())
	}
	return m.topicInput.Focus()
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

// buildPath runs the pipeline off the UI goroutine.
func (m model) buildPath() tea.Cmd {
	builder, topic, level := m.builder, m.topic, m.level
	return func() tea.Msg {
		path, err := builder.CreateLearningPath(context.Background(), topic, level)
		return pathReadyMsg{Path: path, Err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q", "esc":
			if m.phase != phaseInput {
				return m, tea.Quit
			}
		case "enter":
			if m.phase == phaseInput {
				topic := strings.TrimSpace(m.topicInput.Value())
				if topic == "" {
					return m, nil
				}
				m.topic = topic
				m.phase = phaseBuilding
				return m, tea.Batch(m.buildPath(), spinnerTick())
			}
			if m.phase == phaseDone || m.phase == phaseError {
				return m, tea.Quit
			}
		}

	case spinnerTickMsg:
		if m.phase == phaseBuilding {
			m.spinFrame = (m.spinFrame + 1) % len(spinnerFrames)
			m.elapsed += spinnerInterval
			return m, spinnerTick()
		}
		return m, nil

	case pathReadyMsg:
		if msg.Err != nil {
			m.phase = phaseError
			m.err = msg.Err
			return m, nil
		}
		m.phase = phaseDone
		m.path = msg.Path
		return m, nil
	}

	if m.phase == phaseInput {
		var cmd tea.Cmd
		m.topicInput, cmd = m.topicInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	width := m.width
	if width == 0 {
		width = 80
	}

	switch m.phase {
	case phaseInput:
		v.SetContent(renderInput(m.topicInput, m.level, width))
	case phaseBuilding:
		v.SetContent(renderBuilding(m.topic, spinnerFrames[m.spinFrame], m.elapsed, width))
	case phaseError:
		v.SetContent(renderError(m.err, width))
	case phaseDone:
		v.SetContent(renderPath(m.path, m.level, width))
	}
	return v
}

// Run starts the plan TUI and blocks until the user quits.
func Run(builder PathBuilder, topic string, level curriculum.Level) error {
	p := tea.NewProgram(newModel(builder, topic, level))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

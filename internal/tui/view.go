package tui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	"charm.land/lipgloss/v2"

	"github.com/learnlens/learnlens/internal/curriculum"
	"github.com/learnlens/learnlens/internal/pipeline"
)

var (
	colorPrimary = lipgloss.Color("#8B5CF6")
	colorAccent  = lipgloss.Color("#14B8A6")
	colorText    = lipgloss.Color("#F8FAFC")
	colorDim     = lipgloss.Color("#94A3B8")
	colorError   = lipgloss.Color("#F43F5E")
	colorBorder  = lipgloss.Color("#334155")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	bodyStyle = lipgloss.NewStyle().
			Foreground(colorText)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)
)

func renderInput(input textinput.Model, level curriculum.Level, width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("LearnLens"))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render("Topic: "))
	b.WriteString(input.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Level: %s  ·  Enter to build  ·  Ctrl+C to quit", level)))
	return b.String()
}

func renderBuilding(topic, frame string, elapsed time.Duration, width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("LearnLens"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s  Building your learning path for %s",
		labelStyle.Render(frame), bodyStyle.Render(topic)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("planning, discovering, enhancing… %ds", int(elapsed.Seconds()))))
	return b.String()
}

func renderError(err error, width int) string {
	var b strings.Builder
	b.WriteString(errorStyle.Render("Something went wrong"))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render(err.Error()))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Enter or q to quit"))
	return b.String()
}

func renderPath(path *pipeline.LearningPath, level curriculum.Level, width int) string {
	cardWidth := width - 4
	if cardWidth > 96 {
		cardWidth = 96
	}
	if cardWidth < 40 {
		cardWidth = 40
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Learning Path: " + path.Topic))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("level %s · %d steps", level, len(path.Path))))
	b.WriteString("\n\n")

	if len(path.Path) == 0 {
		b.WriteString(bodyStyle.Render("No videos could be matched to this path right now."))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("Enter or q to quit"))
		return b.String()
	}

	for i, step := range path.Path {
		b.WriteString(renderStep(i+1, step, cardWidth))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render("Enter or q to quit"))
	return b.String()
}

func renderStep(n int, step pipeline.LearningPathStep, width int) string {
	var b strings.Builder

	b.WriteString(labelStyle.Render(fmt.Sprintf("Step %d · %s", n, step.StepName)))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(step.Title))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s · youtube.com/watch?v=%s · LQS %.1f",
		step.Channel, step.ID, step.LQS)))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Goal"))
	b.WriteString("\n")
	b.WriteString(bodyStyle.Render(step.Goal))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Summary"))
	b.WriteString("\n")
	b.WriteString(bodyStyle.Render(step.Summary))
	b.WriteString("\n\n")

	if len(step.Checklist) > 0 {
		b.WriteString(labelStyle.Render("Before you start"))
		b.WriteString("\n")
		for _, item := range step.Checklist {
			b.WriteString(bodyStyle.Render("  • " + item))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(step.Questions) > 0 {
		b.WriteString(labelStyle.Render("Check yourself"))
		b.WriteString("\n")
		for _, q := range step.Questions {
			b.WriteString(bodyStyle.Render("  ? " + q.Question))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render("Mental model"))
	b.WriteString("\n")
	b.WriteString(bodyStyle.Render(step.MentalModel))

	return cardStyle.Width(width).Render(b.String())
}

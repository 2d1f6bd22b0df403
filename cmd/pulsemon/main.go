/*
Command pulsemon is a small terminal visualizer for the pavlov demo: it
steps a Brain through the same bell-then-food training stream one spike
at a time and renders a live per-channel firing-rate bar chart.
*/
package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SynapticNetworks/hippocampal-engine/engine"
	"github.com/SynapticNetworks/hippocampal-engine/params"
	"github.com/SynapticNetworks/hippocampal-engine/spiketrain"
)

const numChannels = 6

var (
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// tickMsg requests the model apply the next scheduled spike.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(20*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// model holds the running demo's state between frames.
type model struct {
	params    params.Params
	brain     *engine.Brain
	scheduler *spiketrain.Scheduler

	counts   [numChannels]uint
	lastSpan float32
	done     bool
}

func scheduleBellAndFood(s *spiketrain.Scheduler, p params.Params) {
	const (
		bellDuration  = 0.5
		bellIntensity = 0.7
		gapDuration   = 0.25
		foodDuration  = 0.5
		foodIntensity = 0.7
	)
	s.ScheduleValue(0, bellDuration, 0, bellIntensity, true)
	s.ScheduleValue(0, bellDuration, 1, bellIntensity, true)
	s.ScheduleValue(0, bellDuration, 2, bellIntensity, true)

	foodStart := float32(bellDuration + gapDuration)
	s.ScheduleValue(foodStart, foodDuration, 3, foodIntensity, true)
	s.ScheduleValue(foodStart, foodDuration, 4, foodIntensity, true)
	s.ScheduleValue(foodStart, foodDuration, 5, foodIntensity, true)
}

func initialModel() model {
	p := params.Default()
	b := engine.New(numChannels, p)
	b.Reserve(numChannels * 100)

	s := spiketrain.NewScheduler(numChannels, p, nil)
	scheduleBellAndFood(s, p)

	return model{params: p, brain: b, scheduler: s}
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tickMsg:
		if m.done {
			return m, nil
		}

		spike, ok := m.scheduler.PeekNext()
		if !ok {
			m.done = true
			return m, nil
		}

		var outputs []uint16
		m.brain.Spike(spike.Timestamp, spike.Channel, true, &outputs)
		m.scheduler.Advance()
		m.lastSpan = spike.Timestamp
		for _, ch := range outputs {
			m.counts[ch]++
		}
		return m, tickCmd()
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  t=%.3f  neurons=%d\n\n",
		labelStyle.Render("pulsemon"), m.lastSpan, m.brain.NeuronCount())

	var maxCount uint = 1
	for _, c := range m.counts {
		if c > maxCount {
			maxCount = c
		}
	}

	for ch, c := range m.counts {
		width := int(float64(c) / float64(maxCount) * 40)
		label := "bell"
		if ch >= 3 {
			label = "food"
		}
		fmt.Fprintf(&b, "%s ch%d %s %s\n",
			dimStyle.Render(label), ch, barStyle.Render(strings.Repeat("█", width)), dimStyle.Render(fmt.Sprintf("%d", c)))
	}

	if m.done {
		b.WriteString(dimStyle.Render("\ntraining complete — press q to exit\n"))
	} else {
		b.WriteString(dimStyle.Render("\npress q to exit\n"))
	}
	return b.String()
}

func main() {
	if _, err := tea.NewProgram(initialModel()).Run(); err != nil {
		fmt.Println("pulsemon:", err)
	}
}

// cmd/hilo/ui.go
//
// Bubbletea model for the game client. One round at a time: type a
// guess (the buffer is live-sanitized to digits), Enter submits, "n"
// starts a new game. A win starts the celebration; starting a new game
// clears it immediately even with timers still in flight.

package main

import (
	"fmt"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hilo/internal/celebrate"
	"hilo/internal/feedback"
	"hilo/internal/feedback/synth"
	"hilo/internal/game"
	"hilo/internal/sched"
	"hilo/internal/score"
)

const maxInputLen = 6

// --- styles ---
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	inputStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	msgStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	winStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("84"))
	bestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

type tickMsg time.Time

type model struct {
	rng      *rand.Rand
	session  *game.Session
	director *celebrate.Director
	channel  *feedback.Channel
	store    score.Store
	reporter *score.Reporter

	w, h    int
	input   string
	message string
	won     bool
}

func newModel(rng *rand.Rand, st score.Store, rep *score.Reporter) *model {
	clock := sched.System()
	m := &model{
		rng:      rng,
		director: celebrate.New(clock, rand.New(rand.NewSource(rng.Int63()))),
		channel:  feedback.New(clock, synth.NewPlayer()),
		store:    st,
		reporter: rep,
	}
	m.newGame()
	return m
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.w, m.h = msg.Width, msg.Height
		return m, nil

	case tickMsg:
		if m.director.Active() {
			return m, tick()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "n":
			m.newGame()
			return m, nil
		case "enter":
			return m, m.submit()
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
			return m, nil
		default:
			// Live sanitizer: non-digit characters never enter the buffer.
			next := game.Sanitize(m.input + msg.String())
			if len(next) <= maxInputLen {
				m.input = next
			}
			return m, nil
		}
	}
	return m, nil
}

// newGame resets the round and immediately clears any in-progress
// celebration, pending timers included.
func (m *model) newGame() {
	m.director.Clear()
	m.session = game.NewSession(game.DefaultBounds, m.rng)
	m.input = ""
	m.won = false
	b := m.session.Bounds
	m.message = fmt.Sprintf("I picked a number between %d and %d. Guess!", b.Min, b.Max)
}

func (m *model) submit() tea.Cmd {
	res := m.session.Submit(m.input)
	m.input = ""
	if res.Outcome == game.OutcomeEnded {
		// Round already over; submissions are silently ignored.
		return nil
	}

	m.message = feedback.Message(res, m.session.Attempts, m.session.Bounds)
	m.channel.React(res)

	if res.Outcome != game.OutcomeCorrect {
		return nil
	}
	m.won = true
	m.director.Start(m.stageSize())
	m.store.RecordIfBetter(m.session.Attempts)
	m.reporter.Report(m.session.Attempts, true, time.Now())
	return tick()
}

func (m *model) stageSize() (int, int) {
	w, h := m.w, m.h-7 // leave room for the control panel
	if w < 20 {
		w = 20
	}
	if h < 8 {
		h = 8
	}
	return w, h
}

func tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *model) View() string {
	stageW, stageH := m.stageSize()
	stage := renderStage(m.director, stageW, stageH)

	b := m.session.Bounds
	var lines []string
	lines = append(lines, stage)
	lines = append(lines, titleStyle.Render(" HILO ")+hintStyle.Render(fmt.Sprintf(" guess the number (%d-%d)", b.Min, b.Max)))
	lines = append(lines, promptStyle.Render(" > ")+inputStyle.Render(m.input+"_"))
	if m.won {
		lines = append(lines, " "+winStyle.Render(m.message))
	} else {
		lines = append(lines, " "+msgStyle.Render(m.message))
	}
	status := fmt.Sprintf(" attempts: %d", m.session.Attempts)
	if best, ok := m.store.Best(); ok {
		status += bestStyle.Render(fmt.Sprintf("   best: %d", best))
	}
	lines = append(lines, hintStyle.Render(status))
	lines = append(lines, hintStyle.Render(" enter submit · n new game · q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"dwt/internal/modules/timer/dto"
	"dwt/internal/ui/theme"
)

// timerPort is the slice of the timer usecase this view needs. The countdown
// never starts or resumes a session itself; the command layer does that before
// handing control over.
type timerPort interface {
	Pause(ctx context.Context) (dto.PauseOutput, error)
	Complete(ctx context.Context) (dto.CompleteOutput, error)
	EndEarly(ctx context.Context) (dto.EndEarlyOutput, error)
	Quit(ctx context.Context) (dto.QuitOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
}

// Outcome says how the countdown ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCompleted
	OutcomePaused
	OutcomeEnded
	OutcomeQuit
)

// Result is what the command layer reads back after the program exits.
type Result struct {
	Outcome      Outcome
	Minutes      int
	Logged       bool
	Remaining    time.Duration
	HookFailures []dto.HookFailure
	Err          error
}

// ─── async messages ──────────────────────────────────────────────────────────

type tickMsg time.Time

type transitionDoneMsg struct{ result Result }

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Pause    key.Binding
	EndEarly key.Binding
	Quit     key.Binding
	Help     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Pause:    key.NewBinding(key.WithKeys("s", "ctrl+c"), key.WithHelp("s", "pause")),
		EndEarly: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "end early")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit, no log")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.EndEarly, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.EndEarly},
		{k.Quit, k.Help},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model renders the live countdown for an active session. Remaining time is
// recomputed from the session clock on every tick rather than decremented,
// so a suspended terminal catches up instead of drifting.
type Model struct {
	timer timerPort

	startedAt   time.Time
	planned     time.Duration
	pausedTotal time.Duration

	keys     keyMap
	help     help.Model
	showHelp bool
	waiting  bool

	result Result
	width  int
}

func NewModel(timer timerPort, status dto.StatusOutput) Model {
	return Model{
		timer:       timer,
		startedAt:   status.StartedAt,
		planned:     status.Remaining + elapsedOf(status),
		pausedTotal: status.PausedTotal,
		keys:        defaultKeys(),
		help:        help.New(),
	}
}

// elapsedOf reconstructs worked time from a status snapshot.
func elapsedOf(status dto.StatusOutput) time.Duration {
	e := time.Since(status.StartedAt) - status.PausedTotal
	if e < 0 {
		e = 0
	}
	return e
}

// Result returns the final outcome once the program has quit.
func (m Model) Result() Result { return m.result }

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) remaining() time.Duration {
	r := m.planned - (time.Since(m.startedAt) - m.pausedTotal)
	if r < 0 {
		r = 0
	}
	return r
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if m.waiting {
			return m, tick()
		}
		if m.remaining() <= 0 {
			m.waiting = true
			return m, m.completeCmd()
		}
		return m, tick()

	case transitionDoneMsg:
		m.result = msg.result
		return m, tea.Quit

	case tea.KeyMsg:
		if m.waiting {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Pause):
			m.waiting = true
			return m, m.pauseCmd()
		case key.Matches(msg, m.keys.EndEarly):
			m.waiting = true
			return m, m.endEarlyCmd()
		case key.Matches(msg, m.keys.Quit):
			m.waiting = true
			return m, m.quitCmd()
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		}
	}
	return m, nil
}

// ─── transition commands ─────────────────────────────────────────────────────

func (m Model) pauseCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.timer.Pause(context.Background())
		return transitionDoneMsg{result: Result{
			Outcome:      OutcomePaused,
			Remaining:    out.Remaining,
			HookFailures: out.HookFailures,
			Err:          err,
		}}
	}
}

func (m Model) completeCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.timer.Complete(context.Background())
		return transitionDoneMsg{result: Result{
			Outcome:      OutcomeCompleted,
			Minutes:      out.Minutes,
			Logged:       err == nil,
			HookFailures: out.HookFailures,
			Err:          err,
		}}
	}
}

func (m Model) endEarlyCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.timer.EndEarly(context.Background())
		return transitionDoneMsg{result: Result{
			Outcome:      OutcomeEnded,
			Minutes:      out.Minutes,
			Logged:       out.Logged,
			HookFailures: out.HookFailures,
			Err:          err,
		}}
	}
}

func (m Model) quitCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.timer.Quit(context.Background())
		return transitionDoneMsg{result: Result{
			Outcome:      OutcomeQuit,
			HookFailures: out.HookFailures,
			Err:          err,
		}}
	}
}

// ─── view ─────────────────────────────────────────────────────────────────────

const barCells = 30

func (m Model) View() string {
	remaining := m.remaining()

	var b strings.Builder
	b.WriteString(theme.Title.Render("Deep Work"))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "  %s  │%s│\n", formatClock(remaining), m.bar(remaining))

	if m.waiting {
		b.WriteString("\n  " + theme.Muted.Render("…") + "\n")
	}

	b.WriteString("\n")
	if m.showHelp {
		b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) bar(remaining time.Duration) string {
	progress := 0.0
	if m.planned > 0 {
		progress = float64(m.planned-remaining) / float64(m.planned)
	}
	filled := int(barCells * progress)
	if filled > barCells {
		filled = barCells
	}
	level := 1 + filled*3/barCells
	if level > 4 {
		level = 4
	}
	return theme.Heat[level].Render(strings.Repeat("█", filled)) +
		strings.Repeat("░", barCells-filled)
}

func formatClock(d time.Duration) string {
	secs := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

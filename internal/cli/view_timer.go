package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/focusflow/internal/cli/formatter"
	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/notify"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	studyPhaseDuration = domain.CycleStudyMinutes * time.Minute
	breakPhaseDuration = domain.CycleBreakMinutes * time.Minute
)

type timerPhase int

const (
	phaseStudy timerPhase = iota
	phaseBreak
	phaseDone
)

func (p timerPhase) String() string {
	switch p {
	case phaseStudy:
		return "Study"
	case phaseBreak:
		return "Break"
	default:
		return "Done"
	}
}

// timerTickMsg advances the countdown by elapsed.
type timerTickMsg struct {
	elapsed time.Duration
}

type timerKeyMap struct {
	Pause key.Binding
	Skip  key.Binding
	Quit  key.Binding
}

func (k timerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Skip, k.Quit}
}

func (k timerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultTimerKeys() timerKeyMap {
	return timerKeyMap{
		Pause: key.NewBinding(key.WithKeys(" ", "space", "p"), key.WithHelp("space", "pause/resume")),
		Skip:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip phase")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "stop")),
	}
}

// timerModel counts down study and break phases for a fixed number of
// cycles. Only study phases that run to zero count as completed.
type timerModel struct {
	subject  string
	cycles   int
	cycle    int
	phase    timerPhase
	total    time.Duration
	left     time.Duration
	paused   bool
	stopped  bool
	finished int

	interval time.Duration
	notifier notify.Notifier
	alertErr error

	keys timerKeyMap
	help help.Model
	bar  progress.Model
}

func newTimerModel(subject string, cycles int, notifier notify.Notifier) timerModel {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	m := timerModel{
		subject:  subject,
		cycles:   cycles,
		cycle:    1,
		phase:    phaseStudy,
		total:    studyPhaseDuration,
		left:     studyPhaseDuration,
		interval: time.Second,
		notifier: notifier,
		keys:     defaultTimerKeys(),
		help:     help.New(),
		bar: progress.New(
			progress.WithSolidFill(string(formatter.ColorGreen)),
			progress.WithoutPercentage(),
			progress.WithWidth(40),
		),
	}
	if cycles <= 0 {
		m.phase = phaseDone
	}
	return m
}

// Completed returns the number of study phases that ran to the end.
func (m timerModel) Completed() int { return m.finished }

func (m timerModel) tick() tea.Cmd {
	d := m.interval
	return tea.Tick(d, func(time.Time) tea.Msg { return timerTickMsg{elapsed: d} })
}

func (m timerModel) Init() tea.Cmd {
	if m.phase == phaseDone {
		return tea.Quit
	}
	return m.tick()
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w := msg.Width - 4
		if w > 60 {
			w = 60
		}
		if w > 10 {
			m.bar.Width = w
		}
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.stopped = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			if m.phase != phaseDone {
				m.paused = !m.paused
			}
			return m, nil
		case key.Matches(msg, m.keys.Skip):
			return m.advance(false)
		}
		return m, nil

	case timerTickMsg:
		if m.phase == phaseDone || m.stopped {
			return m, nil
		}
		if !m.paused {
			m.left -= msg.elapsed
			if m.left <= 0 {
				next, cmd := m.advance(true)
				nm := next.(timerModel)
				if nm.phase == phaseDone {
					return nm, cmd
				}
				return nm, tea.Batch(cmd, nm.tick())
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// advance moves to the next phase. ranOut is false when the phase was skipped.
func (m timerModel) advance(ranOut bool) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseStudy:
		if ranOut {
			m.finished++
		}
		if m.cycle >= m.cycles {
			m.phase = phaseDone
			m.left = 0
			m.alert("Study complete", fmt.Sprintf("%d of %d cycle(s) finished for %s.", m.finished, m.cycles, m.subjectLabel()))
			return m, tea.Quit
		}
		m.phase = phaseBreak
		m.total = breakPhaseDuration
		m.left = breakPhaseDuration
		m.alert("Break time", fmt.Sprintf("Take %d minutes off.", domain.CycleBreakMinutes))
	case phaseBreak:
		m.cycle++
		m.phase = phaseStudy
		m.total = studyPhaseDuration
		m.left = studyPhaseDuration
		m.alert("Back to study", fmt.Sprintf("Cycle %d of %d: %s.", m.cycle, m.cycles, m.subjectLabel()))
	}
	m.paused = false
	return m, nil
}

func (m *timerModel) alert(title, message string) {
	if err := m.notifier.Notify(title, message); err != nil {
		m.alertErr = err
	}
}

func (m timerModel) subjectLabel() string {
	if m.subject == "" {
		return "your session"
	}
	return m.subject
}

func (m timerModel) View() string {
	if m.phase == phaseDone || m.stopped {
		return ""
	}

	var b strings.Builder

	phaseStyle := formatter.StyleGreen
	if m.phase == phaseBreak {
		phaseStyle = formatter.StyleYellow
	}
	b.WriteString(fmt.Sprintf("%s  %s\n\n",
		phaseStyle.Bold(true).Render(strings.ToUpper(m.phase.String())),
		formatter.Dim(fmt.Sprintf("cycle %d/%d · %s", m.cycle, m.cycles, m.subjectLabel()))))

	clock := formatter.FormatClock(m.left)
	if m.paused {
		clock += "  " + formatter.StyleYellow.Render("paused")
	}
	b.WriteString(formatter.Bold(clock) + "\n\n")

	pct := 0.0
	if m.total > 0 {
		pct = float64(m.total-m.left) / float64(m.total)
	}
	b.WriteString(m.bar.ViewAs(pct) + "\n\n")

	if m.alertErr != nil {
		b.WriteString(formatter.StyleRed.Render("alert failed: "+m.alertErr.Error()) + "\n\n")
	}
	b.WriteString(m.help.View(m.keys))

	return formatter.RenderBox("Focus timer", b.String())
}

// Package teatest drives bubbletea models synchronously in tests.
//
// Update is called directly and returned Cmds are executed inline. Cmds
// that block longer than a short timeout (tea.Tick and friends) are dropped,
// so tests feed time-based messages themselves.
package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how many chained Cmds a single Send may execute.
const MaxDrainDepth = 100

// cmdTimeout separates immediate Cmds from timer Cmds.
const cmdTimeout = 10 * time.Millisecond

// Driver is a synchronous test harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a tea.QuitMsg has been produced.
	Quitting bool
}

// New creates a Driver for model. Call DrainInit to run the model's Init.
func New(t *testing.T, model tea.Model) *Driver {
	t.Helper()
	return &Driver{T: t, Model: model}
}

// DrainInit executes the model's Init command.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send dispatches msg through Update and drains the resulting Cmds.
// Messages are ignored after the model has quit.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drain(cmd, 0)
}

// SendN sends msg n times, stopping early if the model quits.
func (d *Driver) SendN(msg tea.Msg, n int) {
	d.T.Helper()
	for i := 0; i < n && !d.Quitting; i++ {
		d.Send(msg)
	}
}

// PressKey sends a single rune key.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// PressSpace sends the space bar.
func (d *Driver) PressSpace() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
}

// PressCtrlC sends Ctrl+C.
func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
}

// Resize sends a WindowSizeMsg.
func (d *Driver) Resize(w, h int) {
	d.T.Helper()
	d.Send(tea.WindowSizeMsg{Width: w, Height: h})
}

// View returns the model's rendered output.
func (d *Driver) View() string {
	return d.Model.View()
}

// Run returns a function usable as a program runner: it drains Init, lets
// script drive the model, and returns the final model.
func Run(t *testing.T, script func(d *Driver)) func(tea.Model) (tea.Model, error) {
	return func(m tea.Model) (tea.Model, error) {
		t.Helper()
		d := New(t, m)
		d.DrainInit()
		if script != nil {
			script(d)
		}
		return d.Model, nil
	}
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := execWithTimeout(cmd)
	switch msg := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drain(sub, depth+1)
		}
	case tea.QuitMsg:
		d.Quitting = true
	default:
		updated, next := d.Model.Update(msg)
		d.Model = updated
		d.drain(next, depth+1)
	}
}

func execWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// Package teatest drives bubbletea models in tests without a tea.Program.
// Update is called directly and returned commands are run inline until
// they stop producing messages.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDepth bounds command chains that keep producing messages.
const maxDepth = 64

// Commands that take longer than this are dropped. Cursor blink timers
// sleep for about half a second; everything else returns immediately.
const cmdWait = 10 * time.Millisecond

// Driver feeds messages to a model and records the result.
type Driver struct {
	t     *testing.T
	model tea.Model

	// Quit is set once a command returns tea.QuitMsg.
	Quit bool
}

// New wraps model and runs its Init command.
func New(t *testing.T, model tea.Model) *Driver {
	t.Helper()
	d := &Driver{t: t, model: model}
	d.run(model.Init(), 0)
	return d
}

// Model returns the latest model value.
func (d *Driver) Model() tea.Model { return d.model }

// View renders the latest model.
func (d *Driver) View() string { return d.model.View() }

// Send passes msg through Update. It is ignored after quit.
func (d *Driver) Send(msg tea.Msg) {
	d.t.Helper()
	if d.Quit {
		return
	}
	next, cmd := d.model.Update(msg)
	d.model = next
	d.run(cmd, 0)
}

func (d *Driver) press(t tea.KeyType) { d.Send(tea.KeyMsg{Type: t}) }

func (d *Driver) PressEnter() { d.press(tea.KeyEnter) }
func (d *Driver) PressEsc() { d.press(tea.KeyEsc) }
func (d *Driver) PressCtrlC() { d.press(tea.KeyCtrlC) }
func (d *Driver) PressUp() { d.press(tea.KeyUp) }
func (d *Driver) PressDown() { d.press(tea.KeyDown) }
func (d *Driver) PressLeft() { d.press(tea.KeyLeft) }
func (d *Driver) PressRight() { d.press(tea.KeyRight) }

// PressCtrl sends ctrl plus a letter, e.g. PressCtrl('s').
func (d *Driver) PressCtrl(r rune) {
	d.press(tea.KeyCtrlA + tea.KeyType(r-'a'))
}

// Type sends each rune of s as its own key press.
func (d *Driver) Type(s string) {
	for _, r := range s {
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (d *Driver) run(cmd tea.Cmd, depth int) {
	d.t.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDepth {
		d.t.Logf("teatest: command chain cut at depth %d", depth)
		return
	}

	msg := await(cmd)
	switch m := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, c := range m {
			d.run(c, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quit = true
		return
	}
	if blink(msg) {
		return
	}

	next, follow := d.model.Update(msg)
	d.model = next
	d.run(follow, depth+1)
}

func await(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdWait):
		return nil
	}
}

// blink matches the unexported cursor blink messages from bubbles.
func blink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}

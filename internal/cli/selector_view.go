package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/larder/internal/cli/formatter"
	"github.com/alexanderramin/larder/internal/kitchen"
	"github.com/alexanderramin/larder/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type selectorKeys struct {
	Up, Down     key.Binding
	Toggle       key.Binding
	Less, More   key.Binding
	Random       key.Binding
	Clear        key.Binding
	Save, Cancel key.Binding
}

func defaultSelectorKeys() selectorKeys {
	return selectorKeys{
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Toggle: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "toggle")),
		Less:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "limit -1")),
		More:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "limit +1")),
		Random: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "random")),
		Clear:  key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear")),
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

func (k selectorKeys) help() []key.Binding {
	return []key.Binding{k.Toggle, k.Less, k.More, k.Random, k.Clear, k.Save, k.Cancel}
}

// selectorModel stages a new kitchen from the catalog. Typing filters the
// list by name.
type selectorModel struct {
	svc     service.KitchenService
	sel     *kitchen.Selection
	search  textinput.Model
	keys    selectorKeys
	choices []int
	cursor  int

	committed bool
	done      bool
}

func newSelectorModel(svc service.KitchenService, sel *kitchen.Selection) selectorModel {
	ti := textinput.New()
	ti.Placeholder = "search recipes"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Focus()

	return selectorModel{
		svc:     svc,
		sel:     sel,
		search:  ti,
		keys:    defaultSelectorKeys(),
		choices: kitchen.CapacityChoices(len(svc.Options(sel, ""))),
	}
}

func (m selectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m selectorModel) options() []kitchen.Option {
	return m.svc.Options(m.sel, m.search.Value())
}

func (m selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	opts := m.options()
	switch {
	case key.Matches(km, m.keys.Cancel):
		m.done = true
		return m, tea.Quit
	case key.Matches(km, m.keys.Save):
		m.committed = true
		m.done = true
		return m, tea.Quit
	case key.Matches(km, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(km, m.keys.Down):
		if m.cursor < len(opts)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(km, m.keys.Toggle):
		if m.cursor < len(opts) {
			m.sel.Toggle(opts[m.cursor].Recipe)
		}
		return m, nil
	case key.Matches(km, m.keys.Less):
		m.stepCapacity(-1)
		return m, nil
	case key.Matches(km, m.keys.More):
		m.stepCapacity(1)
		return m, nil
	case key.Matches(km, m.keys.Random):
		m.svc.SelectRandom(m.sel, m.sel.Capacity())
		m.cursor = 0
		return m, nil
	case key.Matches(km, m.keys.Clear):
		m.sel.Clear()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(km)
	if m.search.Value() != before {
		m.cursor = 0
	}
	return m, cmd
}

// stepCapacity moves the limit within the offered choices.
func (m *selectorModel) stepCapacity(delta int) {
	if len(m.choices) == 0 {
		return
	}
	lo, hi := m.choices[0], m.choices[len(m.choices)-1]
	n := m.sel.Capacity() + delta
	if n < lo {
		n = lo
	}
	if n > hi {
		n = hi
	}
	m.sel.SetCapacity(n)
}

func (m selectorModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Choose kitchen recipes") + "\n\n")
	b.WriteString("  " + m.search.View() + "\n\n")

	opts := m.options()
	if len(opts) == 0 {
		b.WriteString("  " + formatter.Dim("No recipes match.") + "\n")
	}
	for i, o := range opts {
		cursor := "  "
		name := o.Recipe.Name
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			name = formatter.Bold(name)
		}
		mark := formatter.Dim("[ ]")
		if o.Selected {
			mark = formatter.StyleGreen.Render("[x]")
		}
		fmt.Fprintf(&b, "%s%s %s %s\n", cursor, mark, formatter.MealBadge(o.Recipe.MealType), name)
	}

	b.WriteString("\n  " + formatter.FormatCapacityCounter(m.sel.Len(), m.sel.Capacity(), m.sel.CapacityExceeded()) + "\n")

	hints := make([]string, 0, len(m.keys.help()))
	for _, k := range m.keys.help() {
		h := k.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}
	b.WriteString("  " + formatter.Dim(strings.Join(hints, " · ")) + "\n")
	return b.String()
}

// Package tui is a full-screen browser over the todo list. It edits the same
// in-memory items the menu session owns and hands them back on quit.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/ui"
)

// listItem adapts model.Item to bubbles/list.Item
type listItem struct {
	model.Item
}

func (i listItem) Title() string       { return model.FormatItem(i.Item) }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.Item.Description }

type keyMap struct {
	Toggle, Delete, Add, Edit, Quit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "save & quit")),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Toggle, k.Delete, k.Add, k.Edit}
}

// Single-line delegate.
type itemDelegate struct {
	th ui.Theme
}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box := d.th.Muted.Render(d.th.SymPend)
	text := it.Item.Description
	if it.Completed {
		box = d.th.Success.Render(d.th.SymDone)
		text = d.th.Done.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.th.Selected.Render(">") + " "
	}
	fmt.Fprintf(w, "%s%s %s", prefix, box, text)
}

type Model struct {
	list    list.Model
	th      ui.Theme
	keys    keyMap
	changed bool

	// inline add/edit share one text input
	adding    bool
	editing   bool
	editIndex int
	ti        textinput.Model
	inputErr  string
}

func New(items []model.Item, th ui.Theme) Model {
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, listItem{it})
	}

	l := list.New(li, itemDelegate{th: th}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("item", "items")
	l.Styles.Title = th.Title
	l.FilterInput.Prompt = "/ "

	keys := newKeyMap()
	l.AdditionalShortHelpKeys = keys.bindings
	l.AdditionalFullHelpKeys = keys.bindings

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{list: l, th: th, keys: keys, ti: ti}
	m.refreshTitle()
	return m
}

// Items returns the list in display order.
func (m Model) Items() []model.Item {
	out := make([]model.Item, 0, len(m.list.Items()))
	for _, it := range m.list.Items() {
		if li, ok := it.(listItem); ok {
			out = append(out, li.Item)
		}
	}
	return out
}

// Changed reports whether any edit happened.
func (m Model) Changed() bool { return m.changed }

// Run starts the program and returns the edited items.
func Run(items []model.Item, th ui.Theme, opts ...tea.ProgramOption) ([]model.Item, bool, error) {
	p := tea.NewProgram(New(items, th), opts...)
	final, err := p.Run()
	if err != nil {
		return items, false, err
	}
	fm, ok := final.(Model)
	if !ok {
		return items, false, nil
	}
	return fm.Items(), fm.changed, nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.list.SetSize(size.Width-4, size.Height-4)
		return m, nil
	}
	if m.adding || m.editing {
		return m.updateInput(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok || m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(km, m.keys.Quit):
		if km.String() == "esc" && m.list.FilterState() == list.FilterApplied {
			break
		}
		return m, tea.Quit
	case key.Matches(km, m.keys.Toggle):
		var cmd tea.Cmd
		if i, it, ok := m.selected(); ok {
			it.Toggle()
			cmd = m.list.SetItem(i, listItem{it})
			m.markChanged()
		}
		return m, cmd
	case key.Matches(km, m.keys.Delete):
		if i, _, ok := m.selected(); ok {
			m.list.RemoveItem(i)
			m.markChanged()
		}
		return m, nil
	case key.Matches(km, m.keys.Add):
		m.adding = true
		m.inputErr = ""
		m.ti.SetValue("")
		m.ti.Placeholder = "New item description..."
		return m, m.ti.Focus()
	case key.Matches(km, m.keys.Edit):
		if i, it, ok := m.selected(); ok {
			m.editing = true
			m.editIndex = i
			m.inputErr = ""
			m.ti.SetValue(it.Description)
			m.ti.CursorEnd()
			m.ti.Placeholder = "Edit item description..."
			return m, m.ti.Focus()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.Type {
		case tea.KeyEnter:
			text := m.ti.Value()
			if strings.TrimSpace(text) == "" {
				m.inputErr = "Description cannot be empty"
				return m, nil
			}
			var cmd tea.Cmd
			if m.adding {
				cmd = m.list.InsertItem(len(m.list.Items()), listItem{model.Item{Description: text}})
			} else if m.editIndex >= 0 && m.editIndex < len(m.list.Items()) {
				if li, ok := m.list.Items()[m.editIndex].(listItem); ok {
					li.Item.Description = text
					cmd = m.list.SetItem(m.editIndex, li)
				}
			}
			m.markChanged()
			m.closeInput()
			return m, cmd
		case tea.KeyEsc:
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.adding, m.editing = false, false
	m.inputErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
}

// selected returns the index of the highlighted item in the full list.
func (m Model) selected() (int, model.Item, bool) {
	li, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return 0, model.Item{}, false
	}
	return m.list.GlobalIndex(), li.Item, true
}

func (m *Model) markChanged() {
	m.changed = true
	m.refreshTitle()
}

func (m *Model) refreshTitle() {
	done, pending := model.Stats(m.Items())
	m.list.Title = fmt.Sprintf("Todos  %s %d  %s %d",
		m.th.SymDone, done,
		m.th.SymPend, pending,
	)
}

func (m Model) View() string {
	content := m.list.View()
	if m.adding || m.editing {
		title := "Add new item"
		if m.editing {
			title = "Edit item"
		}
		if m.inputErr != "" {
			title += ": " + m.th.Error.Render(m.inputErr)
		}
		bar := lipgloss.NewStyle().Border(m.th.Border).BorderForeground(m.th.BorderColor).Padding(0, 1)
		content += "\n" + bar.Render(title+"\n"+m.ti.View())
	}
	return lipgloss.NewStyle().
		Border(m.th.Border).
		BorderForeground(m.th.BorderColor).
		Padding(0, 1).
		Render(content)
}
